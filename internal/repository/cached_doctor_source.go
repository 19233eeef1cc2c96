package repository

import (
	"context"
	"encoding/json"
	"time"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RedisDoctorsKey holds the JSON encoded record set.
	RedisDoctorsKey = "directory:doctors"

	redisCacheTimeout = 2 * time.Second
)

// cachedDoctorSource is a read-through cache in front of another source.
// Cache failures are logged and never fail a read.
type cachedDoctorSource struct {
	next        domainRepo.DoctorSource
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewCachedDoctorSource(next domainRepo.DoctorSource, redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) domainRepo.DoctorSource {
	return &cachedDoctorSource{
		next:        next,
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (s *cachedDoctorSource) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if doctors, ok := s.get(ctx); ok {
		s.log.Debugf("Loaded %d doctors from cache", len(doctors))
		return doctors, nil
	}

	doctors, err := s.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.set(ctx, doctors)
	return doctors, nil
}

func (s *cachedDoctorSource) get(ctx context.Context) ([]entity.Doctor, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := s.redisClient.Get(ctx, RedisDoctorsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read doctors cache: %+v", err)
		}
		return nil, false
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		s.log.Warnf("Failed to decode doctors cache: %+v", err)
		return nil, false
	}
	return doctors, true
}

func (s *cachedDoctorSource) set(ctx context.Context, doctors []entity.Doctor) {
	raw, err := json.Marshal(doctors)
	if err != nil {
		s.log.Warnf("Failed to encode doctors cache: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := s.redisClient.Set(ctx, RedisDoctorsKey, raw, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write doctors cache: %+v", err)
	}
}
