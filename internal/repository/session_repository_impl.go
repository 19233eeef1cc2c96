package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSessionKeyPrefix prefixes every browse session key.
const RedisSessionKeyPrefix = "directory:session:"

type sessionRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSessionRepository(redisClient *redis.Client, ttl time.Duration) domainRepo.SessionRepository {
	return &sessionRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func sessionKey(id uuid.UUID) string {
	return RedisSessionKeyPrefix + id.String()
}

func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.BrowseSession, error) {
	raw, err := r.redisClient.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	var session entity.BrowseSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}

// Save stores the session and refreshes its expiry.
func (r *sessionRepository) Save(ctx context.Context, session *entity.BrowseSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}

	if err := r.redisClient.Set(ctx, sessionKey(session.ID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := r.redisClient.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("delete session %s: %w", id, err)
	}
	return deleted > 0, nil
}
