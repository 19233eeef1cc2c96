package service

import (
	"context"
	"fmt"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedService fills an empty doctors table from another record source.
type SeedService struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	source     repository.DoctorSource
}

func NewSeedService(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository, source repository.DoctorSource) *SeedService {
	return &SeedService{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		source:     source,
	}
}

// SeedIfEmpty copies every record of the source into the table in one
// transaction. It does nothing when the table already holds doctors.
func (s *SeedService) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.doctorRepo.Count(s.db.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("count doctors: %w", err)
	}
	if count > 0 {
		s.log.Infof("Doctors table already has %d rows, skipping seed", count)
		return 0, nil
	}

	doctors, err := s.source.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch seed doctors: %w", err)
	}

	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	for i := range doctors {
		doctor := doctors[i]
		doctor.Specialties = entity.NewDoctorSpecialties(doctor.SpecialtyNames()...)
		if err := s.doctorRepo.Create(tx, &doctor); err != nil {
			s.log.Warnf("Failed to seed doctor %q: %+v", doctor.Name, err)
			return 0, fmt.Errorf("seed doctor %q: %w", doctor.Name, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return 0, err
	}

	s.log.Infof("Seeded %d doctors", len(doctors))
	return len(doctors), nil
}
