package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"

	"gorm.io/gorm"
)

// DoctorSource supplies the full, ordered set of doctor records.
type DoctorSource interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
}

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Count(db *gorm.DB) (int64, error)
}
