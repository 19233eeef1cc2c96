package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Specialties", func(db *gorm.DB) *gorm.DB {
		return db.Order("doctor_specialties.position ASC")
	}).Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}

// databaseDoctorSource serves the record set straight from the doctors table.
type databaseDoctorSource struct {
	db         *gorm.DB
	doctorRepo domainRepo.DoctorRepository
}

func NewDatabaseDoctorSource(db *gorm.DB, doctorRepo domainRepo.DoctorRepository) domainRepo.DoctorSource {
	return &databaseDoctorSource{
		db:         db,
		doctorRepo: doctorRepo,
	}
}

func (s *databaseDoctorSource) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	return s.doctorRepo.FindAll(s.db.WithContext(ctx))
}
