package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Doctor is one practitioner record in the directory.
// Records are read once from the source and never mutated afterwards.
type Doctor struct {
	ID                   int             `gorm:"primaryKey" json:"id"`
	Name                 string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Username             string          `gorm:"type:varchar(100)" json:"username,omitempty"`
	ExperienceYears      int             `gorm:"not null;default:0" json:"experience_years"`
	Fee                  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fee"`
	SupportsClinicVisit  bool            `gorm:"not null;default:false" json:"supports_clinic_visit"`
	SupportsVideoConsult bool            `gorm:"not null;default:false" json:"supports_video_consult"`
	AvatarURL            string          `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialties []DoctorSpecialty `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"specialties"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// SpecialtyNames returns the doctor's specialty labels in their stored order.
// Duplicates are kept.
func (d *Doctor) SpecialtyNames() []string {
	names := make([]string, len(d.Specialties))
	for i, s := range d.Specialties {
		names[i] = s.Name
	}
	return names
}

// DoctorSpecialty is one entry of a doctor's ordered specialty list.
type DoctorSpecialty struct {
	ID       int    `gorm:"primaryKey" json:"-"`
	DoctorID int    `gorm:"not null;index" json:"-"`
	Position int    `gorm:"not null;default:0" json:"-"`
	Name     string `gorm:"type:varchar(255);not null;index" json:"name"`
}

func (DoctorSpecialty) TableName() string {
	return "doctor_specialties"
}

// NewDoctorSpecialties builds the ordered specialty rows for the given names.
func NewDoctorSpecialties(names ...string) []DoctorSpecialty {
	specialties := make([]DoctorSpecialty, len(names))
	for i, name := range names {
		specialties[i] = DoctorSpecialty{Position: i, Name: name}
	}
	return specialties
}
