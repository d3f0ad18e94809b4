package entity

import (
	"time"

	"github.com/google/uuid"
)

// Specialty is a medical department (Cardiology, Neurology, ...).
// Names are unique case-insensitively, enforced by a LOWER(name) index.
type Specialty struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(500)" json:"description,omitempty"`
	IsActive    bool   `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`
}

func (Specialty) TableName() string {
	return "specialties"
}

// DoctorSpecialty joins doctors to specialties. At most one row per
// doctor carries IsPrimary.
type DoctorSpecialty struct {
	ID              int  `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorProfileID int  `gorm:"not null;index" json:"doctor_profile_id"`
	SpecialtyID     int  `gorm:"not null;index" json:"specialty_id"`
	IsPrimary       bool `gorm:"not null;default:false" json:"is_primary"`

	// Relationships
	Specialty Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

func (DoctorSpecialty) TableName() string {
	return "doctor_specialties"
}
