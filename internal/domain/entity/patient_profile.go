package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile holds the patient-specific extension of a User.
type PatientProfile struct {
	ID     int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	BloodGroup               string `gorm:"type:varchar(10)" json:"blood_group,omitempty"`
	EmergencyContactName     string `gorm:"type:varchar(100)" json:"emergency_contact_name,omitempty"`
	EmergencyContact         string `gorm:"type:varchar(20)" json:"emergency_contact,omitempty"`
	EmergencyContactRelation string `gorm:"type:varchar(20)" json:"emergency_contact_relation,omitempty"`

	IsActive bool `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientProfileID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
