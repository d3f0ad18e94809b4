package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a patient's rating of a doctor, optionally tied to the
// appointment it followed. Admins can hide a review via IsVisible.
type Review struct {
	ID               int  `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorProfileID  int  `gorm:"not null;index" json:"doctor_profile_id"`
	PatientProfileID int  `gorm:"not null;index" json:"patient_profile_id"`
	AppointmentID    *int `json:"appointment_id,omitempty"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:varchar(1000)" json:"comment,omitempty"`

	IsVisible bool `gorm:"not null;default:true" json:"is_visible"`
	IsActive  bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
