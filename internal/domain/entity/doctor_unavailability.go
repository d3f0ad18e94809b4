package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorUnavailability is a window during which a doctor cannot take
// appointments (leave, conference, emergency).
type DoctorUnavailability struct {
	ID              int `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorProfileID int `gorm:"not null;index" json:"doctor_profile_id"`

	StartDateTime time.Time `gorm:"not null;index" json:"start_date_time"`
	EndDateTime   time.Time `gorm:"not null" json:"end_date_time"`
	IsFullDay     bool      `gorm:"not null;default:false" json:"is_full_day"`
	Reason        string    `gorm:"type:varchar(200)" json:"reason,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`
}

func (DoctorUnavailability) TableName() string {
	return "doctor_unavailabilities"
}
