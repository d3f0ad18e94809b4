package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReceptionistProfile holds the receptionist-specific extension of a User.
type ReceptionistProfile struct {
	ID     int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	OfficePhone   string `gorm:"type:varchar(30)" json:"office_phone,omitempty"`
	CounterNumber string `gorm:"type:varchar(30)" json:"counter_number,omitempty"`

	IsActive bool `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ReceptionistProfile) TableName() string {
	return "receptionist_profiles"
}
