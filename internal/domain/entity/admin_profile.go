package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminProfile holds the admin-specific extension of a User.
type AdminProfile struct {
	ID     int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	OfficeRoomNo string `gorm:"type:varchar(20)" json:"office_room_no,omitempty"`
	OfficePhone  string `gorm:"type:varchar(30)" json:"office_phone,omitempty"`
	IsSuperAdmin bool   `gorm:"not null;default:false" json:"is_super_admin"`

	IsActive bool `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AdminProfile) TableName() string {
	return "admin_profiles"
}
