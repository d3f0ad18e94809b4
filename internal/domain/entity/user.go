package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents the centralized identity table. Every role-specific
// profile (admin, doctor, receptionist, patient) links back to exactly
// one User row.
type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID           int        `gorm:"not null;index" json:"role_id"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"type:text;not null" json:"-"`
	FirstName        string     `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName         string     `gorm:"type:varchar(50);not null" json:"last_name"`
	PhoneNumber      string     `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	DateOfBirth      *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender           string     `gorm:"type:char(1)" json:"gender,omitempty"`
	Address          string     `gorm:"type:text" json:"address,omitempty"`
	ProfileImagePath string     `gorm:"type:varchar(255)" json:"profile_image_path,omitempty"`
	IsActive         bool       `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
