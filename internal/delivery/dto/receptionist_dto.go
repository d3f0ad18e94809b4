package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateReceptionistRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FirstName   string `json:"first_name" validate:"required,min=2,max=50"`
	LastName    string `json:"last_name" validate:"required,min=2,max=50"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Address     string `json:"address" validate:"omitempty"`

	OfficePhone   string `json:"office_phone" validate:"omitempty,max=30"`
	CounterNumber string `json:"counter_number" validate:"omitempty,max=30"`
}

type UpdateReceptionistRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName    string `json:"last_name" validate:"omitempty,min=2,max=50"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Address     string `json:"address" validate:"omitempty"`

	OfficePhone   string `json:"office_phone" validate:"omitempty,max=30"`
	CounterNumber string `json:"counter_number" validate:"omitempty,max=30"`
}

// Response DTOs

type ReceptionistAdminRow struct {
	ProfileID        int       `json:"profile_id"`
	UserID           uuid.UUID `json:"user_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	OfficePhone      string    `json:"office_phone,omitempty"`
	CounterNumber    string    `json:"counter_number,omitempty"`
	ProfileImagePath string    `json:"profile_image_path,omitempty"`
	IsActive         bool      `json:"is_active"`
}

type ReceptionistAdminListResponse struct {
	Receptionists []ReceptionistAdminRow `json:"receptionists"`
	Total         int64                  `json:"total"`
	Active        int64                  `json:"active"`
	Inactive      int64                  `json:"inactive"`
}

type ReceptionistDetailResponse struct {
	ProfileID     int          `json:"profile_id"`
	User          UserResponse `json:"user"`
	OfficePhone   string       `json:"office_phone,omitempty"`
	CounterNumber string       `json:"counter_number,omitempty"`
	IsActive      bool         `json:"is_active"`
}
