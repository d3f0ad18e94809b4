package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FirstName   string `json:"first_name" validate:"required,min=2,max=50"`
	LastName    string `json:"last_name" validate:"required,min=2,max=50"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Address     string `json:"address" validate:"omitempty"`

	BloodGroup               string `json:"blood_group" validate:"omitempty,max=10"`
	EmergencyContactName     string `json:"emergency_contact_name" validate:"omitempty,max=100"`
	EmergencyContact         string `json:"emergency_contact" validate:"omitempty,max=20"`
	EmergencyContactRelation string `json:"emergency_contact_relation" validate:"omitempty,max=20"`
}

type UpdatePatientRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName    string `json:"last_name" validate:"omitempty,min=2,max=50"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Address     string `json:"address" validate:"omitempty"`

	BloodGroup               string `json:"blood_group" validate:"omitempty,max=10"`
	EmergencyContactName     string `json:"emergency_contact_name" validate:"omitempty,max=100"`
	EmergencyContact         string `json:"emergency_contact" validate:"omitempty,max=20"`
	EmergencyContactRelation string `json:"emergency_contact_relation" validate:"omitempty,max=20"`
}

// Response DTOs

type PatientAdminRow struct {
	ProfileID        int       `json:"profile_id"`
	UserID           uuid.UUID `json:"user_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	BloodGroup       string    `json:"blood_group,omitempty"`
	ProfileImagePath string    `json:"profile_image_path,omitempty"`
	IsActive         bool      `json:"is_active"`
}

type PatientAdminListResponse struct {
	Patients []PatientAdminRow `json:"patients"`
	Total    int64             `json:"total"`
	Active   int64             `json:"active"`
	Inactive int64             `json:"inactive"`
}

type PatientDetailResponse struct {
	ProfileID                int          `json:"profile_id"`
	User                     UserResponse `json:"user"`
	BloodGroup               string       `json:"blood_group,omitempty"`
	EmergencyContactName     string       `json:"emergency_contact_name,omitempty"`
	EmergencyContact         string       `json:"emergency_contact,omitempty"`
	EmergencyContactRelation string       `json:"emergency_contact_relation,omitempty"`
	IsActive                 bool         `json:"is_active"`
}
