package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FirstName   string `json:"first_name" validate:"required,min=2,max=50"`
	LastName    string `json:"last_name" validate:"required,min=2,max=50"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Address     string `json:"address" validate:"omitempty"`

	LicenseNumber           string           `json:"license_number" validate:"required,max=50"`
	Qualification           string           `json:"qualification" validate:"required,max=150"`
	Designation             string           `json:"designation" validate:"omitempty,max=150"`
	Experience              int              `json:"experience" validate:"gte=0,lte=70"`
	VisitCharge             decimal.Decimal  `json:"visit_charge"`
	FollowUpCharge          *decimal.Decimal `json:"follow_up_charge,omitempty"`
	IsTelemedicineAvailable bool             `json:"is_telemedicine_available"`
	Description             string           `json:"description" validate:"omitempty,max=1000"`
	RoomNo                  string           `json:"room_no" validate:"omitempty,max=20"`
	MaxAppointmentsPerDay   int              `json:"max_appointments_per_day" validate:"gte=0"`
	AutoAcceptAppointments  bool             `json:"auto_accept_appointments"`

	SpecialtyIDs []int `json:"specialty_ids" validate:"omitempty,dive,gt=0"`
}

type UpdateDoctorRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName    string `json:"last_name" validate:"omitempty,min=2,max=50"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Address     string `json:"address" validate:"omitempty"`

	LicenseNumber           string           `json:"license_number" validate:"omitempty,max=50"`
	Qualification           string           `json:"qualification" validate:"omitempty,max=150"`
	Designation             string           `json:"designation" validate:"omitempty,max=150"`
	Experience              *int             `json:"experience" validate:"omitempty,gte=0,lte=70"`
	VisitCharge             *decimal.Decimal `json:"visit_charge,omitempty"`
	FollowUpCharge          *decimal.Decimal `json:"follow_up_charge,omitempty"`
	IsTelemedicineAvailable *bool            `json:"is_telemedicine_available,omitempty"`
	Description             string           `json:"description" validate:"omitempty,max=1000"`
	RoomNo                  string           `json:"room_no" validate:"omitempty,max=20"`
	MaxAppointmentsPerDay   *int             `json:"max_appointments_per_day,omitempty" validate:"omitempty,gte=0"`
	AutoAcceptAppointments  *bool            `json:"auto_accept_appointments,omitempty"`

	SpecialtyIDs []int `json:"specialty_ids" validate:"omitempty,dive,gt=0"`
}

// Response DTOs

type DoctorAdminRow struct {
	ProfileID        int       `json:"profile_id"`
	UserID           uuid.UUID `json:"user_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	Specialties      string    `json:"specialties,omitempty"`
	Qualification    string    `json:"qualification"`
	Experience       int       `json:"experience"`
	ProfileImagePath string    `json:"profile_image_path,omitempty"`
	IsActive         bool      `json:"is_active"`
}

type DoctorAdminListResponse struct {
	Doctors  []DoctorAdminRow `json:"doctors"`
	Total    int64            `json:"total"`
	Active   int64            `json:"active"`
	Inactive int64            `json:"inactive"`
}

type DoctorDetailResponse struct {
	ProfileID               int              `json:"profile_id"`
	User                    UserResponse     `json:"user"`
	LicenseNumber           string           `json:"license_number"`
	Qualification           string           `json:"qualification"`
	Designation             string           `json:"designation,omitempty"`
	Experience              int              `json:"experience"`
	VisitCharge             decimal.Decimal  `json:"visit_charge"`
	FollowUpCharge          *decimal.Decimal `json:"follow_up_charge,omitempty"`
	IsTelemedicineAvailable bool             `json:"is_telemedicine_available"`
	Description             string           `json:"description,omitempty"`
	RoomNo                  string           `json:"room_no,omitempty"`
	MaxAppointmentsPerDay   int              `json:"max_appointments_per_day"`
	AutoAcceptAppointments  bool             `json:"auto_accept_appointments"`
	SpecialtyIDs            []int            `json:"specialty_ids"`
	Specialties             string           `json:"specialties,omitempty"`
	IsActive                bool             `json:"is_active"`
}

// Directory ("Find a Doctor")

type DoctorDirectoryQuery struct {
	Name        string `json:"name"`
	SpecialtyID int    `json:"specialty_id"`
	Experience  string `json:"experience" validate:"omitempty,oneof=0-3 4-7 8+"`
	Page        int    `json:"page"`
}

type DoctorCard struct {
	ProfileID               int             `json:"profile_id"`
	FullName                string          `json:"full_name"`
	Specialties             string          `json:"specialties,omitempty"`
	Qualification           string          `json:"qualification"`
	Designation             string          `json:"designation,omitempty"`
	Experience              int             `json:"experience"`
	VisitCharge             decimal.Decimal `json:"visit_charge"`
	Rating                  *float64        `json:"rating,omitempty"`
	TotalReviews            *int            `json:"total_reviews,omitempty"`
	ProfileImagePath        string          `json:"profile_image_path,omitempty"`
	IsTelemedicineAvailable bool            `json:"is_telemedicine_available"`
}

type DoctorDirectoryResponse struct {
	Doctors    []DoctorCard `json:"doctors"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	Total      int64        `json:"total"`
	TotalPages int          `json:"total_pages"`
}
