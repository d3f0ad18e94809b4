package dto

// Request DTOs

type CreateSpecialtyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type UpdateSpecialtyRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// Response DTOs

type SpecialtyRow struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DoctorCount int64  `json:"doctor_count"`
	IsActive    bool   `json:"is_active"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyRow `json:"specialties"`
	Total       int64          `json:"total"`
	Active      int64          `json:"active"`
	Inactive    int64          `json:"inactive"`
}
