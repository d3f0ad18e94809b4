package dto

// Request DTOs

type UpdateAdminProfileRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName    string `json:"last_name" validate:"omitempty,min=2,max=50"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Address     string `json:"address" validate:"omitempty"`

	OfficeRoomNo string `json:"office_room_no" validate:"omitempty,max=20"`
	OfficePhone  string `json:"office_phone" validate:"omitempty,max=30"`
}

// Response DTOs

type AdminProfileResponse struct {
	ProfileID    int          `json:"profile_id"`
	User         UserResponse `json:"user"`
	OfficeRoomNo string       `json:"office_room_no,omitempty"`
	OfficePhone  string       `json:"office_phone,omitempty"`
	IsSuperAdmin bool         `json:"is_super_admin"`
}
