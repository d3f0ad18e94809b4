package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile holds the doctor-specific extension of a User.
type DoctorProfile struct {
	ID     int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	LicenseNumber string `gorm:"type:varchar(50);not null" json:"license_number"`
	Qualification string `gorm:"type:varchar(150);not null" json:"qualification"`
	Designation   string `gorm:"type:varchar(150)" json:"designation,omitempty"`
	Experience    int    `gorm:"not null;default:0" json:"experience"`

	VisitCharge             decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0" json:"visit_charge"`
	FollowUpCharge          *decimal.Decimal `gorm:"type:decimal(18,2)" json:"follow_up_charge,omitempty"`
	IsTelemedicineAvailable bool             `gorm:"not null;default:false" json:"is_telemedicine_available"`
	Description             string           `gorm:"type:varchar(1000)" json:"description,omitempty"`

	RoomNo                 string `gorm:"type:varchar(20)" json:"room_no,omitempty"`
	MaxAppointmentsPerDay  int    `gorm:"not null;default:0" json:"max_appointments_per_day"`
	AutoAcceptAppointments bool   `gorm:"not null;default:true" json:"auto_accept_appointments"`
	IsAvailable            bool   `gorm:"not null;default:true" json:"is_available"`

	// Cached rating, recomputed whenever a review changes
	Rating       *float64 `json:"rating,omitempty"`
	TotalReviews *int     `json:"total_reviews,omitempty"`

	IsActive bool `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`

	// Relationships
	User             User                   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialties      []DoctorSpecialty      `gorm:"foreignKey:DoctorProfileID" json:"specialties,omitempty"`
	Schedules        []DoctorSchedule       `gorm:"foreignKey:DoctorProfileID" json:"schedules,omitempty"`
	Unavailabilities []DoctorUnavailability `gorm:"foreignKey:DoctorProfileID" json:"unavailabilities,omitempty"`
	Appointments     []Appointment          `gorm:"foreignKey:DoctorProfileID" json:"appointments,omitempty"`
	Reviews          []Review               `gorm:"foreignKey:DoctorProfileID" json:"reviews,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// SpecialtyNames returns the comma-joined specialty names, the form used
// by list rows and free-text search.
func (d *DoctorProfile) SpecialtyNames() string {
	out := ""
	for i, ds := range d.Specialties {
		if i > 0 {
			out += ", "
		}
		out += ds.Specialty.Name
	}
	return out
}
