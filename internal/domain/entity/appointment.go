package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle state of an appointment. Confirmed
// is the state a freshly booked appointment starts in.
type AppointmentStatus string

const (
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusNoShow      AppointmentStatus = "no_show"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// Appointment links a doctor and a patient at a point in time.
type Appointment struct {
	ID               int `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorProfileID  int `gorm:"not null;index" json:"doctor_profile_id"`
	PatientProfileID int `gorm:"not null;index" json:"patient_profile_id"`

	AppointmentDateTime time.Time `gorm:"not null;index" json:"appointment_date_time"`
	DurationMinutes     int       `gorm:"not null;default:20" json:"duration_minutes"`
	VisitType           string    `gorm:"type:varchar(50)" json:"visit_type,omitempty"`

	Status             AppointmentStatus `gorm:"type:varchar(20);not null;default:'confirmed';index" json:"status"`
	CancellationReason string            `gorm:"type:varchar(500)" json:"cancellation_reason,omitempty"`
	IsFirstVisit       bool              `gorm:"not null;default:false" json:"is_first_visit"`

	BookedByUserID *uuid.UUID `gorm:"type:uuid" json:"booked_by_user_id,omitempty"`
	IsActive       bool       `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorProfileID" json:"doctor,omitempty"`
	Patient PatientProfile `gorm:"foreignKey:PatientProfileID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled reports whether the appointment no longer occupies a slot.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
