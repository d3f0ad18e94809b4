package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DoctorSchedule is a recurring weekly availability block. Start and end
// times are stored as "HH:MM" local clinic time.
type DoctorSchedule struct {
	ID              int `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorProfileID int `gorm:"not null;index" json:"doctor_profile_id"`

	DayOfWeek           time.Weekday `gorm:"not null" json:"day_of_week"`
	StartTime           string       `gorm:"type:time;not null" json:"start_time"`
	EndTime             string       `gorm:"type:time;not null" json:"end_time"`
	SlotDurationMinutes int          `gorm:"not null;default:20" json:"slot_duration_minutes"`

	EffectiveFromDate *time.Time `gorm:"type:date" json:"effective_from_date,omitempty"`
	EffectiveToDate   *time.Time `gorm:"type:date" json:"effective_to_date,omitempty"`

	IsActive bool `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid" json:"created_by_user_id,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}

// ParseClock converts an "HH:MM" (or "HH:MM:SS") string to minutes past
// midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return h*60 + m, nil
}
