package repository

import (
	"time"

	"doctor-appointment-system/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.DoctorSchedule) error
	FindByDoctor(db *gorm.DB, doctorProfileID int) ([]entity.DoctorSchedule, error)

	// FindActiveForDoctorOnDay returns the doctor's active blocks for the
	// weekday, honoring the optional effective date range against onDate.
	// Ordered by start time.
	FindActiveForDoctorOnDay(db *gorm.DB, doctorProfileID int, day time.Weekday, onDate time.Time) ([]entity.DoctorSchedule, error)
}
