package repository

import (
	"time"

	"doctor-appointment-system/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorUnavailabilityRepository interface {
	Create(db *gorm.DB, unavailability *entity.DoctorUnavailability) error

	// FindUpcomingForDoctor returns active windows with EndDateTime >= from,
	// ordered by StartDateTime asc, at most limit rows.
	FindUpcomingForDoctor(db *gorm.DB, doctorProfileID int, from time.Time, limit int) ([]entity.DoctorUnavailability, error)
}
