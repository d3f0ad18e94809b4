package repository

import (
	"time"

	"doctor-appointment-system/internal/domain/entity"
	domainRepo "doctor-appointment-system/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorUnavailabilityRepository struct{}

func NewDoctorUnavailabilityRepository() domainRepo.DoctorUnavailabilityRepository {
	return &doctorUnavailabilityRepository{}
}

func (r *doctorUnavailabilityRepository) Create(db *gorm.DB, unavailability *entity.DoctorUnavailability) error {
	return db.Create(unavailability).Error
}

func (r *doctorUnavailabilityRepository) FindUpcomingForDoctor(db *gorm.DB, doctorProfileID int, from time.Time, limit int) ([]entity.DoctorUnavailability, error) {
	var items []entity.DoctorUnavailability
	err := db.Where("doctor_profile_id = ?", doctorProfileID).
		Where("end_date_time >= ?", from).
		Order("start_date_time ASC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
