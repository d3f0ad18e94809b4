package repository

import (
	"time"

	"doctor-appointment-system/internal/domain/entity"
	domainRepo "doctor-appointment-system/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorScheduleRepository struct{}

func NewDoctorScheduleRepository() domainRepo.DoctorScheduleRepository {
	return &doctorScheduleRepository{}
}

func (r *doctorScheduleRepository) Create(db *gorm.DB, schedule *entity.DoctorSchedule) error {
	return db.Create(schedule).Error
}

func (r *doctorScheduleRepository) FindByDoctor(db *gorm.DB, doctorProfileID int) ([]entity.DoctorSchedule, error) {
	var schedules []entity.DoctorSchedule
	err := db.Where("doctor_profile_id = ?", doctorProfileID).
		Order("day_of_week ASC, start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *doctorScheduleRepository) FindActiveForDoctorOnDay(db *gorm.DB, doctorProfileID int, day time.Weekday, onDate time.Time) ([]entity.DoctorSchedule, error) {
	var schedules []entity.DoctorSchedule
	err := db.Where("doctor_profile_id = ?", doctorProfileID).
		Where("day_of_week = ?", int(day)).
		Where("is_active = ?", true).
		Where("effective_from_date IS NULL OR effective_from_date <= ?", onDate).
		Where("effective_to_date IS NULL OR effective_to_date >= ?", onDate).
		Order("start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}
