package repository

import (
	"time"

	"doctor-appointment-system/internal/domain/entity"
	domainRepo "doctor-appointment-system/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountInWindow(db *gorm.DB, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("is_active = ?", true).
		Where("appointment_date_time >= ? AND appointment_date_time < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountAllInWindow(db *gorm.DB, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("appointment_date_time >= ? AND appointment_date_time < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountForDoctorInWindow(db *gorm.DB, doctorProfileID int, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_profile_id = ?", doctorProfileID).
		Where("is_active = ?", true).
		Where("appointment_date_time >= ? AND appointment_date_time < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountForDoctorByStatusInWindow(db *gorm.DB, doctorProfileID int, status entity.AppointmentStatus, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_profile_id = ?", doctorProfileID).
		Where("is_active = ?", true).
		Where("status = ?", status).
		Where("appointment_date_time >= ? AND appointment_date_time < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountUpcomingConfirmedForDoctor(db *gorm.DB, doctorProfileID int, after time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_profile_id = ?", doctorProfileID).
		Where("is_active = ?", true).
		Where("appointment_date_time >= ?", after).
		Where("status = ?", entity.AppointmentStatusConfirmed).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountDistinctPatientsCompleted(db *gorm.DB, doctorProfileID int) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_profile_id = ?", doctorProfileID).
		Where("is_active = ?", true).
		Where("status = ?", entity.AppointmentStatusCompleted).
		Distinct("patient_profile_id").
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) IDsForDoctorInWindow(db *gorm.DB, doctorProfileID int, from, to time.Time) ([]int, error) {
	var ids []int
	err := db.Model(&entity.Appointment{}).
		Where("doctor_profile_id = ?", doctorProfileID).
		Where("is_active = ?", true).
		Where("appointment_date_time >= ? AND appointment_date_time < ?", from, to).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *appointmentRepository) FindForDoctorInWindow(db *gorm.DB, doctorProfileID int, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("doctor_profile_id = ?", doctorProfileID).
		Where("is_active = ?", true).
		Where("appointment_date_time >= ? AND appointment_date_time < ?", from, to).
		Order("appointment_date_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAllInWindow(db *gorm.DB, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient.User").
		Where("appointment_date_time >= ? AND appointment_date_time < ?", from, to).
		Order("appointment_date_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountForPatientByStatuses(db *gorm.DB, patientProfileID int, statuses []entity.AppointmentStatus) (int64, error) {
	var count int64
	query := db.Model(&entity.Appointment{}).
		Where("patient_profile_id = ?", patientProfileID).
		Where("is_active = ?", true)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountUpcomingConfirmedForPatient(db *gorm.DB, patientProfileID int, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_profile_id = ?", patientProfileID).
		Where("is_active = ?", true).
		Where("status = ?", entity.AppointmentStatusConfirmed).
		Where("appointment_date_time >= ? AND appointment_date_time < ?", from, to).
		Count(&count).Error
	return count, err
}
