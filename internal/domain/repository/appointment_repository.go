package repository

import (
	"time"

	"doctor-appointment-system/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	CountActive(db *gorm.DB) (int64, error)

	// Window queries use [from, to) boundaries on AppointmentDateTime.
	CountInWindow(db *gorm.DB, from, to time.Time) (int64, error)
	CountAllInWindow(db *gorm.DB, from, to time.Time) (int64, error)
	CountForDoctorInWindow(db *gorm.DB, doctorProfileID int, from, to time.Time) (int64, error)
	CountForDoctorByStatusInWindow(db *gorm.DB, doctorProfileID int, status entity.AppointmentStatus, from, to time.Time) (int64, error)
	CountUpcomingConfirmedForDoctor(db *gorm.DB, doctorProfileID int, from time.Time) (int64, error)
	CountDistinctPatientsCompleted(db *gorm.DB, doctorProfileID int) (int64, error)
	IDsForDoctorInWindow(db *gorm.DB, doctorProfileID int, from, to time.Time) ([]int, error)

	// FindForDoctorInWindow preloads Patient.User, ordered by datetime asc.
	FindForDoctorInWindow(db *gorm.DB, doctorProfileID int, from, to time.Time) ([]entity.Appointment, error)
	// FindAllInWindow preloads Doctor.User and Patient.User, ordered by datetime asc.
	FindAllInWindow(db *gorm.DB, from, to time.Time) ([]entity.Appointment, error)

	CountForPatientByStatuses(db *gorm.DB, patientProfileID int, statuses []entity.AppointmentStatus) (int64, error)
	CountUpcomingConfirmedForPatient(db *gorm.DB, patientProfileID int, from, to time.Time) (int64, error)
}
