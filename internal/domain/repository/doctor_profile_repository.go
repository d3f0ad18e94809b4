package repository

import (
	"doctor-appointment-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByID(db *gorm.DB, id int) (*entity.DoctorProfile, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAllWithUser(db *gorm.DB) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	CountActive(db *gorm.DB) (int64, error)

	// Directory returns one page of the public doctor directory together
	// with the total matching row count. Only doctors whose profile AND
	// user are active appear. Sort: experience desc, then name asc.
	Directory(db *gorm.DB, filter *entity.DoctorDirectoryFilter, offset, limit int) ([]entity.DoctorProfile, int64, error)
}
