package repository

import (
	"doctor-appointment-system/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	Create(db *gorm.DB, specialty *entity.Specialty) error
	FindByID(db *gorm.DB, id int) (*entity.Specialty, error)
	FindAll(db *gorm.DB) ([]entity.Specialty, error)
	FindActive(db *gorm.DB) ([]entity.Specialty, error)
	Update(db *gorm.DB, specialty *entity.Specialty) error
	CountActive(db *gorm.DB) (int64, error)

	// NameExists reports whether another specialty already uses the name,
	// compared case-insensitively. excludeID skips the row being edited.
	NameExists(db *gorm.DB, name string, excludeID int) (bool, error)

	// DoctorCounts returns the number of linked doctors per specialty id.
	DoctorCounts(db *gorm.DB) (map[int]int64, error)

	// ReplaceDoctorSpecialties removes every join row of the doctor and
	// inserts the selected ids; the first id becomes the primary.
	ReplaceDoctorSpecialties(db *gorm.DB, doctorProfileID int, specialtyIDs []int) error
}
