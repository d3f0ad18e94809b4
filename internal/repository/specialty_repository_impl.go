package repository

import (
	"errors"

	"doctor-appointment-system/internal/domain/entity"
	domainRepo "doctor-appointment-system/internal/domain/repository"

	"gorm.io/gorm"
)

type specialtyRepository struct{}

func NewSpecialtyRepository() domainRepo.SpecialtyRepository {
	return &specialtyRepository{}
}

func (r *specialtyRepository) Create(db *gorm.DB, specialty *entity.Specialty) error {
	return db.Create(specialty).Error
}

func (r *specialtyRepository) FindByID(db *gorm.DB, id int) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := db.Where("id = ?", id).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) FindAll(db *gorm.DB) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := db.Order("name ASC").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) FindActive(db *gorm.DB) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) Update(db *gorm.DB, specialty *entity.Specialty) error {
	return db.Save(specialty).Error
}

func (r *specialtyRepository) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Specialty{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *specialtyRepository) NameExists(db *gorm.DB, name string, excludeID int) (bool, error) {
	var count int64
	query := db.Model(&entity.Specialty{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *specialtyRepository) DoctorCounts(db *gorm.DB) (map[int]int64, error) {
	type row struct {
		SpecialtyID int
		Total       int64
	}
	var rows []row
	err := db.Model(&entity.DoctorSpecialty{}).
		Select("specialty_id, COUNT(*) AS total").
		Group("specialty_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int64, len(rows))
	for _, r := range rows {
		counts[r.SpecialtyID] = r.Total
	}
	return counts, nil
}

// ReplaceDoctorSpecialties removes every specialty link for the doctor and
// inserts the given set. The first id in the slice becomes the primary one.
func (r *specialtyRepository) ReplaceDoctorSpecialties(db *gorm.DB, doctorProfileID int, specialtyIDs []int) error {
	err := db.Where("doctor_profile_id = ?", doctorProfileID).Delete(&entity.DoctorSpecialty{}).Error
	if err != nil {
		return err
	}
	if len(specialtyIDs) == 0 {
		return nil
	}
	links := make([]entity.DoctorSpecialty, 0, len(specialtyIDs))
	for i, id := range specialtyIDs {
		links = append(links, entity.DoctorSpecialty{
			DoctorProfileID: doctorProfileID,
			SpecialtyID:     id,
			IsPrimary:       i == 0,
		})
	}
	return db.Create(&links).Error
}
