package repository

import (
	"errors"
	"strings"

	"doctor-appointment-system/internal/domain/entity"
	domainRepo "doctor-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("Specialties").Create(profile).Error
}

func (r *doctorProfileRepository) FindByID(db *gorm.DB, id int) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Preload("Specialties.Specialty").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAllWithUser(db *gorm.DB) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := db.Preload("User").Preload("Specialties.Specialty").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("User", "Specialties").Save(profile).Error
}

func (r *doctorProfileRepository) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.DoctorProfile{}).
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("doctor_profiles.is_active = ? AND users.is_active = ?", true, true).
		Count(&count).Error
	return count, err
}

func (r *doctorProfileRepository) Directory(db *gorm.DB, filter *entity.DoctorDirectoryFilter, offset, limit int) ([]entity.DoctorProfile, int64, error) {
	query := db.Model(&entity.DoctorProfile{}).
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("doctor_profiles.is_active = ? AND users.is_active = ?", true, true)

	if filter != nil {
		if name := strings.TrimSpace(filter.Name); name != "" {
			query = query.Where("(users.first_name || ' ' || users.last_name) ILIKE ?", "%"+name+"%")
		}
		if filter.SpecialtyID > 0 {
			query = query.Where(
				"EXISTS (SELECT 1 FROM doctor_specialties ds WHERE ds.doctor_profile_id = doctor_profiles.id AND ds.specialty_id = ?)",
				filter.SpecialtyID)
		}
		switch filter.Experience {
		case "0-3":
			query = query.Where("doctor_profiles.experience BETWEEN 0 AND 3")
		case "4-7":
			query = query.Where("doctor_profiles.experience BETWEEN 4 AND 7")
		case "8+":
			query = query.Where("doctor_profiles.experience >= 8")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// limit <= 0 is a count-only call
	if limit <= 0 {
		return nil, total, nil
	}

	var profiles []entity.DoctorProfile
	err := query.
		Preload("User").Preload("Specialties.Specialty").
		Order("doctor_profiles.experience DESC, users.first_name ASC, users.last_name ASC").
		Offset(offset).Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}
