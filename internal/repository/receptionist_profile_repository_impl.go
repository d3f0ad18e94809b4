package repository

import (
	"errors"

	"doctor-appointment-system/internal/domain/entity"
	domainRepo "doctor-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type receptionistProfileRepository struct{}

func NewReceptionistProfileRepository() domainRepo.ReceptionistProfileRepository {
	return &receptionistProfileRepository{}
}

func (r *receptionistProfileRepository) Create(db *gorm.DB, profile *entity.ReceptionistProfile) error {
	return db.Create(profile).Error
}

func (r *receptionistProfileRepository) FindByID(db *gorm.DB, id int) (*entity.ReceptionistProfile, error) {
	var profile entity.ReceptionistProfile
	err := db.Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *receptionistProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ReceptionistProfile, error) {
	var profile entity.ReceptionistProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *receptionistProfileRepository) FindAllWithUser(db *gorm.DB) ([]entity.ReceptionistProfile, error) {
	var profiles []entity.ReceptionistProfile
	err := db.Preload("User").
		Joins("JOIN users ON users.id = receptionist_profiles.user_id").
		Order("users.first_name ASC, users.last_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *receptionistProfileRepository) Update(db *gorm.DB, profile *entity.ReceptionistProfile) error {
	return db.Omit("User").Save(profile).Error
}
