package repository

import (
	"doctor-appointment-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceptionistProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ReceptionistProfile) error
	FindByID(db *gorm.DB, id int) (*entity.ReceptionistProfile, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ReceptionistProfile, error)
	FindAllWithUser(db *gorm.DB) ([]entity.ReceptionistProfile, error)
	Update(db *gorm.DB, profile *entity.ReceptionistProfile) error
}
