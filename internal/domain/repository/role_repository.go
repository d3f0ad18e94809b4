package repository

import (
	"doctor-appointment-system/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByName(db *gorm.DB, name string) (*entity.Role, error)
	Save(db *gorm.DB, role *entity.Role) error
}
