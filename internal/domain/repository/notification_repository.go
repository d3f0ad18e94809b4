package repository

import (
	"doctor-appointment-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	CountPendingForUser(db *gorm.DB, userID uuid.UUID) (int64, error)
	// FindRecent returns the newest active rows first.
	FindRecent(db *gorm.DB, limit int) ([]entity.Notification, error)
}
