package service

import (
	"context"

	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes append-only audit rows. Calls take the caller's
// transaction so an audit row never outlives a rolled-back change.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName, entityKey, summary string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName, entityKey, summary string, oldValue, newValue interface{}) error
	LogStatusChange(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName, entityKey string, activated bool) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName, entityKey, summary string, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		UserID:     userID,
		EntityName: entityName,
		EntityKey:  entityKey,
		Action:     entity.AuditActionCreate,
		Summary:    summary,
		Changes: entity.JSON{
			"old_value": nil,
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName, entityKey, summary string, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		UserID:     userID,
		EntityName: entityName,
		EntityKey:  entityKey,
		Action:     entity.AuditActionUpdate,
		Summary:    summary,
		Changes: entity.JSON{
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

func (s *auditService) LogStatusChange(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName, entityKey string, activated bool) error {
	action := entity.AuditActionDeactivate
	summary := "Deactivated"
	if activated {
		action = entity.AuditActionActivate
		summary = "Activated"
	}

	auditLog := &entity.AuditLog{
		UserID:     userID,
		EntityName: entityName,
		EntityKey:  entityKey,
		Action:     action,
		Summary:    summary,
		Changes: entity.JSON{
			"is_active": activated,
		},
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
