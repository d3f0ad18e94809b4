package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditAction is the kind of change an audit row records.
type AuditAction string

const (
	AuditActionCreate     AuditAction = "create"
	AuditActionUpdate     AuditAction = "update"
	AuditActionActivate   AuditAction = "activate"
	AuditActionDeactivate AuditAction = "deactivate"
)

// AuditLog is an append-only record of a change. Rows are written inside
// the transaction that performed the change and never read back by the
// application.
type AuditLog struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	TimestampUtc time.Time  `gorm:"autoCreateTime;index" json:"timestamp_utc"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`

	EntityName string      `gorm:"type:varchar(150);not null;index" json:"entity_name"`
	EntityKey  string      `gorm:"type:varchar(100);not null" json:"entity_key"`
	Action     AuditAction `gorm:"type:varchar(30);not null" json:"action"`
	Summary    string      `gorm:"type:varchar(500)" json:"summary,omitempty"`
	Changes    JSON        `gorm:"type:jsonb" json:"changes,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}
