package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationChannel is the delivery medium of a notification.
type NotificationChannel string

const (
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSMS   NotificationChannel = "sms"
	NotificationChannelPush  NotificationChannel = "push"
	NotificationChannelInApp NotificationChannel = "in_app"
)

// NotificationStatus is the delivery state. Pending doubles as "unread"
// for in-app notifications.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification is a delivery log entry, optionally tied to a user
// and/or an appointment.
type Notification struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	AppointmentID *int       `gorm:"index" json:"appointment_id,omitempty"`

	Channel       NotificationChannel `gorm:"type:varchar(20);not null" json:"channel"`
	ToEmail       string              `gorm:"type:varchar(200)" json:"to_email,omitempty"`
	ToPhoneNumber string              `gorm:"type:varchar(30)" json:"to_phone_number,omitempty"`
	Subject       string              `gorm:"type:varchar(200)" json:"subject,omitempty"`
	MessageBody   string              `gorm:"type:varchar(2000)" json:"message_body,omitempty"`
	TemplateName  string              `gorm:"type:varchar(100)" json:"template_name,omitempty"`

	Status            NotificationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ProviderName      string             `gorm:"type:varchar(50)" json:"provider_name,omitempty"`
	ProviderMessageID string             `gorm:"type:varchar(100)" json:"provider_message_id,omitempty"`
	ErrorMessage      string             `gorm:"type:varchar(500)" json:"error_message,omitempty"`
	SentAtUtc         *time.Time         `json:"sent_at_utc,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
