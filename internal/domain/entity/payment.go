package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the state of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentMethod is how a payment was (or will be) made.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodBkash  PaymentMethod = "bkash"
	PaymentMethodNagad  PaymentMethod = "nagad"
	PaymentMethodRocket PaymentMethod = "rocket"
	PaymentMethodCard   PaymentMethod = "card"
)

// Payment records money owed or collected for an appointment.
type Payment struct {
	ID            int `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID int `gorm:"not null;index" json:"appointment_id"`

	Amount   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Currency string          `gorm:"type:varchar(10);not null;default:'BDT'" json:"currency"`

	Status PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Method PaymentMethod `gorm:"type:varchar(20);not null" json:"method"`

	GatewayTransactionID string `gorm:"type:varchar(100)" json:"gateway_transaction_id,omitempty"`
	ProviderName         string `gorm:"type:varchar(50)" json:"provider_name,omitempty"`

	PaidAtUtc         *time.Time `json:"paid_at_utc,omitempty"`
	InitiatedByUserID *uuid.UUID `gorm:"type:uuid" json:"initiated_by_user_id,omitempty"`

	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsDigital reports whether the payment went through a non-cash channel.
func (p *Payment) IsDigital() bool {
	return p.Method != PaymentMethodCash
}

// RevenueAt returns the timestamp used for revenue bucketing: PaidAtUtc
// when the gateway reported one, otherwise the record creation time.
func (p *Payment) RevenueAt() time.Time {
	if p.PaidAtUtc != nil {
		return *p.PaidAtUtc
	}
	return p.CreatedAt
}
