package repository

import (
	"time"

	"doctor-appointment-system/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	// SumPaidInWindow sums Paid payments with PaidAtUtc in [from, to).
	SumPaidInWindow(db *gorm.DB, from, to time.Time) (decimal.Decimal, error)
	SumPaidForAppointments(db *gorm.DB, appointmentIDs []int) (decimal.Decimal, error)

	// FindPaidForDoctorBetween returns the doctor's Paid payments whose
	// revenue timestamp (PaidAtUtc, falling back to CreatedAt) lies in
	// [from, to). Bucketing is left to the caller.
	FindPaidForDoctorBetween(db *gorm.DB, doctorProfileID int, from, to time.Time) ([]entity.Payment, error)

	SumCashCollectedInWindow(db *gorm.DB, from, to time.Time) (decimal.Decimal, error)
	// CountPendingForAppointmentsInWindow counts Pending payments whose
	// appointment falls in [from, to).
	CountPendingForAppointmentsInWindow(db *gorm.DB, from, to time.Time) (int64, error)
	SumDigitalPaidForPatient(db *gorm.DB, patientProfileID int) (decimal.Decimal, error)

	// LatestForAppointments returns each appointment's most recent payment.
	LatestForAppointments(db *gorm.DB, appointmentIDs []int) (map[int]entity.Payment, error)
}
