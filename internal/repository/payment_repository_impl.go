package repository

import (
	"time"

	"doctor-appointment-system/internal/domain/entity"
	domainRepo "doctor-appointment-system/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

type amountRow struct {
	Total decimal.Decimal
}

// SumPaidInWindow windows strictly on PaidAtUtc; a Paid row the gateway
// never stamped is not revenue for any period here.
func (r *paymentRepository) SumPaidInWindow(db *gorm.DB, from, to time.Time) (decimal.Decimal, error) {
	var row amountRow
	err := db.Model(&entity.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", entity.PaymentStatusPaid).
		Where("is_active = ?", true).
		Where("paid_at_utc >= ? AND paid_at_utc < ?", from, to).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *paymentRepository) SumPaidForAppointments(db *gorm.DB, appointmentIDs []int) (decimal.Decimal, error) {
	if len(appointmentIDs) == 0 {
		return decimal.Zero, nil
	}
	var row amountRow
	err := db.Model(&entity.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", entity.PaymentStatusPaid).
		Where("is_active = ?", true).
		Where("appointment_id IN ?", appointmentIDs).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *paymentRepository) FindPaidForDoctorBetween(db *gorm.DB, doctorProfileID int, from, to time.Time) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.
		Joins("JOIN appointments ON appointments.id = payments.appointment_id").
		Where("appointments.doctor_profile_id = ?", doctorProfileID).
		Where("appointments.is_active = ?", true).
		Where("payments.status = ?", entity.PaymentStatusPaid).
		Where("payments.is_active = ?", true).
		Where("COALESCE(payments.paid_at_utc, payments.created_at) >= ? AND COALESCE(payments.paid_at_utc, payments.created_at) < ?", from, to).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) SumCashCollectedInWindow(db *gorm.DB, from, to time.Time) (decimal.Decimal, error) {
	var row amountRow
	err := db.Model(&entity.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", entity.PaymentStatusPaid).
		Where("is_active = ?", true).
		Where("method = ?", entity.PaymentMethodCash).
		Where("paid_at_utc >= ? AND paid_at_utc < ?", from, to).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *paymentRepository) CountPendingForAppointmentsInWindow(db *gorm.DB, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Payment{}).
		Joins("JOIN appointments ON appointments.id = payments.appointment_id").
		Where("payments.status = ?", entity.PaymentStatusPending).
		Where("payments.is_active = ?", true).
		Where("appointments.is_active = ?", true).
		Where("appointments.appointment_date_time >= ? AND appointments.appointment_date_time < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *paymentRepository) SumDigitalPaidForPatient(db *gorm.DB, patientProfileID int) (decimal.Decimal, error) {
	var row amountRow
	err := db.Model(&entity.Payment{}).
		Select("COALESCE(SUM(payments.amount), 0) AS total").
		Joins("JOIN appointments ON appointments.id = payments.appointment_id").
		Where("appointments.patient_profile_id = ?", patientProfileID).
		Where("appointments.is_active = ?", true).
		Where("payments.status = ?", entity.PaymentStatusPaid).
		Where("payments.is_active = ?", true).
		Where("payments.method <> ?", entity.PaymentMethodCash).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *paymentRepository) LatestForAppointments(db *gorm.DB, appointmentIDs []int) (map[int]entity.Payment, error) {
	result := make(map[int]entity.Payment, len(appointmentIDs))
	if len(appointmentIDs) == 0 {
		return result, nil
	}
	var payments []entity.Payment
	err := db.
		Where("appointment_id IN ?", appointmentIDs).
		Where("is_active = ?", true).
		Order("appointment_id ASC, created_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		result[p.AppointmentID] = p
	}
	return result, nil
}
