package repository

import (
	"testing"
	"time"

	"doctor-appointment-system/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestSumPaidInWindowUsesPaidAtOnly(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPaymentRepository()

	from := time.Date(2026, 7, 31, 18, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) AS total FROM "payments" WHERE status = \$1 AND is_active = \$2 AND \(?paid_at_utc >= \$3 AND paid_at_utc < \$4`).
		WithArgs(string(entity.PaymentStatusPaid), true, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("1500.00"))

	total, err := repo.SumPaidInWindow(db, from, to)
	require.NoError(t, err)
	require.True(t, total.Equal(decimalFromString(t, "1500.00")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSumPaidForAppointmentsSkipsSoftDeleted(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPaymentRepository()

	mock.ExpectQuery(`status = \$1 AND is_active = \$2 AND appointment_id IN \(\$3,\$4\)`).
		WithArgs(string(entity.PaymentStatusPaid), true, 11, 12).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("900.00"))

	total, err := repo.SumPaidForAppointments(db, []int{11, 12})
	require.NoError(t, err)
	require.True(t, total.Equal(decimalFromString(t, "900.00")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPaidForDoctorBetweenSkipsSoftDeleted(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPaymentRepository()

	from := time.Date(2025, 12, 31, 18, 0, 0, 0, time.UTC)
	to := time.Date(2026, 12, 31, 18, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`appointments\.doctor_profile_id = \$1 AND appointments\.is_active = \$2 AND payments\.status = \$3 AND payments\.is_active = \$4`).
		WithArgs(7, true, string(entity.PaymentStatusPaid), true, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "appointment_id", "amount", "status"}).
			AddRow(1, 11, "500.00", string(entity.PaymentStatusPaid)))

	payments, err := repo.FindPaidForDoctorBetween(db, 7, from, to)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
