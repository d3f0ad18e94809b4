package repository

import (
	"testing"
	"time"

	"doctor-appointment-system/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestCountForDoctorInWindowSkipsSoftDeleted(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAppointmentRepository()

	from := time.Date(2026, 8, 27, 18, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE doctor_profile_id = \$1 AND is_active = \$2`).
		WithArgs(7, true, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountForDoctorInWindow(db, 7, from, to)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUpcomingConfirmedForDoctorSkipsSoftDeleted(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAppointmentRepository()

	after := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`doctor_profile_id = \$1 AND is_active = \$2 AND appointment_date_time >= \$3 AND status = \$4`).
		WithArgs(7, true, after, string(entity.AppointmentStatusConfirmed)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountUpcomingConfirmedForDoctor(db, 7, after)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountDistinctPatientsCompletedSkipsSoftDeleted(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT\("patient_profile_id"\)\) FROM "appointments" WHERE doctor_profile_id = \$1 AND is_active = \$2 AND status = \$3`).
		WithArgs(7, true, string(entity.AppointmentStatusCompleted)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountDistinctPatientsCompleted(db, 7)
	require.NoError(t, err)
	require.Equal(t, int64(5), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
