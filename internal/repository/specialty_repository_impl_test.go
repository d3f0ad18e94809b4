package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSpecialtyNameExists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSpecialtyRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "specialties" WHERE LOWER\(name\) = LOWER\(\$1\)`).
		WithArgs("Cardiology").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.NameExists(db, "Cardiology", 0)
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSpecialtyNameExistsExcludesOwnRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSpecialtyRepository()

	mock.ExpectQuery(`LOWER\(name\) = LOWER\(\$1\) AND id <> \$2`).
		WithArgs("Cardiology", 3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.NameExists(db, "Cardiology", 3)
	require.NoError(t, err)
	require.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSpecialtyDoctorCounts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSpecialtyRepository()

	mock.ExpectQuery(`SELECT specialty_id, COUNT\(\*\) AS total FROM "doctor_specialties"`).
		WillReturnRows(sqlmock.NewRows([]string{"specialty_id", "total"}).
			AddRow(1, 4).
			AddRow(2, 1))

	counts, err := repo.DoctorCounts(db)
	require.NoError(t, err)
	require.Equal(t, map[int]int64{1: 4, 2: 1}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}
