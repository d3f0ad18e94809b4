package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestUserFindByEmailNotFoundIsNil(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository()

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WithArgs("missing@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindByEmail(db, "missing@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository()

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WithArgs("jane@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "first_name", "last_name", "role_id", "is_active"}).
			AddRow(id, "jane@example.com", "Jane", "Doe", 4, true))

	user, err := repo.FindByEmail(db, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, id, user.ID)
	require.Equal(t, "Jane Doe", user.FullName())
	require.True(t, user.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCountByRole(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountByRole(db, 2)
	require.NoError(t, err)
	require.Equal(t, int64(12), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
