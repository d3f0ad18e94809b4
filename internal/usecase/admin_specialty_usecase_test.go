package usecase

import (
	"context"
	"testing"

	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/repository"
	"doctor-appointment-system/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newSpecialtyUsecase(t *testing.T) (AdminSpecialtyUsecase, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	log := newTestLogger()
	auditService := service.NewAuditService(db, log, repository.NewAuditLogRepository())
	return NewAdminSpecialtyUsecase(db, log, repository.NewSpecialtyRepository(), auditService), mock
}

func TestSpecialtyUpdateRenameCollisionLeavesRowUntouched(t *testing.T) {
	uc, mock := newSpecialtyUsecase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "is_active"}).
			AddRow(3, "Dermatology", "", true))
	// Case-insensitive collision with another specialty's name
	mock.ExpectQuery(`SELECT count\(\*\) FROM "specialties"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := uc.Update(context.Background(), uuid.New(), 3, &dto.UpdateSpecialtyRequest{Name: "cardiology"})
	require.ErrorIs(t, err, ErrSpecialtyNameExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSpecialtySetActiveIsIdempotent(t *testing.T) {
	uc, mock := newSpecialtyUsecase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active"}).
			AddRow(3, "Dermatology", true))
	mock.ExpectRollback()

	// Already active: no update statement is issued
	err := uc.SetActive(context.Background(), uuid.New(), 3, true)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSpecialtySetActiveMissingRow(t *testing.T) {
	uc, mock := newSpecialtyUsecase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "specialties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := uc.SetActive(context.Background(), uuid.New(), 99, false)
	require.ErrorIs(t, err, ErrSpecialtyNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSpecialtyCreateRejectsDuplicateName(t *testing.T) {
	uc, mock := newSpecialtyUsecase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "specialties"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreateSpecialtyRequest{Name: "Cardiology"})
	require.ErrorIs(t, err, ErrSpecialtyNameExists)
	require.NoError(t, mock.ExpectationsWereMet())
}
