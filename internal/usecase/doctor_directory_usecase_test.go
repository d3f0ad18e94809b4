package usecase

import (
	"context"
	"io"
	"testing"

	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
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

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeDirectoryRepo struct {
	repository.DoctorProfileRepository

	total   int64
	page    []entity.DoctorProfile
	offsets []int
	limits  []int
}

func (f *fakeDirectoryRepo) Directory(db *gorm.DB, filter *entity.DoctorDirectoryFilter, offset, limit int) ([]entity.DoctorProfile, int64, error) {
	f.offsets = append(f.offsets, offset)
	f.limits = append(f.limits, limit)
	if limit <= 0 {
		return nil, f.total, nil
	}
	return f.page, f.total, nil
}

func TestDirectoryClampsPageToLastPage(t *testing.T) {
	db, _ := newTestDB(t)
	repo := &fakeDirectoryRepo{
		total: 17,
		page: []entity.DoctorProfile{
			{ID: 1, User: entity.User{FirstName: "Ayesha", LastName: "Rahman"}},
		},
	}
	uc := NewDoctorDirectoryUsecase(db, newTestLogger(), repo)

	resp, err := uc.Directory(context.Background(), &dto.DoctorDirectoryQuery{Page: 5})
	require.NoError(t, err)

	require.Equal(t, 3, resp.Page)
	require.Equal(t, 3, resp.TotalPages)
	require.Equal(t, int64(17), resp.Total)
	require.Equal(t, entity.DirectoryPageSize, resp.PageSize)

	// Count call first, then the clamped page fetch
	require.Equal(t, []int{0, 16}, repo.offsets)
	require.Equal(t, []int{0, entity.DirectoryPageSize}, repo.limits)

	require.Len(t, resp.Doctors, 1)
	require.Equal(t, "Ayesha Rahman", resp.Doctors[0].FullName)
}

func TestDirectoryDefaultsToFirstPage(t *testing.T) {
	db, _ := newTestDB(t)
	repo := &fakeDirectoryRepo{total: 3}
	uc := NewDoctorDirectoryUsecase(db, newTestLogger(), repo)

	resp, err := uc.Directory(context.Background(), &dto.DoctorDirectoryQuery{Page: 0})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Page)
	require.Equal(t, 1, resp.TotalPages)
	require.Equal(t, []int{0, 0}, repo.offsets)
}

func TestDirectoryEmptyResultStillHasOnePage(t *testing.T) {
	db, _ := newTestDB(t)
	repo := &fakeDirectoryRepo{total: 0}
	uc := NewDoctorDirectoryUsecase(db, newTestLogger(), repo)

	resp, err := uc.Directory(context.Background(), &dto.DoctorDirectoryQuery{Page: 7})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Page)
	require.Equal(t, 1, resp.TotalPages)
	require.Empty(t, resp.Doctors)
}
