package usecase

import (
	"context"
	"testing"

	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"
	"doctor-appointment-system/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAdminProfileRepo struct {
	repository.AdminProfileRepository
	profile *entity.AdminProfile
	updated *entity.AdminProfile
}

func (f *fakeAdminProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.AdminProfile, error) {
	return f.profile, nil
}

func (f *fakeAdminProfileRepo) Update(db *gorm.DB, profile *entity.AdminProfile) error {
	f.updated = profile
	return nil
}

type fakeUserRepo struct {
	repository.UserRepository
	updated *entity.User
}

func (f *fakeUserRepo) Update(db *gorm.DB, user *entity.User) error {
	f.updated = user
	return nil
}

type noopAuditService struct{ service.AuditService }

func (noopAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName, entityKey, summary string, oldValue, newValue interface{}) error {
	return nil
}

func TestAdminProfileGetMissingProfile(t *testing.T) {
	db, _ := newTestDB(t)
	u := NewAdminProfileUsecase(db, newTestLogger(), &fakeUserRepo{}, &fakeAdminProfileRepo{}, noopAuditService{}, nil)

	_, err := u.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestAdminProfileUpdateAppliesFields(t *testing.T) {
	db, mock := newTestDB(t)

	userID := uuid.New()
	adminRepo := &fakeAdminProfileRepo{profile: &entity.AdminProfile{
		ID:          3,
		UserID:      userID,
		OfficePhone: "02-5551000",
		User:        entity.User{ID: userID, FirstName: "Old", LastName: "Name", IsActive: true},
	}}
	userRepo := &fakeUserRepo{}

	u := NewAdminProfileUsecase(db, newTestLogger(), userRepo, adminRepo, noopAuditService{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := u.Update(context.Background(), userID, &dto.UpdateAdminProfileRequest{
		FirstName:   "Ayesha",
		OfficePhone: "02-5552000",
	}, "")
	require.NoError(t, err)

	require.NotNil(t, userRepo.updated)
	require.Equal(t, "Ayesha", userRepo.updated.FirstName)
	require.Equal(t, "Name", userRepo.updated.LastName)
	require.NotNil(t, adminRepo.updated)
	require.Equal(t, "02-5552000", adminRepo.updated.OfficePhone)
	require.Equal(t, 3, resp.ProfileID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminProfileUpdateRejectsBadDate(t *testing.T) {
	db, mock := newTestDB(t)

	userID := uuid.New()
	adminRepo := &fakeAdminProfileRepo{profile: &entity.AdminProfile{
		ID:     3,
		UserID: userID,
		User:   entity.User{ID: userID, IsActive: true},
	}}

	u := NewAdminProfileUsecase(db, newTestLogger(), &fakeUserRepo{}, adminRepo, noopAuditService{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := u.Update(context.Background(), userID, &dto.UpdateAdminProfileRequest{
		DateOfBirth: "31-12-2000",
	}, "")
	require.ErrorIs(t, err, ErrInvalidDateFormat)
	require.Nil(t, adminRepo.updated)
	require.NoError(t, mock.ExpectationsWereMet())
}
