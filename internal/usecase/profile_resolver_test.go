package usecase

import (
	"testing"

	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDoctorProfileRepo struct {
	repository.DoctorProfileRepository
	profile *entity.DoctorProfile
}

func (f *fakeDoctorProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	return f.profile, nil
}

type fakePatientProfileRepo struct {
	repository.PatientProfileRepository
	profile *entity.PatientProfile
}

func (f *fakePatientProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	return f.profile, nil
}

func TestResolveDoctor(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		profile *entity.DoctorProfile
		wantErr error
	}{
		{"missing profile", nil, ErrAccountInactive},
		{"deactivated profile", &entity.DoctorProfile{IsActive: false, User: entity.User{IsActive: true}}, ErrAccountInactive},
		{"deactivated user", &entity.DoctorProfile{IsActive: true, User: entity.User{IsActive: false}}, ErrAccountInactive},
		{"active", &entity.DoctorProfile{ID: 7, IsActive: true, User: entity.User{IsActive: true}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewProfileResolver(&fakeDoctorProfileRepo{profile: tt.profile}, nil, nil, nil)

			profile, err := resolver.ResolveDoctor(nil, userID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, profile)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 7, profile.ID)
		})
	}
}

func TestResolvePatient(t *testing.T) {
	resolver := NewProfileResolver(nil, &fakePatientProfileRepo{
		profile: &entity.PatientProfile{IsActive: true, User: entity.User{IsActive: false}},
	}, nil, nil)

	_, err := resolver.ResolvePatient(nil, uuid.New())
	require.ErrorIs(t, err, ErrAccountInactive)
}
