package usecase

import (
	"errors"

	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAccountInactive is returned when a user's profile is missing or
// either the profile or the user row has been deactivated. Dashboards
// resolve the profile before running any aggregation query.
var ErrAccountInactive = errors.New("account is currently inactive")

type ProfileResolver struct {
	doctorRepo       repository.DoctorProfileRepository
	patientRepo      repository.PatientProfileRepository
	receptionistRepo repository.ReceptionistProfileRepository
	adminRepo        repository.AdminProfileRepository
}

func NewProfileResolver(
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	receptionistRepo repository.ReceptionistProfileRepository,
	adminRepo repository.AdminProfileRepository,
) *ProfileResolver {
	return &ProfileResolver{
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
		receptionistRepo: receptionistRepo,
		adminRepo:        adminRepo,
	}
}

func (r *ProfileResolver) ResolveDoctor(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	profile, err := r.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.IsActive || !profile.User.IsActive {
		return nil, ErrAccountInactive
	}
	return profile, nil
}

func (r *ProfileResolver) ResolvePatient(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	profile, err := r.patientRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.IsActive || !profile.User.IsActive {
		return nil, ErrAccountInactive
	}
	return profile, nil
}

func (r *ProfileResolver) ResolveReceptionist(db *gorm.DB, userID uuid.UUID) (*entity.ReceptionistProfile, error) {
	profile, err := r.receptionistRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.IsActive || !profile.User.IsActive {
		return nil, ErrAccountInactive
	}
	return profile, nil
}

func (r *ProfileResolver) ResolveAdmin(db *gorm.DB, userID uuid.UUID) (*entity.AdminProfile, error) {
	profile, err := r.adminRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.IsActive || !profile.User.IsActive {
		return nil, ErrAccountInactive
	}
	return profile, nil
}
