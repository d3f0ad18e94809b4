package usecase

import (
	"context"
	"strconv"
	"time"

	"doctor-appointment-system/internal/converter"
	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"
	"doctor-appointment-system/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminPatientUsecase interface {
	List(ctx context.Context, search, filter string) (*dto.PatientAdminListResponse, error)
	Search(ctx context.Context, search, filter string) ([]dto.PatientAdminRow, error)
	Get(ctx context.Context, profileID int) (*dto.PatientDetailResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientRequest, imagePath string) (*dto.PatientDetailResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, profileID int, req *dto.UpdatePatientRequest, imagePath string) (*dto.PatientDetailResponse, error)
	SetActive(ctx context.Context, actorID uuid.UUID, profileID int, active bool) error
}

type adminPatientUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	patientRepo   repository.PatientProfileRepository
	auditService  service.AuditService
	uploadService service.UploadService
}

func NewAdminPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientProfileRepository,
	auditService service.AuditService,
	uploadService service.UploadService,
) AdminPatientUsecase {
	return &adminPatientUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		patientRepo:   patientRepo,
		auditService:  auditService,
		uploadService: uploadService,
	}
}

func filterPatientRows(profiles []entity.PatientProfile, search, filter string) []entity.PatientProfile {
	out := make([]entity.PatientProfile, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		active := p.IsActive && p.User.IsActive
		if !matchesPillFilter(filter, active) {
			continue
		}
		if !matchesSearch(search, p.User.FullName(), p.User.Email, p.User.PhoneNumber) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

func (u *adminPatientUsecase) loadFiltered(ctx context.Context, search, filter string) ([]entity.PatientProfile, []entity.PatientProfile, error) {
	profiles, err := u.patientRepo.FindAllWithUser(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load patients: %+v", err)
		return nil, nil, err
	}
	return profiles, filterPatientRows(profiles, search, filter), nil
}

func (u *adminPatientUsecase) List(ctx context.Context, search, filter string) (*dto.PatientAdminListResponse, error) {
	all, filtered, err := u.loadFiltered(ctx, search, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.PatientAdminListResponse{
		Patients: make([]dto.PatientAdminRow, 0, len(filtered)),
		Total:    int64(len(all)),
	}
	for i := range all {
		if all[i].IsActive && all[i].User.IsActive {
			resp.Active++
		}
	}
	resp.Inactive = resp.Total - resp.Active

	for i := range filtered {
		resp.Patients = append(resp.Patients, converter.PatientToAdminRow(&filtered[i]))
	}
	return resp, nil
}

func (u *adminPatientUsecase) Search(ctx context.Context, search, filter string) ([]dto.PatientAdminRow, error) {
	_, filtered, err := u.loadFiltered(ctx, search, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.PatientAdminRow, 0, len(filtered))
	for i := range filtered {
		rows = append(rows, converter.PatientToAdminRow(&filtered[i]))
	}
	return rows, nil
}

func (u *adminPatientUsecase) Get(ctx context.Context, profileID int) (*dto.PatientDetailResponse, error) {
	profile, err := u.patientRepo.FindByID(u.db.WithContext(ctx), profileID)
	if err != nil {
		u.log.Warnf("Failed to load patient %d: %+v", profileID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return converter.PatientToDetailResponse(profile), nil
}

func (u *adminPatientUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientRequest, imagePath string) (*dto.PatientDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dob = &parsed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:            req.Email,
		Password:         string(hashedPassword),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		PhoneNumber:      req.PhoneNumber,
		DateOfBirth:      dob,
		Gender:           req.Gender,
		Address:          req.Address,
		ProfileImagePath: imagePath,
		RoleID:           entity.RoleIDPatient,
		IsActive:         true,
		CreatedByUserID:  &actorID,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.PatientProfile{
		UserID:                   user.ID,
		BloodGroup:               req.BloodGroup,
		EmergencyContactName:     req.EmergencyContactName,
		EmergencyContact:         req.EmergencyContact,
		EmergencyContactRelation: req.EmergencyContactRelation,
		IsActive:                 true,
		CreatedByUserID:          &actorID,
	}

	if err := u.patientRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, "PatientProfile", strconv.Itoa(profile.ID),
		"Created patient "+user.FullName(), map[string]interface{}{
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, profile.ID)
}

func (u *adminPatientUsecase) Update(ctx context.Context, actorID uuid.UUID, profileID int, req *dto.UpdatePatientRequest, imagePath string) (*dto.PatientDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientRepo.FindByID(tx, profileID)
	if err != nil {
		u.log.Warnf("Failed to load patient %d: %+v", profileID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	user := &profile.User
	oldImagePath := ""

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		user.DateOfBirth = &parsed
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if imagePath != "" {
		oldImagePath = user.ProfileImagePath
		user.ProfileImagePath = imagePath
	}

	if req.BloodGroup != "" {
		profile.BloodGroup = req.BloodGroup
	}
	if req.EmergencyContactName != "" {
		profile.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContact != "" {
		profile.EmergencyContact = req.EmergencyContact
	}
	if req.EmergencyContactRelation != "" {
		profile.EmergencyContactRelation = req.EmergencyContactRelation
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}
	if err := u.patientRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, "PatientProfile", strconv.Itoa(profile.ID),
		"Updated patient "+user.FullName(), nil, map[string]interface{}{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if oldImagePath != "" {
		u.uploadService.DeleteProfileImage(oldImagePath)
	}

	return u.Get(ctx, profile.ID)
}

func (u *adminPatientUsecase) SetActive(ctx context.Context, actorID uuid.UUID, profileID int, active bool) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientRepo.FindByID(tx, profileID)
	if err != nil {
		u.log.Warnf("Failed to load patient %d: %+v", profileID, err)
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}

	if profile.IsActive == active && profile.User.IsActive == active {
		return nil
	}

	profile.IsActive = active
	profile.User.IsActive = active

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to update user status: %+v", err)
		return err
	}
	if err := u.patientRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient status: %+v", err)
		return err
	}

	if err := u.auditService.LogStatusChange(ctx, tx, &actorID, "PatientProfile", strconv.Itoa(profile.ID), active); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
