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

type AdminReceptionistUsecase interface {
	List(ctx context.Context, search, filter string) (*dto.ReceptionistAdminListResponse, error)
	Search(ctx context.Context, search, filter string) ([]dto.ReceptionistAdminRow, error)
	Get(ctx context.Context, profileID int) (*dto.ReceptionistDetailResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateReceptionistRequest, imagePath string) (*dto.ReceptionistDetailResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, profileID int, req *dto.UpdateReceptionistRequest, imagePath string) (*dto.ReceptionistDetailResponse, error)
	SetActive(ctx context.Context, actorID uuid.UUID, profileID int, active bool) error
}

type adminReceptionistUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	receptionistRepo repository.ReceptionistProfileRepository
	auditService     service.AuditService
	uploadService    service.UploadService
}

func NewAdminReceptionistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	receptionistRepo repository.ReceptionistProfileRepository,
	auditService service.AuditService,
	uploadService service.UploadService,
) AdminReceptionistUsecase {
	return &adminReceptionistUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		receptionistRepo: receptionistRepo,
		auditService:     auditService,
		uploadService:    uploadService,
	}
}

// Receptionist search also covers the desk fields: office phone and
// counter number.
func filterReceptionistRows(profiles []entity.ReceptionistProfile, search, filter string) []entity.ReceptionistProfile {
	out := make([]entity.ReceptionistProfile, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		active := p.IsActive && p.User.IsActive
		if !matchesPillFilter(filter, active) {
			continue
		}
		if !matchesSearch(search, p.User.FullName(), p.User.Email, p.User.PhoneNumber, p.OfficePhone, p.CounterNumber) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

func (u *adminReceptionistUsecase) loadFiltered(ctx context.Context, search, filter string) ([]entity.ReceptionistProfile, []entity.ReceptionistProfile, error) {
	profiles, err := u.receptionistRepo.FindAllWithUser(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load receptionists: %+v", err)
		return nil, nil, err
	}
	return profiles, filterReceptionistRows(profiles, search, filter), nil
}

func (u *adminReceptionistUsecase) List(ctx context.Context, search, filter string) (*dto.ReceptionistAdminListResponse, error) {
	all, filtered, err := u.loadFiltered(ctx, search, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReceptionistAdminListResponse{
		Receptionists: make([]dto.ReceptionistAdminRow, 0, len(filtered)),
		Total:         int64(len(all)),
	}
	for i := range all {
		if all[i].IsActive && all[i].User.IsActive {
			resp.Active++
		}
	}
	resp.Inactive = resp.Total - resp.Active

	for i := range filtered {
		resp.Receptionists = append(resp.Receptionists, converter.ReceptionistToAdminRow(&filtered[i]))
	}
	return resp, nil
}

func (u *adminReceptionistUsecase) Search(ctx context.Context, search, filter string) ([]dto.ReceptionistAdminRow, error) {
	_, filtered, err := u.loadFiltered(ctx, search, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ReceptionistAdminRow, 0, len(filtered))
	for i := range filtered {
		rows = append(rows, converter.ReceptionistToAdminRow(&filtered[i]))
	}
	return rows, nil
}

func (u *adminReceptionistUsecase) Get(ctx context.Context, profileID int) (*dto.ReceptionistDetailResponse, error) {
	profile, err := u.receptionistRepo.FindByID(u.db.WithContext(ctx), profileID)
	if err != nil {
		u.log.Warnf("Failed to load receptionist %d: %+v", profileID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return converter.ReceptionistToDetailResponse(profile), nil
}

func (u *adminReceptionistUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateReceptionistRequest, imagePath string) (*dto.ReceptionistDetailResponse, error) {
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
		RoleID:           entity.RoleIDReceptionist,
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

	profile := &entity.ReceptionistProfile{
		UserID:          user.ID,
		OfficePhone:     req.OfficePhone,
		CounterNumber:   req.CounterNumber,
		IsActive:        true,
		CreatedByUserID: &actorID,
	}

	if err := u.receptionistRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create receptionist profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, "ReceptionistProfile", strconv.Itoa(profile.ID),
		"Created receptionist "+user.FullName(), map[string]interface{}{
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

func (u *adminReceptionistUsecase) Update(ctx context.Context, actorID uuid.UUID, profileID int, req *dto.UpdateReceptionistRequest, imagePath string) (*dto.ReceptionistDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.receptionistRepo.FindByID(tx, profileID)
	if err != nil {
		u.log.Warnf("Failed to load receptionist %d: %+v", profileID, err)
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

	if req.OfficePhone != "" {
		profile.OfficePhone = req.OfficePhone
	}
	if req.CounterNumber != "" {
		profile.CounterNumber = req.CounterNumber
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}
	if err := u.receptionistRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update receptionist profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, "ReceptionistProfile", strconv.Itoa(profile.ID),
		"Updated receptionist "+user.FullName(), nil, map[string]interface{}{
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

func (u *adminReceptionistUsecase) SetActive(ctx context.Context, actorID uuid.UUID, profileID int, active bool) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.receptionistRepo.FindByID(tx, profileID)
	if err != nil {
		u.log.Warnf("Failed to load receptionist %d: %+v", profileID, err)
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
	if err := u.receptionistRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update receptionist status: %+v", err)
		return err
	}

	if err := u.auditService.LogStatusChange(ctx, tx, &actorID, "ReceptionistProfile", strconv.Itoa(profile.ID), active); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
