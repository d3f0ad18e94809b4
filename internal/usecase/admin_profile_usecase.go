package usecase

import (
	"context"
	"strconv"
	"time"

	"doctor-appointment-system/internal/converter"
	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/repository"
	"doctor-appointment-system/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdminProfileUsecase is the logged-in admin's own profile: the "My
// Profile" view and edit, scoped to the caller's user id.
type AdminProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (*dto.AdminProfileResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateAdminProfileRequest, imagePath string) (*dto.AdminProfileResponse, error)
}

type adminProfileUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	adminRepo     repository.AdminProfileRepository
	auditService  service.AuditService
	uploadService service.UploadService
}

func NewAdminProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	adminRepo repository.AdminProfileRepository,
	auditService service.AuditService,
	uploadService service.UploadService,
) AdminProfileUsecase {
	return &adminProfileUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		adminRepo:     adminRepo,
		auditService:  auditService,
		uploadService: uploadService,
	}
}

func (u *adminProfileUsecase) Get(ctx context.Context, userID uuid.UUID) (*dto.AdminProfileResponse, error) {
	profile, err := u.adminRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to load admin profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return converter.AdminToProfileResponse(profile), nil
}

func (u *adminProfileUsecase) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateAdminProfileRequest, imagePath string) (*dto.AdminProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.adminRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to load admin profile for user %s: %+v", userID, err)
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

	if req.OfficeRoomNo != "" {
		profile.OfficeRoomNo = req.OfficeRoomNo
	}
	if req.OfficePhone != "" {
		profile.OfficePhone = req.OfficePhone
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}
	if err := u.adminRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update admin profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, "AdminProfile", strconv.Itoa(profile.ID),
		"Updated own profile", nil, map[string]interface{}{
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

	return u.Get(ctx, userID)
}
