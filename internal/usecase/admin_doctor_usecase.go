package usecase

import (
	"context"
	"errors"
	"sort"
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

var ErrProfileNotFound = errors.New("profile not found")

type AdminDoctorUsecase interface {
	List(ctx context.Context, search, filter string) (*dto.DoctorAdminListResponse, error)
	Search(ctx context.Context, search, filter string) ([]dto.DoctorAdminRow, error)
	Get(ctx context.Context, profileID int) (*dto.DoctorDetailResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateDoctorRequest, imagePath string) (*dto.DoctorDetailResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, profileID int, req *dto.UpdateDoctorRequest, imagePath string) (*dto.DoctorDetailResponse, error)
	SetActive(ctx context.Context, actorID uuid.UUID, profileID int, active bool) error
}

type adminDoctorUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	doctorRepo    repository.DoctorProfileRepository
	specialtyRepo repository.SpecialtyRepository
	auditService  service.AuditService
	uploadService service.UploadService
}

func NewAdminDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	specialtyRepo repository.SpecialtyRepository,
	auditService service.AuditService,
	uploadService service.UploadService,
) AdminDoctorUsecase {
	return &adminDoctorUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
		auditService:  auditService,
		uploadService: uploadService,
	}
}

// filterDoctorRows applies the status pill then the free-text search to
// rows already loaded with their users and specialties.
func filterDoctorRows(profiles []entity.DoctorProfile, search, filter string) []entity.DoctorProfile {
	out := make([]entity.DoctorProfile, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		active := p.IsActive && p.User.IsActive
		if !matchesPillFilter(filter, active) {
			continue
		}
		if !matchesSearch(search, p.User.FullName(), p.User.Email, p.User.PhoneNumber, p.SpecialtyNames()) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

func (u *adminDoctorUsecase) loadFiltered(ctx context.Context, search, filter string) ([]entity.DoctorProfile, []entity.DoctorProfile, error) {
	profiles, err := u.doctorRepo.FindAllWithUser(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		return nil, nil, err
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i].User.FirstName != profiles[j].User.FirstName {
			return profiles[i].User.FirstName < profiles[j].User.FirstName
		}
		return profiles[i].User.LastName < profiles[j].User.LastName
	})

	return profiles, filterDoctorRows(profiles, search, filter), nil
}

func (u *adminDoctorUsecase) List(ctx context.Context, search, filter string) (*dto.DoctorAdminListResponse, error) {
	all, filtered, err := u.loadFiltered(ctx, search, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.DoctorAdminListResponse{
		Doctors: make([]dto.DoctorAdminRow, 0, len(filtered)),
		Total:   int64(len(all)),
	}
	for i := range all {
		if all[i].IsActive && all[i].User.IsActive {
			resp.Active++
		}
	}
	resp.Inactive = resp.Total - resp.Active

	for i := range filtered {
		resp.Doctors = append(resp.Doctors, converter.DoctorToAdminRow(&filtered[i]))
	}
	return resp, nil
}

func (u *adminDoctorUsecase) Search(ctx context.Context, search, filter string) ([]dto.DoctorAdminRow, error) {
	_, filtered, err := u.loadFiltered(ctx, search, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.DoctorAdminRow, 0, len(filtered))
	for i := range filtered {
		rows = append(rows, converter.DoctorToAdminRow(&filtered[i]))
	}
	return rows, nil
}

func (u *adminDoctorUsecase) Get(ctx context.Context, profileID int) (*dto.DoctorDetailResponse, error) {
	profile, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), profileID)
	if err != nil {
		u.log.Warnf("Failed to load doctor %d: %+v", profileID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return converter.DoctorToDetailResponse(profile), nil
}

func (u *adminDoctorUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateDoctorRequest, imagePath string) (*dto.DoctorDetailResponse, error) {
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
		RoleID:           entity.RoleIDDoctor,
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

	profile := &entity.DoctorProfile{
		UserID:                  user.ID,
		LicenseNumber:           req.LicenseNumber,
		Qualification:           req.Qualification,
		Designation:             req.Designation,
		Experience:              req.Experience,
		VisitCharge:             req.VisitCharge,
		FollowUpCharge:          req.FollowUpCharge,
		IsTelemedicineAvailable: req.IsTelemedicineAvailable,
		Description:             req.Description,
		RoomNo:                  req.RoomNo,
		MaxAppointmentsPerDay:   req.MaxAppointmentsPerDay,
		AutoAcceptAppointments:  req.AutoAcceptAppointments,
		IsActive:                true,
		CreatedByUserID:         &actorID,
	}

	if err := u.doctorRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if len(req.SpecialtyIDs) > 0 {
		if err := u.specialtyRepo.ReplaceDoctorSpecialties(tx, profile.ID, req.SpecialtyIDs); err != nil {
			u.log.Warnf("Failed to assign specialties: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, "DoctorProfile", strconv.Itoa(profile.ID),
		"Created doctor "+user.FullName(), map[string]interface{}{
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

func (u *adminDoctorUsecase) Update(ctx context.Context, actorID uuid.UUID, profileID int, req *dto.UpdateDoctorRequest, imagePath string) (*dto.DoctorDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByID(tx, profileID)
	if err != nil {
		u.log.Warnf("Failed to load doctor %d: %+v", profileID, err)
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

	if req.LicenseNumber != "" {
		profile.LicenseNumber = req.LicenseNumber
	}
	if req.Qualification != "" {
		profile.Qualification = req.Qualification
	}
	if req.Designation != "" {
		profile.Designation = req.Designation
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if req.VisitCharge != nil {
		profile.VisitCharge = *req.VisitCharge
	}
	if req.FollowUpCharge != nil {
		profile.FollowUpCharge = req.FollowUpCharge
	}
	if req.IsTelemedicineAvailable != nil {
		profile.IsTelemedicineAvailable = *req.IsTelemedicineAvailable
	}
	if req.Description != "" {
		profile.Description = req.Description
	}
	if req.RoomNo != "" {
		profile.RoomNo = req.RoomNo
	}
	if req.MaxAppointmentsPerDay != nil {
		profile.MaxAppointmentsPerDay = *req.MaxAppointmentsPerDay
	}
	if req.AutoAcceptAppointments != nil {
		profile.AutoAcceptAppointments = *req.AutoAcceptAppointments
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}
	if err := u.doctorRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	// Wholesale replacement keeps the first id as the primary specialty
	if req.SpecialtyIDs != nil {
		if err := u.specialtyRepo.ReplaceDoctorSpecialties(tx, profile.ID, req.SpecialtyIDs); err != nil {
			u.log.Warnf("Failed to replace specialties: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, "DoctorProfile", strconv.Itoa(profile.ID),
		"Updated doctor "+user.FullName(), nil, map[string]interface{}{
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

func (u *adminDoctorUsecase) SetActive(ctx context.Context, actorID uuid.UUID, profileID int, active bool) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByID(tx, profileID)
	if err != nil {
		u.log.Warnf("Failed to load doctor %d: %+v", profileID, err)
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}

	// Re-applying the current state is a no-op
	if profile.IsActive == active && profile.User.IsActive == active {
		return nil
	}

	profile.IsActive = active
	profile.User.IsActive = active

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to update user status: %+v", err)
		return err
	}
	if err := u.doctorRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor status: %+v", err)
		return err
	}

	if err := u.auditService.LogStatusChange(ctx, tx, &actorID, "DoctorProfile", strconv.Itoa(profile.ID), active); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
