package usecase

import (
	"context"
	"errors"
	"strconv"

	"doctor-appointment-system/internal/converter"
	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"
	"doctor-appointment-system/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSpecialtyNotFound   = errors.New("specialty not found")
	ErrSpecialtyNameExists = errors.New("specialty name already exists")
)

type AdminSpecialtyUsecase interface {
	List(ctx context.Context, search, filter string) (*dto.SpecialtyListResponse, error)
	Search(ctx context.Context, search, filter string) ([]dto.SpecialtyRow, error)
	Get(ctx context.Context, id int) (*dto.SpecialtyRow, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyRow, error)
	Update(ctx context.Context, actorID uuid.UUID, id int, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyRow, error)
	SetActive(ctx context.Context, actorID uuid.UUID, id int, active bool) error
}

type adminSpecialtyUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
	auditService  service.AuditService
}

func NewAdminSpecialtyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	auditService service.AuditService,
) AdminSpecialtyUsecase {
	return &adminSpecialtyUsecase{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
		auditService:  auditService,
	}
}

func filterSpecialtyRows(specialties []entity.Specialty, search, filter string) []entity.Specialty {
	out := make([]entity.Specialty, 0, len(specialties))
	for i := range specialties {
		s := &specialties[i]
		if !matchesPillFilter(filter, s.IsActive) {
			continue
		}
		if !matchesSearch(search, s.Name, s.Description) {
			continue
		}
		out = append(out, *s)
	}
	return out
}

func (u *adminSpecialtyUsecase) loadFiltered(ctx context.Context, search, filter string) ([]entity.Specialty, []entity.Specialty, map[int]int64, error) {
	db := u.db.WithContext(ctx)

	specialties, err := u.specialtyRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to load specialties: %+v", err)
		return nil, nil, nil, err
	}

	counts, err := u.specialtyRepo.DoctorCounts(db)
	if err != nil {
		u.log.Warnf("Failed to load specialty doctor counts: %+v", err)
		return nil, nil, nil, err
	}

	return specialties, filterSpecialtyRows(specialties, search, filter), counts, nil
}

func (u *adminSpecialtyUsecase) List(ctx context.Context, search, filter string) (*dto.SpecialtyListResponse, error) {
	all, filtered, counts, err := u.loadFiltered(ctx, search, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.SpecialtyListResponse{
		Specialties: make([]dto.SpecialtyRow, 0, len(filtered)),
		Total:       int64(len(all)),
	}
	for i := range all {
		if all[i].IsActive {
			resp.Active++
		}
	}
	resp.Inactive = resp.Total - resp.Active

	for i := range filtered {
		resp.Specialties = append(resp.Specialties, converter.SpecialtyToRow(&filtered[i], counts[filtered[i].ID]))
	}
	return resp, nil
}

func (u *adminSpecialtyUsecase) Search(ctx context.Context, search, filter string) ([]dto.SpecialtyRow, error) {
	_, filtered, counts, err := u.loadFiltered(ctx, search, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.SpecialtyRow, 0, len(filtered))
	for i := range filtered {
		rows = append(rows, converter.SpecialtyToRow(&filtered[i], counts[filtered[i].ID]))
	}
	return rows, nil
}

func (u *adminSpecialtyUsecase) Get(ctx context.Context, id int) (*dto.SpecialtyRow, error) {
	db := u.db.WithContext(ctx)

	specialty, err := u.specialtyRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to load specialty %d: %+v", id, err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	counts, err := u.specialtyRepo.DoctorCounts(db)
	if err != nil {
		u.log.Warnf("Failed to load specialty doctor counts: %+v", err)
		return nil, err
	}

	row := converter.SpecialtyToRow(specialty, counts[specialty.ID])
	return &row, nil
}

func (u *adminSpecialtyUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyRow, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.specialtyRepo.NameExists(tx, req.Name, 0)
	if err != nil {
		u.log.Warnf("Failed to check specialty name: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrSpecialtyNameExists
	}

	specialty := &entity.Specialty{
		Name:            req.Name,
		Description:     req.Description,
		IsActive:        true,
		CreatedByUserID: &actorID,
	}

	if err := u.specialtyRepo.Create(tx, specialty); err != nil {
		// Concurrent insert can still race past NameExists
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyNameExists
		}
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, "Specialty", strconv.Itoa(specialty.ID),
		"Created specialty "+specialty.Name, map[string]interface{}{
			"name": specialty.Name,
		}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	row := converter.SpecialtyToRow(specialty, 0)
	return &row, nil
}

func (u *adminSpecialtyUsecase) Update(ctx context.Context, actorID uuid.UUID, id int, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyRow, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	specialty, err := u.specialtyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to load specialty %d: %+v", id, err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	oldName := specialty.Name

	if req.Name != "" && req.Name != specialty.Name {
		exists, err := u.specialtyRepo.NameExists(tx, req.Name, specialty.ID)
		if err != nil {
			u.log.Warnf("Failed to check specialty name: %+v", err)
			return nil, err
		}
		// A colliding rename leaves the row untouched
		if exists {
			return nil, ErrSpecialtyNameExists
		}
		specialty.Name = req.Name
	}
	if req.Description != "" {
		specialty.Description = req.Description
	}

	if err := u.specialtyRepo.Update(tx, specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyNameExists
		}
		u.log.Warnf("Failed to update specialty: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, "Specialty", strconv.Itoa(specialty.ID),
		"Updated specialty "+specialty.Name,
		map[string]interface{}{"name": oldName},
		map[string]interface{}{"name": specialty.Name},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, specialty.ID)
}

func (u *adminSpecialtyUsecase) SetActive(ctx context.Context, actorID uuid.UUID, id int, active bool) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	specialty, err := u.specialtyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to load specialty %d: %+v", id, err)
		return err
	}
	if specialty == nil {
		return ErrSpecialtyNotFound
	}

	if specialty.IsActive == active {
		return nil
	}

	specialty.IsActive = active
	if err := u.specialtyRepo.Update(tx, specialty); err != nil {
		u.log.Warnf("Failed to update specialty status: %+v", err)
		return err
	}

	if err := u.auditService.LogStatusChange(ctx, tx, &actorID, "Specialty", strconv.Itoa(specialty.ID), active); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
