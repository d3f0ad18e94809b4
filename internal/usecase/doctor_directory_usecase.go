package usecase

import (
	"context"

	"doctor-appointment-system/internal/converter"
	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DoctorDirectoryUsecase serves the "Find a Doctor" cards shown to
// patients and receptionists.
type DoctorDirectoryUsecase interface {
	Directory(ctx context.Context, query *dto.DoctorDirectoryQuery) (*dto.DoctorDirectoryResponse, error)
}

type doctorDirectoryUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorProfileRepository
}

func NewDoctorDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorDirectoryUsecase) Directory(ctx context.Context, query *dto.DoctorDirectoryQuery) (*dto.DoctorDirectoryResponse, error) {
	db := u.db.WithContext(ctx)

	filter := &entity.DoctorDirectoryFilter{
		Name:        query.Name,
		SpecialtyID: query.SpecialtyID,
		Experience:  query.Experience,
		Page:        query.Page,
	}

	// Count first so an out-of-range page can be clamped before fetching.
	_, total, err := u.doctorRepo.Directory(db, filter, 0, 0)
	if err != nil {
		u.log.Warnf("Failed to count doctor directory: %+v", err)
		return nil, err
	}

	page, totalPages := clampPage(query.Page, total, entity.DirectoryPageSize)

	profiles, _, err := u.doctorRepo.Directory(db, filter, (page-1)*entity.DirectoryPageSize, entity.DirectoryPageSize)
	if err != nil {
		u.log.Warnf("Failed to load doctor directory page: %+v", err)
		return nil, err
	}

	cards := make([]dto.DoctorCard, 0, len(profiles))
	for i := range profiles {
		cards = append(cards, converter.DoctorToCard(&profiles[i]))
	}

	return &dto.DoctorDirectoryResponse{
		Doctors:    cards,
		Page:       page,
		PageSize:   entity.DirectoryPageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
