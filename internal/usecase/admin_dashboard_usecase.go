package usecase

import (
	"context"
	"time"

	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdminDashboardUsecase interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.AdminDashboardResponse, error)
}

type adminDashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	loc             *time.Location
	resolver        *ProfileResolver
	userRepo        repository.UserRepository
	specialtyRepo   repository.SpecialtyRepository
	appointmentRepo repository.AppointmentRepository
	paymentRepo     repository.PaymentRepository
}

func NewAdminDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	resolver *ProfileResolver,
	userRepo repository.UserRepository,
	specialtyRepo repository.SpecialtyRepository,
	appointmentRepo repository.AppointmentRepository,
	paymentRepo repository.PaymentRepository,
) AdminDashboardUsecase {
	return &adminDashboardUsecase{
		db:              db,
		log:             log,
		loc:             loc,
		resolver:        resolver,
		userRepo:        userRepo,
		specialtyRepo:   specialtyRepo,
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
	}
}

func (u *adminDashboardUsecase) GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.AdminDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	if _, err := u.resolver.ResolveAdmin(db, userID); err != nil {
		return nil, err
	}

	resp := &dto.AdminDashboardResponse{}

	var err error
	if resp.TotalAdmins, err = u.userRepo.CountByRole(db, entity.RoleIDAdmin); err != nil {
		u.log.Warnf("Failed to count admins: %+v", err)
		return nil, err
	}
	if resp.TotalDoctors, err = u.userRepo.CountByRole(db, entity.RoleIDDoctor); err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}
	if resp.TotalReceptionists, err = u.userRepo.CountByRole(db, entity.RoleIDReceptionist); err != nil {
		u.log.Warnf("Failed to count receptionists: %+v", err)
		return nil, err
	}
	if resp.TotalPatients, err = u.userRepo.CountByRole(db, entity.RoleIDPatient); err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	if resp.ActiveSpecialties, err = u.specialtyRepo.CountActive(db); err != nil {
		u.log.Warnf("Failed to count specialties: %+v", err)
		return nil, err
	}
	if resp.ActiveAppointments, err = u.appointmentRepo.CountActive(db); err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	now := time.Now()
	dayFrom, dayTo := dayWindow(now, u.loc)
	if resp.TodayAppointments, err = u.appointmentRepo.CountAllInWindow(db, dayFrom, dayTo); err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}

	monthFrom, monthTo := monthWindow(now, u.loc)
	if resp.RevenueThisMonth, err = u.paymentRepo.SumPaidInWindow(db, monthFrom, monthTo); err != nil {
		u.log.Warnf("Failed to sum monthly revenue: %+v", err)
		return nil, err
	}

	return resp, nil
}
