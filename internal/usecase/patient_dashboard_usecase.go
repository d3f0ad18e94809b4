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

type PatientDashboardUsecase interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.PatientDashboardResponse, error)
}

type patientDashboardUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	loc              *time.Location
	resolver         *ProfileResolver
	appointmentRepo  repository.AppointmentRepository
	paymentRepo      repository.PaymentRepository
	notificationRepo repository.NotificationRepository
	directory        DoctorDirectoryUsecase
}

func NewPatientDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	resolver *ProfileResolver,
	appointmentRepo repository.AppointmentRepository,
	paymentRepo repository.PaymentRepository,
	notificationRepo repository.NotificationRepository,
	directory DoctorDirectoryUsecase,
) PatientDashboardUsecase {
	return &patientDashboardUsecase{
		db:               db,
		log:              log,
		loc:              loc,
		resolver:         resolver,
		appointmentRepo:  appointmentRepo,
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
		directory:        directory,
	}
}

func (u *patientDashboardUsecase) GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.PatientDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.resolver.ResolvePatient(db, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PatientDashboardResponse{}

	now := time.Now().UTC()
	weekEnd := now.Add(7 * 24 * time.Hour)
	if resp.UpcomingThisWeek, err = u.appointmentRepo.CountUpcomingConfirmedForPatient(db, profile.ID, now, weekEnd); err != nil {
		u.log.Warnf("Failed to count upcoming appointments: %+v", err)
		return nil, err
	}

	if resp.CompletedTotal, err = u.appointmentRepo.CountForPatientByStatuses(db, profile.ID,
		[]entity.AppointmentStatus{entity.AppointmentStatusCompleted}); err != nil {
		u.log.Warnf("Failed to count completed appointments: %+v", err)
		return nil, err
	}

	if resp.CancelledOrNoShow, err = u.appointmentRepo.CountForPatientByStatuses(db, profile.ID,
		[]entity.AppointmentStatus{entity.AppointmentStatusCancelled, entity.AppointmentStatusNoShow}); err != nil {
		u.log.Warnf("Failed to count cancelled appointments: %+v", err)
		return nil, err
	}

	if resp.DigitalPaymentsPaid, err = u.paymentRepo.SumDigitalPaidForPatient(db, profile.ID); err != nil {
		u.log.Warnf("Failed to sum digital payments: %+v", err)
		return nil, err
	}

	if resp.UnreadNotifications, err = u.notificationRepo.CountPendingForUser(db, userID); err != nil {
		u.log.Warnf("Failed to count unread notifications: %+v", err)
		return nil, err
	}

	doctors, err := u.directory.Directory(ctx, &dto.DoctorDirectoryQuery{Page: 1})
	if err != nil {
		return nil, err
	}
	resp.Doctors = *doctors

	return resp, nil
}
