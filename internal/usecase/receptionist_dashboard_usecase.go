package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReceptionistDashboardUsecase interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.ReceptionistDashboardResponse, error)
}

type receptionistDashboardUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	loc              *time.Location
	resolver         *ProfileResolver
	appointmentRepo  repository.AppointmentRepository
	paymentRepo      repository.PaymentRepository
	patientRepo      repository.PatientProfileRepository
	doctorRepo       repository.DoctorProfileRepository
	notificationRepo repository.NotificationRepository
	directory        DoctorDirectoryUsecase
}

func NewReceptionistDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	resolver *ProfileResolver,
	appointmentRepo repository.AppointmentRepository,
	paymentRepo repository.PaymentRepository,
	patientRepo repository.PatientProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	notificationRepo repository.NotificationRepository,
	directory DoctorDirectoryUsecase,
) ReceptionistDashboardUsecase {
	return &receptionistDashboardUsecase{
		db:               db,
		log:              log,
		loc:              loc,
		resolver:         resolver,
		appointmentRepo:  appointmentRepo,
		paymentRepo:      paymentRepo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		notificationRepo: notificationRepo,
		directory:        directory,
	}
}

func (u *receptionistDashboardUsecase) GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.ReceptionistDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	if _, err := u.resolver.ResolveReceptionist(db, userID); err != nil {
		return nil, err
	}

	resp := &dto.ReceptionistDashboardResponse{}

	now := time.Now()
	dayFrom, dayTo := dayWindow(now, u.loc)

	var err error
	if resp.TodayTotal, err = u.appointmentRepo.CountAllInWindow(db, dayFrom, dayTo); err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}
	if resp.TodayActive, err = u.appointmentRepo.CountInWindow(db, dayFrom, dayTo); err != nil {
		u.log.Warnf("Failed to count today's active appointments: %+v", err)
		return nil, err
	}
	resp.TodayInactive = resp.TodayTotal - resp.TodayActive

	if resp.CashCollectedToday, err = u.paymentRepo.SumCashCollectedInWindow(db, dayFrom, dayTo); err != nil {
		u.log.Warnf("Failed to sum today's cash: %+v", err)
		return nil, err
	}
	if resp.PendingPaymentsToday, err = u.paymentRepo.CountPendingForAppointmentsInWindow(db, dayFrom, dayTo); err != nil {
		u.log.Warnf("Failed to count pending payments: %+v", err)
		return nil, err
	}

	if resp.ActivePatients, err = u.patientRepo.CountActive(db); err != nil {
		u.log.Warnf("Failed to count active patients: %+v", err)
		return nil, err
	}
	if resp.ActiveDoctors, err = u.doctorRepo.CountActive(db); err != nil {
		u.log.Warnf("Failed to count active doctors: %+v", err)
		return nil, err
	}

	doctors, err := u.directory.Directory(ctx, &dto.DoctorDirectoryQuery{Page: 1})
	if err != nil {
		return nil, err
	}
	resp.Doctors = *doctors

	resp.TodayRoster, err = u.todayRoster(db, dayFrom, dayTo)
	if err != nil {
		return nil, err
	}

	notifications, err := u.notificationRepo.FindRecent(db, 5)
	if err != nil {
		u.log.Warnf("Failed to load recent notifications: %+v", err)
		return nil, err
	}
	resp.RecentNotifications = make([]dto.NotificationRow, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		resp.RecentNotifications = append(resp.RecentNotifications, dto.NotificationRow{
			ID:        n.ID,
			Subject:   n.Subject,
			Channel:   string(n.Channel),
			Badge:     notificationBadge(n, now, u.loc),
			CreatedAt: n.CreatedAt,
		})
	}

	return resp, nil
}

func (u *receptionistDashboardUsecase) todayRoster(db *gorm.DB, from, to time.Time) ([]dto.RosterRow, error) {
	appointments, err := u.appointmentRepo.FindAllInWindow(db, from, to)
	if err != nil {
		u.log.Warnf("Failed to load today's roster: %+v", err)
		return nil, err
	}

	ids := make([]int, 0, len(appointments))
	for i := range appointments {
		ids = append(ids, appointments[i].ID)
	}

	latest, err := u.paymentRepo.LatestForAppointments(db, ids)
	if err != nil {
		u.log.Warnf("Failed to load roster payments: %+v", err)
		return nil, err
	}

	rows := make([]dto.RosterRow, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		var payment *entity.Payment
		if p, ok := latest[a.ID]; ok {
			payment = &p
		}
		rows = append(rows, dto.RosterRow{
			AppointmentID: a.ID,
			Time:          a.AppointmentDateTime,
			DoctorName:    a.Doctor.User.FullName(),
			PatientName:   a.Patient.User.FullName(),
			Status:        string(a.Status),
			PaymentStatus: paymentStatusLabel(payment),
		})
	}
	return rows, nil
}

// paymentStatusLabel renders an appointment's latest payment for the
// front desk roster.
func paymentStatusLabel(p *entity.Payment) string {
	if p == nil {
		return "Unpaid"
	}
	switch p.Status {
	case entity.PaymentStatusPaid:
		return fmt.Sprintf("Paid (%s)", titleCase(string(p.Method)))
	case entity.PaymentStatusPending:
		return "Pending"
	case entity.PaymentStatusRefunded:
		return "Refunded"
	case entity.PaymentStatusFailed:
		return "Failed"
	default:
		return "Unpaid"
	}
}

// notificationBadge classifies a notification for the front desk feed:
// failed deliveries are flagged, pending ones await sending, sent ones
// are grouped into today's and older.
func notificationBadge(n *entity.Notification, now time.Time, loc *time.Location) string {
	switch n.Status {
	case entity.NotificationStatusFailed:
		return "Important"
	case entity.NotificationStatusPending:
		return "Pending"
	}

	sentAt := n.CreatedAt
	if n.SentAtUtc != nil {
		sentAt = *n.SentAtUtc
	}

	nowLocal := now.In(loc)
	sentLocal := sentAt.In(loc)
	if nowLocal.Year() == sentLocal.Year() && nowLocal.YearDay() == sentLocal.YearDay() {
		return "Today"
	}
	return "Viewed"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
