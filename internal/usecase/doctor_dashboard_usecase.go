package usecase

import (
	"context"
	"time"

	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorDashboardUsecase interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.DoctorDashboardResponse, error)
}

type doctorDashboardUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	loc                *time.Location
	resolver           *ProfileResolver
	appointmentRepo    repository.AppointmentRepository
	paymentRepo        repository.PaymentRepository
	reviewRepo         repository.ReviewRepository
	scheduleRepo       repository.DoctorScheduleRepository
	unavailabilityRepo repository.DoctorUnavailabilityRepository
}

func NewDoctorDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	resolver *ProfileResolver,
	appointmentRepo repository.AppointmentRepository,
	paymentRepo repository.PaymentRepository,
	reviewRepo repository.ReviewRepository,
	scheduleRepo repository.DoctorScheduleRepository,
	unavailabilityRepo repository.DoctorUnavailabilityRepository,
) DoctorDashboardUsecase {
	return &doctorDashboardUsecase{
		db:                 db,
		log:                log,
		loc:                loc,
		resolver:           resolver,
		appointmentRepo:    appointmentRepo,
		paymentRepo:        paymentRepo,
		reviewRepo:         reviewRepo,
		scheduleRepo:       scheduleRepo,
		unavailabilityRepo: unavailabilityRepo,
	}
}

func (u *doctorDashboardUsecase) GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.DoctorDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.resolver.ResolveDoctor(db, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayFrom, dayTo := dayWindow(now, u.loc)
	monthFrom, monthTo := monthWindow(now, u.loc)
	yearFrom, yearTo := yearWindow(now, u.loc)

	resp := &dto.DoctorDashboardResponse{}

	if resp.TodayAppointments, err = u.appointmentRepo.CountForDoctorInWindow(db, profile.ID, dayFrom, dayTo); err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}
	// Upcoming starts at the next clinic day; today's still-future rows
	// belong to the Today tile only.
	if resp.UpcomingConfirmed, err = u.appointmentRepo.CountUpcomingConfirmedForDoctor(db, profile.ID, dayTo); err != nil {
		u.log.Warnf("Failed to count upcoming appointments: %+v", err)
		return nil, err
	}

	for _, c := range []struct {
		status entity.AppointmentStatus
		out    *int64
	}{
		{entity.AppointmentStatusCompleted, &resp.CompletedThisMonth},
		{entity.AppointmentStatusCancelled, &resp.CancelledThisMonth},
		{entity.AppointmentStatusNoShow, &resp.NoShowThisMonth},
	} {
		if *c.out, err = u.appointmentRepo.CountForDoctorByStatusInWindow(db, profile.ID, c.status, monthFrom, monthTo); err != nil {
			u.log.Warnf("Failed to count %s appointments: %+v", c.status, err)
			return nil, err
		}
	}

	if resp.PatientsTreated, err = u.appointmentRepo.CountDistinctPatientsCompleted(db, profile.ID); err != nil {
		u.log.Warnf("Failed to count treated patients: %+v", err)
		return nil, err
	}

	// Monthly revenue: Paid payments attached to this month's appointments
	monthIDs, err := u.appointmentRepo.IDsForDoctorInWindow(db, profile.ID, monthFrom, monthTo)
	if err != nil {
		u.log.Warnf("Failed to resolve this month's appointment ids: %+v", err)
		return nil, err
	}
	if resp.RevenueThisMonth, err = u.paymentRepo.SumPaidForAppointments(db, monthIDs); err != nil {
		u.log.Warnf("Failed to sum monthly revenue: %+v", err)
		return nil, err
	}

	reviewCount, avgRating, err := u.reviewRepo.StatsForDoctor(db, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to load review stats: %+v", err)
		return nil, err
	}
	resp.ReviewCount = reviewCount
	resp.AverageRating = avgRating

	resp.YearlyRevenue, err = u.yearlyRevenue(db, profile.ID, yearFrom, yearTo)
	if err != nil {
		return nil, err
	}

	todays, err := u.appointmentRepo.FindForDoctorInWindow(db, profile.ID, dayFrom, dayTo)
	if err != nil {
		u.log.Warnf("Failed to load today's appointments: %+v", err)
		return nil, err
	}

	resp.TodaySchedule = make([]dto.AppointmentRow, 0, len(todays))
	for i := range todays {
		a := &todays[i]
		resp.TodaySchedule = append(resp.TodaySchedule, dto.AppointmentRow{
			ID:          a.ID,
			Time:        a.AppointmentDateTime,
			PatientName: a.Patient.User.FullName(),
			Status:      string(a.Status),
			VisitType:   a.VisitType,
		})
	}

	resp.StatusBreakdown = todayStatusBreakdown(todays, now)

	resp.ScheduleBlocks, err = u.scheduleBlocks(db, profile.ID, todays, now)
	if err != nil {
		return nil, err
	}

	windows, err := u.unavailabilityRepo.FindUpcomingForDoctor(db, profile.ID, dayFrom, 5)
	if err != nil {
		u.log.Warnf("Failed to load unavailability windows: %+v", err)
		return nil, err
	}
	resp.UpcomingUnavailability = make([]dto.UnavailabilityWindow, 0, len(windows))
	for _, w := range windows {
		resp.UpcomingUnavailability = append(resp.UpcomingUnavailability, dto.UnavailabilityWindow{
			StartDateTime: w.StartDateTime,
			EndDateTime:   w.EndDateTime,
			IsFullDay:     w.IsFullDay,
			Reason:        w.Reason,
		})
	}

	return resp, nil
}

// yearlyRevenue buckets this year's Paid payments into 12 monthly totals.
// Payments are bucketed by PaidAtUtc, falling back to CreatedAt for rows
// the gateway never stamped.
func (u *doctorDashboardUsecase) yearlyRevenue(db *gorm.DB, doctorProfileID int, from, to time.Time) ([]dto.RevenuePoint, error) {
	payments, err := u.paymentRepo.FindPaidForDoctorBetween(db, doctorProfileID, from, to)
	if err != nil {
		u.log.Warnf("Failed to load yearly payments: %+v", err)
		return nil, err
	}

	return bucketRevenueByMonth(payments, u.loc), nil
}

func bucketRevenueByMonth(payments []entity.Payment, loc *time.Location) []dto.RevenuePoint {
	totals := make([]decimal.Decimal, 12)
	for i := range totals {
		totals[i] = decimal.Zero
	}
	for i := range payments {
		p := &payments[i]
		idx := monthIndex(p.RevenueAt(), loc)
		totals[idx] = totals[idx].Add(p.Amount)
	}

	points := make([]dto.RevenuePoint, 12)
	for i := range points {
		points[i] = dto.RevenuePoint{Month: monthLabels[i], Total: totals[i]}
	}
	return points
}

// todayStatusBreakdown counts today's appointments per display bucket:
// accepted is every Confirmed row, remaining the Confirmed rows still in
// the future.
func todayStatusBreakdown(appointments []entity.Appointment, now time.Time) dto.TodayStatusBreakdown {
	var b dto.TodayStatusBreakdown
	for i := range appointments {
		a := &appointments[i]
		switch a.Status {
		case entity.AppointmentStatusConfirmed:
			b.Accepted++
			if a.AppointmentDateTime.After(now) {
				b.Remaining++
			}
		case entity.AppointmentStatusCompleted:
			b.Completed++
		case entity.AppointmentStatusCancelled:
			b.Cancelled++
		}
	}
	return b
}

func (u *doctorDashboardUsecase) scheduleBlocks(db *gorm.DB, doctorProfileID int, todays []entity.Appointment, now time.Time) ([]dto.ScheduleBlockSummary, error) {
	local := now.In(u.loc)
	onDate := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, u.loc)

	schedules, err := u.scheduleRepo.FindActiveForDoctorOnDay(db, doctorProfileID, local.Weekday(), onDate)
	if err != nil {
		u.log.Warnf("Failed to load today's schedule blocks: %+v", err)
		return nil, err
	}

	return summarizeScheduleBlocks(schedules, todays, u.loc), nil
}

// summarizeScheduleBlocks turns weekly blocks into display summaries.
// A booked slot is a non-cancelled appointment whose clinic-local clock
// time falls inside the block.
func summarizeScheduleBlocks(schedules []entity.DoctorSchedule, todays []entity.Appointment, loc *time.Location) []dto.ScheduleBlockSummary {
	summaries := make([]dto.ScheduleBlockSummary, 0, len(schedules))
	for i := range schedules {
		s := &schedules[i]
		start, err := entity.ParseClock(s.StartTime)
		if err != nil {
			continue
		}
		end, err := entity.ParseClock(s.EndTime)
		if err != nil {
			continue
		}

		total := totalSlots(end-start, s.SlotDurationMinutes)

		booked := 0
		for j := range todays {
			a := &todays[j]
			if a.IsCancelled() {
				continue
			}
			m := minutesOfDay(a.AppointmentDateTime, loc)
			if m >= start && m < end {
				booked++
			}
		}

		remaining := total - booked
		if remaining < 0 {
			remaining = 0
		}

		summaries = append(summaries, dto.ScheduleBlockSummary{
			Label:          blockLabel(start),
			StartTime:      s.StartTime,
			EndTime:        s.EndTime,
			TotalSlots:     total,
			BookedSlots:    booked,
			RemainingSlots: remaining,
		})
	}
	return summaries
}
