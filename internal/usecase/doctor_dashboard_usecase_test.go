package usecase

import (
	"context"
	"testing"
	"time"

	"doctor-appointment-system/internal/domain/entity"
	"doctor-appointment-system/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type boundaryAppointmentRepo struct {
	repository.AppointmentRepository
	upcomingAfter time.Time
}

func (f *boundaryAppointmentRepo) CountForDoctorInWindow(db *gorm.DB, doctorProfileID int, from, to time.Time) (int64, error) {
	return 0, nil
}

func (f *boundaryAppointmentRepo) CountUpcomingConfirmedForDoctor(db *gorm.DB, doctorProfileID int, after time.Time) (int64, error) {
	f.upcomingAfter = after
	return 0, nil
}

func (f *boundaryAppointmentRepo) CountForDoctorByStatusInWindow(db *gorm.DB, doctorProfileID int, status entity.AppointmentStatus, from, to time.Time) (int64, error) {
	return 0, nil
}

func (f *boundaryAppointmentRepo) CountDistinctPatientsCompleted(db *gorm.DB, doctorProfileID int) (int64, error) {
	return 0, nil
}

func (f *boundaryAppointmentRepo) IDsForDoctorInWindow(db *gorm.DB, doctorProfileID int, from, to time.Time) ([]int, error) {
	return nil, nil
}

func (f *boundaryAppointmentRepo) FindForDoctorInWindow(db *gorm.DB, doctorProfileID int, from, to time.Time) ([]entity.Appointment, error) {
	return nil, nil
}

type stubPaymentRepo struct{ repository.PaymentRepository }

func (stubPaymentRepo) SumPaidForAppointments(db *gorm.DB, appointmentIDs []int) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (stubPaymentRepo) FindPaidForDoctorBetween(db *gorm.DB, doctorProfileID int, from, to time.Time) ([]entity.Payment, error) {
	return nil, nil
}

type stubReviewRepo struct{ repository.ReviewRepository }

func (stubReviewRepo) StatsForDoctor(db *gorm.DB, doctorProfileID int) (int64, float64, error) {
	return 0, 0, nil
}

type stubScheduleRepo struct{ repository.DoctorScheduleRepository }

func (stubScheduleRepo) FindActiveForDoctorOnDay(db *gorm.DB, doctorProfileID int, day time.Weekday, onDate time.Time) ([]entity.DoctorSchedule, error) {
	return nil, nil
}

type stubUnavailabilityRepo struct{ repository.DoctorUnavailabilityRepository }

func (stubUnavailabilityRepo) FindUpcomingForDoctor(db *gorm.DB, doctorProfileID int, from time.Time, limit int) ([]entity.DoctorUnavailability, error) {
	return nil, nil
}

// Today's still-future confirmed appointments belong to the Today tile;
// the Upcoming counter must start at the next clinic day.
func TestDoctorDashboardUpcomingStartsNextClinicDay(t *testing.T) {
	db, _ := newTestDB(t)
	appointments := &boundaryAppointmentRepo{}

	profile := &entity.DoctorProfile{ID: 7, IsActive: true, User: entity.User{IsActive: true}}
	resolver := NewProfileResolver(&fakeDoctorProfileRepo{profile: profile}, nil, nil, nil)

	u := NewDoctorDashboardUsecase(db, newTestLogger(), dhaka, resolver,
		appointments, stubPaymentRepo{}, stubReviewRepo{}, stubScheduleRepo{}, stubUnavailabilityRepo{})

	_, err := u.GetDashboard(context.Background(), uuid.New())
	require.NoError(t, err)

	_, nextClinicDay := dayWindow(time.Now(), dhaka)
	require.Equal(t, nextClinicDay, appointments.upcomingAfter)
}
