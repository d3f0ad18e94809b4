package usecase

import (
	"testing"
	"time"

	"doctor-appointment-system/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func ptrTime(t time.Time) *time.Time { return &t }

func TestBucketRevenueByMonth(t *testing.T) {
	payments := []entity.Payment{
		{Amount: decimal.NewFromInt(500), PaidAtUtc: ptrTime(time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC))},
		{Amount: decimal.NewFromInt(700), PaidAtUtc: ptrTime(time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC))},
		{Amount: decimal.NewFromInt(300), PaidAtUtc: ptrTime(time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC))},
		// No gateway timestamp: falls back to the record creation time
		{Amount: decimal.NewFromInt(200), CreatedAt: time.Date(2026, 3, 25, 8, 0, 0, 0, time.UTC)},
	}

	points := bucketRevenueByMonth(payments, dhaka)

	require.Len(t, points, 12)
	require.Equal(t, "Jan", points[0].Month)
	require.Equal(t, "Dec", points[11].Month)
	require.True(t, points[0].Total.Equal(decimal.NewFromInt(500)))
	require.True(t, points[1].Total.IsZero())
	require.True(t, points[2].Total.Equal(decimal.NewFromInt(1200)))
}

func TestBucketRevenueByMonthUsesClinicZone(t *testing.T) {
	// 19:00 UTC on Jan 31 is already February in the clinic zone
	payments := []entity.Payment{
		{Amount: decimal.NewFromInt(100), PaidAtUtc: ptrTime(time.Date(2026, 1, 31, 19, 0, 0, 0, time.UTC))},
	}

	points := bucketRevenueByMonth(payments, dhaka)

	require.True(t, points[0].Total.IsZero())
	require.True(t, points[1].Total.Equal(decimal.NewFromInt(100)))
}

func TestTodayStatusBreakdown(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	appointments := []entity.Appointment{
		{Status: entity.AppointmentStatusConfirmed, AppointmentDateTime: now.Add(-2 * time.Hour)},
		{Status: entity.AppointmentStatusConfirmed, AppointmentDateTime: now.Add(time.Hour)},
		{Status: entity.AppointmentStatusConfirmed, AppointmentDateTime: now.Add(3 * time.Hour)},
		{Status: entity.AppointmentStatusCompleted, AppointmentDateTime: now.Add(-4 * time.Hour)},
		{Status: entity.AppointmentStatusCancelled, AppointmentDateTime: now.Add(2 * time.Hour)},
		{Status: entity.AppointmentStatusNoShow, AppointmentDateTime: now.Add(-time.Hour)},
	}

	b := todayStatusBreakdown(appointments, now)

	require.Equal(t, 3, b.Accepted)
	require.Equal(t, 2, b.Remaining)
	require.Equal(t, 1, b.Completed)
	require.Equal(t, 1, b.Cancelled)
}

func TestSummarizeScheduleBlocks(t *testing.T) {
	schedules := []entity.DoctorSchedule{
		{StartTime: "09:00", EndTime: "11:30", SlotDurationMinutes: 20},
	}

	at := func(hour, min int) time.Time {
		return time.Date(2026, 3, 10, hour, min, 0, 0, dhaka)
	}
	todays := []entity.Appointment{
		{Status: entity.AppointmentStatusConfirmed, AppointmentDateTime: at(9, 10)},
		{Status: entity.AppointmentStatusCompleted, AppointmentDateTime: at(10, 0)},
		{Status: entity.AppointmentStatusConfirmed, AppointmentDateTime: at(10, 40)},
		// Cancelled appointments free their slot
		{Status: entity.AppointmentStatusCancelled, AppointmentDateTime: at(9, 30)},
		// Outside the block
		{Status: entity.AppointmentStatusConfirmed, AppointmentDateTime: at(13, 0)},
	}

	summaries := summarizeScheduleBlocks(schedules, todays, dhaka)

	require.Len(t, summaries, 1)
	s := summaries[0]
	require.Equal(t, "Morning", s.Label)
	require.Equal(t, 7, s.TotalSlots)
	require.Equal(t, 3, s.BookedSlots)
	require.Equal(t, 4, s.RemainingSlots)
}

func TestSummarizeScheduleBlocksSkipsUnparseableClock(t *testing.T) {
	schedules := []entity.DoctorSchedule{
		{StartTime: "9am", EndTime: "11:30", SlotDurationMinutes: 20},
		{StartTime: "17:00", EndTime: "20:00", SlotDurationMinutes: 30},
	}

	summaries := summarizeScheduleBlocks(schedules, nil, dhaka)

	require.Len(t, summaries, 1)
	require.Equal(t, "Evening", summaries[0].Label)
	require.Equal(t, 6, summaries[0].TotalSlots)
	require.Equal(t, 6, summaries[0].RemainingSlots)
}

func TestSummarizeScheduleBlocksOverbookedFloorsAtZero(t *testing.T) {
	schedules := []entity.DoctorSchedule{
		{StartTime: "09:00", EndTime: "09:40", SlotDurationMinutes: 20},
	}
	todays := []entity.Appointment{
		{Status: entity.AppointmentStatusConfirmed, AppointmentDateTime: time.Date(2026, 3, 10, 9, 0, 0, 0, dhaka)},
		{Status: entity.AppointmentStatusConfirmed, AppointmentDateTime: time.Date(2026, 3, 10, 9, 10, 0, 0, dhaka)},
		{Status: entity.AppointmentStatusConfirmed, AppointmentDateTime: time.Date(2026, 3, 10, 9, 20, 0, 0, dhaka)},
	}

	summaries := summarizeScheduleBlocks(schedules, todays, dhaka)

	require.Len(t, summaries, 1)
	require.Equal(t, 2, summaries[0].TotalSlots)
	require.Equal(t, 3, summaries[0].BookedSlots)
	require.Equal(t, 0, summaries[0].RemainingSlots)
}
