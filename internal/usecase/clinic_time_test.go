package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var dhaka = time.FixedZone("BDT", 6*3600)

func TestDayWindow(t *testing.T) {
	// 02:00 UTC is already 08:00 in the clinic zone
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	from, to := dayWindow(now, dhaka)

	require.Equal(t, time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), to)
}

func TestDayWindowCrossesUTCDateBoundary(t *testing.T) {
	// 20:00 UTC on the 9th is already the 10th locally
	now := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)

	from, to := dayWindow(now, dhaka)

	require.Equal(t, time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), to)
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	from, to := monthWindow(now, dhaka)

	require.Equal(t, time.Date(2026, 2, 28, 18, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 3, 31, 18, 0, 0, 0, time.UTC), to)
}

func TestYearWindow(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	from, to := yearWindow(now, dhaka)

	require.Equal(t, time.Date(2025, 12, 31, 18, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 12, 31, 18, 0, 0, 0, time.UTC), to)
}

func TestMonthIndex(t *testing.T) {
	// 19:00 UTC on Jan 31 is Feb 1 locally
	jan31 := time.Date(2026, 1, 31, 19, 0, 0, 0, time.UTC)
	require.Equal(t, 1, monthIndex(jan31, dhaka))

	require.Equal(t, 0, monthIndex(time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC), dhaka))
	require.Equal(t, 11, monthIndex(time.Date(2026, 12, 15, 10, 0, 0, 0, time.UTC), dhaka))
}

func TestBlockLabel(t *testing.T) {
	require.Equal(t, "Morning", blockLabel(9*60))
	require.Equal(t, "Morning", blockLabel(11*60+59))
	require.Equal(t, "Afternoon", blockLabel(12*60))
	require.Equal(t, "Afternoon", blockLabel(16*60+59))
	require.Equal(t, "Evening", blockLabel(17*60))
	require.Equal(t, "Evening", blockLabel(21*60))
}

func TestTotalSlots(t *testing.T) {
	// Partial trailing slots are dropped
	require.Equal(t, 7, totalSlots(150, 20))
	require.Equal(t, 1, totalSlots(20, 20))
	require.Equal(t, 0, totalSlots(19, 20))
	require.Equal(t, 0, totalSlots(60, 0))
	require.Equal(t, 0, totalSlots(-30, 20))
}

func TestMinutesOfDay(t *testing.T) {
	at := time.Date(2026, 3, 10, 4, 30, 0, 0, time.UTC) // 10:30 local
	require.Equal(t, 630, minutesOfDay(at, dhaka))
}
