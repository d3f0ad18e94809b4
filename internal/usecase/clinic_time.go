package usecase

import "time"

// Dashboard windows are computed in the clinic's local timezone and
// returned as UTC instants, half-open [from, to).

func dayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

func monthWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 1, 0).UTC()
}

func yearWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), 1, 1, 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(1, 0, 0).UTC()
}

// monthIndex returns the 0-based month bucket of t in the clinic timezone.
func monthIndex(t time.Time, loc *time.Location) int {
	return int(t.In(loc).Month()) - 1
}

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// blockLabel classifies a schedule block by its start clock time:
// before noon is Morning, before 17:00 is Afternoon, the rest Evening.
func blockLabel(startMinutes int) string {
	switch {
	case startMinutes < 12*60:
		return "Morning"
	case startMinutes < 17*60:
		return "Afternoon"
	default:
		return "Evening"
	}
}

// totalSlots is the number of whole slots that fit into a block.
func totalSlots(blockMinutes, slotMinutes int) int {
	if slotMinutes <= 0 || blockMinutes <= 0 {
		return 0
	}
	return blockMinutes / slotMinutes
}

// minutesOfDay returns t's clock time in the clinic timezone as minutes
// past midnight.
func minutesOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}
