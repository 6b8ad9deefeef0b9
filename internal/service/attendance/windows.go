package attendance

import (
	"fmt"
	"time"

	"github.com/retouchhive/office-backend/internal/domain/attendance"
	"github.com/retouchhive/office-backend/internal/domain/shift"
)

// window holds the three clock-time thresholds for one shift, all
// measured as minutes from local midnight.
type window struct {
	open         int // earliest accepted check-in
	onTimeCutoff int // shift start; arriving after this is late
	lateCutoff   int // last accepted late arrival
}

func minuteOfDay(h, m int) int { return h*60 + m }

// shiftWindows maps each shift to its thresholds in Dhaka wall-clock
// time. Night has no entry: night-shift check-ins are rejected, which
// mirrors how the business actually handles that crew (they are
// tracked manually).
var shiftWindows = map[shift.Name]window{
	shift.Morning: {open: minuteOfDay(5, 45), onTimeCutoff: minuteOfDay(6, 0), lateCutoff: minuteOfDay(12, 0)},
	shift.General: {open: minuteOfDay(9, 45), onTimeCutoff: minuteOfDay(10, 0), lateCutoff: minuteOfDay(16, 0)},
	shift.Evening: {open: minuteOfDay(13, 45), onTimeCutoff: minuteOfDay(14, 5), lateCutoff: minuteOfDay(18, 30)},
}

// evaluateCheckIn decides whether a punch at t is on time, late or
// rejected for the given shift. A late punch reports the lateness past
// the on-time cutoff.
func evaluateCheckIn(name shift.Name, t time.Time) (late *string, err error) {
	w, ok := shiftWindows[name]
	if !ok {
		return nil, attendance.ErrNotEligible
	}

	// Seconds within the current minute count toward lateness but are
	// dropped from the display string.
	elapsed := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
	openAt := time.Duration(w.open) * time.Minute
	onTimeAt := time.Duration(w.onTimeCutoff) * time.Minute
	lateAt := time.Duration(w.lateCutoff) * time.Minute

	switch {
	case elapsed >= openAt && elapsed <= onTimeAt:
		return nil, nil
	case elapsed > onTimeAt && elapsed <= lateAt:
		lateness := FormatDuration(elapsed - onTimeAt)
		return &lateness, nil
	default:
		return nil, attendance.ErrNotEligible
	}
}

// FormatDuration renders a duration as "{h}h {m}m", truncating any
// fraction below a whole minute.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMinutes := int(d / time.Minute)
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}
