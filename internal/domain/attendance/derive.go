package attendance

import (
	"math"
	"time"
)

// Thresholds for status derivation, in work hours
const (
	fullDayHours = 8
	halfDayHours = 4
)

// ComputeWorkHours returns the span between check-in and check-out in hours,
// rounded to two decimals. Negative spans clamp to zero.
func ComputeWorkHours(checkIn, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	if hours < 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}

// DeriveStatus maps work hours to a record status. Below the half-day
// threshold the current status is kept: a short day never downgrades a
// record to absent.
func DeriveStatus(workHours float64, current Status) Status {
	switch {
	case workHours >= fullDayHours:
		return StatusPresent
	case workHours >= halfDayHours:
		return StatusHalfDay
	default:
		return current
	}
}
