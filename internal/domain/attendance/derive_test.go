package attendance

import (
	"testing"
	"time"
)

func TestComputeWorkHours(t *testing.T) {
	day := func(hh, mm int) time.Time {
		return time.Date(2024, 3, 11, hh, mm, 0, 0, time.UTC)
	}

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     float64
	}{
		{"full day", day(9, 0), day(17, 30), 8.5},
		{"half day", day(9, 0), day(12, 30), 3.5},
		{"exactly eight hours", day(9, 0), day(17, 0), 8},
		{"zero span", day(9, 0), day(9, 0), 0},
		{"rounds to two decimals", day(9, 0), day(9, 10), 0.17},
		{"negative span clamps to zero", day(17, 0), day(9, 0), 0},
	}
	for _, c := range cases {
		got := ComputeWorkHours(c.checkIn, c.checkOut)
		if got != c.want {
			t.Errorf("%s: ComputeWorkHours() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name      string
		workHours float64
		current   Status
		want      Status
	}{
		{"eight hours is present", 8, StatusAbsent, StatusPresent},
		{"more than eight hours is present", 10.25, StatusHalfDay, StatusPresent},
		{"four hours is half-day", 4, StatusPresent, StatusHalfDay},
		{"between thresholds is half-day", 6.5, StatusAbsent, StatusHalfDay},
		{"below four hours keeps current", 3.99, StatusPresent, StatusPresent},
		{"short day never downgrades leave", 1, StatusLeave, StatusLeave},
		{"zero hours keeps current", 0, StatusAbsent, StatusAbsent},
	}
	for _, c := range cases {
		got := DeriveStatus(c.workHours, c.current)
		if got != c.want {
			t.Errorf("%s: DeriveStatus(%v, %q) = %q, want %q", c.name, c.workHours, c.current, got, c.want)
		}
	}
}

func TestCheckInThenCheckOutDerivation(t *testing.T) {
	checkIn := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 11, 17, 30, 0, 0, time.UTC)

	hours := ComputeWorkHours(checkIn, checkOut)
	status := DeriveStatus(hours, StatusPresent)

	if hours != 8.5 {
		t.Errorf("work hours = %v, want 8.5", hours)
	}
	if status != StatusPresent {
		t.Errorf("status = %q, want %q", status, StatusPresent)
	}
}
