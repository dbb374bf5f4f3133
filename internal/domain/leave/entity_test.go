package leave

import (
	"testing"
	"time"
)

func TestDayCount(t *testing.T) {
	date := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return d
	}

	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2024-01-10", "2024-01-10", 1},
		{"three days inclusive", "2024-01-10", "2024-01-12", 3},
		{"week", "2024-01-01", "2024-01-07", 7},
		{"across month boundary", "2024-01-31", "2024-02-02", 3},
		{"reversed endpoints count the same", "2024-01-12", "2024-01-10", 3},
	}
	for _, c := range cases {
		got := DayCount(date(c.start), date(c.end))
		if got != c.want {
			t.Errorf("%s: DayCount(%s, %s) = %d, want %d", c.name, c.start, c.end, got, c.want)
		}
	}
}

func TestBalanceCounter(t *testing.T) {
	cases := []struct {
		leaveType Type
		want      string
	}{
		{TypePaid, "paid"},
		{TypeSick, "sick"},
		{TypeUnpaid, ""},
	}
	for _, c := range cases {
		if got := c.leaveType.BalanceCounter(); got != c.want {
			t.Errorf("BalanceCounter(%q) = %q, want %q", c.leaveType, got, c.want)
		}
	}
}

func TestApplyRequestValidate(t *testing.T) {
	valid := ApplyRequest{
		LeaveType: "paid",
		StartDate: "2024-01-10",
		EndDate:   "2024-01-12",
		Reason:    "family event",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request failed validation: %v", err)
	}

	invalid := []ApplyRequest{
		{LeaveType: "vacation", StartDate: "2024-01-10", EndDate: "2024-01-12", Reason: "x"},
		{LeaveType: "paid", StartDate: "not-a-date", EndDate: "2024-01-12", Reason: "x"},
		{LeaveType: "paid", StartDate: "2024-01-12", EndDate: "2024-01-10", Reason: "x"},
		{LeaveType: "paid", StartDate: "2024-01-10", EndDate: "2024-01-12", Reason: "   "},
	}
	for i, req := range invalid {
		if err := req.Validate(); err == nil {
			t.Errorf("case %d: expected validation error, got nil", i)
		}
	}
}
