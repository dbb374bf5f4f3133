package leave

import (
	"math"
	"time"
)

type Type string

const (
	TypePaid   Type = "paid"
	TypeSick   Type = "sick"
	TypeUnpaid Type = "unpaid"
)

// ValidTypes returns every leave type an employee can request
func ValidTypes() []Type {
	return []Type{TypePaid, TypeSick, TypeUnpaid}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a leave request. It is created in StatusPending and mutated
// exactly once, by approval or rejection; both branches are terminal.
type Request struct {
	ID               string
	EmployeeID       string
	LeaveType        Type
	StartDate        time.Time
	EndDate          time.Time
	NumberOfDays     int
	Reason           string
	Status           Status
	ApprovedBy       *string
	ApprovalComments string
	ApprovedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Join fields for list responses
	EmployeeName *string
	Department   *string
}

// DayCount returns the number of leave days between two dates, inclusive of
// both endpoints: 2024-01-10 through 2024-01-12 is three days.
func DayCount(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

// BalanceCounter names the employee balance field a leave type draws from.
// Unpaid leave draws from no counter.
func (t Type) BalanceCounter() string {
	switch t {
	case TypePaid:
		return "paid"
	case TypeSick:
		return "sick"
	default:
		return ""
	}
}
