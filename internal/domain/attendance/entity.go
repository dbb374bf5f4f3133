package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

// ValidStatuses returns every status a record can hold
func ValidStatuses() []Status {
	return []Status{StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave}
}

// Record is one attendance row per (employee, calendar day). The store
// enforces uniqueness on the pair; records are created on first check-in and
// never deleted.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time // truncated to the working day
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status
	WorkHours  float64
	Remarks    string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join fields for list responses
	EmployeeName *string
	Department   *string
}
