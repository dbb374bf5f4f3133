package employee

import "time"

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentContract EmploymentType = "contract"
	EmploymentIntern   EmploymentType = "intern"
)

// Salary is the employee's pay structure. NetSalary is derived, never set
// directly: every mutation path recomputes it through ComputeNetSalary.
type Salary struct {
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	NetSalary  float64 `json:"net_salary"`
}

// LeaveBalance holds the per-type remaining day counters
type LeaveBalance struct {
	Paid   int `json:"paid"`
	Sick   int `json:"sick"`
	Unpaid int `json:"unpaid"`
}

// Default opening balances for a new employee
const (
	DefaultPaidBalance   = 20
	DefaultSickBalance   = 10
	DefaultUnpaidBalance = 0
)

type Employee struct {
	ID             string
	UserID         string
	FirstName      string
	LastName       string
	Department     string
	Designation    string
	EmploymentType EmploymentType
	JoiningDate    time.Time
	ReportingTo    *string
	Salary         Salary
	LeaveBalance   LeaveBalance
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName returns the employee's display name
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// ComputeNetSalary derives the net salary from its components. Callers apply
// it before persisting any salary change.
func ComputeNetSalary(basic, allowances, deductions float64) float64 {
	return basic + allowances - deductions
}
