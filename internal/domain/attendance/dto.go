package attendance

import (
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
)

// Filter narrows attendance listings. EmployeeID is forced to the caller's
// own profile for non-administrative roles before the repository sees it.
type Filter struct {
	EmployeeID string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     string
}

// UpdateRequest is the administrative raw overwrite. It bypasses the
// check-in/check-out state machine and its derivation rules.
type UpdateRequest struct {
	CheckIn   *string  `json:"check_in,omitempty"`
	CheckOut  *string  `json:"check_out,omitempty"`
	Status    *string  `json:"status,omitempty"`
	WorkHours *float64 `json:"work_hours,omitempty"`
	Remarks   *string  `json:"remarks,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an ISO8601 timestamp",
			})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an ISO8601 timestamp",
			})
		}
	}
	if r.Status != nil {
		if !validator.IsInSlice(*r.Status, ValidStatuses()) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of present, absent, half-day, leave",
			})
		}
	}
	if r.WorkHours != nil && *r.WorkHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "work_hours",
			Message: "work_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse maps a record to its API shape
func ToResponse(rec *Record) RecordResponse {
	resp := RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Department:   rec.Department,
		Date:         rec.Date.Format("2006-01-02"),
		Status:       string(rec.Status),
		WorkHours:    rec.WorkHours,
		Remarks:      rec.Remarks,
	}
	if rec.CheckIn != nil {
		s := rec.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &s
	}
	if rec.CheckOut != nil {
		s := rec.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &s
	}
	return resp
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	Status       string  `json:"status"`
	WorkHours    float64 `json:"work_hours"`
	Remarks      string  `json:"remarks,omitempty"`
}

// Summary aggregates one employee's records over a calendar month
type Summary struct {
	TotalDays      int     `json:"total_days"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	HalfDay        int     `json:"half_day"`
	Leave          int     `json:"leave"`
	TotalWorkHours float64 `json:"total_work_hours"`
}

type SummaryResponse struct {
	Month   int              `json:"month"`
	Year    int              `json:"year"`
	Summary Summary          `json:"summary"`
	Records []RecordResponse `json:"records"`
}
