package employee

import (
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
)

type UpdateEmployeeRequest struct {
	FirstName      *string  `json:"first_name,omitempty"`
	LastName       *string  `json:"last_name,omitempty"`
	Department     *string  `json:"department,omitempty"`
	Designation    *string  `json:"designation,omitempty"`
	EmploymentType *string  `json:"employment_type,omitempty"`
	ReportingTo    *string  `json:"reporting_to,omitempty"`
	BasicSalary    *float64 `json:"basic_salary,omitempty"`
	Allowances     *float64 `json:"allowances,omitempty"`
	Deductions     *float64 `json:"deductions,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}
	if r.EmploymentType != nil {
		valid := []string{
			string(EmploymentFullTime),
			string(EmploymentPartTime),
			string(EmploymentContract),
			string(EmploymentIntern),
		}
		if !validator.IsInSlice(*r.EmploymentType, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "employment_type",
				Message: "employment_type must be one of full-time, part-time, contract, intern",
			})
		}
	}
	if r.BasicSalary != nil && *r.BasicSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}
	if r.Allowances != nil && *r.Allowances < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must not be negative",
		})
	}
	if r.Deductions != nil && *r.Deductions < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse maps an entity to its API shape
func ToResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Department:     e.Department,
		Designation:    e.Designation,
		EmploymentType: string(e.EmploymentType),
		JoiningDate:    e.JoiningDate.Format("2006-01-02"),
		ReportingTo:    e.ReportingTo,
		Salary:         e.Salary,
		LeaveBalance:   e.LeaveBalance,
	}
}

type EmployeeResponse struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user_id"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	Department     string       `json:"department"`
	Designation    string       `json:"designation"`
	EmploymentType string       `json:"employment_type"`
	JoiningDate    string       `json:"joining_date"`
	ReportingTo    *string      `json:"reporting_to,omitempty"`
	Salary         Salary       `json:"salary"`
	LeaveBalance   LeaveBalance `json:"leave_balance"`
}
