package leave

import (
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, ValidTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of paid, sick, unpaid",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewRequest struct {
	Status   string `json:"status"`
	Comments string `json:"comments,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter narrows leave listings. EmployeeID is forced to the caller's own
// profile for non-administrative roles before the repository sees it.
type Filter struct {
	EmployeeID string
	Status     string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ToResponse maps a request to its API shape
func ToResponse(req *Request) RequestResponse {
	resp := RequestResponse{
		ID:               req.ID,
		EmployeeID:       req.EmployeeID,
		EmployeeName:     req.EmployeeName,
		Department:       req.Department,
		LeaveType:        string(req.LeaveType),
		StartDate:        req.StartDate.Format("2006-01-02"),
		EndDate:          req.EndDate.Format("2006-01-02"),
		NumberOfDays:     req.NumberOfDays,
		Reason:           req.Reason,
		Status:           string(req.Status),
		ApprovedBy:       req.ApprovedBy,
		ApprovalComments: req.ApprovalComments,
		CreatedAt:        req.CreatedAt.Format(time.RFC3339),
	}
	if req.ApprovedAt != nil {
		s := req.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	return resp
}

type RequestResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	Department       *string `json:"department,omitempty"`
	LeaveType        string  `json:"leave_type"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	NumberOfDays     int     `json:"number_of_days"`
	Reason           string  `json:"reason"`
	Status           string  `json:"status"`
	ApprovedBy       *string `json:"approved_by,omitempty"`
	ApprovalComments string  `json:"approval_comments,omitempty"`
	ApprovedAt       *string `json:"approved_at,omitempty"`
	CreatedAt        string  `json:"created_at"`
}
