package response

import (
	"errors"
	"net/http"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/notification"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrAccountDeactivated):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		BadRequest(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrPermissionDenied),
		errors.Is(err, user.ErrOwnershipRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrCannotDeactivateSelf),
		errors.Is(err, user.ErrUserAlreadyDeactivated):
		BadRequest(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrProfileExists),
		errors.Is(err, employee.ErrInvalidEmploymentType):
		BadRequest(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut),
		errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, err.Error())
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrInsufficientBalance),
		errors.Is(err, leave.ErrAlreadyProcessed):
		BadRequest(w, err.Error())

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, err.Error())

	default:
		// Unexpected faults surface verbatim; the client shows the message
		InternalServerError(w, err.Error())
	}
}
