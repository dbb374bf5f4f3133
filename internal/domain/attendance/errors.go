package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("please check in first")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrInvalidStatus     = errors.New("status must be present, absent, half-day or leave")
)
