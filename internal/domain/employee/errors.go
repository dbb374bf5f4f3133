package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee profile not found")
	ErrProfileExists         = errors.New("employee profile already exists for this user")
	ErrInvalidEmploymentType = errors.New("employment type must be full-time, part-time, contract or intern")
)
