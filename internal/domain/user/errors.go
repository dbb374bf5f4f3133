package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("user with this email or employee ID already exists")
	ErrAccountDeactivated     = errors.New("your account has been deactivated, please contact HR")
	ErrAdminPrivilegeRequired = errors.New("admin or HR privilege required")
	ErrPermissionDenied       = errors.New("you do not have permission to perform this action")
	ErrOwnershipRequired      = errors.New("you may only access your own records")
	ErrCannotDeactivateSelf   = errors.New("cannot deactivate your own account")
	ErrUserAlreadyDeactivated = errors.New("user is already deactivated")
)
