package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full administrative access
	RoleHR       Role = "hr"       // Shares administrative privilege with admin
	RoleEmployee Role = "employee" // Regular employee
)

// ValidRoles returns every role a user can hold
func ValidRoles() []Role {
	return []Role{RoleAdmin, RoleHR, RoleEmployee}
}

// AdministrativeRoles are the roles that review leave and manage records
func AdministrativeRoles() []Role {
	return []Role{RoleAdmin, RoleHR}
}

type User struct {
	ID           string
	EmployeeCode string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
