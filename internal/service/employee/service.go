package employee

import (
	"context"
	"fmt"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
	userRepo     user.Repository
}

func NewEmployeeService(employeeRepo employee.Repository, userRepo user.Repository) employee.Service {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
	}
}

func callerFromContext(ctx context.Context) (userID, employeeID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, _ = claims["user_id"].(string)
	employeeID, _ = claims["employee_id"].(string)
	roleStr, _ := claims["role"].(string)
	return userID, employeeID, user.Role(roleStr), nil
}

// GetMyProfile implements employee.Service.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context) (employee.EmployeeResponse, error) {
	userID, _, _, err := callerFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	entity, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(entity), nil
}

// UpdateMyProfile applies the self-service subset of profile fields. Salary
// and organizational fields are administrative and ignored here.
func (s *EmployeeServiceImpl) UpdateMyProfile(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	userID, _, _, err := callerFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	entity, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		entity.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		entity.LastName = *req.LastName
	}

	if err := s.employeeRepo.Update(ctx, entity); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(entity), nil
}

// GetByID implements employee.Service.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	_, employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Non-administrative callers may only read their own profile
	if !user.Allowed(role, user.ResourceEmployee, user.ActionViewAll) && employeeID != id {
		return employee.EmployeeResponse{}, user.ErrOwnershipRequired
	}

	entity, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(entity), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	entities, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(entities))
	for _, e := range entities {
		responses = append(responses, employee.ToResponse(e))
	}

	return responses, nil
}

// Update implements employee.Service. Salary mutations rederive the net
// salary; it is never written directly.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	entity, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		entity.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		entity.LastName = *req.LastName
	}
	if req.Department != nil {
		entity.Department = *req.Department
	}
	if req.Designation != nil {
		entity.Designation = *req.Designation
	}
	if req.EmploymentType != nil {
		entity.EmploymentType = employee.EmploymentType(*req.EmploymentType)
	}
	if req.ReportingTo != nil {
		entity.ReportingTo = req.ReportingTo
	}
	if req.BasicSalary != nil {
		entity.Salary.Basic = *req.BasicSalary
	}
	if req.Allowances != nil {
		entity.Salary.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		entity.Salary.Deductions = *req.Deductions
	}
	entity.Salary.NetSalary = employee.ComputeNetSalary(
		entity.Salary.Basic,
		entity.Salary.Allowances,
		entity.Salary.Deductions,
	)

	if err := s.employeeRepo.Update(ctx, entity); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(entity), nil
}

// Deactivate disables the user account behind an employee profile. Records
// survive; only sign-in and stream handshakes are refused afterwards.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	callerUserID, _, _, err := callerFromContext(ctx)
	if err != nil {
		return err
	}

	entity, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if entity.UserID == callerUserID {
		return user.ErrCannotDeactivateSelf
	}

	account, err := s.userRepo.GetByID(ctx, entity.UserID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return user.ErrUserAlreadyDeactivated
	}

	return s.userRepo.Deactivate(ctx, entity.UserID)
}
