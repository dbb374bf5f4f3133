package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/hrms-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo     user.Repository
	employeeRepo employee.Repository
	jwtService   jwt.Service
	runTx        func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewAuthService(db *database.DB, userRepo user.Repository, employeeRepo employee.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		runTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Signup implements auth.Service.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	exists, err := a.userRepo.ExistsByEmailOrCode(ctx, req.Email, req.EmployeeCode)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return auth.AuthResponse{}, user.ErrEmailExists
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	newUser := &user.User{
		EmployeeCode: req.EmployeeCode,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}

	newEmployee := &employee.Employee{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Department:     req.Department,
		Designation:    req.Designation,
		EmploymentType: employee.EmploymentFullTime,
		JoiningDate:    time.Now(),
		LeaveBalance: employee.LeaveBalance{
			Paid:   employee.DefaultPaidBalance,
			Sick:   employee.DefaultSickBalance,
			Unpaid: employee.DefaultUnpaidBalance,
		},
	}

	// User account and employee profile are created together or not at all
	err = a.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if err := a.userRepo.Create(txCtx, newUser); err != nil {
			return err
		}

		newEmployee.UserID = newUser.ID
		return a.employeeRepo.Create(txCtx, newEmployee)
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	token, _, err := a.jwtService.GenerateAccessToken(newUser.ID, newUser.Email, newEmployee.ID, newUser.Role)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	employeeResp := employee.ToResponse(newEmployee)
	return auth.AuthResponse{
		Token: token,
		User: auth.UserResponse{
			ID:           newUser.ID,
			EmployeeCode: newUser.EmployeeCode,
			Email:        newUser.Email,
			Role:         string(newUser.Role),
			IsActive:     newUser.IsActive,
		},
		Employee: &employeeResp,
	}, nil
}

// Signin implements auth.Service.
func (a *AuthServiceImpl) Signin(ctx context.Context, req auth.SigninRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return auth.AuthResponse{}, user.ErrAccountDeactivated
	}

	return a.buildAuthResponse(ctx, userData)
}

// Me implements auth.Service.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.AuthResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	if !userData.IsActive {
		return auth.AuthResponse{}, user.ErrAccountDeactivated
	}

	return a.buildAuthResponse(ctx, userData)
}

func (a *AuthServiceImpl) buildAuthResponse(ctx context.Context, userData *user.User) (auth.AuthResponse, error) {
	var employeeResp *employee.EmployeeResponse
	employeeID := ""

	employeeData, err := a.employeeRepo.GetByUserID(ctx, userData.ID)
	if err == nil {
		employeeID = employeeData.ID
		resp := employee.ToResponse(employeeData)
		employeeResp = &resp
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.AuthResponse{}, err
	}

	token, _, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, employeeID, userData.Role)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AuthResponse{
		Token: token,
		User: auth.UserResponse{
			ID:           userData.ID,
			EmployeeCode: userData.EmployeeCode,
			Email:        userData.Email,
			Role:         string(userData.Role),
			IsActive:     userData.IsActive,
		},
		Employee: employeeResp,
	}, nil
}

// StreamToken implements auth.Service.
func (a *AuthServiceImpl) StreamToken(ctx context.Context) (auth.StreamTokenResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.StreamTokenResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.StreamTokenResponse{}, auth.ErrInvalidToken
	}

	token, expiresIn, err := a.jwtService.GenerateStreamToken(userID)
	if err != nil {
		return auth.StreamTokenResponse{}, fmt.Errorf("failed to create stream token: %w", err)
	}

	return auth.StreamTokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}

// VerifyStream implements auth.Service.
func (a *AuthServiceImpl) VerifyStream(ctx context.Context, token string) (auth.Identity, error) {
	userID, err := a.jwtService.ValidateStreamToken(token)
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	if !userData.IsActive {
		return auth.Identity{}, user.ErrAccountDeactivated
	}

	identity := auth.Identity{
		UserID: userData.ID,
		Email:  userData.Email,
		Role:   userData.Role,
	}

	employeeData, err := a.employeeRepo.GetByUserID(ctx, userData.ID)
	if err == nil {
		identity.EmployeeID = employeeData.ID
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.Identity{}, err
	}

	return identity, nil
}
