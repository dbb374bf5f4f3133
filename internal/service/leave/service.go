package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/notification"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/realtime"
	"github.com/dayflow-hq/hrms-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	leaveRepo           leave.Repository
	employeeRepo        employee.Repository
	userRepo            user.Repository
	notificationService notification.Service
	emitter             *realtime.Emitter
	runTx               func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.Repository,
	employeeRepo employee.Repository,
	userRepo user.Repository,
	notificationService notification.Service,
	emitter *realtime.Emitter,
) leave.Service {
	return &LeaveServiceImpl{
		leaveRepo:           leaveRepo,
		employeeRepo:        employeeRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		emitter:             emitter,
		runTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
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

// Apply implements leave.Service. The balance check here is advisory: it
// rejects requests that already exceed the remaining balance, but the
// balance itself is only decremented at approval time. Two overlapping
// pending requests can therefore both pass the check; the reviewer sees the
// combined picture and remains the arbiter.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	_, employeeID, _, err := callerFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	leaveType := leave.Type(req.LeaveType)
	days := leave.DayCount(startDate, endDate)

	requester, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if counter := leaveType.BalanceCounter(); counter != "" {
		balance := requester.LeaveBalance.Paid
		if counter == "sick" {
			balance = requester.LeaveBalance.Sick
		}
		if balance < days {
			return leave.RequestResponse{}, leave.ErrInsufficientBalance
		}
	}

	request := &leave.Request{
		EmployeeID:   employeeID,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		NumberOfDays: days,
		Reason:       req.Reason,
		Status:       leave.StatusPending,
	}

	if err := s.leaveRepo.Create(ctx, request); err != nil {
		return leave.RequestResponse{}, err
	}

	requesterName := requester.FullName()
	request.EmployeeName = &requesterName
	request.Department = &requester.Department
	resp := leave.ToResponse(request)

	// Reviewer notifications are side effects of a request that already
	// exists; their failure must not fail the application
	s.notifyReviewers(ctx, requesterName, request)
	s.emitter.EmitToRoles(roleNames(user.AdministrativeRoles()), realtime.EventLeaveNew, resp)

	return resp, nil
}

func roleNames(roles []user.Role) []string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	return names
}

func (s *LeaveServiceImpl) notifyReviewers(ctx context.Context, requesterName string, request *leave.Request) {
	reviewers, err := s.userRepo.ListByRoles(ctx, user.AdministrativeRoles())
	if err != nil {
		return
	}

	message := fmt.Sprintf("%s applied for %d day(s) of %s leave",
		requesterName, request.NumberOfDays, request.LeaveType)
	link := "/leaves/" + request.ID

	for _, reviewer := range reviewers {
		_ = s.notificationService.Notify(ctx, notification.CreateRequest{
			UserID:  reviewer.ID,
			Title:   "New Leave Request",
			Message: message,
			Type:    notification.TypeLeave,
			Link:    &link,
		})
	}
}

// Review implements leave.Service. The pending check below is a fast-path
// guard; the conditional update inside the transaction is what actually
// serializes concurrent reviews.
func (s *LeaveServiceImpl) Review(ctx context.Context, leaveID string, req leave.ReviewRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	reviewerID, _, _, err := callerFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	request, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.Status(req.Status)
	request.ApprovedBy = &reviewerID
	request.ApprovalComments = req.Comments
	request.ApprovedAt = &now

	err = s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		decided, err := s.leaveRepo.SetDecision(txCtx, request)
		if err != nil {
			return err
		}
		if !decided {
			return leave.ErrAlreadyProcessed
		}

		if request.Status == leave.StatusApproved {
			if counter := request.LeaveType.BalanceCounter(); counter != "" {
				return s.employeeRepo.DecrementLeaveBalance(txCtx, request.EmployeeID, counter, request.NumberOfDays)
			}
		}
		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	resp := leave.ToResponse(request)
	s.notifyRequester(ctx, request)

	return resp, nil
}

func (s *LeaveServiceImpl) notifyRequester(ctx context.Context, request *leave.Request) {
	requester, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return
	}

	title := "Leave Request Approved"
	if request.Status == leave.StatusRejected {
		title = "Leave Request Rejected"
	}
	message := fmt.Sprintf("Your %s leave request from %s to %s has been %s",
		request.LeaveType,
		request.StartDate.Format("2006-01-02"),
		request.EndDate.Format("2006-01-02"),
		request.Status,
	)
	link := "/leaves/" + request.ID

	_ = s.notificationService.Notify(ctx, notification.CreateRequest{
		UserID:  requester.UserID,
		Title:   title,
		Message: message,
		Type:    notification.TypeLeave,
		Link:    &link,
	})

	s.emitter.EmitToUser(requester.UserID, realtime.EventLeaveStatus, leave.ToResponse(request))
}

// List implements leave.Service. Non-administrative callers have the filter
// pinned to their own requests regardless of what they asked for.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.Filter) ([]leave.RequestResponse, error) {
	_, employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !user.Allowed(role, user.ResourceLeave, user.ActionViewAll) {
		filter.EmployeeID = employeeID
	}

	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.ToResponse(request))
	}

	return responses, nil
}
