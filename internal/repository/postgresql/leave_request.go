package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepository{db: db}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *leave.Request) error {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, number_of_days,
			reason, status, approval_comments, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		req.ID,
		req.EmployeeID,
		string(req.LeaveType),
		req.StartDate,
		req.EndDate,
		req.NumberOfDays,
		req.Reason,
		string(req.Status),
		req.ApprovalComments,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	return nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
		       l.number_of_days, l.reason, l.status, l.approved_by,
		       l.approval_comments, l.approved_at, l.created_at, l.updated_at,
		       e.first_name || ' ' || e.last_name, e.department
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	return req, nil
}

func scanLeaveRequest(row pgx.Row) (*leave.Request, error) {
	var req leave.Request
	var leaveType, status string

	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&leaveType,
		&req.StartDate,
		&req.EndDate,
		&req.NumberOfDays,
		&req.Reason,
		&status,
		&req.ApprovedBy,
		&req.ApprovalComments,
		&req.ApprovedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.EmployeeName,
		&req.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	req.LeaveType = leave.Type(leaveType)
	req.Status = leave.Status(status)
	return &req, nil
}

// buildLeaveListQuery assembles the filtered list query. Both date bounds
// constrain start_date: the range selects leaves that begin inside it,
// regardless of when they end.
func buildLeaveListQuery(filter leave.Filter) (string, []any) {
	query := `
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
		       l.number_of_days, l.reason, l.status, l.approved_by,
		       l.approval_comments, l.approved_at, l.created_at, l.updated_at,
		       e.first_name || ' ' || e.last_name, e.department
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE 1=1
	`

	args := []any{}
	argPos := 1

	if filter.EmployeeID != "" {
		query += fmt.Sprintf(" AND l.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND l.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND l.start_date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND l.start_date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	query += " ORDER BY l.created_at DESC"

	return query, args
}

func (r *leaveRequestRepository) List(ctx context.Context, filter leave.Filter) ([]*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query, args := buildLeaveListQuery(filter)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepository) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
		       l.number_of_days, l.reason, l.status, l.approved_by,
		       l.approval_comments, l.approved_at, l.created_at, l.updated_at,
		       e.first_name || ' ' || e.last_name, e.department
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1
		ORDER BY l.created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func collectLeaveRequests(rows pgx.Rows) ([]*leave.Request, error) {
	var requests []*leave.Request
	for rows.Next() {
		var req leave.Request
		var leaveType, status string
		if err := rows.Scan(
			&req.ID,
			&req.EmployeeID,
			&leaveType,
			&req.StartDate,
			&req.EndDate,
			&req.NumberOfDays,
			&req.Reason,
			&status,
			&req.ApprovedBy,
			&req.ApprovalComments,
			&req.ApprovedAt,
			&req.CreatedAt,
			&req.UpdatedAt,
			&req.EmployeeName,
			&req.Department,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		req.LeaveType = leave.Type(leaveType)
		req.Status = leave.Status(status)
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

// SetDecision writes the terminal decision only when the row is still pending.
// It reports false when another reviewer got there first.
func (r *leaveRequestRepository) SetDecision(ctx context.Context, req *leave.Request) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approval_comments = $3,
		    approved_at = $4, updated_at = $5
		WHERE id = $6 AND status = 'pending'
	`

	result, err := q.Exec(ctx, query,
		string(req.Status),
		req.ApprovedBy,
		req.ApprovalComments,
		req.ApprovedAt,
		time.Now(),
		req.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to set leave decision: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *leaveRequestRepository) CountByStatus(ctx context.Context, status leave.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	return count, nil
}
