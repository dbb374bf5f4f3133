package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByUserID(ctx context.Context, userID string) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
	Update(ctx context.Context, e *Employee) error
	// DecrementLeaveBalance subtracts days from one leave balance counter
	DecrementLeaveBalance(ctx context.Context, employeeID, counter string, days int) error
	Count(ctx context.Context) (int, error)
}
