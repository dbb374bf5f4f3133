package leave

import "context"

type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	List(ctx context.Context, filter Filter) ([]*Request, error)
	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]*Request, error)
	// SetDecision performs the terminal Pending transition as a conditional
	// update: it reports false when the request was no longer pending, so two
	// concurrent reviews cannot both win.
	SetDecision(ctx context.Context, req *Request) (bool, error)
	CountByStatus(ctx context.Context, status Status) (int, error)
}
