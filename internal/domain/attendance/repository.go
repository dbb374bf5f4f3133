package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a new daily record. The store's unique constraint on
	// (employee_id, date) backstops concurrent first check-ins; the loser
	// receives ErrAlreadyCheckedIn.
	Create(ctx context.Context, rec *Record) error
	GetByID(ctx context.Context, id string) (*Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)
	List(ctx context.Context, filter Filter) ([]*Record, error)
	ListByMonth(ctx context.Context, employeeID string, month time.Month, year int) ([]*Record, error)
	Update(ctx context.Context, rec *Record) error
	CountByDate(ctx context.Context, date time.Time) (map[Status]int, error)
}
