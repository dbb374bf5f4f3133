package attendance

import (
	"context"
	"time"
)

type Service interface {
	CheckIn(ctx context.Context) (RecordResponse, error)
	CheckOut(ctx context.Context) (RecordResponse, error)
	List(ctx context.Context, filter Filter) ([]RecordResponse, error)
	Summary(ctx context.Context, employeeID string, month time.Month, year int) (SummaryResponse, error)
	AdminUpdate(ctx context.Context, id string, req UpdateRequest) (RecordResponse, error)
}
