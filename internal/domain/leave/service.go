package leave

import "context"

type Service interface {
	Apply(ctx context.Context, req ApplyRequest) (RequestResponse, error)
	Review(ctx context.Context, leaveID string, req ReviewRequest) (RequestResponse, error)
	List(ctx context.Context, filter Filter) ([]RequestResponse, error)
}
