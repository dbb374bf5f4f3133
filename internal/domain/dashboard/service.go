package dashboard

import "context"

type Service interface {
	EmployeeDashboard(ctx context.Context) (EmployeeDashboard, error)
	AdminDashboard(ctx context.Context) (AdminDashboard, error)
}
