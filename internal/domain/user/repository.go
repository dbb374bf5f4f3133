package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmailOrCode(ctx context.Context, email, employeeCode string) (bool, error)
	ListByRoles(ctx context.Context, roles []Role) ([]*User, error)
	Deactivate(ctx context.Context, id string) error
}
