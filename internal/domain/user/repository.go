package user

import "context"

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	SetPassword(ctx context.Context, email string, passwordHash string) error
	SetRole(ctx context.Context, email string, role Role) error
}
