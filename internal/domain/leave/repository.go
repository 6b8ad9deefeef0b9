package leave

import "context"

type Repository interface {
	GetBalance(ctx context.Context, email string) (Balance, error)
	SetBalance(ctx context.Context, email string, casualLeave int) error
	DecrementBalance(ctx context.Context, email string, days int) error

	Insert(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	HasPending(ctx context.Context, email string) (bool, error)
	SetStatus(ctx context.Context, id string, status Status) error
	ListByEmail(ctx context.Context, email string) ([]Application, error)
	ListByStatus(ctx context.Context, status Status) ([]Application, error)
}
