package employee

import "context"

type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, status *Status) ([]Employee, int64, error)
	// ListEmails returns every employee email, used for notice broadcast.
	ListEmails(ctx context.Context) ([]string, error)
	UpdateProfile(ctx context.Context, emp Employee) error
	SetStatus(ctx context.Context, email string, status Status) error
	SetSalaryPinHash(ctx context.Context, email string, pinHash string) error
}
