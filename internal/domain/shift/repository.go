package shift

import "context"

type Repository interface {
	// Upsert replaces the existing assignment for (email, is_ot).
	Upsert(ctx context.Context, a Assignment) (Assignment, error)
	GetByEmail(ctx context.Context, email string, isOT bool) (Assignment, error)
	List(ctx context.Context, isOT bool) ([]Assignment, error)
	Delete(ctx context.Context, email string, isOT bool) error
}
