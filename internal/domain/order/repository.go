package order

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, o Order) (Order, error)
	GetByOrderID(ctx context.Context, orderID string) (Order, error)
	List(ctx context.Context, filter ListFilter) ([]Order, int64, error)

	// SetStatus persists a status change plus the resulting lock flag.
	SetStatus(ctx context.Context, orderID string, status Status, locked bool) error

	// Reopen clears the lock, resets status to Pending and optionally
	// moves the deadline (extend-deadline and restore paths).
	Reopen(ctx context.Context, orderID string, deadline *time.Time) error
}
