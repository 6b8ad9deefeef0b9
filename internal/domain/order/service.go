package order

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (OrderResponse, error)
	Get(ctx context.Context, orderID string) (OrderResponse, error)
	List(ctx context.Context, filter ListFilter) (ListOrdersResponse, error)

	// SetStatus enforces the lock gate; Completed and Cancel lock the
	// order as a side effect.
	SetStatus(ctx context.Context, req SetStatusRequest) (OrderResponse, error)

	// ExtendDeadline and Restore are the only paths that clear the lock;
	// both reset the status to Pending.
	ExtendDeadline(ctx context.Context, req ExtendDeadlineRequest) (OrderResponse, error)
	Restore(ctx context.Context, orderID string) (OrderResponse, error)
}
