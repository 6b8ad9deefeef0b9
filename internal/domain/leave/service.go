package leave

import "context"

type Service interface {
	// Apply requires sufficient casual leave balance and no pending
	// application for the same employee.
	Apply(ctx context.Context, req ApplyRequest) (ApplicationResponse, error)

	// Decide approves (decrementing the balance and moving the employee
	// to On Leave) or declines; either way a notification is written.
	Decide(ctx context.Context, req DecideRequest) (ApplicationResponse, error)

	GetBalance(ctx context.Context, email string) (BalanceResponse, error)
	SetBalance(ctx context.Context, email string, casualLeave int) error
	ListMine(ctx context.Context, email string) ([]ApplicationResponse, error)
	ListPending(ctx context.Context) ([]ApplicationResponse, error)
}
