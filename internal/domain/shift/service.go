package shift

import "context"

type Service interface {
	Assign(ctx context.Context, req AssignRequest) (AssignmentResponse, error)
	Get(ctx context.Context, email string) (AssignmentResponse, error)
	List(ctx context.Context) ([]AssignmentResponse, error)
	Remove(ctx context.Context, email string) error

	// EnrollOT adds an employee to the OT list; the entry is consumed
	// when they stop their overtime session.
	EnrollOT(ctx context.Context, req EnrollOTRequest) (AssignmentResponse, error)
	ListOT(ctx context.Context) ([]AssignmentResponse, error)
}
