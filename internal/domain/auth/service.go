package auth

import "context"

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Activate consumes an activation token, sets the password and
	// flips the employee from pending to Active.
	Activate(ctx context.Context, req ActivateRequest) (LoginResponse, error)
}
