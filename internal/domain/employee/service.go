package employee

import "context"

type Service interface {
	// Register creates a pending employee plus its auth identity and
	// emails an activation link.
	Register(ctx context.Context, req RegisterRequest) (EmployeeResponse, error)

	Get(ctx context.Context, email string) (EmployeeResponse, error)
	List(ctx context.Context, status *Status) (ListEmployeesResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (EmployeeResponse, error)

	// SetStatus applies HR status toggles (Active / On Leave / De-activate).
	SetStatus(ctx context.Context, req SetStatusRequest) error

	SetSalaryPin(ctx context.Context, req SetSalaryPinRequest) error
	VerifySalaryPin(ctx context.Context, email string, pin string) error
}
