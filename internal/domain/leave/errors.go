package leave

import "errors"

var (
	ErrApplicationNotFound = errors.New("leave application not found")
	ErrInsufficientBalance = errors.New("insufficient casual leave balance")
	ErrPendingExists       = errors.New("a pending leave application already exists")
	ErrAlreadyProcessed    = errors.New("leave application has already been processed")
)
