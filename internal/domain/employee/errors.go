package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrAlreadyActivated    = errors.New("employee account is already activated")
	ErrSalaryPinNotSet     = errors.New("salary PIN has not been set")
	ErrSalaryPinMismatch   = errors.New("salary PIN does not match")
	ErrEmployeeDeactivated = errors.New("employee account is de-activated")
)
