package shift

import "errors"

var (
	ErrAssignmentNotFound = errors.New("no shift assignment found")
	ErrNotEnrolledInOT    = errors.New("employee is not enrolled in the OT list")
	ErrAlreadyEnrolled    = errors.New("employee is already enrolled in the OT list")
	ErrUnknownShift       = errors.New("unknown shift name")
)
