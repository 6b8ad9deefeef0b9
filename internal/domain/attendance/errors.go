package attendance

import "errors"

var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrNotCheckedIn      = errors.New("no check-in found for today")
	ErrNotEligible       = errors.New("not eligible to check in at this time")
	ErrNoShiftAssigned   = errors.New("no shift assignment found for this employee")
	ErrOTAlreadyStarted  = errors.New("overtime has already been started today")
	ErrOTAlreadyStopped  = errors.New("overtime has already been stopped today")
	ErrOTNotStarted      = errors.New("no overtime session has been started today")
	ErrDuplicateRecord   = errors.New("attendance record already exists")
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrSnapshotNotFound  = errors.New("attendance snapshot not found")
)
