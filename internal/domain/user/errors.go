package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrAccessDenied       = errors.New("you are not allowed to perform this action")
	ErrSelfAccessMismatch = errors.New("you can only access your own data")
)
