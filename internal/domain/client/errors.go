package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientIDExists = errors.New("client ID already exists")
)
