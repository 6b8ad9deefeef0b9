package order

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderLocked    = errors.New("order is locked and cannot be modified")
	ErrUnknownStatus  = errors.New("unknown order status")
	ErrOrderIDExists  = errors.New("order ID already exists")
	ErrClientNotFound = errors.New("client not found for this order")
)
