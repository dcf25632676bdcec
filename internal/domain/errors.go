package domain

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrUpstreamUnavailable = errors.New("order service unavailable")
)
