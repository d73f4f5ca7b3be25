package reservation

import "errors"

var (
	ErrEmptySession      = errors.New("session id cannot be empty")
	ErrSessionTooLong    = errors.New("session id exceeds maximum length")
	ErrNonPositiveAmount = errors.New("reservation quantity must be positive")
	ErrInvalidTTL        = errors.New("reservation ttl must be positive")
	ErrInvalidProductID  = errors.New("product id is required")
)
