package errs

import "errors"

// Domain-specific sentinel errors shared by the ledger usecases and handlers
var (
	// Product errors
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationExpired  = errors.New("reservation expired")
	ErrReservationMismatch = errors.New("reservation does not match requested items")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrTransientFailure        = errors.New("transient failure, retry the whole operation")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
