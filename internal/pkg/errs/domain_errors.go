package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Property errors
	ErrPropertyNotFound = errors.New("property not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingConflict = errors.New("booking conflict")

	// Session errors
	ErrSessionNotFound         = errors.New("booking session not found")
	ErrSelectionNotConfirmable = errors.New("selection not confirmable")

	// Query errors
	ErrInvalidCursor = errors.New("invalid pagination cursor")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
