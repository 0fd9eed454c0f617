package errs

import "errors"

// Sentinels shared by domain and usecase layers. Handlers map these to HTTP statuses.
var (
	// Validation
	ErrDomainValidation = errors.New("domain validation error")

	// Catalog
	ErrLocationNotFound = errors.New("location not found")
	ErrPackageNotFound  = errors.New("package not found")
	ErrSlotNotFound     = errors.New("slot not found")

	// Orders
	ErrOrderNotFound       = errors.New("order not found")
	ErrSlotUnavailable     = errors.New("slot unavailable")
	ErrAlreadyCancelled    = errors.New("order already cancelled")
	ErrOwnershipMismatch   = errors.New("requester does not own order")
	ErrConcurrentOrderEdit = errors.New("order changed concurrently")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
