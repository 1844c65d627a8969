package court

import "errors"

var (
	// ErrCourtNotFound returned when no court matches the id
	ErrCourtNotFound = errors.New("court.repository: court not found")

	// ErrNotInTransaction returned by LockForUpdate outside a transaction, the lock would be released immediately
	ErrNotInTransaction = errors.New("court.repository: lock requires a transaction")

	ErrBuildQuery = errors.New("court.repository: failed to build query")
	ErrExecQuery  = errors.New("court.repository: failed to execute query")
	ErrScanRow    = errors.New("court.repository: failed to scan row")
)
