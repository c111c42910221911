// internal/services/errors.go
package services

import (
	"errors"

	"github.com/javajoker/ecom-backend/internal/query"
	"github.com/javajoker/ecom-backend/internal/utils"
)

var (
	// ErrInvalidPagination reports page or limit below 1.
	ErrInvalidPagination = utils.ErrInvalidPagination
	// ErrInvalidFilter reports a malformed id-like or enumerated filter value.
	ErrInvalidFilter = query.ErrInvalidFilterValue
	// ErrStorage classifies every failed or timed-out storage call.
	ErrStorage = errors.New("storage failure")
)

// StorageError wraps a storage failure with the repository operation that
// issued it. Error() names only the operation; the driver error stays
// reachable through Unwrap for logging.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage failure in " + e.Op
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
