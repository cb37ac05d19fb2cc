package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrInsufficientStock is returned by the stock ledger when a usage would
// consume more than the supply's current stock. No partial write happens.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrUnsupported indicates the active storage backend cannot perform the
// operation (e.g. atomic batches on the device-local store).
var ErrUnsupported = errors.New("operation not supported by this backend")

// PermissionError is raised when the hosted backend rejects a write against a
// record the caller does not own. It carries the attempted operation for
// diagnostics and is always surfaced, never silently retried.
type PermissionError struct {
	Op         string // e.g. "update", "delete"
	Collection string // Target table/collection
	RecordID   string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s on %s/%s", e.Op, e.Collection, e.RecordID)
}

func (e *PermissionError) Is(target error) bool {
	return target == ErrForbidden
}
