package repository

import (
	"errors"
	"fmt"
)

// Common repository errors. Handlers branch on these with errors.Is.
var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert would repeat a unique row.
	ErrDuplicate = errors.New("record already exists")

	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)
	ErrPersonNotFound   = fmt.Errorf("%w: person", ErrNotFound)
	ErrPlanetNotFound   = fmt.Errorf("%w: planet", ErrNotFound)
	ErrFavoriteNotFound = fmt.Errorf("%w: favorite", ErrNotFound)

	// ErrFavoriteExists is returned when the user already bookmarked the target.
	ErrFavoriteExists = fmt.Errorf("%w: favorite", ErrDuplicate)
)

// StorageError wraps an unexpected database failure with the entity and
// operation that hit it.
type StorageError struct {
	Entity    string
	Operation string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Entity, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageError(entity, operation string, err error) error {
	return &StorageError{Entity: entity, Operation: operation, Err: err}
}

func IsNotFound(err error) bool  { return errors.Is(err, ErrNotFound) }
func IsDuplicate(err error) bool { return errors.Is(err, ErrDuplicate) }

// IsStorageFailure reports whether err came from the database rather than
// from a missing or duplicate row.
func IsStorageFailure(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
