package services

import (
	"errors"
	"fmt"

	"recovery-backend/internal/repositories"
)

// ErrNotFound is returned by services when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrInternal wraps infrastructure failures (database down, query
// errors). Handlers answer these with a generic 500 so driver
// internals never reach the client.
var ErrInternal = errors.New("internal error")

// storeErr translates a repository failure: a missing row becomes
// ErrNotFound, anything else is an infrastructure fault.
func storeErr(err error) error {
	if repositories.IsNotFound(err) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
