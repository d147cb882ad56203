package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
)

// ErrUnavailable marks a transient datastore failure. The statement did
// not execute (or its outcome is retryable), so callers may retry.
var ErrUnavailable = errors.New("datastore unavailable")

// IsTransient reports whether err is a connection-level failure rather
// than a statement error.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	// Class 08 - connection exceptions, class 57 - operator intervention
	if errors.As(err, &pqErr) {
		class := pqErr.Code.Class()
		return class == "08" || class == "57"
	}
	return false
}

// MapError wraps a storage error, tagging transient failures with
// ErrUnavailable so handlers can answer with a retryable status.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsTransient(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
