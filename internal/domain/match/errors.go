package match

import "errors"

var (
	// ErrUnauthenticated is returned when an operation runs without a requester identity
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidFilter is returned when a candidate filter fails validation
	ErrInvalidFilter = errors.New("invalid candidate filter")
)
