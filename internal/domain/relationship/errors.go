package relationship

import (
	"errors"

	"github.com/up4/up4-api/internal/pkg/database"
)

var (
	// ErrUnauthenticated is returned when an operation runs without a requester identity
	ErrUnauthenticated = errors.New("authentication required")

	// Self-edge violations
	ErrSelfLike   = errors.New("cannot like yourself")
	ErrSelfBlock  = errors.New("cannot block yourself")
	ErrSelfReport = errors.New("cannot report yourself")

	// Consent violations
	ErrBlockedByTarget = errors.New("you have been blocked by this user")
	ErrTargetBlocked   = errors.New("user is on your blocked list")

	// Edge-state preconditions
	ErrNotLiked   = errors.New("user is not on your liked list")
	ErrNotBlocked = errors.New("user is not on your blocked list")

	// Report validation
	ErrEmptyReportMessage = errors.New("report message is required")

	// Storage failures. ErrRepositoryUnavailable is the shared transient
	// marker so outages in the user and event stores map the same way.
	ErrRepositoryUnavailable = database.ErrUnavailable
	ErrPartialCommit         = errors.New("edge commit outcome unknown")
)
