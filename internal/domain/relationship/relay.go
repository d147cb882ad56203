package relationship

import (
	"context"

	"github.com/google/uuid"
)

// ModerationRelay delivers report payloads to the support team.
// Delivery is fire-and-forget: a failed relay never fails the operation
// that produced the report.
type ModerationRelay interface {
	SendReport(ctx context.Context, report *Report) error
}

// MatchInvalidator drops cached match results for users whose candidate
// pool changed. Block and unblock change who may appear in a pool, so the
// service invalidates both endpoints of the edge.
type MatchInvalidator interface {
	Invalidate(ctx context.Context, userIDs ...uuid.UUID)
}
