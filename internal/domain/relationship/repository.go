package relationship

import (
	"context"

	"github.com/google/uuid"
)

// EdgeChanges describes a set of edge mutations applied in one transaction.
// All listed changes commit together or not at all.
type EdgeChanges struct {
	AddLiked      []uuid.UUID
	RemoveLiked   []uuid.UUID
	AddBlocked    []uuid.UUID
	RemoveBlocked []uuid.UUID
}

// IsEmpty reports whether the change set contains no mutations
func (c EdgeChanges) IsEmpty() bool {
	return len(c.AddLiked) == 0 && len(c.RemoveLiked) == 0 &&
		len(c.AddBlocked) == 0 && len(c.RemoveBlocked) == 0
}

// Repository defines relationship edge data access interface
type Repository interface {
	HasLiked(ctx context.Context, userID, targetID uuid.UUID) (bool, error)
	HasBlocked(ctx context.Context, userID, targetID uuid.UUID) (bool, error)
	ListLikes(ctx context.Context, userID uuid.UUID) ([]*LikeRelation, error)
	ListBlocks(ctx context.Context, userID uuid.UUID) ([]*BlockRelation, error)
	ListLikedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListBlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ApplyEdgeChanges commits all changes atomically. Inserts are
	// idempotent and deletes of absent edges are no-ops, so a caller
	// retry of the same change set is always safe.
	ApplyEdgeChanges(ctx context.Context, userID uuid.UUID, changes EdgeChanges) error
}
