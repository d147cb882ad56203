package relationship

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/up4/up4-api/internal/pkg/database"
)

const readRetries = 2

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new relationship repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) HasLiked(ctx context.Context, userID, targetID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_likes WHERE user_id = $1 AND liked_user_id = $2)`
	var exists bool
	err := r.getWithRetry(ctx, &exists, query, userID, targetID)
	return exists, err
}

func (r *repository) HasBlocked(ctx context.Context, userID, targetID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_blocks WHERE user_id = $1 AND blocked_user_id = $2)`
	var exists bool
	err := r.getWithRetry(ctx, &exists, query, userID, targetID)
	return exists, err
}

func (r *repository) ListLikes(ctx context.Context, userID uuid.UUID) ([]*LikeRelation, error) {
	query := `SELECT * FROM user_likes WHERE user_id = $1 ORDER BY created_at DESC`
	var likes []*LikeRelation
	if err := r.db.SelectContext(ctx, &likes, query, userID); err != nil {
		return nil, database.MapError("relationship list likes", err)
	}
	return likes, nil
}

func (r *repository) ListBlocks(ctx context.Context, userID uuid.UUID) ([]*BlockRelation, error) {
	query := `SELECT * FROM user_blocks WHERE user_id = $1 ORDER BY created_at DESC`
	var blocks []*BlockRelation
	if err := r.db.SelectContext(ctx, &blocks, query, userID); err != nil {
		return nil, database.MapError("relationship list blocks", err)
	}
	return blocks, nil
}

func (r *repository) ListLikedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT liked_user_id FROM user_likes WHERE user_id = $1 ORDER BY liked_user_id`
	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, database.MapError("relationship list liked ids", err)
	}
	return ids, nil
}

func (r *repository) ListBlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT blocked_user_id FROM user_blocks WHERE user_id = $1 ORDER BY blocked_user_id`
	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, database.MapError("relationship list blocked ids", err)
	}
	return ids, nil
}

// ApplyEdgeChanges applies the full change set inside a single transaction.
func (r *repository) ApplyEdgeChanges(ctx context.Context, userID uuid.UUID, changes EdgeChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return database.MapError("relationship begin edge tx", err)
	}
	defer tx.Rollback()

	for _, id := range changes.AddLiked {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_likes (id, user_id, liked_user_id, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, liked_user_id) DO NOTHING
		`, uuid.New(), userID, id, time.Now())
		if err != nil {
			return database.MapError("relationship add liked edge", err)
		}
	}

	for _, id := range changes.RemoveLiked {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM user_likes WHERE user_id = $1 AND liked_user_id = $2`, userID, id)
		if err != nil {
			return database.MapError("relationship remove liked edge", err)
		}
	}

	for _, id := range changes.AddBlocked {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_blocks (id, user_id, blocked_user_id, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, blocked_user_id) DO NOTHING
		`, uuid.New(), userID, id, time.Now())
		if err != nil {
			return database.MapError("relationship add blocked edge", err)
		}
	}

	for _, id := range changes.RemoveBlocked {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM user_blocks WHERE user_id = $1 AND blocked_user_id = $2`, userID, id)
		if err != nil {
			return database.MapError("relationship remove blocked edge", err)
		}
	}

	if err := tx.Commit(); err != nil {
		// A failed commit leaves the outcome ambiguous to the caller.
		// The change set is idempotent, so a retry is safe either way.
		return fmt.Errorf("%w: %v", ErrPartialCommit, err)
	}

	return nil
}

// getWithRetry runs a single-row read, retrying transient store failures
// a bounded number of times before reporting the store as unavailable.
func (r *repository) getWithRetry(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	var err error
	for attempt := 0; attempt <= readRetries; attempt++ {
		err = r.db.GetContext(ctx, dest, query, args...)
		if err == nil || !database.IsTransient(err) {
			break
		}
	}
	return database.MapError("relationship edge read", err)
}
