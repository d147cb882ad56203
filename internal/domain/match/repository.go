package match

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/up4/up4-api/internal/domain/user"
	"github.com/up4/up4-api/internal/pkg/database"
)

// Repository defines match data access interface
type Repository interface {
	// FindCandidates returns users passing the preference filter who share
	// at least one event with the filter's attendance set, excluding
	// blocked pairs in both directions.
	FindCandidates(ctx context.Context, filter *CandidateFilter) ([]*user.User, error)
	ListAttendingEventIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ListAttendanceByUserIDs returns the attended event ids for a whole
	// set of users in one query, keyed by user id. Users attending nothing
	// are absent from the map.
	ListAttendanceByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
	ListLikedBy(ctx context.Context, userID uuid.UUID) ([]*user.User, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new match repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindCandidates(ctx context.Context, filter *CandidateFilter) ([]*user.User, error) {
	query := `
		SELECT DISTINCT u.id, u.email, u.name, u.age, u.gender,
		       u.min_age_pref, u.max_age_pref, u.gender_prefs,
		       u.created_at, u.updated_at
		FROM users u
		JOIN event_attendance ea ON ea.user_id = u.id
		WHERE u.id <> $1
		  AND u.age BETWEEN $2 AND $3
		  AND u.gender = ANY($4)
		  AND ea.event_id = ANY($5)
		  AND NOT EXISTS (
			SELECT 1 FROM user_blocks b
			WHERE (b.user_id = $1 AND b.blocked_user_id = u.id)
			   OR (b.user_id = u.id AND b.blocked_user_id = $1)
		  )
		ORDER BY u.id
		LIMIT $6
	`
	var candidates []*user.User
	err := r.db.SelectContext(ctx, &candidates, query,
		filter.IDNot,
		filter.AgeMin,
		filter.AgeMax,
		pq.Array(filter.GenderIn),
		pq.Array(filter.AttendingAnyOf),
		filter.Limit,
	)
	if err != nil {
		return nil, database.MapError("match find candidates", err)
	}
	return candidates, nil
}

func (r *repository) ListAttendingEventIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT event_id FROM event_attendance WHERE user_id = $1 ORDER BY event_id`
	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, database.MapError("match list attending", err)
	}
	return ids, nil
}

func (r *repository) ListAttendanceByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	attendance := make(map[uuid.UUID][]uuid.UUID, len(userIDs))
	if len(userIDs) == 0 {
		return attendance, nil
	}

	query := `SELECT user_id, event_id FROM event_attendance WHERE user_id = ANY($1) ORDER BY user_id, event_id`
	var rows []struct {
		UserID  uuid.UUID `db:"user_id"`
		EventID uuid.UUID `db:"event_id"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(userIDs)); err != nil {
		return nil, database.MapError("match list pool attendance", err)
	}

	for _, row := range rows {
		attendance[row.UserID] = append(attendance[row.UserID], row.EventID)
	}
	return attendance, nil
}

func (r *repository) ListLikedBy(ctx context.Context, userID uuid.UUID) ([]*user.User, error) {
	query := `
		SELECT u.id, u.email, u.name, u.age, u.gender,
		       u.min_age_pref, u.max_age_pref, u.gender_prefs,
		       u.created_at, u.updated_at
		FROM users u
		JOIN user_likes l ON l.user_id = u.id
		WHERE l.liked_user_id = $1
		ORDER BY l.created_at DESC
	`
	var users []*user.User
	if err := r.db.SelectContext(ctx, &users, query, userID); err != nil {
		return nil, database.MapError("match list liked by", err)
	}
	return users, nil
}
