package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/up4/up4-api/internal/pkg/database"
)

// ListFilter filters event listings
type ListFilter struct {
	City     *string
	Category *string
	After    *time.Time
	Limit    int
	Offset   int
}

// Repository defines event data access interface
type Repository interface {
	UpsertByExternalID(ctx context.Context, event *Event) (*Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	List(ctx context.Context, filter *ListFilter) ([]*Event, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Event, error)

	// Attendance edges
	AddAttendee(ctx context.Context, eventID, userID uuid.UUID) error
	RemoveAttendee(ctx context.Context, eventID, userID uuid.UUID) error
	IsAttending(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	ListAttendeeIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
	ListAttendingEventIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new event repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// UpsertByExternalID inserts a discovered event or refreshes an existing
// one matched by its external-source id.
func (r *repository) UpsertByExternalID(ctx context.Context, event *Event) (*Event, error) {
	query := `
		INSERT INTO events (id, external_id, title, venue, city, category, starts_at, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (external_id) DO UPDATE
		SET title = EXCLUDED.title,
		    venue = EXCLUDED.venue,
		    city = EXCLUDED.city,
		    category = EXCLUDED.category,
		    starts_at = EXCLUDED.starts_at,
		    image_url = EXCLUDED.image_url,
		    updated_at = NOW()
		RETURNING id, external_id, title, venue, city, category, starts_at, image_url, created_at, updated_at
	`
	var stored Event
	err := r.db.GetContext(ctx, &stored, query,
		event.ID,
		event.ExternalID,
		event.Title,
		event.Venue,
		event.City,
		event.Category,
		event.StartsAt,
		event.ImageURL,
	)
	if err != nil {
		return nil, database.MapError("event upsert", err)
	}
	return &stored, nil
}

// GetByID returns event by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	query := `SELECT * FROM events WHERE id = $1`
	var event Event
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, database.MapError("event get by id", err)
	}
	return &event, nil
}

// List returns events matching the filter, soonest first
func (r *repository) List(ctx context.Context, filter *ListFilter) ([]*Event, error) {
	query := `SELECT * FROM events WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter != nil {
		if filter.City != nil {
			query += fmt.Sprintf(` AND city = $%d`, argPos)
			args = append(args, *filter.City)
			argPos++
		}
		if filter.Category != nil {
			query += fmt.Sprintf(` AND category = $%d`, argPos)
			args = append(args, *filter.Category)
			argPos++
		}
		if filter.After != nil {
			query += fmt.Sprintf(` AND starts_at >= $%d`, argPos)
			args = append(args, *filter.After)
			argPos++
		}
	}

	query += ` ORDER BY starts_at ASC NULLS LAST`

	limit := 50
	if filter != nil && filter.Limit > 0 {
		limit = filter.Limit
	}
	query += fmt.Sprintf(` LIMIT $%d`, argPos)
	args = append(args, limit)
	argPos++

	if filter != nil && filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argPos)
		args = append(args, filter.Offset)
	}

	var events []*Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, database.MapError("event list", err)
	}
	return events, nil
}

// AddAttendee adds an attending edge, idempotently
func (r *repository) AddAttendee(ctx context.Context, eventID, userID uuid.UUID) error {
	query := `
		INSERT INTO event_attendance (id, user_id, event_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, uuid.New(), userID, eventID, time.Now())
	return database.MapError("event add attendee", err)
}

// RemoveAttendee removes an attending edge
func (r *repository) RemoveAttendee(ctx context.Context, eventID, userID uuid.UUID) error {
	query := `DELETE FROM event_attendance WHERE user_id = $1 AND event_id = $2`
	result, err := r.db.ExecContext(ctx, query, userID, eventID)
	if err != nil {
		return database.MapError("event remove attendee", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotAttending
	}

	return nil
}

// IsAttending checks whether the user attends the event
func (r *repository) IsAttending(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM event_attendance WHERE user_id = $1 AND event_id = $2)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, eventID)
	return exists, database.MapError("event is attending", err)
}

// ListAttendeeIDs returns ids of users attending the event
func (r *repository) ListAttendeeIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT user_id FROM event_attendance WHERE event_id = $1 ORDER BY user_id`
	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, eventID); err != nil {
		return nil, database.MapError("event list attendees", err)
	}
	return ids, nil
}

// ListAttendingEventIDs returns ids of events the user attends
func (r *repository) ListAttendingEventIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT event_id FROM event_attendance WHERE user_id = $1 ORDER BY event_id`
	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, database.MapError("event list attending", err)
	}
	return ids, nil
}

// ListByIDs returns events for the given id set
func (r *repository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Event, error) {
	if len(ids) == 0 {
		return []*Event{}, nil
	}
	query := `SELECT * FROM events WHERE id = ANY($1) ORDER BY starts_at ASC NULLS LAST`
	var events []*Event
	if err := r.db.SelectContext(ctx, &events, query, pq.Array(ids)); err != nil {
		return nil, database.MapError("event list by ids", err)
	}
	return events, nil
}
