package event

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Event represents an event users can attend. ExternalID is the
// discovery-provider id and is the dedup key for ingested events.
type Event struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	ExternalID string         `db:"external_id" json:"external_id"`
	Title      string         `db:"title" json:"title"`
	Venue      sql.NullString `db:"venue" json:"-"`
	City       sql.NullString `db:"city" json:"-"`
	Category   string         `db:"category" json:"category"`
	StartsAt   sql.NullTime   `db:"starts_at" json:"-"`
	ImageURL   sql.NullString `db:"image_url" json:"-"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// Attendance represents an attending edge between a user and an event
type Attendance struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
