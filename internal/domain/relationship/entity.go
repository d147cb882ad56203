package relationship

import (
	"time"

	"github.com/google/uuid"
)

// LikeRelation represents a directed liked edge between users
type LikeRelation struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	LikedUserID uuid.UUID `db:"liked_user_id" json:"liked_user_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// BlockRelation represents a directed blocked edge between users
type BlockRelation struct {
	ID            uuid.UUID `db:"id" json:"id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	BlockedUserID uuid.UUID `db:"blocked_user_id" json:"blocked_user_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Report represents a user-filed abuse report relayed to support
type Report struct {
	ID             uuid.UUID `json:"id"`
	ReporterUserID uuid.UUID `json:"reporter_user_id"`
	ReportedUserID uuid.UUID `json:"reported_user_id"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}
