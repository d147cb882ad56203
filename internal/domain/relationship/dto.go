package relationship

import (
	"time"

	"github.com/google/uuid"
)

// ReportUserRequest for POST /users/{id}/report
type ReportUserRequest struct {
	Message string `json:"message" validate:"required,min=1,max=1000"`
}

// EdgeListResponse represents the requester's updated edge set after a mutation
type EdgeListResponse struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

// LikedUserResponse represents a liked user in API responses
type LikedUserResponse struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	LikedAt string    `json:"liked_at"`
}

// BlockedUserResponse represents a blocked user in API responses
type BlockedUserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	BlockedAt string    `json:"blocked_at"`
}

// ReportResponse confirms a filed report
type ReportResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt string    `json:"created_at"`
}

// LikeRelationFromEntity converts entity to response
func LikeRelationFromEntity(like *LikeRelation) *LikedUserResponse {
	return &LikedUserResponse{
		ID:      like.ID,
		UserID:  like.LikedUserID,
		LikedAt: like.CreatedAt.Format(time.RFC3339),
	}
}

// BlockRelationFromEntity converts entity to response
func BlockRelationFromEntity(block *BlockRelation) *BlockedUserResponse {
	return &BlockedUserResponse{
		ID:        block.ID,
		UserID:    block.BlockedUserID,
		BlockedAt: block.CreatedAt.Format(time.RFC3339),
	}
}

// ReportFromEntity converts entity to response
func ReportFromEntity(report *Report) *ReportResponse {
	return &ReportResponse{
		ID:        report.ID,
		UserID:    report.ReportedUserID,
		Message:   report.Message,
		CreatedAt: report.CreatedAt.Format(time.RFC3339),
	}
}
