package match

import (
	"github.com/google/uuid"

	"github.com/up4/up4-api/internal/domain/user"
)

// CandidateResponse represents a scored match in API responses
type CandidateResponse struct {
	User  *user.ProfileResponse `json:"user"`
	Score int                   `json:"score"`
}

// LikedByResponse represents a user who liked the requester
type LikedByResponse struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Age    int         `json:"age"`
	Gender user.Gender `json:"gender"`
}

// CandidateFromEntity converts a scored candidate to a response
func CandidateFromEntity(c *Candidate) *CandidateResponse {
	return &CandidateResponse{
		User:  user.ProfileFromEntity(c.User),
		Score: c.Score,
	}
}

// LikedByFromEntity converts a user entity to a liked-by response
func LikedByFromEntity(u *user.User) *LikedByResponse {
	return &LikedByResponse{
		ID:     u.ID,
		Name:   u.Name,
		Age:    u.Age,
		Gender: u.Gender,
	}
}
