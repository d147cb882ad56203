package match

import (
	"fmt"

	"github.com/google/uuid"
)

// CandidateFilter is the typed candidate-pool predicate: excluded id, age
// range, accepted genders and the attendance overlap requirement. Built
// through NewCandidateFilter so an invalid predicate never reaches SQL.
type CandidateFilter struct {
	IDNot          uuid.UUID
	AgeMin         int
	AgeMax         int
	GenderIn       []string
	AttendingAnyOf []uuid.UUID
	Limit          int
}

// NewCandidateFilter validates and builds a candidate filter.
func NewCandidateFilter(idNot uuid.UUID, ageMin, ageMax int, genderIn []string, attendingAnyOf []uuid.UUID, limit int) (*CandidateFilter, error) {
	if idNot == uuid.Nil {
		return nil, fmt.Errorf("%w: missing excluded user id", ErrInvalidFilter)
	}
	if ageMin < 0 || ageMax < ageMin {
		return nil, fmt.Errorf("%w: age range %d-%d", ErrInvalidFilter, ageMin, ageMax)
	}
	if len(genderIn) == 0 {
		return nil, fmt.Errorf("%w: empty gender preference set", ErrInvalidFilter)
	}
	if len(attendingAnyOf) == 0 {
		return nil, fmt.Errorf("%w: empty attendance set", ErrInvalidFilter)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: non-positive limit", ErrInvalidFilter)
	}

	return &CandidateFilter{
		IDNot:          idNot,
		AgeMin:         ageMin,
		AgeMax:         ageMax,
		GenderIn:       genderIn,
		AttendingAnyOf: attendingAnyOf,
		Limit:          limit,
	}, nil
}
