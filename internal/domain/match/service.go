package match

import (
	"bytes"
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/up4/up4-api/internal/domain/event"
	"github.com/up4/up4-api/internal/domain/user"
)

// MaxCandidatePool caps how many users are scored per request. Pools
// larger than the cap are truncated, not rejected.
const MaxCandidatePool = 200

// Candidate is a prospective match with its affinity score: the number
// of events both users attend.
type Candidate struct {
	User  *user.User `json:"user"`
	Score int        `json:"score"`
}

// Service computes ranked candidate matches from shared event attendance
type Service struct {
	repo      Repository
	userRepo  user.Repository
	eventRepo event.Repository
	cache     *Cache
}

// NewService creates match service. cache may be nil.
func NewService(repo Repository, userRepo user.Repository, eventRepo event.Repository, cache *Cache) *Service {
	return &Service{
		repo:      repo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
		cache:     cache,
	}
}

// FindCandidates returns the requester's ranked candidate list. Candidates
// must pass the requester's age and gender preferences, share at least one
// event, and have no block in either direction. Results are ordered by
// score descending with candidate id as the tie-break, so repeated calls
// over unchanged data return identical output.
func (s *Service) FindCandidates(ctx context.Context, requesterID uuid.UUID) ([]*Candidate, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, user.ErrUserNotFound
	}

	if cached, ok := s.cache.Get(ctx, requesterID); ok {
		return cached, nil
	}

	attending, err := s.repo.ListAttendingEventIDs(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if len(attending) == 0 {
		return []*Candidate{}, nil
	}

	filter, err := NewCandidateFilter(
		requesterID,
		requester.MinAgePref,
		requester.MaxAgePref,
		[]string(requester.GenderPrefs),
		attending,
		MaxCandidatePool,
	)
	if err != nil {
		return nil, err
	}

	pool, err := s.repo.FindCandidates(ctx, filter)
	if err != nil {
		return nil, err
	}

	// One attendance read for the whole pool instead of one per candidate.
	poolIDs := make([]uuid.UUID, 0, len(pool))
	for _, c := range pool {
		poolIDs = append(poolIDs, c.ID)
	}
	attendance, err := s.repo.ListAttendanceByUserIDs(ctx, poolIDs)
	if err != nil {
		return nil, err
	}

	own := toSet(attending)
	candidates := make([]*Candidate, 0, len(pool))
	for _, c := range pool {
		score := intersectCount(own, attendance[c.ID])
		if score == 0 {
			continue
		}
		candidates = append(candidates, &Candidate{User: c, Score: score})
	}

	sortCandidates(candidates)

	s.cache.Set(ctx, requesterID, candidates)

	return candidates, nil
}

// SharedEvents returns the events both users attend. True set
// intersection: symmetric in its arguments.
func (s *Service) SharedEvents(ctx context.Context, requesterID, otherID uuid.UUID) ([]*event.Event, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	other, err := s.userRepo.GetByID(ctx, otherID)
	if err != nil {
		return nil, err
	}
	if other == nil {
		return nil, user.ErrUserNotFound
	}

	mine, err := s.repo.ListAttendingEventIDs(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	theirs, err := s.repo.ListAttendingEventIDs(ctx, otherID)
	if err != nil {
		return nil, err
	}

	shared := intersect(mine, theirs)
	if len(shared) == 0 {
		return []*event.Event{}, nil
	}

	return s.eventRepo.ListByIDs(ctx, shared)
}

// ListLikedBy returns the users who have liked the requester
func (s *Service) ListLikedBy(ctx context.Context, requesterID uuid.UUID) ([]*user.User, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	return s.repo.ListLikedBy(ctx, requesterID)
}

func sortCandidates(candidates []*Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		a, b := candidates[i].User.ID, candidates[j].User.ID
		return bytes.Compare(a[:], b[:]) < 0
	})
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// intersectCount walks the smaller side only
func intersectCount(set map[uuid.UUID]struct{}, ids []uuid.UUID) int {
	count := 0
	for _, id := range ids {
		if _, ok := set[id]; ok {
			count++
		}
	}
	return count
}

func intersect(a, b []uuid.UUID) []uuid.UUID {
	if len(b) < len(a) {
		a, b = b, a
	}
	set := toSet(a)
	shared := make([]uuid.UUID, 0, len(a))
	for _, id := range b {
		if _, ok := set[id]; ok {
			shared = append(shared, id)
			delete(set, id)
		}
	}
	return shared
}
