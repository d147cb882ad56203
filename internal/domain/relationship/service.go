package relationship

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/up4/up4-api/internal/domain/user"
)

// Service enforces consent and mutual-exclusion rules over the liked and
// blocked edges. Every operation takes the requester identity explicitly;
// uuid.Nil means no authenticated caller.
type Service struct {
	repo     Repository
	userRepo user.Repository
	relay    ModerationRelay
	matches  MatchInvalidator
}

// NewService creates relationship service. relay and matches may be nil.
func NewService(repo Repository, userRepo user.Repository, relay ModerationRelay, matches MatchInvalidator) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
		relay:    relay,
		matches:  matches,
	}
}

// Like adds target to the requester's liked set.
//
// A like is rejected while the target is on the requester's own blocked
// list; the requester must unblock first. The inverse policy (implicit
// unblock) is deliberately not implemented.
func (s *Service) Like(ctx context.Context, requesterID, targetID uuid.UUID) ([]uuid.UUID, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if requesterID == targetID {
		return nil, ErrSelfLike
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, user.ErrUserNotFound
	}

	// Consent precedes interest: a block by the target wins.
	blockedByTarget, err := s.repo.HasBlocked(ctx, targetID, requesterID)
	if err != nil {
		return nil, err
	}
	if blockedByTarget {
		return nil, ErrBlockedByTarget
	}

	ownBlock, err := s.repo.HasBlocked(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if ownBlock {
		return nil, ErrTargetBlocked
	}

	err = s.repo.ApplyEdgeChanges(ctx, requesterID, EdgeChanges{AddLiked: []uuid.UUID{targetID}})
	if err != nil {
		return nil, err
	}

	return s.repo.ListLikedIDs(ctx, requesterID)
}

// Unlike removes target from the requester's liked set.
func (s *Service) Unlike(ctx context.Context, requesterID, targetID uuid.UUID) ([]uuid.UUID, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	liked, err := s.repo.HasLiked(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if !liked {
		return nil, ErrNotLiked
	}

	err = s.repo.ApplyEdgeChanges(ctx, requesterID, EdgeChanges{RemoveLiked: []uuid.UUID{targetID}})
	if err != nil {
		return nil, err
	}

	return s.repo.ListLikedIDs(ctx, requesterID)
}

// Block adds target to the requester's blocked set and removes any liked
// edge toward the target in the same transaction. Blocking an already
// blocked user is a no-op returning current state.
func (s *Service) Block(ctx context.Context, requesterID, targetID uuid.UUID) ([]uuid.UUID, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if requesterID == targetID {
		return nil, ErrSelfBlock
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, user.ErrUserNotFound
	}

	err = s.repo.ApplyEdgeChanges(ctx, requesterID, EdgeChanges{
		AddBlocked:  []uuid.UUID{targetID},
		RemoveLiked: []uuid.UUID{targetID},
	})
	if err != nil {
		return nil, err
	}

	s.invalidateMatches(ctx, requesterID, targetID)

	return s.repo.ListBlockedIDs(ctx, requesterID)
}

// Unblock removes target from the requester's blocked set.
func (s *Service) Unblock(ctx context.Context, requesterID, targetID uuid.UUID) ([]uuid.UUID, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	blocked, err := s.repo.HasBlocked(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if !blocked {
		return nil, ErrNotBlocked
	}

	err = s.repo.ApplyEdgeChanges(ctx, requesterID, EdgeChanges{RemoveBlocked: []uuid.UUID{targetID}})
	if err != nil {
		return nil, err
	}

	s.invalidateMatches(ctx, requesterID, targetID)

	return s.repo.ListBlockedIDs(ctx, requesterID)
}

// Report blocks the target and relays the report to support. The block
// takes precedence: a failed relay is logged but the report still
// succeeds from the caller's point of view.
func (s *Service) Report(ctx context.Context, requesterID, targetID uuid.UUID, message string) (*Report, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if requesterID == targetID {
		return nil, ErrSelfReport
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyReportMessage
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, user.ErrUserNotFound
	}

	// Same edge effect as Block, idempotent when already blocked.
	err = s.repo.ApplyEdgeChanges(ctx, requesterID, EdgeChanges{
		AddBlocked:  []uuid.UUID{targetID},
		RemoveLiked: []uuid.UUID{targetID},
	})
	if err != nil {
		return nil, err
	}

	s.invalidateMatches(ctx, requesterID, targetID)

	report := &Report{
		ID:             uuid.New(),
		ReporterUserID: requesterID,
		ReportedUserID: targetID,
		Message:        message,
		CreatedAt:      time.Now(),
	}

	if s.relay != nil {
		if err := s.relay.SendReport(ctx, report); err != nil {
			log.Error().Err(err).
				Str("reporter_id", requesterID.String()).
				Str("reported_id", targetID.String()).
				Msg("Failed to relay report to support")
		}
	}

	return report, nil
}

// ListLikes returns all liked edges of the requester
func (s *Service) ListLikes(ctx context.Context, requesterID uuid.UUID) ([]*LikeRelation, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	return s.repo.ListLikes(ctx, requesterID)
}

// ListBlocks returns all blocked edges of the requester
func (s *Service) ListBlocks(ctx context.Context, requesterID uuid.UUID) ([]*BlockRelation, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	return s.repo.ListBlocks(ctx, requesterID)
}

func (s *Service) invalidateMatches(ctx context.Context, userIDs ...uuid.UUID) {
	if s.matches != nil {
		s.matches.Invalidate(ctx, userIDs...)
	}
}
