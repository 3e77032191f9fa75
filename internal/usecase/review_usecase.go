package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"serviciosjt/internal/domain/entities"
	"serviciosjt/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound       = errors.New("review not found")
	ErrInvalidReviewID      = errors.New("invalid review id")
	ErrInvalidReviewComment = errors.New("invalid review comment")
	ErrReviewerNotParty     = errors.New("reviewer is not a party to the proposal")
	ErrProposalNotAccepted  = errors.New("proposal is not accepted")
	ErrReviewAlreadyExists  = errors.New("review already exists for this proposal")
)

// ReviewInput is what a reviewer submits. The reviewed party, both
// roles and the display names are derived from the proposal snapshot,
// never taken from the client.

type ReviewInput struct {
	ReviewerID string
	ProposalID string
	Rating     int
	Comment    string
}

// IReviewUseCase encapsulates review admission and the reputation
// roll-up.

type IReviewUseCase interface {
	Submit(ctx context.Context, input ReviewInput) (entities.Review, error)
	GetByID(ctx context.Context, id string) (entities.Review, error)
	ListForUser(ctx context.Context, reviewedID string) ([]entities.Review, error)
	ListByReviewer(ctx context.Context, reviewerID string) ([]entities.Review, error)
	CanReview(ctx context.Context, reviewerID, proposalID string) (bool, error)
	GetRatingStats(ctx context.Context, userID string) (entities.RatingStats, error)
}

type ReviewUseCase struct {
	repo         interfaces.IReviewRepository
	proposalRepo interfaces.IProposalRepository
	userRepo     interfaces.IUserRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IReviewRepository, proposalRepo interfaces.IProposalRepository, userRepo interfaces.IUserRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, proposalRepo: proposalRepo, userRepo: userRepo}
}

// Submit admits a review when the proposal is accepted, the reviewer
// is one of its parties and no review exists yet for the same
// (reviewer, proposal) pair. On success the review is inserted and the
// reviewed user's rating counters are incremented atomically. The two
// writes are separate; if the increment fails the review stays
// persisted and the error propagates to the caller.
func (u *ReviewUseCase) Submit(ctx context.Context, input ReviewInput) (entities.Review, error) {
	if input.Rating < entities.MinRating || input.Rating > entities.MaxRating {
		return entities.Review{}, entities.ErrInvalidRating
	}
	comment := strings.TrimSpace(input.Comment)
	if comment == "" || utf8.RuneCountInString(comment) > entities.MaxReviewCommentLen {
		return entities.Review{}, ErrInvalidReviewComment
	}
	reviewerID := strings.TrimSpace(input.ReviewerID)
	if reviewerID == "" {
		return entities.Review{}, ErrInvalidUserID
	}
	proposalID := strings.TrimSpace(input.ProposalID)
	if proposalID == "" {
		return entities.Review{}, ErrInvalidProposalID
	}

	p, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Review{}, err
	}
	if p.ID == "" {
		return entities.Review{}, ErrProposalNotFound
	}
	if p.Status != entities.ProposalStatusAccepted {
		return entities.Review{}, ErrProposalNotAccepted
	}

	reviewedID, reviewedName, reviewedRole, ok := p.CounterpartyOf(reviewerID)
	if !ok {
		return entities.Review{}, ErrReviewerNotParty
	}
	reviewerRole, _ := p.RoleOf(reviewerID)
	reviewerName := p.ClientName
	if reviewerRole == entities.RoleTecnico {
		reviewerName = p.TechnicianName
	}

	exists, err := u.repo.ExistsForProposal(ctx, reviewerID, proposalID)
	if err != nil {
		return entities.Review{}, err
	}
	if exists {
		return entities.Review{}, ErrReviewAlreadyExists
	}

	r := entities.Review{
		ID:            uuid.NewString(),
		ReviewerID:    reviewerID,
		ReviewerName:  reviewerName,
		ReviewerRole:  reviewerRole,
		ReviewedID:    reviewedID,
		ReviewedName:  reviewedName,
		ReviewedRole:  reviewedRole,
		Rating:        input.Rating,
		Comment:       comment,
		ProposalID:    proposalID,
		ProposalTitle: p.Title,
		VerifiedWork:  true,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Review{}, err
	}

	if _, err := u.userRepo.IncrementRating(ctx, reviewedID, input.Rating); err != nil {
		return entities.Review{}, err
	}
	return created, nil
}

func (u *ReviewUseCase) GetByID(ctx context.Context, id string) (entities.Review, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Review{}, ErrInvalidReviewID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Review{}, err
	}
	if r.ID == "" {
		return entities.Review{}, ErrReviewNotFound
	}
	return r, nil
}

func (u *ReviewUseCase) ListForUser(ctx context.Context, reviewedID string) ([]entities.Review, error) {
	reviewedID = strings.TrimSpace(reviewedID)
	if reviewedID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByReviewedID(ctx, reviewedID)
}

func (u *ReviewUseCase) ListByReviewer(ctx context.Context, reviewerID string) ([]entities.Review, error) {
	reviewerID = strings.TrimSpace(reviewerID)
	if reviewerID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByReviewerID(ctx, reviewerID)
}

// CanReview reports whether Submit would be admitted for the pair:
// accepted proposal, reviewer is a party, no prior review.
func (u *ReviewUseCase) CanReview(ctx context.Context, reviewerID, proposalID string) (bool, error) {
	reviewerID = strings.TrimSpace(reviewerID)
	proposalID = strings.TrimSpace(proposalID)
	if reviewerID == "" || proposalID == "" {
		return false, nil
	}

	p, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return false, err
	}
	if p.ID == "" || p.Status != entities.ProposalStatusAccepted || !p.IsParty(reviewerID) {
		return false, nil
	}

	exists, err := u.repo.ExistsForProposal(ctx, reviewerID, proposalID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// GetRatingStats returns the persisted aggregate for a user. When the
// user record carries no counters yet, the aggregate is rebuilt from
// the reviews table through the pure aggregator, mirroring the
// original read-repair behavior.
func (u *ReviewUseCase) GetRatingStats(ctx context.Context, userID string) (entities.RatingStats, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.RatingStats{}, ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entities.RatingStats{}, err
	}
	if user.ID == "" {
		return entities.RatingStats{}, ErrUserNotFound
	}

	stats := user.Rating.Normalize()
	if stats.TotalReviews > 0 {
		return stats, nil
	}

	reviews, err := u.repo.ListByReviewedID(ctx, userID)
	if err != nil {
		return entities.RatingStats{}, err
	}
	stats = entities.NewRatingStats()
	for _, r := range reviews {
		next, err := stats.Apply(r.Rating)
		if err != nil {
			continue
		}
		stats = next
	}
	return stats, nil
}
