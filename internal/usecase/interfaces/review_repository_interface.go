package interfaces

import (
	"context"

	"serviciosjt/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for Review.
//
// ExistsForProposal backs the one-review-per-(reviewer, proposal)
// rule. The check and the insert are separate round trips, matching
// the reference behavior; a deliberate concurrent double-submit can in
// theory slip through (documented, not mitigated).

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	GetByID(ctx context.Context, id string) (entities.Review, error)
	ListByReviewedID(ctx context.Context, reviewedID string) ([]entities.Review, error)
	ListByReviewerID(ctx context.Context, reviewerID string) ([]entities.Review, error)
	ExistsForProposal(ctx context.Context, reviewerID, proposalID string) (bool, error)
}
