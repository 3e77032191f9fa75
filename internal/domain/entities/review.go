package entities

import "time"

// MaxReviewCommentLen caps review comments.
const MaxReviewCommentLen = 500

// Review is a 1-5 star rating plus comment left by one party about the
// other after an accepted proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reviewed_id-index): reviewed_id
//   - GSI2 (reviewer_id-index): reviewer_id
//
// Reviews are immutable once created and are never deleted; the
// uniqueness rule is at most one review per (reviewer_id, proposal_id)
// pair.

type Review struct {
	ID string `json:"id"`

	ReviewerID   string `json:"reviewer_id"`
	ReviewerName string `json:"reviewer_name"`
	ReviewerRole Role   `json:"reviewer_role"`

	ReviewedID   string `json:"reviewed_id"`
	ReviewedName string `json:"reviewed_name"`
	ReviewedRole Role   `json:"reviewed_role"`

	Rating  int    `json:"rating"`
	Comment string `json:"comment"`

	ProposalID    string `json:"proposal_id"`
	ProposalTitle string `json:"proposal_title"`

	// VerifiedWork is true when the review stems from an accepted
	// proposal. All reviews created through this service are verified.
	VerifiedWork bool `json:"verified_work"`

	CreatedAt time.Time `json:"created_at"`
}
