package request

// ReviewRequest is the payload to submit a review for an accepted
// proposal. The reviewer identity comes from the verified token and the
// reviewed party is derived server-side from the proposal.
type ReviewRequest struct {
	ProposalID string `json:"proposal_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment" binding:"required"`
}
