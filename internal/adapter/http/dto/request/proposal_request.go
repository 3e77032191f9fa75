package request

import "strings"

// ProposalRequest is the payload to open a proposal. The sender's own
// contact fields are taken from the verified token; the payload only
// carries the counterparty id plus optional publication linkage.
type ProposalRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Budget      float64  `json:"budget" binding:"required"`
	Images      []string `json:"images"`

	// CounterpartyID is the user on the other side of the proposal.
	// Contact snapshots for both parties are taken server-side from
	// their profiles at creation time.
	CounterpartyID string `json:"counterparty_id" binding:"required"`

	// PublicationID links the proposal to a listing; empty for direct
	// profile contact.
	PublicationID string `json:"publication_id"`
}

func (r ProposalRequest) ResolveCounterpartyID() string {
	return strings.TrimSpace(r.CounterpartyID)
}

// ProposalRejectRequest carries the mandatory rejection feedback.
type ProposalRejectRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}
