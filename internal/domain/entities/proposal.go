package entities

import "time"

// ProposalStatus represents the lifecycle of a proposal.
//
// pending is the only non-terminal status; accepted, rejected and
// cancelled are all terminal. No transition ever leaves a terminal
// status.

type ProposalStatus string

const (
	ProposalStatusPending   ProposalStatus = "pending"
	ProposalStatusAccepted  ProposalStatus = "accepted"
	ProposalStatusRejected  ProposalStatus = "rejected"
	ProposalStatusCancelled ProposalStatus = "cancelled"
)

// Terminal reports whether no further transition is possible.
func (s ProposalStatus) Terminal() bool {
	switch s {
	case ProposalStatusAccepted, ProposalStatusRejected, ProposalStatusCancelled:
		return true
	}
	return false
}

// Proposal is an offer linking a cliente and a tecnico around a unit
// of work, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//   - GSI2 (technician_id-index): technician_id
//   - GSI3 (publication_id-index): publication_id
//
// The counterparty name/email/phone fields are snapshots captured at
// creation time and are never refreshed when a profile changes later.
// That is intentional: they are the historical record of the contact
// info disclosed for this engagement, not a live reference.

type Proposal struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      float64  `json:"budget"`
	Images      []string `json:"images,omitempty"`

	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone,omitempty"`

	TechnicianID    string `json:"technician_id"`
	TechnicianName  string `json:"technician_name"`
	TechnicianEmail string `json:"technician_email"`
	TechnicianPhone string `json:"technician_phone,omitempty"`

	// PublicationID is empty when the proposal targets a technician
	// profile directly instead of a concrete publication.
	PublicationID    string `json:"publication_id,omitempty"`
	PublicationTitle string `json:"publication_title,omitempty"`

	Status    ProposalStatus `json:"status"`
	CreatedBy Role           `json:"created_by"`

	RejectionFeedback string `json:"rejection_feedback,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// SenderID is the party that authored the proposal. Only the sender
// may cancel.
func (p Proposal) SenderID() string {
	if p.CreatedBy == RoleCliente {
		return p.ClientID
	}
	return p.TechnicianID
}

// ReceiverID is the counterparty of the sender. Only the receiver may
// accept or reject.
func (p Proposal) ReceiverID() string {
	if p.CreatedBy == RoleCliente {
		return p.TechnicianID
	}
	return p.ClientID
}

// IsParty reports whether userID is one of the two counterparties.
func (p Proposal) IsParty(userID string) bool {
	return userID == p.ClientID || userID == p.TechnicianID
}

// CounterpartyOf returns the other side of the engagement relative to
// userID: its user id, display name and role. ok is false when userID
// is not a party to the proposal.
func (p Proposal) CounterpartyOf(userID string) (id, name string, role Role, ok bool) {
	switch userID {
	case p.ClientID:
		return p.TechnicianID, p.TechnicianName, RoleTecnico, true
	case p.TechnicianID:
		return p.ClientID, p.ClientName, RoleCliente, true
	}
	return "", "", "", false
}

// RoleOf returns the role userID plays in this proposal.
func (p Proposal) RoleOf(userID string) (Role, bool) {
	switch userID {
	case p.ClientID:
		return RoleCliente, true
	case p.TechnicianID:
		return RoleTecnico, true
	}
	return "", false
}
