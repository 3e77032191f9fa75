package interfaces

import (
	"context"

	"serviciosjt/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// UpdateStatus must only succeed while the proposal is still pending:
// the implementation guards the write with a conditional expression so
// a terminal proposal can never be overwritten, even under concurrent
// responders. A conditional-check failure surfaces as a zero-value
// proposal, which the use case disambiguates by re-reading.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Proposal, error)
	ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.Proposal, error)
	ListByPublicationID(ctx context.Context, publicationID string) ([]entities.Proposal, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus, rejectionFeedback string) (entities.Proposal, error)
}
