package response

import (
	"time"

	"serviciosjt/internal/domain/entities"
)

type ProposalResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      float64  `json:"budget"`
	Images      []string `json:"images,omitempty"`

	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email,omitempty"`
	ClientPhone string `json:"client_phone,omitempty"`

	TechnicianID    string `json:"technician_id"`
	TechnicianName  string `json:"technician_name"`
	TechnicianEmail string `json:"technician_email,omitempty"`
	TechnicianPhone string `json:"technician_phone,omitempty"`

	PublicationID    string `json:"publication_id,omitempty"`
	PublicationTitle string `json:"publication_title,omitempty"`

	Status    string `json:"status"`
	CreatedBy string `json:"created_by"`

	RejectionFeedback string `json:"rejection_feedback,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// FromProposalFor projects a proposal for a specific viewer. The
// counterparty's email and phone snapshots are only disclosed once the
// proposal is accepted; the viewer's own snapshot is always visible.
func FromProposalFor(p entities.Proposal, viewerID string) ProposalResponse {
	r := ProposalResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Budget:      p.Budget,
		Images:      p.Images,

		ClientID:   p.ClientID,
		ClientName: p.ClientName,

		TechnicianID:   p.TechnicianID,
		TechnicianName: p.TechnicianName,

		PublicationID:    p.PublicationID,
		PublicationTitle: p.PublicationTitle,

		Status:    string(p.Status),
		CreatedBy: p.CreatedBy.String(),

		RejectionFeedback: p.RejectionFeedback,

		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		RespondedAt: p.RespondedAt,
	}

	accepted := p.Status == entities.ProposalStatusAccepted
	if accepted || viewerID == p.ClientID {
		r.ClientEmail = p.ClientEmail
		r.ClientPhone = p.ClientPhone
	}
	if accepted || viewerID == p.TechnicianID {
		r.TechnicianEmail = p.TechnicianEmail
		r.TechnicianPhone = p.TechnicianPhone
	}
	return r
}

func FromProposalsFor(proposals []entities.Proposal, viewerID string) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, FromProposalFor(p, viewerID))
	}
	return out
}
