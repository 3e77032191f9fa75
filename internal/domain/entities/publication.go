package entities

import "time"

// PublicationType distinguishes the two feeds of the marketplace.
//
//   - service_request: authored by a cliente looking for a technician.
//   - portfolio: authored by a tecnico showing completed work.

type PublicationType string

const (
	PublicationTypeServiceRequest PublicationType = "service_request"
	PublicationTypePortfolio      PublicationType = "portfolio"
)

// TypeForRole maps an author role to the only publication type that
// role may create.
func TypeForRole(role Role) PublicationType {
	if role == RoleCliente {
		return PublicationTypeServiceRequest
	}
	return PublicationTypePortfolio
}

// Publication is a marketplace listing persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (type-index): type
//   - GSI2 (author_id-index): author_id
//
// Budget is only meaningful for service_request publications.

type Publication struct {
	ID          string          `json:"id"`
	Type        PublicationType `json:"type"`
	AuthorID    string          `json:"author_id"`
	AuthorName  string          `json:"author_name"`
	AuthorRole  Role            `json:"author_role"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Budget      *float64        `json:"budget,omitempty"`
	ImageURLs   []string        `json:"image_urls"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// VisibleTo reports whether the publication is relevant to a viewer
// with the given role: clientes see technician portfolios, tecnicos
// see client service requests. This mirrors the proposal direction
// rule, so a user only ever proposes against what they can see.
func (p Publication) VisibleTo(role Role) bool {
	switch role {
	case RoleCliente:
		return p.Type == PublicationTypePortfolio && p.AuthorRole == RoleTecnico
	case RoleTecnico:
		return p.Type == PublicationTypeServiceRequest && p.AuthorRole == RoleCliente
	}
	return false
}

// FilterPublications keeps the publications relevant to the viewer
// role. An empty role (anonymous viewer) keeps everything.
func FilterPublications(role Role, pubs []Publication) []Publication {
	if !role.Valid() {
		return pubs
	}
	out := make([]Publication, 0, len(pubs))
	for _, p := range pubs {
		if p.VisibleTo(role) {
			out = append(out, p)
		}
	}
	return out
}
