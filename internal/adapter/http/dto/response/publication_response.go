package response

import (
	"time"

	"serviciosjt/internal/domain/entities"
)

type PublicationResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	AuthorID    string    `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	AuthorRole  string    `json:"author_role"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      *float64  `json:"budget,omitempty"`
	ImageURLs   []string  `json:"image_urls"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromPublication(p entities.Publication) PublicationResponse {
	return PublicationResponse{
		ID:          p.ID,
		Type:        string(p.Type),
		AuthorID:    p.AuthorID,
		AuthorName:  p.AuthorName,
		AuthorRole:  p.AuthorRole.String(),
		Title:       p.Title,
		Description: p.Description,
		Budget:      p.Budget,
		ImageURLs:   p.ImageURLs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromPublications(pubs []entities.Publication) []PublicationResponse {
	out := make([]PublicationResponse, 0, len(pubs))
	for _, p := range pubs {
		out = append(out, FromPublication(p))
	}
	return out
}
