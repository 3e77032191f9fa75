package interfaces

import (
	"context"

	"serviciosjt/internal/domain/entities"
)

// IPublicationRepository abstracts DynamoDB persistence for
// Publication. Listings are capped by the caller-provided limit and
// returned newest first.

type IPublicationRepository interface {
	Create(ctx context.Context, p entities.Publication) (entities.Publication, error)
	GetByID(ctx context.Context, id string) (entities.Publication, error)
	ListAll(ctx context.Context, limit int) ([]entities.Publication, error)
	ListByType(ctx context.Context, t entities.PublicationType, limit int) ([]entities.Publication, error)
	ListByAuthorID(ctx context.Context, authorID string, limit int) ([]entities.Publication, error)
	Delete(ctx context.Context, id string) error
}
