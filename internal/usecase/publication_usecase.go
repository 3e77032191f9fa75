package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"serviciosjt/internal/domain/entities"
	"serviciosjt/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPublicationNotFound           = errors.New("publication not found")
	ErrInvalidPublicationID          = errors.New("invalid publication id")
	ErrInvalidPublicationTitle       = errors.New("invalid publication title")
	ErrInvalidPublicationDescription = errors.New("invalid publication description")
	ErrInvalidPublicationBudget      = errors.New("invalid publication budget")
	ErrPublicationRoleMismatch       = errors.New("publication type does not match author role")
	ErrNotPublicationAuthor          = errors.New("caller is not the publication author")
)

const (
	maxPublicationTitleLen       = 100
	maxPublicationDescriptionLen = 1000
	defaultPublicationListLimit  = 50
)

type PublicationInput struct {
	Type        entities.PublicationType
	AuthorID    string
	AuthorName  string
	AuthorRole  entities.Role
	Title       string
	Description string
	Budget      *float64
	ImageURLs   []string
}

// IPublicationUseCase exposes marketplace listings.

type IPublicationUseCase interface {
	Create(ctx context.Context, input PublicationInput) (entities.Publication, error)
	GetByID(ctx context.Context, id string) (entities.Publication, error)
	ListVisible(ctx context.Context, viewerRole entities.Role, limit int) ([]entities.Publication, error)
	ListByAuthor(ctx context.Context, authorID string, limit int) ([]entities.Publication, error)
	Delete(ctx context.Context, id, callerID string) error
}

type PublicationUseCase struct {
	repo interfaces.IPublicationRepository
}

var _ IPublicationUseCase = (*PublicationUseCase)(nil)

func NewPublicationUseCase(repo interfaces.IPublicationRepository) *PublicationUseCase {
	return &PublicationUseCase{repo: repo}
}

func (u *PublicationUseCase) Create(ctx context.Context, input PublicationInput) (entities.Publication, error) {
	if !input.AuthorRole.Valid() {
		return entities.Publication{}, entities.ErrInvalidRole
	}
	// Clientes publish service requests, tecnicos publish portfolio
	// items; the other direction is never legal.
	if input.Type != entities.TypeForRole(input.AuthorRole) {
		return entities.Publication{}, ErrPublicationRoleMismatch
	}
	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > maxPublicationTitleLen {
		return entities.Publication{}, ErrInvalidPublicationTitle
	}
	description := strings.TrimSpace(input.Description)
	if description == "" || utf8.RuneCountInString(description) > maxPublicationDescriptionLen {
		return entities.Publication{}, ErrInvalidPublicationDescription
	}
	authorID := strings.TrimSpace(input.AuthorID)
	if authorID == "" {
		return entities.Publication{}, ErrInvalidUserID
	}

	// Budget is only meaningful for service requests.
	var budget *float64
	if input.Type == entities.PublicationTypeServiceRequest && input.Budget != nil {
		if *input.Budget <= 0 {
			return entities.Publication{}, ErrInvalidPublicationBudget
		}
		b := *input.Budget
		budget = &b
	}

	imageURLs := input.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	now := time.Now().UTC()
	p := entities.Publication{
		ID:          uuid.NewString(),
		Type:        input.Type,
		AuthorID:    authorID,
		AuthorName:  strings.TrimSpace(input.AuthorName),
		AuthorRole:  input.AuthorRole,
		Title:       title,
		Description: description,
		Budget:      budget,
		ImageURLs:   imageURLs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, p)
}

func (u *PublicationUseCase) GetByID(ctx context.Context, id string) (entities.Publication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Publication{}, ErrInvalidPublicationID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Publication{}, err
	}
	if p.ID == "" {
		return entities.Publication{}, ErrPublicationNotFound
	}
	return p, nil
}

// ListVisible returns the feed for a viewer. Authenticated viewers get
// the role-filtered partition (clientes see technician portfolios,
// tecnicos see client service requests); anonymous viewers see
// everything.
func (u *PublicationUseCase) ListVisible(ctx context.Context, viewerRole entities.Role, limit int) ([]entities.Publication, error) {
	if limit <= 0 {
		limit = defaultPublicationListLimit
	}

	if !viewerRole.Valid() {
		return u.repo.ListAll(ctx, limit)
	}

	pubs, err := u.repo.ListByType(ctx, entities.TypeForRole(viewerRole.Counterpart()), limit)
	if err != nil {
		return nil, err
	}
	return entities.FilterPublications(viewerRole, pubs), nil
}

func (u *PublicationUseCase) ListByAuthor(ctx context.Context, authorID string, limit int) ([]entities.Publication, error) {
	authorID = strings.TrimSpace(authorID)
	if authorID == "" {
		return nil, ErrInvalidUserID
	}
	if limit <= 0 {
		limit = defaultPublicationListLimit
	}
	return u.repo.ListByAuthorID(ctx, authorID, limit)
}

// Delete removes a publication; only its author may do so. The cliente
// flow calls this after accepting a proposal to close the originating
// service request.
func (u *PublicationUseCase) Delete(ctx context.Context, id, callerID string) error {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.AuthorID != callerID {
		return ErrNotPublicationAuthor
	}
	return u.repo.Delete(ctx, p.ID)
}
