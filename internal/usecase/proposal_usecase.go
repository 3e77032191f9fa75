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
	ErrProposalNotFound           = errors.New("proposal not found")
	ErrInvalidProposalID          = errors.New("invalid proposal id")
	ErrInvalidProposalTitle       = errors.New("invalid proposal title")
	ErrInvalidProposalDescription = errors.New("invalid proposal description")
	ErrInvalidProposalBudget      = errors.New("invalid proposal budget")
	ErrInvalidProposalParties     = errors.New("proposal requires both a client and a technician")
	ErrNotProposalSender          = errors.New("caller is not the proposal sender")
	ErrNotProposalReceiver        = errors.New("caller is not the proposal receiver")
	ErrNotProposalParty           = errors.New("caller is not a party to the proposal")
	ErrProposalNotPending         = errors.New("proposal is no longer pending")
	ErrEmptyRejectionFeedback     = errors.New("rejection feedback is required")
	ErrProposalDirectionMismatch  = errors.New("proposal direction does not match the publication")
)

const (
	maxProposalTitleLen       = 100
	maxProposalDescriptionLen = 1000
)

// ProposalInput carries everything needed to open a proposal. The
// counterparty contact fields are snapshotted onto the proposal as-is;
// they are never refreshed afterwards.

type ProposalInput struct {
	Title       string
	Description string
	Budget      float64
	Images      []string

	ClientID    string
	ClientName  string
	ClientEmail string
	ClientPhone string

	TechnicianID    string
	TechnicianName  string
	TechnicianEmail string
	TechnicianPhone string

	// PublicationID may be empty when a cliente contacts a tecnico
	// directly from their profile.
	PublicationID string

	CreatedBy entities.Role
}

// IProposalUseCase exposes the proposal lifecycle.
//
// Transitions follow the state machine: pending is the only state a
// transition can leave, the receiver accepts or rejects, the sender
// cancels, and every terminal state absorbs all later calls.

type IProposalUseCase interface {
	Create(ctx context.Context, callerID string, input ProposalInput) (entities.Proposal, error)
	GetByID(ctx context.Context, id, callerID string) (entities.Proposal, error)
	ListForUser(ctx context.Context, userID string, role entities.Role) ([]entities.Proposal, error)
	ListByPublicationID(ctx context.Context, publicationID, callerID string) ([]entities.Proposal, error)
	Accept(ctx context.Context, id, callerID string) (entities.Proposal, error)
	Reject(ctx context.Context, id, callerID, feedback string) (entities.Proposal, error)
	Cancel(ctx context.Context, id, callerID string) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo            interfaces.IProposalRepository
	publicationRepo interfaces.IPublicationRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository, publicationRepo interfaces.IPublicationRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, publicationRepo: publicationRepo}
}

func (u *ProposalUseCase) Create(ctx context.Context, callerID string, input ProposalInput) (entities.Proposal, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > maxProposalTitleLen {
		return entities.Proposal{}, ErrInvalidProposalTitle
	}
	description := strings.TrimSpace(input.Description)
	if description == "" || utf8.RuneCountInString(description) > maxProposalDescriptionLen {
		return entities.Proposal{}, ErrInvalidProposalDescription
	}
	if input.Budget <= 0 {
		return entities.Proposal{}, ErrInvalidProposalBudget
	}
	if !input.CreatedBy.Valid() {
		return entities.Proposal{}, entities.ErrInvalidRole
	}

	clientID := strings.TrimSpace(input.ClientID)
	technicianID := strings.TrimSpace(input.TechnicianID)
	if clientID == "" || technicianID == "" || clientID == technicianID {
		return entities.Proposal{}, ErrInvalidProposalParties
	}

	// The caller must be the sender declared by CreatedBy.
	senderID := clientID
	if input.CreatedBy == entities.RoleTecnico {
		senderID = technicianID
	}
	if callerID != senderID {
		return entities.Proposal{}, ErrNotProposalSender
	}

	// When the proposal answers a publication, the direction must match
	// what the sender can see: clientes propose against technician
	// portfolios, tecnicos against client service requests.
	publicationID := strings.TrimSpace(input.PublicationID)
	publicationTitle := ""
	if publicationID != "" {
		pub, err := u.publicationRepo.GetByID(ctx, publicationID)
		if err != nil {
			return entities.Proposal{}, err
		}
		if pub.ID == "" {
			return entities.Proposal{}, ErrPublicationNotFound
		}
		if !pub.VisibleTo(input.CreatedBy) {
			return entities.Proposal{}, ErrProposalDirectionMismatch
		}
		publicationTitle = pub.Title
	}

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Budget:      input.Budget,
		Images:      input.Images,

		ClientID:    clientID,
		ClientName:  strings.TrimSpace(input.ClientName),
		ClientEmail: strings.TrimSpace(input.ClientEmail),
		ClientPhone: strings.TrimSpace(input.ClientPhone),

		TechnicianID:    technicianID,
		TechnicianName:  strings.TrimSpace(input.TechnicianName),
		TechnicianEmail: strings.TrimSpace(input.TechnicianEmail),
		TechnicianPhone: strings.TrimSpace(input.TechnicianPhone),

		PublicationID:    publicationID,
		PublicationTitle: publicationTitle,

		Status:    entities.ProposalStatusPending,
		CreatedBy: input.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id, callerID string) (entities.Proposal, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if !p.IsParty(callerID) {
		return entities.Proposal{}, ErrNotProposalParty
	}
	return p, nil
}

func (u *ProposalUseCase) ListForUser(ctx context.Context, userID string, role entities.Role) ([]entities.Proposal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if role == entities.RoleTecnico {
		return u.repo.ListByTechnicianID(ctx, userID)
	}
	return u.repo.ListByClientID(ctx, userID)
}

func (u *ProposalUseCase) ListByPublicationID(ctx context.Context, publicationID, callerID string) ([]entities.Proposal, error) {
	publicationID = strings.TrimSpace(publicationID)
	if publicationID == "" {
		return nil, ErrInvalidPublicationID
	}

	pub, err := u.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return nil, err
	}
	if pub.ID == "" {
		return nil, ErrPublicationNotFound
	}
	if pub.AuthorID != callerID {
		return nil, ErrNotPublicationAuthor
	}
	return u.repo.ListByPublicationID(ctx, publicationID)
}

// Accept moves a pending proposal to accepted. Only the receiver may
// accept. Acceptance is what discloses the contact snapshots to both
// parties; the caller (UI) may then offer the cliente to close the
// originating publication.
func (u *ProposalUseCase) Accept(ctx context.Context, id, callerID string) (entities.Proposal, error) {
	return u.respond(ctx, id, callerID, entities.ProposalStatusAccepted, "")
}

// Reject moves a pending proposal to rejected with mandatory feedback.
// Only the receiver may reject.
func (u *ProposalUseCase) Reject(ctx context.Context, id, callerID, feedback string) (entities.Proposal, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return entities.Proposal{}, ErrEmptyRejectionFeedback
	}
	return u.respond(ctx, id, callerID, entities.ProposalStatusRejected, feedback)
}

// Cancel moves a pending proposal to cancelled. Only the sender may
// cancel.
func (u *ProposalUseCase) Cancel(ctx context.Context, id, callerID string) (entities.Proposal, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.SenderID() != callerID {
		return entities.Proposal{}, ErrNotProposalSender
	}
	if p.Status != entities.ProposalStatusPending {
		return entities.Proposal{}, ErrProposalNotPending
	}
	return u.transition(ctx, id, entities.ProposalStatusCancelled, "")
}

func (u *ProposalUseCase) respond(ctx context.Context, id, callerID string, status entities.ProposalStatus, feedback string) (entities.Proposal, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ReceiverID() != callerID {
		return entities.Proposal{}, ErrNotProposalReceiver
	}
	if p.Status != entities.ProposalStatusPending {
		return entities.Proposal{}, ErrProposalNotPending
	}
	return u.transition(ctx, id, status, feedback)
}

// transition performs the conditional write. The repository only
// applies the update while the stored status is still pending; when
// the condition fails (a concurrent responder won) the zero value
// comes back and the proposal is re-read to report the right error.
func (u *ProposalUseCase) transition(ctx context.Context, id string, status entities.ProposalStatus, feedback string) (entities.Proposal, error) {
	updated, err := u.repo.UpdateStatus(ctx, id, status, feedback)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID != "" {
		return updated, nil
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if current.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return entities.Proposal{}, ErrProposalNotPending
}

func (u *ProposalUseCase) load(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}
