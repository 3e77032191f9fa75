package handlers

import (
	"errors"
	"net/http"

	request "serviciosjt/internal/adapter/http/dto/request"
	response "serviciosjt/internal/adapter/http/dto/response"
	"serviciosjt/internal/domain/entities"
	"serviciosjt/internal/usecase"
	"serviciosjt/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	errOnboardingRequired     = pkg.NewDomainErrorSimple("ONBOARDING_REQUIRED", "Complete onboarding before using the marketplace", http.StatusForbidden)
	errSamePartyProposal      = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Counterparty must have the opposite role", http.StatusBadRequest)
)

// ProposalHandler handles the proposal lifecycle endpoints.

type ProposalHandler struct {
	usecase     usecase.IProposalUseCase
	userUsecase usecase.IUserUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase, userUC usecase.IUserUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc, userUsecase: userUC}
}

// CreateProposal opens a pending proposal from the caller towards a
// counterparty. Contact snapshots for both sides are captured from
// their profiles at this point and never refreshed afterwards.
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidProposalPayload)
		return
	}

	ctx := c.Request.Context()
	sender, err := h.userUsecase.GetProfile(ctx, caller.ID)
	if err != nil {
		respondError(c, mapProposalError(err))
		return
	}
	if !sender.Role.Valid() {
		respondError(c, errOnboardingRequired)
		return
	}

	receiver, err := h.userUsecase.GetProfile(ctx, payload.ResolveCounterpartyID())
	if err != nil {
		respondError(c, mapProposalError(err))
		return
	}
	if receiver.Role != sender.Role.Counterpart() {
		respondError(c, errSamePartyProposal)
		return
	}

	input := usecase.ProposalInput{
		Title:       payload.Title,
		Description: payload.Description,
		Budget:      payload.Budget,
		Images:      payload.Images,

		PublicationID: payload.PublicationID,
		CreatedBy:     sender.Role,
	}

	client, technician := sender, receiver
	if sender.Role == entities.RoleTecnico {
		client, technician = receiver, sender
	}
	input.ClientID = client.ID
	input.ClientName = contactName(client)
	input.ClientEmail = client.Email
	input.ClientPhone = client.PhoneNumber
	input.TechnicianID = technician.ID
	input.TechnicianName = contactName(technician)
	input.TechnicianEmail = technician.Email
	input.TechnicianPhone = technician.PhoneNumber

	proposal, err := h.usecase.Create(ctx, caller.ID, input)
	if err != nil {
		respondError(c, mapProposalError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromProposalFor(proposal, caller.ID))
}

// GetProposal returns a single proposal to one of its parties.
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), caller.ID)
	if err != nil {
		respondError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposalFor(proposal, caller.ID))
}

// ListMyProposals returns every proposal the caller is a party to,
// newest first.
func (h *ProposalHandler) ListMyProposals(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	profile, err := h.userUsecase.GetProfile(ctx, caller.ID)
	if err != nil {
		respondError(c, mapProposalError(err))
		return
	}

	proposals, err := h.usecase.ListForUser(ctx, caller.ID, profile.Role)
	if err != nil {
		respondError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposalsFor(proposals, caller.ID))
}

// ListByPublication returns the proposals received on one of the
// caller's publications.
func (h *ProposalHandler) ListByPublication(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	proposals, err := h.usecase.ListByPublicationID(c.Request.Context(), c.Param("id"), caller.ID)
	if err != nil {
		respondError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposalsFor(proposals, caller.ID))
}

// AcceptProposal moves a pending proposal to accepted. Receiver only.
func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	proposal, err := h.usecase.Accept(c.Request.Context(), c.Param("id"), caller.ID)
	if err != nil {
		respondError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposalFor(proposal, caller.ID))
}

// RejectProposal moves a pending proposal to rejected with mandatory
// feedback. Receiver only.
func (h *ProposalHandler) RejectProposal(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var payload request.ProposalRejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidProposalPayload)
		return
	}

	proposal, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), caller.ID, payload.Feedback)
	if err != nil {
		respondError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposalFor(proposal, caller.ID))
}

// CancelProposal moves a pending proposal to cancelled. Sender only.
func (h *ProposalHandler) CancelProposal(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	proposal, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), caller.ID)
	if err != nil {
		respondError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposalFor(proposal, caller.ID))
}

func contactName(u entities.UserProfile) string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.DisplayName
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidProposalTitle),
		errors.Is(err, usecase.ErrInvalidProposalDescription),
		errors.Is(err, usecase.ErrInvalidProposalBudget),
		errors.Is(err, usecase.ErrInvalidProposalParties),
		errors.Is(err, usecase.ErrEmptyRejectionFeedback),
		errors.Is(err, usecase.ErrInvalidPublicationID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrProposalDirectionMismatch),
		errors.Is(err, entities.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotProposalSender),
		errors.Is(err, usecase.ErrNotProposalReceiver),
		errors.Is(err, usecase.ErrNotProposalParty),
		errors.Is(err, usecase.ErrNotPublicationAuthor):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPublicationNotFound):
		return pkg.NewDomainErrorSimple("PUBLICATION_NOT_FOUND", "Publication not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotPending):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_PENDING", "Proposal has already been responded or cancelled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
