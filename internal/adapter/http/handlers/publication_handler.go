package handlers

import (
	"errors"
	"net/http"

	request "serviciosjt/internal/adapter/http/dto/request"
	response "serviciosjt/internal/adapter/http/dto/response"
	"serviciosjt/internal/adapter/http/middleware"
	"serviciosjt/internal/domain/entities"
	"serviciosjt/internal/usecase"
	"serviciosjt/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPublicationPayload = pkg.NewDomainErrorSimple("INVALID_PUBLICATION_INPUT", "Invalid publication payload", http.StatusBadRequest)

// PublicationHandler handles marketplace listing endpoints.

type PublicationHandler struct {
	usecase     usecase.IPublicationUseCase
	userUsecase usecase.IUserUseCase
}

func NewPublicationHandler(uc usecase.IPublicationUseCase, userUC usecase.IUserUseCase) *PublicationHandler {
	return &PublicationHandler{usecase: uc, userUsecase: userUC}
}

// CreatePublication creates a listing. The publication type follows
// the author's role: clientes publish service requests, tecnicos
// publish portfolio items.
func (h *PublicationHandler) CreatePublication(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var payload request.PublicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPublicationPayload)
		return
	}

	ctx := c.Request.Context()
	author, err := h.userUsecase.GetProfile(ctx, caller.ID)
	if err != nil {
		respondError(c, mapPublicationError(err))
		return
	}
	if !author.Role.Valid() {
		respondError(c, errOnboardingRequired)
		return
	}

	publication, err := h.usecase.Create(ctx, usecase.PublicationInput{
		Type:        entities.TypeForRole(author.Role),
		AuthorID:    author.ID,
		AuthorName:  contactName(author),
		AuthorRole:  author.Role,
		Title:       payload.Title,
		Description: payload.Description,
		Budget:      payload.Budget,
		ImageURLs:   payload.ImageURLs,
	})
	if err != nil {
		respondError(c, mapPublicationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPublication(publication))
}

// ListPublications returns the feed. Authenticated viewers get the
// partition relevant to their role; anonymous viewers see everything.
func (h *PublicationHandler) ListPublications(c *gin.Context) {
	var viewerRole entities.Role
	if caller, ok := middleware.CurrentUser(c); ok {
		profile, err := h.userUsecase.GetProfile(c.Request.Context(), caller.ID)
		if err != nil && !errors.Is(err, usecase.ErrUserNotFound) {
			respondError(c, mapPublicationError(err))
			return
		}
		viewerRole = profile.Role
	}

	publications, err := h.usecase.ListVisible(c.Request.Context(), viewerRole, limitQuery(c))
	if err != nil {
		respondError(c, mapPublicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublications(publications))
}

// ListMyPublications returns the caller's own listings.
func (h *PublicationHandler) ListMyPublications(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	publications, err := h.usecase.ListByAuthor(c.Request.Context(), caller.ID, limitQuery(c))
	if err != nil {
		respondError(c, mapPublicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublications(publications))
}

// GetPublication returns a single listing. Public.
func (h *PublicationHandler) GetPublication(c *gin.Context) {
	publication, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapPublicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublication(publication))
}

// DeletePublication removes one of the caller's listings. The cliente
// flow uses this to close a service request after accepting a
// proposal.
func (h *PublicationHandler) DeletePublication(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), caller.ID); err != nil {
		respondError(c, mapPublicationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPublicationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPublicationID),
		errors.Is(err, usecase.ErrInvalidPublicationTitle),
		errors.Is(err, usecase.ErrInvalidPublicationDescription),
		errors.Is(err, usecase.ErrInvalidPublicationBudget),
		errors.Is(err, usecase.ErrPublicationRoleMismatch),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, entities.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotPublicationAuthor):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller is not the publication author", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPublicationNotFound):
		return pkg.NewDomainErrorSimple("PUBLICATION_NOT_FOUND", "Publication not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
