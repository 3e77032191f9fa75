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

var errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)

// ReviewHandler handles review submission and the reputation read
// endpoints.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// SubmitReview admits a review for an accepted proposal the caller is
// a party to.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidReviewPayload)
		return
	}

	review, err := h.usecase.Submit(c.Request.Context(), usecase.ReviewInput{
		ReviewerID: caller.ID,
		ProposalID: payload.ProposalID,
		Rating:     payload.Rating,
		Comment:    payload.Comment,
	})
	if err != nil {
		respondError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromReview(review))
}

// GetReview returns a single review. Public.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReview(review))
}

// ListMyReviews returns the reviews authored by the caller.
func (h *ReviewHandler) ListMyReviews(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	reviews, err := h.usecase.ListByReviewer(c.Request.Context(), caller.ID)
	if err != nil {
		respondError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

// ListUserReviews returns the reviews received by a user. Public.
func (h *ReviewHandler) ListUserReviews(c *gin.Context) {
	reviews, err := h.usecase.ListForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

// GetUserRating returns a user's rating aggregate. Public.
func (h *ReviewHandler) GetUserRating(c *gin.Context) {
	stats, err := h.usecase.GetRatingStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRatingStats(stats))
}

// CanReview reports whether the caller may still review the proposal.
func (h *ReviewHandler) CanReview(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	allowed, err := h.usecase.CanReview(c.Request.Context(), caller.ID, c.Param("id"))
	if err != nil {
		respondError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"can_review": allowed})
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReviewID),
		errors.Is(err, usecase.ErrInvalidReviewComment),
		errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, entities.ErrInvalidRating):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReviewerNotParty):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller is not a party to this proposal", http.StatusForbidden)
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainErrorSimple("REVIEW_NOT_FOUND", "Review not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotAccepted):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_ACCEPTED", "Reviews require an accepted proposal", http.StatusConflict)
	case errors.Is(err, usecase.ErrReviewAlreadyExists):
		return pkg.NewDomainErrorSimple("REVIEW_ALREADY_EXISTS", "A review already exists for this proposal", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
