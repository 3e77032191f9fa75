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

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)

// UserHandler handles profile, onboarding and directory endpoints.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// GetMe returns the caller's own profile, creating a
// pending-onboarding record on first sight.
func (h *UserHandler) GetMe(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	profile, err := h.usecase.EnsureProfile(c.Request.Context(), caller.ID, caller.DisplayName, caller.Email, "")
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUserProfile(profile))
}

// CompleteOnboarding stores the caller's role, full name, phone and
// DPI after validation.
func (h *UserHandler) CompleteOnboarding(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var payload request.OnboardingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidUserPayload)
		return
	}

	role, err := entities.ParseRole(payload.Role)
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}

	profile, err := h.usecase.CompleteOnboarding(c.Request.Context(), caller.ID, usecase.OnboardingInput{
		Role:        role,
		FullName:    payload.FullName,
		PhoneNumber: payload.PhoneNumber,
		DPI:         payload.DPI,
	})
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUserProfile(profile))
}

// UpdateProfile changes the caller's bio and/or skills.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var payload request.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidUserPayload)
		return
	}

	profile, err := h.usecase.UpdateProfile(c.Request.Context(), caller.ID, payload.Bio, payload.Skills)
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUserProfile(profile))
}

// GetUser returns the public projection of any user. Contact details
// are never included here; they only surface through proposal
// snapshots.
func (h *UserHandler) GetUser(c *gin.Context) {
	profile, err := h.usecase.GetPublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicProfile(profile))
}

// ListTechnicians returns the technician directory, best rated first.
// An optional skill query narrows the result.
func (h *UserHandler) ListTechnicians(c *gin.Context) {
	ctx := c.Request.Context()
	limit := limitQuery(c)

	var (
		profiles []entities.PublicProfile
		err      error
	)
	if skill := c.Query("skill"); skill != "" {
		profiles, err = h.usecase.SearchTechniciansBySkill(ctx, skill, limit)
	} else {
		profiles, err = h.usecase.ListTechnicians(ctx, limit)
	}
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicProfiles(profiles))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidFullName),
		errors.Is(err, usecase.ErrInvalidPhoneNumber),
		errors.Is(err, usecase.ErrInvalidDPI),
		errors.Is(err, usecase.ErrInvalidBio),
		errors.Is(err, usecase.ErrInvalidSkill),
		errors.Is(err, entities.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
