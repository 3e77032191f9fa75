package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"serviciosjt/internal/adapter/http/handlers/mocks"
	"serviciosjt/internal/adapter/http/middleware"
	"serviciosjt/internal/domain/entities"
	"serviciosjt/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReviewHandler_SubmitReview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cliente := middleware.AuthUser{ID: "c-1"}

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewReviewHandler(mocks.NewMockIReviewUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/reviews", h.SubmitReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewReviewHandler(mocks.NewMockIReviewUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/reviews", asUser(cliente), h.SubmitReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(`{"rating":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), usecase.ReviewInput{
			ReviewerID: "c-1",
			ProposalID: "p-1",
			Rating:     5,
			Comment:    "Excelente trabajo",
		}).Return(entities.Review{ID: "r-1", ReviewerID: "c-1", ReviewedID: "t-1", Rating: 5}, nil)

		r := gin.New()
		r.POST("/v1/reviews", asUser(cliente), h.SubmitReview)

		body := `{"proposal_id":"p-1","rating":5,"comment":"Excelente trabajo"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Review{}, usecase.ErrReviewAlreadyExists)

		r := gin.New()
		r.POST("/v1/reviews", asUser(cliente), h.SubmitReview)

		body := `{"proposal_id":"p-1","rating":5,"comment":"Otra vez"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestReviewHandler_GetUserRating(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("public aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().GetRatingStats(gomock.Any(), "t-1").Return(entities.RatingStats{
			AverageRating: 4.5,
			TotalReviews:  2,
			RatingsBreakdown: map[int]int{
				4: 1,
				5: 1,
			},
		}, nil)

		r := gin.New()
		r.GET("/v1/users/:id/rating", h.GetUserRating)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/t-1/rating", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["average_rating"] != 4.5 || got["total_reviews"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().GetRatingStats(gomock.Any(), "ghost").Return(entities.RatingStats{}, usecase.ErrUserNotFound)

		r := gin.New()
		r.GET("/v1/users/:id/rating", h.GetUserRating)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/ghost/rating", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReviewHandler_CanReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReviewUseCase(ctrl)
	h := NewReviewHandler(uc)

	uc.EXPECT().CanReview(gomock.Any(), "c-1", "p-1").Return(true, nil)

	r := gin.New()
	r.GET("/v1/proposals/:id/can-review", asUser(middleware.AuthUser{ID: "c-1"}), h.CanReview)

	req := httptest.NewRequest(http.MethodGet, "/v1/proposals/p-1/can-review", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got["can_review"] != true {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMapReviewError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidReviewComment, http.StatusBadRequest},
		{entities.ErrInvalidRating, http.StatusBadRequest},
		{usecase.ErrReviewerNotParty, http.StatusForbidden},
		{usecase.ErrReviewNotFound, http.StatusNotFound},
		{usecase.ErrProposalNotFound, http.StatusNotFound},
		{usecase.ErrUserNotFound, http.StatusNotFound},
		{usecase.ErrProposalNotAccepted, http.StatusConflict},
		{usecase.ErrReviewAlreadyExists, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapReviewError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got.HTTPStatus)
		}
	}
}
