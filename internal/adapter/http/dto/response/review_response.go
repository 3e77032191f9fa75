package response

import (
	"time"

	"serviciosjt/internal/domain/entities"
)

type ReviewResponse struct {
	ID string `json:"id"`

	ReviewerID   string `json:"reviewer_id"`
	ReviewerName string `json:"reviewer_name"`
	ReviewerRole string `json:"reviewer_role"`

	ReviewedID   string `json:"reviewed_id"`
	ReviewedName string `json:"reviewed_name"`
	ReviewedRole string `json:"reviewed_role"`

	Rating  int    `json:"rating"`
	Comment string `json:"comment"`

	ProposalID    string `json:"proposal_id"`
	ProposalTitle string `json:"proposal_title"`

	VerifiedWork bool      `json:"verified_work"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:            r.ID,
		ReviewerID:    r.ReviewerID,
		ReviewerName:  r.ReviewerName,
		ReviewerRole:  r.ReviewerRole.String(),
		ReviewedID:    r.ReviewedID,
		ReviewedName:  r.ReviewedName,
		ReviewedRole:  r.ReviewedRole.String(),
		Rating:        r.Rating,
		Comment:       r.Comment,
		ProposalID:    r.ProposalID,
		ProposalTitle: r.ProposalTitle,
		VerifiedWork:  r.VerifiedWork,
		CreatedAt:     r.CreatedAt,
	}
}

func FromReviews(reviews []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, FromReview(r))
	}
	return out
}

type RatingStatsResponse struct {
	AverageRating    float64     `json:"average_rating"`
	TotalReviews     int         `json:"total_reviews"`
	RatingsBreakdown map[int]int `json:"ratings_breakdown"`
}

func FromRatingStats(s entities.RatingStats) RatingStatsResponse {
	return RatingStatsResponse{
		AverageRating:    s.AverageRating,
		TotalReviews:     s.TotalReviews,
		RatingsBreakdown: s.RatingsBreakdown,
	}
}
