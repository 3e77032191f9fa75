package entities

import "errors"

// MinRating and MaxRating bound the star scale.
const (
	MinRating = 1
	MaxRating = 5
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// RatingStats is the aggregate reputation of a user.
//
// The breakdown histogram is the source of truth; AverageRating is
// always re-derived from it (never updated incrementally) so that
// floating-point drift cannot accumulate over many reviews. There is
// no decrement path: reviews are never deleted.

type RatingStats struct {
	AverageRating    float64     `json:"average_rating"`
	TotalReviews     int         `json:"total_reviews"`
	RatingsBreakdown map[int]int `json:"ratings_breakdown"`
}

// NewRatingStats returns an empty aggregate with all star buckets
// present.
func NewRatingStats() RatingStats {
	return RatingStats{
		RatingsBreakdown: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
}

// Apply accounts one new star rating and returns the updated
// aggregate. The receiver is not mutated.
func (s RatingStats) Apply(star int) (RatingStats, error) {
	if star < MinRating || star > MaxRating {
		return RatingStats{}, ErrInvalidRating
	}

	next := NewRatingStats()
	for k, v := range s.RatingsBreakdown {
		if k >= MinRating && k <= MaxRating {
			next.RatingsBreakdown[k] = v
		}
	}
	next.RatingsBreakdown[star]++

	for _, v := range next.RatingsBreakdown {
		next.TotalReviews += v
	}
	next.AverageRating = next.deriveAverage()
	return next, nil
}

// Normalize recomputes TotalReviews and AverageRating from the
// histogram. Used when stats are loaded from storage, where only the
// counters are persisted.
func (s RatingStats) Normalize() RatingStats {
	next := NewRatingStats()
	for k, v := range s.RatingsBreakdown {
		if k >= MinRating && k <= MaxRating && v > 0 {
			next.RatingsBreakdown[k] = v
			next.TotalReviews += v
		}
	}
	next.AverageRating = next.deriveAverage()
	return next
}

func (s RatingStats) deriveAverage() float64 {
	if s.TotalReviews == 0 {
		return 0
	}
	sum := 0
	for star, count := range s.RatingsBreakdown {
		sum += star * count
	}
	return float64(sum) / float64(s.TotalReviews)
}
