package response

import (
	"time"

	"serviciosjt/internal/domain/entities"
)

// ProfileResponse is the owner-facing projection of a user record; it
// includes the private fields the public projection strips.
type ProfileResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	DPI         string `json:"dpi,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`

	Role             string `json:"role,omitempty"`
	OnboardingStatus string `json:"onboarding_status"`

	Bio    string   `json:"bio,omitempty"`
	Skills []string `json:"skills,omitempty"`

	Rating RatingStatsResponse `json:"rating"`

	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	OnboardingCompletedAt *time.Time `json:"onboarding_completed_at,omitempty"`
}

func FromUserProfile(u entities.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:                    u.ID,
		DisplayName:           u.DisplayName,
		FullName:              u.FullName,
		Email:                 u.Email,
		PhoneNumber:           u.PhoneNumber,
		DPI:                   u.DPI,
		PhotoURL:              u.PhotoURL,
		Role:                  u.Role.String(),
		OnboardingStatus:      string(u.OnboardingStatus),
		Bio:                   u.Bio,
		Skills:                u.Skills,
		Rating:                FromRatingStats(u.Rating.Normalize()),
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
		OnboardingCompletedAt: u.OnboardingCompletedAt,
	}
}

type PublicProfileResponse struct {
	ID          string              `json:"id"`
	DisplayName string              `json:"display_name"`
	FullName    string              `json:"full_name,omitempty"`
	PhotoURL    string              `json:"photo_url,omitempty"`
	Bio         string              `json:"bio,omitempty"`
	Skills      []string            `json:"skills,omitempty"`
	Role        string              `json:"role"`
	Rating      RatingStatsResponse `json:"rating"`
}

func FromPublicProfile(p entities.PublicProfile) PublicProfileResponse {
	return PublicProfileResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		FullName:    p.FullName,
		PhotoURL:    p.PhotoURL,
		Bio:         p.Bio,
		Skills:      p.Skills,
		Role:        p.Role.String(),
		Rating:      FromRatingStats(p.Rating),
	}
}

func FromPublicProfiles(profiles []entities.PublicProfile) []PublicProfileResponse {
	out := make([]PublicProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, FromPublicProfile(p))
	}
	return out
}

// ImageUploadResponse returns the stored object URL.
type ImageUploadResponse struct {
	URL string `json:"url"`
}
