package entities

import "time"

// OnboardingStatus tracks whether a user completed the role-based
// onboarding flow after first sign-in.

type OnboardingStatus string

const (
	OnboardingStatusPending   OnboardingStatus = "pending"
	OnboardingStatusCompleted OnboardingStatus = "completed"
)

// UserProfile is the full user record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (role-index): role
//
// Authentication itself is external; this record carries the
// marketplace-facing profile plus the rating aggregate counters. The
// per-star counters are the source of truth for reputation and are
// incremented atomically; the derived average lives on RatingStats.

type UserProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	DPI         string `json:"dpi,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`

	Role             Role             `json:"role,omitempty"`
	OnboardingStatus OnboardingStatus `json:"onboarding_status"`

	Bio    string   `json:"bio,omitempty"`
	Skills []string `json:"skills,omitempty"`

	Rating RatingStats `json:"rating"`

	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	OnboardingCompletedAt *time.Time `json:"onboarding_completed_at,omitempty"`
}

// PublicProfile is the projection of a user safe to show to anyone.
// Contact details (email, phone, DPI) are never included; they are
// only disclosed through the proposal snapshot once a proposal exists
// between the two parties.

type PublicProfile struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"display_name"`
	FullName    string      `json:"full_name,omitempty"`
	PhotoURL    string      `json:"photo_url,omitempty"`
	Bio         string      `json:"bio,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	Role        Role        `json:"role"`
	Rating      RatingStats `json:"rating"`
}

// Public strips private fields from the profile.
func (u UserProfile) Public() PublicProfile {
	name := u.DisplayName
	if name == "" {
		name = u.FullName
	}
	return PublicProfile{
		ID:          u.ID,
		DisplayName: name,
		FullName:    u.FullName,
		PhotoURL:    u.PhotoURL,
		Bio:         u.Bio,
		Skills:      u.Skills,
		Role:        u.Role,
		Rating:      u.Rating.Normalize(),
	}
}

// HasSkill reports whether the user lists the given skill.
func (u UserProfile) HasSkill(skill string) bool {
	for _, s := range u.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
