package interfaces

import (
	"context"

	"serviciosjt/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for UserProfile.
//
// IncrementRating is the exactly-once accounting primitive for the
// reputation aggregate: a single atomic ADD on the star counter and
// the total, returning the post-increment stats. No read-modify-write
// window exists, so concurrent reviews cannot lose increments.

type IUserRepository interface {
	Create(ctx context.Context, u entities.UserProfile) (entities.UserProfile, error)
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
	CompleteOnboarding(ctx context.Context, id string, role entities.Role, fullName, phoneNumber, dpi string) (entities.UserProfile, error)
	UpdateProfile(ctx context.Context, id string, bio *string, skills []string) (entities.UserProfile, error)
	IncrementRating(ctx context.Context, id string, star int) (entities.RatingStats, error)
	ListByRole(ctx context.Context, role entities.Role, limit int) ([]entities.UserProfile, error)
	SearchBySkill(ctx context.Context, role entities.Role, skill string, limit int) ([]entities.UserProfile, error)
}
