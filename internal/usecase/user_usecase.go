package usecase

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"serviciosjt/internal/domain/entities"
	"serviciosjt/internal/usecase/interfaces"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidFullName    = errors.New("invalid full name")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrInvalidDPI         = errors.New("invalid dpi")
	ErrInvalidBio         = errors.New("invalid bio")
	ErrInvalidSkill       = errors.New("invalid skill")
)

const (
	maxBioLen            = 500
	maxFullNameLen       = 100
	defaultUserListLimit = 100
)

var (
	fullNameRe = regexp.MustCompile(`^[a-záéíóúñüA-ZÁÉÍÓÚÑÜ\s'-]+$`)
	// Guatemala: 8 digits, optionally prefixed with +502; mobiles start
	// with 3-5, landlines with 2, 6 or 7.
	phoneRe      = regexp.MustCompile(`^(\+?502)?[2-7]\d{7}$`)
	dpiRe        = regexp.MustCompile(`^\d{13}$`)
	phoneStripRe = regexp.MustCompile(`[\s\-()]`)
	dpiStripRe   = regexp.MustCompile(`[\s\-]`)
)

// OnboardingInput is the role-based onboarding form.

type OnboardingInput struct {
	Role        entities.Role
	FullName    string
	PhoneNumber string
	DPI         string
}

// IUserUseCase exposes profile and directory operations. Sign-in and
// token issuance stay with the external identity provider; this layer
// only manages the marketplace profile keyed by the provider's user
// id.

type IUserUseCase interface {
	EnsureProfile(ctx context.Context, id, displayName, email, photoURL string) (entities.UserProfile, error)
	GetProfile(ctx context.Context, id string) (entities.UserProfile, error)
	GetPublicProfile(ctx context.Context, id string) (entities.PublicProfile, error)
	CompleteOnboarding(ctx context.Context, id string, input OnboardingInput) (entities.UserProfile, error)
	UpdateProfile(ctx context.Context, id string, bio *string, skills []string) (entities.UserProfile, error)
	ListTechnicians(ctx context.Context, limit int) ([]entities.PublicProfile, error)
	SearchTechniciansBySkill(ctx context.Context, skill string, limit int) ([]entities.PublicProfile, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// EnsureProfile returns the profile for an authenticated user,
// creating a pending-onboarding record on first sight. The identity
// fields come from the verified token, mirroring how the original app
// materializes a user document on first sign-in.
func (u *UserUseCase) EnsureProfile(ctx context.Context, id, displayName, email, photoURL string) (entities.UserProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if existing.ID != "" {
		existing.Rating = existing.Rating.Normalize()
		return existing, nil
	}

	now := time.Now().UTC()
	profile := entities.UserProfile{
		ID:               id,
		DisplayName:      strings.TrimSpace(displayName),
		Email:            strings.TrimSpace(email),
		PhotoURL:         strings.TrimSpace(photoURL),
		OnboardingStatus: entities.OnboardingStatusPending,
		Rating:           entities.NewRatingStats(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, profile)
}

func (u *UserUseCase) GetProfile(ctx context.Context, id string) (entities.UserProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if user.ID == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	user.Rating = user.Rating.Normalize()
	return user, nil
}

func (u *UserUseCase) GetPublicProfile(ctx context.Context, id string) (entities.PublicProfile, error) {
	user, err := u.GetProfile(ctx, id)
	if err != nil {
		return entities.PublicProfile{}, err
	}
	return user.Public(), nil
}

// CompleteOnboarding validates and stores the role, full name, phone
// and DPI. Phone and DPI are normalized (separators stripped) before
// persisting.
func (u *UserUseCase) CompleteOnboarding(ctx context.Context, id string, input OnboardingInput) (entities.UserProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}
	if !input.Role.Valid() {
		return entities.UserProfile{}, entities.ErrInvalidRole
	}

	fullName := strings.TrimSpace(input.FullName)
	if nameLen := utf8.RuneCountInString(fullName); nameLen < 3 || nameLen > maxFullNameLen ||
		len(strings.Fields(fullName)) < 2 || !fullNameRe.MatchString(fullName) {
		return entities.UserProfile{}, ErrInvalidFullName
	}

	phone := phoneStripRe.ReplaceAllString(input.PhoneNumber, "")
	if !phoneRe.MatchString(phone) {
		return entities.UserProfile{}, ErrInvalidPhoneNumber
	}

	dpi := dpiStripRe.ReplaceAllString(input.DPI, "")
	if !dpiRe.MatchString(dpi) {
		return entities.UserProfile{}, ErrInvalidDPI
	}

	updated, err := u.repo.CompleteOnboarding(ctx, id, input.Role, fullName, phone, dpi)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if updated.ID == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	return updated, nil
}

// UpdateProfile changes bio and/or skills. A nil bio leaves it
// untouched; a nil skills slice leaves skills untouched.
func (u *UserUseCase) UpdateProfile(ctx context.Context, id string, bio *string, skills []string) (entities.UserProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}
	if bio != nil {
		trimmed := strings.TrimSpace(*bio)
		if utf8.RuneCountInString(trimmed) > maxBioLen {
			return entities.UserProfile{}, ErrInvalidBio
		}
		bio = &trimmed
	}
	if skills != nil {
		cleaned := make([]string, 0, len(skills))
		for _, s := range skills {
			s = strings.TrimSpace(s)
			if s == "" {
				return entities.UserProfile{}, ErrInvalidSkill
			}
			cleaned = append(cleaned, s)
		}
		skills = cleaned
	}

	updated, err := u.repo.UpdateProfile(ctx, id, bio, skills)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if updated.ID == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	return updated, nil
}

// ListTechnicians returns the public directory, best rated first, ties
// broken by name.
func (u *UserUseCase) ListTechnicians(ctx context.Context, limit int) ([]entities.PublicProfile, error) {
	if limit <= 0 {
		limit = defaultUserListLimit
	}
	users, err := u.repo.ListByRole(ctx, entities.RoleTecnico, limit)
	if err != nil {
		return nil, err
	}
	return sortedPublicProfiles(users), nil
}

func (u *UserUseCase) SearchTechniciansBySkill(ctx context.Context, skill string, limit int) ([]entities.PublicProfile, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return u.ListTechnicians(ctx, limit)
	}
	if limit <= 0 {
		limit = defaultUserListLimit
	}
	users, err := u.repo.SearchBySkill(ctx, entities.RoleTecnico, skill, limit)
	if err != nil {
		return nil, err
	}
	return sortedPublicProfiles(users), nil
}

func sortedPublicProfiles(users []entities.UserProfile) []entities.PublicProfile {
	out := make([]entities.PublicProfile, 0, len(users))
	for _, user := range users {
		out = append(out, user.Public())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating.AverageRating != out[j].Rating.AverageRating {
			return out[i].Rating.AverageRating > out[j].Rating.AverageRating
		}
		return out[i].DisplayName < out[j].DisplayName
	})
	return out
}
