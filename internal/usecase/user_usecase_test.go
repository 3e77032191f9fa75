package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"serviciosjt/internal/domain/entities"
	mock_interfaces "serviciosjt/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_EnsureProfile(t *testing.T) {
	t.Run("returns the existing profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.UserProfile{ID: "u-1", DisplayName: "Ana"}, nil)

		profile, err := uc.EnsureProfile(context.Background(), "u-1", "ignored", "ignored@example.com", "")
		if err != nil || profile.DisplayName != "Ana" {
			t.Fatalf("unexpected: %+v %v", profile, err)
		}
	})

	t.Run("creates a pending record on first sight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.UserProfile{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.UserProfile) (entities.UserProfile, error) {
				if u.OnboardingStatus != entities.OnboardingStatusPending {
					t.Fatalf("expected pending onboarding, got %s", u.OnboardingStatus)
				}
				if u.Email != "ana@example.com" || u.DisplayName != "Ana" {
					t.Fatalf("unexpected identity fields: %+v", u)
				}
				return u, nil
			},
		)

		if _, err := uc.EnsureProfile(context.Background(), "u-1", " Ana ", " ana@example.com ", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_CompleteOnboarding(t *testing.T) {
	valid := OnboardingInput{
		Role:        entities.RoleTecnico,
		FullName:    "Juan Perez",
		PhoneNumber: "+502 3333-4444",
		DPI:         "1234 56789 0123",
	}

	t.Run("invalid full name", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		for _, name := range []string{"J", "Juan", "Juan123 Perez"} {
			in := valid
			in.FullName = name
			if _, err := uc.CompleteOnboarding(context.Background(), "u-1", in); !errors.Is(err, ErrInvalidFullName) {
				t.Fatalf("expected ErrInvalidFullName for %q, got %v", name, err)
			}
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		for _, phone := range []string{"12345678", "8123", "+1 555 0100"} {
			in := valid
			in.PhoneNumber = phone
			if _, err := uc.CompleteOnboarding(context.Background(), "u-1", in); !errors.Is(err, ErrInvalidPhoneNumber) {
				t.Fatalf("expected ErrInvalidPhoneNumber for %q, got %v", phone, err)
			}
		}
	})

	t.Run("invalid dpi", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		in := valid
		in.DPI = "12345"
		if _, err := uc.CompleteOnboarding(context.Background(), "u-1", in); !errors.Is(err, ErrInvalidDPI) {
			t.Fatalf("expected ErrInvalidDPI, got %v", err)
		}
	})

	t.Run("normalizes phone and dpi before persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().
			CompleteOnboarding(gomock.Any(), "u-1", entities.RoleTecnico, "Juan Perez", "+50233334444", "1234567890123").
			Return(entities.UserProfile{ID: "u-1", Role: entities.RoleTecnico}, nil)

		profile, err := uc.CompleteOnboarding(context.Background(), "u-1", valid)
		if err != nil || profile.Role != entities.RoleTecnico {
			t.Fatalf("unexpected: %+v %v", profile, err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().CompleteOnboarding(gomock.Any(), "u-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.UserProfile{}, nil)

		if _, err := uc.CompleteOnboarding(context.Background(), "u-1", valid); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUseCase_UpdateProfile(t *testing.T) {
	t.Run("bio too long", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		long := make([]byte, maxBioLen+1)
		for i := range long {
			long[i] = 'a'
		}
		bio := string(long)
		if _, err := uc.UpdateProfile(context.Background(), "u-1", &bio, nil); !errors.Is(err, ErrInvalidBio) {
			t.Fatalf("expected ErrInvalidBio, got %v", err)
		}
	})

	t.Run("accented bio is counted in characters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().UpdateProfile(gomock.Any(), "u-1", gomock.Any(), nil).Return(entities.UserProfile{ID: "u-1"}, nil)

		// 500 characters but 1000 bytes; must pass the 500-char limit.
		bio := strings.Repeat("á", maxBioLen)
		if _, err := uc.UpdateProfile(context.Background(), "u-1", &bio, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank skill rejected", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		if _, err := uc.UpdateProfile(context.Background(), "u-1", nil, []string{"plomeria", "  "}); !errors.Is(err, ErrInvalidSkill) {
			t.Fatalf("expected ErrInvalidSkill, got %v", err)
		}
	})

	t.Run("trims and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().UpdateProfile(gomock.Any(), "u-1", gomock.Any(), []string{"plomeria"}).DoAndReturn(
			func(_ context.Context, id string, bio *string, skills []string) (entities.UserProfile, error) {
				if bio == nil || *bio != "Electricista con experiencia" {
					t.Fatalf("expected trimmed bio, got %v", bio)
				}
				return entities.UserProfile{ID: id}, nil
			},
		)

		bio := "  Electricista con experiencia  "
		if _, err := uc.UpdateProfile(context.Background(), "u-1", &bio, []string{" plomeria "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_ListTechnicians(t *testing.T) {
	t.Run("sorted best rated first, name breaks ties", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().ListByRole(gomock.Any(), entities.RoleTecnico, 100).Return([]entities.UserProfile{
			{ID: "t-1", DisplayName: "Zoe", Rating: entities.RatingStats{RatingsBreakdown: map[int]int{4: 1}}},
			{ID: "t-2", DisplayName: "Ana", Rating: entities.RatingStats{RatingsBreakdown: map[int]int{5: 1}}},
			{ID: "t-3", DisplayName: "Beto", Rating: entities.RatingStats{RatingsBreakdown: map[int]int{5: 1}}},
		}, nil)

		got, err := uc.ListTechnicians(context.Background(), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[0].ID != "t-2" || got[1].ID != "t-3" || got[2].ID != "t-1" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("skill search falls back to full directory on blank skill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().ListByRole(gomock.Any(), entities.RoleTecnico, 100).Return(nil, nil)

		if _, err := uc.SearchTechniciansBySkill(context.Background(), "  ", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("skill search queries the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().SearchBySkill(gomock.Any(), entities.RoleTecnico, "plomeria", 100).Return([]entities.UserProfile{{ID: "t-1"}}, nil)

		got, err := uc.SearchTechniciansBySkill(context.Background(), "plomeria", 0)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected: %+v %v", got, err)
		}
	})
}
