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

func validPublicationInput() PublicationInput {
	budget := 500.0
	return PublicationInput{
		Type:        entities.PublicationTypeServiceRequest,
		AuthorID:    "c-1",
		AuthorName:  "Ana Lopez",
		AuthorRole:  entities.RoleCliente,
		Title:       "Reparar tuberia",
		Description: "Fuga en el lavamanos del segundo nivel",
		Budget:      &budget,
	}
}

func TestPublicationUseCase_Create(t *testing.T) {
	t.Run("type must match the author role", func(t *testing.T) {
		uc := NewPublicationUseCase(nil)
		in := validPublicationInput()
		in.Type = entities.PublicationTypePortfolio
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrPublicationRoleMismatch) {
			t.Fatalf("expected ErrPublicationRoleMismatch, got %v", err)
		}
	})

	t.Run("budget must be positive for service requests", func(t *testing.T) {
		uc := NewPublicationUseCase(nil)
		in := validPublicationInput()
		zero := 0.0
		in.Budget = &zero
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidPublicationBudget) {
			t.Fatalf("expected ErrInvalidPublicationBudget, got %v", err)
		}
	})

	t.Run("portfolio items drop the budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewPublicationUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Publication) (entities.Publication, error) {
				if p.Budget != nil {
					t.Fatalf("portfolio must have no budget: %+v", p)
				}
				if p.ImageURLs == nil {
					t.Fatalf("image urls must default to an empty slice")
				}
				return p, nil
			},
		)

		budget := 100.0
		in := PublicationInput{
			Type:        entities.PublicationTypePortfolio,
			AuthorID:    "t-1",
			AuthorRole:  entities.RoleTecnico,
			Title:       "Trabajos recientes",
			Description: "Instalaciones completadas este mes",
			Budget:      &budget,
		}
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("accented title is counted in characters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewPublicationUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Publication) (entities.Publication, error) {
				return p, nil
			},
		)

		// 100 characters but 200 bytes; must pass the 100-char limit.
		in := validPublicationInput()
		in.Title = strings.Repeat("á", maxPublicationTitleLen)
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		in.Title = strings.Repeat("á", maxPublicationTitleLen+1)
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidPublicationTitle) {
			t.Fatalf("expected ErrInvalidPublicationTitle, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewPublicationUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Publication) (entities.Publication, error) {
				if p.ID == "" || p.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamps: %+v", p)
				}
				if p.Budget == nil || *p.Budget != 500.0 {
					t.Fatalf("expected budget 500, got %+v", p.Budget)
				}
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), validPublicationInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPublicationUseCase_ListVisible(t *testing.T) {
	t.Run("cliente gets technician portfolios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewPublicationUseCase(repo)

		repo.EXPECT().ListByType(gomock.Any(), entities.PublicationTypePortfolio, 50).Return([]entities.Publication{
			{ID: "p-1", Type: entities.PublicationTypePortfolio, AuthorRole: entities.RoleTecnico},
		}, nil)

		got, err := uc.ListVisible(context.Background(), entities.RoleCliente, 0)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected: %v %v", got, err)
		}
	})

	t.Run("tecnico gets client service requests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewPublicationUseCase(repo)

		repo.EXPECT().ListByType(gomock.Any(), entities.PublicationTypeServiceRequest, 10).Return(nil, nil)

		if _, err := uc.ListVisible(context.Background(), entities.RoleTecnico, 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("anonymous viewer gets everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewPublicationUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any(), 50).Return([]entities.Publication{{ID: "p-1"}, {ID: "p-2"}}, nil)

		got, err := uc.ListVisible(context.Background(), "", 0)
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected: %v %v", got, err)
		}
	})
}

func TestPublicationUseCase_ListByAuthor(t *testing.T) {
	t.Run("blank author id", func(t *testing.T) {
		uc := NewPublicationUseCase(nil)
		if _, err := uc.ListByAuthor(context.Background(), "  ", 0); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("defaults the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewPublicationUseCase(repo)

		repo.EXPECT().ListByAuthorID(gomock.Any(), "c-1", 50).Return([]entities.Publication{
			{ID: "pub-1", AuthorID: "c-1"},
			{ID: "pub-2", AuthorID: "c-1"},
		}, nil)

		got, err := uc.ListByAuthor(context.Background(), "c-1", 0)
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected: %v %v", got, err)
		}
	})

	t.Run("explicit limit is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewPublicationUseCase(repo)

		repo.EXPECT().ListByAuthorID(gomock.Any(), "t-1", 5).Return(nil, nil)

		if _, err := uc.ListByAuthor(context.Background(), "t-1", 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPublicationUseCase_Delete(t *testing.T) {
	t.Run("author deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewPublicationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "pub-1").Return(entities.Publication{ID: "pub-1", AuthorID: "c-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "pub-1").Return(nil)

		if err := uc.Delete(context.Background(), "pub-1", "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-author is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewPublicationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "pub-1").Return(entities.Publication{ID: "pub-1", AuthorID: "c-1"}, nil)

		if err := uc.Delete(context.Background(), "pub-1", "t-1"); !errors.Is(err, ErrNotPublicationAuthor) {
			t.Fatalf("expected ErrNotPublicationAuthor, got %v", err)
		}
	})

	t.Run("missing publication", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewPublicationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Publication{}, nil)

		if err := uc.Delete(context.Background(), "missing", "c-1"); !errors.Is(err, ErrPublicationNotFound) {
			t.Fatalf("expected ErrPublicationNotFound, got %v", err)
		}
	})
}
