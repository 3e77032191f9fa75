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

func validProposalInput() ProposalInput {
	return ProposalInput{
		Title:       "Instalacion electrica",
		Description: "Cableado completo de la cocina",
		Budget:      350,

		ClientID:    "c-1",
		ClientName:  "Ana Lopez",
		ClientEmail: "ana@example.com",
		ClientPhone: "50233334444",

		TechnicianID:    "t-1",
		TechnicianName:  "Juan Perez",
		TechnicianEmail: "juan@example.com",
		TechnicianPhone: "50255556666",

		CreatedBy: entities.RoleCliente,
	}
}

func TestProposalUseCase_Create(t *testing.T) {
	t.Run("invalid title", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		in := validProposalInput()
		in.Title = "   "
		if _, err := uc.Create(context.Background(), "c-1", in); !errors.Is(err, ErrInvalidProposalTitle) {
			t.Fatalf("expected ErrInvalidProposalTitle, got %v", err)
		}

		in = validProposalInput()
		in.Title = strings.Repeat("x", 101)
		if _, err := uc.Create(context.Background(), "c-1", in); !errors.Is(err, ErrInvalidProposalTitle) {
			t.Fatalf("expected ErrInvalidProposalTitle for long title, got %v", err)
		}
	})

	t.Run("invalid description", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		in := validProposalInput()
		in.Description = strings.Repeat("y", 1001)
		if _, err := uc.Create(context.Background(), "c-1", in); !errors.Is(err, ErrInvalidProposalDescription) {
			t.Fatalf("expected ErrInvalidProposalDescription, got %v", err)
		}
	})

	t.Run("accented text is counted in characters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				return p, nil
			},
		)

		// 100 characters but 200 bytes; must pass the 100-char limit.
		in := validProposalInput()
		in.Title = strings.Repeat("ó", 100)
		if _, err := uc.Create(context.Background(), "c-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		in.Title = strings.Repeat("ó", 101)
		if _, err := uc.Create(context.Background(), "c-1", in); !errors.Is(err, ErrInvalidProposalTitle) {
			t.Fatalf("expected ErrInvalidProposalTitle, got %v", err)
		}
	})

	t.Run("invalid budget", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		in := validProposalInput()
		in.Budget = 0
		if _, err := uc.Create(context.Background(), "c-1", in); !errors.Is(err, ErrInvalidProposalBudget) {
			t.Fatalf("expected ErrInvalidProposalBudget, got %v", err)
		}
	})

	t.Run("same user on both sides", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		in := validProposalInput()
		in.TechnicianID = in.ClientID
		if _, err := uc.Create(context.Background(), "c-1", in); !errors.Is(err, ErrInvalidProposalParties) {
			t.Fatalf("expected ErrInvalidProposalParties, got %v", err)
		}
	})

	t.Run("caller must be the declared sender", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		in := validProposalInput()
		if _, err := uc.Create(context.Background(), "t-1", in); !errors.Is(err, ErrNotProposalSender) {
			t.Fatalf("expected ErrNotProposalSender, got %v", err)
		}
	})

	t.Run("direction must match the publication", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pubRepo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewProposalUseCase(nil, pubRepo)

		// A cliente proposing against another cliente's service request.
		pubRepo.EXPECT().GetByID(gomock.Any(), "pub-1").Return(entities.Publication{
			ID: "pub-1", Type: entities.PublicationTypeServiceRequest, AuthorRole: entities.RoleCliente,
		}, nil)

		in := validProposalInput()
		in.PublicationID = "pub-1"
		if _, err := uc.Create(context.Background(), "c-1", in); !errors.Is(err, ErrProposalDirectionMismatch) {
			t.Fatalf("expected ErrProposalDirectionMismatch, got %v", err)
		}
	})

	t.Run("publication not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pubRepo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewProposalUseCase(nil, pubRepo)

		pubRepo.EXPECT().GetByID(gomock.Any(), "pub-404").Return(entities.Publication{}, nil)

		in := validProposalInput()
		in.PublicationID = "pub-404"
		if _, err := uc.Create(context.Background(), "c-1", in); !errors.Is(err, ErrPublicationNotFound) {
			t.Fatalf("expected ErrPublicationNotFound, got %v", err)
		}
	})

	t.Run("create success snapshots publication title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		pubRepo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewProposalUseCase(repo, pubRepo)

		pubRepo.EXPECT().GetByID(gomock.Any(), "pub-1").Return(entities.Publication{
			ID: "pub-1", Title: "Busco electricista", Type: entities.PublicationTypePortfolio, AuthorRole: entities.RoleTecnico,
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.ID == "" || p.Status != entities.ProposalStatusPending {
					t.Fatalf("expected a pending proposal with id, got %+v", p)
				}
				if p.PublicationTitle != "Busco electricista" {
					t.Fatalf("expected publication title snapshot, got %q", p.PublicationTitle)
				}
				if p.ClientName != "Ana Lopez" || p.TechnicianPhone != "50255556666" {
					t.Fatalf("expected contact snapshots, got %+v", p)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() || p.RespondedAt != nil {
					t.Fatalf("unexpected timestamps: %+v", p)
				}
				return p, nil
			},
		)

		in := validProposalInput()
		in.PublicationID = "pub-1"
		if _, err := uc.Create(context.Background(), "c-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("direct contact needs no publication", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) { return p, nil },
		)

		if _, err := uc.Create(context.Background(), "c-1", validProposalInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_Accept(t *testing.T) {
	pending := entities.Proposal{
		ID: "p-1", ClientID: "c-1", TechnicianID: "t-1",
		CreatedBy: entities.RoleCliente, Status: entities.ProposalStatusPending,
	}

	t.Run("receiver accepts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		accepted := pending
		accepted.Status = entities.ProposalStatusAccepted
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.ProposalStatusAccepted, "").Return(accepted, nil)

		res, err := uc.Accept(context.Background(), "p-1", "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProposalStatusAccepted {
			t.Fatalf("expected accepted, got %s", res.Status)
		}
	})

	t.Run("sender cannot accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(pending, nil)

		if _, err := uc.Accept(context.Background(), "p-1", "c-1"); !errors.Is(err, ErrNotProposalReceiver) {
			t.Fatalf("expected ErrNotProposalReceiver, got %v", err)
		}
	})

	t.Run("stranger cannot accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(pending, nil)

		if _, err := uc.Accept(context.Background(), "p-1", "x-9"); !errors.Is(err, ErrNotProposalReceiver) {
			t.Fatalf("expected ErrNotProposalReceiver, got %v", err)
		}
	})

	t.Run("terminal proposal absorbs the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		rejected := pending
		rejected.Status = entities.ProposalStatusRejected
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(rejected, nil)

		if _, err := uc.Accept(context.Background(), "p-1", "t-1"); !errors.Is(err, ErrProposalNotPending) {
			t.Fatalf("expected ErrProposalNotPending, got %v", err)
		}
	})

	t.Run("concurrent responder wins the conditional write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		// The first read still sees pending; the conditional update loses
		// the race and comes back empty; the re-read shows the winner.
		cancelled := pending
		cancelled.Status = entities.ProposalStatusCancelled
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(pending, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.ProposalStatusAccepted, "").Return(entities.Proposal{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(cancelled, nil),
		)

		if _, err := uc.Accept(context.Background(), "p-1", "t-1"); !errors.Is(err, ErrProposalNotPending) {
			t.Fatalf("expected ErrProposalNotPending, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Proposal{}, nil)

		if _, err := uc.Accept(context.Background(), "missing", "t-1"); !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}

func TestProposalUseCase_Reject(t *testing.T) {
	pending := entities.Proposal{
		ID: "p-1", ClientID: "c-1", TechnicianID: "t-1",
		CreatedBy: entities.RoleTecnico, Status: entities.ProposalStatusPending,
	}

	t.Run("feedback is mandatory", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		if _, err := uc.Reject(context.Background(), "p-1", "c-1", "   "); !errors.Is(err, ErrEmptyRejectionFeedback) {
			t.Fatalf("expected ErrEmptyRejectionFeedback, got %v", err)
		}
	})

	t.Run("receiver rejects with feedback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		rejected := pending
		rejected.Status = entities.ProposalStatusRejected
		rejected.RejectionFeedback = "presupuesto muy alto"
		// tecnico authored it, so the cliente is the receiver.
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.ProposalStatusRejected, "presupuesto muy alto").Return(rejected, nil)

		res, err := uc.Reject(context.Background(), "p-1", "c-1", " presupuesto muy alto ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RejectionFeedback != "presupuesto muy alto" {
			t.Fatalf("expected feedback to persist, got %q", res.RejectionFeedback)
		}
	})
}

func TestProposalUseCase_Cancel(t *testing.T) {
	pending := entities.Proposal{
		ID: "p-1", ClientID: "c-1", TechnicianID: "t-1",
		CreatedBy: entities.RoleCliente, Status: entities.ProposalStatusPending,
	}

	t.Run("sender cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		cancelled := pending
		cancelled.Status = entities.ProposalStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.ProposalStatusCancelled, "").Return(cancelled, nil)

		res, err := uc.Cancel(context.Background(), "p-1", "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProposalStatusCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}
	})

	t.Run("receiver cannot cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(pending, nil)

		if _, err := uc.Cancel(context.Background(), "p-1", "t-1"); !errors.Is(err, ErrNotProposalSender) {
			t.Fatalf("expected ErrNotProposalSender, got %v", err)
		}
	})

	t.Run("accepted proposal cannot be cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		accepted := pending
		accepted.Status = entities.ProposalStatusAccepted
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(accepted, nil)

		if _, err := uc.Cancel(context.Background(), "p-1", "c-1"); !errors.Is(err, ErrProposalNotPending) {
			t.Fatalf("expected ErrProposalNotPending, got %v", err)
		}
	})
}

func TestProposalUseCase_GetByID(t *testing.T) {
	t.Run("party reads the proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", ClientID: "c-1", TechnicianID: "t-1"}, nil)

		if _, err := uc.GetByID(context.Background(), "p-1", "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1", ClientID: "c-1", TechnicianID: "t-1"}, nil)

		if _, err := uc.GetByID(context.Background(), "p-1", "x-9"); !errors.Is(err, ErrNotProposalParty) {
			t.Fatalf("expected ErrNotProposalParty, got %v", err)
		}
	})
}

func TestProposalUseCase_ListForUser(t *testing.T) {
	t.Run("tecnico lists by technician index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().ListByTechnicianID(gomock.Any(), "t-1").Return([]entities.Proposal{{ID: "p-1"}}, nil)

		got, err := uc.ListForUser(context.Background(), "t-1", entities.RoleTecnico)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected: %v %v", got, err)
		}
	})

	t.Run("cliente lists by client index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().ListByClientID(gomock.Any(), "c-1").Return(nil, nil)

		if _, err := uc.ListForUser(context.Background(), "c-1", entities.RoleCliente); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_ListByPublicationID(t *testing.T) {
	t.Run("author only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pubRepo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewProposalUseCase(nil, pubRepo)

		pubRepo.EXPECT().GetByID(gomock.Any(), "pub-1").Return(entities.Publication{ID: "pub-1", AuthorID: "c-1"}, nil)

		if _, err := uc.ListByPublicationID(context.Background(), "pub-1", "t-1"); !errors.Is(err, ErrNotPublicationAuthor) {
			t.Fatalf("expected ErrNotPublicationAuthor, got %v", err)
		}
	})

	t.Run("author reads received proposals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		pubRepo := mock_interfaces.NewMockIPublicationRepository(ctrl)
		uc := NewProposalUseCase(repo, pubRepo)

		pubRepo.EXPECT().GetByID(gomock.Any(), "pub-1").Return(entities.Publication{ID: "pub-1", AuthorID: "c-1"}, nil)
		repo.EXPECT().ListByPublicationID(gomock.Any(), "pub-1").Return([]entities.Proposal{{ID: "p-1"}, {ID: "p-2"}}, nil)

		got, err := uc.ListByPublicationID(context.Background(), "pub-1", "c-1")
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected: %v %v", got, err)
		}
	})
}
