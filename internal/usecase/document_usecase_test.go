package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"gestion_xpto/internal/domain/entities"
	mock_interfaces "gestion_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newDocumentUC(t *testing.T) (*DocumentUseCase, *mock_interfaces.MockIResourceRepository[entities.Document]) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIResourceRepository[entities.Document](ctrl)
	return NewDocumentUseCase(repo), repo
}

func TestDocumentUseCase_Create(t *testing.T) {
	t.Run("defaults to draft and derives totals", func(t *testing.T) {
		uc, repo := newDocumentUC(t)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.Status != entities.DocumentStatusDraft {
					t.Fatalf("expected draft status, got %s", d.Status)
				}
				if math.Abs(d.TotalAmount-121) > 1e-9 {
					t.Fatalf("expected total 121, got %v", d.TotalAmount)
				}
				return d, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.Document{
			Base:     entities.Base{CompanyID: "co-1"},
			ClientID: "cl-1",
			Items: []entities.DocumentItem{
				{Description: "svc", Quantity: 1, UnitPrice: 100, TaxRate: 21},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no client selected", func(t *testing.T) {
		uc, _ := newDocumentUC(t)

		_, err := uc.Create(context.Background(), entities.Document{
			Base: entities.Base{CompanyID: "co-1"},
		})
		if !errors.Is(err, entities.ErrClientNotSelected) {
			t.Fatalf("expected ErrClientNotSelected, got %v", err)
		}
	})
}

func TestDocumentUseCase_ChangeStatus(t *testing.T) {
	existing := entities.Document{
		Base:     entities.Base{ID: "doc-1", CompanyID: "co-1"},
		ClientID: "cl-1",
		Status:   entities.DocumentStatusDraft,
	}

	t.Run("unknown status", func(t *testing.T) {
		uc, _ := newDocumentUC(t)
		_, err := uc.ChangeStatus(context.Background(), "doc-1", "archived")
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("disallowed transition", func(t *testing.T) {
		uc, repo := newDocumentUC(t)
		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(existing, nil)

		_, err := uc.ChangeStatus(context.Background(), "doc-1", entities.DocumentStatusApproved)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("allowed transition", func(t *testing.T) {
		uc, repo := newDocumentUC(t)
		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(existing, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.Status != entities.DocumentStatusPending {
					t.Fatalf("expected pending, got %s", d.Status)
				}
				return d, nil
			},
		)

		updated, err := uc.ChangeStatus(context.Background(), "doc-1", entities.DocumentStatusPending)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.DocumentStatusPending {
			t.Fatalf("unexpected status: %s", updated.Status)
		}
	})
}

func TestDocumentUseCase_UpdateDetails(t *testing.T) {
	uc, repo := newDocumentUC(t)
	existing := entities.Document{
		Base:     entities.Base{ID: "doc-1", CompanyID: "co-1"},
		ClientID: "cl-1",
		Status:   entities.DocumentStatusDraft,
		Items: []entities.DocumentItem{
			{Description: "svc", Quantity: 1, UnitPrice: 100},
		},
	}
	repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(existing, nil)
	repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
		func(_ context.Context, d entities.Document) (entities.Document, error) {
			if math.Abs(d.TotalAmount-60) > 1e-9 {
				t.Fatalf("totals not rebuilt, got %v", d.TotalAmount)
			}
			return d, nil
		},
	)

	_, err := uc.UpdateDetails(context.Background(), "doc-1", func(d *entities.Document) error {
		d.Items = []entities.DocumentItem{{Description: "svc", Quantity: 2, UnitPrice: 30}}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
