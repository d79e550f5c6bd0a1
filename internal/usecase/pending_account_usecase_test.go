package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase/interfaces"
	mock_interfaces "gestion_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newPendingUC(t *testing.T, gateway interfaces.IPaymentGateway) (*PendingAccountUseCase, *mock_interfaces.MockIResourceRepository[entities.PendingAccount]) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIResourceRepository[entities.PendingAccount](ctrl)
	return NewPendingAccountUseCase(repo, gateway), repo
}

func TestPendingAccountUseCase_Create(t *testing.T) {
	uc, repo := newPendingUC(t, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PendingAccount{})).DoAndReturn(
		func(_ context.Context, a entities.PendingAccount) (entities.PendingAccount, error) {
			if math.Abs(a.BalanceDue-75) > 1e-9 {
				t.Fatalf("expected balance 75, got %v", a.BalanceDue)
			}
			if a.Settled {
				t.Fatalf("should not be settled")
			}
			return a, nil
		},
	)

	_, err := uc.Create(context.Background(), entities.PendingAccount{
		Base:           entities.Base{CompanyID: "co-1"},
		AccountType:    entities.AccountTypeReceivable,
		OriginalAmount: 100,
		PaidAmount:     25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPendingAccountUseCase_Summary(t *testing.T) {
	t.Run("missing company id", func(t *testing.T) {
		uc, _ := newPendingUC(t, nil)
		totals, err := uc.Summary(context.Background(), interfaces.ListQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals != (entities.PendingTotals{}) {
			t.Fatalf("expected zero totals, got %+v", totals)
		}
	})

	t.Run("walks every page", func(t *testing.T) {
		uc, repo := newPendingUC(t, nil)
		page1 := interfaces.Page[entities.PendingAccount]{
			Items: []entities.PendingAccount{
				{AccountType: entities.AccountTypeReceivable, BalanceDue: 100},
			},
			Total: 2, TotalPages: 2,
		}
		page2 := interfaces.Page[entities.PendingAccount]{
			Items: []entities.PendingAccount{
				{AccountType: entities.AccountTypePayable, BalanceDue: 40},
			},
			Total: 2, TotalPages: 2,
		}
		gomock.InOrder(
			repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(page1, nil),
			repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(page2, nil),
		)

		totals, err := uc.Summary(context.Background(), interfaces.ListQuery{CompanyID: "co-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals.TotalReceivable != 100 || totals.TotalPayable != 40 {
			t.Fatalf("unexpected totals: %+v", totals)
		}
	})
}

func TestPendingAccountUseCase_ChargeReceivable(t *testing.T) {
	receivable := entities.PendingAccount{
		Base:           entities.Base{ID: "pa-1", CompanyID: "co-1"},
		AccountType:    entities.AccountTypeReceivable,
		OriginalAmount: 150,
		BalanceDue:     150,
	}

	t.Run("gateway not configured", func(t *testing.T) {
		uc, _ := newPendingUC(t, nil)
		_, err := uc.ChargeReceivable(context.Background(), "pa-1", nil)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc, _ := newPendingUC(t, gateway)

		_, err := uc.ChargeReceivable(context.Background(), "pa-1", json.RawMessage("{not json"))
		if !errors.Is(err, ErrChargePayload) {
			t.Fatalf("expected ErrChargePayload, got %v", err)
		}
	})

	t.Run("payable account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc, repo := newPendingUC(t, gateway)
		repo.EXPECT().GetByID(gomock.Any(), "pa-1").Return(entities.PendingAccount{
			Base:        entities.Base{ID: "pa-1"},
			AccountType: entities.AccountTypePayable,
			BalanceDue:  50,
		}, nil)

		_, err := uc.ChargeReceivable(context.Background(), "pa-1", nil)
		if !errors.Is(err, ErrChargeNotReceivable) {
			t.Fatalf("expected ErrChargeNotReceivable, got %v", err)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc, repo := newPendingUC(t, gateway)
		repo.EXPECT().GetByID(gomock.Any(), "pa-1").Return(entities.PendingAccount{
			Base:        entities.Base{ID: "pa-1"},
			AccountType: entities.AccountTypeReceivable,
			Settled:     true,
		}, nil)

		_, err := uc.ChargeReceivable(context.Background(), "pa-1", nil)
		if !errors.Is(err, ErrChargeAlreadySettled) {
			t.Fatalf("expected ErrChargeAlreadySettled, got %v", err)
		}
	})

	t.Run("declined charge keeps the provider response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc, repo := newPendingUC(t, gateway)
		repo.EXPECT().GetByID(gomock.Any(), "pa-1").Return(receivable, nil).Times(2)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-1", "rejected", json.RawMessage(`{"status":"rejected"}`), nil)
		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.PendingAccount{})).DoAndReturn(
			func(_ context.Context, a entities.PendingAccount) (entities.PendingAccount, error) {
				if a.LastChargeID != "mp-1" || a.LastChargeStatus != "rejected" {
					t.Fatalf("charge metadata missing: %+v", a)
				}
				if string(a.LastChargeRaw) != `{"status":"rejected"}` {
					t.Fatalf("raw provider response missing: %s", a.LastChargeRaw)
				}
				if a.Settled || a.BalanceDue != 150 {
					t.Fatalf("declined charge must not settle the account: %+v", a)
				}
				return a, nil
			},
		)

		_, err := uc.ChargeReceivable(context.Background(), "pa-1", nil)
		if !errors.Is(err, ErrChargeDeclined) {
			t.Fatalf("expected ErrChargeDeclined, got %v", err)
		}
	})

	t.Run("approved charge settles the account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc, repo := newPendingUC(t, gateway)
		repo.EXPECT().GetByID(gomock.Any(), "pa-1").Return(receivable, nil).Times(2)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if req["transaction_amount"] != 150.0 {
					t.Fatalf("expected balance as amount, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "pa-1" {
					t.Fatalf("expected account id reference, got %v", req["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"status":"approved"}`), nil
			},
		)
		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.PendingAccount{})).DoAndReturn(
			func(_ context.Context, a entities.PendingAccount) (entities.PendingAccount, error) {
				if !a.Settled || a.BalanceDue != 0 {
					t.Fatalf("expected settled account, got %+v", a)
				}
				if a.LastChargeID != "mp-1" || a.LastChargeStatus != "approved" {
					t.Fatalf("charge metadata missing: %+v", a)
				}
				return a, nil
			},
		)

		charged, err := uc.ChargeReceivable(context.Background(), "pa-1", json.RawMessage(`{"payment_method_id":"visa"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !charged.Settled {
			t.Fatalf("expected settled, got %+v", charged)
		}
	})
}
