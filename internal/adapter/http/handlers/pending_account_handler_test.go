package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase"
	"gestion_xpto/internal/usecase/interfaces"
	mock_interfaces "gestion_xpto/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPendingRouter(t *testing.T, gateway interfaces.IPaymentGateway) (*gin.Engine, *mock_interfaces.MockIResourceRepository[entities.PendingAccount]) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIResourceRepository[entities.PendingAccount](ctrl)
	h := NewPendingAccountHandler(usecase.NewPendingAccountUseCase(repo, gateway))

	r := gin.New()
	r.GET("/v1/pending-accounts/summary", h.Summary)
	r.POST("/v1/pending-accounts/:id/charge", h.Charge)
	return r, repo
}

func TestPendingAccountHandler_Summary(t *testing.T) {
	r, repo := newPendingRouter(t, nil)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(interfaces.Page[entities.PendingAccount]{
		Items: []entities.PendingAccount{
			{AccountType: entities.AccountTypeReceivable, BalanceDue: 120.50},
			{AccountType: entities.AccountTypePayable, BalanceDue: 80},
		},
		Total: 2, TotalPages: 1,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/pending-accounts/summary?companyId=co-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Success bool                   `json:"success"`
		Data    entities.PendingTotals `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !body.Success || body.Data.TotalReceivable != 120.50 || body.Data.TotalPayable != 80 {
		t.Fatalf("unexpected totals: %+v", body.Data)
	}
}

func TestPendingAccountHandler_Charge(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		r, _ := newPendingRouter(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pending-accounts/pa-1/charge",
			bytes.NewBufferString(`{"payment":{"payment_method_id":"visa"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("approved charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		r, repo := newPendingRouter(t, gateway)

		account := entities.PendingAccount{
			Base:           entities.Base{ID: "pa-1", CompanyID: "co-1"},
			AccountType:    entities.AccountTypeReceivable,
			OriginalAmount: 99.90,
			BalanceDue:     99.90,
		}
		repo.EXPECT().GetByID(gomock.Any(), "pa-1").Return(account, nil).Times(2)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-9", "approved", json.RawMessage(`{"status":"approved"}`), nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, a entities.PendingAccount) (entities.PendingAccount, error) { return a, nil },
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/pending-accounts/pa-1/charge",
			bytes.NewBufferString(`{"payment":{"payment_method_id":"visa"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Data entities.PendingAccount `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if !body.Data.Settled || body.Data.LastChargeID != "mp-9" {
			t.Fatalf("unexpected account: %+v", body.Data)
		}
	})

	t.Run("settled account answers conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		r, repo := newPendingRouter(t, gateway)
		repo.EXPECT().GetByID(gomock.Any(), "pa-1").Return(entities.PendingAccount{
			Base:        entities.Base{ID: "pa-1"},
			AccountType: entities.AccountTypeReceivable,
			Settled:     true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pending-accounts/pa-1/charge",
			bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
