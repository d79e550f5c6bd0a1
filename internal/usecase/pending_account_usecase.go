package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase/interfaces"
)

var (
	ErrChargePayload        = errors.New("invalid charge payload")
	ErrChargeNotReceivable  = errors.New("only receivable accounts can be charged")
	ErrChargeAlreadySettled = errors.New("account already settled")
	ErrChargeDeclined       = errors.New("charge declined by payment gateway")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// PendingAccountUseCase manages receivables/payables: balance arithmetic,
// the aggregated totals the dashboard header shows, and charging a
// receivable through the payment gateway.
type PendingAccountUseCase struct {
	*ResourceUseCase[entities.PendingAccount, *entities.PendingAccount]
	gateway interfaces.IPaymentGateway
}

func NewPendingAccountUseCase(repo interfaces.IResourceRepository[entities.PendingAccount], gateway interfaces.IPaymentGateway) *PendingAccountUseCase {
	return &PendingAccountUseCase{
		ResourceUseCase: NewResourceUseCase[entities.PendingAccount](repo, "pending_accounts"),
		gateway:         gateway,
	}
}

func (u *PendingAccountUseCase) Create(ctx context.Context, a entities.PendingAccount) (entities.PendingAccount, error) {
	a.RecalculateBalance()
	return u.ResourceUseCase.Create(ctx, a)
}

func (u *PendingAccountUseCase) UpdateDetails(ctx context.Context, id string, apply func(*entities.PendingAccount) error) (entities.PendingAccount, error) {
	return u.Update(ctx, id, func(a *entities.PendingAccount) error {
		if err := apply(a); err != nil {
			return err
		}
		a.RecalculateBalance()
		return nil
	})
}

// Summary aggregates balance_due over every account matching the query,
// walking all pages so the totals cover the whole filtered set, not just the
// page on screen.
func (u *PendingAccountUseCase) Summary(ctx context.Context, q interfaces.ListQuery) (entities.PendingTotals, error) {
	if strings.TrimSpace(q.CompanyID) == "" {
		return entities.PendingTotals{}, nil
	}

	all, err := listAll(ctx, u.repo, q)
	if err != nil {
		return entities.PendingTotals{}, err
	}
	return entities.SummarizePending(all, time.Now().UTC()), nil
}

// ChargeReceivable collects an open receivable through the payment gateway.
// The balance in the database is the source of truth for the charged amount;
// the caller only supplies payment method and payer details.
func (u *PendingAccountUseCase) ChargeReceivable(ctx context.Context, id string, payload json.RawMessage) (entities.PendingAccount, error) {
	var zero entities.PendingAccount
	if u.gateway == nil {
		return zero, ErrGatewayNotConfigured
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return zero, ErrChargePayload
	}

	account, err := u.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if account.AccountType != entities.AccountTypeReceivable {
		return zero, ErrChargeNotReceivable
	}
	if account.Settled || account.BalanceDue <= 0 {
		return zero, ErrChargeAlreadySettled
	}

	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		return zero, ErrChargePayload
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = account.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Cobro cuenta pendiente %s", account.ID)
	}
	req["transaction_amount"] = account.BalanceDue
	enriched, err := json.Marshal(req)
	if err != nil {
		return zero, err
	}

	u.log.Debug().Str("account_id", account.ID).Float64("amount", account.BalanceDue).Msg("charging receivable")
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.log.Error().Err(err).Str("account_id", account.ID).Msg("gateway charge failed")
		return zero, err
	}

	// The provider response is persisted whatever the outcome; a declined
	// charge still needs its id/status/raw on the account for reconciliation.
	updated, err := u.Update(ctx, id, func(a *entities.PendingAccount) error {
		a.LastChargeID = providerID
		a.LastChargeStatus = providerStatus
		a.LastChargeRaw = providerResp
		if providerStatus == "approved" {
			a.PaidAmount = a.OriginalAmount
			a.RecalculateBalance()
		}
		return nil
	})
	if err != nil {
		return zero, err
	}
	if providerStatus != "approved" {
		return zero, ErrChargeDeclined
	}
	return updated, nil
}
