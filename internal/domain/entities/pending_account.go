package entities

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType splits pending accounts into money owed to the company
// (receivable) and money the company owes (payable).
type AccountType string

const (
	AccountTypeReceivable AccountType = "receivable"
	AccountTypePayable    AccountType = "payable"
)

func (t AccountType) Valid() bool {
	return t == AccountTypeReceivable || t == AccountTypePayable
}

var (
	ErrPendingAccountCompanyID = errors.New("pending account company_id is required")
	ErrPendingAccountType      = errors.New("pending account account_type must be receivable or payable")
	ErrPendingAccountAmount    = errors.New("pending account original_amount must be >= 0")
)

// PendingAccount is an open receivable or payable, usually created from a
// completed order or document. BalanceDue = original - paid, 2 decimals.
type PendingAccount struct {
	Base
	AccountType    AccountType `json:"account_type" dynamodbav:"account_type"`
	ClientID       string      `json:"client_id,omitempty" dynamodbav:"client_id,omitempty"`
	SupplierID     string      `json:"supplier_id,omitempty" dynamodbav:"supplier_id,omitempty"`
	DocumentID     string      `json:"document_id,omitempty" dynamodbav:"document_id,omitempty"`
	OrderID        string      `json:"order_id,omitempty" dynamodbav:"order_id,omitempty"`
	Description    string      `json:"description,omitempty" dynamodbav:"description,omitempty"`
	OriginalAmount float64     `json:"original_amount" dynamodbav:"original_amount"`
	PaidAmount     float64     `json:"paid_amount" dynamodbav:"paid_amount"`
	BalanceDue     float64     `json:"balance_due" dynamodbav:"balance_due"`
	DueDate        time.Time   `json:"due_date" dynamodbav:"due_date"`
	Settled        bool        `json:"settled" dynamodbav:"settled"`

	// Last gateway charge, kept raw for reconciliation against the provider.
	LastChargeID     string          `json:"last_charge_id,omitempty" dynamodbav:"last_charge_id,omitempty"`
	LastChargeStatus string          `json:"last_charge_status,omitempty" dynamodbav:"last_charge_status,omitempty"`
	LastChargeRaw    json.RawMessage `json:"last_charge_raw,omitempty" dynamodbav:"last_charge_raw,omitempty"`
	Audit
}

func (p *PendingAccount) Validate() error {
	if strings.TrimSpace(p.CompanyID) == "" {
		return ErrPendingAccountCompanyID
	}
	if !p.AccountType.Valid() {
		return ErrPendingAccountType
	}
	if p.OriginalAmount < 0 || p.PaidAmount < 0 {
		return ErrPendingAccountAmount
	}
	return nil
}

// RecalculateBalance derives BalanceDue from original and paid amounts and
// flags the account settled when nothing is left.
func (p *PendingAccount) RecalculateBalance() {
	balance := decimal.NewFromFloat(p.OriginalAmount).
		Sub(decimal.NewFromFloat(p.PaidAmount)).
		Round(2)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	p.BalanceDue, _ = balance.Float64()
	p.Settled = balance.IsZero()
}

// IsOverdue reports whether the account is unsettled past its due date.
func (p *PendingAccount) IsOverdue(now time.Time) bool {
	return !p.Settled && p.BalanceDue > 0 && now.After(p.DueDate)
}

// PendingTotals aggregates balances over a set of accounts. The sums only
// depend on set membership, not on input order.
type PendingTotals struct {
	TotalReceivable float64 `json:"total_receivable"`
	TotalPayable    float64 `json:"total_payable"`
	TotalOverdue    float64 `json:"total_overdue"`
	CountReceivable int     `json:"count_receivable"`
	CountPayable    int     `json:"count_payable"`
	CountOverdue    int     `json:"count_overdue"`
}

// SummarizePending sums balance_due per account type, plus an overdue bucket
// relative to now.
func SummarizePending(accounts []PendingAccount, now time.Time) PendingTotals {
	var receivable, payable, overdue decimal.Decimal
	totals := PendingTotals{}
	for i := range accounts {
		a := &accounts[i]
		due := decimal.NewFromFloat(a.BalanceDue)
		switch a.AccountType {
		case AccountTypeReceivable:
			receivable = receivable.Add(due)
			totals.CountReceivable++
		case AccountTypePayable:
			payable = payable.Add(due)
			totals.CountPayable++
		}
		if a.IsOverdue(now) {
			overdue = overdue.Add(due)
			totals.CountOverdue++
		}
	}
	totals.TotalReceivable, _ = receivable.Round(2).Float64()
	totals.TotalPayable, _ = payable.Round(2).Float64()
	totals.TotalOverdue, _ = overdue.Round(2).Float64()
	return totals
}
