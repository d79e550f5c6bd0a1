package entities

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// DocumentStatus represents the lifecycle of a budget/quote document.
//
// Domain notes:
//   - A document starts as a draft and is sent to the client as pending.
//   - Approved documents can be completed (converted into an order) or closed.
//   - Cancellation is allowed from any non-terminal state.
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusPending   DocumentStatus = "pending"
	DocumentStatusApproved  DocumentStatus = "approved"
	DocumentStatusCompleted DocumentStatus = "completed"
	DocumentStatusCancelled DocumentStatus = "cancelled"
	DocumentStatusClosed    DocumentStatus = "closed"
)

var documentTransitions = map[DocumentStatus][]DocumentStatus{
	DocumentStatusDraft:     {DocumentStatusPending, DocumentStatusCancelled},
	DocumentStatusPending:   {DocumentStatusApproved, DocumentStatusCancelled},
	DocumentStatusApproved:  {DocumentStatusCompleted, DocumentStatusClosed, DocumentStatusCancelled},
	DocumentStatusCompleted: {DocumentStatusClosed},
}

// CanTransition reports whether a document may move from one status to another.
func (s DocumentStatus) CanTransition(to DocumentStatus) bool {
	for _, next := range documentTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusPending, DocumentStatusApproved,
		DocumentStatusCompleted, DocumentStatusCancelled, DocumentStatusClosed:
		return true
	}
	return false
}

var (
	// ErrClientNotSelected carries the exact message the dashboard shows when
	// a budget is submitted without a client.
	ErrClientNotSelected     = errors.New("Cliente no seleccionado")
	ErrDocumentCompanyID     = errors.New("document company_id is required")
	ErrDocumentInvalidStatus = errors.New("invalid document status")
)

// DocumentItem is one line of a budget/quote.
type DocumentItem struct {
	ProductCode string  `json:"product_code,omitempty" dynamodbav:"product_code,omitempty"`
	Description string  `json:"description" dynamodbav:"description"`
	Quantity    float64 `json:"quantity" dynamodbav:"quantity"`
	UnitPrice   float64 `json:"unit_price" dynamodbav:"unit_price"`
	TaxRate     float64 `json:"tax_rate" dynamodbav:"tax_rate"`
	IsExempt    bool    `json:"is_exempt" dynamodbav:"is_exempt"`
	TotalAmount float64 `json:"total_amount" dynamodbav:"total_amount"`
}

// Document is a budget/quote issued to a client.
//
// Monetary representation:
//   - TaxableAmount, TaxAmount and ExemptAmount are derived from the items,
//     rounded to 2 decimals; TotalAmount = taxable + tax + exempt exactly.
type Document struct {
	Base
	Number        string         `json:"number,omitempty" dynamodbav:"number,omitempty"`
	ClientID      string         `json:"client_id" dynamodbav:"client_id"`
	BranchID      string         `json:"branch_id,omitempty" dynamodbav:"branch_id,omitempty"`
	Status        DocumentStatus `json:"status" dynamodbav:"status"`
	IssueDate     string         `json:"issue_date,omitempty" dynamodbav:"issue_date,omitempty"`
	ValidUntil    string         `json:"valid_until,omitempty" dynamodbav:"valid_until,omitempty"`
	Items         []DocumentItem `json:"items" dynamodbav:"items"`
	TaxableAmount float64        `json:"taxable_amount" dynamodbav:"taxable_amount"`
	TaxAmount     float64        `json:"tax_amount" dynamodbav:"tax_amount"`
	ExemptAmount  float64        `json:"exempt_amount" dynamodbav:"exempt_amount"`
	TotalAmount   float64        `json:"total_amount" dynamodbav:"total_amount"`
	Notes         string         `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	Audit
}

func (d *Document) Validate() error {
	if strings.TrimSpace(d.CompanyID) == "" {
		return ErrDocumentCompanyID
	}
	if strings.TrimSpace(d.ClientID) == "" {
		return ErrClientNotSelected
	}
	if !d.Status.Valid() {
		return ErrDocumentInvalidStatus
	}
	for _, it := range d.Items {
		if it.Quantity < 0 || it.UnitPrice < 0 {
			return errors.New("item quantity and unit_price must be >= 0")
		}
	}
	return nil
}

// RecalculateTotals rebuilds the taxable/tax/exempt buckets from the items.
// Exempt lines accumulate into ExemptAmount only; everything else splits into
// net taxable plus tax at the line's rate. All buckets round to 2 decimals
// and the grand total is the exact sum of the rounded buckets.
func (d *Document) RecalculateTotals() {
	taxable, tax, exempt := splitLineTotals(documentLines(d.Items))
	d.TaxableAmount, _ = taxable.Float64()
	d.TaxAmount, _ = tax.Float64()
	d.ExemptAmount, _ = exempt.Float64()
	d.TotalAmount, _ = taxable.Add(tax).Add(exempt).Float64()

	for i := range d.Items {
		line := lineTotal(d.Items[i].Quantity, d.Items[i].UnitPrice)
		d.Items[i].TotalAmount, _ = line.Round(2).Float64()
	}
}

type taxLine struct {
	quantity  float64
	unitPrice float64
	taxRate   float64
	isExempt  bool
}

func documentLines(items []DocumentItem) []taxLine {
	lines := make([]taxLine, len(items))
	for i, it := range items {
		lines[i] = taxLine{quantity: it.Quantity, unitPrice: it.UnitPrice, taxRate: it.TaxRate, isExempt: it.IsExempt}
	}
	return lines
}

func lineTotal(quantity, unitPrice float64) decimal.Decimal {
	return decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice))
}

// splitLineTotals accumulates line totals into taxable/tax/exempt buckets,
// each rounded to 2 decimals after summation.
func splitLineTotals(lines []taxLine) (taxable, tax, exempt decimal.Decimal) {
	for _, l := range lines {
		total := lineTotal(l.quantity, l.unitPrice)
		if l.isExempt {
			exempt = exempt.Add(total)
			continue
		}
		taxable = taxable.Add(total)
		if l.taxRate > 0 {
			tax = tax.Add(total.Mul(decimal.NewFromFloat(l.taxRate).Div(decimal.NewFromInt(100))))
		}
	}
	return taxable.Round(2), tax.Round(2), exempt.Round(2)
}
