package entities

import (
	"errors"
	"strings"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusDelivered, OrderStatusCancelled},
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

var (
	ErrOrderCompanyID     = errors.New("order company_id is required")
	ErrOrderPartyRequired = errors.New("order requires a client or a supplier")
	ErrOrderInvalidStatus = errors.New("invalid order status")
)

// OrderItem is one purchased/sold line. TotalAmount is derived, never trusted
// from the caller.
type OrderItem struct {
	ProductCode string  `json:"product_code,omitempty" dynamodbav:"product_code,omitempty"`
	Description string  `json:"description" dynamodbav:"description"`
	Quantity    float64 `json:"quantity" dynamodbav:"quantity"`
	UnitPrice   float64 `json:"unit_price" dynamodbav:"unit_price"`
	TaxRate     float64 `json:"tax_rate" dynamodbav:"tax_rate"`
	IsExempt    bool    `json:"is_exempt" dynamodbav:"is_exempt"`
	TotalAmount float64 `json:"total_amount" dynamodbav:"total_amount"`
}

// Order is a purchase (supplier set) or sale (client set) order. It may
// reference the approved budget document it was created from.
type Order struct {
	Base
	Number        string      `json:"number,omitempty" dynamodbav:"number,omitempty"`
	ClientID      string      `json:"client_id,omitempty" dynamodbav:"client_id,omitempty"`
	SupplierID    string      `json:"supplier_id,omitempty" dynamodbav:"supplier_id,omitempty"`
	DocumentID    string      `json:"document_id,omitempty" dynamodbav:"document_id,omitempty"`
	BranchID      string      `json:"branch_id,omitempty" dynamodbav:"branch_id,omitempty"`
	Status        OrderStatus `json:"status" dynamodbav:"status"`
	OrderDate     string      `json:"order_date,omitempty" dynamodbav:"order_date,omitempty"`
	DeliveryDate  string      `json:"delivery_date,omitempty" dynamodbav:"delivery_date,omitempty"`
	Items         []OrderItem `json:"items" dynamodbav:"items"`
	TaxableAmount float64     `json:"taxable_amount" dynamodbav:"taxable_amount"`
	TaxAmount     float64     `json:"tax_amount" dynamodbav:"tax_amount"`
	ExemptAmount  float64     `json:"exempt_amount" dynamodbav:"exempt_amount"`
	TotalAmount   float64     `json:"total_amount" dynamodbav:"total_amount"`
	Notes         string      `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	Audit
}

func (o *Order) Validate() error {
	if strings.TrimSpace(o.CompanyID) == "" {
		return ErrOrderCompanyID
	}
	if strings.TrimSpace(o.ClientID) == "" && strings.TrimSpace(o.SupplierID) == "" {
		return ErrOrderPartyRequired
	}
	if !o.Status.Valid() {
		return ErrOrderInvalidStatus
	}
	for _, it := range o.Items {
		if it.Quantity < 0 || it.UnitPrice < 0 {
			return errors.New("item quantity and unit_price must be >= 0")
		}
	}
	return nil
}

// RecalculateTotals rebuilds the order's taxable/exempt/tax buckets from its
// items, same rounding contract as Document.RecalculateTotals.
func (o *Order) RecalculateTotals() {
	lines := make([]taxLine, len(o.Items))
	for i, it := range o.Items {
		lines[i] = taxLine{quantity: it.Quantity, unitPrice: it.UnitPrice, taxRate: it.TaxRate, isExempt: it.IsExempt}
	}
	taxable, tax, exempt := splitLineTotals(lines)
	o.TaxableAmount, _ = taxable.Float64()
	o.TaxAmount, _ = tax.Float64()
	o.ExemptAmount, _ = exempt.Float64()
	o.TotalAmount, _ = taxable.Add(tax).Add(exempt).Float64()

	for i := range o.Items {
		o.Items[i].TotalAmount, _ = lineTotal(o.Items[i].Quantity, o.Items[i].UnitPrice).Round(2).Float64()
	}
}
