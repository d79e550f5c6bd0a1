package entities

import (
	"math"
	"testing"
)

func TestOrderValidate(t *testing.T) {
	t.Run("needs a party", func(t *testing.T) {
		o := &Order{Base: Base{CompanyID: "co-1"}, Status: OrderStatusPending}
		if err := o.Validate(); err != ErrOrderPartyRequired {
			t.Fatalf("expected ErrOrderPartyRequired, got %v", err)
		}
	})

	t.Run("supplier alone is enough", func(t *testing.T) {
		o := &Order{Base: Base{CompanyID: "co-1"}, SupplierID: "sup-1", Status: OrderStatusPending}
		if err := o.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderRecalculateTotals(t *testing.T) {
	o := &Order{
		Items: []OrderItem{
			{Description: "a", Quantity: 1, UnitPrice: 33.33, TaxRate: 21},
			{Description: "b", Quantity: 2, UnitPrice: 10, IsExempt: true},
		},
	}
	o.RecalculateTotals()

	if math.Abs(o.TaxableAmount-33.33) > 1e-9 {
		t.Fatalf("expected taxable 33.33, got %v", o.TaxableAmount)
	}
	if math.Abs(o.TaxAmount-7) > 1e-9 {
		t.Fatalf("expected tax 7, got %v", o.TaxAmount)
	}
	if math.Abs(o.ExemptAmount-20) > 1e-9 {
		t.Fatalf("expected exempt 20, got %v", o.ExemptAmount)
	}
	if math.Abs(o.TotalAmount-(o.TaxableAmount+o.TaxAmount+o.ExemptAmount)) > 1e-9 {
		t.Fatalf("total %v != sum of buckets", o.TotalAmount)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	if !OrderStatusPending.CanTransition(OrderStatusConfirmed) {
		t.Fatalf("pending -> confirmed should be allowed")
	}
	if !OrderStatusConfirmed.CanTransition(OrderStatusDelivered) {
		t.Fatalf("confirmed -> delivered should be allowed")
	}
	if OrderStatusPending.CanTransition(OrderStatusDelivered) {
		t.Fatalf("pending -> delivered should be denied")
	}
	if OrderStatusDelivered.CanTransition(OrderStatusPending) {
		t.Fatalf("delivered is terminal")
	}
	if OrderStatusCancelled.CanTransition(OrderStatusConfirmed) {
		t.Fatalf("cancelled is terminal")
	}
}
