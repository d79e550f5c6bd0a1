package entities

import (
	"math"
	"testing"
)

func TestDocumentRecalculateTotals(t *testing.T) {
	d := &Document{
		Base:     Base{CompanyID: "co-1"},
		ClientID: "cl-1",
		Status:   DocumentStatusDraft,
		Items: []DocumentItem{
			{Description: "taxed", Quantity: 2, UnitPrice: 100, TaxRate: 21},
			{Description: "exempt", Quantity: 1, UnitPrice: 50, TaxRate: 21, IsExempt: true},
			{Description: "zero rate", Quantity: 3, UnitPrice: 10},
		},
	}
	d.RecalculateTotals()

	if math.Abs(d.TaxableAmount-230) > 1e-9 {
		t.Fatalf("expected taxable 230, got %v", d.TaxableAmount)
	}
	if math.Abs(d.TaxAmount-42) > 1e-9 {
		t.Fatalf("expected tax 42, got %v", d.TaxAmount)
	}
	if math.Abs(d.ExemptAmount-50) > 1e-9 {
		t.Fatalf("expected exempt 50, got %v", d.ExemptAmount)
	}
	if d.TotalAmount != d.TaxableAmount+d.TaxAmount+d.ExemptAmount {
		t.Fatalf("total %v != taxable+tax+exempt %v", d.TotalAmount, d.TaxableAmount+d.TaxAmount+d.ExemptAmount)
	}
	if math.Abs(d.Items[0].TotalAmount-200) > 1e-9 {
		t.Fatalf("expected line total 200, got %v", d.Items[0].TotalAmount)
	}
}

func TestDocumentExemptNeverTaxable(t *testing.T) {
	d := &Document{
		Items: []DocumentItem{
			{Description: "exempt", Quantity: 4, UnitPrice: 25.25, TaxRate: 10.5, IsExempt: true},
		},
	}
	d.RecalculateTotals()

	if d.TaxableAmount != 0 || d.TaxAmount != 0 {
		t.Fatalf("exempt line leaked into taxable buckets: %+v", d)
	}
	if math.Abs(d.ExemptAmount-101) > 1e-9 {
		t.Fatalf("expected exempt 101, got %v", d.ExemptAmount)
	}
}

func TestDocumentValidate(t *testing.T) {
	t.Run("client not selected", func(t *testing.T) {
		d := &Document{Base: Base{CompanyID: "co-1"}, Status: DocumentStatusDraft}
		err := d.Validate()
		if err != ErrClientNotSelected {
			t.Fatalf("expected ErrClientNotSelected, got %v", err)
		}
		if err.Error() != "Cliente no seleccionado" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		d := &Document{Base: Base{CompanyID: "co-1"}, ClientID: "cl-1", Status: "archived"}
		if err := d.Validate(); err != ErrDocumentInvalidStatus {
			t.Fatalf("expected ErrDocumentInvalidStatus, got %v", err)
		}
	})
}

func TestDocumentStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to DocumentStatus }{
		{DocumentStatusDraft, DocumentStatusPending},
		{DocumentStatusDraft, DocumentStatusCancelled},
		{DocumentStatusPending, DocumentStatusApproved},
		{DocumentStatusApproved, DocumentStatusCompleted},
		{DocumentStatusApproved, DocumentStatusClosed},
		{DocumentStatusCompleted, DocumentStatusClosed},
	}
	for _, c := range allowed {
		if !c.from.CanTransition(c.to) {
			t.Fatalf("%s -> %s should be allowed", c.from, c.to)
		}
	}

	denied := []struct{ from, to DocumentStatus }{
		{DocumentStatusDraft, DocumentStatusApproved},
		{DocumentStatusApproved, DocumentStatusDraft},
		{DocumentStatusCancelled, DocumentStatusPending},
		{DocumentStatusClosed, DocumentStatusApproved},
	}
	for _, c := range denied {
		if c.from.CanTransition(c.to) {
			t.Fatalf("%s -> %s should be denied", c.from, c.to)
		}
	}
}
