package entities

import (
	"math"
	"testing"
	"time"
)

func TestPendingAccountRecalculateBalance(t *testing.T) {
	t.Run("partial payment", func(t *testing.T) {
		p := &PendingAccount{OriginalAmount: 100.50, PaidAmount: 40.25}
		p.RecalculateBalance()
		if math.Abs(p.BalanceDue-60.25) > 1e-9 {
			t.Fatalf("expected 60.25, got %v", p.BalanceDue)
		}
		if p.Settled {
			t.Fatalf("should not be settled")
		}
	})

	t.Run("overpayment clamps to zero and settles", func(t *testing.T) {
		p := &PendingAccount{OriginalAmount: 100, PaidAmount: 120}
		p.RecalculateBalance()
		if p.BalanceDue != 0 {
			t.Fatalf("expected 0, got %v", p.BalanceDue)
		}
		if !p.Settled {
			t.Fatalf("expected settled")
		}
	})

	t.Run("float drift rounds to cents", func(t *testing.T) {
		p := &PendingAccount{OriginalAmount: 0.3, PaidAmount: 0.1}
		p.RecalculateBalance()
		if p.BalanceDue != 0.2 {
			t.Fatalf("expected 0.2, got %v", p.BalanceDue)
		}
	})
}

func TestPendingAccountIsOverdue(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	p := &PendingAccount{BalanceDue: 50, DueDate: now.AddDate(0, 0, -1)}
	if !p.IsOverdue(now) {
		t.Fatalf("expected overdue")
	}

	p.Settled = true
	if p.IsOverdue(now) {
		t.Fatalf("settled account is never overdue")
	}

	future := &PendingAccount{BalanceDue: 50, DueDate: now.AddDate(0, 0, 1)}
	if future.IsOverdue(now) {
		t.Fatalf("account due tomorrow is not overdue")
	}
}

func TestSummarizePending(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	accounts := []PendingAccount{
		{AccountType: AccountTypeReceivable, BalanceDue: 100.10, DueDate: now.AddDate(0, 0, 10)},
		{AccountType: AccountTypeReceivable, BalanceDue: 49.90, DueDate: now.AddDate(0, 0, -5)},
		{AccountType: AccountTypePayable, BalanceDue: 200, DueDate: now.AddDate(0, 0, 10)},
		{AccountType: AccountTypePayable, BalanceDue: 25.50, DueDate: now.AddDate(0, 0, -1)},
	}

	totals := SummarizePending(accounts, now)
	if math.Abs(totals.TotalReceivable-150) > 1e-9 {
		t.Fatalf("expected receivable 150, got %v", totals.TotalReceivable)
	}
	if math.Abs(totals.TotalPayable-225.50) > 1e-9 {
		t.Fatalf("expected payable 225.50, got %v", totals.TotalPayable)
	}
	if math.Abs(totals.TotalOverdue-75.40) > 1e-9 {
		t.Fatalf("expected overdue 75.40, got %v", totals.TotalOverdue)
	}
	if totals.CountReceivable != 2 || totals.CountPayable != 2 || totals.CountOverdue != 2 {
		t.Fatalf("unexpected counts: %+v", totals)
	}
}

func TestSummarizePendingOrderInvariant(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	accounts := []PendingAccount{
		{AccountType: AccountTypeReceivable, BalanceDue: 10.01, DueDate: now.AddDate(0, 0, 1)},
		{AccountType: AccountTypePayable, BalanceDue: 20.02, DueDate: now.AddDate(0, 0, 1)},
		{AccountType: AccountTypeReceivable, BalanceDue: 30.03, DueDate: now.AddDate(0, 0, -1)},
	}
	reversed := []PendingAccount{accounts[2], accounts[1], accounts[0]}

	a := SummarizePending(accounts, now)
	b := SummarizePending(reversed, now)
	if a != b {
		t.Fatalf("totals changed under reordering: %+v vs %+v", a, b)
	}
}

func TestPendingAccountValidate(t *testing.T) {
	t.Run("bad type", func(t *testing.T) {
		p := &PendingAccount{Base: Base{CompanyID: "co-1"}, AccountType: "loan"}
		if err := p.Validate(); err != ErrPendingAccountType {
			t.Fatalf("expected ErrPendingAccountType, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		p := &PendingAccount{Base: Base{CompanyID: "co-1"}, AccountType: AccountTypeReceivable, OriginalAmount: -1}
		if err := p.Validate(); err != ErrPendingAccountAmount {
			t.Fatalf("expected ErrPendingAccountAmount, got %v", err)
		}
	})
}
