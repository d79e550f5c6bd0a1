package entities

import (
	"math"
	"testing"
	"time"
)

func TestGoalProgressPercentage(t *testing.T) {
	t.Run("lesser dimension wins", func(t *testing.T) {
		g := &Goal{
			TargetAmount:    100000,
			TargetQuantity:  500,
			CurrentAmount:   105000,
			CurrentQuantity: 520,
		}
		// amount 105%, quantity 104%
		if got := g.ProgressPercentage(); math.Abs(got-104) > 1e-9 {
			t.Fatalf("expected 104, got %v", got)
		}
	})

	t.Run("zero quantity target leaves amount authoritative", func(t *testing.T) {
		g := &Goal{TargetAmount: 1000, CurrentAmount: 250}
		if got := g.ProgressPercentage(); math.Abs(got-25) > 1e-9 {
			t.Fatalf("expected 25, got %v", got)
		}
	})

	t.Run("no targets", func(t *testing.T) {
		g := &Goal{}
		if got := g.ProgressPercentage(); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestGoalExpectedProgress(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	g := &Goal{StartDate: start, EndDate: end}

	t.Run("before window", func(t *testing.T) {
		if got := g.ExpectedProgress(start.Add(-time.Hour)); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("midpoint", func(t *testing.T) {
		mid := start.Add(end.Sub(start) / 2)
		if got := g.ExpectedProgress(mid); math.Abs(got-50) > 1e-9 {
			t.Fatalf("expected 50, got %v", got)
		}
	})

	t.Run("after window clamps to 100", func(t *testing.T) {
		if got := g.ExpectedProgress(end.Add(time.Hour)); got != 100 {
			t.Fatalf("expected 100, got %v", got)
		}
	})
}

func TestGoalIsOnTrack(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	mid := start.Add(end.Sub(start) / 2)

	t.Run("at 80 percent of expected", func(t *testing.T) {
		// Expected 50 at midpoint; 40% actual is exactly on the line.
		g := &Goal{StartDate: start, EndDate: end, TargetAmount: 100, CurrentAmount: 40}
		if !g.IsOnTrack(mid) {
			t.Fatalf("expected on track")
		}
	})

	t.Run("below the line", func(t *testing.T) {
		g := &Goal{StartDate: start, EndDate: end, TargetAmount: 100, CurrentAmount: 30}
		if g.IsOnTrack(mid) {
			t.Fatalf("expected off track")
		}
	})

	t.Run("window not started", func(t *testing.T) {
		g := &Goal{StartDate: start, EndDate: end, TargetAmount: 100}
		if !g.IsOnTrack(start.Add(-time.Hour)) {
			t.Fatalf("expected on track before the window opens")
		}
	})
}

func TestGoalValidate(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("date order", func(t *testing.T) {
		g := &Goal{
			Base:      Base{CompanyID: "co-1"},
			Name:      "Q1",
			StartDate: start,
			EndDate:   start,
		}
		if err := g.Validate(); err != ErrGoalDateOrder {
			t.Fatalf("expected ErrGoalDateOrder, got %v", err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		g := &Goal{
			Base:      Base{CompanyID: "co-1"},
			Name:      "Q1",
			StartDate: start,
			EndDate:   start.AddDate(0, 3, 0),
		}
		if err := g.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
