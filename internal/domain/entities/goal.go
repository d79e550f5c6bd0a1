package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrGoalCompanyID    = errors.New("goal company_id is required")
	ErrGoalNameRequired = errors.New("goal name is required")
	ErrGoalDateOrder    = errors.New("goal start_date must precede end_date")
)

// Goal is a sales target over a date range, tracked by amount and by
// quantity. Progress fields are derived on read, never stored.
type Goal struct {
	Base
	Name            string    `json:"name" dynamodbav:"name"`
	BranchID        string    `json:"branch_id,omitempty" dynamodbav:"branch_id,omitempty"`
	AssigneeID      string    `json:"assignee_id,omitempty" dynamodbav:"assignee_id,omitempty"`
	StartDate       time.Time `json:"start_date" dynamodbav:"start_date"`
	EndDate         time.Time `json:"end_date" dynamodbav:"end_date"`
	TargetAmount    float64   `json:"target_amount" dynamodbav:"target_amount"`
	TargetQuantity  float64   `json:"target_quantity" dynamodbav:"target_quantity"`
	CurrentAmount   float64   `json:"current_amount" dynamodbav:"current_amount"`
	CurrentQuantity float64   `json:"current_quantity" dynamodbav:"current_quantity"`
	Notes           string    `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	Audit
}

func (g *Goal) Validate() error {
	if strings.TrimSpace(g.CompanyID) == "" {
		return ErrGoalCompanyID
	}
	if strings.TrimSpace(g.Name) == "" {
		return ErrGoalNameRequired
	}
	if g.TargetAmount < 0 || g.TargetQuantity < 0 || g.CurrentAmount < 0 || g.CurrentQuantity < 0 {
		return errors.New("goal amounts and quantities must be >= 0")
	}
	if !g.StartDate.Before(g.EndDate) {
		return ErrGoalDateOrder
	}
	return nil
}

// ProgressPercentage is the goal's overall completion: the lesser of the
// amount progress and the quantity progress, so a goal only reads as done
// when both dimensions are. A zero target on one dimension leaves the other
// one authoritative.
func (g *Goal) ProgressPercentage() float64 {
	amountPct, hasAmount := progressPct(g.CurrentAmount, g.TargetAmount)
	qtyPct, hasQty := progressPct(g.CurrentQuantity, g.TargetQuantity)
	switch {
	case hasAmount && hasQty:
		if qtyPct < amountPct {
			return qtyPct
		}
		return amountPct
	case hasAmount:
		return amountPct
	case hasQty:
		return qtyPct
	}
	return 0
}

func progressPct(current, target float64) (float64, bool) {
	if target <= 0 {
		return 0, false
	}
	return current / target * 100, true
}

// ExpectedProgress is the time-elapsed share of the goal window, in percent,
// clamped to [0, 100].
func (g *Goal) ExpectedProgress(now time.Time) float64 {
	total := g.EndDate.Sub(g.StartDate)
	if total <= 0 {
		return 100
	}
	elapsed := now.Sub(g.StartDate)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= total {
		return 100
	}
	return float64(elapsed) / float64(total) * 100
}

// IsOnTrack reports whether actual progress is at least 80% of the
// time-elapsed expected progress.
func (g *Goal) IsOnTrack(now time.Time) bool {
	expected := g.ExpectedProgress(now)
	if expected == 0 {
		return true
	}
	return g.ProgressPercentage() >= 0.8*expected
}
