package response

import (
	"time"

	"gestion_xpto/internal/domain/entities"
)

// GoalResponse is a goal plus the derived progress figures; the dashboard
// never computes these itself.
type GoalResponse struct {
	entities.Goal
	ProgressPercentage float64 `json:"progress_percentage"`
	ExpectedProgress   float64 `json:"expected_progress"`
	IsOnTrack          bool    `json:"is_on_track"`
}

func FromGoal(g entities.Goal, now time.Time) GoalResponse {
	return GoalResponse{
		Goal:               g,
		ProgressPercentage: g.ProgressPercentage(),
		ExpectedProgress:   g.ExpectedProgress(now),
		IsOnTrack:          g.IsOnTrack(now),
	}
}

func FromGoals(goals []entities.Goal, now time.Time) []GoalResponse {
	out := make([]GoalResponse, len(goals))
	for i, g := range goals {
		out[i] = FromGoal(g, now)
	}
	return out
}
