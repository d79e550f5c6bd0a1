package request

import (
	"time"

	"gestion_xpto/internal/domain/entities"
)

type CreateGoalRequest struct {
	CompanyID       string    `json:"company_id" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	BranchID        string    `json:"branch_id"`
	AssigneeID      string    `json:"assignee_id"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	TargetAmount    float64   `json:"target_amount"`
	TargetQuantity  float64   `json:"target_quantity"`
	CurrentAmount   float64   `json:"current_amount"`
	CurrentQuantity float64   `json:"current_quantity"`
	Notes           string    `json:"notes"`
	ExternalCode    string    `json:"external_code"`
	SyncWithERP     bool      `json:"sync_with_erp"`
}

func (r CreateGoalRequest) ToEntity() entities.Goal {
	return entities.Goal{
		Base: entities.Base{
			CompanyID:    r.CompanyID,
			ExternalCode: r.ExternalCode,
			SyncWithERP:  r.SyncWithERP,
		},
		Name:            r.Name,
		BranchID:        r.BranchID,
		AssigneeID:      r.AssigneeID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		TargetAmount:    r.TargetAmount,
		TargetQuantity:  r.TargetQuantity,
		CurrentAmount:   r.CurrentAmount,
		CurrentQuantity: r.CurrentQuantity,
		Notes:           r.Notes,
	}
}

type UpdateGoalRequest struct {
	Name            *string    `json:"name"`
	BranchID        *string    `json:"branch_id"`
	AssigneeID      *string    `json:"assignee_id"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	TargetAmount    *float64   `json:"target_amount"`
	TargetQuantity  *float64   `json:"target_quantity"`
	CurrentAmount   *float64   `json:"current_amount"`
	CurrentQuantity *float64   `json:"current_quantity"`
	Notes           *string    `json:"notes"`
	ExternalCode    *string    `json:"external_code"`
	SyncWithERP     *bool      `json:"sync_with_erp"`
}

func (r UpdateGoalRequest) Apply(g *entities.Goal) error {
	setString(&g.Name, r.Name)
	setString(&g.BranchID, r.BranchID)
	setString(&g.AssigneeID, r.AssigneeID)
	if r.StartDate != nil {
		g.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		g.EndDate = *r.EndDate
	}
	setFloat(&g.TargetAmount, r.TargetAmount)
	setFloat(&g.TargetQuantity, r.TargetQuantity)
	setFloat(&g.CurrentAmount, r.CurrentAmount)
	setFloat(&g.CurrentQuantity, r.CurrentQuantity)
	setString(&g.Notes, r.Notes)
	setString(&g.ExternalCode, r.ExternalCode)
	setBool(&g.SyncWithERP, r.SyncWithERP)
	return nil
}
