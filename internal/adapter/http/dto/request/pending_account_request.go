package request

import (
	"encoding/json"
	"time"

	"gestion_xpto/internal/domain/entities"
)

type CreatePendingAccountRequest struct {
	CompanyID      string    `json:"company_id" binding:"required"`
	AccountType    string    `json:"account_type" binding:"required"`
	ClientID       string    `json:"client_id"`
	SupplierID     string    `json:"supplier_id"`
	DocumentID     string    `json:"document_id"`
	OrderID        string    `json:"order_id"`
	Description    string    `json:"description"`
	OriginalAmount float64   `json:"original_amount"`
	PaidAmount     float64   `json:"paid_amount"`
	DueDate        time.Time `json:"due_date" binding:"required"`
	ExternalCode   string    `json:"external_code"`
	SyncWithERP    bool      `json:"sync_with_erp"`
}

func (r CreatePendingAccountRequest) ToEntity() entities.PendingAccount {
	return entities.PendingAccount{
		Base: entities.Base{
			CompanyID:    r.CompanyID,
			ExternalCode: r.ExternalCode,
			SyncWithERP:  r.SyncWithERP,
		},
		AccountType:    entities.AccountType(r.AccountType),
		ClientID:       r.ClientID,
		SupplierID:     r.SupplierID,
		DocumentID:     r.DocumentID,
		OrderID:        r.OrderID,
		Description:    r.Description,
		OriginalAmount: r.OriginalAmount,
		PaidAmount:     r.PaidAmount,
		DueDate:        r.DueDate,
	}
}

type UpdatePendingAccountRequest struct {
	Description    *string    `json:"description"`
	OriginalAmount *float64   `json:"original_amount"`
	PaidAmount     *float64   `json:"paid_amount"`
	DueDate        *time.Time `json:"due_date"`
	ExternalCode   *string    `json:"external_code"`
	SyncWithERP    *bool      `json:"sync_with_erp"`
}

func (r UpdatePendingAccountRequest) Apply(a *entities.PendingAccount) error {
	setString(&a.Description, r.Description)
	setFloat(&a.OriginalAmount, r.OriginalAmount)
	setFloat(&a.PaidAmount, r.PaidAmount)
	if r.DueDate != nil {
		a.DueDate = *r.DueDate
	}
	setString(&a.ExternalCode, r.ExternalCode)
	setBool(&a.SyncWithERP, r.SyncWithERP)
	return nil
}

// ChargeRequest carries the gateway payload for charging a receivable.
// The amount is taken from the stored balance, never from this body.
type ChargeRequest struct {
	Payment json.RawMessage `json:"payment"`
}
