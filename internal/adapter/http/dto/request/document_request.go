package request

import "gestion_xpto/internal/domain/entities"

type DocumentItemRequest struct {
	ProductCode string  `json:"product_code"`
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxRate     float64 `json:"tax_rate"`
	IsExempt    bool    `json:"is_exempt"`
}

func (r DocumentItemRequest) toEntity() entities.DocumentItem {
	return entities.DocumentItem{
		ProductCode: r.ProductCode,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		TaxRate:     r.TaxRate,
		IsExempt:    r.IsExempt,
	}
}

// CreateDocumentRequest creates a budget/quote. Totals are never accepted
// from the caller; the use case derives them from the items.
type CreateDocumentRequest struct {
	CompanyID    string                `json:"company_id" binding:"required"`
	ClientID     string                `json:"client_id"`
	BranchID     string                `json:"branch_id"`
	Number       string                `json:"number"`
	IssueDate    string                `json:"issue_date"`
	ValidUntil   string                `json:"valid_until"`
	Items        []DocumentItemRequest `json:"items"`
	Notes        string                `json:"notes"`
	ExternalCode string                `json:"external_code"`
	SyncWithERP  bool                  `json:"sync_with_erp"`
}

func (r CreateDocumentRequest) ToEntity() entities.Document {
	items := make([]entities.DocumentItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = it.toEntity()
	}
	return entities.Document{
		Base: entities.Base{
			CompanyID:    r.CompanyID,
			ExternalCode: r.ExternalCode,
			SyncWithERP:  r.SyncWithERP,
		},
		Number:     r.Number,
		ClientID:   r.ClientID,
		BranchID:   r.BranchID,
		Status:     entities.DocumentStatusDraft,
		IssueDate:  r.IssueDate,
		ValidUntil: r.ValidUntil,
		Items:      items,
		Notes:      r.Notes,
	}
}

type UpdateDocumentRequest struct {
	ClientID     *string                `json:"client_id"`
	BranchID     *string                `json:"branch_id"`
	Number       *string                `json:"number"`
	IssueDate    *string                `json:"issue_date"`
	ValidUntil   *string                `json:"valid_until"`
	Items        *[]DocumentItemRequest `json:"items"`
	Notes        *string                `json:"notes"`
	ExternalCode *string                `json:"external_code"`
	SyncWithERP  *bool                  `json:"sync_with_erp"`
}

func (r UpdateDocumentRequest) Apply(d *entities.Document) error {
	setString(&d.ClientID, r.ClientID)
	setString(&d.BranchID, r.BranchID)
	setString(&d.Number, r.Number)
	setString(&d.IssueDate, r.IssueDate)
	setString(&d.ValidUntil, r.ValidUntil)
	setString(&d.Notes, r.Notes)
	setString(&d.ExternalCode, r.ExternalCode)
	setBool(&d.SyncWithERP, r.SyncWithERP)
	if r.Items != nil {
		items := make([]entities.DocumentItem, len(*r.Items))
		for i, it := range *r.Items {
			items[i] = it.toEntity()
		}
		d.Items = items
	}
	return nil
}

// ChangeStatusRequest drives the soft status transitions exposed over PATCH.
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
