package request

import "gestion_xpto/internal/domain/entities"

type CreateClientRequest struct {
	CompanyID      string  `json:"company_id" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	TaxID          string  `json:"tax_id"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	BusinessTypeID string  `json:"business_type_id"`
	BranchID       string  `json:"branch_id"`
	CreditLimit    float64 `json:"credit_limit"`
	Notes          string  `json:"notes"`
	ExternalCode   string  `json:"external_code"`
	SyncWithERP    bool    `json:"sync_with_erp"`
}

func (r CreateClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Base: entities.Base{
			CompanyID:    r.CompanyID,
			ExternalCode: r.ExternalCode,
			SyncWithERP:  r.SyncWithERP,
		},
		Name:           r.Name,
		TaxID:          r.TaxID,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		City:           r.City,
		BusinessTypeID: r.BusinessTypeID,
		BranchID:       r.BranchID,
		CreditLimit:    r.CreditLimit,
		Notes:          r.Notes,
		Active:         true,
	}
}

// UpdateClientRequest is a partial patch; nil fields stay untouched.
type UpdateClientRequest struct {
	Name           *string  `json:"name"`
	TaxID          *string  `json:"tax_id"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
	BusinessTypeID *string  `json:"business_type_id"`
	BranchID       *string  `json:"branch_id"`
	CreditLimit    *float64 `json:"credit_limit"`
	Notes          *string  `json:"notes"`
	ExternalCode   *string  `json:"external_code"`
	SyncWithERP    *bool    `json:"sync_with_erp"`
	Active         *bool    `json:"active"`
}

func (r UpdateClientRequest) Apply(c *entities.Client) error {
	setString(&c.Name, r.Name)
	setString(&c.TaxID, r.TaxID)
	setString(&c.Email, r.Email)
	setString(&c.Phone, r.Phone)
	setString(&c.Address, r.Address)
	setString(&c.City, r.City)
	setString(&c.BusinessTypeID, r.BusinessTypeID)
	setString(&c.BranchID, r.BranchID)
	setFloat(&c.CreditLimit, r.CreditLimit)
	setString(&c.Notes, r.Notes)
	setString(&c.ExternalCode, r.ExternalCode)
	setBool(&c.SyncWithERP, r.SyncWithERP)
	setBool(&c.Active, r.Active)
	return nil
}
