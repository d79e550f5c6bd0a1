package request

import "gestion_xpto/internal/domain/entities"

type CreateSupplierRequest struct {
	CompanyID    string  `json:"company_id" binding:"required"`
	Code         string  `json:"code"`
	Name         string  `json:"name" binding:"required"`
	TaxID        string  `json:"tax_id"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	ContactName  string  `json:"contact_name"`
	PaymentDays  int     `json:"payment_days"`
	Balance      float64 `json:"balance"`
	Notes        string  `json:"notes"`
	ExternalCode string  `json:"external_code"`
	SyncWithERP  bool    `json:"sync_with_erp"`
}

func (r CreateSupplierRequest) ToEntity() entities.Supplier {
	return entities.Supplier{
		Base: entities.Base{
			CompanyID:    r.CompanyID,
			ExternalCode: r.ExternalCode,
			SyncWithERP:  r.SyncWithERP,
		},
		Code:        r.Code,
		Name:        r.Name,
		TaxID:       r.TaxID,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		ContactName: r.ContactName,
		PaymentDays: r.PaymentDays,
		Balance:     r.Balance,
		Notes:       r.Notes,
		Active:      true,
	}
}

type UpdateSupplierRequest struct {
	Code         *string  `json:"code"`
	Name         *string  `json:"name"`
	TaxID        *string  `json:"tax_id"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	ContactName  *string  `json:"contact_name"`
	PaymentDays  *int     `json:"payment_days"`
	Balance      *float64 `json:"balance"`
	Notes        *string  `json:"notes"`
	ExternalCode *string  `json:"external_code"`
	SyncWithERP  *bool    `json:"sync_with_erp"`
	Active       *bool    `json:"active"`
}

func (r UpdateSupplierRequest) Apply(s *entities.Supplier) error {
	setString(&s.Code, r.Code)
	setString(&s.Name, r.Name)
	setString(&s.TaxID, r.TaxID)
	setString(&s.Email, r.Email)
	setString(&s.Phone, r.Phone)
	setString(&s.Address, r.Address)
	setString(&s.ContactName, r.ContactName)
	setInt(&s.PaymentDays, r.PaymentDays)
	setFloat(&s.Balance, r.Balance)
	setString(&s.Notes, r.Notes)
	setString(&s.ExternalCode, r.ExternalCode)
	setBool(&s.SyncWithERP, r.SyncWithERP)
	setBool(&s.Active, r.Active)
	return nil
}
