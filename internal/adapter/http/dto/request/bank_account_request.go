package request

import "gestion_xpto/internal/domain/entities"

type CreateBankAccountRequest struct {
	CompanyID     string  `json:"company_id" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	BankName      string  `json:"bank_name"`
	AccountNumber string  `json:"account_number" binding:"required"`
	Currency      string  `json:"currency"`
	Balance       float64 `json:"balance"`
	ExternalCode  string  `json:"external_code"`
	SyncWithERP   bool    `json:"sync_with_erp"`
}

func (r CreateBankAccountRequest) ToEntity() entities.BankAccount {
	return entities.BankAccount{
		Base: entities.Base{
			CompanyID:    r.CompanyID,
			ExternalCode: r.ExternalCode,
			SyncWithERP:  r.SyncWithERP,
		},
		Name:          r.Name,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		Currency:      r.Currency,
		Balance:       r.Balance,
		Active:        true,
	}
}

type UpdateBankAccountRequest struct {
	Name          *string  `json:"name"`
	BankName      *string  `json:"bank_name"`
	AccountNumber *string  `json:"account_number"`
	Currency      *string  `json:"currency"`
	Balance       *float64 `json:"balance"`
	ExternalCode  *string  `json:"external_code"`
	SyncWithERP   *bool    `json:"sync_with_erp"`
	Active        *bool    `json:"active"`
}

func (r UpdateBankAccountRequest) Apply(b *entities.BankAccount) error {
	setString(&b.Name, r.Name)
	setString(&b.BankName, r.BankName)
	setString(&b.AccountNumber, r.AccountNumber)
	setString(&b.Currency, r.Currency)
	setFloat(&b.Balance, r.Balance)
	setString(&b.ExternalCode, r.ExternalCode)
	setBool(&b.SyncWithERP, r.SyncWithERP)
	setBool(&b.Active, r.Active)
	return nil
}
