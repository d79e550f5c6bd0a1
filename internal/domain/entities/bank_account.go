package entities

import (
	"errors"
	"strings"
)

var (
	ErrBankAccountCompanyID = errors.New("bank account company_id is required")
	ErrBankAccountName      = errors.New("bank account name is required")
	ErrBankAccountNumber    = errors.New("bank account number is required")
)

// BankAccount is one of the company's bank accounts; Balance is maintained
// elsewhere (ERP sync) and treated as opaque here.
type BankAccount struct {
	Base
	Name          string  `json:"name" dynamodbav:"name"`
	BankName      string  `json:"bank_name" dynamodbav:"bank_name"`
	AccountNumber string  `json:"account_number" dynamodbav:"account_number"`
	Currency      string  `json:"currency,omitempty" dynamodbav:"currency,omitempty"`
	Balance       float64 `json:"balance" dynamodbav:"balance"`
	Active        bool    `json:"active" dynamodbav:"active"`
	Audit
}

func (b *BankAccount) Validate() error {
	if strings.TrimSpace(b.CompanyID) == "" {
		return ErrBankAccountCompanyID
	}
	if strings.TrimSpace(b.Name) == "" {
		return ErrBankAccountName
	}
	if strings.TrimSpace(b.AccountNumber) == "" {
		return ErrBankAccountNumber
	}
	return nil
}
