package entities

import (
	"errors"
	"strings"
)

var (
	ErrSupplierNameRequired = errors.New("supplier name is required")
	ErrSupplierCompanyID    = errors.New("supplier company_id is required")
)

// Supplier is a vendor the company buys from. Code is an advisory-unique
// short identifier used by purchasing; uniqueness is pre-checked in the use
// case before create but only the server constraint is authoritative.
type Supplier struct {
	Base
	Code        string  `json:"code" dynamodbav:"code"`
	Name        string  `json:"name" dynamodbav:"name"`
	TaxID       string  `json:"tax_id,omitempty" dynamodbav:"tax_id,omitempty"`
	Email       string  `json:"email,omitempty" dynamodbav:"email,omitempty"`
	Phone       string  `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Address     string  `json:"address,omitempty" dynamodbav:"address,omitempty"`
	ContactName string  `json:"contact_name,omitempty" dynamodbav:"contact_name,omitempty"`
	PaymentDays int     `json:"payment_days" dynamodbav:"payment_days"`
	Balance     float64 `json:"balance" dynamodbav:"balance"`
	Notes       string  `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	Active      bool    `json:"active" dynamodbav:"active"`
	Audit
}

func (s *Supplier) Validate() error {
	if strings.TrimSpace(s.CompanyID) == "" {
		return ErrSupplierCompanyID
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrSupplierNameRequired
	}
	if s.PaymentDays < 0 {
		return errors.New("payment_days must be >= 0")
	}
	return nil
}
