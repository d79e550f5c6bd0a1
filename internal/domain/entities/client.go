package entities

import (
	"errors"
	"strings"
)

var (
	ErrClientNameRequired = errors.New("client name is required")
	ErrClientCompanyID    = errors.New("client company_id is required")
)

// Client is a customer of the company.
//
// Storage model (DynamoDB):
//   - PK: id
//   - tenant scope: company_id (scan filter)
type Client struct {
	Base
	Name           string `json:"name" dynamodbav:"name"`
	TaxID          string `json:"tax_id,omitempty" dynamodbav:"tax_id,omitempty"`
	Email          string `json:"email,omitempty" dynamodbav:"email,omitempty"`
	Phone          string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Address        string `json:"address,omitempty" dynamodbav:"address,omitempty"`
	City           string `json:"city,omitempty" dynamodbav:"city,omitempty"`
	BusinessTypeID string `json:"business_type_id,omitempty" dynamodbav:"business_type_id,omitempty"`
	BranchID       string `json:"branch_id,omitempty" dynamodbav:"branch_id,omitempty"`
	CreditLimit    float64 `json:"credit_limit" dynamodbav:"credit_limit"`
	Notes          string `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	Active         bool   `json:"active" dynamodbav:"active"`
	Audit
}

func (c *Client) Validate() error {
	if strings.TrimSpace(c.CompanyID) == "" {
		return ErrClientCompanyID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrClientNameRequired
	}
	if c.CreditLimit < 0 {
		return errors.New("credit_limit must be >= 0")
	}
	return nil
}
