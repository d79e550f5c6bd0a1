package entities

import (
	"errors"
	"strings"
)

// Catalog records: small lookup entities managed from the settings screens.

type Brand struct {
	Base
	Name        string `json:"name" dynamodbav:"name"`
	Description string `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Active      bool   `json:"active" dynamodbav:"active"`
	Audit
}

func (b *Brand) Validate() error {
	if strings.TrimSpace(b.CompanyID) == "" {
		return errors.New("brand company_id is required")
	}
	if strings.TrimSpace(b.Name) == "" {
		return errors.New("brand name is required")
	}
	return nil
}

type BusinessType struct {
	Base
	Name        string `json:"name" dynamodbav:"name"`
	Description string `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Audit
}

func (t *BusinessType) Validate() error {
	if strings.TrimSpace(t.CompanyID) == "" {
		return errors.New("business type company_id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("business type name is required")
	}
	return nil
}

type CompanyBranch struct {
	Base
	Name    string `json:"name" dynamodbav:"name"`
	Address string `json:"address,omitempty" dynamodbav:"address,omitempty"`
	Phone   string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Main    bool   `json:"main" dynamodbav:"main"`
	Active  bool   `json:"active" dynamodbav:"active"`
	Audit
}

func (b *CompanyBranch) Validate() error {
	if strings.TrimSpace(b.CompanyID) == "" {
		return errors.New("company branch company_id is required")
	}
	if strings.TrimSpace(b.Name) == "" {
		return errors.New("company branch name is required")
	}
	return nil
}
