package request

import "gestion_xpto/internal/domain/entities"

// Catalog payloads: brands, business types and company branches share the
// same minimal shape.

type CreateBrandRequest struct {
	CompanyID   string `json:"company_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (r CreateBrandRequest) ToEntity() entities.Brand {
	return entities.Brand{
		Base:        entities.Base{CompanyID: r.CompanyID},
		Name:        r.Name,
		Description: r.Description,
		Active:      true,
	}
}

type UpdateBrandRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (r UpdateBrandRequest) Apply(b *entities.Brand) error {
	setString(&b.Name, r.Name)
	setString(&b.Description, r.Description)
	setBool(&b.Active, r.Active)
	return nil
}

type CreateBusinessTypeRequest struct {
	CompanyID   string `json:"company_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (r CreateBusinessTypeRequest) ToEntity() entities.BusinessType {
	return entities.BusinessType{
		Base:        entities.Base{CompanyID: r.CompanyID},
		Name:        r.Name,
		Description: r.Description,
	}
}

type UpdateBusinessTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r UpdateBusinessTypeRequest) Apply(t *entities.BusinessType) error {
	setString(&t.Name, r.Name)
	setString(&t.Description, r.Description)
	return nil
}

type CreateBranchRequest struct {
	CompanyID string `json:"company_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Main      bool   `json:"main"`
}

func (r CreateBranchRequest) ToEntity() entities.CompanyBranch {
	return entities.CompanyBranch{
		Base:    entities.Base{CompanyID: r.CompanyID},
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Main:    r.Main,
		Active:  true,
	}
}

type UpdateBranchRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Main    *bool   `json:"main"`
	Active  *bool   `json:"active"`
}

func (r UpdateBranchRequest) Apply(b *entities.CompanyBranch) error {
	setString(&b.Name, r.Name)
	setString(&b.Address, r.Address)
	setString(&b.Phone, r.Phone)
	setBool(&b.Main, r.Main)
	setBool(&b.Active, r.Active)
	return nil
}
