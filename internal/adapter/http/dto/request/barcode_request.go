package request

import "gestion_xpto/internal/domain/entities"

type CreateBarCodeRequest struct {
	CompanyID   string `json:"company_id" binding:"required"`
	Code        string `json:"code" binding:"required"`
	ProductCode string `json:"product_code"`
	Description string `json:"description"`
}

func (r CreateBarCodeRequest) ToEntity() entities.BarCode {
	return entities.BarCode{
		Base:        entities.Base{CompanyID: r.CompanyID},
		Code:        r.Code,
		ProductCode: r.ProductCode,
		Description: r.Description,
	}
}

type UpdateBarCodeRequest struct {
	ProductCode *string `json:"product_code"`
	Description *string `json:"description"`
}

func (r UpdateBarCodeRequest) Apply(b *entities.BarCode) error {
	setString(&b.ProductCode, r.ProductCode)
	setString(&b.Description, r.Description)
	return nil
}
