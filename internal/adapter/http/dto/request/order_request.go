package request

import "gestion_xpto/internal/domain/entities"

type OrderItemRequest struct {
	ProductCode string  `json:"product_code"`
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxRate     float64 `json:"tax_rate"`
	IsExempt    bool    `json:"is_exempt"`
}

func (r OrderItemRequest) toEntity() entities.OrderItem {
	return entities.OrderItem{
		ProductCode: r.ProductCode,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		TaxRate:     r.TaxRate,
		IsExempt:    r.IsExempt,
	}
}

type CreateOrderRequest struct {
	CompanyID    string             `json:"company_id" binding:"required"`
	ClientID     string             `json:"client_id"`
	SupplierID   string             `json:"supplier_id"`
	DocumentID   string             `json:"document_id"`
	BranchID     string             `json:"branch_id"`
	Number       string             `json:"number"`
	OrderDate    string             `json:"order_date"`
	DeliveryDate string             `json:"delivery_date"`
	Items        []OrderItemRequest `json:"items"`
	Notes        string             `json:"notes"`
	ExternalCode string             `json:"external_code"`
	SyncWithERP  bool               `json:"sync_with_erp"`
}

func (r CreateOrderRequest) ToEntity() entities.Order {
	items := make([]entities.OrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = it.toEntity()
	}
	return entities.Order{
		Base: entities.Base{
			CompanyID:    r.CompanyID,
			ExternalCode: r.ExternalCode,
			SyncWithERP:  r.SyncWithERP,
		},
		Number:       r.Number,
		ClientID:     r.ClientID,
		SupplierID:   r.SupplierID,
		DocumentID:   r.DocumentID,
		BranchID:     r.BranchID,
		Status:       entities.OrderStatusPending,
		OrderDate:    r.OrderDate,
		DeliveryDate: r.DeliveryDate,
		Items:        items,
		Notes:        r.Notes,
	}
}

type UpdateOrderRequest struct {
	ClientID     *string             `json:"client_id"`
	SupplierID   *string             `json:"supplier_id"`
	DocumentID   *string             `json:"document_id"`
	BranchID     *string             `json:"branch_id"`
	Number       *string             `json:"number"`
	OrderDate    *string             `json:"order_date"`
	DeliveryDate *string             `json:"delivery_date"`
	Items        *[]OrderItemRequest `json:"items"`
	Notes        *string             `json:"notes"`
	ExternalCode *string             `json:"external_code"`
	SyncWithERP  *bool               `json:"sync_with_erp"`
}

func (r UpdateOrderRequest) Apply(o *entities.Order) error {
	setString(&o.ClientID, r.ClientID)
	setString(&o.SupplierID, r.SupplierID)
	setString(&o.DocumentID, r.DocumentID)
	setString(&o.BranchID, r.BranchID)
	setString(&o.Number, r.Number)
	setString(&o.OrderDate, r.OrderDate)
	setString(&o.DeliveryDate, r.DeliveryDate)
	setString(&o.Notes, r.Notes)
	setString(&o.ExternalCode, r.ExternalCode)
	setBool(&o.SyncWithERP, r.SyncWithERP)
	if r.Items != nil {
		items := make([]entities.OrderItem, len(*r.Items))
		for i, it := range *r.Items {
			items[i] = it.toEntity()
		}
		o.Items = items
	}
	return nil
}
