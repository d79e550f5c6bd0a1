package usecase

import (
	"context"

	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase/interfaces"
)

// OrderUseCase manages purchase/sale orders; totals are always recomputed
// from the items on write.
type OrderUseCase struct {
	*ResourceUseCase[entities.Order, *entities.Order]
}

func NewOrderUseCase(repo interfaces.IResourceRepository[entities.Order]) *OrderUseCase {
	return &OrderUseCase{NewResourceUseCase[entities.Order](repo, "orders")}
}

func (u *OrderUseCase) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.Status == "" {
		o.Status = entities.OrderStatusPending
	}
	o.RecalculateTotals()
	return u.ResourceUseCase.Create(ctx, o)
}

func (u *OrderUseCase) UpdateDetails(ctx context.Context, id string, apply func(*entities.Order) error) (entities.Order, error) {
	return u.Update(ctx, id, func(o *entities.Order) error {
		if err := apply(o); err != nil {
			return err
		}
		o.RecalculateTotals()
		return nil
	})
}

func (u *OrderUseCase) ChangeStatus(ctx context.Context, id string, to entities.OrderStatus) (entities.Order, error) {
	if !to.Valid() {
		return entities.Order{}, validationErr(entities.ErrOrderInvalidStatus)
	}
	return u.Update(ctx, id, func(o *entities.Order) error {
		if !o.Status.CanTransition(to) {
			return ErrInvalidStatusTransition
		}
		o.Status = to
		return nil
	})
}
