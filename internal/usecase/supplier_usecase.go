package usecase

import (
	"context"

	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase/interfaces"
)

// SupplierUseCase adds the advisory duplicate-code pre-check the purchasing
// screen relies on before submitting a new supplier.
type SupplierUseCase struct {
	*ResourceUseCase[entities.Supplier, *entities.Supplier]
}

func NewSupplierUseCase(repo interfaces.IResourceRepository[entities.Supplier]) *SupplierUseCase {
	return &SupplierUseCase{NewResourceUseCase[entities.Supplier](repo, "suppliers")}
}

func (u *SupplierUseCase) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	if err := u.guardUniqueField(ctx, s.CompanyID, "code", s.Code); err != nil {
		return entities.Supplier{}, err
	}
	return u.ResourceUseCase.Create(ctx, s)
}
