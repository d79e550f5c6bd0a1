package usecase

import (
	"context"

	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase/interfaces"
)

// BarCodeUseCase validates check digits before anything is stored and keeps
// the detected format on the record.
type BarCodeUseCase struct {
	*ResourceUseCase[entities.BarCode, *entities.BarCode]
}

func NewBarCodeUseCase(repo interfaces.IResourceRepository[entities.BarCode]) *BarCodeUseCase {
	return &BarCodeUseCase{NewResourceUseCase[entities.BarCode](repo, "bar_codes")}
}

func (u *BarCodeUseCase) Create(ctx context.Context, b entities.BarCode) (entities.BarCode, error) {
	b.Format = entities.DetectBarCodeFormat(b.Code)
	if err := u.guardUniqueField(ctx, b.CompanyID, "code", b.Code); err != nil {
		return entities.BarCode{}, err
	}
	return u.ResourceUseCase.Create(ctx, b)
}
