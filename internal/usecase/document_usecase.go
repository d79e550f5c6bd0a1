package usecase

import (
	"context"
	"errors"

	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase/interfaces"
)

var ErrInvalidStatusTransition = errors.New("invalid status transition")

// DocumentUseCase manages budget/quote documents. On top of the shared CRUD
// behavior it derives the money buckets from the items and enforces the
// status lifecycle.
type DocumentUseCase struct {
	*ResourceUseCase[entities.Document, *entities.Document]
}

func NewDocumentUseCase(repo interfaces.IResourceRepository[entities.Document]) *DocumentUseCase {
	return &DocumentUseCase{NewResourceUseCase[entities.Document](repo, "documents")}
}

func (u *DocumentUseCase) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	if d.Status == "" {
		d.Status = entities.DocumentStatusDraft
	}
	d.RecalculateTotals()
	return u.ResourceUseCase.Create(ctx, d)
}

// UpdateDetails applies a partial patch and rebuilds the totals; the caller
// never supplies taxable/tax/exempt/total directly.
func (u *DocumentUseCase) UpdateDetails(ctx context.Context, id string, apply func(*entities.Document) error) (entities.Document, error) {
	return u.Update(ctx, id, func(d *entities.Document) error {
		if err := apply(d); err != nil {
			return err
		}
		d.RecalculateTotals()
		return nil
	})
}

// ChangeStatus moves a document along its lifecycle, rejecting transitions
// the status machine does not allow.
func (u *DocumentUseCase) ChangeStatus(ctx context.Context, id string, to entities.DocumentStatus) (entities.Document, error) {
	if !to.Valid() {
		return entities.Document{}, validationErr(entities.ErrDocumentInvalidStatus)
	}
	return u.Update(ctx, id, func(d *entities.Document) error {
		if !d.Status.CanTransition(to) {
			return ErrInvalidStatusTransition
		}
		d.Status = to
		return nil
	})
}
