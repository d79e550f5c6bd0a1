package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase/interfaces"
	"gestion_xpto/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrNotFound  = errors.New("resource not found")
	ErrInvalidID = errors.New("invalid id")
	ErrCodeTaken = errors.New("code already in use")
)

// ValidationError marks failures detected before any persistence call, so
// handlers can answer 400 with the domain message instead of a generic 500.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

func validationErr(err error) error { return &ValidationError{Err: err} }

// recordPtr mirrors the repository-side constraint: T by value, *T as an
// entities.Record.
type recordPtr[T any] interface {
	*T
	entities.Record
}

// ResourceUseCase is the CRUD behavior every dashboard resource shares,
// written once and embedded by the per-entity use cases. Per-entity types add
// only their derived calculations and status rules on top.
type ResourceUseCase[T any, PT recordPtr[T]] struct {
	repo interfaces.IResourceRepository[T]
	log  zerolog.Logger
}

func NewResourceUseCase[T any, PT recordPtr[T]](repo interfaces.IResourceRepository[T], component string) *ResourceUseCase[T, PT] {
	return &ResourceUseCase[T, PT]{repo: repo, log: logger.WithComponent(component)}
}

// List returns one filtered page. A missing company id short-circuits to an
// empty page without touching the backend; the dashboard issues exactly this
// call while its session is still resolving the active company.
func (u *ResourceUseCase[T, PT]) List(ctx context.Context, q interfaces.ListQuery) (interfaces.Page[T], error) {
	if strings.TrimSpace(q.CompanyID) == "" {
		u.log.Debug().Msg("list without company_id, returning empty page")
		return interfaces.Page[T]{Items: []T{}, Total: 0, TotalPages: 1}, nil
	}
	return u.repo.List(ctx, q)
}

func (u *ResourceUseCase[T, PT]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, ErrInvalidID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if PT(&e).Key() == "" {
		return zero, ErrNotFound
	}
	return e, nil
}

func (u *ResourceUseCase[T, PT]) Create(ctx context.Context, e T) (T, error) {
	var zero T
	p := PT(&e)
	if err := p.Validate(); err != nil {
		return zero, validationErr(err)
	}

	if p.Key() == "" {
		p.SetKey(uuid.NewString())
	}
	p.Stamp(time.Now().UTC())

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		u.log.Error().Err(err).Str("id", p.Key()).Msg("create failed")
		return zero, err
	}
	u.log.Debug().Str("id", p.Key()).Msg("created")
	return created, nil
}

// Update loads the record, lets the caller apply a partial patch, revalidates
// and stores the result wholesale.
func (u *ResourceUseCase[T, PT]) Update(ctx context.Context, id string, apply func(PT) error) (T, error) {
	var zero T
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	p := PT(&e)
	if err := apply(p); err != nil {
		return zero, err
	}
	if err := p.Validate(); err != nil {
		return zero, validationErr(err)
	}
	p.Touch(time.Now().UTC())

	updated, err := u.repo.Put(ctx, e)
	if err != nil {
		return zero, err
	}
	if PT(&updated).Key() == "" {
		// Row vanished between the read and the write.
		return zero, ErrNotFound
	}
	u.log.Debug().Str("id", id).Msg("updated")
	return updated, nil
}

func (u *ResourceUseCase[T, PT]) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	deleted, err := u.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if PT(&deleted).Key() == "" {
		return ErrNotFound
	}
	u.log.Debug().Str("id", id).Msg("soft-deleted")
	return nil
}

// guardUniqueField is the advisory duplicate pre-check some screens run
// before create (supplier codes, bar codes). It is a courtesy query, not a
// uniqueness guarantee: a concurrent create can still slip between the check
// and the write.
func (u *ResourceUseCase[T, PT]) guardUniqueField(ctx context.Context, companyID, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	page, err := u.repo.List(ctx, interfaces.ListQuery{
		CompanyID:    companyID,
		ItemsPerPage: 1,
		Conditions:   []interfaces.Condition{{Field: field, Op: interfaces.OpEq, Value: value}},
	})
	if err != nil {
		return err
	}
	if page.Total > 0 {
		return ErrCodeTaken
	}
	return nil
}
