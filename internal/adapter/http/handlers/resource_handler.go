package handlers

import (
	"context"
	"net/http"

	"gestion_xpto/internal/adapter/http/dto/response"
	"gestion_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// CreatePayload converts a bound request body into a new entity.
type CreatePayload[T any] interface {
	ToEntity() T
}

// UpdatePayload applies a bound partial body onto a loaded entity.
type UpdatePayload[T any] interface {
	Apply(*T) error
}

// ICrudUseCase is what the generic handler needs from any resource use case.
// Per-entity use cases satisfy it through the embedded ResourceUseCase, with
// their own overrides (totals, unique-code checks) picked up transparently.
type ICrudUseCase[T any] interface {
	List(ctx context.Context, q interfaces.ListQuery) (interfaces.Page[T], error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, e T) (T, error)
	Update(ctx context.Context, id string, apply func(*T) error) (T, error)
	Delete(ctx context.Context, id string) error
}

// CRUDHandler serves the five standard endpoints for one resource. The
// dashboard repeats this exact surface per screen, so the handler exists
// once, parameterized by entity and payload types.
type CRUDHandler[T any, C CreatePayload[T], U UpdatePayload[T]] struct {
	uc      ICrudUseCase[T]
	filters FilterParser
	present func(T) any
}

func NewCRUDHandler[T any, C CreatePayload[T], U UpdatePayload[T]](uc ICrudUseCase[T], filters FilterParser) *CRUDHandler[T, C, U] {
	return &CRUDHandler[T, C, U]{uc: uc, filters: filters}
}

// WithPresenter installs a response mapper for resources whose API shape
// carries derived fields (goals).
func (h *CRUDHandler[T, C, U]) WithPresenter(present func(T) any) *CRUDHandler[T, C, U] {
	h.present = present
	return h
}

func (h *CRUDHandler[T, C, U]) render(e T) any {
	if h.present != nil {
		return h.present(e)
	}
	return e
}

func (h *CRUDHandler[T, C, U]) List(c *gin.Context) {
	q := parseListQuery(c, h.filters)

	page, err := h.uc.List(c.Request.Context(), q)
	if err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items := make([]any, len(page.Items))
	for i, e := range page.Items {
		items[i] = h.render(e)
	}
	c.JSON(http.StatusOK, response.NewList(items, page.Total, page.TotalPages))
}

func (h *CRUDHandler[T, C, U]) Get(c *gin.Context) {
	e, err := h.uc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewItem(h.render(e)))
}

func (h *CRUDHandler[T, C, U]) Create(c *gin.Context) {
	var payload C
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.uc.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.NewItem(h.render(created)))
}

func (h *CRUDHandler[T, C, U]) Update(c *gin.Context) {
	var payload U
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), c.Param("id"), payload.Apply)
	if err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewItem(h.render(updated)))
}

func (h *CRUDHandler[T, C, U]) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewDeleted())
}
