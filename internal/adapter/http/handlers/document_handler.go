package handlers

import (
	"net/http"

	"gestion_xpto/internal/adapter/http/dto/request"
	"gestion_xpto/internal/adapter/http/dto/response"
	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves budgets/quotes. It reuses the generic CRUD surface
// but routes updates through the totals-recalculating path and adds the
// status transition endpoint.
type DocumentHandler struct {
	*CRUDHandler[entities.Document, request.CreateDocumentRequest, request.UpdateDocumentRequest]
	uc *usecase.DocumentUseCase
}

func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{
		CRUDHandler: NewCRUDHandler[entities.Document, request.CreateDocumentRequest, request.UpdateDocumentRequest](uc, DocumentFilters),
		uc:          uc,
	}
}

// Update applies a partial patch and rebuilds the document totals.
func (h *DocumentHandler) Update(c *gin.Context) {
	var payload request.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.uc.UpdateDetails(c.Request.Context(), c.Param("id"), payload.Apply)
	if err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewItem(updated))
}

// ChangeStatus moves a document along its lifecycle
// (draft → pending → approved → completed/closed, cancel on the way).
func (h *DocumentHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.uc.ChangeStatus(c.Request.Context(), c.Param("id"), entities.DocumentStatus(payload.Status))
	if err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewItem(updated))
}
