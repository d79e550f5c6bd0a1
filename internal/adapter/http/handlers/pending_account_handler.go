package handlers

import (
	"net/http"

	"gestion_xpto/internal/adapter/http/dto/request"
	"gestion_xpto/internal/adapter/http/dto/response"
	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PendingAccountHandler struct {
	*CRUDHandler[entities.PendingAccount, request.CreatePendingAccountRequest, request.UpdatePendingAccountRequest]
	uc *usecase.PendingAccountUseCase
}

func NewPendingAccountHandler(uc *usecase.PendingAccountUseCase) *PendingAccountHandler {
	return &PendingAccountHandler{
		CRUDHandler: NewCRUDHandler[entities.PendingAccount, request.CreatePendingAccountRequest, request.UpdatePendingAccountRequest](uc, PendingAccountFilters),
		uc:          uc,
	}
}

// Update patches the account and re-derives balance_due/settled.
func (h *PendingAccountHandler) Update(c *gin.Context) {
	var payload request.UpdatePendingAccountRequest
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

// Summary returns the aggregated receivable/payable/overdue totals for the
// current filter set.
func (h *PendingAccountHandler) Summary(c *gin.Context) {
	q := parseListQuery(c, PendingAccountFilters)

	totals, err := h.uc.Summary(c.Request.Context(), q)
	if err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewItem(totals))
}

// Charge collects an open receivable through the payment gateway.
func (h *PendingAccountHandler) Charge(c *gin.Context) {
	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	charged, err := h.uc.ChargeReceivable(c.Request.Context(), c.Param("id"), payload.Payment)
	if err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewItem(charged))
}
