package handlers

import (
	"net/http"

	"gestion_xpto/internal/adapter/http/dto/request"
	"gestion_xpto/internal/adapter/http/dto/response"
	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*CRUDHandler[entities.Order, request.CreateOrderRequest, request.UpdateOrderRequest]
	uc *usecase.OrderUseCase
}

func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		CRUDHandler: NewCRUDHandler[entities.Order, request.CreateOrderRequest, request.UpdateOrderRequest](uc, OrderFilters),
		uc:          uc,
	}
}

func (h *OrderHandler) Update(c *gin.Context) {
	var payload request.UpdateOrderRequest
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

func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.uc.ChangeStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.Status))
	if err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewItem(updated))
}
