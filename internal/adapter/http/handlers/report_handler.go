package handlers

import (
	"net/http"

	"gestion_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler streams xlsx exports for the download buttons.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) PendingAccounts(c *gin.Context) {
	q := parseListQuery(c, PendingAccountFilters)

	buf, err := h.uc.PendingAccountsReport(c.Request.Context(), q)
	if err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="pending_accounts.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ReportHandler) Goals(c *gin.Context) {
	q := parseListQuery(c, GoalFilters)

	buf, err := h.uc.GoalsReport(c.Request.Context(), q)
	if err != nil {
		appErr := mapResourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="goals.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
