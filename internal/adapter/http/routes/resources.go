package routes

import (
	"gestion_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// crudRoutes is the endpoint set every dashboard resource exposes.
type crudRoutes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type resourceHandlers struct {
	Clients         *handlers.ClientHandler
	Suppliers       *handlers.SupplierHandler
	Documents       *handlers.DocumentHandler
	Orders          *handlers.OrderHandler
	Goals           *handlers.GoalHandler
	PendingAccounts *handlers.PendingAccountHandler
	BankAccounts    *handlers.BankAccountHandler
	BarCodes        *handlers.BarCodeHandler
	Brands          *handlers.BrandHandler
	BusinessTypes   *handlers.BusinessTypeHandler
	Branches        *handlers.BranchHandler
	Reports         *handlers.ReportHandler
}

func addResourceRoutes(rg *gin.RouterGroup, h resourceHandlers) {
	addResource(rg, "/clients", h.Clients)
	addResource(rg, "/suppliers", h.Suppliers)
	addResource(rg, "/documents", h.Documents)
	addResource(rg, "/orders", h.Orders)
	addResource(rg, "/goals", h.Goals)
	addResource(rg, "/bank-accounts", h.BankAccounts)
	addResource(rg, "/bar-codes", h.BarCodes)
	addResource(rg, "/brands", h.Brands)
	addResource(rg, "/business-types", h.BusinessTypes)
	addResource(rg, "/company-branches", h.Branches)

	rg.PATCH("/documents/:id/status", h.Documents.ChangeStatus)
	rg.PATCH("/orders/:id/status", h.Orders.ChangeStatus)

	pending := rg.Group("/pending-accounts")
	pending.GET("/summary", h.PendingAccounts.Summary)
	pending.POST("/:id/charge", h.PendingAccounts.Charge)
	addResource(rg, "/pending-accounts", h.PendingAccounts)

	reports := rg.Group("/reports")
	reports.GET("/pending-accounts/export", h.Reports.PendingAccounts)
	reports.GET("/goals/export", h.Reports.Goals)
}

func addResource(rg *gin.RouterGroup, path string, h crudRoutes) {
	r := rg.Group(path)
	r.GET("", h.List)
	r.GET("/:id", h.Get)
	r.POST("", h.Create)
	r.PATCH("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
}
