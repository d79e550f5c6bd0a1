package handlers

import (
	"time"

	"gestion_xpto/internal/adapter/http/dto/request"
	"gestion_xpto/internal/adapter/http/dto/response"
	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase"
)

// Resources without extra endpoints are served straight by the generic
// handler; only the payload types and filter parsers differ.
type (
	ClientHandler       = CRUDHandler[entities.Client, request.CreateClientRequest, request.UpdateClientRequest]
	SupplierHandler     = CRUDHandler[entities.Supplier, request.CreateSupplierRequest, request.UpdateSupplierRequest]
	GoalHandler         = CRUDHandler[entities.Goal, request.CreateGoalRequest, request.UpdateGoalRequest]
	BankAccountHandler  = CRUDHandler[entities.BankAccount, request.CreateBankAccountRequest, request.UpdateBankAccountRequest]
	BarCodeHandler      = CRUDHandler[entities.BarCode, request.CreateBarCodeRequest, request.UpdateBarCodeRequest]
	BrandHandler        = CRUDHandler[entities.Brand, request.CreateBrandRequest, request.UpdateBrandRequest]
	BusinessTypeHandler = CRUDHandler[entities.BusinessType, request.CreateBusinessTypeRequest, request.UpdateBusinessTypeRequest]
	BranchHandler       = CRUDHandler[entities.CompanyBranch, request.CreateBranchRequest, request.UpdateBranchRequest]
)

func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return NewCRUDHandler[entities.Client, request.CreateClientRequest, request.UpdateClientRequest](uc, ClientFilters)
}

func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return NewCRUDHandler[entities.Supplier, request.CreateSupplierRequest, request.UpdateSupplierRequest](uc, SupplierFilters)
}

// NewGoalHandler decorates goals with their computed progress fields.
func NewGoalHandler(uc *usecase.GoalUseCase) *GoalHandler {
	h := NewCRUDHandler[entities.Goal, request.CreateGoalRequest, request.UpdateGoalRequest](uc, GoalFilters)
	return h.WithPresenter(func(g entities.Goal) any {
		return response.FromGoal(g, time.Now().UTC())
	})
}

func NewBankAccountHandler(uc *usecase.BankAccountUseCase) *BankAccountHandler {
	return NewCRUDHandler[entities.BankAccount, request.CreateBankAccountRequest, request.UpdateBankAccountRequest](uc, BankAccountFilters)
}

func NewBarCodeHandler(uc *usecase.BarCodeUseCase) *BarCodeHandler {
	return NewCRUDHandler[entities.BarCode, request.CreateBarCodeRequest, request.UpdateBarCodeRequest](uc, BarCodeFilters)
}

func NewBrandHandler(uc *usecase.BrandUseCase) *BrandHandler {
	return NewCRUDHandler[entities.Brand, request.CreateBrandRequest, request.UpdateBrandRequest](uc, ActiveFilter)
}

func NewBusinessTypeHandler(uc *usecase.BusinessTypeUseCase) *BusinessTypeHandler {
	return NewCRUDHandler[entities.BusinessType, request.CreateBusinessTypeRequest, request.UpdateBusinessTypeRequest](uc, ActiveFilter)
}

func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return NewCRUDHandler[entities.CompanyBranch, request.CreateBranchRequest, request.UpdateBranchRequest](uc, ActiveFilter)
}
