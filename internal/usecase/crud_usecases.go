package usecase

import (
	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase/interfaces"
)

// Plain resources carry no derived calculations, so their use cases are the
// shared CRUD behavior under a resource-specific name.
type (
	ClientUseCase       = ResourceUseCase[entities.Client, *entities.Client]
	GoalUseCase         = ResourceUseCase[entities.Goal, *entities.Goal]
	BankAccountUseCase  = ResourceUseCase[entities.BankAccount, *entities.BankAccount]
	BrandUseCase        = ResourceUseCase[entities.Brand, *entities.Brand]
	BusinessTypeUseCase = ResourceUseCase[entities.BusinessType, *entities.BusinessType]
	BranchUseCase       = ResourceUseCase[entities.CompanyBranch, *entities.CompanyBranch]
)

func NewClientUseCase(repo interfaces.IResourceRepository[entities.Client]) *ClientUseCase {
	return NewResourceUseCase[entities.Client](repo, "clients")
}

func NewGoalUseCase(repo interfaces.IResourceRepository[entities.Goal]) *GoalUseCase {
	return NewResourceUseCase[entities.Goal](repo, "goals")
}

func NewBankAccountUseCase(repo interfaces.IResourceRepository[entities.BankAccount]) *BankAccountUseCase {
	return NewResourceUseCase[entities.BankAccount](repo, "bank_accounts")
}

func NewBrandUseCase(repo interfaces.IResourceRepository[entities.Brand]) *BrandUseCase {
	return NewResourceUseCase[entities.Brand](repo, "brands")
}

func NewBusinessTypeUseCase(repo interfaces.IResourceRepository[entities.BusinessType]) *BusinessTypeUseCase {
	return NewResourceUseCase[entities.BusinessType](repo, "business_types")
}

func NewBranchUseCase(repo interfaces.IResourceRepository[entities.CompanyBranch]) *BranchUseCase {
	return NewResourceUseCase[entities.CompanyBranch](repo, "company_branches")
}
