package repository

import (
	"gestion_xpto/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// One table per resource. Names are overridable per environment so local
// and deployed stacks can coexist in one account.
var (
	ClientsTable         = TableSpec{EnvVar: "CLIENTS_TABLE", DefaultName: "clients", SearchFields: []string{"name", "tax_id", "email"}}
	SuppliersTable       = TableSpec{EnvVar: "SUPPLIERS_TABLE", DefaultName: "suppliers", SearchFields: []string{"code", "name", "email"}}
	DocumentsTable       = TableSpec{EnvVar: "DOCUMENTS_TABLE", DefaultName: "documents", SearchFields: []string{"number", "notes"}}
	OrdersTable          = TableSpec{EnvVar: "ORDERS_TABLE", DefaultName: "orders", SearchFields: []string{"number", "notes"}}
	GoalsTable           = TableSpec{EnvVar: "GOALS_TABLE", DefaultName: "goals", SearchFields: []string{"name"}}
	PendingAccountsTable = TableSpec{EnvVar: "PENDING_ACCOUNTS_TABLE", DefaultName: "pending_accounts", SearchFields: []string{"description"}}
	BankAccountsTable    = TableSpec{EnvVar: "BANK_ACCOUNTS_TABLE", DefaultName: "bank_accounts", SearchFields: []string{"name", "bank_name", "account_number"}}
	BarCodesTable        = TableSpec{EnvVar: "BAR_CODES_TABLE", DefaultName: "bar_codes", SearchFields: []string{"code", "product_code", "description"}}
	BrandsTable          = TableSpec{EnvVar: "BRANDS_TABLE", DefaultName: "brands", SearchFields: []string{"name"}}
	BusinessTypesTable   = TableSpec{EnvVar: "BUSINESS_TYPES_TABLE", DefaultName: "business_types", SearchFields: []string{"name"}}
	BranchesTable        = TableSpec{EnvVar: "COMPANY_BRANCHES_TABLE", DefaultName: "company_branches", SearchFields: []string{"name"}}
)

// AllTables lists every spec, used by the admin CLI to provision tables.
func AllTables() []TableSpec {
	return []TableSpec{
		ClientsTable, SuppliersTable, DocumentsTable, OrdersTable, GoalsTable,
		PendingAccountsTable, BankAccountsTable, BarCodesTable, BrandsTable,
		BusinessTypesTable, BranchesTable,
	}
}

// ResolvedName returns the table name after applying the env override.
func (s TableSpec) ResolvedName() string {
	return getenvDefault(s.EnvVar, s.DefaultName)
}

func NewClientRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[entities.Client, *entities.Client] {
	return NewResourceDynamoRepository[entities.Client](ddb, ClientsTable)
}

func NewSupplierRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[entities.Supplier, *entities.Supplier] {
	return NewResourceDynamoRepository[entities.Supplier](ddb, SuppliersTable)
}

func NewDocumentRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[entities.Document, *entities.Document] {
	return NewResourceDynamoRepository[entities.Document](ddb, DocumentsTable)
}

func NewOrderRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[entities.Order, *entities.Order] {
	return NewResourceDynamoRepository[entities.Order](ddb, OrdersTable)
}

func NewGoalRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[entities.Goal, *entities.Goal] {
	return NewResourceDynamoRepository[entities.Goal](ddb, GoalsTable)
}

func NewPendingAccountRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[entities.PendingAccount, *entities.PendingAccount] {
	return NewResourceDynamoRepository[entities.PendingAccount](ddb, PendingAccountsTable)
}

func NewBankAccountRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[entities.BankAccount, *entities.BankAccount] {
	return NewResourceDynamoRepository[entities.BankAccount](ddb, BankAccountsTable)
}

func NewBarCodeRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[entities.BarCode, *entities.BarCode] {
	return NewResourceDynamoRepository[entities.BarCode](ddb, BarCodesTable)
}

func NewBrandRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[entities.Brand, *entities.Brand] {
	return NewResourceDynamoRepository[entities.Brand](ddb, BrandsTable)
}

func NewBusinessTypeRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[entities.BusinessType, *entities.BusinessType] {
	return NewResourceDynamoRepository[entities.BusinessType](ddb, BusinessTypesTable)
}

func NewBranchRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[entities.CompanyBranch, *entities.CompanyBranch] {
	return NewResourceDynamoRepository[entities.CompanyBranch](ddb, BranchesTable)
}
