package interfaces

import (
	"context"
)

// ConditionOp enumerates the filter operators list endpoints support.
type ConditionOp string

const (
	OpEq       ConditionOp = "eq"
	OpEqBool   ConditionOp = "eq_bool"
	OpContains ConditionOp = "contains"
	OpGTE      ConditionOp = "gte"
	OpLTE      ConditionOp = "lte"
)

// Condition is one field filter. Value is the raw query-string value; the
// repository converts it to the attribute's storage type.
type Condition struct {
	Field string
	Op    ConditionOp
	Value string
}

// ListQuery is the server-side mirror of the dashboard's filter object:
// pagination, sort order, free-text search and field conditions. CompanyID
// is mandatory for every list; handlers reject requests without it before
// this layer is reached.
type ListQuery struct {
	CompanyID    string
	Search       string
	Page         int
	ItemsPerPage int
	SortOrder    string // "ASC" or "DESC" by created_at; DESC when empty
	Conditions   []Condition
}

// Page is one page of a filtered collection together with the server's
// pagination metadata. The envelope on the wire is built from this.
type Page[T any] struct {
	Items      []T
	Total      int
	TotalPages int
}

// IResourceRepository abstracts DynamoDB persistence for one entity table.
//
// It is deliberately generic: every resource in the dashboard shares the
// same CRUD surface, so the persistence contract is written once and
// instantiated per entity type. "Zero entity, nil error" means not found;
// use cases translate that into their sentinel errors.
type IResourceRepository[T any] interface {
	List(ctx context.Context, q ListQuery) (Page[T], error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, e T) (T, error)
	Put(ctx context.Context, e T) (T, error)
	SoftDelete(ctx context.Context, id string) (T, error)
}
