package handlers

import (
	"strconv"
	"strings"

	"gestion_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// FilterParser extracts resource-specific conditions from the query string.
type FilterParser func(c *gin.Context) []interfaces.Condition

// parseListQuery reads the shared list parameters. Absent parameters simply
// stay at their zero value; the dashboard never sends null/undefined
// literals and neither does this parser interpret them.
func parseListQuery(c *gin.Context, filters FilterParser) interfaces.ListQuery {
	q := interfaces.ListQuery{
		CompanyID: firstQuery(c, "companyId", "company_id"),
		Search:    strings.TrimSpace(c.Query("search")),
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("itemsPerPage")); err == nil {
		q.ItemsPerPage = v
	}
	if order := strings.ToUpper(c.Query("order")); order == "ASC" || order == "DESC" {
		q.SortOrder = order
	}
	if filters != nil {
		q.Conditions = filters(c)
	}
	return q
}

func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			return v
		}
	}
	return ""
}

func eqCondition(c *gin.Context, param, field string) []interfaces.Condition {
	if v := strings.TrimSpace(c.Query(param)); v != "" {
		return []interfaces.Condition{{Field: field, Op: interfaces.OpEq, Value: v}}
	}
	return nil
}

func boolCondition(c *gin.Context, param, field string) []interfaces.Condition {
	if v := strings.TrimSpace(c.Query(param)); v != "" {
		return []interfaces.Condition{{Field: field, Op: interfaces.OpEqBool, Value: v}}
	}
	return nil
}

// dateRangeConditions maps from/to query params onto one stored date field.
// Date-only values are widened to the day's bounds so the lexicographic
// comparison against RFC3339 storage strings behaves like a date compare.
func dateRangeConditions(c *gin.Context, fromParam, toParam, field string) []interfaces.Condition {
	var conds []interfaces.Condition
	if v := strings.TrimSpace(c.Query(fromParam)); v != "" {
		conds = append(conds, interfaces.Condition{Field: field, Op: interfaces.OpGTE, Value: dayStart(v)})
	}
	if v := strings.TrimSpace(c.Query(toParam)); v != "" {
		conds = append(conds, interfaces.Condition{Field: field, Op: interfaces.OpLTE, Value: dayEnd(v)})
	}
	return conds
}

func dayStart(v string) string {
	if len(v) == len("2006-01-02") {
		return v + "T00:00:00Z"
	}
	return v
}

func dayEnd(v string) string {
	if len(v) == len("2006-01-02") {
		return v + "T23:59:59.999999999Z"
	}
	return v
}

// Per-resource filter parsers. Each maps the filter fields its screen
// offers onto stored attributes.

func ClientFilters(c *gin.Context) []interfaces.Condition {
	var conds []interfaces.Condition
	conds = append(conds, eqCondition(c, "businessTypeId", "business_type_id")...)
	conds = append(conds, eqCondition(c, "branchId", "branch_id")...)
	conds = append(conds, boolCondition(c, "active", "active")...)
	return conds
}

func SupplierFilters(c *gin.Context) []interfaces.Condition {
	var conds []interfaces.Condition
	conds = append(conds, eqCondition(c, "code", "code")...)
	conds = append(conds, boolCondition(c, "active", "active")...)
	return conds
}

func DocumentFilters(c *gin.Context) []interfaces.Condition {
	var conds []interfaces.Condition
	conds = append(conds, eqCondition(c, "status", "status")...)
	conds = append(conds, eqCondition(c, "clientId", "client_id")...)
	conds = append(conds, eqCondition(c, "branchId", "branch_id")...)
	conds = append(conds, dateRangeConditions(c, "createdFrom", "createdTo", "created_at")...)
	return conds
}

func OrderFilters(c *gin.Context) []interfaces.Condition {
	var conds []interfaces.Condition
	conds = append(conds, eqCondition(c, "status", "status")...)
	conds = append(conds, eqCondition(c, "clientId", "client_id")...)
	conds = append(conds, eqCondition(c, "supplierId", "supplier_id")...)
	conds = append(conds, eqCondition(c, "documentId", "document_id")...)
	conds = append(conds, dateRangeConditions(c, "createdFrom", "createdTo", "created_at")...)
	return conds
}

func GoalFilters(c *gin.Context) []interfaces.Condition {
	var conds []interfaces.Condition
	conds = append(conds, eqCondition(c, "branchId", "branch_id")...)
	conds = append(conds, eqCondition(c, "assigneeId", "assignee_id")...)
	return conds
}

func PendingAccountFilters(c *gin.Context) []interfaces.Condition {
	var conds []interfaces.Condition
	conds = append(conds, eqCondition(c, "accountType", "account_type")...)
	conds = append(conds, eqCondition(c, "clientId", "client_id")...)
	conds = append(conds, eqCondition(c, "supplierId", "supplier_id")...)
	conds = append(conds, boolCondition(c, "settled", "settled")...)
	conds = append(conds, dateRangeConditions(c, "dueFrom", "dueTo", "due_date")...)
	return conds
}

func BankAccountFilters(c *gin.Context) []interfaces.Condition {
	return boolCondition(c, "active", "active")
}

func BarCodeFilters(c *gin.Context) []interfaces.Condition {
	var conds []interfaces.Condition
	conds = append(conds, eqCondition(c, "productCode", "product_code")...)
	conds = append(conds, eqCondition(c, "format", "format")...)
	return conds
}

func ActiveFilter(c *gin.Context) []interfaces.Condition {
	return boolCondition(c, "active", "active")
}
