package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// recordPtr ties the value type T to its pointer form implementing
// entities.Record, so the repository can read audit fields generically.
type recordPtr[T any] interface {
	*T
	entities.Record
}

// TableSpec describes one entity table: its name (overridable by env var)
// and which string attributes free-text search matches against.
type TableSpec struct {
	EnvVar       string
	DefaultName  string
	SearchFields []string
}

// ResourceDynamoRepository persists one entity type in its own DynamoDB
// table.
//
// Table requirements:
//   - PK: id (string)
//
// Lists are tenant-scoped scans: every query carries company_id, rows with a
// deleted_at attribute are invisible, and pagination/sorting happen here
// after the scan (the tables are small per tenant; the server stays the
// single pagination authority for the dashboard).
type ResourceDynamoRepository[T any, PT recordPtr[T]] struct {
	ddb          *dynamodb.Client
	tableName    string
	searchFields []string
}

func NewResourceDynamoRepository[T any, PT recordPtr[T]](ddb *dynamodb.Client, spec TableSpec) *ResourceDynamoRepository[T, PT] {
	return &ResourceDynamoRepository[T, PT]{
		ddb:          ddb,
		tableName:    getenvDefault(spec.EnvVar, spec.DefaultName),
		searchFields: spec.SearchFields,
	}
}

const (
	defaultItemsPerPage = 20
	maxItemsPerPage     = 200
)

func (r *ResourceDynamoRepository[T, PT]) Create(ctx context.Context, e T) (T, error) {
	var zero T
	av, err := attributevalue.MarshalMap(e)
	if err != nil {
		return zero, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return zero, err
	}
	return e, nil
}

func (r *ResourceDynamoRepository[T, PT]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}

	var e T
	if err := attributevalue.UnmarshalMap(out.Item, &e); err != nil {
		return zero, err
	}
	// Soft-deleted rows behave as absent everywhere above the storage layer.
	if deletedAt, ok := out.Item["deleted_at"]; ok {
		if _, isNull := deletedAt.(*types.AttributeValueMemberNULL); !isNull {
			return zero, nil
		}
	}
	return e, nil
}

// Put replaces the stored item wholesale. The use case layer reads, applies
// the patch and calls Put, which keeps the repository free of per-field
// update expressions for eleven entity types.
func (r *ResourceDynamoRepository[T, PT]) Put(ctx context.Context, e T) (T, error) {
	var zero T
	av, err := attributevalue.MarshalMap(e)
	if err != nil {
		return zero, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, nil
		}
		return zero, err
	}
	return e, nil
}

// SoftDelete stamps deleted_at. Deleting an id that is absent or already
// deleted yields a zero entity with no error, which keeps repeated deletes
// harmless.
func (r *ResourceDynamoRepository[T, PT]) SoftDelete(ctx context.Context, id string) (T, error) {
	var zero T
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#deleted_at)"),
		UpdateExpression:    aws.String("SET #deleted_at = :now, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#deleted_at": "deleted_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, nil
		}
		return zero, err
	}
	if len(out.Attributes) == 0 {
		return zero, nil
	}
	var e T
	if err := attributevalue.UnmarshalMap(out.Attributes, &e); err != nil {
		return zero, err
	}
	return e, nil
}

func (r *ResourceDynamoRepository[T, PT]) List(ctx context.Context, q interfaces.ListQuery) (interfaces.Page[T], error) {
	filterExpr, names, values, err := r.buildFilter(q)
	if err != nil {
		return interfaces.Page[T]{}, err
	}

	var items []T
	var lastKey map[string]types.AttributeValue
	for {
		input := &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filterExpr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         lastKey,
		}
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return interfaces.Page[T]{}, err
		}
		var page []T
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return interfaces.Page[T]{}, err
		}
		items = append(items, page...)
		lastKey = out.LastEvaluatedKey
		if len(lastKey) == 0 {
			break
		}
	}

	sortByCreatedAt[T, PT](items, strings.EqualFold(q.SortOrder, "ASC"))
	return paginate(items, q.Page, q.ItemsPerPage), nil
}

func (r *ResourceDynamoRepository[T, PT]) buildFilter(q interfaces.ListQuery) (string, map[string]string, map[string]types.AttributeValue, error) {
	names := map[string]string{
		"#company_id": "company_id",
		"#deleted_at": "deleted_at",
	}
	values := map[string]types.AttributeValue{
		":company_id": &types.AttributeValueMemberS{Value: q.CompanyID},
	}
	parts := []string{
		"#company_id = :company_id",
		"attribute_not_exists(#deleted_at)",
	}

	if s := strings.TrimSpace(q.Search); s != "" && len(r.searchFields) > 0 {
		values[":search"] = &types.AttributeValueMemberS{Value: s}
		var ors []string
		for i, field := range r.searchFields {
			ph := fmt.Sprintf("#search_%d", i)
			names[ph] = field
			ors = append(ors, fmt.Sprintf("contains(%s, :search)", ph))
		}
		parts = append(parts, "("+strings.Join(ors, " OR ")+")")
	}

	for i, c := range q.Conditions {
		namePh := fmt.Sprintf("#f%d", i)
		valuePh := fmt.Sprintf(":v%d", i)
		names[namePh] = c.Field

		switch c.Op {
		case interfaces.OpEq:
			values[valuePh] = &types.AttributeValueMemberS{Value: c.Value}
			parts = append(parts, fmt.Sprintf("%s = %s", namePh, valuePh))
		case interfaces.OpEqBool:
			b, err := strconv.ParseBool(c.Value)
			if err != nil {
				return "", nil, nil, fmt.Errorf("invalid boolean filter %s: %w", c.Field, err)
			}
			values[valuePh] = &types.AttributeValueMemberBOOL{Value: b}
			parts = append(parts, fmt.Sprintf("%s = %s", namePh, valuePh))
		case interfaces.OpContains:
			values[valuePh] = &types.AttributeValueMemberS{Value: c.Value}
			parts = append(parts, fmt.Sprintf("contains(%s, %s)", namePh, valuePh))
		case interfaces.OpGTE:
			values[valuePh] = &types.AttributeValueMemberS{Value: c.Value}
			parts = append(parts, fmt.Sprintf("%s >= %s", namePh, valuePh))
		case interfaces.OpLTE:
			values[valuePh] = &types.AttributeValueMemberS{Value: c.Value}
			parts = append(parts, fmt.Sprintf("%s <= %s", namePh, valuePh))
		default:
			return "", nil, nil, fmt.Errorf("unsupported filter op %q", c.Op)
		}
	}

	return strings.Join(parts, " AND "), names, values, nil
}

func sortByCreatedAt[T any, PT recordPtr[T]](items []T, asc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		ti := PT(&items[i]).CreatedTime()
		tj := PT(&items[j]).CreatedTime()
		if asc {
			return ti.Before(tj)
		}
		return tj.Before(ti)
	})
}

func paginate[T any](items []T, page, perPage int) interfaces.Page[T] {
	if perPage <= 0 {
		perPage = defaultItemsPerPage
	}
	if perPage > maxItemsPerPage {
		perPage = maxItemsPerPage
	}
	if page <= 0 {
		page = 1
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * perPage
	if start >= total {
		return interfaces.Page[T]{Items: []T{}, Total: total, TotalPages: totalPages}
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return interfaces.Page[T]{Items: items[start:end], Total: total, TotalPages: totalPages}
}
