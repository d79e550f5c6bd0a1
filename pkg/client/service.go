package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Filters describes one list query. Zero-valued fields are omitted from the
// query string, never sent as empty literals.
type Filters struct {
	CompanyID    string
	Search       string
	Page         int
	ItemsPerPage int
	Order        string
	// Extra holds per-resource filters (foreign keys, status, date ranges).
	Extra map[string]string
}

// Merge overlays non-zero override fields onto f and returns the result.
func (f Filters) Merge(o Filters) Filters {
	out := f
	if o.CompanyID != "" {
		out.CompanyID = o.CompanyID
	}
	if o.Search != "" {
		out.Search = o.Search
	}
	if o.Page != 0 {
		out.Page = o.Page
	}
	if o.ItemsPerPage != 0 {
		out.ItemsPerPage = o.ItemsPerPage
	}
	if o.Order != "" {
		out.Order = o.Order
	}
	if len(o.Extra) > 0 {
		merged := make(map[string]string, len(f.Extra)+len(o.Extra))
		for k, v := range f.Extra {
			merged[k] = v
		}
		for k, v := range o.Extra {
			merged[k] = v
		}
		out.Extra = merged
	}
	return out
}

func (f Filters) encode() string {
	q := url.Values{}
	if f.CompanyID != "" {
		q.Set("companyId", f.CompanyID)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.ItemsPerPage > 0 {
		q.Set("itemsPerPage", strconv.Itoa(f.ItemsPerPage))
	}
	if f.Order != "" {
		q.Set("order", f.Order)
	}
	for k, v := range f.Extra {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListMeta carries the server-side pagination counters alongside a page.
type ListMeta struct {
	Total      int
	TotalPages int
}

// listEnvelope accepts both list shapes the API family uses: a bare array in
// data, or a nested {data, total, totalPages} object.
type listEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type pagedData[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type itemEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type statusEnvelope struct {
	Success bool `json:"success"`
}

// Service is the typed REST surface for one resource path.
type Service[T any] struct {
	c    *Client
	path string
}

func NewService[T any](c *Client, path string) *Service[T] {
	return &Service[T]{c: c, path: "/" + strings.Trim(path, "/")}
}

// List fetches one filtered page and unwraps whichever envelope shape the
// endpoint answers with.
func (s *Service[T]) List(ctx context.Context, f Filters) ([]T, ListMeta, error) {
	var envelope listEnvelope
	if err := s.c.Do(ctx, http.MethodGet, s.path+f.encode(), nil, &envelope); err != nil {
		return nil, ListMeta{}, err
	}

	var paged pagedData[T]
	if err := json.Unmarshal(envelope.Data, &paged); err == nil && paged.Data != nil {
		return paged.Data, ListMeta{Total: paged.Total, TotalPages: paged.TotalPages}, nil
	}

	var items []T
	if err := json.Unmarshal(envelope.Data, &items); err != nil {
		return nil, ListMeta{}, fmt.Errorf("unexpected list payload: %w", err)
	}
	return items, ListMeta{Total: len(items), TotalPages: 1}, nil
}

func (s *Service[T]) GetByID(ctx context.Context, id string) (T, error) {
	var envelope itemEnvelope[T]
	err := s.c.Do(ctx, http.MethodGet, s.path+"/"+url.PathEscape(id), nil, &envelope)
	return envelope.Data, err
}

func (s *Service[T]) Create(ctx context.Context, payload any) (T, error) {
	var envelope itemEnvelope[T]
	err := s.c.Do(ctx, http.MethodPost, s.path, payload, &envelope)
	return envelope.Data, err
}

func (s *Service[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	var envelope itemEnvelope[T]
	err := s.c.Do(ctx, http.MethodPatch, s.path+"/"+url.PathEscape(id), patch, &envelope)
	return envelope.Data, err
}

func (s *Service[T]) Delete(ctx context.Context, id string) error {
	var envelope statusEnvelope
	return s.c.Do(ctx, http.MethodDelete, s.path+"/"+url.PathEscape(id), nil, &envelope)
}
