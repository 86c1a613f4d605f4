package dto_test

import (
	"net/http/httptest"
	"poolhire/shared/constant"
	"poolhire/shared/dto"
	"poolhire/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: createdAt.Add(time.Hour),
		CreatedBy:  "host-1",
		ModifiedBy: "stripe",
	})

	assert.Equal(t, "host-1", metadata.CreatedBy)
	assert.Equal(t, "stripe", metadata.ModifiedBy)
	assert.NotEmpty(t, metadata.CreatedAt)

	parsed, err := time.Parse(constant.DateFormat, metadata.ModifiedAt)
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(createdAt.Add(time.Hour)))
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		want         dto.QueryParams
	}{
		{
			name:  "explicit values",
			query: "?page=2&limit=20&sort_by=price&sort_dir=asc",
			want:  dto.QueryParams{Page: 2, Limit: 20, SortBy: "price", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults fill the gaps",
			query:        "?sort_by=price",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit, SortBy: "price"},
		},
		{
			name: "no defaults leaves zero values",
			want: dto.QueryParams{},
		},
		{
			name:         "garbage numbers are ignored",
			query:        "?page=abc&limit=-5",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:  "limit is capped",
			query: "?limit=5000",
			want:  dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:  "unknown direction is dropped",
			query: "?sort_dir=sideways",
			want:  dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/pools"+tt.query, nil)

			var got dto.QueryParams
			got.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected dto.QueryParams
	}{
		{
			name:     "allowed column keeps direction",
			params:   dto.QueryParams{SortBy: "price", SortDir: dto.SortDirDesc},
			expected: dto.QueryParams{SortBy: "price", SortDir: dto.SortDirDesc},
		},
		{
			name:     "allowed column without direction",
			params:   dto.QueryParams{SortBy: "price"},
			expected: dto.QueryParams{SortBy: "price", SortDir: dto.SortDirAsc},
		},
		{
			name:     "injected column falls back",
			params:   dto.QueryParams{SortBy: "price; DROP TABLE pools", SortDir: dto.SortDirAsc},
			expected: dto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir},
		},
		{
			name:     "empty falls back",
			params:   dto.QueryParams{},
			expected: dto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			params.RestrictSort("price", "created_at")

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "host_id", Value: "host-1", Operator: dto.FilterOperatorEq, Table: "pools"},
			wantWhere: "pools.host_id = :host_id",
			wantArgs:  map[string]any{"host_id": "host-1"},
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "min_price", Field: "price", Value: int64(2000), Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "price >= :min_price",
			wantArgs:  map[string]any{"min_price": int64(2000)},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "status", Value: "succeeded", Operator: dto.FilterOperatorNotEq},
			wantWhere: "status != :status",
			wantArgs:  map[string]any{"status": "succeeded"},
		},
		{
			name:      "like wraps the value",
			filter:    dto.Filter{Field: "location", Value: "Bath", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(location) LIKE LOWER(:location)",
			wantArgs:  map[string]any{"location": "%Bath%"},
		},
		{
			name:      "in expands slices",
			filter:    dto.Filter{Field: "id", Value: []string{"extra-1", "extra-2"}, Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id_0, :id_1)",
			wantArgs:  map[string]any{"id_0": "extra-1", "id_1": "extra-2"},
		},
		{
			name:      "in with empty slice matches nothing",
			filter:    dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "last_sync_at", Operator: dto.FilterIsNull},
			wantWhere: "last_sync_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator renders nothing",
			filter:    dto.Filter{Field: "id", Value: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	search := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{ArgName: "search_name", Field: "name", Value: "lido", Operator: dto.FilterOperatorLike},
			dto.Filter{ArgName: "search_description", Field: "description", Value: "lido", Operator: dto.FilterOperatorLike},
		},
	}

	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq},
			search,
			dto.Filter{Field: "ignored", Operator: "between"},
			"not a filter",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(is_active = :is_active AND (LOWER(name) LIKE LOWER(:search_name) OR LOWER(description) LIKE LOWER(:search_description)))", where)
	assert.Len(t, args, 3)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
