package dto_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"
	"tripdesk/shared/constant"
	"tripdesk/shared/dto"
	"tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.NewMetadata(createdAt, "sales-1"))

	expected := createdAt.In(timezone.Location()).Format(constant.DateFormat)

	assert.Equal(t, expected, metadata.CreatedAt)
	assert.Equal(t, expected, metadata.ModifiedAt)
	assert.Equal(t, "sales-1", metadata.CreatedBy)
	assert.Equal(t, "sales-1", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	defaults := dto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.DefaultValueLimit,
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	tests := []struct {
		name     string
		rawQuery string
		expected dto.QueryParams
	}{
		{
			name:     "all parameters",
			rawQuery: "page=2&limit=20&sort_by=total_price&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "total_price", SortDir: dto.SortDirAsc},
		},
		{
			name:     "defaults applied",
			expected: defaults,
		},
		{
			name:     "invalid numbers fall back to defaults",
			rawQuery: "page=-1&limit=abc",
			expected: defaults,
		},
		{
			name:     "unknown sort direction ignored",
			rawQuery: "sort_dir=sideways",
			expected: defaults,
		},
		{
			name:     "limit capped",
			rawQuery: "limit=5000",
			expected: dto.QueryParams{Page: 1, Limit: constant.MaxValueLimit, SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/quotations?"+tt.rawQuery, nil)

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req)

			assert.Equal(t, tt.expected, queryParams)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "id", Value: "q-1", Operator: dto.FilterOperatorEq, Table: "quotations"},
			dto.Filter{Field: "status", Value: []string{"sent", "approved"}, Operator: dto.FilterOperatorIn, Table: "quotations"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(quotations.id = :id AND quotations.status IN (:status_0, :status_1))", where)
	assert.Equal(t, map[string]any{"id": "q-1", "status_0": "sent", "status_1": "approved"}, args)
}

func TestFilter_InEdgeCases(t *testing.T) {
	empty := dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn, Table: "bookings"}
	where, args := empty.GetWhereClause()

	assert.Equal(t, "FALSE", where)
	assert.Empty(t, args)

	scalar := dto.Filter{Field: "status", Value: "paid", Operator: dto.FilterOperatorIn, Table: "bookings"}
	where, args = scalar.GetWhereClause()

	assert.Equal(t, "bookings.status = :status", where)
	assert.Equal(t, map[string]any{"status": "paid"}, args)
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.And(
		dto.FilterGroup{Filters: []any{dto.Filter{Field: "customer_id", Value: "c-1", Operator: dto.FilterOperatorEq}}},
		dto.FilterGroup{},
		dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "status", ArgName: "s1", Value: "pending", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "status", ArgName: "s2", Value: "quoted", Operator: dto.FilterOperatorEq},
			},
		},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "((customer_id = :customer_id) AND (status = :s1 OR status = :s2))", where)
	assert.Len(t, args, 3)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestActorFromContext(t *testing.T) {
	actor := dto.Actor{ID: "u-1", Email: "ops@tripdesk.io", Name: "Olive Ops", Role: constant.RoleOperations}

	got := dto.ActorFromContext(dto.WithActor(context.Background(), actor))

	assert.Equal(t, actor, got)
	assert.False(t, got.IsCustomer())
	assert.Equal(t, dto.Actor{}, dto.ActorFromContext(context.Background()))
}
