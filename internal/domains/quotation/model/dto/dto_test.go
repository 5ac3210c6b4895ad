package dto_test

import (
	"net/http"
	"testing"
	"tripdesk/internal/domains/quotation/model"
	"tripdesk/internal/domains/quotation/model/dto"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionTitle(t *testing.T) {
	tests := []struct {
		title   string
		version int
		want    string
	}{
		{title: "Bali getaway", version: 2, want: "Bali getaway (v2)"},
		{title: "Bali getaway (v2)", version: 3, want: "Bali getaway (v3)"},
		{title: "Trip (vip)", version: 2, want: "Trip (vip) (v2)"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.VersionTitle(tt.title, tt.version))
		})
	}
}

func TestCreateQuotationRequest_Check(t *testing.T) {
	base := func() dto.CreateQuotationRequest {
		return dto.CreateQuotationRequest{
			RequestID: "req-1",
			Title:     "Bali getaway",
			Options: []dto.OptionRequest{
				{Name: "Standard", Price: 280000.5},
				{Name: "Deluxe", Price: 350000},
			},
			TotalPrice: 280000.5,
			Margin:     0,
		}
	}

	req := base()
	assert.NoError(t, req.Check())

	req = base()
	req.TotalPrice = 350000
	assert.NoError(t, req.Check(), "any option can be the headline")

	req = base()
	req.TotalPrice = 630000.5
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(req.Check()))

	req = base()
	req.Margin = -0.5
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(req.Check()))

	req = base()
	req.Options = nil
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(req.Check()))
}

func TestCreateQuotationRequest_ToModel(t *testing.T) {
	req := dto.CreateQuotationRequest{
		RequestID:  "req-1",
		Title:      "Bali getaway",
		Options:    []dto.OptionRequest{{Name: "Standard", Price: 280000}},
		TotalPrice: 280000,
		Margin:     15,
	}

	got := req.ToModel(gDto.Actor{ID: "sales-1", Name: "Sari", Role: constant.RoleSalesperson})

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, model.StatusDraft, got.Status)
	assert.Equal(t, model.DefaultValidityDays, got.ValidityDays)
	assert.Equal(t, "sales-1", got.SalespersonID)
	assert.Equal(t, "Sari", got.SalespersonName)
	assert.Equal(t, "sales-1", got.CreatedBy)
	require.Len(t, got.Options, 1)
	assert.NotNil(t, got.Options[0].Activities)
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromInt(280000)))

	req.ValidityDays = 14
	assert.Equal(t, 14, req.ToModel(gDto.Actor{ID: "sales-1"}).ValidityDays)
}

func TestCreateVersionRequest_ToBranch(t *testing.T) {
	source := model.Quotation{
		ID:            "q-1",
		RequestID:     "req-1",
		SalespersonID: "sales-1",
		Title:         "Bali getaway",
		TotalPrice:    decimal.NewFromInt(280000),
		ValidityDays:  10,
		Status:        model.StatusApproved,
		CustomerID:    "cust-1",
	}

	req := dto.CreateVersionRequest{
		Options:    []dto.OptionRequest{{Name: "Budget", Price: 250000}},
		TotalPrice: 250000,
		Margin:     10,
	}

	branch := req.ToBranch(source, 2, gDto.Actor{ID: "mgr-1"})

	assert.NotEqual(t, source.ID, branch.ID)
	assert.Equal(t, "q-1", branch.ParentID)
	assert.Equal(t, "req-1", branch.RequestID)
	assert.Equal(t, model.StatusDraft, branch.Status)
	assert.Equal(t, "Bali getaway (v2)", branch.Title)
	assert.Equal(t, 10, branch.ValidityDays)
	assert.True(t, branch.TotalPrice.Equal(decimal.NewFromInt(250000)))
	assert.Equal(t, model.StatusApproved, source.Status, "the source is untouched")
}

func TestQuotationResponse_FromModel(t *testing.T) {
	quotation := model.Quotation{
		ID: "q-1",
		Options: model.Options{
			{Name: "Standard", Price: decimal.RequireFromString("280000.50"), Activities: []string{"snorkeling"}},
		},
		TotalPrice: decimal.RequireFromString("280000.50"),
		Margin:     decimal.RequireFromString("12.5"),
		Status:     model.StatusSent,
	}

	var res dto.QuotationResponse
	res.FromModel(quotation)

	assert.InDelta(t, 280000.5, res.TotalPrice, 0.0001)
	assert.InDelta(t, 12.5, res.Margin, 0.0001)
	require.Len(t, res.Options, 1)
	assert.Equal(t, []string{"snorkeling"}, res.Options[0].Activities)
}
