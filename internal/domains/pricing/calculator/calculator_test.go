package calculator_test

import (
	"net/http"
	"sort"
	"testing"
	"tripdesk/internal/domains/pricing/calculator"
	"tripdesk/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budget(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name           string
		input          calculator.RecommendInput
		wantPrice      string
		wantConfidence string
		wantSeasonal   string
		wantDemand     string
		wantErr        bool
	}{
		{
			name: "december leisure trip",
			input: calculator.RecommendInput{
				BudgetMax:     budget("120000"),
				DepartureDate: "2024-12-15",
				TravelType:    "leisure",
			},
			wantPrice:      "136800.00",
			wantConfidence: "0.75",
			wantSeasonal:   "1.20",
			wantDemand:     "1.00",
		},
		{
			name: "flexible business trip outside december",
			input: calculator.RecommendInput{
				BudgetMax:       budget("50000"),
				DepartureDate:   "2024-06-03",
				IsFlexibleDates: true,
				TravelType:      calculator.TravelTypeBusiness,
			},
			wantPrice:      "52250.00",
			wantConfidence: "0.85",
			wantSeasonal:   "1.00",
			wantDemand:     "1.10",
		},
		{
			name: "day twelve of another month also counts as peak",
			input: calculator.RecommendInput{
				BudgetMax:     budget("10000"),
				DepartureDate: "2024-03-12",
			},
			wantPrice:      "11400.00",
			wantConfidence: "0.75",
			wantSeasonal:   "1.20",
			wantDemand:     "1.00",
		},
		{
			name: "fractional budget is rounded to cents",
			input: calculator.RecommendInput{
				BudgetMax:     budget("999.99"),
				DepartureDate: "2025-01-05",
			},
			wantPrice:      "949.99",
			wantConfidence: "0.75",
			wantSeasonal:   "1.00",
			wantDemand:     "1.00",
		},
		{
			name:    "missing budget",
			input:   calculator.RecommendInput{DepartureDate: "2024-12-01"},
			wantErr: true,
		},
		{
			name:    "zero budget",
			input:   calculator.RecommendInput{BudgetMax: budget("0")},
			wantErr: true,
		},
		{
			name:    "negative budget",
			input:   calculator.RecommendInput{BudgetMax: budget("-1")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calculator.Recommend(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, got.RecommendedPrice.StringFixed(2))
			assert.Equal(t, tt.wantConfidence, got.Confidence.StringFixed(2))
			assert.Equal(t, tt.wantSeasonal, got.SeasonalFactor.StringFixed(2))
			assert.Equal(t, tt.wantDemand, got.DemandFactor.StringFixed(2))
			assert.Equal(t, "0.05", got.CompetitorDelta.StringFixed(2))
			assert.NotEmpty(t, got.Reasoning)
		})
	}
}

func TestRecommend_FollowsFormula(t *testing.T) {
	budgets := []string{"1", "733.37", "120000", "2500000.5"}
	dates := []string{"2024-12-24", "2024-07-01"}

	for _, b := range budgets {
		for _, date := range dates {
			for _, flexible := range []bool{true, false} {
				got, err := calculator.Recommend(calculator.RecommendInput{
					BudgetMax:       budget(b),
					DepartureDate:   date,
					IsFlexibleDates: flexible,
				})
				require.NoError(t, err)

				want := decimal.RequireFromString(b).
					Mul(got.SeasonalFactor).
					Mul(got.DemandFactor).
					Mul(decimal.RequireFromString("0.95")).
					Round(2)
				assert.True(t, want.Equal(got.RecommendedPrice), "budget %s date %s flexible %v: want %s got %s", b, date, flexible, want, got.RecommendedPrice)
			}
		}
	}
}

func TestRecommend_Reasoning(t *testing.T) {
	got, err := calculator.Recommend(calculator.RecommendInput{
		BudgetMax:       budget("1000"),
		DepartureDate:   "2024-12-01",
		IsFlexibleDates: true,
		TravelType:      calculator.TravelTypeBusiness,
	})
	require.NoError(t, err)

	assert.Contains(t, got.Reasoning, "December")
	assert.Contains(t, got.Reasoning, "flexible dates")
	assert.Contains(t, got.Reasoning, "competitor")
	assert.Contains(t, got.Reasoning, "business")

	got, err = calculator.Recommend(calculator.RecommendInput{BudgetMax: budget("1000"), DepartureDate: "2024-05-01"})
	require.NoError(t, err)

	assert.NotContains(t, got.Reasoning, "December")
	assert.NotContains(t, got.Reasoning, "flexible dates")
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		name           string
		scenario       calculator.Scenario
		wantAdjusted   string
		wantConversion string
		wantChange     string
		wantMargin     string
		wantErr        bool
	}{
		{
			name: "four star premium five days",
			scenario: calculator.Scenario{
				BasePrice:      decimal.NewFromInt(100000),
				HotelStar:      4,
				TransportClass: calculator.TransportPremium,
				DurationDays:   5,
			},
			wantAdjusted:   "303333.33",
			wantConversion: "0.20",
			wantChange:     "203.3",
			wantMargin:     "30500.00",
		},
		{
			name: "baseline keeps price",
			scenario: calculator.Scenario{
				BasePrice:      decimal.NewFromInt(30000),
				HotelStar:      3,
				TransportClass: calculator.TransportEconomy,
				DurationDays:   3,
			},
			wantAdjusted:   "30000.00",
			wantConversion: "0.95",
			wantChange:     "0.0",
			wantMargin:     "0.00",
		},
		{
			name: "shorter trip is capped at the ceiling",
			scenario: calculator.Scenario{
				BasePrice:      decimal.NewFromInt(30000),
				HotelStar:      3,
				TransportClass: calculator.TransportEconomy,
				DurationDays:   1,
			},
			wantAdjusted:   "10000.00",
			wantConversion: "0.95",
			wantChange:     "-66.7",
			wantMargin:     "-3000.00",
		},
		{
			name: "unknown star and transport default to one",
			scenario: calculator.Scenario{
				BasePrice:      decimal.NewFromInt(1000),
				HotelStar:      7,
				TransportClass: "helicopter",
				DurationDays:   3,
			},
			wantAdjusted:   "1000.00",
			wantConversion: "0.95",
			wantChange:     "0.0",
			wantMargin:     "0.00",
		},
		{
			name: "private transport",
			scenario: calculator.Scenario{
				BasePrice:      decimal.NewFromInt(1000),
				HotelStar:      3,
				TransportClass: calculator.TransportPrivate,
				DurationDays:   3,
			},
			wantAdjusted:   "1800.00",
			wantConversion: "0.55",
			wantChange:     "80.0",
			wantMargin:     "120.00",
		},
		{
			name:     "zero base price",
			scenario: calculator.Scenario{BasePrice: decimal.Zero, DurationDays: 3},
			wantErr:  true,
		},
		{
			name:     "zero duration",
			scenario: calculator.Scenario{BasePrice: decimal.NewFromInt(1000), DurationDays: 0},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calculator.Simulate(tt.scenario)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAdjusted, got.AdjustedPrice.StringFixed(2))
			assert.Equal(t, tt.wantConversion, got.EstimatedConversion.StringFixed(2))
			assert.Equal(t, tt.wantChange, got.PriceChangePercentage.StringFixed(1))
			assert.Equal(t, tt.wantMargin, got.MarginImpact.StringFixed(2))
		})
	}
}

func TestSimulate_ConversionBoundedAndNonIncreasing(t *testing.T) {
	base := decimal.NewFromInt(50000)
	results := []calculator.Simulation{}

	for _, star := range []int{2, 3, 4, 5} {
		for _, transport := range []string{calculator.TransportEconomy, calculator.TransportPremium, calculator.TransportPrivate} {
			for days := 1; days <= 14; days++ {
				got, err := calculator.Simulate(calculator.Scenario{
					BasePrice:      base,
					HotelStar:      star,
					TransportClass: transport,
					DurationDays:   days,
				})
				require.NoError(t, err)

				results = append(results, got)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AdjustedPrice.LessThan(results[j].AdjustedPrice)
	})

	floor := decimal.RequireFromString("0.2")
	ceiling := decimal.RequireFromString("0.95")

	for i, got := range results {
		assert.True(t, got.EstimatedConversion.GreaterThanOrEqual(floor), "conversion %s below floor", got.EstimatedConversion)
		assert.True(t, got.EstimatedConversion.LessThanOrEqual(ceiling), "conversion %s above ceiling", got.EstimatedConversion)

		if i > 0 {
			prev := results[i-1]
			assert.True(t, got.EstimatedConversion.LessThanOrEqual(prev.EstimatedConversion),
				"price %s has conversion %s above %s at price %s", got.AdjustedPrice, got.EstimatedConversion, prev.EstimatedConversion, prev.AdjustedPrice)
		}
	}
}
