package calculator

import (
	"fmt"
	"strings"
	"tripdesk/shared/failure"

	"github.com/shopspring/decimal"
)

const (
	TravelTypeBusiness = "business"

	TransportEconomy = "economy"
	TransportPremium = "premium"
	TransportPrivate = "private"

	// decemberToken is matched anywhere in the departure date, so day 12 of any month also counts.
	decemberToken = "12"
)

var (
	seasonalPeak      = decimal.RequireFromString("1.2")
	flexibleDemand    = decimal.RequireFromString("1.1")
	competitorDelta   = decimal.RequireFromString("0.05")
	confidenceBiz     = decimal.RequireFromString("0.85")
	confidenceLeisure = decimal.RequireFromString("0.75")

	baselineDays      = decimal.NewFromInt(3)
	conversionCeiling = decimal.RequireFromString("0.95")
	conversionFloor   = decimal.RequireFromString("0.2")
	conversionSlope   = decimal.RequireFromString("0.5")
	marginRate        = decimal.RequireFromString("0.15")
	hundred           = decimal.NewFromInt(100)
)

var starMultipliers = map[int]decimal.Decimal{
	3: decimal.NewFromInt(1),
	4: decimal.RequireFromString("1.4"),
	5: decimal.NewFromInt(2),
}

var transportMultipliers = map[string]decimal.Decimal{
	TransportEconomy: decimal.NewFromInt(1),
	TransportPremium: decimal.RequireFromString("1.3"),
	TransportPrivate: decimal.RequireFromString("1.8"),
}

type RecommendInput struct {
	BudgetMax       decimal.NullDecimal
	DepartureDate   string
	IsFlexibleDates bool
	TravelType      string
}

type Recommendation struct {
	RecommendedPrice decimal.Decimal
	Confidence       decimal.Decimal
	SeasonalFactor   decimal.Decimal
	DemandFactor     decimal.Decimal
	CompetitorDelta  decimal.Decimal
	Reasoning        string
}

type Scenario struct {
	BasePrice      decimal.Decimal
	HotelStar      int
	TransportClass string
	DurationDays   int
}

type Simulation struct {
	AdjustedPrice         decimal.Decimal
	EstimatedConversion   decimal.Decimal
	PriceChangePercentage decimal.Decimal
	MarginImpact          decimal.Decimal
}

// Recommend prices a request from its maximum budget.
func Recommend(input RecommendInput) (Recommendation, error) {
	if !input.BudgetMax.Valid || !input.BudgetMax.Decimal.IsPositive() {
		return Recommendation{}, failure.BadRequestFromString("budget_max must be greater than 0 to recommend a price")
	}

	base := input.BudgetMax.Decimal
	reasons := []string{fmt.Sprintf("starting from the maximum budget of %s", base.StringFixed(2))}

	seasonal := decimal.NewFromInt(1)
	if strings.Contains(input.DepartureDate, decemberToken) {
		seasonal = seasonalPeak
		reasons = append(reasons, "December peak season adds 20%")
	}

	demand := decimal.NewFromInt(1)
	if input.IsFlexibleDates {
		demand = flexibleDemand
		reasons = append(reasons, "flexible dates allow a 10% demand premium")
	}

	reasons = append(reasons, "priced 5% under the assumed competitor rate")

	confidence := confidenceLeisure
	if input.TravelType == TravelTypeBusiness {
		confidence = confidenceBiz
		reasons = append(reasons, "business travel raises confidence")
	}

	price := base.Mul(seasonal).Mul(demand).Mul(decimal.NewFromInt(1).Sub(competitorDelta)).Round(2)

	return Recommendation{
		RecommendedPrice: price,
		Confidence:       confidence,
		SeasonalFactor:   seasonal,
		DemandFactor:     demand,
		CompetitorDelta:  competitorDelta,
		Reasoning:        strings.Join(reasons, "; "),
	}, nil
}

// Simulate projects how hotel, transport and duration choices move a baseline 3-day price.
func Simulate(scenario Scenario) (Simulation, error) {
	if !scenario.BasePrice.IsPositive() {
		return Simulation{}, failure.BadRequestFromString("base_price must be greater than 0")
	}

	if scenario.DurationDays <= 0 {
		return Simulation{}, failure.BadRequestFromString("duration_days must be greater than 0")
	}

	star, ok := starMultipliers[scenario.HotelStar]
	if !ok {
		star = decimal.NewFromInt(1)
	}

	transport, ok := transportMultipliers[scenario.TransportClass]
	if !ok {
		transport = decimal.NewFromInt(1)
	}

	adjusted := scenario.BasePrice.
		Mul(star).
		Mul(transport).
		Mul(decimal.NewFromInt(int64(scenario.DurationDays))).
		Div(baselineDays).
		Round(2)

	ratio := adjusted.Div(scenario.BasePrice)
	change := ratio.Sub(decimal.NewFromInt(1))

	conversion := conversionCeiling.Sub(change.Mul(conversionSlope))
	conversion = decimal.Min(decimal.Max(conversion, conversionFloor), conversionCeiling).Round(2)

	return Simulation{
		AdjustedPrice:         adjusted,
		EstimatedConversion:   conversion,
		PriceChangePercentage: change.Mul(hundred).Round(1),
		MarginImpact:          adjusted.Sub(scenario.BasePrice).Mul(marginRate).Round(2),
	}, nil
}
