package dto

import (
	"tripdesk/internal/domains/pricing/calculator"

	"github.com/shopspring/decimal"
)

type RecommendationResponse struct {
	RequestID        string  `json:"request_id"`
	RecommendedPrice float64 `json:"recommended_price"`
	Confidence       float64 `json:"confidence"`
	SeasonalFactor   float64 `json:"seasonal_factor"`
	DemandFactor     float64 `json:"demand_factor"`
	CompetitorDelta  float64 `json:"competitor_delta"`
	Reasoning        string  `json:"reasoning"`
}

func (r *RecommendationResponse) FromModel(requestID string, rec calculator.Recommendation) {
	r.RequestID = requestID
	r.RecommendedPrice = rec.RecommendedPrice.InexactFloat64()
	r.Confidence = rec.Confidence.InexactFloat64()
	r.SeasonalFactor = rec.SeasonalFactor.InexactFloat64()
	r.DemandFactor = rec.DemandFactor.InexactFloat64()
	r.CompetitorDelta = rec.CompetitorDelta.InexactFloat64()
	r.Reasoning = rec.Reasoning
}

type SimulateRequest struct {
	BasePrice      float64 `json:"base_price"      validate:"gt=0"`
	HotelStar      int     `json:"hotel_star"      validate:"omitempty,min=1,max=5"`
	TransportClass string  `json:"transport_class" validate:"omitempty,oneof=economy premium private"`
	DurationDays   int     `json:"duration_days"   validate:"gt=0,max=365"`
}

func (r SimulateRequest) ToScenario() calculator.Scenario {
	return calculator.Scenario{
		BasePrice:      decimal.NewFromFloat(r.BasePrice),
		HotelStar:      r.HotelStar,
		TransportClass: r.TransportClass,
		DurationDays:   r.DurationDays,
	}
}

type SimulationResponse struct {
	AdjustedPrice         float64 `json:"adjusted_price"`
	EstimatedConversion   float64 `json:"estimated_conversion"`
	PriceChangePercentage float64 `json:"price_change_percentage"`
	MarginImpact          float64 `json:"margin_impact"`
}

func (r *SimulationResponse) FromModel(sim calculator.Simulation) {
	r.AdjustedPrice = sim.AdjustedPrice.InexactFloat64()
	r.EstimatedConversion = sim.EstimatedConversion.InexactFloat64()
	r.PriceChangePercentage = sim.PriceChangePercentage.InexactFloat64()
	r.MarginImpact = sim.MarginImpact.InexactFloat64()
}
