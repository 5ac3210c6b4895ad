package dto

// DestinationConversion counts quotations offered for one destination and how many were accepted.
// A request with several destinations counts toward each of them.
type DestinationConversion struct {
	Offered  int     `json:"offered"`
	Accepted int     `json:"accepted"`
	Rate     float64 `json:"rate"`
}

type ConversionResponse struct {
	OverallConversion float64                          `json:"overall_conversion"`
	Offered           int                              `json:"offered"`
	Accepted          int                              `json:"accepted"`
	ByDestination     map[string]DestinationConversion `json:"by_destination"`
}

type PricingResponse struct {
	AverageMargin       float64 `json:"average_margin"`
	PriceAcceptanceRate float64 `json:"price_acceptance_rate"`
	Quotations          int     `json:"quotations"`
	Accepted            int     `json:"accepted"`
	Rejected            int     `json:"rejected"`
}
