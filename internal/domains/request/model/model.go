package model

import (
	"tripdesk/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "travel_requests"
	EntityName = "travel request"

	// CachePrefix covers every cached read. Domains that move a request's status clear it.
	CachePrefix = "travel_request"

	FieldID                  = "id"
	FieldTitle               = "title"
	FieldCustomerID          = "customer_id"
	FieldTravelType          = "travel_type"
	FieldDepartureDate       = "departure_date"
	FieldStatus              = "status"
	FieldAssignedSalesperson = "assigned_salesperson"
)

const (
	StatusPending   = "pending"
	StatusQuoted    = "quoted"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type TravelRequest struct {
	ID                  string              `db:"id"`
	Title               string              `db:"title"`
	CustomerID          string              `db:"customer_id"`
	CustomerName        string              `db:"customer_name"`
	TravelType          string              `db:"travel_type"`
	TravelersCount      int                 `db:"travelers_count"`
	Adults              int                 `db:"adults"`
	Children            int                 `db:"children"`
	Infants             int                 `db:"infants"`
	DepartureDate       string              `db:"departure_date"`
	ReturnDate          string              `db:"return_date"`
	IsFlexibleDates     bool                `db:"is_flexible_dates"`
	BudgetMin           decimal.NullDecimal `db:"budget_min"`
	BudgetMax           decimal.NullDecimal `db:"budget_max"`
	BudgetPerPerson     bool                `db:"budget_per_person"`
	Destinations        pq.StringArray      `db:"destinations"`
	TransportModes      pq.StringArray      `db:"transport_modes"`
	AccommodationStar   *int                `db:"accommodation_star"`
	MealPreference      string              `db:"meal_preference"`
	SpecialRequirements string              `db:"special_requirements"`
	Status              string              `db:"status"`
	AssignedSalesperson string              `db:"assigned_salesperson"`
	model.Metadata
}

// IsOpen reports whether the request can still receive quotations.
func (r TravelRequest) IsOpen() bool {
	return r.Status == StatusPending || r.Status == StatusQuoted
}
