package dto

import (
	"tripdesk/internal/domains/request/model"
	"tripdesk/shared"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateTravelRequestRequest struct {
	Title               string   `json:"title"                validate:"required,max=200"`
	CustomerID          string   `json:"customer_id"          validate:"omitempty,max=100"`
	CustomerName        string   `json:"customer_name"        validate:"omitempty,max=200"`
	TravelType          string   `json:"travel_type"          validate:"required,max=50"`
	TravelersCount      int      `json:"travelers_count"      validate:"gt=0"`
	Adults              int      `json:"adults"               validate:"gte=0"`
	Children            int      `json:"children"             validate:"gte=0"`
	Infants             int      `json:"infants"              validate:"gte=0"`
	DepartureDate       string   `json:"departure_date"       validate:"required,traveldate"`
	ReturnDate          string   `json:"return_date"          validate:"required,traveldate"`
	IsFlexibleDates     bool     `json:"is_flexible_dates"`
	BudgetMin           *float64 `json:"budget_min"           validate:"omitempty,gte=0"`
	BudgetMax           *float64 `json:"budget_max"           validate:"omitempty,gt=0"`
	BudgetPerPerson     bool     `json:"budget_per_person"`
	Destinations        []string `json:"destinations"         validate:"required,min=1,dive,required"`
	TransportModes      []string `json:"transport_modes"      validate:"omitempty,dive,required"`
	AccommodationStar   *int     `json:"accommodation_star"   validate:"omitempty,min=1,max=5"`
	MealPreference      string   `json:"meal_preference"      validate:"omitempty,max=50"`
	SpecialRequirements string   `json:"special_requirements" validate:"omitempty,max=1000"`
}

// Check enforces the rules that span several fields.
func (c *CreateTravelRequestRequest) Check() error {
	if c.Adults+c.Children+c.Infants != c.TravelersCount {
		return failure.BadRequestFromString("adults, children and infants must add up to travelers_count")
	}

	departure, err := timezone.ParseTravelDate(c.DepartureDate)
	if err != nil {
		return failure.BadRequest(err)
	}

	returning, err := timezone.ParseTravelDate(c.ReturnDate)
	if err != nil {
		return failure.BadRequest(err)
	}

	if returning.Before(departure) {
		return failure.BadRequestFromString("return_date must not be before departure_date")
	}

	if c.BudgetMin != nil && c.BudgetMax != nil && *c.BudgetMin > *c.BudgetMax {
		return failure.BadRequestFromString("budget_min must not exceed budget_max")
	}

	return nil
}

// ToModel files the request for the customer. Admins may name the customer explicitly.
func (c *CreateTravelRequestRequest) ToModel(actor gDto.Actor) model.TravelRequest {
	customerID, customerName := c.CustomerID, c.CustomerName
	if actor.IsCustomer() {
		customerID, customerName = actor.ID, actor.Name
	}

	transportModes := c.TransportModes
	if transportModes == nil {
		transportModes = []string{}
	}

	return model.TravelRequest{
		ID:                  uuid.NewString(),
		Title:               c.Title,
		CustomerID:          customerID,
		CustomerName:        customerName,
		TravelType:          c.TravelType,
		TravelersCount:      c.TravelersCount,
		Adults:              c.Adults,
		Children:            c.Children,
		Infants:             c.Infants,
		DepartureDate:       c.DepartureDate,
		ReturnDate:          c.ReturnDate,
		IsFlexibleDates:     c.IsFlexibleDates,
		BudgetMin:           shared.FloatToDecimal(c.BudgetMin),
		BudgetMax:           shared.FloatToDecimal(c.BudgetMax),
		BudgetPerPerson:     c.BudgetPerPerson,
		Destinations:        c.Destinations,
		TransportModes:      transportModes,
		AccommodationStar:   c.AccommodationStar,
		MealPreference:      c.MealPreference,
		SpecialRequirements: c.SpecialRequirements,
		Status:              model.StatusPending,
		Metadata:            gModel.NewMetadata(timezone.Now(), actor.ID),
	}
}

type AssignTravelRequestRequest struct {
	SalespersonID string `db:"assigned_salesperson" json:"salesperson_id" validate:"required,max=100"`
}

type TravelRequestResponse struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	CustomerID          string   `json:"customer_id"`
	CustomerName        string   `json:"customer_name"`
	TravelType          string   `json:"travel_type"`
	TravelersCount      int      `json:"travelers_count"`
	Adults              int      `json:"adults"`
	Children            int      `json:"children"`
	Infants             int      `json:"infants"`
	DepartureDate       string   `json:"departure_date"`
	ReturnDate          string   `json:"return_date"`
	IsFlexibleDates     bool     `json:"is_flexible_dates"`
	BudgetMin           *float64 `json:"budget_min"`
	BudgetMax           *float64 `json:"budget_max"`
	BudgetPerPerson     bool     `json:"budget_per_person"`
	Destinations        []string `json:"destinations"`
	TransportModes      []string `json:"transport_modes"`
	AccommodationStar   *int     `json:"accommodation_star"`
	MealPreference      string   `json:"meal_preference"`
	SpecialRequirements string   `json:"special_requirements"`
	Status              string   `json:"status"`
	AssignedSalesperson string   `json:"assigned_salesperson"`
	gDto.Metadata
}

func (r *TravelRequestResponse) FromModel(model model.TravelRequest) {
	r.ID = model.ID
	r.Title = model.Title
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
	r.TravelType = model.TravelType
	r.TravelersCount = model.TravelersCount
	r.Adults = model.Adults
	r.Children = model.Children
	r.Infants = model.Infants
	r.DepartureDate = model.DepartureDate
	r.ReturnDate = model.ReturnDate
	r.IsFlexibleDates = model.IsFlexibleDates
	r.BudgetMin = shared.DecimalToFloat(model.BudgetMin)
	r.BudgetMax = shared.DecimalToFloat(model.BudgetMax)
	r.BudgetPerPerson = model.BudgetPerPerson
	r.Destinations = model.Destinations
	r.TransportModes = model.TransportModes
	r.AccommodationStar = model.AccommodationStar
	r.MealPreference = model.MealPreference
	r.SpecialRequirements = model.SpecialRequirements
	r.Status = model.Status
	r.AssignedSalesperson = model.AssignedSalesperson
	r.Metadata.FromModel(model.Metadata)
}

type GetTravelRequestsResponse struct {
	Requests  []TravelRequestResponse `json:"requests"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetTravelRequestsResponse) FromModels(models []model.TravelRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]TravelRequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
