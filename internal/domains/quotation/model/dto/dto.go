package dto

import (
	"fmt"
	"regexp"
	"tripdesk/internal/domains/quotation/model"
	"tripdesk/shared"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var versionSuffix = regexp.MustCompile(`\s*\(v\d+\)$`)

type OptionRequest struct {
	Name       string   `json:"name"       validate:"required,max=100"`
	Price      float64  `json:"price"      validate:"gt=0"`
	Duration   string   `json:"duration"   validate:"omitempty,max=100"`
	Hotel      string   `json:"hotel"      validate:"omitempty,max=200"`
	Transport  string   `json:"transport"  validate:"omitempty,max=200"`
	Meals      string   `json:"meals"      validate:"omitempty,max=200"`
	Activities []string `json:"activities" validate:"omitempty,dive,required"`
}

func toOptions(requests []OptionRequest) model.Options {
	options := make(model.Options, len(requests))

	for i, req := range requests {
		activities := req.Activities
		if activities == nil {
			activities = []string{}
		}

		options[i] = model.Option{
			Name:       req.Name,
			Price:      decimal.NewFromFloat(req.Price),
			Duration:   req.Duration,
			Hotel:      req.Hotel,
			Transport:  req.Transport,
			Meals:      req.Meals,
			Activities: activities,
		}
	}

	return options
}

// checkPricing ensures the headline price is one of the offered options.
func checkPricing(options []OptionRequest, totalPrice, margin float64) error {
	if len(options) == 0 {
		return failure.BadRequestFromString("at least one option is required")
	}

	if margin < 0 {
		return failure.BadRequestFromString("margin must not be negative")
	}

	if !toOptions(options).HasPrice(decimal.NewFromFloat(totalPrice)) {
		return failure.BadRequestFromString("total_price must equal the price of one of the options")
	}

	return nil
}

type CreateQuotationRequest struct {
	RequestID    string          `json:"request_id"    validate:"required,max=100"`
	Title        string          `json:"title"         validate:"required,max=200"`
	Options      []OptionRequest `json:"options"       validate:"required,min=1,dive"`
	TotalPrice   float64         `json:"total_price"   validate:"gt=0"`
	Margin       float64         `json:"margin"        validate:"gte=0"`
	ValidityDays int             `json:"validity_days" validate:"omitempty,gt=0,lte=365"`
}

func (c *CreateQuotationRequest) Check() error {
	return checkPricing(c.Options, c.TotalPrice, c.Margin)
}

func (c *CreateQuotationRequest) ToModel(actor gDto.Actor) model.Quotation {
	validity := c.ValidityDays
	if validity == 0 {
		validity = model.DefaultValidityDays
	}

	return model.Quotation{
		ID:              uuid.NewString(),
		RequestID:       c.RequestID,
		SalespersonID:   actor.ID,
		SalespersonName: actor.Name,
		Title:           c.Title,
		Options:         toOptions(c.Options),
		TotalPrice:      decimal.NewFromFloat(c.TotalPrice),
		Margin:          decimal.NewFromFloat(c.Margin),
		ValidityDays:    validity,
		Status:          model.StatusDraft,
		Metadata:        gModel.NewMetadata(timezone.Now(), actor.ID),
	}
}

type CreateVersionRequest struct {
	Options    []OptionRequest `json:"options"     validate:"required,min=1,dive"`
	TotalPrice float64         `json:"total_price" validate:"gt=0"`
	Margin     float64         `json:"margin"      validate:"gte=0"`
}

func (c *CreateVersionRequest) Check() error {
	return checkPricing(c.Options, c.TotalPrice, c.Margin)
}

// ToBranch builds the new draft quotation that carries the revised pricing. The source is left untouched.
func (c *CreateVersionRequest) ToBranch(source model.Quotation, version int, actor gDto.Actor) model.Quotation {
	return model.Quotation{
		ID:              uuid.NewString(),
		RequestID:       source.RequestID,
		SalespersonID:   source.SalespersonID,
		SalespersonName: source.SalespersonName,
		Title:           VersionTitle(source.Title, version),
		Options:         toOptions(c.Options),
		TotalPrice:      decimal.NewFromFloat(c.TotalPrice),
		Margin:          decimal.NewFromFloat(c.Margin),
		ValidityDays:    source.ValidityDays,
		Status:          model.StatusDraft,
		ParentID:        source.ID,
		CustomerID:      source.CustomerID,
		Metadata:        gModel.NewMetadata(timezone.Now(), actor.ID),
	}
}

// VersionTitle replaces any trailing "(vN)" with the new version number.
func VersionTitle(title string, version int) string {
	return fmt.Sprintf("%s (v%d)", versionSuffix.ReplaceAllString(title, ""), version)
}

type OptionResponse struct {
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	Duration   string   `json:"duration"`
	Hotel      string   `json:"hotel"`
	Transport  string   `json:"transport"`
	Meals      string   `json:"meals"`
	Activities []string `json:"activities"`
}

func fromOptions(options model.Options) []OptionResponse {
	res := make([]OptionResponse, len(options))

	for i, option := range options {
		res[i] = OptionResponse{
			Name:       option.Name,
			Price:      option.Price.InexactFloat64(),
			Duration:   option.Duration,
			Hotel:      option.Hotel,
			Transport:  option.Transport,
			Meals:      option.Meals,
			Activities: option.Activities,
		}
	}

	return res
}

type QuotationResponse struct {
	ID              string           `json:"id"`
	RequestID       string           `json:"request_id"`
	CustomerID      string           `json:"customer_id"`
	SalespersonID   string           `json:"salesperson_id"`
	SalespersonName string           `json:"salesperson_name"`
	Title           string           `json:"title"`
	Options         []OptionResponse `json:"options"`
	TotalPrice      float64          `json:"total_price"`
	Margin          float64          `json:"margin"`
	ValidityDays    int              `json:"validity_days"`
	Status          string           `json:"status"`
	ParentID        string           `json:"parent_id,omitempty"`
	gDto.Metadata
}

func (r *QuotationResponse) FromModel(model model.Quotation) {
	r.ID = model.ID
	r.RequestID = model.RequestID
	r.CustomerID = model.CustomerID
	r.SalespersonID = model.SalespersonID
	r.SalespersonName = model.SalespersonName
	r.Title = model.Title
	r.Options = fromOptions(model.Options)
	r.TotalPrice = model.TotalPrice.InexactFloat64()
	r.Margin = model.Margin.InexactFloat64()
	r.ValidityDays = model.ValidityDays
	r.Status = model.Status
	r.ParentID = model.ParentID
	r.Metadata.FromModel(model.Metadata)
}

type GetQuotationsResponse struct {
	Quotations []QuotationResponse `json:"quotations"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetQuotationsResponse) FromModels(models []model.Quotation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Quotations = make([]QuotationResponse, len(models))
	for i, mod := range models {
		r.Quotations[i].FromModel(mod)
	}
}

type AcceptQuotationResponse struct {
	Quotation QuotationResponse `json:"quotation"`
	BookingID string            `json:"booking_id"`
}

type SnapshotResponse struct {
	Title           string           `json:"title"`
	SalespersonID   string           `json:"salesperson_id"`
	SalespersonName string           `json:"salesperson_name"`
	Options         []OptionResponse `json:"options"`
	TotalPrice      float64          `json:"total_price"`
	Margin          float64          `json:"margin"`
	ValidityDays    int              `json:"validity_days"`
	Status          string           `json:"status"`
}

type VersionResponse struct {
	ID          string           `json:"id"`
	QuotationID string           `json:"quotation_id"`
	Version     int              `json:"version"`
	BranchID    string           `json:"branch_id"`
	AuthorID    string           `json:"author_id"`
	AuthorName  string           `json:"author_name"`
	ArchiveURL  string           `json:"archive_url,omitempty"`
	Snapshot    SnapshotResponse `json:"snapshot"`
	gDto.Metadata
}

func (r *VersionResponse) FromModel(model model.Version) {
	r.ID = model.ID
	r.QuotationID = model.QuotationID
	r.Version = model.Version
	r.BranchID = model.BranchID
	r.AuthorID = model.AuthorID
	r.AuthorName = model.AuthorName
	r.ArchiveURL = model.ArchiveURL
	r.Snapshot = SnapshotResponse{
		Title:           model.Snapshot.Title,
		SalespersonID:   model.Snapshot.SalespersonID,
		SalespersonName: model.Snapshot.SalespersonName,
		Options:         fromOptions(model.Snapshot.Options),
		TotalPrice:      model.Snapshot.TotalPrice.InexactFloat64(),
		Margin:          model.Snapshot.Margin.InexactFloat64(),
		ValidityDays:    model.Snapshot.ValidityDays,
		Status:          model.Snapshot.Status,
	}
	r.Metadata.FromModel(model.Metadata)
}

type CreateVersionResponse struct {
	Version   VersionResponse   `json:"version"`
	Quotation QuotationResponse `json:"quotation"`
}
