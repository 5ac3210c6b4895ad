package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	requestModel "tripdesk/internal/domains/request/model"
	"tripdesk/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "quotations"
	EntityName = "quotation"

	CachePrefix = "quotation"

	FieldID            = "id"
	FieldRequestID     = "request_id"
	FieldSalespersonID = "salesperson_id"
	FieldTitle         = "title"
	FieldStatus        = "status"
	FieldParentID      = "parent_id"
	FieldCustomerID    = "customer_id"
)

const (
	VersionTableName  = "quotation_versions"
	VersionEntityName = "quotation version"

	FieldVersionID          = "id"
	FieldVersionQuotationID = "quotation_id"
	FieldVersionNumber      = "version"
	FieldVersionArchiveURL  = "archive_url"
)

const (
	StatusDraft           = "draft"
	StatusSent            = "sent"
	StatusPendingApproval = "pending_approval"
	StatusApproved        = "approved"
	StatusRejected        = "rejected"
	StatusAccepted        = "accepted"
)

const (
	DefaultValidityDays = 7
	// FirstVersion is the number given to the first snapshot. The live quotation is implicitly version 1.
	FirstVersion = 2
)

var errUnsupportedScan = errors.New("unsupported scan source")

type Option struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Duration   string          `json:"duration"`
	Hotel      string          `json:"hotel"`
	Transport  string          `json:"transport"`
	Meals      string          `json:"meals"`
	Activities []string        `json:"activities"`
}

// Options is stored as a JSONB array, keeping the order the salesperson gave.
type Options []Option

func (o Options) Value() (driver.Value, error) {
	if o == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(o) //nolint:wrapcheck
}

func (o *Options) Scan(src any) error {
	return scanJSON(src, o)
}

// HasPrice reports whether one of the options carries exactly price.
func (o Options) HasPrice(price decimal.Decimal) bool {
	for _, option := range o {
		if option.Price.Equal(price) {
			return true
		}
	}

	return false
}

type Quotation struct {
	ID              string          `db:"id"`
	RequestID       string          `db:"request_id"`
	SalespersonID   string          `db:"salesperson_id"`
	SalespersonName string          `db:"salesperson_name"`
	Title           string          `db:"title"`
	Options         Options         `db:"options"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	Margin          decimal.Decimal `db:"margin"`
	ValidityDays    int             `db:"validity_days"`
	Status          string          `db:"status"`
	ParentID        string          `db:"parent_id"`
	CustomerID      string          `db:"customer_id"   table:"travel_requests"`
	model.Metadata
}

// GetJoinQuery pulls the owning customer from the travel request so customer reads can be scoped.
func (Quotation) GetJoinQuery() string {
	return "JOIN " + requestModel.TableName + " ON " + requestModel.TableName + ".id = " + TableName + ".request_id"
}

// Snapshot is the immutable copy of a quotation taken when a version is branched.
type Snapshot struct {
	Title           string          `json:"title"`
	SalespersonID   string          `json:"salesperson_id"`
	SalespersonName string          `json:"salesperson_name"`
	Options         Options         `json:"options"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Margin          decimal.Decimal `json:"margin"`
	ValidityDays    int             `json:"validity_days"`
	Status          string          `json:"status"`
}

func (s Snapshot) Value() (driver.Value, error) {
	return json.Marshal(s) //nolint:wrapcheck
}

func (s *Snapshot) Scan(src any) error {
	return scanJSON(src, s)
}

func NewSnapshot(quotation Quotation) Snapshot {
	return Snapshot{
		Title:           quotation.Title,
		SalespersonID:   quotation.SalespersonID,
		SalespersonName: quotation.SalespersonName,
		Options:         quotation.Options,
		TotalPrice:      quotation.TotalPrice,
		Margin:          quotation.Margin,
		ValidityDays:    quotation.ValidityDays,
		Status:          quotation.Status,
	}
}

type Version struct {
	ID          string   `db:"id"`
	QuotationID string   `db:"quotation_id"`
	Version     int      `db:"version"`
	Snapshot    Snapshot `db:"snapshot"`
	BranchID    string   `db:"branch_id"`
	AuthorID    string   `db:"author_id"`
	AuthorName  string   `db:"author_name"`
	ArchiveURL  string   `db:"archive_url"`
	model.Metadata
}

func scanJSON(src, dest any) error {
	switch value := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(value, dest) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(value), dest) //nolint:wrapcheck
	default:
		return errUnsupportedScan
	}
}
