package model

import (
	"time"
	"tripdesk/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "approval_requests"
	EntityName = "approval request"

	CachePrefix = "approval_request"

	FieldID              = "id"
	FieldQuotationID     = "quotation_id"
	FieldStatus          = "status"
	FieldDecidedBy       = "decided_by"
	FieldDecidedByName   = "decided_by_name"
	FieldDecisionComment = "decision_comment"
	FieldDecidedAt       = "decided_at"
	FieldSequence        = "sequence"
)

const (
	MinDiscountPercentage = 0
	MaxDiscountPercentage = 100
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ApprovalRequest asks a manager to sign off a discount on one quotation. Sequence is assigned by the
// database and orders pending approvals by insertion.
type ApprovalRequest struct {
	ID                 string          `db:"id"`
	QuotationID        string          `db:"quotation_id"`
	DiscountPercentage decimal.Decimal `db:"discount_percentage"`
	Reason             string          `db:"reason"`
	RequestedBy        string          `db:"requested_by"`
	RequestedByName    string          `db:"requested_by_name"`
	Status             string          `db:"status"`
	DecidedBy          string          `db:"decided_by"`
	DecidedByName      string          `db:"decided_by_name"`
	DecisionComment    string          `db:"decision_comment"`
	DecidedAt          *time.Time      `db:"decided_at"`
	Sequence           int64           `db:"sequence"            insert:"-"`
	model.Metadata
}
