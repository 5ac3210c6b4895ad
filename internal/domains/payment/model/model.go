package model

import (
	"tripdesk/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "payment_transactions"
	EntityName = "payment transaction"

	FieldID            = "id"
	FieldTransactionID = "transaction_id"
	FieldBookingID     = "booking_id"
	FieldStatus        = "status"
	FieldSequence      = "sequence"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

const (
	PrefixCapture = "TXN"
	PrefixRefund  = "REF"

	// AmountScale is the number of decimal places the ledger columns store.
	AmountScale = 2

	PaymentMethodRefund = "refund"
)

// PaymentTransaction is an append-only ledger entry. Captures are positive, refunds negative.
type PaymentTransaction struct {
	ID            string          `db:"id"`
	TransactionID string          `db:"transaction_id"`
	BookingID     string          `db:"booking_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	Reason        string          `db:"reason"`
	ProcessedBy   string          `db:"processed_by"`
	Sequence      int64           `db:"sequence"       insert:"-"`
	model.Metadata
}
