package model

import (
	"tripdesk/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	CachePrefix = "booking"

	FieldID             = "id"
	FieldQuotationID    = "quotation_id"
	FieldRequestID      = "request_id"
	FieldCustomerID     = "customer_id"
	FieldAmountPaid     = "amount_paid"
	FieldPaymentStatus  = "payment_status"
	FieldBookingStatus  = "booking_status"
	FieldOperationNotes = "operation_notes"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment statuses are derived from the ledger and never written by callers.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

type Booking struct {
	ID             string          `db:"id"`
	QuotationID    string          `db:"quotation_id"`
	RequestID      string          `db:"request_id"`
	CustomerID     string          `db:"customer_id"`
	CustomerName   string          `db:"customer_name"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	AmountPaid     decimal.Decimal `db:"amount_paid"`
	PaymentStatus  string          `db:"payment_status"`
	BookingStatus  string          `db:"booking_status"`
	TravelDate     string          `db:"travel_date"`
	OperationNotes string          `db:"operation_notes"`
	model.Metadata
}
