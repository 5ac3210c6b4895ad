package dto

import (
	"tripdesk/internal/domains/payment/model"
	gDto "tripdesk/shared/dto"
)

type CaptureRequest struct {
	BookingID     string  `json:"booking_id"     validate:"required,max=100"`
	Amount        float64 `json:"amount"         validate:"gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,max=50"`
}

type RefundRequest struct {
	BookingID string  `json:"booking_id" validate:"required,max=100"`
	Amount    float64 `json:"amount"     validate:"gt=0"`
	Reason    string  `json:"reason"     validate:"omitempty,max=500"`
}

type CaptureResponse struct {
	TransactionID   string  `json:"transaction_id"`
	AmountPaid      float64 `json:"amount_paid"`
	RemainingAmount float64 `json:"remaining_amount"`
	PaymentStatus   string  `json:"payment_status"`
}

type RefundResponse struct {
	RefundID      string  `json:"refund_id"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentStatus string  `json:"payment_status"`
}

type TransactionResponse struct {
	ID            string  `json:"id"`
	TransactionID string  `json:"transaction_id"`
	BookingID     string  `json:"booking_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	Reason        string  `json:"reason,omitempty"`
	ProcessedBy   string  `json:"processed_by"`
	gDto.Metadata
}

func (r *TransactionResponse) FromModel(model model.PaymentTransaction) {
	r.ID = model.ID
	r.TransactionID = model.TransactionID
	r.BookingID = model.BookingID
	r.Amount = model.Amount.InexactFloat64()
	r.PaymentMethod = model.PaymentMethod
	r.Status = model.Status
	r.Reason = model.Reason
	r.ProcessedBy = model.ProcessedBy
	r.Metadata.FromModel(model.Metadata)
}
