package dto

import (
	"tripdesk/internal/domains/booking/model"
	"tripdesk/shared"
	gDto "tripdesk/shared/dto"
)

// UpdateBookingStatusRequest is the only patch accepted for bookings. Payment fields are owned by the ledger.
type UpdateBookingStatusRequest struct {
	BookingStatus  string  `db:"-"               json:"booking_status"  validate:"required,oneof=cancelled completed"`
	OperationNotes *string `db:"operation_notes" json:"operation_notes" validate:"omitempty,max=2000"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	QuotationID    string  `json:"quotation_id"`
	RequestID      string  `json:"request_id"`
	CustomerID     string  `json:"customer_id"`
	CustomerName   string  `json:"customer_name"`
	TotalAmount    float64 `json:"total_amount"`
	AmountPaid     float64 `json:"amount_paid"`
	PaymentStatus  string  `json:"payment_status"`
	BookingStatus  string  `json:"booking_status"`
	TravelDate     string  `json:"travel_date"`
	OperationNotes string  `json:"operation_notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.QuotationID = model.QuotationID
	r.RequestID = model.RequestID
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
	r.TotalAmount = model.TotalAmount.InexactFloat64()
	r.AmountPaid = model.AmountPaid.InexactFloat64()
	r.PaymentStatus = model.PaymentStatus
	r.BookingStatus = model.BookingStatus
	r.TravelDate = model.TravelDate
	r.OperationNotes = model.OperationNotes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
