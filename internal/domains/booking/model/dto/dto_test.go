package dto_test

import (
	"testing"
	"time"
	"tripdesk/internal/domains/booking/model"
	"tripdesk/internal/domains/booking/model/dto"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id string) model.Booking {
	return model.Booking{
		ID:            id,
		QuotationID:   "q-1",
		RequestID:     "r-1",
		CustomerID:    "c-1",
		CustomerName:  "Carla Customer",
		TotalAmount:   decimal.RequireFromString("280000"),
		AmountPaid:    decimal.RequireFromString("50000.25"),
		PaymentStatus: model.PaymentStatusPartial,
		BookingStatus: model.BookingStatusConfirmed,
		TravelDate:    "2024-12-15",
		Metadata:      gModel.NewMetadata(time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC), "sales-1"),
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	var res dto.BookingResponse
	res.FromModel(booking("b-1"))

	assert.Equal(t, "b-1", res.ID)
	assert.Equal(t, "q-1", res.QuotationID)
	assert.InDelta(t, 280000, res.TotalAmount, 0.001)
	assert.InDelta(t, 50000.25, res.AmountPaid, 0.001)
	assert.Equal(t, model.PaymentStatusPartial, res.PaymentStatus)
	assert.Equal(t, "2024-12-15", res.TravelDate)
	assert.Equal(t, "sales-1", res.CreatedBy)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	var res dto.GetBookingsResponse
	res.FromModels([]model.Booking{booking("b-1"), booking("b-2")}, 12, 10)

	require.Len(t, res.Bookings, 2)
	assert.Equal(t, "b-2", res.Bookings[1].ID)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestUpdateBookingStatusRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.UpdateBookingStatusRequest
		wantErr bool
	}{
		{name: "cancel", req: dto.UpdateBookingStatusRequest{BookingStatus: model.BookingStatusCancelled}},
		{name: "complete", req: dto.UpdateBookingStatusRequest{BookingStatus: model.BookingStatusCompleted}},
		{name: "confirmed is set at creation only", req: dto.UpdateBookingStatusRequest{BookingStatus: model.BookingStatusConfirmed}, wantErr: true},
		{name: "status required", req: dto.UpdateBookingStatusRequest{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
