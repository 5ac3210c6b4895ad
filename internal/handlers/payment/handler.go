package payment

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/payment/model/dto"
	"tripdesk/internal/domains/payment/service"
	"tripdesk/permissions"
	"tripdesk/shared/constant"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Payment
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Payment, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.With(handler.middleware.Authorize(permissions.OpPaymentCapture)).Post("/capture", handler.CapturePayment)
		routerGroup.With(handler.middleware.Authorize(permissions.OpPaymentRefund)).Post("/refund", handler.RefundPayment)
		routerGroup.Get("/transactions/{booking_id}", handler.GetTransactions)
	})
}

// CapturePayment records an incoming payment against a booking.
// @Summary Capture a payment
// @Description Appends a completed TXN- entry and re-derives amount_paid and payment_status.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CaptureRequest true "Capture"
// @Success 201 {object} response.Data[dto.CaptureResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payments/capture [post]
// @Security BearerAuth
func (handler *Handler) CapturePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CapturePayment")
	defer scope.End()

	req := dto.CaptureRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Capture(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to capture payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment captured " + res.TransactionID)

	response.WithJSON(w, http.StatusCreated, res)
}

// RefundPayment records a refund against a booking.
// @Summary Refund a payment
// @Description Appends a negative REF- entry. The refund may not exceed the amount paid so far.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.RefundRequest true "Refund"
// @Success 201 {object} response.Data[dto.RefundResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payments/refund [post]
// @Security BearerAuth
func (handler *Handler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefundPayment")
	defer scope.End()

	req := dto.RefundRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Refund(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to refund payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment refunded " + res.RefundID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTransactions lists a booking's ledger in the order it was written.
// @Summary Get payment transactions
// @Tags Payment
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} response.Data[[]dto.TransactionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/payments/transactions/{booking_id} [get]
// @Security BearerAuth
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	res, err := handler.service.ListTransactions(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get payment transactions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
