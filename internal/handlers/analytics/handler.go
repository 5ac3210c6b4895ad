package analytics

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/analytics/service"
	"tripdesk/shared/constant"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Analytics
	otel    otel.Otel
}

func New(service service.Analytics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Get("/conversion-rates", handler.GetConversionRates)
		routerGroup.Get("/pricing-optimization", handler.GetPricingOptimization)
	})
}

// GetConversionRates returns how many offered quotations were accepted, overall and per destination.
// @Summary Get conversion rates
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Data[dto.ConversionResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/analytics/conversion-rates [get]
// @Security BearerAuth
func (handler *Handler) GetConversionRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConversionRates")
	defer scope.End()

	res, err := handler.service.ConversionRates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get conversion rates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPricingOptimization returns the average margin and the price acceptance rate.
// @Summary Get pricing optimization figures
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Data[dto.PricingResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/analytics/pricing-optimization [get]
// @Security BearerAuth
func (handler *Handler) GetPricingOptimization(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricingOptimization")
	defer scope.End()

	res, err := handler.service.PricingOptimization(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing optimization")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
