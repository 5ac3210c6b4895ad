package pricing

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/pricing/model/dto"
	"tripdesk/internal/domains/pricing/service"
	"tripdesk/shared/constant"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rate-optimization", func(routerGroup chi.Router) {
		routerGroup.Get("/recommendations/{request_id}", handler.GetRecommendation)
		routerGroup.Post("/simulate", handler.SimulatePricing)
	})
}

// GetRecommendation prices a travel request from its maximum budget.
// @Summary Recommend a price for a travel request
// @Tags Pricing
// @Produce json
// @Param request_id path string true "Travel request ID"
// @Success 200 {object} response.Data[dto.RecommendationResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rate-optimization/recommendations/{request_id} [get]
// @Security BearerAuth
func (handler *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecommendation")
	defer scope.End()

	requestID := chi.URLParam(r, constant.RequestParamRequestID)

	res, err := handler.service.RecommendForRequest(ctx, requestID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("request_id", requestID).Msg("failed to recommend price")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SimulatePricing projects a what-if price for a package configuration.
// @Summary Simulate a pricing scenario
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.SimulateRequest true "Scenario"
// @Success 200 {object} response.Data[dto.SimulationResponse]
// @Failure 400 {object} response.Error
// @Router /v1/rate-optimization/simulate [post]
// @Security BearerAuth
func (handler *Handler) SimulatePricing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SimulatePricing")
	defer scope.End()

	req := dto.SimulateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Simulate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to simulate pricing")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
