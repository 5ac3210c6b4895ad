package request

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/request/model"
	"tripdesk/internal/domains/request/model/dto"
	"tripdesk/internal/domains/request/service"
	"tripdesk/permissions"
	"tripdesk/shared"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.TravelRequest
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.TravelRequest, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.With(handler.middleware.Authorize(permissions.OpRequestCreate)).Post("/", handler.CreateTravelRequest)
		routerGroup.Get("/", handler.GetTravelRequests)
		routerGroup.Get("/{id}", handler.GetTravelRequestByID)
		routerGroup.With(handler.middleware.Authorize(permissions.OpRequestAssign)).Patch("/{id}/assign", handler.AssignTravelRequest)
		routerGroup.With(handler.middleware.Authorize(permissions.OpRequestCancel)).Post("/{id}/cancel", handler.CancelTravelRequest)
	})
}

// CreateTravelRequest handles the submission of a new travel request.
// @Summary Submit a travel request
// @Description Create a travel request in pending status. Customers always submit for themselves.
// @Tags Request
// @Accept json
// @Produce json
// @Param request body dto.CreateTravelRequestRequest true "Create Travel Request"
// @Success 201 {object} response.Data[dto.TravelRequestResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests [post]
// @Security BearerAuth
func (handler *Handler) CreateTravelRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTravelRequest")
	defer scope.End()

	req := dto.CreateTravelRequestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create travel request")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Travel request created " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetTravelRequests lists travel requests visible to the caller.
// @Summary Get travel requests
// @Description Customers only see their own requests.
// @Tags Request
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, quoted, confirmed, cancelled)"
// @Param travel_type query string false "Filter by travel type"
// @Param assigned_salesperson query string false "Filter by assigned salesperson"
// @Success 200 {object} response.Data[dto.GetTravelRequestsResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests [get]
// @Security BearerAuth
func (handler *Handler) GetTravelRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTravelRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByField(model.FieldStatus, query.Get(model.FieldStatus), model.TableName),
			shared.FilterByField(model.FieldTravelType, query.Get(model.FieldTravelType), model.TableName),
			shared.FilterByField(model.FieldAssignedSalesperson, query.Get(model.FieldAssignedSalesperson), model.TableName),
		},
	}

	requests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get travel requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Travel requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, requests)
}

// GetTravelRequestByID retrieves a travel request by its ID.
// @Summary Get a travel request
// @Tags Request
// @Produce json
// @Param id path string true "Travel request ID"
// @Success 200 {object} response.Data[dto.TravelRequestResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTravelRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTravelRequestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get travel request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AssignTravelRequest hands a request to a salesperson.
// @Summary Assign a travel request
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Travel request ID"
// @Param request body dto.AssignTravelRequestRequest true "Assignment"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/requests/{id}/assign [patch]
// @Security BearerAuth
func (handler *Handler) AssignTravelRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignTravelRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.AssignTravelRequestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Assign(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to assign travel request")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Travel request assigned successfully")
}

// CancelTravelRequest withdraws a request that has not been confirmed.
// @Summary Cancel a travel request
// @Tags Request
// @Produce json
// @Param id path string true "Travel request ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/requests/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelTravelRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelTravelRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to cancel travel request")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Travel request cancelled successfully")
}
