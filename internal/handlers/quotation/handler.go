package quotation

import (
	"net/http"
	"tripdesk/infras/otel"
	approvalDto "tripdesk/internal/domains/approval/model/dto"
	approvalService "tripdesk/internal/domains/approval/service"
	"tripdesk/internal/domains/quotation/model"
	"tripdesk/internal/domains/quotation/model/dto"
	"tripdesk/internal/domains/quotation/service"
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
	service         service.Quotation
	approvalService approvalService.ApprovalRequest
	middleware      middleware.AuthRole
	otel            otel.Otel
}

func New(service service.Quotation, approvalService approvalService.ApprovalRequest, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:         service,
		approvalService: approvalService,
		middleware:      middleware,
		otel:            otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quotations", func(routerGroup chi.Router) {
		routerGroup.With(handler.middleware.Authorize(permissions.OpQuotationCreate)).Post("/", handler.CreateQuotation)
		routerGroup.Get("/", handler.GetQuotations)
		routerGroup.Get("/{id}", handler.GetQuotationByID)
		routerGroup.With(handler.middleware.Authorize(permissions.OpQuotationSend)).Post("/{id}/send", handler.SendQuotation)
		routerGroup.With(handler.middleware.Authorize(permissions.OpQuotationAccept)).Post("/{id}/accept", handler.AcceptQuotation)
		routerGroup.With(handler.middleware.Authorize(permissions.OpQuotationReject)).Post("/{id}/reject", handler.RejectQuotation)
		routerGroup.Post("/{id}/versions", handler.CreateQuotationVersion)
		routerGroup.Get("/{id}/versions", handler.GetQuotationVersions)
		routerGroup.With(handler.middleware.Authorize(permissions.OpApprovalRequest)).Post("/{id}/approval", handler.RequestApproval)
	})
}

// CreateQuotation drafts a quotation for a travel request.
// @Summary Create a quotation
// @Description Create a draft quotation. total_price must equal the price of one of the options.
// @Tags Quotation
// @Accept json
// @Produce json
// @Param request body dto.CreateQuotationRequest true "Create Quotation Request"
// @Success 201 {object} response.Data[dto.QuotationResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/quotations [post]
// @Security BearerAuth
func (handler *Handler) CreateQuotation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateQuotation")
	defer scope.End()

	req := dto.CreateQuotationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create quotation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Quotation created " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetQuotations lists quotations visible to the caller.
// @Summary Get quotations
// @Description Customers only see quotations on their own requests.
// @Tags Quotation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param request_id query string false "Filter by travel request"
// @Param status query string false "Filter by status"
// @Param salesperson_id query string false "Filter by salesperson"
// @Success 200 {object} response.Data[dto.GetQuotationsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/quotations [get]
// @Security BearerAuth
func (handler *Handler) GetQuotations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuotations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByField(model.FieldRequestID, query.Get(model.FieldRequestID), model.TableName),
			shared.FilterByField(model.FieldStatus, query.Get(model.FieldStatus), model.TableName),
			shared.FilterByField(model.FieldSalespersonID, query.Get(model.FieldSalespersonID), model.TableName),
		},
	}

	quotations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get quotations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quotations)
}

// GetQuotationByID retrieves a quotation by its ID.
// @Summary Get a quotation
// @Tags Quotation
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.Data[dto.QuotationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/quotations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetQuotationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuotationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get quotation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SendQuotation marks a draft or approved quotation as delivered to the customer.
// @Summary Send a quotation
// @Tags Quotation
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.Data[dto.QuotationResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/quotations/{id}/send [post]
// @Security BearerAuth
func (handler *Handler) SendQuotation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendQuotation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Send(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to send quotation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quotation sent " + id)

	response.WithJSON(w, http.StatusOK, res)
}

// AcceptQuotation confirms a quotation and opens its booking.
// @Summary Accept a quotation
// @Tags Quotation
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.Data[dto.AcceptQuotationResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/quotations/{id}/accept [post]
// @Security BearerAuth
func (handler *Handler) AcceptQuotation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcceptQuotation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Accept(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to accept quotation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quotation accepted, booking " + res.BookingID)

	response.WithJSON(w, http.StatusOK, res)
}

// RejectQuotation closes a quotation for good.
// @Summary Reject a quotation
// @Tags Quotation
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.Data[dto.QuotationResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/quotations/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectQuotation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectQuotation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Reject(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to reject quotation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateQuotationVersion snapshots a quotation and branches a new draft from it.
// @Summary Create a quotation version
// @Description The source quotation is left untouched. The branch carries the new options and price.
// @Tags Quotation
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body dto.CreateVersionRequest true "Create Version Request"
// @Success 201 {object} response.Data[dto.CreateVersionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/quotations/{id}/versions [post]
// @Security BearerAuth
func (handler *Handler) CreateQuotationVersion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateQuotationVersion")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.CreateVersionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateVersion(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to create quotation version")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetQuotationVersions lists the snapshots taken of a quotation.
// @Summary Get quotation versions
// @Tags Quotation
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.Data[[]dto.VersionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/quotations/{id}/versions [get]
// @Security BearerAuth
func (handler *Handler) GetQuotationVersions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuotationVersions")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ListVersions(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get quotation versions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RequestApproval asks a sales manager to sign off a discount on a sent quotation.
// @Summary Request discount approval
// @Tags Approval
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body approvalDto.RequestApprovalRequest true "Approval Request"
// @Success 201 {object} response.Data[approvalDto.RequestApprovalResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/quotations/{id}/approval [post]
// @Security BearerAuth
func (handler *Handler) RequestApproval(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestApproval")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := approvalDto.RequestApprovalRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.approvalService.RequestApproval(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to request approval")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Approval requested " + res.ApprovalID)

	response.WithJSON(w, http.StatusCreated, res)
}
