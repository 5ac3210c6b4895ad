package approval

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/approval/model/dto"
	"tripdesk/internal/domains/approval/service"
	"tripdesk/permissions"
	"tripdesk/shared/constant"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.ApprovalRequest
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.ApprovalRequest, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/approvals", func(routerGroup chi.Router) {
		routerGroup.With(handler.middleware.Authorize(permissions.OpApprovalListPending)).Get("/pending", handler.GetPendingApprovals)
		routerGroup.With(handler.middleware.Authorize(permissions.OpApprovalDecide)).Post("/{id}/decision", handler.DecideApproval)
	})
}

// GetPendingApprovals lists approvals waiting for a decision, oldest first.
// @Summary Get pending approvals
// @Tags Approval
// @Produce json
// @Success 200 {object} response.Data[[]dto.ApprovalResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/approvals/pending [get]
// @Security BearerAuth
func (handler *Handler) GetPendingApprovals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingApprovals")
	defer scope.End()

	res, err := handler.service.ListPending(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending approvals")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DecideApproval approves or rejects a pending discount request.
// @Summary Decide an approval
// @Description An approved decision moves the quotation to approved, a rejected one back to draft.
// @Tags Approval
// @Accept json
// @Produce json
// @Param id path string true "Approval request ID"
// @Param request body dto.DecisionRequest true "Decision"
// @Success 200 {object} response.Data[dto.DecisionResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/approvals/{id}/decision [post]
// @Security BearerAuth
func (handler *Handler) DecideApproval(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecideApproval")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.DecisionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Decide(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to decide approval")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Approval " + id + " decided " + req.Decision)

	response.WithJSON(w, http.StatusOK, res)
}
