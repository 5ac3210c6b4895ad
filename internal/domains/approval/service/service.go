package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/internal/domains/approval/lifecycle"
	"tripdesk/internal/domains/approval/model"
	"tripdesk/internal/domains/approval/model/dto"
	"tripdesk/internal/domains/approval/repository"
	quotationLifecycle "tripdesk/internal/domains/quotation/lifecycle"
	quotationModel "tripdesk/internal/domains/quotation/model"
	quotationRepo "tripdesk/internal/domains/quotation/repository"
	"tripdesk/permissions"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/event"
	"tripdesk/shared/failure"
	gRepo "tripdesk/shared/repository"
	"tripdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type ApprovalRequest interface {
	RequestApproval(ctx context.Context, req dto.RequestApprovalRequest, quotationID string) (dto.RequestApprovalResponse, error)
	Decide(ctx context.Context, req dto.DecisionRequest, id string) (dto.DecisionResponse, error)
	ListPending(ctx context.Context) ([]dto.ApprovalResponse, error)
}

type serviceImpl struct {
	repo          repository.ApprovalRequest
	quotationRepo quotationRepo.Quotation
	transactor    gRepo.Transactor
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
	policy        *permissions.Policy
	publisher     event.Publisher
}

func New(
	repo repository.ApprovalRequest,
	quotationRepo quotationRepo.Quotation,
	transactor gRepo.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	policy *permissions.Policy,
	publisher event.Publisher,
) ApprovalRequest {
	return &serviceImpl{
		repo:          repo,
		quotationRepo: quotationRepo,
		transactor:    transactor,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
		policy:        policy,
		publisher:     publisher,
	}
}

// PendingFilter matches approvals still waiting for a decision, optionally on a single quotation.
func PendingFilter(quotationID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByField(model.FieldQuotationID, quotationID, model.TableName),
			shared.FilterByField(model.FieldStatus, model.StatusPending, model.TableName),
		},
	}
}

// RequestApproval opens a discount approval and moves the quotation to pending_approval.
// A quotation holds at most one pending approval.
func (s *serviceImpl) RequestApproval(ctx context.Context, req dto.RequestApprovalRequest, quotationID string) (res dto.RequestApprovalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestApproval")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpApprovalRequest); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = req.Check(); err != nil {
		return res, err //nolint:wrapcheck
	}

	quotation, err := s.quotationRepo.Get(ctx, shared.FilterByID(quotationID, quotationModel.FieldID, quotationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotation")

		return res, fmt.Errorf("failed to get quotation: %w", err)
	}

	if quotation.ID == constant.Empty {
		return res, failure.NotFound("quotation not found") // nolint:wrapcheck
	}

	pending, err := s.repo.Exist(ctx, PendingFilter(quotationID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check pending approvals")

		return res, fmt.Errorf("failed to check pending approvals: %w", err)
	}

	if pending {
		return res, failure.Conflict("quotation already has a pending approval request") // nolint:wrapcheck
	}

	next, err := quotationLifecycle.Next(quotationID, quotation.Status, quotationLifecycle.TriggerRequestApproval)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	approval := req.ToModel(quotationID, actor)

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, approval); err != nil {
			if postgres.IsUniqueViolation(err) {
				return failure.Conflict("quotation already has a pending approval request") // nolint:wrapcheck
			}

			log.Error().Err(err).Msg("failed to create approval request")

			return fmt.Errorf("failed to create approval request: %w", err)
		}

		return s.moveQuotation(ctx, tx, quotationID, quotation.Status, next, actor.ID)
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.ApprovalID = approval.ID

	s.publisher.Publish(ctx, event.New(event.TypeApprovalRequested, quotationID, actor.ID, map[string]any{
		"approval_id":         approval.ID,
		"discount_percentage": approval.DiscountPercentage.String(),
	}))
	s.invalidateQuotations(ctx)

	return res, nil
}

// Decide settles a pending approval and drives the quotation out of pending_approval. Both writes
// are guarded on the expected status, so of two concurrent decisions only one commits.
func (s *serviceImpl) Decide(ctx context.Context, req dto.DecisionRequest, id string) (res dto.DecisionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Decide")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpApprovalDecide); err != nil {
		return res, err //nolint:wrapcheck
	}

	decision, ok := lifecycle.DecisionFor(req.Decision)
	if !ok {
		return res, failure.BadRequestFromString("decision must be one of approved rejected")
	}

	approval, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get approval request")

		return res, fmt.Errorf("failed to get approval request: %w", err)
	}

	if approval.ID == constant.Empty {
		return res, failure.NotFound("approval request not found") // nolint:wrapcheck
	}

	if approval.Status != model.StatusPending {
		return res, failure.Conflict(fmt.Sprintf("approval request %s was already %s", id, approval.Status)) // nolint:wrapcheck
	}

	next, err := lifecycle.Next(id, approval.Status, decision.Trigger)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	var quotationStatus string

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		patch := map[string]any{
			model.FieldStatus:          next,
			model.FieldDecidedBy:       actor.ID,
			model.FieldDecidedByName:   actor.Name,
			model.FieldDecisionComment: req.Comment,
			model.FieldDecidedAt:       now,
			constant.FieldModifiedAt:   now,
			constant.FieldModifiedBy:   actor.ID,
		}

		affected, err := s.repo.UpdateWhereTx(ctx, tx, patch, shared.FilterByIDAndStatus(id, model.FieldID, model.StatusPending, model.FieldStatus, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to decide approval request")

			return fmt.Errorf("failed to decide approval request: %w", err)
		}

		if affected == 0 {
			return failure.Conflict(fmt.Sprintf("approval request %s was decided concurrently", id)) // nolint:wrapcheck
		}

		quotation, err := s.quotationRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(approval.QuotationID, quotationModel.FieldID, quotationModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to lock quotation")

			return fmt.Errorf("failed to get quotation: %w", err)
		}

		if quotation.ID == constant.Empty {
			return failure.NotFound("quotation not found") // nolint:wrapcheck
		}

		quotationStatus, err = quotationLifecycle.Next(quotation.ID, quotation.Status, decision.QuotationTrigger)
		if err != nil {
			return err //nolint:wrapcheck
		}

		return s.moveQuotation(ctx, tx, quotation.ID, quotation.Status, quotationStatus, actor.ID)
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	approval.Status = next
	approval.DecidedBy = actor.ID
	approval.DecidedByName = actor.Name
	approval.DecisionComment = req.Comment
	approval.DecidedAt = &now

	res.Approval.FromModel(approval)
	res.QuotationStatus = quotationStatus

	s.publisher.Publish(ctx, event.New(event.TypeApprovalDecided, approval.QuotationID, actor.ID, map[string]any{
		"approval_id":      id,
		"decision":         next,
		"quotation_status": quotationStatus,
	}))
	s.invalidateQuotations(ctx)

	return res, nil
}

// ListPending returns undecided approvals in the order they were raised.
func (s *serviceImpl) ListPending(ctx context.Context) (res []dto.ApprovalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPending")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpApprovalListPending); err != nil {
		return res, err //nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: model.FieldSequence, SortDir: gDto.SortDirAsc}

	approvals, err := s.repo.GetAll(ctx, params, PendingFilter(constant.Empty))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending approval requests")

		return res, fmt.Errorf("failed to get pending approval requests: %w", err)
	}

	res = make([]dto.ApprovalResponse, len(approvals))
	for i, approval := range approvals {
		res[i].FromModel(approval)
	}

	return res, nil
}

func (s *serviceImpl) moveQuotation(ctx context.Context, tx *sqlx.Tx, quotationID, current, next, actorID string) error {
	patch := map[string]any{
		quotationModel.FieldStatus: next,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   actorID,
	}

	filter := shared.FilterByIDAndStatus(quotationID, quotationModel.FieldID, current, quotationModel.FieldStatus, quotationModel.TableName)

	affected, err := s.quotationRepo.UpdateWhereTx(ctx, tx, patch, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update quotation status")

		return fmt.Errorf("failed to update quotation status: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("quotation was modified concurrently, reload and retry") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidateQuotations(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, quotationModel.CachePrefix)
	}()
}
