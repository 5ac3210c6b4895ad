package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/infras/s3"
	approvalModel "tripdesk/internal/domains/approval/model"
	approvalRepo "tripdesk/internal/domains/approval/repository"
	bookingModel "tripdesk/internal/domains/booking/model"
	bookingRepo "tripdesk/internal/domains/booking/repository"
	"tripdesk/internal/domains/quotation/lifecycle"
	"tripdesk/internal/domains/quotation/model"
	"tripdesk/internal/domains/quotation/model/dto"
	"tripdesk/internal/domains/quotation/repository"
	requestLifecycle "tripdesk/internal/domains/request/lifecycle"
	requestModel "tripdesk/internal/domains/request/model"
	requestRepo "tripdesk/internal/domains/request/repository"
	"tripdesk/permissions"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/event"
	"tripdesk/shared/failure"
	gModel "tripdesk/shared/model"
	gRepo "tripdesk/shared/repository"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetQuotation    = model.CachePrefix + ":get"
	cacheGetAllQuotation = model.CachePrefix + ":gets"
	cacheCountQuotation  = model.CachePrefix + ":count"
	cacheVersions        = model.CachePrefix + ":versions"

	archiveDirectory   = "quotation-versions"
	archiveContentType = "application/json"

	approvalClosedComment = "quotation rejected"
)

type Quotation interface {
	Create(ctx context.Context, req dto.CreateQuotationRequest) (dto.QuotationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetQuotationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.QuotationResponse, error)
	Send(ctx context.Context, id string) (dto.QuotationResponse, error)
	Accept(ctx context.Context, id string) (dto.AcceptQuotationResponse, error)
	Reject(ctx context.Context, id string) (dto.QuotationResponse, error)
	CreateVersion(ctx context.Context, req dto.CreateVersionRequest, id string) (dto.CreateVersionResponse, error)
	ListVersions(ctx context.Context, id string) ([]dto.VersionResponse, error)
}

type serviceImpl struct {
	repo         repository.Quotation
	versionRepo  repository.Version
	requestRepo  requestRepo.TravelRequest
	bookingRepo  bookingRepo.Booking
	approvalRepo approvalRepo.ApprovalRequest
	transactor   gRepo.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	policy       *permissions.Policy
	publisher    event.Publisher
	archive      s3.S3
}

func New(
	repo repository.Quotation,
	versionRepo repository.Version,
	requestRepo requestRepo.TravelRequest,
	bookingRepo bookingRepo.Booking,
	approvalRepo approvalRepo.ApprovalRequest,
	transactor gRepo.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	policy *permissions.Policy,
	publisher event.Publisher,
	archive s3.S3,
) Quotation {
	return &serviceImpl{
		repo:         repo,
		versionRepo:  versionRepo,
		requestRepo:  requestRepo,
		bookingRepo:  bookingRepo,
		approvalRepo: approvalRepo,
		transactor:   transactor,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		policy:       policy,
		publisher:    publisher,
		archive:      archive,
	}
}

// Scope narrows filter to quotations on the actor's own requests when the actor is a customer.
func Scope(actor gDto.Actor, filter gDto.FilterGroup) gDto.FilterGroup {
	if !actor.IsCustomer() {
		return filter
	}

	return gDto.And(filter, gDto.FilterGroup{
		Filters: []any{shared.FilterByField(model.FieldCustomerID, actor.ID, requestModel.TableName)},
	})
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateQuotationRequest) (res dto.QuotationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpQuotationCreate); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = req.Check(); err != nil {
		return res, err //nolint:wrapcheck
	}

	travelRequest, err := s.requestRepo.Get(ctx, shared.FilterByID(req.RequestID, requestModel.FieldID, requestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get travel request")

		return res, fmt.Errorf("failed to get travel request: %w", err)
	}

	if travelRequest.ID == constant.Empty {
		return res, failure.NotFound("travel request not found") // nolint:wrapcheck
	}

	next, err := requestLifecycle.Next(travelRequest.ID, travelRequest.Status, requestLifecycle.TriggerQuote)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	quotation := req.ToModel(actor)
	quotation.CustomerID = travelRequest.CustomerID

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, quotation); err != nil {
			log.Error().Err(err).Msg("failed to create quotation")

			return fmt.Errorf("failed to create quotation: %w", err)
		}

		return s.moveRequest(ctx, tx, travelRequest.ID, next, requestLifecycle.TriggerQuote, actor.ID)
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(quotation)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllQuotation)
		shared.InvalidateCaches(c, s.cache, cacheCountQuotation)
		shared.InvalidateCaches(c, s.cache, requestModel.CachePrefix)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetQuotationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpQuotationView); err != nil {
		return res, err //nolint:wrapcheck
	}

	filter = Scope(actor, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllQuotation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for quotations")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count quotations")

		return res, fmt.Errorf("failed to count quotations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotations")

		return res, fmt.Errorf("failed to get quotations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quotations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpQuotationView); err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.count(ctx, req, Scope(actor, filter))
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountQuotation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for quotation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count quotations")

		return res, fmt.Errorf("failed to count quotations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quotation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.QuotationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpQuotationView); err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetQuotation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for quotation")

		return res, checkOwner(actor, res.CustomerID)
	}

	quotation, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(quotation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quotation to cache")
		}
	}()

	return res, checkOwner(actor, res.CustomerID)
}

func (s *serviceImpl) Send(ctx context.Context, id string) (res dto.QuotationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpQuotationSend); err != nil {
		return res, err //nolint:wrapcheck
	}

	quotation, err := s.transition(ctx, id, lifecycle.TriggerSend, event.TypeQuotationSent)
	if err != nil {
		return res, err
	}

	res.FromModel(quotation)

	return res, nil
}

func (s *serviceImpl) Reject(ctx context.Context, id string) (res dto.QuotationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpQuotationReject); err != nil {
		return res, err //nolint:wrapcheck
	}

	quotation, err := s.transition(ctx, id, lifecycle.TriggerReject, event.TypeQuotationRejected)
	if err != nil {
		return res, err
	}

	res.FromModel(quotation)

	return res, nil
}

// transition fires trigger on a single quotation with a compare-and-set on its current status.
func (s *serviceImpl) transition(ctx context.Context, id, trigger, eventType string) (model.Quotation, error) {
	actor := gDto.ActorFromContext(ctx)

	quotation, err := s.load(ctx, id)
	if err != nil {
		return quotation, err
	}

	if err = checkOwner(actor, quotation.CustomerID); err != nil {
		return quotation, err
	}

	next, err := lifecycle.Next(id, quotation.Status, trigger)
	if err != nil {
		return quotation, err //nolint:wrapcheck
	}

	if quotation.Status == model.StatusPendingApproval {
		err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
			if err := s.moveTx(ctx, tx, quotation, next, trigger, actor.ID); err != nil {
				return err
			}

			return s.closeApproval(ctx, tx, id, actor)
		})
	} else {
		err = s.move(ctx, quotation, next, trigger, actor.ID)
	}

	if err != nil {
		return quotation, err //nolint:wrapcheck
	}

	previous := quotation.Status
	quotation.Status = next

	s.publisher.Publish(ctx, event.New(eventType, id, actor.ID, map[string]any{
		"from": previous,
		"to":   next,
	}))
	s.invalidate(ctx, id)

	return quotation, nil
}

func (s *serviceImpl) move(ctx context.Context, quotation model.Quotation, next, trigger, actorID string) error {
	affected, err := s.repo.UpdateWhere(ctx, statusPatch(next, actorID), currentStatusFilter(quotation))
	if err != nil {
		log.Error().Err(err).Str("trigger", trigger).Msg("failed to update quotation status")

		return fmt.Errorf("failed to update quotation status: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("quotation was modified concurrently, reload and retry") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) moveTx(ctx context.Context, tx *sqlx.Tx, quotation model.Quotation, next, trigger, actorID string) error {
	affected, err := s.repo.UpdateWhereTx(ctx, tx, statusPatch(next, actorID), currentStatusFilter(quotation))
	if err != nil {
		log.Error().Err(err).Str("trigger", trigger).Msg("failed to update quotation status")

		return fmt.Errorf("failed to update quotation status: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("quotation was modified concurrently, reload and retry") // nolint:wrapcheck
	}

	return nil
}

// closeApproval rejects the approval still pending on a quotation that leaves pending_approval
// without a decision. An approval decided concurrently is left as it is.
func (s *serviceImpl) closeApproval(ctx context.Context, tx *sqlx.Tx, quotationID string, actor gDto.Actor) error {
	now := timezone.Now()

	patch := map[string]any{
		approvalModel.FieldStatus:          approvalModel.StatusRejected,
		approvalModel.FieldDecidedBy:       actor.ID,
		approvalModel.FieldDecidedByName:   actor.Name,
		approvalModel.FieldDecisionComment: approvalClosedComment,
		approvalModel.FieldDecidedAt:       now,
		constant.FieldModifiedAt:           now,
		constant.FieldModifiedBy:           actor.ID,
	}

	filter := shared.FilterByIDAndStatus(quotationID, approvalModel.FieldQuotationID, approvalModel.StatusPending, approvalModel.FieldStatus, approvalModel.TableName)

	if _, err := s.approvalRepo.UpdateWhereTx(ctx, tx, patch, filter); err != nil {
		log.Error().Err(err).Msg("failed to close pending approval request")

		return fmt.Errorf("failed to close pending approval request: %w", err)
	}

	return nil
}

// Accept confirms the quotation, opens its booking and confirms the travel request in one transaction.
func (s *serviceImpl) Accept(ctx context.Context, id string) (res dto.AcceptQuotationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Accept")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpQuotationAccept); err != nil {
		return res, err //nolint:wrapcheck
	}

	quotation, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if err = checkOwner(actor, quotation.CustomerID); err != nil {
		return res, err
	}

	next, err := lifecycle.Next(id, quotation.Status, lifecycle.TriggerAccept)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	travelRequest, err := s.requestRepo.Get(ctx, shared.FilterByID(quotation.RequestID, requestModel.FieldID, requestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get travel request")

		return res, fmt.Errorf("failed to get travel request: %w", err)
	}

	if travelRequest.ID == constant.Empty {
		return res, failure.NotFound("travel request not found") // nolint:wrapcheck
	}

	requestNext, err := requestLifecycle.Next(travelRequest.ID, travelRequest.Status, requestLifecycle.TriggerConfirm)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	booking := bookingModel.Booking{
		ID:            uuid.NewString(),
		QuotationID:   quotation.ID,
		RequestID:     travelRequest.ID,
		CustomerID:    travelRequest.CustomerID,
		CustomerName:  travelRequest.CustomerName,
		TotalAmount:   quotation.TotalPrice,
		AmountPaid:    decimal.Zero,
		PaymentStatus: bookingModel.PaymentStatusPending,
		BookingStatus: bookingModel.BookingStatusConfirmed,
		TravelDate:    travelRequest.DepartureDate,
		Metadata:      gModel.NewMetadata(timezone.Now(), actor.ID),
	}

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		affected, err := s.repo.UpdateWhereTx(ctx, tx, statusPatch(next, actor.ID), shared.FilterByIDAndStatus(id, model.FieldID, quotation.Status, model.FieldStatus, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to accept quotation")

			return fmt.Errorf("failed to accept quotation: %w", err)
		}

		if affected == 0 {
			return failure.Conflict("quotation was modified concurrently, reload and retry") // nolint:wrapcheck
		}

		if err := s.bookingRepo.InsertTx(ctx, tx, booking); err != nil {
			if postgres.IsUniqueViolation(err) {
				return failure.Conflict("quotation already has a booking") // nolint:wrapcheck
			}

			log.Error().Err(err).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}

		return s.moveRequest(ctx, tx, travelRequest.ID, requestNext, requestLifecycle.TriggerConfirm, actor.ID)
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	quotation.Status = next
	res.Quotation.FromModel(quotation)
	res.BookingID = booking.ID

	s.publisher.Publish(ctx, event.New(event.TypeQuotationAccepted, id, actor.ID, map[string]any{
		"booking_id":   booking.ID,
		"request_id":   travelRequest.ID,
		"total_amount": booking.TotalAmount.String(),
	}))
	s.invalidate(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, requestModel.CachePrefix)
		shared.InvalidateCaches(c, s.cache, bookingModel.CachePrefix)
	}()

	return res, nil
}

// CreateVersion snapshots the quotation and branches a new draft carrying the revised pricing.
// The source quotation keeps its status.
func (s *serviceImpl) CreateVersion(ctx context.Context, req dto.CreateVersionRequest, id string) (res dto.CreateVersionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateVersion")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpQuotationVersion); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = req.Check(); err != nil {
		return res, err //nolint:wrapcheck
	}

	var (
		version model.Version
		branch  model.Quotation
	)

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		source, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to lock quotation")

			return fmt.Errorf("failed to get quotation: %w", err)
		}

		if source.ID == constant.Empty {
			return failure.NotFound("quotation not found") // nolint:wrapcheck
		}

		if err := checkOwner(actor, source.CustomerID); err != nil {
			return err
		}

		existing, err := s.versionRepo.CountTx(ctx, tx, versionFilter(id))
		if err != nil {
			log.Error().Err(err).Msg("failed to count quotation versions")

			return fmt.Errorf("failed to count quotation versions: %w", err)
		}

		number := existing + model.FirstVersion
		branch = req.ToBranch(source, number, actor)
		version = model.Version{
			ID:          uuid.NewString(),
			QuotationID: source.ID,
			Version:     number,
			Snapshot:    model.NewSnapshot(source),
			BranchID:    branch.ID,
			AuthorID:    actor.ID,
			AuthorName:  actor.Name,
			Metadata:    gModel.NewMetadata(timezone.Now(), actor.ID),
		}

		if err := s.versionRepo.InsertTx(ctx, tx, version); err != nil {
			if postgres.IsUniqueViolation(err) {
				return failure.Conflict("quotation version was created concurrently, reload and retry") // nolint:wrapcheck
			}

			log.Error().Err(err).Msg("failed to create quotation version")

			return fmt.Errorf("failed to create quotation version: %w", err)
		}

		if err := s.repo.InsertTx(ctx, tx, branch); err != nil {
			log.Error().Err(err).Msg("failed to create branched quotation")

			return fmt.Errorf("failed to create branched quotation: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	version.ArchiveURL = s.archiveVersion(ctx, version)

	res.Version.FromModel(version)
	res.Quotation.FromModel(branch)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheVersions, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete quotation versions cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllQuotation)
		shared.InvalidateCaches(c, s.cache, cacheCountQuotation)
	}()

	return res, nil
}

// archiveVersion uploads the snapshot when a bucket is configured. Failures leave the version unarchived.
func (s *serviceImpl) archiveVersion(ctx context.Context, version model.Version) string {
	if !s.archive.Enabled() {
		return constant.Empty
	}

	payload, err := json.Marshal(version.Snapshot)
	if err != nil {
		log.Error().Err(err).Str("version_id", version.ID).Msg("failed to encode quotation snapshot")

		return constant.Empty
	}

	url, err := s.archive.UploadBytes(ctx, archiveDirectory+"/"+version.QuotationID, "v"+strconv.Itoa(version.Version)+".json", archiveContentType, payload)
	if err != nil {
		log.Error().Err(err).Str("version_id", version.ID).Msg("failed to archive quotation snapshot")

		return constant.Empty
	}

	patch := map[string]any{model.FieldVersionArchiveURL: url}

	if err := s.versionRepo.Update(ctx, patch, shared.FilterByID(version.ID, model.FieldVersionID, model.VersionTableName)); err != nil {
		log.Error().Err(err).Str("version_id", version.ID).Msg("failed to record quotation archive url")

		return constant.Empty
	}

	return url
}

func (s *serviceImpl) ListVersions(ctx context.Context, id string) (res []dto.VersionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListVersions")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpQuotationView); err != nil {
		return res, err //nolint:wrapcheck
	}

	quotation, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if err = checkOwner(actor, quotation.CustomerID); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheVersions, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for quotation versions")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldVersionNumber, SortDir: gDto.SortDirAsc}

	versions, err := s.versionRepo.GetAll(ctx, params, versionFilter(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotation versions")

		return res, fmt.Errorf("failed to get quotation versions: %w", err)
	}

	res = make([]dto.VersionResponse, len(versions))
	for i, version := range versions {
		res[i].FromModel(version)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quotation versions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Quotation, error) {
	quotation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotation")

		return quotation, fmt.Errorf("failed to get quotation: %w", err)
	}

	if quotation.ID == constant.Empty {
		return quotation, failure.NotFound("quotation not found") // nolint:wrapcheck
	}

	return quotation, nil
}

// moveRequest advances the travel request from any status trigger accepts. Zero rows means it moved underneath us.
func (s *serviceImpl) moveRequest(ctx context.Context, tx *sqlx.Tx, requestID, next, trigger, actorID string) error {
	filter := shared.FilterByIDAndStatuses(requestID, requestModel.FieldID, requestLifecycle.Machine.Sources(trigger), requestModel.FieldStatus, requestModel.TableName)

	patch := map[string]any{
		requestModel.FieldStatus: next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actorID,
	}

	affected, err := s.requestRepo.UpdateWhereTx(ctx, tx, patch, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update travel request status")

		return fmt.Errorf("failed to update travel request status: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("travel request was modified concurrently, reload and retry") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetQuotation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete quotation cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllQuotation)
		shared.InvalidateCaches(c, s.cache, cacheCountQuotation)
	}()
}

func statusPatch(status, actorID string) map[string]any {
	return map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actorID,
	}
}

func currentStatusFilter(quotation model.Quotation) gDto.FilterGroup {
	return shared.FilterByIDAndStatus(quotation.ID, model.FieldID, quotation.Status, model.FieldStatus, model.TableName)
}

func versionFilter(quotationID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{shared.FilterByField(model.FieldVersionQuotationID, quotationID, model.VersionTableName)},
	}
}

// checkOwner hides quotations on other customers' requests behind NotFound.
func checkOwner(actor gDto.Actor, customerID string) error {
	if actor.IsCustomer() && actor.ID != customerID {
		return failure.NotFound("quotation not found") // nolint:wrapcheck
	}

	return nil
}
