package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/request/lifecycle"
	"tripdesk/internal/domains/request/model"
	"tripdesk/internal/domains/request/model/dto"
	"tripdesk/internal/domains/request/repository"
	"tripdesk/permissions"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"
	"tripdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRequest    = model.CachePrefix + ":get"
	cacheGetAllRequest = model.CachePrefix + ":gets"
	cacheCountRequest  = model.CachePrefix + ":count"
)

type TravelRequest interface {
	Create(ctx context.Context, req dto.CreateTravelRequestRequest) (dto.TravelRequestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTravelRequestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TravelRequestResponse, error)
	Assign(ctx context.Context, req dto.AssignTravelRequestRequest, id string) error
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.TravelRequest
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	policy *permissions.Policy
}

func New(repo repository.TravelRequest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, policy *permissions.Policy) TravelRequest {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		policy: policy,
	}
}

// Scope narrows filter to the requests the actor may see. Customers only see their own.
func Scope(actor gDto.Actor, filter gDto.FilterGroup) gDto.FilterGroup {
	if !actor.IsCustomer() {
		return filter
	}

	return gDto.And(filter, gDto.FilterGroup{
		Filters: []any{shared.FilterByField(model.FieldCustomerID, actor.ID, model.TableName)},
	})
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTravelRequestRequest) (res dto.TravelRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpRequestCreate); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = req.Check(); err != nil {
		return res, err //nolint:wrapcheck
	}

	travelRequest := req.ToModel(actor)
	if travelRequest.CustomerID == constant.Empty {
		return res, failure.BadRequestFromString("customer_id is required when filing on behalf of a customer")
	}

	if err = s.repo.Insert(ctx, travelRequest); err != nil {
		log.Error().Err(err).Msg("failed to create travel request")

		return res, fmt.Errorf("failed to create travel request: %w", err)
	}

	res.FromModel(travelRequest)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountRequest)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTravelRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpRequestView); err != nil {
		return res, err //nolint:wrapcheck
	}

	filter = Scope(actor, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRequest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for travel requests")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count travel requests")

		return res, fmt.Errorf("failed to count travel requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get travel requests")

		return res, fmt.Errorf("failed to get travel requests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save travel requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpRequestView); err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.count(ctx, req, Scope(actor, filter))
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRequest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for travel request count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count travel requests")

		return res, fmt.Errorf("failed to count travel requests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save travel request count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TravelRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpRequestView); err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetRequest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for travel request")

		return res, s.checkOwner(actor, res.CustomerID)
	}

	travelRequest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get travel request")

		return res, fmt.Errorf("failed to get travel request: %w", err)
	}

	if travelRequest.ID == constant.Empty {
		return res, failure.NotFound("travel request not found") // nolint:wrapcheck
	}

	res.FromModel(travelRequest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save travel request to cache")
		}
	}()

	return res, s.checkOwner(actor, res.CustomerID)
}

func (s *serviceImpl) Assign(ctx context.Context, req dto.AssignTravelRequestRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assign")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpRequestAssign); err != nil {
		return err //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	travelRequest, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check travel request existence")

		return fmt.Errorf("failed to get travel request: %w", err)
	}

	if travelRequest.ID == constant.Empty {
		return failure.NotFound("travel request not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, actor.ID), filter); err != nil {
		log.Error().Err(err).Msg("failed to assign travel request")

		return fmt.Errorf("failed to assign travel request: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpRequestCancel); err != nil {
		return err //nolint:wrapcheck
	}

	travelRequest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get travel request")

		return fmt.Errorf("failed to get travel request: %w", err)
	}

	if travelRequest.ID == constant.Empty {
		return failure.NotFound("travel request not found") // nolint:wrapcheck
	}

	if err = s.checkOwner(actor, travelRequest.CustomerID); err != nil {
		return err
	}

	next, err := lifecycle.Next(id, travelRequest.Status, lifecycle.TriggerCancel)
	if err != nil {
		return err //nolint:wrapcheck
	}

	patch := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor.ID,
	}

	affected, err := s.repo.UpdateWhere(ctx, patch, shared.FilterByIDAndStatus(id, model.FieldID, travelRequest.Status, model.FieldStatus, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel travel request")

		return fmt.Errorf("failed to cancel travel request: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("travel request was modified concurrently, reload and retry") // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

// checkOwner hides other customers' requests behind NotFound.
func (s *serviceImpl) checkOwner(actor gDto.Actor, customerID string) error {
	if actor.IsCustomer() && actor.ID != customerID {
		return failure.NotFound("travel request not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRequest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete travel request cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountRequest)
	}()
}
