package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/booking/lifecycle"
	"tripdesk/internal/domains/booking/model"
	"tripdesk/internal/domains/booking/model/dto"
	"tripdesk/internal/domains/booking/repository"
	"tripdesk/permissions"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = model.CachePrefix + ":get"
	cacheGetAllBooking = model.CachePrefix + ":gets"
	cacheCountBooking  = model.CachePrefix + ":count"
)

type Booking interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo   repository.Booking
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	policy *permissions.Policy
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, policy *permissions.Policy) Booking {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		policy: policy,
	}
}

// Scope narrows filter to the bookings the actor may see.
func Scope(actor gDto.Actor, filter gDto.FilterGroup) gDto.FilterGroup {
	if !actor.IsCustomer() {
		return filter
	}

	return gDto.And(filter, gDto.FilterGroup{
		Filters: []any{shared.FilterByField(model.FieldCustomerID, actor.ID, model.TableName)},
	})
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpBookingView); err != nil {
		return res, err //nolint:wrapcheck
	}

	filter = Scope(actor, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpBookingView); err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.count(ctx, req, Scope(actor, filter))
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpBookingView); err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, checkOwner(actor, res.CustomerID)
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, checkOwner(actor, res.CustomerID)
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpBookingUpdateStatus); err != nil {
		return res, err //nolint:wrapcheck
	}

	trigger, ok := lifecycle.TriggerFor(req.BookingStatus)
	if !ok {
		return res, failure.BadRequestFromString("booking_status must be one of cancelled completed")
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	next, err := lifecycle.Next(id, booking.BookingStatus, trigger)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	patch := shared.TransformFields(req, actor.ID)
	patch[model.FieldBookingStatus] = next

	affected, err := s.repo.UpdateWhere(ctx, patch, shared.FilterByIDAndStatus(id, model.FieldID, booking.BookingStatus, model.FieldBookingStatus, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if affected == 0 {
		return res, failure.Conflict("booking was modified concurrently, reload and retry") // nolint:wrapcheck
	}

	booking.BookingStatus = next
	if req.OperationNotes != nil {
		booking.OperationNotes = *req.OperationNotes
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

// checkOwner hides other customers' bookings behind NotFound.
func checkOwner(actor gDto.Actor, customerID string) error {
	if actor.IsCustomer() && actor.ID != customerID {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return nil
}
