package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/pricing/calculator"
	"tripdesk/internal/domains/pricing/model/dto"
	requestModel "tripdesk/internal/domains/request/model"
	requestRepo "tripdesk/internal/domains/request/repository"
	"tripdesk/permissions"
	"tripdesk/shared"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Pricing interface {
	RecommendForRequest(ctx context.Context, requestID string) (dto.RecommendationResponse, error)
	Simulate(ctx context.Context, req dto.SimulateRequest) (dto.SimulationResponse, error)
}

type serviceImpl struct {
	requestRepo requestRepo.TravelRequest
	cfg         *config.Config
	otel        otel.Otel
	policy      *permissions.Policy
}

func New(requestRepo requestRepo.TravelRequest, cfg *config.Config, otel otel.Otel, policy *permissions.Policy) Pricing {
	return &serviceImpl{
		requestRepo: requestRepo,
		cfg:         cfg,
		otel:        otel,
		policy:      policy,
	}
}

func (s *serviceImpl) RecommendForRequest(ctx context.Context, requestID string) (res dto.RecommendationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecommendForRequest")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpPricingRecommend); err != nil {
		return res, err //nolint:wrapcheck
	}

	request, err := s.requestRepo.Get(ctx, shared.FilterByID(requestID, requestModel.FieldID, requestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get travel request")

		return res, fmt.Errorf("failed to get travel request: %w", err)
	}

	if request.ID == constant.Empty || (actor.IsCustomer() && request.CustomerID != actor.ID) {
		return res, failure.NotFound("travel request not found") // nolint:wrapcheck
	}

	recommendation, err := calculator.Recommend(calculator.RecommendInput{
		BudgetMax:       request.BudgetMax,
		DepartureDate:   request.DepartureDate,
		IsFlexibleDates: request.IsFlexibleDates,
		TravelType:      request.TravelType,
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(request.ID, recommendation)

	return res, nil
}

func (s *serviceImpl) Simulate(ctx context.Context, req dto.SimulateRequest) (res dto.SimulationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Simulate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpPricingSimulate); err != nil {
		return res, err //nolint:wrapcheck
	}

	simulation, err := calculator.Simulate(req.ToScenario())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(simulation)

	return res, nil
}
