package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/analytics/model/dto"
	quotationModel "tripdesk/internal/domains/quotation/model"
	quotationRepo "tripdesk/internal/domains/quotation/repository"
	requestModel "tripdesk/internal/domains/request/model"
	requestRepo "tripdesk/internal/domains/request/repository"
	"tripdesk/permissions"
	"tripdesk/shared"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	rateScale   = 4
	marginScale = 2
)

type Analytics interface {
	ConversionRates(ctx context.Context) (dto.ConversionResponse, error)
	PricingOptimization(ctx context.Context) (dto.PricingResponse, error)
}

type serviceImpl struct {
	requestRepo   requestRepo.TravelRequest
	quotationRepo quotationRepo.Quotation
	cfg           *config.Config
	otel          otel.Otel
	policy        *permissions.Policy
}

func New(
	requestRepo requestRepo.TravelRequest,
	quotationRepo quotationRepo.Quotation,
	cfg *config.Config,
	otel otel.Otel,
	policy *permissions.Policy,
) Analytics {
	return &serviceImpl{
		requestRepo:   requestRepo,
		quotationRepo: quotationRepo,
		cfg:           cfg,
		otel:          otel,
		policy:        policy,
	}
}

// ConversionRates is the share of offered quotations (sent or accepted) that were accepted, overall
// and per destination of the owning request.
func (s *serviceImpl) ConversionRates(ctx context.Context) (res dto.ConversionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConversionRates")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpAnalyticsConversion); err != nil {
		return res, err //nolint:wrapcheck
	}

	offered, err := s.quotationRepo.GetAll(ctx, gDto.QueryParams{}, byStatuses(quotationModel.StatusSent, quotationModel.StatusAccepted))
	if err != nil {
		log.Error().Err(err).Msg("failed to get offered quotations")

		return res, fmt.Errorf("failed to get offered quotations: %w", err)
	}

	res.ByDestination = make(map[string]dto.DestinationConversion)

	if len(offered) == 0 {
		return res, nil
	}

	destinations, err := s.destinations(ctx, offered)
	if err != nil {
		return res, err
	}

	for _, quotation := range offered {
		accepted := quotation.Status == quotationModel.StatusAccepted

		res.Offered++
		if accepted {
			res.Accepted++
		}

		for _, destination := range destinations[quotation.RequestID] {
			entry := res.ByDestination[destination]
			entry.Offered++

			if accepted {
				entry.Accepted++
			}

			res.ByDestination[destination] = entry
		}
	}

	res.OverallConversion = Rate(res.Accepted, res.Offered)

	for destination, entry := range res.ByDestination {
		entry.Rate = Rate(entry.Accepted, entry.Offered)
		res.ByDestination[destination] = entry
	}

	return res, nil
}

func (s *serviceImpl) destinations(ctx context.Context, quotations []quotationModel.Quotation) (map[string][]string, error) {
	ids := make([]string, 0, len(quotations))
	seen := make(map[string]bool, len(quotations))

	for _, quotation := range quotations {
		if !seen[quotation.RequestID] {
			seen[quotation.RequestID] = true
			ids = append(ids, quotation.RequestID)
		}
	}

	filter := gDto.FilterGroup{
		Filters: []any{gDto.Filter{Field: requestModel.FieldID, Value: ids, Operator: gDto.FilterOperatorIn, Table: requestModel.TableName}},
	}

	requests, err := s.requestRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get travel requests")

		return nil, fmt.Errorf("failed to get travel requests: %w", err)
	}

	res := make(map[string][]string, len(requests))
	for _, request := range requests {
		res[request.ID] = request.Destinations
	}

	return res, nil
}

// PricingOptimization reports the average margin across all quotations and how often a decided
// quotation was accepted rather than rejected.
func (s *serviceImpl) PricingOptimization(ctx context.Context) (res dto.PricingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PricingOptimization")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpAnalyticsPricing); err != nil {
		return res, err //nolint:wrapcheck
	}

	quotations, err := s.quotationRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotations")

		return res, fmt.Errorf("failed to get quotations: %w", err)
	}

	margins := decimal.Zero
	for _, quotation := range quotations {
		margins = margins.Add(quotation.Margin)
	}

	if len(quotations) > 0 {
		res.AverageMargin = margins.Div(decimal.NewFromInt(int64(len(quotations)))).Round(marginScale).InexactFloat64()
	}

	res.Quotations = len(quotations)

	if res.Accepted, err = s.count(ctx, quotationModel.StatusAccepted); err != nil {
		return res, err
	}

	if res.Rejected, err = s.count(ctx, quotationModel.StatusRejected); err != nil {
		return res, err
	}

	res.PriceAcceptanceRate = Rate(res.Accepted, res.Accepted+res.Rejected)

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, status string) (int, error) {
	filter := gDto.FilterGroup{Filters: []any{shared.FilterByField(quotationModel.FieldStatus, status, quotationModel.TableName)}}

	n, err := s.quotationRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to count quotations")

		return 0, fmt.Errorf("failed to count %s quotations: %w", status, err)
	}

	return n, nil
}

// Rate is part/whole rounded to four places, zero when whole is zero.
func Rate(part, whole int) float64 {
	if whole == 0 {
		return 0
	}

	return decimal.NewFromInt(int64(part)).Div(decimal.NewFromInt(int64(whole))).Round(rateScale).InexactFloat64()
}

func byStatuses(statuses ...string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{gDto.Filter{Field: quotationModel.FieldStatus, Value: statuses, Operator: gDto.FilterOperatorIn, Table: quotationModel.TableName}},
	}
}
