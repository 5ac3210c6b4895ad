package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	approvalModel "tripdesk/internal/domains/approval/model"
	approvalRepo "tripdesk/internal/domains/approval/repository"
	bookingModel "tripdesk/internal/domains/booking/model"
	bookingRepo "tripdesk/internal/domains/booking/repository"
	"tripdesk/internal/domains/dashboard/model/dto"
	quotationModel "tripdesk/internal/domains/quotation/model"
	quotationRepo "tripdesk/internal/domains/quotation/repository"
	requestModel "tripdesk/internal/domains/request/model"
	requestRepo "tripdesk/internal/domains/request/repository"
	"tripdesk/permissions"
	"tripdesk/shared"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	requestRepo   requestRepo.TravelRequest
	quotationRepo quotationRepo.Quotation
	bookingRepo   bookingRepo.Booking
	approvalRepo  approvalRepo.ApprovalRequest
	cfg           *config.Config
	otel          otel.Otel
	policy        *permissions.Policy
}

func New(
	requestRepo requestRepo.TravelRequest,
	quotationRepo quotationRepo.Quotation,
	bookingRepo bookingRepo.Booking,
	approvalRepo approvalRepo.ApprovalRequest,
	cfg *config.Config,
	otel otel.Otel,
	policy *permissions.Policy,
) Dashboard {
	return &serviceImpl{
		requestRepo:   requestRepo,
		quotationRepo: quotationRepo,
		bookingRepo:   bookingRepo,
		approvalRepo:  approvalRepo,
		cfg:           cfg,
		otel:          otel,
		policy:        policy,
	}
}

type counter struct {
	name  string
	count func(ctx context.Context, filter gDto.FilterGroup) (int, error)
	where gDto.FilterGroup
}

// Stats computes the counters relevant to the caller's role.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpDashboardView); err != nil {
		return res, err //nolint:wrapcheck
	}

	res.Role = actor.Role
	res.Stats = make(map[string]int)

	for _, c := range s.counters(actor) {
		n, err := c.count(ctx, c.where)
		if err != nil {
			log.Error().Err(err).Str("stat", c.name).Msg("failed to count dashboard stat")

			return res, fmt.Errorf("failed to count %s: %w", c.name, err)
		}

		res.Stats[c.name] = n
	}

	return res, nil
}

func (s *serviceImpl) counters(actor gDto.Actor) []counter {
	unpaid := []string{bookingModel.PaymentStatusPending, bookingModel.PaymentStatusPartial}

	switch actor.Role {
	case constant.RoleCustomer:
		ownRequests := byField(requestModel.FieldCustomerID, actor.ID, requestModel.TableName)
		ownBookings := byField(bookingModel.FieldCustomerID, actor.ID, bookingModel.TableName)

		return []counter{
			{
				name:  dto.StatActiveRequests,
				count: s.requestRepo.Count,
				where: gDto.And(ownRequests, byValues(requestModel.FieldStatus, []string{requestModel.StatusPending, requestModel.StatusQuoted}, requestModel.TableName)),
			},
			{name: dto.StatTotalBookings, count: s.bookingRepo.Count, where: ownBookings},
			{
				name:  dto.StatPendingPayments,
				count: s.bookingRepo.Count,
				where: gDto.And(ownBookings, byValues(bookingModel.FieldPaymentStatus, unpaid, bookingModel.TableName)),
			},
		}
	case constant.RoleSalesperson:
		return []counter{
			{
				name:  dto.StatAssignedRequests,
				count: s.requestRepo.Count,
				where: byField(requestModel.FieldAssignedSalesperson, actor.ID, requestModel.TableName),
			},
			{
				name:  dto.StatDraftQuotations,
				count: s.quotationRepo.Count,
				where: gDto.And(
					byField(quotationModel.FieldSalespersonID, actor.ID, quotationModel.TableName),
					byField(quotationModel.FieldStatus, quotationModel.StatusDraft, quotationModel.TableName),
				),
			},
		}
	case constant.RoleSalesManager:
		return []counter{
			{
				name:  dto.StatPendingApprovals,
				count: s.quotationRepo.Count,
				where: byField(quotationModel.FieldStatus, quotationModel.StatusPendingApproval, quotationModel.TableName),
			},
			{
				name:  dto.StatPendingApprovalRequests,
				count: s.approvalRepo.Count,
				where: byField(approvalModel.FieldStatus, approvalModel.StatusPending, approvalModel.TableName),
			},
		}
	case constant.RoleOperations:
		return []counter{
			{
				name:  dto.StatConfirmedBookings,
				count: s.bookingRepo.Count,
				where: byField(bookingModel.FieldBookingStatus, bookingModel.BookingStatusConfirmed, bookingModel.TableName),
			},
			{
				name:  dto.StatPendingPayments,
				count: s.bookingRepo.Count,
				where: byValues(bookingModel.FieldPaymentStatus, unpaid, bookingModel.TableName),
			},
		}
	case constant.RoleAdmin:
		return []counter{
			{name: dto.StatTotalRequests, count: s.requestRepo.Count},
			{name: dto.StatTotalQuotations, count: s.quotationRepo.Count},
			{name: dto.StatTotalBookings, count: s.bookingRepo.Count},
		}
	}

	return nil
}

func byField(field string, value any, table string) gDto.FilterGroup {
	return gDto.FilterGroup{Filters: []any{shared.FilterByField(field, value, table)}}
}

func byValues(field string, values []string, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{gDto.Filter{Field: field, Value: values, Operator: gDto.FilterOperatorIn, Table: table}},
	}
}
