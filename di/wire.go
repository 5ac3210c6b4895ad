//go:build wireinject
// +build wireinject

package di

import (
	"tripdesk/config"
	"tripdesk/infras/jwt"
	"tripdesk/infras/kafka"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/infras/redis"
	"tripdesk/infras/s3"
	"tripdesk/permissions"
	"tripdesk/shared/cache"
	"tripdesk/shared/event"
	"tripdesk/shared/repository"
	"tripdesk/transport/http"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/router"

	analyticsService "tripdesk/internal/domains/analytics/service"
	approvalRepository "tripdesk/internal/domains/approval/repository"
	approvalService "tripdesk/internal/domains/approval/service"
	bookingRepository "tripdesk/internal/domains/booking/repository"
	bookingService "tripdesk/internal/domains/booking/service"
	dashboardService "tripdesk/internal/domains/dashboard/service"
	paymentRepository "tripdesk/internal/domains/payment/repository"
	paymentService "tripdesk/internal/domains/payment/service"
	pricingService "tripdesk/internal/domains/pricing/service"
	quotationRepository "tripdesk/internal/domains/quotation/repository"
	quotationService "tripdesk/internal/domains/quotation/service"
	requestRepository "tripdesk/internal/domains/request/repository"
	requestService "tripdesk/internal/domains/request/service"

	analyticsHandler "tripdesk/internal/handlers/analytics"
	approvalHandler "tripdesk/internal/handlers/approval"
	bookingHandler "tripdesk/internal/handlers/booking"
	dashboardHandler "tripdesk/internal/handlers/dashboard"
	paymentHandler "tripdesk/internal/handlers/payment"
	pricingHandler "tripdesk/internal/handlers/pricing"
	quotationHandler "tripdesk/internal/handlers/quotation"
	requestHandler "tripdesk/internal/handlers/request"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Load,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(repository.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.NewPublisher,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestService.New,
)

var quotationDomain = wire.NewSet(
	quotationRepository.New,
	quotationRepository.NewVersion,
	quotationService.New,
)

var approvalDomain = wire.NewSet(
	approvalRepository.New,
	approvalService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var domains = wire.NewSet(
	requestDomain,
	quotationDomain,
	approvalDomain,
	bookingDomain,
	paymentDomain,
	pricingService.New,
	dashboardService.New,
	analyticsService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	requestHandler.New,
	quotationHandler.New,
	approvalHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	pricingHandler.New,
	dashboardHandler.New,
	analyticsHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
