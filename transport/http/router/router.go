package router

import (
	"tripdesk/internal/handlers/analytics"
	"tripdesk/internal/handlers/approval"
	"tripdesk/internal/handlers/booking"
	"tripdesk/internal/handlers/dashboard"
	"tripdesk/internal/handlers/payment"
	"tripdesk/internal/handlers/pricing"
	"tripdesk/internal/handlers/quotation"
	"tripdesk/internal/handlers/request"
	"tripdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "tripdesk/docs" // registers the swagger spec
)

type DomainHandlers struct {
	Request   request.Handler
	Quotation quotation.Handler
	Approval  approval.Handler
	Booking   booking.Handler
	Payment   payment.Handler
	Pricing   pricing.Handler
	Dashboard dashboard.Handler
	Analytics analytics.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AuthRole
}

// SetupRoutes mounts every domain under /v1. All of them require a bearer token or the internal API key.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.APIKey, r.Middleware.Auth)

		r.DomainHandlers.Request.Router(routerGroup)
		r.DomainHandlers.Quotation.Router(routerGroup)
		r.DomainHandlers.Approval.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Analytics.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}
