package router

import (
	"net/http"
	"poolhire/internal/handlers/auth"
	"poolhire/internal/handlers/booking"
	"poolhire/internal/handlers/crm"
	"poolhire/internal/handlers/payment"
	"poolhire/internal/handlers/pool"
	"poolhire/internal/handlers/user"
	"poolhire/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Pool    pool.Handler
	Booking booking.Handler
	Payment payment.Handler
	Crm     crm.Handler
	User    user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts every domain under /v1. Authentication and role checks run for every route
// and are relaxed per endpoint through the embedded permissions.
func (r *Router) SetupRoutes(router chi.Router, health http.HandlerFunc) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.App.Tracing, r.App.RateLimit())
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		routerGroup.Get("/health", health)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Pool.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Crm.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
