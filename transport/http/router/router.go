package router

import (
	"sorabora/internal/handlers/auth"
	"sorabora/internal/handlers/booking"
	"sorabora/internal/handlers/dashboard"
	"sorabora/internal/handlers/pages"
	"sorabora/transport/http/middleware"
	"sorabora/transport/http/view"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Pages     pages.Handler
	Auth      auth.Handler
	Booking   booking.Handler
	Dashboard dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	Guard          middleware.Guard
}

// SetupRoutes mounts the public site and the staff-only group behind the
// session guard. Every route runs through tracing, CORS, rate limiting and
// session resolution.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.CORS)
	router.Use(r.AppMiddleware.RateLimit)
	router.Use(r.AppMiddleware.Sessions)

	router.Handle("/static/*", view.StaticHandler())

	r.DomainHandlers.Pages.Router(router)
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Booking.Router(router)

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.Guard.RequireStaff)

		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Pages.GuardedRouter(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, guard middleware.Guard) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		Guard:          guard,
	}
}
