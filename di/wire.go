//go:build wireinject
// +build wireinject

package di

import (
	"sorabora/config"
	"sorabora/infras/jwt"
	"sorabora/infras/kafka"
	"sorabora/infras/otel"
	"sorabora/infras/postgres"
	"sorabora/infras/redis"
	"sorabora/infras/s3"
	"sorabora/shared/cache"
	"sorabora/shared/session"
	"sorabora/transport/http"
	"sorabora/transport/http/middleware"
	"sorabora/transport/http/response"
	"sorabora/transport/http/router"
	"sorabora/transport/http/view"

	authService "sorabora/internal/domains/auth/service"
	bookingRepository "sorabora/internal/domains/booking/repository"
	bookingService "sorabora/internal/domains/booking/service"
	galleryService "sorabora/internal/domains/gallery/service"
	roomRepository "sorabora/internal/domains/room/repository"
	roomService "sorabora/internal/domains/room/service"

	authHandler "sorabora/internal/handlers/auth"
	bookingHandler "sorabora/internal/handlers/booking"
	dashboardHandler "sorabora/internal/handlers/dashboard"
	pagesHandler "sorabora/internal/handlers/pages"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	session.NewStore,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewGuard,
)

var presentation = wire.NewSet(
	view.NewRenderer,
	response.NewPresenter,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var authDomain = wire.NewSet(
	authService.NewStaticVerifier,
	authService.New,
)

var galleryDomain = wire.NewSet(
	galleryService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	roomDomain,
	authDomain,
	galleryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	pagesHandler.New,
	authHandler.New,
	bookingHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		middlewares,
		presentation,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
