//go:build wireinject
// +build wireinject

package di

import (
	"poolhire/config"
	"poolhire/infras/crm"
	"poolhire/infras/jwt"
	"poolhire/infras/kafka"
	"poolhire/infras/otel"
	"poolhire/infras/postgres"
	"poolhire/infras/redis"
	"poolhire/infras/s3"
	"poolhire/infras/stripe"
	"poolhire/permissions"
	"poolhire/shared/cache"
	"poolhire/transport/cron"
	"poolhire/transport/http"
	"poolhire/transport/http/middleware"
	"poolhire/transport/http/router"

	"github.com/google/wire"

	authService "poolhire/internal/domains/auth/service"
	bookingRepository "poolhire/internal/domains/booking/repository"
	bookingService "poolhire/internal/domains/booking/service"
	crmRepository "poolhire/internal/domains/crm/repository"
	crmService "poolhire/internal/domains/crm/service"
	extraRepository "poolhire/internal/domains/extra/repository"
	paymentRepository "poolhire/internal/domains/payment/repository"
	paymentService "poolhire/internal/domains/payment/service"
	poolRepository "poolhire/internal/domains/pool/repository"
	poolService "poolhire/internal/domains/pool/service"
	userRepository "poolhire/internal/domains/user/repository"
	userService "poolhire/internal/domains/user/service"
	authHandler "poolhire/internal/handlers/auth"
	bookingHandler "poolhire/internal/handlers/booking"
	crmHandler "poolhire/internal/handlers/crm"
	paymentHandler "poolhire/internal/handlers/payment"
	poolHandler "poolhire/internal/handlers/pool"
	userHandler "poolhire/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	stripe.New,
	crm.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var poolDomain = wire.NewSet(
	poolRepository.New,
	extraRepository.New,
	poolService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentRepository.NewHostPayout,
	paymentRepository.NewProcessedEvent,
	paymentService.New,
)

var crmDomain = wire.NewSet(
	crmRepository.New,
	crmRepository.NewSyncLog,
	crmService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	poolDomain,
	bookingDomain,
	paymentDomain,
	crmDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	poolHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	crmHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeScheduler() *cron.Scheduler {
	wire.Build(
		config.Get,
		otel.New,
		postgres.New,
		kafka.New,
		crm.New,
		poolRepository.New,
		crmDomain,
		cron.New,
	)

	return &cron.Scheduler{}
}
