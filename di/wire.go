//go:build wireinject
// +build wireinject

package di

import (
	"tasklist/config"
	"tasklist/infras/otel"
	"tasklist/infras/postgres"
	"tasklist/infras/redis"
	"tasklist/infras/session"
	"tasklist/shared/cache"
	"tasklist/transport/http"
	"tasklist/transport/http/middleware"
	"tasklist/transport/http/router"

	todoRepository "tasklist/internal/domains/todo/repository"
	todoService "tasklist/internal/domains/todo/service"
	todoHandler "tasklist/internal/handlers/todo"

	authService "tasklist/internal/domains/auth/service"
	userRepository "tasklist/internal/domains/user/repository"
	authHandler "tasklist/internal/handlers/auth"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	session.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	todoDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	authHandler.New,
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
