//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/elizhang33/room-reservations-api/config"
	"github.com/elizhang33/room-reservations-api/infras/kafka"
	"github.com/elizhang33/room-reservations-api/infras/otel"
	"github.com/elizhang33/room-reservations-api/infras/postgres"
	"github.com/elizhang33/room-reservations-api/infras/redis"
	"github.com/elizhang33/room-reservations-api/internal/domains/inventory"
	inventoryHandler "github.com/elizhang33/room-reservations-api/internal/handlers/inventory"
	reservationHandler "github.com/elizhang33/room-reservations-api/internal/handlers/reservation"
	"github.com/elizhang33/room-reservations-api/shared/cache"
	"github.com/elizhang33/room-reservations-api/transport/http"
	"github.com/elizhang33/room-reservations-api/transport/http/middleware"
	"github.com/elizhang33/room-reservations-api/transport/http/router"

	reservationRepository "github.com/elizhang33/room-reservations-api/internal/domains/reservation/repository"
	reservationService "github.com/elizhang33/room-reservations-api/internal/domains/reservation/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	inventory.FromConfig,
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	inventoryHandler.New,
	reservationHandler.New,
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
