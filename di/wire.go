//go:build wireinject
// +build wireinject

package di

import (
	"hotelboard/config"
	"hotelboard/infras/kafka"
	"hotelboard/infras/otel"
	"hotelboard/infras/postgres"
	"hotelboard/infras/redis"
	"hotelboard/infras/s3"
	"hotelboard/shared/cache"
	"hotelboard/shared/timezone"
	"hotelboard/transport/http"
	"hotelboard/transport/http/middleware"
	"hotelboard/transport/http/router"
	kafkaTransport "hotelboard/transport/kafka"

	attachmentRepository "hotelboard/internal/domains/attachment/repository"
	attachmentService "hotelboard/internal/domains/attachment/service"
	eventService "hotelboard/internal/domains/event/service"
	folioRepository "hotelboard/internal/domains/folio/repository"
	maintenanceRepository "hotelboard/internal/domains/maintenance/repository"
	reservationRepository "hotelboard/internal/domains/reservation/repository"
	roomRepository "hotelboard/internal/domains/room/repository"
	roomService "hotelboard/internal/domains/room/service"
	summaryRepository "hotelboard/internal/domains/summary/repository"
	summaryService "hotelboard/internal/domains/summary/service"
	wizardRepository "hotelboard/internal/domains/wizard/repository"
	wizardService "hotelboard/internal/domains/wizard/service"

	attachmentHandler "hotelboard/internal/handlers/attachment"
	roomHandler "hotelboard/internal/handlers/room"
	summaryHandler "hotelboard/internal/handlers/summary"
	wizardHandler "hotelboard/internal/handlers/wizard"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewSessionConverter,
)

var readModels = wire.NewSet(
	roomRepository.New,
	reservationRepository.New,
	folioRepository.New,
	maintenanceRepository.New,
)

var roomDomain = wire.NewSet(
	roomService.New,
)

var attachmentDomain = wire.NewSet(
	attachmentRepository.New,
	attachmentService.New,
)

var eventDomain = wire.NewSet(
	eventService.New,
)

var summaryDomain = wire.NewSet(
	summaryRepository.New,
	summaryService.NewResolver,
	summaryService.NewBuilder,
	summaryService.New,
)

var wizardDomain = wire.NewSet(
	wizardRepository.New,
	wizardService.New,
)

var domains = wire.NewSet(
	readModels,
	roomDomain,
	attachmentDomain,
	eventDomain,
	summaryDomain,
	wizardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	summaryHandler.New,
	wizardHandler.New,
	attachmentHandler.New,
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
		kafkaTransport.New,
		http.New,
	)

	return &http.HTTP{}
}
