//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"shipping/internal/handlers/tasks/outbox_relay"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/factory/parcel_codes"
	"shipping/internal/pkg/kafka"
	journeyService "shipping/internal/service/journey"
	parcelService "shipping/internal/service/parcel"
	reviewService "shipping/internal/service/review"
	trackingService "shipping/internal/service/tracking"
	vehicleService "shipping/internal/service/vehicle"
	"shipping/pkg/logger"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideProfileRepository,
	provideVehicleRepository,
	provideJourneyRepository,
	provideParcelRepository,
	provideReviewRepository,
	provideOutboxRepository,
	provideStatusHistoryRepository,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		parcel_codes.New,

		provideServiceVehicle,
		provideServiceJourney,
		provideServicePackage,
		provideServiceReview,
		provideServiceTracking,

		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceVehicle), new(*vehicleService.Service)),
		wire.Bind(new(ServiceJourney), new(*journeyService.Service)),
		wire.Bind(new(ServicePackage), new(*parcelService.Service)),
		wire.Bind(new(ServiceReview), new(*reviewService.Service)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Service)),

		wire.Bind(new(parcelService.CodeFactory), new(*parcel_codes.Factory)),
		wire.Bind(new(outbox_relay.Publisher), new(*kafka.Producer)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-package-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,

		provideServiceTracking,
		providePackageStatusChangedHandler,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

