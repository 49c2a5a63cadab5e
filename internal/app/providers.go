package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"shipping/internal/handlers/kafka-consumer/package_status_changed"
	"shipping/internal/handlers/tasks/outbox_relay"
	"shipping/internal/pkg/config"
	journeyRepo "shipping/internal/repository/journey"
	outboxRepo "shipping/internal/repository/outbox"
	parcelRepo "shipping/internal/repository/parcel"
	profileRepo "shipping/internal/repository/profile"
	reviewRepo "shipping/internal/repository/review"
	statusHistoryRepo "shipping/internal/repository/status_history"
	vehicleRepo "shipping/internal/repository/vehicle"
	journeyService "shipping/internal/service/journey"
	parcelService "shipping/internal/service/parcel"
	reviewService "shipping/internal/service/review"
	trackingService "shipping/internal/service/tracking"
	vehicleService "shipping/internal/service/vehicle"
	"shipping/pkg/background"
	"shipping/pkg/logger"
	"shipping/pkg/querier"
	"shipping/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideProfileRepository(querier *querier.Querier) *profileRepo.Repository {
	return profileRepo.New(querier)
}

func provideVehicleRepository(querier *querier.Querier) *vehicleRepo.Repository {
	return vehicleRepo.New(querier)
}

func provideJourneyRepository(querier *querier.Querier) *journeyRepo.Repository {
	return journeyRepo.New(querier)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideReviewRepository(querier *querier.Querier) *reviewRepo.Repository {
	return reviewRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideStatusHistoryRepository(querier *querier.Querier) *statusHistoryRepo.Repository {
	return statusHistoryRepo.New(querier)
}

func provideServiceVehicle(
	repository *vehicleRepo.Repository,
	profileRepository *profileRepo.Repository,
) *vehicleService.Service {
	return vehicleService.New(repository, profileRepository)
}

func provideServiceJourney(
	repository *journeyRepo.Repository,
	vehicleRepository *vehicleRepo.Repository,
	profileRepository *profileRepo.Repository,
	txManager *tx.Manager,
) *journeyService.Service {
	return journeyService.New(repository, vehicleRepository, profileRepository, txManager)
}

func provideServicePackage(
	repository *parcelRepo.Repository,
	journeyRepository *journeyRepo.Repository,
	profileRepository *profileRepo.Repository,
	outboxRepository *outboxRepo.Repository,
	codeFactory parcelService.CodeFactory,
	txManager *tx.Manager,
) *parcelService.Service {
	return parcelService.New(
		repository,
		journeyRepository,
		profileRepository,
		outboxRepository,
		codeFactory,
		txManager,
	)
}

func provideServiceReview(
	repository *reviewRepo.Repository,
	packageRepository *parcelRepo.Repository,
	journeyRepository *journeyRepo.Repository,
	profileRepository *profileRepo.Repository,
) *reviewService.Service {
	return reviewService.New(repository, packageRepository, journeyRepository, profileRepository)
}

func provideServiceTracking(
	repository *statusHistoryRepo.Repository,
	packageRepository *parcelRepo.Repository,
) *trackingService.Service {
	return trackingService.New(repository, packageRepository)
}

func provideOutboxRelayTask(
	log logger.Logger,
	repository *outboxRepo.Repository,
	publisher outbox_relay.Publisher,
	txManager *tx.Manager,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(
		log,
		repository,
		publisher,
		txManager,
		cfg.Tasks.OutboxRelayInterval,
		uint64(cfg.Tasks.OutboxBatchSize),
	)
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func providePackageStatusChangedHandler(
	log logger.Logger,
	service *trackingService.Service,
	cfg *config.Config,
) *package_status_changed.Handler {
	return package_status_changed.New(log, service, cfg.Kafka.Handlers.PackageStatusChanged.ProcessTimeout)
}
