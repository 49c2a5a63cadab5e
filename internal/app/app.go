package app

import (
	"shipping/internal/handlers/kafka-consumer/package_status_changed"
	"shipping/internal/handlers/rest/journey_get"
	"shipping/internal/handlers/rest/journey_post"
	"shipping/internal/handlers/rest/journey_status_post"
	"shipping/internal/handlers/rest/package_get"
	"shipping/internal/handlers/rest/package_history_get"
	"shipping/internal/handlers/rest/package_post"
	"shipping/internal/handlers/rest/package_status_post"
	"shipping/internal/handlers/rest/review_post"
	"shipping/internal/handlers/rest/vehicle_post"
	"shipping/pkg/background"
)

type Application struct {
	ServiceVehicle    ServiceVehicle
	ServiceJourney    ServiceJourney
	ServicePackage    ServicePackage
	ServiceReview     ServiceReview
	ServiceTracking   ServiceTracking
	BackgroundWorkers *background.Worker
}

type ServiceVehicle interface {
	vehicle_post.Service
}

type ServiceJourney interface {
	journey_post.Service
	journey_get.Service
	journey_status_post.Service
}

type ServicePackage interface {
	package_post.Service
	package_get.Service
	package_status_post.Service
}

type ServiceReview interface {
	review_post.Service
}

type ServiceTracking interface {
	package_history_get.Service
}

type KafkaWorkerApp struct {
	PackageStatusChangedHandler *package_status_changed.Handler
}
