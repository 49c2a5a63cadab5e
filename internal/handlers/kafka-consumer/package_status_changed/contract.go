//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_status_changed_test
package package_status_changed

import (
	"context"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RecordStatusChange(ctx context.Context, event entities.PackageStatusChangedEvent) (bool, error)
}
