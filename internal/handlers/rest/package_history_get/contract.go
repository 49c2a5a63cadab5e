//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_history_get_test
package package_history_get

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
	GetPackageHistory(ctx context.Context, packageID int64) ([]entities.PackageStatusRecord, error)
}
