//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=journey_get_test
package journey_get

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
	GetJourney(ctx context.Context, id int64) (*entities.Journey, error)
}
