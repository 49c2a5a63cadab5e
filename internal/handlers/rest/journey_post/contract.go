//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=journey_post_test
package journey_post

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
	CreateJourney(ctx context.Context, userID int64, journeyModify entities.JourneyModify) (*entities.Journey, error)
}
