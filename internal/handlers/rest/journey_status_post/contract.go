//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=journey_status_post_test
package journey_status_post

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
	UpdateJourneyStatus(ctx context.Context, userID int64, id int64, status entities.JourneyStatus) (*entities.Journey, error)
}
