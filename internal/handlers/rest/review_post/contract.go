//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_post_test
package review_post

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
	CreateReview(ctx context.Context, userID int64, reviewModify entities.ReviewModify) (*entities.Review, error)
}
