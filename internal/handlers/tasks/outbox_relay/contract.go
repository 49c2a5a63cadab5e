//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_relay_test
package outbox_relay

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

type OutboxRepository interface {
	GetUnpublished(ctx context.Context, limit uint64) ([]entities.OutboxEvent, error)
	MarkPublished(ctx context.Context, ids []int64) (int64, error)
}

type Publisher interface {
	Publish(ctx context.Context, topic string, key string, payload []byte) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
