package outbox_relay

import (
	"context"
	"fmt"
	"time"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type OutboxRelay struct {
	log        handlerLogger
	repository OutboxRepository
	publisher  Publisher
	txManager  TxManager
	interval   time.Duration
	batchSize  uint64
}

func NewOutboxRelay(
	log handlerLogger,
	repository OutboxRepository,
	publisher Publisher,
	txManager TxManager,
	interval time.Duration,
	batchSize uint64,
) *OutboxRelay {
	return &OutboxRelay{
		log:        log.With(logger.NewField("task", "outbox relay")),
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		interval:   interval,
		batchSize:  batchSize,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do отправляет одну пачку неопубликованных событий. Строки заблокированы до конца транзакции.
// Отправленный префикс пачки фиксируется даже при ошибке брокера, остаток уйдёт в следующий запуск (at-least-once).
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	var (
		published  int64
		publishErr error
	)
	err := o.txManager.DoReadCommitted(ctxWithTimeout, func(ctx context.Context) error {
		events, err := o.repository.GetUnpublished(ctx, o.batchSize)
		if err != nil {
			return fmt.Errorf("get unpublished events: %w", err)
		}
		if len(events) == 0 {
			return nil
		}

		var ids []int64
		ids, publishErr = o.publish(ctx, events)
		if len(ids) == 0 {
			return nil
		}

		// ошибка брокера не должна откатить отметки уже отправленных событий
		published, err = o.repository.MarkPublished(ctx, ids)
		if err != nil {
			return fmt.Errorf("mark events published: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if published > 0 {
		o.log.With(
			logger.NewField("published", published),
		).Info("outbox relay")
	}

	return publishErr
}

// publish останавливается на первой ошибке, чтобы не нарушить порядок событий одной посылки.
func (o *OutboxRelay) publish(ctx context.Context, events []entities.OutboxEvent) ([]int64, error) {
	ids := make([]int64, 0, len(events))
	for _, event := range events {
		if err := o.publisher.Publish(ctx, event.Topic, event.Key, event.Payload); err != nil {
			OutboxPublishFailuresTotal.Inc()
			o.log.With(
				logger.NewField("event_id", event.EventID),
				logger.NewField("topic", event.Topic),
				logger.NewField("error", err),
			).Warn("failed to publish outbox event")
			return ids, fmt.Errorf("publish event %s: %w", event.EventID, err)
		}
		OutboxPublishedTotal.Inc()
		ids = append(ids, event.ID)
	}
	return ids, nil
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
