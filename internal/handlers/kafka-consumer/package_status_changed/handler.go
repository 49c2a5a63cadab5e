package package_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"shipping/internal/entities"
	"shipping/internal/service/tracking"
	"shipping/pkg/logger"
	"shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

const (
	retryInitialInterval = 100 * time.Millisecond
	retryMaxInterval     = time.Second
	retryRandomization   = 0.3
	retryMultiplier      = 2
)

type Handler struct {
	service                  Service
	log                      handlerLogger
	retrier                  retrier.Retrier
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("topic", entities.TopicPackageStatusChanged))

	return &Handler{
		service: service,
		log:     handlerLog,
		retrier: backoff_adapter.New(retrier.Config{
			InitialInterval: retryInitialInterval,
			MaxInterval:     retryMaxInterval,
			MaxElapsedTime:  timeout,
			Randomization:   retryRandomization,
			Multiplier:      retryMultiplier,
			ShouldRetry:     isTransient,
		}),
		messageProcessingTimeout: timeout,
	}
}

// isTransient: повтор имеет смысл только для ошибок хранилища
func isTransient(err error) bool {
	return !errors.Is(err, tracking.ErrInvalidEvent) &&
		!errors.Is(err, entities.ErrNotFound) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages channel closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// true - прервать ConsumeClaim без коммита сообщения, оно будет перечитано.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.PackageStatusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("bad message, skipping")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.EventID),
		logger.NewField("package_id", event.PackageID),
		logger.NewField("status", event.Status),
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	var inserted bool
	err := h.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var err error
		inserted, err = h.service.RecordStatusChange(ctx, event)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("processing cancelled, message will be reprocessed")
			return true

		case errors.Is(err, tracking.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("invalid status event, skipping")

		case errors.Is(err, entities.ErrNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package no longer exists, skipping")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("failed to record status change, message will be reprocessed")
			return true
		}
		sess.MarkMessage(message, "")
		return false
	}

	if inserted {
		msgLog.Info("status change recorded")
	} else {
		msgLog.Info("duplicate event, already recorded")
	}

	sess.MarkMessage(message, "")
	return false
}
