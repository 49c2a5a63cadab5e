package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"
	"shipping/pkg/logger"
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками, <= 0 означает "только прогрев".
	TTL() time.Duration
	Do(context.Context) error
	// Info имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   handlerLogger
	tasks []Task
}

// New прогревает задачи (каждая выполняется один раз синхронно) и потом запускает их по тикеру
// до отмены ctx. Ошибка или паника на прогреве возвращается и воркер не стартует.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	warmup, warmupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("task %q panicked during warmup: %v", task.Info(), r)
					log.Error("background task warmup panic",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(debug.Stack())),
					)
				}
			}()

			log.Info("background task warmup", logger.NewField("task", task.Info()))
			return task.Do(warmupCtx)
		})
	}

	if err := warmup.Wait(); err != nil {
		return nil, fmt.Errorf("warmup background tasks: %w", err)
	}

	for _, task := range tasks {
		go worker.loop(ctx, task)
	}

	return worker, nil
}

func (w *Worker) loop(ctx context.Context, task Task) {
	ttl := task.TTL()
	taskLog := w.log.With(
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl.String()),
	)
	if ttl <= 0 {
		taskLog.Warn("non-positive TTL, periodic execution disabled")
		return
	}

	taskLog.Info("background task scheduled")

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Info("background task stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx, task)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
