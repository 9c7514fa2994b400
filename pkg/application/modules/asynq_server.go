package modules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"fba_scanner/pkg/logx"
)

type AsynqQueues map[string]int

type AsynqHandler struct {
	Pattern string
	Handle  func(context.Context, *asynq.Task) error
}

// AsynqServer обрабатывает задачи из очередей redis. Concurrency задаёт
// число одновременно выполняемых задач, по умолчанию 1.
type AsynqServer struct {
	RedisUsername   string
	RedisPassword   string
	RedisAddress    string
	RedisDB         int
	Concurrency     int
	ShutdownTimeout time.Duration
}

func (s AsynqServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	queues AsynqQueues,
	handlers ...AsynqHandler,
) {
	g.Go(func() error {
		redisConnection := asynq.RedisClientOpt{
			Addr:     s.RedisAddress,
			Username: s.RedisUsername,
			Password: s.RedisPassword,
			DB:       s.RedisDB,
		}

		concurrency := s.Concurrency
		if concurrency <= 0 {
			concurrency = 1
		}

		worker := asynq.NewServer(redisConnection, asynq.Config{ //nolint:exhaustruct
			BaseContext:     func() context.Context { return ctx },
			Concurrency:     concurrency,
			Queues:          queues,
			ShutdownTimeout: s.ShutdownTimeout,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger(ctx).Error("task failed", slog.String(logx.FieldTask, task.Type()), logx.Error(err))
			}),
		})

		mux := asynq.NewServeMux()

		for _, h := range handlers {
			mux.HandleFunc(h.Pattern, h.Handle)
		}

		if err := worker.Start(mux); err != nil {
			return fmt.Errorf("asynqServer.Start: %w", err)
		}

		logger(ctx).Info("asynq server started",
			slog.String("redis-address", s.RedisAddress),
			slog.Int("redis-db", s.RedisDB),
			slog.Int("concurrency", concurrency),
		)

		<-ctx.Done()

		worker.Shutdown()

		logger(ctx).Info("asynq server stopped", slog.String("redis-address", s.RedisAddress), slog.Int("redis-db", s.RedisDB))

		return nil
	})
}
