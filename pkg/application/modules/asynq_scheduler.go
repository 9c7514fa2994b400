package modules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"
)

type AsynqSchedulerEntry struct {
	Cronspec string
	Task     *asynq.Task
	Options  []asynq.Option
}

// AsynqScheduler модуль, который ставит периодические задачи в очередь.
type AsynqScheduler struct {
	RedisUsername string
	RedisPassword string
	RedisAddress  string
	RedisDB       int
	Location      *time.Location
}

func (s AsynqScheduler) Run(
	ctx context.Context,
	g *errgroup.Group,
	entries ...AsynqSchedulerEntry,
) {
	g.Go(func() error {
		redisConnection := asynq.RedisClientOpt{
			Addr:     s.RedisAddress,
			Username: s.RedisUsername,
			Password: s.RedisPassword,
			DB:       s.RedisDB,
		}

		location := s.Location
		if location == nil {
			location = time.UTC
		}

		scheduler := asynq.NewScheduler(redisConnection, &asynq.SchedulerOpts{ //nolint:exhaustruct
			Location: location,
		})

		for _, e := range entries {
			id, err := scheduler.Register(e.Cronspec, e.Task, e.Options...)
			if err != nil {
				return fmt.Errorf("scheduler.Register %s: %w", e.Task.Type(), err)
			}

			logger(ctx).Info("task scheduled",
				slog.String("task", e.Task.Type()),
				slog.String("cron", e.Cronspec),
				slog.String("entry-id", id),
			)
		}

		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("scheduler.Start: %w", err)
		}

		logger(ctx).Info("asynq scheduler started", slog.String("redis-address", s.RedisAddress))

		<-ctx.Done()

		scheduler.Shutdown()

		logger(ctx).Info("asynq scheduler stopped", slog.String("redis-address", s.RedisAddress))

		return nil
	})
}
