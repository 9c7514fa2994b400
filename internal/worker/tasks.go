package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"fba_scanner/pkg/application/modules"
	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/logx"
)

const (
	TypeScanRun   = "scan:run"
	TypeDealsPost = "deals:post"

	QueueDefault = "default"
)

type TaskOptions struct {
	ScanTimeout time.Duration
	PostTimeout time.Duration
}

// Tasks adapts the scanner and the poster to asynq handlers.
type Tasks struct {
	scanner *Scanner
	poster  *Poster
	opts    TaskOptions
	log     *slog.Logger
}

func NewTasks(scanner *Scanner, poster *Poster, opts TaskOptions, log *slog.Logger) *Tasks {
	return &Tasks{
		scanner: scanner,
		poster:  poster,
		opts:    opts,
		log:     log,
	}
}

func (t *Tasks) Handlers() []modules.AsynqHandler {
	return []modules.AsynqHandler{
		{Pattern: TypeScanRun, Handle: t.HandleScan},
		{Pattern: TypeDealsPost, Handle: t.HandlePost},
	}
}

// Schedule returns the periodic entries for the given cron specs.
func (t *Tasks) Schedule(scanCron, postCron string) []modules.AsynqSchedulerEntry {
	return []modules.AsynqSchedulerEntry{
		{
			Cronspec: scanCron,
			Task:     asynq.NewTask(TypeScanRun, nil),
			Options:  []asynq.Option{asynq.Queue(QueueDefault), asynq.MaxRetry(0), asynq.Timeout(t.opts.ScanTimeout)},
		},
		{
			Cronspec: postCron,
			Task:     asynq.NewTask(TypeDealsPost, nil),
			Options:  []asynq.Option{asynq.Queue(QueueDefault), asynq.MaxRetry(1), asynq.Timeout(t.opts.PostTimeout)},
		},
	}
}

func (t *Tasks) HandleScan(ctx context.Context, task *asynq.Task) error {
	ctx = t.taskContext(ctx, task)

	summary, err := t.scanner.Scan(ctx)
	if err != nil {
		if errors.Is(err, ErrScanInProgress) {
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}

		return fmt.Errorf("scan: %w", err)
	}

	contextx.LoggerFromContextOr(ctx, t.log).Info("scan task done", slog.Int("saved", summary.Saved()))

	return nil
}

func (t *Tasks) HandlePost(ctx context.Context, task *asynq.Task) error {
	ctx = t.taskContext(ctx, task)

	summary, err := t.poster.Run(ctx)
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}

	contextx.LoggerFromContextOr(ctx, t.log).Info("post task done",
		slog.Int("posted", summary.Posted),
		slog.Int("failed", summary.Failed),
	)

	return nil
}

func (t *Tasks) taskContext(ctx context.Context, task *asynq.Task) context.Context {
	log := contextx.LoggerFromContextOr(ctx, t.log).With(slog.String(logx.FieldTask, task.Type()))

	if id, ok := asynq.GetTaskID(ctx); ok {
		log = log.With(slog.String(logx.FieldRequestID, id))
	}

	return contextx.WithLogger(ctx, log)
}
