package worker

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/logx"
)

const (
	DefaultMaxPosts = 25
	DefaultMinDelay = 5 * time.Second
	DefaultMaxDelay = 15 * time.Second
)

//go:generate moq -rm -out poster_mock.gen.go . DealQueue:DealQueueMock Sender:SenderMock
type DealQueue interface {
	ReadPending(ctx context.Context, limit int) ([]entity.Deal, error)
	MarkPosted(ctx context.Context, key entity.DealKey) error
}

type Sender interface {
	Name() string
	Send(ctx context.Context, deal entity.Deal) error
}

type PosterOptions struct {
	MaxPosts int
	MinDelay time.Duration
	MaxDelay time.Duration
}

type PostSummary struct {
	Pending int
	Posted  int
	Failed  int
}

// Poster distributes pending deals to every sender, pacing posts with a
// random delay.
type Poster struct {
	queue   DealQueue
	senders []Sender
	opts    PosterOptions
	sleep   func(ctx context.Context, d time.Duration) error
	jitter  func(n int64) int64
	log     *slog.Logger
}

func NewPoster(queue DealQueue, senders []Sender, opts PosterOptions, log *slog.Logger) *Poster {
	if opts.MaxPosts <= 0 {
		opts.MaxPosts = DefaultMaxPosts
	}

	if opts.MinDelay <= 0 {
		opts.MinDelay = DefaultMinDelay
	}

	if opts.MaxDelay < opts.MinDelay {
		opts.MaxDelay = opts.MinDelay
	}

	return &Poster{
		queue:   queue,
		senders: senders,
		opts:    opts,
		sleep:   sleep,
		jitter:  rand.Int64N,
		log:     log.With(slog.String(logx.FieldComponent, "poster")),
	}
}

// Run posts up to MaxPosts pending deals, oldest first. A deal counts as
// posted once at least one sender accepted it.
func (p *Poster) Run(ctx context.Context) (PostSummary, error) {
	log := contextx.LoggerFromContextOr(ctx, p.log)

	deals, err := p.queue.ReadPending(ctx, p.opts.MaxPosts)
	if err != nil {
		return PostSummary{}, fmt.Errorf("read pending: %w", err)
	}

	summary := PostSummary{Pending: len(deals)}

	if len(deals) == 0 {
		log.Info("no unposted deals found")
		return summary, nil
	}

	log.Info("posting deals", slog.Int("count", len(deals)))

	for i, deal := range deals {
		if p.post(ctx, deal) {
			summary.Posted++
		} else {
			summary.Failed++
		}

		if i == len(deals)-1 {
			break
		}

		if err := p.sleep(ctx, p.delay()); err != nil {
			return summary, fmt.Errorf("pacing: %w", err)
		}
	}

	log.Info("posting finished",
		slog.Int("posted", summary.Posted),
		slog.Int("failed", summary.Failed),
	)

	return summary, nil
}

func (p *Poster) post(ctx context.Context, deal entity.Deal) bool {
	log := contextx.LoggerFromContextOr(ctx, p.log).With(
		slog.String(logx.FieldEAN, deal.EAN),
		slog.String(logx.FieldASIN, deal.ASIN),
	)

	delivered := 0

	for _, sender := range p.senders {
		if err := sender.Send(ctx, deal); err != nil {
			log.Error("send deal", slog.String("sender", sender.Name()), logx.Error(err))
			postsTotal.WithLabelValues(sender.Name(), "error").Inc()

			continue
		}

		postsTotal.WithLabelValues(sender.Name(), "ok").Inc()
		delivered++
	}

	if delivered == 0 {
		return false
	}

	if err := p.queue.MarkPosted(ctx, deal.Key()); err != nil {
		log.Error("mark posted", logx.Error(err))
		return false
	}

	log.Info("deal posted", slog.Int("senders", delivered))

	return true
}

// delay is uniform in [MinDelay, MaxDelay].
func (p *Poster) delay() time.Duration {
	span := int64(p.opts.MaxDelay - p.opts.MinDelay)
	if span <= 0 {
		return p.opts.MinDelay
	}

	return p.opts.MinDelay + time.Duration(p.jitter(span+1))
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
