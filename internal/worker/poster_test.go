package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/internal/worker"
)

func pendingDeals(asins ...string) []entity.Deal {
	deals := make([]entity.Deal, 0, len(asins))
	for _, asin := range asins {
		deals = append(deals, entity.Deal{EAN: "1234567890123", ASIN: asin, Name: asin})
	}

	return deals
}

func okSender(name string) *worker.SenderMock {
	return &worker.SenderMock{
		NameFunc: func() string { return name },
		SendFunc: func(context.Context, entity.Deal) error { return nil },
	}
}

func failingSender(name string, failFor ...string) *worker.SenderMock {
	return &worker.SenderMock{
		NameFunc: func() string { return name },
		SendFunc: func(_ context.Context, deal entity.Deal) error {
			if len(failFor) == 0 {
				return errors.New("webhook rejected")
			}

			for _, asin := range failFor {
				if deal.ASIN == asin {
					return errors.New("webhook rejected")
				}
			}

			return nil
		},
	}
}

func newQueue(deals []entity.Deal) *worker.DealQueueMock {
	return &worker.DealQueueMock{
		ReadPendingFunc: func(context.Context, int) ([]entity.Deal, error) { return deals, nil },
		MarkPostedFunc:  func(context.Context, entity.DealKey) error { return nil },
	}
}

func newTestPoster(queue worker.DealQueue, senders []worker.Sender, delays *[]time.Duration) *worker.Poster {
	p := worker.NewPoster(queue, senders, worker.PosterOptions{
		MaxPosts: 25,
		MinDelay: 5 * time.Second,
		MaxDelay: 15 * time.Second,
	}, discardLogger())

	p.SetPacing(
		func(_ context.Context, d time.Duration) error {
			*delays = append(*delays, d)
			return nil
		},
		func(n int64) int64 { return n - 1 },
	)

	return p
}

func TestPosterRun(t *testing.T) {
	rq := require.New(t)

	queue := newQueue(pendingDeals("B000000001", "B000000002", "B000000003"))

	var delays []time.Duration

	p := newTestPoster(queue, []worker.Sender{okSender("discord")}, &delays)

	summary, err := p.Run(context.Background())
	rq.NoError(err)
	rq.Equal(worker.PostSummary{Pending: 3, Posted: 3}, summary)

	rq.Len(queue.ReadPendingCalls(), 1)
	rq.Equal(25, queue.ReadPendingCalls()[0].Limit)

	marked := queue.MarkPostedCalls()
	rq.Len(marked, 3)
	rq.Equal(entity.DealKey{EAN: "1234567890123", ASIN: "B000000001"}, marked[0].Key)

	// Пауза только между публикациями.
	rq.Equal([]time.Duration{15 * time.Second, 15 * time.Second}, delays)
}

func TestPosterFailureDoesNotStopRun(t *testing.T) {
	rq := require.New(t)

	queue := newQueue(pendingDeals("B000000001", "B000000002", "B000000003"))

	var delays []time.Duration

	p := newTestPoster(queue, []worker.Sender{failingSender("discord", "B000000002")}, &delays)

	summary, err := p.Run(context.Background())
	rq.NoError(err)
	rq.Equal(worker.PostSummary{Pending: 3, Posted: 2, Failed: 1}, summary)

	marked := queue.MarkPostedCalls()
	rq.Len(marked, 2)
	rq.Equal("B000000001", marked[0].Key.ASIN)
	rq.Equal("B000000003", marked[1].Key.ASIN)
	rq.Len(delays, 2)
}

func TestPosterAnySenderMarksPosted(t *testing.T) {
	rq := require.New(t)

	queue := newQueue(pendingDeals("B000000001"))
	telegram := failingSender("telegram")
	discord := okSender("discord")

	var delays []time.Duration

	summary, err := newTestPoster(queue, []worker.Sender{telegram, discord}, &delays).Run(context.Background())
	rq.NoError(err)
	rq.Equal(1, summary.Posted)
	rq.Len(telegram.SendCalls(), 1)
	rq.Len(discord.SendCalls(), 1)
	rq.Len(queue.MarkPostedCalls(), 1)
	rq.Empty(delays)
}

func TestPosterMarkPostedFailure(t *testing.T) {
	rq := require.New(t)

	queue := newQueue(pendingDeals("B000000001"))
	queue.MarkPostedFunc = func(context.Context, entity.DealKey) error { return errors.New("conn closed") }

	var delays []time.Duration

	summary, err := newTestPoster(queue, []worker.Sender{okSender("discord")}, &delays).Run(context.Background())
	rq.NoError(err)
	rq.Equal(worker.PostSummary{Pending: 1, Failed: 1}, summary)
}

func TestPosterNothingPending(t *testing.T) {
	rq := require.New(t)

	queue := newQueue(nil)
	sender := okSender("discord")

	var delays []time.Duration

	summary, err := newTestPoster(queue, []worker.Sender{sender}, &delays).Run(context.Background())
	rq.NoError(err)
	rq.Zero(summary.Pending)
	rq.Empty(sender.SendCalls())
}

func TestPosterReadError(t *testing.T) {
	rq := require.New(t)

	queue := newQueue(nil)
	queue.ReadPendingFunc = func(context.Context, int) ([]entity.Deal, error) { return nil, errors.New("db down") }

	var delays []time.Duration

	_, err := newTestPoster(queue, []worker.Sender{okSender("discord")}, &delays).Run(context.Background())
	rq.Error(err)
}

func TestPosterDelayRange(t *testing.T) {
	rq := require.New(t)

	queue := newQueue(pendingDeals("B000000001", "B000000002", "B000000003", "B000000004"))

	var delays []time.Duration

	p := worker.NewPoster(queue, []worker.Sender{okSender("discord")}, worker.PosterOptions{
		MinDelay: 5 * time.Second,
		MaxDelay: 15 * time.Second,
	}, discardLogger())

	jitters := []int64{0, 5_000_000_000, 10_000_000_000}
	p.SetPacing(func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}, func(n int64) int64 {
		rq.Equal(int64(10*time.Second)+1, n)

		v := jitters[0]
		jitters = jitters[1:]

		return v
	})

	_, err := p.Run(context.Background())
	rq.NoError(err)
	rq.Equal([]time.Duration{5 * time.Second, 10 * time.Second, 15 * time.Second}, delays)
}

func TestPosterPacingCancelled(t *testing.T) {
	rq := require.New(t)

	queue := newQueue(pendingDeals("B000000001", "B000000002"))

	p := worker.NewPoster(queue, []worker.Sender{okSender("discord")}, worker.PosterOptions{
		MinDelay: time.Hour,
		MaxDelay: time.Hour,
	}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := p.Run(ctx)
	rq.ErrorIs(err, context.Canceled)
	rq.Equal(1, summary.Posted)
}
