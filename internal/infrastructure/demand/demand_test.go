package demand_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"fba_scanner/internal/infrastructure/demand"
)

const lookupPage = `<html><body><div class="sales">` +
	`<span class="estimated_sales_per_mo"> 1,204 / mo </span></div></body></html>`

type fakeBrowser struct {
	open    atomic.Int32
	maxOpen atomic.Int32
	opened  atomic.Int32
	closed  atomic.Int32

	mu   sync.Mutex
	urls []string

	content func(ctx context.Context) (string, error)
	openErr error
}

func (b *fakeBrowser) NewPage(context.Context) (demand.Page, error) {
	if b.openErr != nil {
		return nil, b.openErr
	}

	n := b.open.Add(1)
	for {
		current := b.maxOpen.Load()
		if n <= current || b.maxOpen.CompareAndSwap(current, n) {
			break
		}
	}

	b.opened.Add(1)

	return &fakePage{browser: b}, nil
}

type fakePage struct {
	browser *fakeBrowser
}

func (p *fakePage) Content(ctx context.Context, rawURL string) (string, error) {
	p.browser.mu.Lock()
	p.browser.urls = append(p.browser.urls, rawURL)
	p.browser.mu.Unlock()

	return p.browser.content(ctx)
}

func (p *fakePage) Close() error {
	p.browser.open.Add(-1)
	p.browser.closed.Add(1)

	return nil
}

func newVerifier(b demand.Browser, pages int, timeout time.Duration) *demand.Verifier {
	return demand.NewVerifier(b, demand.Options{
		Host:              "https://sas.selleramp.com/",
		Pages:             pages,
		NavigationTimeout: timeout,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestVerifierMonthlySales(t *testing.T) {
	rq := require.New(t)

	b := &fakeBrowser{content: func(context.Context) (string, error) { return lookupPage, nil }}
	v := newVerifier(b, 2, time.Second)

	sales, ok := v.MonthlySales(context.Background(), "B08N5WRWNW")
	rq.True(ok)
	rq.Equal(1204, sales)
	rq.Equal([]string{"https://sas.selleramp.com/sas/lookup?SasLookup%5Bsearch_term%5D=B08N5WRWNW&src=web"}, b.urls)
	rq.Equal(int32(1), b.closed.Load())
}

func TestVerifierPageAlwaysClosed(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		content func(ctx context.Context) (string, error)
	}{
		{
			name:    "Missing element",
			content: func(context.Context) (string, error) { return `<html><body>login</body></html>`, nil },
		},
		{
			name:    "Navigation error",
			content: func(context.Context) (string, error) { return "", errors.New("net::ERR_CONNECTION_RESET") },
		},
		{
			name: "Navigation timeout",
			content: func(ctx context.Context) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			},
		},
		{
			name:    "Panic",
			content: func(context.Context) (string, error) { panic("target closed") },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(_ *testing.T) {
			b := &fakeBrowser{content: tc.content}
			v := newVerifier(b, 1, 50*time.Millisecond)

			sales, ok := v.MonthlySales(context.Background(), "B08N5WRWNW")
			rq.False(ok)
			rq.Zero(sales)
			rq.Equal(int32(1), b.opened.Load())
			rq.Equal(int32(1), b.closed.Load())
		})
	}
}

func TestVerifierOpenFailure(t *testing.T) {
	rq := require.New(t)

	b := &fakeBrowser{openErr: errors.New("browser gone")}

	_, ok := newVerifier(b, 1, time.Second).MonthlySales(context.Background(), "B08N5WRWNW")
	rq.False(ok)
	rq.Zero(b.closed.Load())
}

func TestVerifierPagePoolBound(t *testing.T) {
	rq := require.New(t)

	const pages = 3

	b := &fakeBrowser{content: func(context.Context) (string, error) {
		time.Sleep(5 * time.Millisecond)
		return lookupPage, nil
	}}
	v := newVerifier(b, pages, time.Second)

	var g errgroup.Group

	var found atomic.Int32

	for range 40 {
		g.Go(func() error {
			if _, ok := v.MonthlySales(context.Background(), "B08N5WRWNW"); ok {
				found.Add(1)
			}

			return nil
		})
	}

	rq.NoError(g.Wait())
	rq.Equal(int32(40), found.Load())
	rq.LessOrEqual(b.maxOpen.Load(), int32(pages))
	rq.Equal(int32(40), b.closed.Load())
	rq.Zero(b.open.Load())
}

func TestVerifierCancelledWhileWaiting(t *testing.T) {
	rq := require.New(t)

	release := make(chan struct{})
	b := &fakeBrowser{content: func(context.Context) (string, error) {
		<-release
		return lookupPage, nil
	}}
	v := newVerifier(b, 1, time.Minute)

	done := make(chan struct{})

	go func() {
		defer close(done)
		_, _ = v.MonthlySales(context.Background(), "B000000001")
	}()

	require.Eventually(t, func() bool { return b.opened.Load() == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := v.MonthlySales(ctx, "B000000002")
	rq.False(ok)
	rq.Equal(int32(1), b.opened.Load())

	close(release)
	<-done
}
