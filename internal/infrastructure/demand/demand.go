// Package demand estimates monthly sales of an ASIN by reading the
// third-party lookup page in a shared, cookie-authenticated browser.
package demand

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/logx"
)

const (
	DefaultPages             = 10
	DefaultNavigationTimeout = 60 * time.Second
)

// Page is one isolated browser tab.
type Page interface {
	// Content navigates to rawURL and returns the rendered document.
	Content(ctx context.Context, rawURL string) (string, error)
	Close() error
}

type Browser interface {
	NewPage(ctx context.Context) (Page, error)
}

type Options struct {
	Host              string
	Pages             int
	NavigationTimeout time.Duration
}

// Verifier bounds the number of simultaneously open pages. Every page is
// closed on every path, including panics.
type Verifier struct {
	browser Browser
	pages   *semaphore.Weighted
	host    string
	timeout time.Duration
	log     *slog.Logger
}

func NewVerifier(browser Browser, opts Options, log *slog.Logger) *Verifier {
	if opts.Pages <= 0 {
		opts.Pages = DefaultPages
	}

	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = DefaultNavigationTimeout
	}

	return &Verifier{
		browser: browser,
		pages:   semaphore.NewWeighted(int64(opts.Pages)),
		host:    strings.TrimRight(opts.Host, "/"),
		timeout: opts.NavigationTimeout,
		log:     log.With(slog.String(logx.FieldComponent, "demand")),
	}
}

// LookupLink is the human-facing lookup page for asin.
func (v *Verifier) LookupLink(asin string) string {
	query := url.Values{
		"src":                    {"web"},
		"SasLookup[search_term]": {asin},
	}

	return v.host + "/sas/lookup?" + query.Encode()
}

// MonthlySales reports false when the estimate is absent for any reason:
// pool wait cancelled, page failure, navigation timeout or missing element.
func (v *Verifier) MonthlySales(ctx context.Context, asin string) (sales int, ok bool) {
	log := contextx.LoggerFromContextOr(ctx, v.log).With(slog.String(logx.FieldASIN, asin))

	if err := v.pages.Acquire(ctx, 1); err != nil {
		return 0, false
	}
	defer v.pages.Release(1)

	pagesInFlight.Inc()
	defer pagesInFlight.Dec()

	page, err := v.browser.NewPage(ctx)
	if err != nil {
		log.Warn("open page", logx.Error(err))
		lookups.WithLabelValues(resultError).Inc()

		return 0, false
	}

	defer func() {
		if err := page.Close(); err != nil {
			log.Debug("close page", logx.Error(err))
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			log.Error("page panic",
				logx.Error(fmt.Errorf("%v", r)),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)
			lookups.WithLabelValues(resultError).Inc()

			sales, ok = 0, false
		}
	}()

	navCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	html, err := page.Content(navCtx, v.LookupLink(asin))
	if err != nil {
		log.Warn("lookup page", logx.Error(err))
		lookups.WithLabelValues(resultError).Inc()

		return 0, false
	}

	sales, ok = ParseMonthlySales([]byte(html))
	if !ok {
		lookups.WithLabelValues(resultMissing).Inc()
		return 0, false
	}

	lookups.WithLabelValues(resultFound).Inc()

	return sales, true
}
