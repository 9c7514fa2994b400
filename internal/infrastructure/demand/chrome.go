package demand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/pkg/logx"
)

var ErrProxyCredentials = errors.New("browser proxy must not carry credentials")

type ChromeOptions struct {
	Headless bool
	// Proxy is used by the browser only. Chrome ignores user:pass in
	// --proxy-server, so it has to be an open or IP-allowlisted proxy.
	Proxy   string
	Cookies []entity.BrowserCookie
}

// Flags are the command-line switches the browser is started with.
func (o ChromeOptions) Flags() (map[string]any, error) {
	flags := map[string]any{"headless": o.Headless}

	if o.Proxy != "" {
		proxyURL, err := url.Parse(o.Proxy)
		if err != nil {
			return nil, fmt.Errorf("url.Parse proxy: %w", err)
		}

		if proxyURL.User != nil {
			return nil, ErrProxyCredentials
		}

		flags["proxy-server"] = o.Proxy
	}

	return flags, nil
}

// Chrome is one browser process with a single cookie jar. Pages are new
// tabs of that browser.
type Chrome struct {
	ctx         context.Context //nolint:containedctx
	cancel      context.CancelFunc
	cancelAlloc context.CancelFunc
	log         *slog.Logger
}

func StartChrome(ctx context.Context, opts ChromeOptions, log *slog.Logger) (*Chrome, error) {
	flags, err := opts.Flags()
	if err != nil {
		return nil, err
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.WindowSize(1366, 900)) //nolint:gocritic
	for name, value := range flags {
		allocOpts = append(allocOpts, chromedp.Flag(name, value))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, cancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx, setCookies(opts.Cookies)); err != nil {
		cancel()
		cancelAlloc()

		return nil, fmt.Errorf("start browser: %w", err)
	}

	log.Info("browser started",
		slog.Bool("headless", opts.Headless),
		slog.Int("cookies", len(opts.Cookies)),
	)

	return &Chrome{
		ctx:         browserCtx,
		cancel:      cancel,
		cancelAlloc: cancelAlloc,
		log:         log,
	}, nil
}

func (c *Chrome) NewPage(ctx context.Context) (Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tabCtx, cancel := chromedp.NewContext(c.ctx)

	return &chromePage{ctx: tabCtx, cancel: cancel}, nil
}

func (c *Chrome) Close() {
	if err := chromedp.Cancel(c.ctx); err != nil {
		c.log.Warn("close browser", logx.Error(err))
	}

	c.cancel()
	c.cancelAlloc()
	c.log.Info("browser closed")
}

type chromePage struct {
	ctx    context.Context //nolint:containedctx
	cancel context.CancelFunc
}

// Content runs in the tab context; ctx only bounds it.
func (p *chromePage) Content(ctx context.Context, rawURL string) (string, error) {
	runCtx, cancel := context.WithCancel(p.ctx)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var html string

	err := chromedp.Run(runCtx,
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("navigate: %w", ctx.Err())
		}

		return "", fmt.Errorf("navigate: %w", err)
	}

	return html, nil
}

func (p *chromePage) Close() error {
	err := chromedp.Cancel(p.ctx)
	p.cancel()

	return err
}

func setCookies(cookies []entity.BrowserCookie) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		params := make([]*network.CookieParam, 0, len(cookies))

		for _, c := range cookies {
			param := &network.CookieParam{
				Name:     c.Name,
				Value:    c.Value,
				Domain:   c.Domain,
				Path:     c.Path,
				Secure:   c.Secure,
				HTTPOnly: c.HTTPOnly,
			}

			if c.Expires > 0 {
				expires := cdp.TimeSinceEpoch(time.Unix(int64(c.Expires), 0))
				param.Expires = &expires
			}

			params = append(params, param)
		}

		return network.SetCookies(params).Do(ctx)
	})
}
