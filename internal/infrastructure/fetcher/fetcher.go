// Package fetcher issues browser-like HTTP calls against marketplace
// surfaces. Transport faults are retried a fixed number of times and then
// reported as a soft "no response"; HTTP statuses are never interpreted here.
package fetcher

import (
	"context"
	"fmt"
	"log/slog"

	jsoniter "github.com/json-iterator/go"

	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const defaultRetries = 3

type Request struct {
	Method  string
	URL     string
	Referer string
	Cookie  string
	// API switches the Accept header to application/json.
	API  bool
	Body []byte
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Session is one scoped HTTP client. It is created per logical call and
// closed once the call ends.
type Session interface {
	Do(ctx context.Context, req Request) (*Response, error)
	Close()
}

type SessionFactory func() (Session, error)

type Fetcher struct {
	newSession SessionFactory
	retries    int
	log        *slog.Logger
}

type Option func(*Fetcher)

func WithRetries(retries int) Option {
	return func(f *Fetcher) {
		if retries > 0 {
			f.retries = retries
		}
	}
}

func New(newSession SessionFactory, log *slog.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		newSession: newSession,
		retries:    defaultRetries,
		log:        log.With(slog.String(logx.FieldComponent, "fetcher")),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Get returns the response or false when every attempt failed at transport
// level.
func (f *Fetcher) Get(ctx context.Context, req Request) (*Response, bool) {
	req.Method = "GET"
	req.Body = nil

	return f.do(ctx, req)
}

// PostJSON marshals payload and posts it.
func (f *Fetcher) PostJSON(ctx context.Context, req Request, payload any) (*Response, bool) {
	body, err := json.Marshal(payload)
	if err != nil {
		f.logger(ctx).Error("json.Marshal", slog.String(logx.FieldURL, req.URL), logx.Error(err))
		return nil, false
	}

	req.Method = "POST"
	req.Body = body

	return f.do(ctx, req)
}

func (f *Fetcher) do(ctx context.Context, req Request) (resp *Response, ok bool) {
	session, err := f.newSession()
	if err != nil {
		f.logger(ctx).Error("newSession", logx.Error(err))
		return nil, false
	}
	defer session.Close()

	defer func() {
		if rec := recover(); rec != nil {
			f.logger(ctx).Error("panic in session",
				slog.String(logx.FieldURL, req.URL),
				slog.Any(logx.FieldError, rec),
			)
			resp, ok = nil, false
		}
	}()

	for attempt := 1; attempt <= f.retries; attempt++ {
		if ctx.Err() != nil {
			break
		}

		resp, err = session.Do(ctx, req)
		if err == nil {
			attempts.WithLabelValues(req.Method, resultResponse).Inc()
			return resp, true
		}

		attempts.WithLabelValues(req.Method, resultTransportError).Inc()
		f.logger(ctx).Debug("transport failure",
			slog.String(logx.FieldHTTPMethod, req.Method),
			slog.String(logx.FieldURL, req.URL),
			slog.Int(logx.FieldAttempt, attempt),
			logx.Error(err),
		)
	}

	f.logger(ctx).Warn("no response",
		slog.String(logx.FieldHTTPMethod, req.Method),
		slog.String(logx.FieldURL, req.URL),
		slog.String(logx.FieldError, fmt.Sprintf("%d attempts exhausted", f.retries)),
	)

	return nil, false
}

func (f *Fetcher) logger(ctx context.Context) *slog.Logger {
	return contextx.LoggerFromContextOr(ctx, f.log)
}
