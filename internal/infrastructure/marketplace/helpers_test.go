package marketplace_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"fba_scanner/internal/infrastructure/fetcher"
)

type call struct {
	Request fetcher.Request
	Payload any
}

type fakeFetcher struct {
	mu     sync.Mutex
	calls  []call
	handle func(req fetcher.Request) (*fetcher.Response, bool)
}

func (f *fakeFetcher) Get(_ context.Context, req fetcher.Request) (*fetcher.Response, bool) {
	f.mu.Lock()
	f.calls = append(f.calls, call{Request: req})
	f.mu.Unlock()

	return f.handle(req)
}

func (f *fakeFetcher) PostJSON(_ context.Context, req fetcher.Request, payload any) (*fetcher.Response, bool) {
	f.mu.Lock()
	f.calls = append(f.calls, call{Request: req, Payload: payload})
	f.mu.Unlock()

	return f.handle(req)
}

func (f *fakeFetcher) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]call(nil), f.calls...)
}

func respond(status int, body string) func(fetcher.Request) (*fetcher.Response, bool) {
	return func(fetcher.Request) (*fetcher.Response, bool) {
		return &fetcher.Response{StatusCode: status, Body: []byte(body)}, true
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
