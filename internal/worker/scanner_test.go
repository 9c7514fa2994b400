package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/internal/worker"
)

func credentials() entity.Credentials {
	return entity.Credentials{
		Marketplace: "session-id=1",
		Seller:      "at-main=2",
		Lookup:      []entity.BrowserCookie{{Name: "_identity", Domain: ".selleramp.com"}},
	}
}

func newSource(entries []entity.CatalogEntry, credsErr error) *worker.CatalogSourceMock {
	return &worker.CatalogSourceMock{
		CatalogFunc: func(context.Context) []entity.CatalogEntry { return entries },
		CredentialsFunc: func(context.Context) (entity.Credentials, error) {
			if credsErr != nil {
				return entity.Credentials{}, credsErr
			}

			return credentials(), nil
		},
	}
}

func TestScannerScan(t *testing.T) {
	rq := require.New(t)

	f := newFixture()

	var (
		gotCreds entity.Credentials
		released int
	)

	stages := func(_ context.Context, creds entity.Credentials) (worker.Stages, func(), error) {
		gotCreds = creds

		return worker.Stages{Resolver: f.resolver, Catalog: f.catalog, Demand: f.demand}, func() { released++ }, nil
	}

	s := worker.NewScanner(newSource([]entity.CatalogEntry{testEntry("1234567890123")}, nil), stages, f.store, discardLogger())

	summary, err := s.Scan(context.Background())
	rq.NoError(err)
	rq.Equal(1, summary.Saved())
	rq.Equal(credentials(), gotCreds)
	rq.Equal(1, released)
	rq.False(s.IsRunning())
}

func TestScannerRunLevelFailures(t *testing.T) {
	rq := require.New(t)

	errStart := errors.New("chrome not found")

	testCases := []struct {
		name       string
		entries    []entity.CatalogEntry
		credsErr   error
		stagesErr  error
		err        bool
		stagesUsed bool
	}{
		{
			name:    "Empty catalog",
			entries: nil,
		},
		{
			name:     "Credentials unavailable",
			entries:  []entity.CatalogEntry{testEntry("1")},
			credsErr: errors.New("status 404"),
			err:      true,
		},
		{
			name:       "Browser fails to start",
			entries:    []entity.CatalogEntry{testEntry("1")},
			stagesErr:  errStart,
			err:        true,
			stagesUsed: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(_ *testing.T) {
			f := newFixture()
			used := false

			stages := func(context.Context, entity.Credentials) (worker.Stages, func(), error) {
				used = true
				return worker.Stages{}, nil, tc.stagesErr
			}

			summary, err := worker.NewScanner(newSource(tc.entries, tc.credsErr), stages, f.store, discardLogger()).
				Scan(context.Background())

			rq.Equal(tc.err, err != nil)
			rq.Zero(summary.Total)
			rq.Equal(tc.stagesUsed, used)
			rq.Zero(f.store.saves.Load())
		})
	}
}

func TestScannerSingleRun(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	entered := make(chan struct{})
	release := make(chan struct{})

	f.resolver.ResolveFunc = func(context.Context, string) (string, bool) {
		close(entered)
		<-release

		return "", false
	}

	stages := func(context.Context, entity.Credentials) (worker.Stages, func(), error) {
		return worker.Stages{Resolver: f.resolver, Catalog: f.catalog, Demand: f.demand}, func() {}, nil
	}

	s := worker.NewScanner(newSource([]entity.CatalogEntry{testEntry("1")}, nil), stages, f.store, discardLogger())

	done := make(chan error, 1)

	go func() {
		_, err := s.Scan(context.Background())
		done <- err
	}()

	<-entered
	rq.True(s.IsRunning())

	_, err := s.Scan(context.Background())
	rq.ErrorIs(err, worker.ErrScanInProgress)

	close(release)
	rq.NoError(<-done)
	rq.False(s.IsRunning())
}
