package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/logx"
)

var ErrScanInProgress = errors.New("scan is already running")

//go:generate moq -rm -out scanner_mock.gen.go . CatalogSource:CatalogSourceMock
type CatalogSource interface {
	Catalog(ctx context.Context) []entity.CatalogEntry
	Credentials(ctx context.Context) (entity.Credentials, error)
}

// StageFactory builds the enrichment stages for one run. The returned
// release func frees run-scoped resources such as the browser.
type StageFactory func(ctx context.Context, creds entity.Credentials) (Stages, func(), error)

// Scanner performs one scan run at a time.
type Scanner struct {
	source  CatalogSource
	stages  StageFactory
	store   DealSaver
	options []PipelineOption

	mu        sync.Mutex
	isRunning bool

	log *slog.Logger
}

func NewScanner(
	source CatalogSource,
	stages StageFactory,
	store DealSaver,
	log *slog.Logger,
	opts ...PipelineOption,
) *Scanner {
	return &Scanner{
		source:  source,
		stages:  stages,
		store:   store,
		options: opts,
		log:     log.With(slog.String(logx.FieldComponent, "scanner")),
	}
}

// Scan fetches the catalog and credentials and runs the pipeline. An empty
// catalog ends the run without work; missing credentials or a failed
// browser start are run-level errors.
func (s *Scanner) Scan(ctx context.Context) (Summary, error) {
	if !s.begin() {
		return Summary{}, ErrScanInProgress
	}
	defer s.end()

	log := contextx.LoggerFromContextOr(ctx, s.log)
	log.Info("scan started")

	entries := s.source.Catalog(ctx)
	if len(entries) == 0 {
		log.Error("no catalog entries, nothing to scan")
		return Summary{}, nil
	}

	creds, err := s.source.Credentials(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("credentials: %w", err)
	}

	stages, release, err := s.stages(ctx, creds)
	if err != nil {
		return Summary{}, fmt.Errorf("stages: %w", err)
	}
	defer release()

	summary := NewPipeline(stages, s.store, log, s.options...).Run(ctx, entries)

	log.Info("scan finished", slog.Int("items", summary.Total), slog.Int("saved", summary.Saved()))

	return summary, nil
}

// IsRunning возвращает текущий статус.
func (s *Scanner) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isRunning
}

func (s *Scanner) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return false
	}

	s.isRunning = true

	return true
}

func (s *Scanner) end() {
	s.mu.Lock()
	s.isRunning = false
	s.mu.Unlock()
}
