package worker

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/internal/domain/service/economics"
	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/logx"
)

const DefaultMaxInFlight = 100

//go:generate moq -rm -out pipeline_mock.gen.go . IdentifierResolver:IdentifierResolverMock ProductCatalog:ProductCatalogMock DemandVerifier:DemandVerifierMock DealSaver:DealSaverMock
type IdentifierResolver interface {
	Resolve(ctx context.Context, ean string) (string, bool)
}

type ProductCatalog interface {
	ProductData(ctx context.Context, asin string) (*entity.ProductData, bool)
	Price(ctx context.Context, asin string) (decimal.Decimal, bool)
	Fees(ctx context.Context, asin string, categoryGroup string, price decimal.Decimal) (entity.FeeBreakdown, bool)
}

type DemandVerifier interface {
	MonthlySales(ctx context.Context, asin string) (int, bool)
	LookupLink(asin string) string
}

type DealSaver interface {
	Save(ctx context.Context, deal entity.Deal) (bool, error)
}

// Stages are the per-run enrichment steps of an item.
type Stages struct {
	Resolver IdentifierResolver
	Catalog  ProductCatalog
	Demand   DemandVerifier
}

type Outcome string

const (
	OutcomeResolveMiss  Outcome = "resolved_miss"
	OutcomeProductMiss  Outcome = "product_miss"
	OutcomePriceMiss    Outcome = "price_miss"
	OutcomeFeesMiss     Outcome = "fees_miss"
	OutcomeUnprofitable Outcome = "unprofitable"
	OutcomeLowDemand    Outcome = "low_demand"
	OutcomeDuplicate    Outcome = "duplicate"
	OutcomeStoreError   Outcome = "store_error"
	OutcomeSaved        Outcome = "saved"
	OutcomePanic        Outcome = "panic"
	OutcomeCancelled    Outcome = "cancelled"
)

// Summary counts item outcomes of one run.
type Summary struct {
	Total    int
	Outcomes map[Outcome]int
}

func (s Summary) Saved() int {
	return s.Outcomes[OutcomeSaved]
}

type PipelineOption func(*Pipeline)

func WithMaxInFlight(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.inFlight = semaphore.NewWeighted(int64(n))
		}
	}
}

func WithThresholds(t economics.Thresholds) PipelineOption {
	return func(p *Pipeline) {
		p.thresholds = t
	}
}

// Pipeline runs every catalog entry through resolve, enrich, evaluate,
// verify and save. Items are independent: a failed or panicking item never
// affects its siblings.
type Pipeline struct {
	stages     Stages
	store      DealSaver
	thresholds economics.Thresholds
	inFlight   *semaphore.Weighted
	log        *slog.Logger
}

func NewPipeline(stages Stages, store DealSaver, log *slog.Logger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		stages:     stages,
		store:      store,
		thresholds: economics.DefaultThresholds(),
		inFlight:   semaphore.NewWeighted(DefaultMaxInFlight),
		log:        log.With(slog.String(logx.FieldComponent, "pipeline")),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run blocks until every entry has finished.
func (p *Pipeline) Run(ctx context.Context, entries []entity.CatalogEntry) Summary {
	start := time.Now()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		summary = Summary{Total: len(entries), Outcomes: make(map[Outcome]int)}
	)

	for _, entry := range entries {
		wg.Add(1)

		go func() {
			defer wg.Done()

			outcome := p.runItem(ctx, entry)
			itemsTotal.WithLabelValues(string(outcome)).Inc()

			mu.Lock()
			summary.Outcomes[outcome]++
			mu.Unlock()
		}()
	}

	wg.Wait()

	runDuration.Observe(time.Since(start).Seconds())

	p.logger(ctx).Info("pipeline finished",
		slog.Int("items", summary.Total),
		slog.Int("saved", summary.Saved()),
		slog.Any("outcomes", summary.Outcomes),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return summary
}

func (p *Pipeline) runItem(ctx context.Context, entry entity.CatalogEntry) Outcome {
	if err := p.inFlight.Acquire(ctx, 1); err != nil {
		return OutcomeCancelled
	}
	defer p.inFlight.Release(1)

	log := p.logger(ctx).With(slog.String(logx.FieldEAN, entry.EAN))

	return p.Process(contextx.WithLogger(ctx, log), entry)
}

// Process runs one entry through all stages in order; the first absent
// value ends the item.
func (p *Pipeline) Process(ctx context.Context, entry entity.CatalogEntry) (outcome Outcome) {
	log := p.logger(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("item panic",
				slog.String("name", entry.Name),
				logx.Error(fmt.Errorf("%v", r)),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			outcome = OutcomePanic
		}
	}()

	asin, ok := p.stages.Resolver.Resolve(ctx, entry.EAN)
	if !ok {
		log.Warn("skipped: no valid asin")
		return OutcomeResolveMiss
	}

	log = log.With(slog.String(logx.FieldASIN, asin))
	ctx = contextx.WithLogger(ctx, log)

	product, ok := p.stages.Catalog.ProductData(ctx, asin)
	if !ok {
		log.Warn("skipped: no product data")
		return OutcomeProductMiss
	}

	price, ok := p.stages.Catalog.Price(ctx, asin)
	if !ok {
		log.Warn("skipped: no price")
		return OutcomePriceMiss
	}

	fees, ok := p.stages.Catalog.Fees(ctx, asin, product.CategoryGroup, price)
	if !ok {
		log.Warn("skipped: no fees")
		return OutcomeFeesMiss
	}

	result := economics.Evaluate(entry.SupplierPrice, price, fees.Total())
	if !p.thresholds.Profitable(result) {
		log.Info("skipped: unprofitable",
			slog.String(logx.FieldROI, result.ROI.StringFixed(2)),
			slog.String(logx.FieldProfit, result.Profit.StringFixed(2)),
		)

		return OutcomeUnprofitable
	}

	sales, known := p.stages.Demand.MonthlySales(ctx, asin)
	if !p.thresholds.HasDemand(sales, known) {
		log.Info("skipped: low demand", slog.Int(logx.FieldSales, sales), slog.Bool("known", known))
		return OutcomeLowDemand
	}

	deal := entity.Deal{
		EAN:             entry.EAN,
		ASIN:            asin,
		Name:            product.Title,
		SupplierCost:    result.SupplierCost,
		Price:           price,
		Fees:            fees.Total(),
		Profit:          result.Profit,
		ROI:             result.ROI,
		EstimatedSales:  sales,
		MarketplaceLink: product.URL,
		SupplierLink:    entry.SupplierLink,
		LookupLink:      p.stages.Demand.LookupLink(asin),
		ImageURL:        product.ImageURL,
	}

	saved, err := p.store.Save(ctx, deal)
	if err != nil {
		log.Error("save deal", logx.Error(err))
		return OutcomeStoreError
	}

	if !saved {
		log.Info("duplicate skipped")
		return OutcomeDuplicate
	}

	log.Info("deal queued",
		slog.String(logx.FieldProfit, result.Profit.StringFixed(2)),
		slog.String(logx.FieldROI, result.ROI.StringFixed(2)),
		slog.Int(logx.FieldSales, sales),
	)

	return OutcomeSaved
}

func (p *Pipeline) logger(ctx context.Context) *slog.Logger {
	return contextx.LoggerFromContextOr(ctx, p.log)
}
