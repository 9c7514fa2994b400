package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"fba_scanner/internal/config"
	"fba_scanner/internal/domain/entity"
	"fba_scanner/internal/infrastructure/demand"
	"fba_scanner/internal/infrastructure/fetcher"
	"fba_scanner/internal/infrastructure/marketplace"
	"fba_scanner/internal/infrastructure/notifier"
	"fba_scanner/internal/infrastructure/persistence"
	"fba_scanner/internal/infrastructure/sources"
	"fba_scanner/internal/server"
	"fba_scanner/internal/worker"
	"fba_scanner/pkg/application/connectors"
	"fba_scanner/pkg/application/modules"
	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/logx"
	"fba_scanner/pkg/middlewarex"
)

// workerConcurrency позволяет публикации идти, пока выполняется долгий скан.
const workerConcurrency = 2

// Application собирает зависимости из конфигурации и запускает один из
// режимов: разовый скан, разовую публикацию или постоянный воркер.
type Application struct {
	cfg config.Config
	log *slog.Logger

	postgres *connectors.Postgres
	redis    *connectors.Redis
}

func New(cfg config.Config, log *slog.Logger) *Application {
	return &Application{
		cfg: cfg,
		log: log.With(
			slog.String(logx.FieldAppName, cfg.App.Name),
			slog.String(logx.FieldAppVersion, cfg.App.Version),
		),
		postgres: &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		},
		redis: &connectors.Redis{
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		},
	}
}

// RunScan выполняет один проход по каталогу и завершается.
func (a *Application) RunScan(ctx context.Context) error {
	ctx = contextx.WithLogger(ctx, a.log)

	repo, closeStore, err := a.dealStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	shared, closeCache := a.sharedCache(ctx)
	defer closeCache()

	if _, err := a.scanner(repo, shared).Scan(ctx); err != nil {
		return fmt.Errorf("scanner.Scan: %w", err)
	}

	return nil
}

// RunPost публикует накопившиеся сделки и завершается.
func (a *Application) RunPost(ctx context.Context) error {
	ctx = contextx.WithLogger(ctx, a.log)

	repo, closeStore, err := a.dealStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	poster, err := a.poster(repo)
	if err != nil {
		return err
	}

	summary, err := poster.Run(ctx)
	if err != nil {
		return fmt.Errorf("poster.Run: %w", err)
	}

	a.log.Info("posting finished",
		slog.Int("pending", summary.Pending),
		slog.Int("posted", summary.Posted),
		slog.Int("failed", summary.Failed),
	)

	return nil
}

// RunWorker поднимает probe, метрики, HTTP API и asynq с расписанием скана
// и публикации. Блокируется до отмены ctx.
func (a *Application) RunWorker(ctx context.Context) error {
	ctx = contextx.WithLogger(ctx, a.log)

	if !a.cfg.Redis.Enabled() {
		return errors.New("worker mode requires REDIS_ADDR")
	}

	repo, closeStore, err := a.dealStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	shared, closeCache := a.sharedCache(ctx)
	defer closeCache()

	poster, err := a.poster(repo)
	if err != nil {
		return err
	}

	tasks := worker.NewTasks(
		a.scanner(repo, shared),
		poster,
		worker.TaskOptions{
			ScanTimeout: a.cfg.Worker.ScanTimeout,
			PostTimeout: a.cfg.Worker.PostTimeout,
		},
		a.log,
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          a.cfg.App.Name,
		Version:       a.cfg.App.Version,
		ListenAddress: a.cfg.Worker.ProbeAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: a.cfg.Worker.MetricsAddress,
	}.Run(ctx, g)

	modules.HTTPServer{
		ShutdownTimeout: a.cfg.Worker.ShutdownTimeout,
	}.Run(ctx, g, a.httpServer(ctx, repo))

	modules.AsynqServer{
		RedisUsername:   a.cfg.Redis.Username,
		RedisPassword:   a.cfg.Redis.Password,
		RedisAddress:    a.cfg.Redis.Address,
		RedisDB:         a.cfg.Redis.DatabaseNumber,
		Concurrency:     workerConcurrency,
		ShutdownTimeout: a.cfg.Worker.ShutdownTimeout,
	}.Run(ctx, g, modules.AsynqQueues{worker.QueueDefault: 1}, tasks.Handlers()...)

	modules.AsynqScheduler{
		RedisUsername: a.cfg.Redis.Username,
		RedisPassword: a.cfg.Redis.Password,
		RedisAddress:  a.cfg.Redis.Address,
		RedisDB:       a.cfg.Redis.DatabaseNumber,
	}.Run(ctx, g, tasks.Schedule(a.cfg.Worker.ScanCron, a.cfg.Worker.PostCron)...)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func (a *Application) dealStore(ctx context.Context) (*persistence.DealRepository, func(), error) {
	db := a.postgres.Client(ctx)

	if err := persistence.Migrate(ctx, db); err != nil {
		a.postgres.Close(ctx)
		return nil, nil, fmt.Errorf("persistence.Migrate: %w", err)
	}

	return persistence.NewDealRepository(db), func() { a.postgres.Close(ctx) }, nil
}

// sharedCache возвращает redis для кэша идентификаторов или nil, если redis
// не настроен.
func (a *Application) sharedCache(ctx context.Context) (marketplace.SharedCache, func()) {
	if !a.cfg.Redis.Enabled() {
		return nil, func() {}
	}

	return a.redis.Client(ctx), func() { a.redis.Close(ctx) }
}

func (a *Application) scanner(store worker.DealSaver, shared marketplace.SharedCache) *worker.Scanner {
	scanCfg := a.cfg.Scanner

	source := sources.NewClient(sources.Options{
		CatalogURL:     scanCfg.CatalogURL,
		CredentialsURL: scanCfg.CredentialsURL,
		Token:          scanCfg.SourceToken,
		Timeout:        scanCfg.SourceTimeout,
		LogFieldMaxLen: a.cfg.Worker.LogFieldMaxLen,
	}, a.log)

	return worker.NewScanner(
		source,
		a.stageFactory(shared),
		store,
		a.log,
		worker.WithMaxInFlight(scanCfg.MaxInFlight),
	)
}

// stageFactory собирает этапы обогащения под куки конкретного запуска.
func (a *Application) stageFactory(shared marketplace.SharedCache) worker.StageFactory {
	scanCfg := a.cfg.Scanner

	return func(ctx context.Context, creds entity.Credentials) (worker.Stages, func(), error) {
		httpFetcher := fetcher.New(
			fetcher.NewTLSSessionFactory(fetcher.SessionConfig{
				Timeout: scanCfg.HTTPTimeout,
				Proxy:   scanCfg.Proxy,
			}),
			a.log,
			fetcher.WithRetries(scanCfg.HTTPRetries),
		)

		resolver := marketplace.NewCachedResolver(
			marketplace.NewResolver(httpFetcher, scanCfg.SearchHost, creds.Marketplace, a.log),
			shared,
			scanCfg.IdentifierCacheTTL,
			a.log,
		)

		sellerCentral := marketplace.NewSellerCentral(httpFetcher, marketplace.SellerCentralOptions{
			Host:        scanCfg.APIHost,
			CountryCode: scanCfg.CountryCode,
			Locale:      scanCfg.Locale,
			Currency:    scanCfg.Currency,
		}, creds.Seller, a.log)

		chrome, err := demand.StartChrome(ctx, chromeOptions(scanCfg, creds), a.log)
		if err != nil {
			return worker.Stages{}, nil, fmt.Errorf("demand.StartChrome: %w", err)
		}

		verifier := demand.NewVerifier(chrome, demand.Options{
			Host:              scanCfg.LookupHost,
			Pages:             scanCfg.BrowserPages,
			NavigationTimeout: scanCfg.NavigationTimeout,
		}, a.log)

		stages := worker.Stages{
			Resolver: resolver,
			Catalog:  sellerCentral,
			Demand:   verifier,
		}

		return stages, chrome.Close, nil
	}
}

// chromeOptions не использует PROXY: он только для HTTP-клиента.
func chromeOptions(scanCfg config.Scanner, creds entity.Credentials) demand.ChromeOptions {
	return demand.ChromeOptions{
		Headless: scanCfg.BrowserHeadless,
		Proxy:    scanCfg.BrowserProxy,
		Cookies:  creds.Lookup,
	}
}

func (a *Application) poster(queue worker.DealQueue) (*worker.Poster, error) {
	postCfg := a.cfg.Poster

	var senders []worker.Sender

	if postCfg.DiscordWebhook != "" {
		senders = append(senders, notifier.NewDiscord(postCfg.DiscordWebhook, a.log))
	}

	if postCfg.TelegramEnabled() {
		bot, err := notifier.NewTelegramBot(postCfg.TelegramToken, postCfg.TelegramChatID, a.log)
		if err != nil {
			return nil, fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		senders = append(senders, bot)
	}

	if len(senders) == 0 {
		a.log.Warn("no senders configured, deals stay pending")
	}

	return worker.NewPoster(queue, senders, worker.PosterOptions{
		MaxPosts: postCfg.MaxPostsPerRun,
		MinDelay: postCfg.MinDelay,
		MaxDelay: postCfg.MaxDelay,
	}, a.log), nil
}

func (a *Application) httpServer(ctx context.Context, repo *persistence.DealRepository) *http.Server {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()
	r.Use(
		middlewarex.TraceID,
		middlewarex.RequestLogging(masker, a.cfg.Worker.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, a.cfg.Worker.LogFieldMaxLen),
		middlewarex.Recovery,
	)

	server.NewServer(server.NewDealServer(repo)).RegisterRoutes(r)

	return &http.Server{ //nolint:exhaustruct
		Addr:              a.cfg.Worker.HTTPAddress,
		Handler:           r,
		ReadHeaderTimeout: a.cfg.Worker.ShutdownTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}
