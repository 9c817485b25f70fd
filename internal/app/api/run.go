package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	storefrontserver "storefront-demo/server"

	catalogfile "storefront-demo/internal/domains/catalog/adapters/file"
	catalogmemory "storefront-demo/internal/domains/catalog/adapters/memory"
	catalogobs "storefront-demo/internal/domains/catalog/adapters/observability"
	catalogpostgres "storefront-demo/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "storefront-demo/internal/domains/catalog/application"
	catalogports "storefront-demo/internal/domains/catalog/ports"

	cartmemory "storefront-demo/internal/domains/cart/adapters/memory"
	cartobs "storefront-demo/internal/domains/cart/adapters/observability"
	cartpostgres "storefront-demo/internal/domains/cart/adapters/persistence/postgres"
	cartsettlement "storefront-demo/internal/domains/cart/adapters/settlement"
	cartworkflows "storefront-demo/internal/domains/cart/adapters/workflows"
	cartapp "storefront-demo/internal/domains/cart/application"
	cartports "storefront-demo/internal/domains/cart/ports"

	launchermemory "storefront-demo/internal/domains/launcher/adapters/memory"
	launcherobs "storefront-demo/internal/domains/launcher/adapters/observability"
	launcherapp "storefront-demo/internal/domains/launcher/application"
	launcherports "storefront-demo/internal/domains/launcher/ports"

	platformmigrations "storefront-demo/internal/platform/migrations"
	platformobservability "storefront-demo/internal/platform/observability"
	platformpostgres "storefront-demo/internal/platform/postgres"

	"storefront-demo/internal/platform/notify"
)

// Run boots the storefront HTTP API with observability, repositories, and
// settlement workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, closeDB := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer closeDB()
	if db != nil {
		if err := platformmigrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	catalogRepo, closeCatalog, err := buildCatalogRepository(ctx, cfg, db, logger)
	if err != nil {
		return err
	}
	defer closeCatalog()
	catalogService := catalogobs.New(
		catalogapp.NewService(catalogRepo),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)

	notices := notify.NewCenter(cfg.NoticeTTL, logger)

	ledger := cartports.NoopLedger
	var receiptArchive cartports.ReceiptArchive
	if db != nil {
		pgLedger := cartpostgres.NewReceiptLedger(db)
		ledger = pgLedger
		receiptArchive = pgLedger
		logger.Info("receipt ledger configured with postgres")
	}
	simulator := cartsettlement.NewSimulator(logger)

	var orchestrator cartports.SettlementOrchestrator = cartworkflows.NewInlineSettlement(simulator, ledger)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, settling checkouts inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orchestrator = cartworkflows.NewTemporalSettlement(temporalClient)
		logger.Info("Temporal settlement enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	cartRepo := cartmemory.NewRepository()
	cartService := cartobs.New(
		cartapp.NewService(cartRepo, catalogRepo, orchestrator, notices),
		cartobs.WithLogger(logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
		cartobs.WithMeter(instruments.Meter("internal.cart.application")),
	)

	launcherStore := launchermemory.NewStateStore()
	launcherService := launcherobs.New(
		launcherapp.NewService(launcherStore),
		launcherobs.WithLogger(logger),
		launcherobs.WithTracer(instruments.Tracer("internal.launcher.application")),
		launcherobs.WithMeter(instruments.Meter("internal.launcher.application")),
	)

	reaperCtx, stopReaper := context.WithCancel(ctx)
	defer stopReaper()
	go runIdleReaper(reaperCtx, cfg, cartRepo, launcherStore, logger)

	handlers := storefrontserver.ApiHandleFunctions{
		CatalogAPI:  storefrontserver.NewCatalogAPI(catalogService),
		CartAPI:     storefrontserver.NewCartAPI(cartService, notices).WithReceiptArchive(receiptArchive),
		LauncherAPI: storefrontserver.NewLauncherAPI(launcherService),
	}

	router := storefrontserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildCatalogRepository prefers a hot-reloading file catalog, then postgres,
// and falls back to the built-in in-memory seed.
func buildCatalogRepository(ctx context.Context, cfg Config, db *gorm.DB, logger *slog.Logger) (catalogports.Repository, func(), error) {
	if cfg.CatalogFile != "" {
		repo, err := catalogfile.NewRepository(cfg.CatalogFile, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load catalog file %q: %w", cfg.CatalogFile, err)
		}
		logger.Info("catalog configured from file", slog.String("path", cfg.CatalogFile))
		return repo, func() { _ = repo.Close() }, nil
	}
	if db != nil {
		repo := catalogpostgres.NewRepository(db)
		if err := repo.Seed(ctx, catalogmemory.DefaultCatalog()); err != nil {
			return nil, nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		logger.Info("catalog configured with postgres")
		return repo, func() {}, nil
	}
	logger.Info("catalog configured with in-memory seed")
	return catalogmemory.NewRepository(catalogmemory.DefaultCatalog(), logger), func() {}, nil
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func runIdleReaper(ctx context.Context, cfg Config, carts cartports.Repository, launcher launcherports.StateStore, logger *slog.Logger) {
	interval := time.Duration(cfg.CartIdlePurgeMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-interval)
			purgedCarts, err := carts.PurgeIdle(ctx, cutoff)
			if err != nil {
				logger.Warn("idle cart purge failed", slog.String("error", err.Error()))
			}
			purgedStates, err := launcher.PurgeIdle(ctx, cutoff)
			if err != nil {
				logger.Warn("idle launcher purge failed", slog.String("error", err.Error()))
			}
			if purgedCarts > 0 || purgedStates > 0 {
				logger.Info("purged idle sessions",
					slog.Int("carts", purgedCarts),
					slog.Int("launcher_states", purgedStates))
			}
		}
	}
}
