package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	cartpostgres "storefront-demo/internal/domains/cart/adapters/persistence/postgres"
	cartsettlement "storefront-demo/internal/domains/cart/adapters/settlement"
	cartports "storefront-demo/internal/domains/cart/ports"
	platformmigrations "storefront-demo/internal/platform/migrations"
	platformobservability "storefront-demo/internal/platform/observability"
	platformpostgres "storefront-demo/internal/platform/postgres"
	settlementactivities "storefront-demo/internal/platform/temporal/activities/settlement"
	settlementworkflows "storefront-demo/internal/platform/temporal/workflows/settlement"
)

func main() {
	ctx := context.Background()
	const serviceName = "storefront-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	ledger, cleanupLedger := buildReceiptLedger(ctx, logger)
	defer cleanupLedger()
	activities := settlementactivities.NewActivities(cartsettlement.NewSimulator(logger), ledger)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, settlementworkflows.SettlementTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(settlementworkflows.SettlementWorkflow, workflow.RegisterOptions{Name: settlementworkflows.SettlementWorkflowName})
	w.RegisterActivityWithOptions(activities.SettleOrder, activity.RegisterOptions{Name: settlementactivities.SettleOrderActivityName})
	w.RegisterActivityWithOptions(activities.RecordReceipt, activity.RegisterOptions{Name: settlementactivities.RecordReceiptActivityName})

	logger.Info("worker listening", slog.String("taskQueue", settlementworkflows.SettlementTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildReceiptLedger(ctx context.Context, logger *slog.Logger) (cartports.ReceiptLedger, func()) {
	dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	if dsn == "" {
		logger.Warn("POSTGRES_DSN not set, settled receipts will not be persisted")
		return cartports.NoopLedger, func() {}
	}
	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		logger.Warn("worker failed to connect to postgres, receipts will not be persisted", slog.String("error", err.Error()))
		return cartports.NoopLedger, func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("worker failed to run migrations, receipts will not be persisted", slog.String("error", err.Error()))
		return cartports.NoopLedger, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("worker failed to unwrap postgres connection, receipts will not be persisted", slog.String("error", err.Error()))
		return cartports.NoopLedger, func() {}
	}
	logger.Info("worker receipt ledger configured with postgres")
	return cartpostgres.NewReceiptLedger(db), func() { _ = sqlDB.Close() }
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
