package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fchchen/quote-engine/internal/application/usecase"
	"github.com/fchchen/quote-engine/internal/domain/port"
	"github.com/fchchen/quote-engine/internal/domain/service"
	"github.com/fchchen/quote-engine/internal/infrastructure/config"
	"github.com/fchchen/quote-engine/internal/infrastructure/messaging"
	"github.com/fchchen/quote-engine/internal/infrastructure/persistence/memory"
	pgRepo "github.com/fchchen/quote-engine/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/fchchen/quote-engine/internal/presentation/grpc"
	"github.com/fchchen/quote-engine/internal/presentation/rest"
	pkgkafka "github.com/fchchen/quote-engine/pkg/kafka"
	"github.com/fchchen/quote-engine/pkg/observability"
	pkgpostgres "github.com/fchchen/quote-engine/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	logger.Info("starting quoting-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"store_backend", cfg.StoreBackend,
	)

	// Tracing is best-effort: a missing collector never blocks startup.
	if cfg.Tracing.Enabled {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			Insecure:    cfg.Tracing.Insecure,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
		}
	}

	meterProvider, _, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck

	// Storage backend: in-memory with seeded development rates, or
	// PostgreSQL with migrations applied at startup.
	var (
		rateLookup port.RateLookup
		quoteRepo  port.QuoteRepository
		checks     = map[string]rest.ReadinessCheck{}
	)
	switch cfg.StoreBackend {
	case config.StorePostgres:
		dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
		defer dbCancel()

		pgCfg := pkgpostgres.Config{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Name,
			SSLMode:  cfg.DB.SSLMode,
		}
		pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("connected to database")

		if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://"+cfg.MigrationsDir); migErr != nil {
			logger.Warn("migration warning", "error", migErr)
		}

		rateLookup = pgRepo.NewRateTableRepo(pool)
		quoteRepo = pgRepo.NewQuoteRepo(pool)
		checks["postgres"] = func(ctx context.Context) error {
			return pkgpostgres.HealthCheck(ctx, pool)
		}
	default:
		rateTable := memory.NewRateTable()
		rateTable.SeedDefaults()
		rateLookup = rateTable
		quoteRepo = memory.NewQuoteStore()
	}

	// Event publishing: Kafka when a broker is configured, log-only otherwise.
	var publisher port.EventPublisher
	if cfg.Kafka.Enabled {
		producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
		defer producer.Close()
		publisher = messaging.NewKafkaEventPublisher(producer, logger)
	} else {
		publisher = messaging.NewNoopPublisher(logger)
	}

	// Engine services.
	resolver := service.NewRateResolver(rateLookup)
	assessor := service.NewRiskAssessor()
	calculator := service.NewPremiumCalculator()
	evaluator := service.NewEligibilityEvaluator()

	// Use cases.
	createQuoteUC := usecase.NewCreateQuote(resolver, assessor, calculator, evaluator, quoteRepo, publisher)
	estimateUC := usecase.NewEstimatePremium(resolver, assessor, calculator)
	getQuoteUC := usecase.NewGetQuote(quoteRepo)
	listQuotesUC := usecase.NewListQuotes(quoteRepo)

	// gRPC server.
	handler := grpcPresentation.NewQuoteHandler(createQuoteUC, estimateUC, getQuoteUC, listQuotesUC)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server: health probes and Prometheus metrics.
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, checks)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("quoting-service stopped")
}
