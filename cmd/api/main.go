// Fitbit Sleep API
//
// REST API over a user's Fitbit sleep and activity data.
//
//	@title			Fitbit Sleep API
//	@version		1.0
//	@description	Read-only reports over Fitbit sleep and activity data: night metrics, awake time in a window, activity goals and LLM commentary.
//
//	@BasePath	/v1
//
//	@tag.name			sleep
//	@tag.description	Sleep timelines and derived night metrics
//
//	@tag.name			activity
//	@tag.description	Daily activity totals and goal progress
//
//	@tag.name			days
//	@tag.description	Combined daily reports
//
//	@tag.name			insights
//	@tag.description	LLM commentary and feedback
//
//	@tag.name			cache
//	@tag.description	Response cache inspection and eviction
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/api"
	"github.com/blaisecz/fitbit-sleep/internal/api/handler"
	"github.com/blaisecz/fitbit-sleep/internal/cache"
	"github.com/blaisecz/fitbit-sleep/internal/config"
	"github.com/blaisecz/fitbit-sleep/internal/credentials"
	"github.com/blaisecz/fitbit-sleep/internal/fitbit"
	"github.com/blaisecz/fitbit-sleep/internal/langfuse"
	"github.com/blaisecz/fitbit-sleep/internal/llm"
	"github.com/blaisecz/fitbit-sleep/internal/logging"
	"github.com/blaisecz/fitbit-sleep/internal/seed"
	"github.com/blaisecz/fitbit-sleep/internal/service"
	"github.com/blaisecz/fitbit-sleep/internal/telemetry"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "fitbit-sleep-api", logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	fetcher, err := newFetcher(cfg, logger)
	if err != nil {
		logger.Fatal("no data source", zap.Error(err))
	}

	// Cache in front of the fetcher; every service reads through it
	store := cache.NewLocked(cache.New(fetcher, logger))

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      logger,
	})

	systemPrompt := langfuse.LoadPrompt(ctx, langfuse.PromptConfig{
		BaseURL:   cfg.LangfuseBaseURL,
		PublicKey: cfg.LangfusePublicKey,
		SecretKey: cfg.LangfuseSecretKey,
		Name:      cfg.LangfusePromptName,
		Label:     cfg.LangfusePromptLabel,
		Logger:    logger,
	}, llm.DefaultSystemPrompt)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISleepInsightsModel, systemPrompt)
	if openaiClient == nil {
		logger.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize services
	reportService := service.NewReportService(store)
	insightsService := service.NewInsightsService(reportService, openaiClient, langfuseClient, logger)
	cacheService := service.NewCacheService(store, logger)

	// Setup router
	router := api.NewRouter(
		handler.NewSleepHandler(reportService),
		handler.NewActivityHandler(reportService),
		handler.NewDaysHandler(reportService),
		handler.NewInsightsHandler(insightsService),
		handler.NewCacheHandler(cacheService),
		logger,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.Bool("seed", cfg.Seed))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := langfuseClient.Flush(shutdownCtx); err != nil {
		logger.Warn("langfuse flush incomplete", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Warn("tracer shutdown failed", zap.Error(err))
	}
}

// newFetcher serves synthetic data when SEED=true, otherwise the Fitbit API
// with the configured or stored access token.
func newFetcher(cfg *config.Config, logger *zap.Logger) (cache.Fetcher, error) {
	if cfg.Seed {
		logger.Info("serving synthetic data (SEED=true)")
		return seed.NewFetcher(), nil
	}

	token, err := credentials.ResolveToken(cfg.FitbitAccessToken, cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}

	client, err := fitbit.NewClient(fitbit.Config{
		BaseURL:     cfg.FitbitBaseURL,
		AccessToken: token,
		Timeout:     cfg.FitbitTimeout,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
