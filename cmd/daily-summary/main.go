// Command daily-summary prints one day's sleep and activity.
//
//	daily-summary [-seed] [YYYY-MM-DD]
//
// The date defaults to today. The access token comes from FITBIT_ACCESS_TOKEN
// or the file written by store-token.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/cache"
	"github.com/blaisecz/fitbit-sleep/internal/config"
	"github.com/blaisecz/fitbit-sleep/internal/credentials"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/fitbit"
	"github.com/blaisecz/fitbit-sleep/internal/logging"
	"github.com/blaisecz/fitbit-sleep/internal/seed"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	useSeed := flag.Bool("seed", cfg.Seed, "print synthetic data instead of calling the Fitbit API")
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	date := domain.DateOf(time.Now())
	if arg := flag.Arg(0); arg != "" {
		if date, err = domain.ParseDate(arg); err != nil {
			logger.Fatal("invalid date argument", zap.Error(err))
		}
	}

	fetcher, err := newFetcher(cfg, *useSeed, logger)
	if err != nil {
		logger.Error("failed to get access token", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Store one with: store-token YOUR_ACCESS_TOKEN")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Fetching Fitbit data for date: %s\n", date)

	// Both fetches run to completion; a failed section is reported as unavailable.
	var (
		g        errgroup.Group
		timeline *domain.SleepTimeline
		activity *domain.ActivitySummary
	)
	g.Go(func() error {
		t, err := fetcher.FetchSleep(ctx, date)
		if err != nil {
			return fmt.Errorf("fetch sleep: %w", err)
		}
		timeline = t
		return nil
	})
	g.Go(func() error {
		a, err := fetcher.FetchActivity(ctx, date)
		if err != nil {
			return fmt.Errorf("fetch activity: %w", err)
		}
		activity = a
		return nil
	})
	fetchErr := g.Wait()

	printSummary(os.Stdout, date, timeline, activity)

	if fetchErr != nil {
		logger.Error("fetch failed", zap.Error(fetchErr), zap.Bool("unauthorized", fitbit.IsUnauthorized(fetchErr)))
		os.Exit(1)
	}
}

func newFetcher(cfg *config.Config, useSeed bool, logger *zap.Logger) (cache.Fetcher, error) {
	if useSeed {
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
