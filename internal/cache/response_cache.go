package cache

import (
	"context"
	"sort"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	kindSleep    = "sleep"
	kindActivity = "activity"
)

// Fetcher retrieves one date's data from the upstream source.
type Fetcher interface {
	FetchSleep(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error)
	FetchActivity(ctx context.Context, date domain.Date) (*domain.ActivitySummary, error)
}

// Entry is what the cache currently holds for a date. Nil fields are absent.
type Entry struct {
	Date     domain.Date             `json:"date"`
	Timeline *domain.SleepTimeline   `json:"sleep,omitempty"`
	Activity *domain.ActivitySummary `json:"activity,omitempty"`
}

// ResponseCache is a pull-through cache of fetch results keyed by date.
// Sleep and activity are cached independently. Once stored, an entry is
// returned unchanged until Invalidate or Clear removes it. Failed fetches
// are never stored.
//
// ResponseCache is not safe for concurrent use; see Locked.
type ResponseCache struct {
	fetcher  Fetcher
	sleep    map[domain.Date]*domain.SleepTimeline
	activity map[domain.Date]*domain.ActivitySummary
	logger   *zap.Logger
	tracer   trace.Tracer
}

// New creates an empty cache over fetcher. A nil logger disables logging.
func New(fetcher Fetcher, logger *zap.Logger) *ResponseCache {
	logger = logging.OrNop(logger)
	return &ResponseCache{
		fetcher:  fetcher,
		sleep:    make(map[domain.Date]*domain.SleepTimeline),
		activity: make(map[domain.Date]*domain.ActivitySummary),
		logger:   logger.Named("cache"),
		tracer:   otel.Tracer("fitbit-sleep/cache"),
	}
}

// GetSleep returns the cached timeline for date, fetching it on a miss.
func (c *ResponseCache) GetSleep(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error) {
	if t, ok := c.cachedSleep(date); ok {
		return t, nil
	}
	t, err := c.fetchSleep(ctx, date)
	if err != nil {
		return nil, err
	}
	c.sleep[date] = t
	return t, nil
}

// GetActivity returns the cached activity summary for date, fetching it on a miss.
func (c *ResponseCache) GetActivity(ctx context.Context, date domain.Date) (*domain.ActivitySummary, error) {
	if a, ok := c.cachedActivity(date); ok {
		return a, nil
	}
	a, err := c.fetchActivity(ctx, date)
	if err != nil {
		return nil, err
	}
	c.activity[date] = a
	return a, nil
}

func (c *ResponseCache) cachedSleep(date domain.Date) (*domain.SleepTimeline, bool) {
	t, ok := c.sleep[date]
	if ok {
		c.logger.Debug("cache hit", zap.String("kind", kindSleep), zap.Stringer("date", date))
	}
	return t, ok
}

func (c *ResponseCache) cachedActivity(date domain.Date) (*domain.ActivitySummary, bool) {
	a, ok := c.activity[date]
	if ok {
		c.logger.Debug("cache hit", zap.String("kind", kindActivity), zap.Stringer("date", date))
	}
	return a, ok
}

// fetchSleep calls the fetcher without touching the maps.
func (c *ResponseCache) fetchSleep(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error) {
	ctx, span := c.startMiss(ctx, kindSleep, date)
	defer span.End()

	t, err := c.fetcher.FetchSleep(ctx, date)
	if err != nil {
		c.fetchFailed(span, kindSleep, date, err)
		return nil, err
	}
	if t == nil {
		t = &domain.SleepTimeline{}
	}
	return t, nil
}

// fetchActivity calls the fetcher without touching the maps.
func (c *ResponseCache) fetchActivity(ctx context.Context, date domain.Date) (*domain.ActivitySummary, error) {
	ctx, span := c.startMiss(ctx, kindActivity, date)
	defer span.End()

	a, err := c.fetcher.FetchActivity(ctx, date)
	if err != nil {
		c.fetchFailed(span, kindActivity, date, err)
		return nil, err
	}
	if a == nil {
		a = &domain.ActivitySummary{}
	}
	return a, nil
}

// Invalidate drops both the sleep and the activity entry for date.
func (c *ResponseCache) Invalidate(date domain.Date) {
	delete(c.sleep, date)
	delete(c.activity, date)
	c.logger.Debug("cache invalidated", zap.Stringer("date", date))
}

func (c *ResponseCache) Clear() {
	c.sleep = make(map[domain.Date]*domain.SleepTimeline)
	c.activity = make(map[domain.Date]*domain.ActivitySummary)
	c.logger.Debug("cache cleared")
}

// Peek reports what is cached for date without fetching.
func (c *ResponseCache) Peek(date domain.Date) Entry {
	return Entry{Date: date, Timeline: c.sleep[date], Activity: c.activity[date]}
}

// Dates returns every date with at least one cached entry, ascending.
func (c *ResponseCache) Dates() []domain.Date {
	seen := make(map[domain.Date]struct{}, len(c.sleep)+len(c.activity))
	for d := range c.sleep {
		seen[d] = struct{}{}
	}
	for d := range c.activity {
		seen[d] = struct{}{}
	}

	dates := make([]domain.Date, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func (c *ResponseCache) startMiss(ctx context.Context, kind string, date domain.Date) (context.Context, trace.Span) {
	c.logger.Debug("cache miss", zap.String("kind", kind), zap.Stringer("date", date))
	return c.tracer.Start(ctx, "cache.fetch_"+kind,
		trace.WithAttributes(
			attribute.String("cache.kind", kind),
			attribute.String("cache.date", date.String()),
		),
	)
}

func (c *ResponseCache) fetchFailed(span trace.Span, kind string, date domain.Date, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	c.logger.Warn("fetch failed",
		zap.String("kind", kind),
		zap.Stringer("date", date),
		zap.Error(err),
	)
}
