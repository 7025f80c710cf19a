package cache

import (
	"context"
	"sync"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Locked makes a ResponseCache safe for concurrent use. The mutex guards
// only the maps. Upstream fetches run outside it, one in flight per kind and
// date, and concurrent misses for that date share its result.
type Locked struct {
	mu      sync.Mutex
	cache   *ResponseCache
	flights singleflight.Group
}

func NewLocked(c *ResponseCache) *Locked {
	return &Locked{cache: c}
}

func (l *Locked) GetSleep(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error) {
	l.mu.Lock()
	t, ok := l.cache.cachedSleep(date)
	l.mu.Unlock()
	if ok {
		return t, nil
	}

	v, err := l.load(ctx, flightKey(kindSleep, date), func(ctx context.Context) (any, error) {
		l.mu.Lock()
		t, ok := l.cache.sleep[date]
		l.mu.Unlock()
		if ok {
			return t, nil
		}

		t, err := l.cache.fetchSleep(ctx, date)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache.sleep[date] = t
		l.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.SleepTimeline), nil
}

func (l *Locked) GetActivity(ctx context.Context, date domain.Date) (*domain.ActivitySummary, error) {
	l.mu.Lock()
	a, ok := l.cache.cachedActivity(date)
	l.mu.Unlock()
	if ok {
		return a, nil
	}

	v, err := l.load(ctx, flightKey(kindActivity, date), func(ctx context.Context) (any, error) {
		l.mu.Lock()
		a, ok := l.cache.activity[date]
		l.mu.Unlock()
		if ok {
			return a, nil
		}

		a, err := l.cache.fetchActivity(ctx, date)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache.activity[date] = a
		l.mu.Unlock()
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.ActivitySummary), nil
}

// load runs fetch once per key and waits for it until ctx is done. The
// fetch itself ignores the caller's cancellation; the fetcher's timeout
// bounds it.
func (l *Locked) load(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	ch := l.flights.DoChan(key, func() (any, error) {
		return fetch(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func (l *Locked) Invalidate(date domain.Date) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Invalidate(date)
}

func (l *Locked) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Clear()
}

func (l *Locked) Peek(date domain.Date) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Peek(date)
}

func (l *Locked) Dates() []domain.Date {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Dates()
}

func flightKey(kind string, date domain.Date) string {
	return kind + ":" + date.String()
}
