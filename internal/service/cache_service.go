package service

import (
	"github.com/blaisecz/fitbit-sleep/internal/cache"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/logging"
	"go.uber.org/zap"
)

// CacheStore is the management side of the response cache.
type CacheStore interface {
	Invalidate(date domain.Date)
	Clear()
	Peek(date domain.Date) cache.Entry
	Dates() []domain.Date
}

// CacheService exposes cache inspection and eviction.
type CacheService interface {
	Status() *domain.CacheStatusResponse
	Invalidate(date domain.Date)
	Clear()
}

type cacheService struct {
	store  CacheStore
	logger *zap.Logger
}

func NewCacheService(store CacheStore, logger *zap.Logger) CacheService {
	logger = logging.OrNop(logger)
	return &cacheService{store: store, logger: logger.Named("cache-admin")}
}

func (s *cacheService) Status() *domain.CacheStatusResponse {
	dates := s.store.Dates()
	status := &domain.CacheStatusResponse{Dates: make([]domain.CachedDate, 0, len(dates))}
	for _, d := range dates {
		entry := s.store.Peek(d)
		status.Dates = append(status.Dates, domain.CachedDate{
			Date:     d,
			Sleep:    entry.Timeline != nil,
			Activity: entry.Activity != nil,
		})
	}
	return status
}

func (s *cacheService) Invalidate(date domain.Date) {
	s.store.Invalidate(date)
	s.logger.Info("cache entry invalidated", zap.Stringer("date", date))
}

func (s *cacheService) Clear() {
	s.store.Clear()
	s.logger.Info("cache cleared")
}
