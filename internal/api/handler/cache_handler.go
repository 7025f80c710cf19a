package handler

import (
	"net/http"

	"github.com/blaisecz/fitbit-sleep/internal/service"
)

type CacheHandler struct {
	cache service.CacheService
}

func NewCacheHandler(cache service.CacheService) *CacheHandler {
	return &CacheHandler{cache: cache}
}

// Status handles GET /v1/cache
// @Summary List cached dates
// @Description Dates held by the response cache and which kinds are cached for each.
// @Tags cache
// @Produce json
// @Success 200 {object} domain.CacheStatusResponse "Cached dates"
// @Router /cache [get]
func (h *CacheHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.cache.Status())
}

// Clear handles DELETE /v1/cache
// @Summary Clear the cache
// @Description Drop every cached response; the next read of any date fetches again.
// @Tags cache
// @Success 204 "Cache cleared"
// @Router /cache [delete]
func (h *CacheHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cache.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// Invalidate handles DELETE /v1/cache/{date}
// @Summary Invalidate one date
// @Description Drop the cached sleep and activity responses of one date. Useful after a late sync.
// @Tags cache
// @Param date path string true "Calendar date (YYYY-MM-DD)" example(2024-01-16)
// @Success 204 "Entry invalidated"
// @Failure 400 {object} problem.Problem "Invalid date"
// @Router /cache/{date} [delete]
func (h *CacheHandler) Invalidate(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	h.cache.Invalidate(date)
	w.WriteHeader(http.StatusNoContent)
}
