package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/fitbit-sleep/docs"
	"github.com/blaisecz/fitbit-sleep/internal/api/handler"
	"github.com/blaisecz/fitbit-sleep/internal/api/middleware"
	"github.com/blaisecz/fitbit-sleep/internal/logging"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	sleepHandler    *handler.SleepHandler
	activityHandler *handler.ActivityHandler
	daysHandler     *handler.DaysHandler
	insightsHandler *handler.InsightsHandler
	cacheHandler    *handler.CacheHandler
	logger          *zap.Logger
}

func NewRouter(
	sleepHandler *handler.SleepHandler,
	activityHandler *handler.ActivityHandler,
	daysHandler *handler.DaysHandler,
	insightsHandler *handler.InsightsHandler,
	cacheHandler *handler.CacheHandler,
	logger *zap.Logger,
) *Router {
	logger = logging.OrNop(logger)
	return &Router{
		sleepHandler:    sleepHandler,
		activityHandler: activityHandler,
		daysHandler:     daysHandler,
		insightsHandler: insightsHandler,
		cacheHandler:    cacheHandler,
		logger:          logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger.Named("http")))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/sleep/{date}", func(r chi.Router) {
			r.Get("/", rt.sleepHandler.GetTimeline)
			r.Get("/report", rt.sleepHandler.GetReport)
			r.Get("/awake", rt.sleepHandler.GetAwake)
		})

		r.Get("/activity/{date}", rt.activityHandler.Get)

		r.Route("/days", func(r chi.Router) {
			r.Get("/", rt.daysHandler.List)
			r.Get("/{date}", rt.daysHandler.Get)
			r.Get("/{date}/insights", rt.insightsHandler.GetInsights)
		})

		r.Post("/insights/feedback", rt.insightsHandler.PostFeedback)

		r.Route("/cache", func(r chi.Router) {
			r.Get("/", rt.cacheHandler.Status)
			r.Delete("/", rt.cacheHandler.Clear)
			r.Delete("/{date}", rt.cacheHandler.Invalidate)
		})
	})

	return r
}
