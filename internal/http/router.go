package http

import (
	"net/http"
	"time"

	"qrmenu-analytics/internal/analytics"
	"qrmenu-analytics/internal/ingestors"
	"qrmenu-analytics/internal/shared/loggers"
	"qrmenu-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, analyticsService analytics.AnalyticsService, loc *time.Location, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestEventsHandler := NewIngestEventsHandler(ingestionService)
	analyticsHandler := newAnalyticsHandler(analyticsService, loc)

	// Routes
	router.Post("/events", errorHandlingAdapter(ingestEventsHandler))
	router.Route("/analytics", func(r chi.Router) {
		r.Get("/summary", errorHandlingAdapter(appHandlerFunc(analyticsHandler.Summary)))
		r.Get("/timeseries", errorHandlingAdapter(appHandlerFunc(analyticsHandler.TimeSeries)))
		r.Get("/leaderboard", errorHandlingAdapter(appHandlerFunc(analyticsHandler.Leaderboard)))
		r.Get("/devices", errorHandlingAdapter(appHandlerFunc(analyticsHandler.DeviceBreakdown)))
		r.Get("/hourly", errorHandlingAdapter(appHandlerFunc(analyticsHandler.HourlyActivity)))
		r.Get("/top-products", errorHandlingAdapter(appHandlerFunc(analyticsHandler.TopProducts)))
		r.Get("/export", errorHandlingAdapter(appHandlerFunc(analyticsHandler.Export)))
	})
	router.Get("/memberships/export", errorHandlingAdapter(appHandlerFunc(analyticsHandler.ExportMemberships)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
