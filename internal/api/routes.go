// Package api implements the HTTP layer: routing, middleware, handlers
// and the JSON response envelope.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bgcalendar/nameday-api/internal/config"
	"github.com/bgcalendar/nameday-api/internal/nameday"
)

// SetupRoutes configures the router with all endpoints and middleware.
func SetupRoutes(svc *nameday.Service, cfg *config.Config, logger *slog.Logger) http.Handler {
	h := NewHandlers(svc, cfg, logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware())

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/names/{name}", h.GetName)
		r.Get("/dates/today", h.GetToday)
		r.Get("/dates/{date}", h.GetDate)
		r.Get("/check", h.Check)
		r.Get("/search", h.Search)
		r.Get("/holidays/{holiday}/names", h.GetHolidayNames)
		r.Get("/upcoming", h.GetUpcoming)
		r.Get("/easter/{year}", h.GetEaster)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))
			r.Get("/cache", h.GetCacheInfo)
		})
	})

	return r
}
