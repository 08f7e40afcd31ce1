/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. AccessLog:  Structured request logging (zerolog)
  4. CORS:       Cross-origin requests for frontends

ROUTE GROUPS:
  /api/weekdays       Weekday labels
  /api/views/*        View computation
  /api/import/*       Event import
  /health             Liveness

SEE ALSO:
  - handlers.go: Handler implementations
  - middleware.go: Access log middleware
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(AccessLog())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.Cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/weekdays", h.WeekDayNames)

		r.Route("/views", func(r chi.Router) {
			r.Post("/year", h.YearView)
			r.Post("/month", h.MonthView)
			r.Post("/week", h.WeekView)
			r.Post("/day", h.DayView)
			r.Post("/week-times", h.WeekViewWithTimes)
			r.Get("/day/height", h.DayViewHeight)
		})

		r.Route("/import", func(r chi.Router) {
			r.Post("/ics", h.ImportICS)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/{id}/events", h.ScenarioEvents)
		})
	})

	r.Get("/health", h.Health)

	return r
}
