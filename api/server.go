/*
server.go - HTTP router and middleware configuration

PURPOSE:

	Configures the HTTP router (chi), middleware stack, and route definitions.
	This is the wiring layer that connects URLs to handlers.

ROUTER: chi

	Chi was chosen for:
	- Lightweight and fast
	- Context-based
	- Middleware support
	- RESTful route patterns

MIDDLEWARE STACK:
 1. Logger:     Request logging
 2. Recoverer:  Panic recovery (500 instead of crash)
 3. RequestID:  Unique ID per request for tracing
 4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:

	/api/schedules/*   Ad-hoc schedule generation
	/api/plans/*       Plan management and generation history
	/api/calendar/*    One-shot calendar lookups
	/api/scenarios/*   Demo scenarios

SECURITY NOTE:

	No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Schedule routes
		r.Route("/schedules", func(r chi.Router) {
			r.Post("/generate", h.GenerateSchedule)
		})

		// Plan routes
		r.Route("/plans", func(r chi.Router) {
			r.Get("/", h.ListPlans)
			r.Post("/", h.CreatePlan)
			r.Get("/{id}", h.GetPlan)
			r.Delete("/{id}", h.DeletePlan)
			r.Post("/{id}/generate", h.GeneratePlan)
			r.Get("/{id}/runs", h.ListRuns)
		})

		// Calendar query routes
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/weekday", h.GetWeekday)
			r.Get("/week-number", h.GetWeekNumber)
			r.Get("/quarter", h.GetQuarter)
			r.Get("/leap-year/{year}", h.GetLeapYear)
			r.Get("/days-in-month", h.GetDaysInMonth)
			r.Get("/weekend-days", h.GetWeekendDays)
			r.Get("/next-friday", h.GetNextFriday)
			r.Get("/friday-the-13th", h.GetNextFridayThe13th)
			r.Get("/epoch", h.GetEpochMillis)
			r.Get("/clock", h.GetClockTime)
			r.Get("/format", h.FormatInstant)
			r.Get("/days-between", h.GetDaysBetween)
		})

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/current", h.GetCurrentScenario)
			r.Post("/load", h.LoadScenario)
			r.Post("/reset", h.ResetStore)
		})
	})

	// Landing page listing the API surface.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Schedule Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Schedule Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/plans">/api/plans</a> - List plans</li>
<li><a href="/api/scenarios">/api/scenarios</a> - List scenarios</li>
<li>/api/schedules/generate - POST a period and cycle</li>
<li><a href="/api/calendar/weekday?date=01-01-2024">/api/calendar/weekday</a> - Calendar lookups</li>
</ul>
</body>
</html>`))
	})

	return r
}
