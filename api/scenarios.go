/*
scenarios.go - Demo event sets for testing and demonstrations

PURPOSE:

	Provides pre-built event collections that demonstrate specific view
	features without a client having to craft payloads by hand. Each
	scenario is a plain in-memory event set; nothing is stored.

AVAILABLE SCENARIOS:

	workweek:    Overlapping meetings on one day (bucket packing)
	conference:  A multi-day event spanning the week grid
	recurring:   Yearly and monthly re-anchored events

USAGE VIA API:

	GET /api/scenarios
	GET /api/scenarios/{id}/events

	The returned events slot straight into the view endpoints' request
	bodies.

SEE ALSO:
  - handlers.go: writeJSON/writeError helpers
  - server.go: Route wiring
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

// ScenarioDTO describes one demo event set.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var scenarios = []ScenarioDTO{
	{
		ID:          "workweek",
		Name:        "Work Week",
		Description: "Overlapping meetings exercising time-grid bucket packing",
	},
	{
		ID:          "conference",
		Name:        "Conference",
		Description: "A multi-day event spanning week grid columns",
	},
	{
		ID:          "recurring",
		Name:        "Recurring",
		Description: "Yearly and monthly events re-anchored onto the viewed period",
	},
}

func scenarioEvents(id string, ref time.Time) []calendar.Event {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	at := func(d, h, m int) time.Time {
		return day.AddDate(0, 0, d).Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}
	span := func(id string, start, end time.Time) calendar.Event {
		return calendar.Event{ID: id, StartsAt: start, EndsAt: &end}
	}

	switch id {
	case "workweek":
		return []calendar.Event{
			span("standup", at(0, 9, 0), at(0, 9, 15)),
			span("planning", at(0, 9, 0), at(0, 11, 0)),
			span("1on1", at(0, 10, 30), at(0, 11, 0)),
			span("review", at(0, 14, 0), at(0, 15, 30)),
			span("retro", at(0, 15, 0), at(0, 16, 0)),
		}
	case "conference":
		return []calendar.Event{
			span("conference", at(1, 8, 0), at(3, 18, 0)),
			span("travel-out", at(0, 16, 0), at(1, 7, 0)),
			span("travel-back", at(3, 19, 0), at(4, 1, 0)),
		}
	case "recurring":
		return []calendar.Event{
			{ID: "anniversary", StartsAt: time.Date(2015, time.January, 10, 0, 0, 0, 0, time.UTC), RecursOn: calendar.RecursYear},
			{ID: "payday", StartsAt: time.Date(2020, time.March, 25, 0, 0, 0, 0, time.UTC), RecursOn: calendar.RecursMonth},
			span("kickoff", at(0, 10, 0), at(0, 11, 0)),
		}
	default:
		return nil
	}
}

// =============================================================================
// SCENARIO ENDPOINTS
// =============================================================================

// ListScenarios returns the available demo event sets.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// ScenarioEvents returns a scenario's events, anchored on an optional
// ?date= reference (default: today).
func (h *Handler) ScenarioEvents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ref := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date (use RFC3339 or YYYY-MM-DD)", err)
			return
		}
		ref = parsed
	}

	events := scenarioEvents(id, ref)
	if events == nil {
		writeError(w, http.StatusNotFound, "Unknown scenario", nil)
		return
	}
	writeJSON(w, http.StatusOK, ImportResponse{Events: events, Count: len(events)})
}
