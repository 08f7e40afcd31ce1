/*
handlers.go - HTTP API handlers for the calendar view-model engine

PURPOSE:
  Exposes the view generators via a stateless REST API. Every endpoint
  receives the full event collection in the request body, computes the
  requested view, and returns it; nothing is stored between calls.

ENDPOINTS:
  Views:
    GET    /api/weekdays          The 7 weekday labels
    POST   /api/views/year        12 month cells
    POST   /api/views/month       The displayed month grid
    POST   /api/views/week        Week days plus day-spanning events
    POST   /api/views/day         Time-grid layout events
    POST   /api/views/week-times  Week view with per-day time grids
    GET    /api/views/day/height  Pixel height of the time grid

  Import:
    POST   /api/import/ics        ICS payload -> normalized events JSON

REQUEST FLOW:
  1. Decode the request body
  2. Parse the reference date
  3. Run the generator
  4. Serialize the view model

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, unparsable date, invalid recurrence kind
  - 500: Anything else

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/config"
	"github.com/warp/calendar-engine/ics"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Calendar *calendar.Calendar
	Cfg      *config.Config
}

// NewHandler creates a handler computing views with the given config.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		Calendar: calendar.New(cfg.CalendarConfig()),
		Cfg:      cfg,
	}
}

// =============================================================================
// VIEW ENDPOINTS
// =============================================================================

// WeekDayNames returns the 7 weekday labels.
func (h *Handler) WeekDayNames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, WeekDayNamesResponse{WeekDays: h.Calendar.WeekDayNames()})
}

// YearView computes the 12 month cells of the reference year.
func (h *Handler) YearView(w http.ResponseWriter, r *http.Request) {
	var req ViewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	date, ok := requireDate(w, req.Date)
	if !ok {
		return
	}

	cells, err := h.Calendar.YearView(req.Events, date, nil)
	if err != nil {
		writeViewError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cells)
}

// MonthView computes the displayed month grid.
func (h *Handler) MonthView(w http.ResponseWriter, r *http.Request) {
	var req ViewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	date, ok := requireDate(w, req.Date)
	if !ok {
		return
	}

	cells, err := h.Calendar.MonthView(req.Events, date, nil)
	if err != nil {
		writeViewError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cells)
}

// WeekView computes the week grid.
func (h *Handler) WeekView(w http.ResponseWriter, r *http.Request) {
	var req WeekViewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	date, ok := requireDate(w, req.Date)
	if !ok {
		return
	}

	view, err := h.Calendar.WeekView(req.Events, date, req.FilterOneDayEvents)
	if err != nil {
		writeViewError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// DayView computes the time-grid layout for one day.
func (h *Handler) DayView(w http.ResponseWriter, r *http.Request) {
	var req DayViewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	date, ok := requireDate(w, req.Date)
	if !ok {
		return
	}

	laid, err := h.Calendar.DayView(req.Events, date, h.dayViewOptions(req))
	if err != nil {
		writeViewError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, laid)
}

// WeekViewWithTimes composes the week view with per-day time grids.
func (h *Handler) WeekViewWithTimes(w http.ResponseWriter, r *http.Request) {
	var req DayViewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	date, ok := requireDate(w, req.Date)
	if !ok {
		return
	}

	view, err := h.Calendar.WeekViewWithTimes(req.Events, date, h.dayViewOptions(req))
	if err != nil {
		writeViewError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// DayViewHeight returns the pixel height of the configured time grid.
// Query parameters start, end, and split override the configuration.
func (h *Handler) DayViewHeight(w http.ResponseWriter, r *http.Request) {
	opts := h.Cfg.DayViewOptions()
	if v := r.URL.Query().Get("start"); v != "" {
		opts.Start = v
	}
	if v := r.URL.Query().Get("end"); v != "" {
		opts.End = v
	}
	if v := r.URL.Query().Get("split"); v != "" {
		if split, err := strconv.Atoi(v); err == nil && split > 0 {
			opts.Split = split
		}
	}

	height := calendar.DayViewHeight(opts.Start, opts.End, opts.Split)
	writeJSON(w, http.StatusOK, DayViewHeightResponse{Height: height})
}

// =============================================================================
// IMPORT ENDPOINTS
// =============================================================================

// ImportICS parses an iCalendar payload into normalized events.
func (h *Handler) ImportICS(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	events, err := ics.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ICS payload", err)
		return
	}
	writeJSON(w, http.StatusOK, ImportResponse{Events: events, Count: len(events)})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) dayViewOptions(req DayViewRequest) calendar.DayViewOptions {
	opts := h.Cfg.DayViewOptions()
	if req.DayViewStart != "" {
		opts.Start = req.DayViewStart
	}
	if req.DayViewEnd != "" {
		opts.End = req.DayViewEnd
	}
	if req.DayViewSplit > 0 {
		opts.Split = req.DayViewSplit
	}
	return opts
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

func requireDate(w http.ResponseWriter, raw string) (time.Time, bool) {
	date, err := parseDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use RFC3339 or YYYY-MM-DD)", err)
		return time.Time{}, false
	}
	return date, true
}

func writeViewError(w http.ResponseWriter, err error) {
	if calendar.IsClientError(err) {
		writeError(w, http.StatusBadRequest, "Invalid recurrence kind", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Failed to compute view", err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
