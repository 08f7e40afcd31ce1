/*
handlers_test.go - Unit tests for API handlers

Tests for:
- View computation endpoints (year/month/week/day/week-times)
- Error mapping (bad dates, invalid recurrence kinds)
- ICS import
*/
package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/api"
	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/config"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestRouter() http.Handler {
	return api.NewRouter(api.NewHandler(config.Default()))
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func overlappingEvents() []calendar.Event {
	end1 := time.Date(2021, time.June, 1, 10, 0, 0, 0, time.UTC)
	end2 := time.Date(2021, time.June, 1, 10, 30, 0, 0, time.UTC)
	return []calendar.Event{
		{ID: "1", StartsAt: time.Date(2021, time.June, 1, 9, 0, 0, 0, time.UTC), EndsAt: &end1},
		{ID: "2", StartsAt: time.Date(2021, time.June, 1, 9, 30, 0, 0, time.UTC), EndsAt: &end2},
	}
}

// =============================================================================
// VIEW ENDPOINTS
// =============================================================================

func TestWeekDayNames_ReturnsSevenLabels(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/weekdays", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.WeekDayNamesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.WeekDays, 7)
	assert.Equal(t, "Sunday", resp.WeekDays[0])
}

func TestMonthView_ReturnsWholeWeeks(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/views/month", api.ViewRequest{
		Events: overlappingEvents(),
		Date:   "2021-06-15",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var cells []calendar.ViewCell
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cells))
	assert.Zero(t, len(cells)%7, "month grid must be whole weeks")

	for _, cell := range cells {
		if cell.Date.Equal(time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)) {
			assert.Len(t, cell.Events, 2)
			assert.Equal(t, 2, cell.BadgeTotal)
			return
		}
	}
	t.Fatal("June 1 missing from the grid")
}

func TestMonthView_SerializesFalseFlagsExplicitly(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/views/month", api.ViewRequest{
		Date: "2021-06-15",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var raw []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.NotEmpty(t, raw)

	// Renderers key off these booleans; false must appear on the wire,
	// e.g. inMonth:false on the grid's out-of-month days.
	sawOutOfMonth := false
	for _, cell := range raw {
		for _, key := range []string{"inMonth", "isPast", "isFuture", "isWeekend"} {
			require.Contains(t, cell, key)
		}
		if string(cell["inMonth"]) == "false" {
			sawOutOfMonth = true
		}
	}
	assert.True(t, sawOutOfMonth, "June 2021's grid includes out-of-month days")
}

func TestDayView_PacksOverlappingEvents(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/views/day", api.DayViewRequest{
		Events:       overlappingEvents(),
		Date:         "2021-06-01",
		DayViewSplit: 30,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var laid []calendar.DayEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &laid))
	require.Len(t, laid, 2)
	assert.True(t, laid[0].Left.Equal(decimal.Zero), "first event claims bucket 0")
	assert.True(t, laid[1].Left.Equal(decimal.NewFromInt(150)), "second event claims bucket 1")
}

func TestWeekViewWithTimes_ComposesDays(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/views/week-times", api.DayViewRequest{
		Events: overlappingEvents(),
		Date:   "2021-06-02",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var view calendar.TimedWeekView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Len(t, view.Days, 7)
	require.Len(t, view.Events, 2)
	for _, ev := range view.Events {
		require.NotNil(t, ev.Width, "week mode sets widths")
	}
}

func TestDayViewHeight_DefaultConfig(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/views/day/height", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.DayViewHeightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Height.Equal(decimal.NewFromInt(1442)), "got %s", resp.Height)
}

// =============================================================================
// ERROR MAPPING
// =============================================================================

func TestYearView_BadDate_Returns400(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/views/year", api.ViewRequest{Date: "not-a-date"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Invalid date")
}

func TestMonthView_InvalidRecurrence_Returns400(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/views/month", api.ViewRequest{
		Events: []calendar.Event{{
			ID:       "bad",
			StartsAt: time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
			RecursOn: "week",
		}},
		Date: "2021-06-15",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "recurrence")
}

// =============================================================================
// IMPORT
// =============================================================================

func TestImportICS_ReturnsNormalizedEvents(t *testing.T) {
	router := newTestRouter()
	payload := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:ev-1",
		"DTSTART:20210601T090000Z",
		"DTEND:20210601T100000Z",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	req := httptest.NewRequest(http.MethodPost, "/api/import/ics", strings.NewReader(payload))
	req.Header.Set("Content-Type", "text/calendar")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "ev-1", resp.Events[0].ID)
}

func TestImportICS_Garbage_Returns400(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/import/ics", strings.NewReader("not an ics"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
