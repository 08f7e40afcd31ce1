/*
scenarios_test.go - Unit tests for demo scenarios

Tests that the demo event sets list correctly and feed the view
endpoints without modification.
*/
package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/api"
	"github.com/warp/calendar-engine/calendar"
)

func TestListScenarios(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/scenarios/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var list []api.ScenarioDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 3)
}

func TestScenarioEvents_FeedTheDayView(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/scenarios/workweek/events?date=2021-06-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 5, resp.Count)

	view := postJSON(t, router, "/api/views/day", api.DayViewRequest{
		Events: resp.Events,
		Date:   "2021-06-01",
	})
	require.Equal(t, http.StatusOK, view.Code)
	var laid []calendar.DayEvent
	require.NoError(t, json.Unmarshal(view.Body.Bytes(), &laid))
	assert.Len(t, laid, 5)
}

func TestScenarioEvents_UnknownID_Returns404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/scenarios/nope/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
