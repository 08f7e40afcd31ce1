/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. The view models
  themselves (cells, week days, layout events) already carry JSON tags
  in the calendar package, so responses reuse them directly; this file
  holds the request envelopes and the thin response wrappers.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *Response: Response wrappers

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - calendar/event.go: The view-model types serialized in responses
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ViewRequest is the common request body for the year and month views.
type ViewRequest struct {
	Events []calendar.Event `json:"events"`
	Date   string           `json:"date"`
}

// WeekViewRequest is the request body for the week view.
type WeekViewRequest struct {
	Events             []calendar.Event `json:"events"`
	Date               string           `json:"date"`
	FilterOneDayEvents bool             `json:"filterOneDayEvents"`
}

// DayViewRequest is the request body for the day and week-with-times
// views. Empty option fields fall back to the server configuration.
type DayViewRequest struct {
	Events       []calendar.Event `json:"events"`
	Date         string           `json:"date"`
	DayViewStart string           `json:"dayViewStart,omitempty"`
	DayViewEnd   string           `json:"dayViewEnd,omitempty"`
	DayViewSplit int              `json:"dayViewSplit,omitempty"`
}

// WeekDayNamesResponse wraps the 7 weekday labels.
type WeekDayNamesResponse struct {
	WeekDays []string `json:"weekDays"`
}

// DayViewHeightResponse wraps the computed grid height.
type DayViewHeightResponse struct {
	Height decimal.Decimal `json:"height"`
}

// ImportResponse wraps events parsed from an ICS payload.
type ImportResponse struct {
	Events []calendar.Event `json:"events"`
	Count  int              `json:"count"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// DATE PARSING
// =============================================================================

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// parseDate accepts an RFC3339 instant or a bare date.
func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
