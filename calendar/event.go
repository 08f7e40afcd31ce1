/*
Package calendar computes presentation-ready view models for a calendar
widget: year, month, week, and day-with-time-grid views.

PURPOSE:
  Given a collection of timed events and a reference date, the package
  produces the cell/day/bucket layout data a renderer needs. The three
  hard parts it owns are:
  - deciding which events fall in an arbitrary period, including the
    re-anchoring of yearly/monthly recurring events
  - computing each view's grid geometry (cell spans, pixel offsets,
    day spans for multi-day events)
  - packing temporally overlapping events into non-overlapping visual
    columns for the time-grid day view

KEY CONCEPTS IN THIS FILE (event.go):
  - Event: an immutable caller-supplied input
  - WeekEvent/DayEvent: view events that wrap an Event with derived,
    view-specific layout fields; caller data is never mutated
  - ViewCell/WeekDay: per-cell descriptors for the year/month/week grids

DESIGN PRINCIPLES:
  1. Purity: every generator recomputes its view from its inputs; no
     cache or shared state survives a call
  2. Precision: layout geometry uses decimal.Decimal so repeated runs
     are exactly equal
  3. Permissiveness: a missing end falls back to the start everywhere;
     the only hard failure is an invalid recurrence kind

SEE ALSO:
  - period.go: period matching, filtering, badge totals
  - grid.go: year/month/week generators
  - layout.go: the time-grid layout engine
*/
package calendar

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RECURRENCE
// =============================================================================

// Recurrence re-anchors an event's displayed date onto the evaluated
// period's year or month. Any other non-empty value is rejected.
type Recurrence string

const (
	RecursNever Recurrence = ""
	RecursYear  Recurrence = "year"
	RecursMonth Recurrence = "month"
)

// =============================================================================
// EVENT - Caller-supplied input
// =============================================================================

// Event is a single timed calendar entry. EndsAt and IncrementsBadgeTotal
// are optional; a nil EndsAt means the event ends when it starts, and a
// nil IncrementsBadgeTotal counts toward badge totals.
type Event struct {
	ID                   string     `json:"id"`
	StartsAt             time.Time  `json:"startsAt"`
	EndsAt               *time.Time `json:"endsAt,omitempty"`
	RecursOn             Recurrence `json:"recursOn,omitempty"`
	IncrementsBadgeTotal *bool      `json:"incrementsBadgeTotal,omitempty"`
}

// effectiveEnd returns EndsAt, falling back to StartsAt when absent.
func (ev Event) effectiveEnd() time.Time {
	if ev.EndsAt == nil {
		return ev.StartsAt
	}
	return *ev.EndsAt
}

// =============================================================================
// VIEW CELLS - Year and month grids
// =============================================================================

// ViewCell is one cell of the year view (a month) or the month view (a
// day). The month-only flags are zero-valued on year cells.
type ViewCell struct {
	Label      string    `json:"label"`
	Date       time.Time `json:"date"`
	IsToday    bool      `json:"isToday"`
	Events     []Event   `json:"events"`
	BadgeTotal int       `json:"badgeTotal"`

	// Month view only; always serialized so renderers see explicit
	// false values on year cells and out-of-month days.
	InMonth   bool `json:"inMonth"`
	IsPast    bool `json:"isPast"`
	IsFuture  bool `json:"isFuture"`
	IsWeekend bool `json:"isWeekend"`
}

// CellModifier is the per-cell builder hook for the year and month
// generators. It receives each freshly built cell before insertion and
// may mutate it in place.
type CellModifier func(cell *ViewCell)

// =============================================================================
// WEEK VIEW
// =============================================================================

// WeekDay describes one column header of the week grid.
type WeekDay struct {
	WeekDayLabel string    `json:"weekDayLabel"`
	DayLabel     string    `json:"dayLabel"`
	Date         time.Time `json:"date"`
	IsPast       bool      `json:"isPast"`
	IsToday      bool      `json:"isToday"`
	IsFuture     bool      `json:"isFuture"`
	IsWeekend    bool      `json:"isWeekend"`
}

// WeekEvent is an event placed on the week's day grid. DaySpan is the
// number of day columns spanned (1..7) and DayOffset the starting
// column (0..7-DaySpan), both clipped to the displayed week.
type WeekEvent struct {
	Event
	DaySpan   int `json:"daySpan"`
	DayOffset int `json:"dayOffset"`
}

// WeekView is the composed week grid.
type WeekView struct {
	Days   []WeekDay   `json:"days"`
	Events []WeekEvent `json:"events"`
}

// =============================================================================
// DAY VIEW
// =============================================================================

// DayEvent is an event positioned on the time-grid day view. Top and
// Height are pixel offsets within the visible hour range; Left is the
// horizontal offset of the event's packing bucket. Width is set only in
// week-with-times mode, where buckets share a percentage-based width.
type DayEvent struct {
	Event
	Top    decimal.Decimal  `json:"top"`
	Height decimal.Decimal  `json:"height"`
	Left   decimal.Decimal  `json:"left"`
	Width  *decimal.Decimal `json:"width,omitempty"`
}

// TimedWeekView is the week-with-times composition: week day headers
// plus per-day time-grid layout events, concatenated across the week.
type TimedWeekView struct {
	Days   []WeekDay  `json:"days"`
	Events []DayEvent `json:"events"`
}
