/*
layout.go - Day/time-grid layout engine

PURPOSE:
  Converts one day's events into pixel-positioned, column-packed layout
  entries. Used standalone for the single-day view and once per day
  inside the week-with-times view.

ALGORITHM:
  1. Derive the visible hour range and the pixel scale from the split
     granularity: hourHeight = (60 / split) * 30.
  2. Filter events to the day, sort by start (ties: longer event first).
  3. Compute each event's vertical placement, clipping to the visible
     range; events entirely outside it end up with zero height and are
     dropped.
  4. Pack events into visual columns greedily, first-fit in sorted
     order: an event joins the first bucket where it overlaps nothing,
     else it opens a new one. First-fit over the sorted order keeps the
     packing deterministic for a fixed input, which matters more for
     re-render stability than a minimal column count would.
  5. In week mode, events that cross any other event that day share the
     base bucket width across the bucket count.

SEE ALSO:
  - period.go: the overlap test reuses the period matcher
  - grid.go: WeekView supplies the day partition for WeekViewWithTimes
*/
package calendar

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDayViewSplit is the slot granularity, in minutes, used when no
// split is configured.
const DefaultDayViewSplit = 30

var (
	dayBucketWidth  = decimal.NewFromInt(150)
	weekBucketWidth = decimal.NewFromInt(100).Div(decimal.NewFromInt(7))
	minEventHeight  = decimal.NewFromInt(30)
	topNudge        = decimal.NewFromInt(2)
	sixty           = decimal.NewFromInt(60)
)

// DayViewOptions bounds the visible hour range of the time grid.
type DayViewOptions struct {
	// Start and End are "HH:MM" clock strings bounding the visible
	// range; only the hour component is used. Parsed leniently,
	// defaulting to "00:00" and "23:00".
	Start string
	End   string

	// Split is the slot granularity in minutes.
	Split int

	// WeekMode switches to the per-day pass of the week-with-times
	// view: buckets get a narrower, percentage-based width shared by
	// crossing events instead of a fixed pixel width.
	WeekMode bool
}

func (o DayViewOptions) split() int {
	if o.Split <= 0 {
		return DefaultDayViewSplit
	}
	return o.Split
}

func hourHeight(split int) decimal.Decimal {
	return sixty.Div(decimal.NewFromInt(int64(split))).Mul(decimal.NewFromInt(30))
}

// parseClock parses a lenient "HH:MM" string, falling back on error.
func parseClock(s, fallback string) time.Time {
	if s == "" {
		s = fallback
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, _ = time.Parse("15:04", fallback)
	}
	return t
}

// =============================================================================
// DAY VIEW
// =============================================================================

// DayView lays out the reference date's events on the time grid.
// Entries entirely outside the visible hour range are excluded.
func (c *Calendar) DayView(events []Event, date time.Time, opts DayViewOptions) ([]DayEvent, error) {
	baseWidth := dayBucketWidth
	if opts.WeekMode {
		baseWidth = weekBucketWidth
	}
	startHour := parseClock(opts.Start, "00:00").Hour()
	endHour := parseClock(opts.End, "23:00").Hour()

	hh := hourHeight(opts.split())
	perMinute := hh.Div(sixty)
	dayStart := startOfDay(date)
	calendarStart := dayStart.Add(time.Duration(startHour) * time.Hour)
	calendarEnd := dayStart.Add(time.Duration(endHour) * time.Hour)
	calendarHeight := decimal.NewFromInt(int64(endHour - startHour + 1)).Mul(hh)

	inDay, err := FilterEventsInPeriod(events, dayStart, endOfDay(date))
	if err != nil {
		return nil, err
	}
	sorted := SortEvents(inDay)

	// Vertical placement, then drop anything with no visible height.
	placed := make([]DayEvent, 0, len(sorted))
	for _, ev := range sorted {
		var top decimal.Decimal
		if ev.StartsAt.Before(calendarStart) {
			top = decimal.Zero
		} else {
			mins := minutesBetween(startOfMinute(calendarStart), startOfMinute(ev.StartsAt))
			top = decimal.NewFromInt(mins).Mul(perMinute).Sub(topNudge)
		}

		var height decimal.Decimal
		switch {
		case ev.effectiveEnd().After(calendarEnd):
			height = calendarHeight.Sub(top)
		case ev.EndsAt == nil:
			height = minEventHeight
		default:
			from := ev.StartsAt
			if from.Before(calendarStart) {
				from = calendarStart
			}
			height = decimal.NewFromInt(minutesBetween(from, *ev.EndsAt)).Mul(perMinute)
		}

		if top.Sub(height).GreaterThan(calendarHeight) {
			height = decimal.Zero
		}
		if height.GreaterThan(decimal.Zero) {
			placed = append(placed, DayEvent{Event: ev, Top: top, Height: height})
		}
	}

	// Greedy first-fit column packing. The overlap test reuses the
	// period matcher, checked symmetrically in both directions.
	var buckets [][]Event
	bucketOf := make([]int, len(placed))
	for i := range placed {
		ev := placed[i].Event
		idx := -1
		for b, bucket := range buckets {
			fits := true
			for _, other := range bucket {
				overlap, err := eventsOverlap(ev, other)
				if err != nil {
					return nil, err
				}
				if overlap {
					fits = false
					break
				}
			}
			if fits {
				idx = b
				break
			}
		}
		if idx < 0 {
			idx = len(buckets)
			buckets = append(buckets, nil)
		}
		buckets[idx] = append(buckets[idx], ev)
		bucketOf[i] = idx
		placed[i].Left = decimal.NewFromInt(int64(idx)).Mul(baseWidth)
	}

	if opts.WeekMode && len(buckets) > 0 {
		total := decimal.NewFromInt(int64(len(buckets)))
		for i := range placed {
			width := baseWidth
			if CrossingsCount(placed[i].Event, inDay) > 0 {
				width = baseWidth.Div(total)
			}
			placed[i].Width = &width
			placed[i].Left = decimal.NewFromInt(int64(bucketOf[i])).Mul(baseWidth).Div(total)
		}
	}

	return placed, nil
}

// eventsOverlap applies the period matcher in both directions: a joins
// b's bucket only if neither falls within the other's interval.
func eventsOverlap(a, b Event) (bool, error) {
	if ok, err := EventInPeriod(a, b.StartsAt, b.effectiveEnd()); ok || err != nil {
		return ok, err
	}
	return EventInPeriod(b, a.StartsAt, a.effectiveEnd())
}

// =============================================================================
// WEEK-WITH-TIMES COMPOSER
// =============================================================================

// WeekViewWithTimes composes the week view with per-day time grids: the
// week's events are partitioned by day (events starting and ending on
// that day) and each day is laid out by DayView in week mode.
func (c *Calendar) WeekViewWithTimes(events []Event, date time.Time, opts DayViewOptions) (TimedWeekView, error) {
	week, err := c.WeekView(events, date, false)
	if err != nil {
		return TimedWeekView{}, err
	}

	opts.WeekMode = true
	all := make([]DayEvent, 0, len(week.Events))
	for _, day := range week.Days {
		dayEvents := make([]Event, 0, len(week.Events))
		for _, we := range week.Events {
			if sameDay(we.StartsAt, day.Date) && sameDay(we.effectiveEnd(), day.Date) {
				dayEvents = append(dayEvents, we.Event)
			}
		}
		laid, err := c.DayView(dayEvents, day.Date, opts)
		if err != nil {
			return TimedWeekView{}, err
		}
		all = append(all, laid...)
	}

	return TimedWeekView{Days: week.Days, Events: all}, nil
}

// =============================================================================
// GRID HEIGHT
// =============================================================================

// DayViewHeight returns the total pixel height of the time grid for the
// given visible range and split granularity.
func DayViewHeight(start, end string, split int) decimal.Decimal {
	if split <= 0 {
		split = DefaultDayViewSplit
	}
	from := parseClock(start, "00:00")
	to := parseClock(end, "23:00")
	hours := int64(to.Sub(from).Hours())
	return decimal.NewFromInt(hours+1).Mul(hourHeight(split)).Add(topNudge)
}

// =============================================================================
// COMPARATOR & CROSSINGS
// =============================================================================

// CompareEvents orders events by ascending start; for equal starts the
// event ending later sorts first.
func CompareEvents(a, b Event) int {
	if a.StartsAt.Before(b.StartsAt) {
		return -1
	}
	if a.StartsAt.Equal(b.StartsAt) {
		aEnd, bEnd := a.effectiveEnd(), b.effectiveEnd()
		switch {
		case aEnd.Equal(bEnd):
			return 0
		case aEnd.After(bEnd):
			return -1
		}
		return 1
	}
	return 1
}

// SortEvents returns a stably sorted copy; the input is left untouched.
func SortEvents(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareEvents(sorted[i], sorted[j]) < 0
	})
	return sorted
}

// CrossingsCount counts the events in dayEvents whose time interval
// mutually overlaps ev's, excluding ev itself by identity. The day view
// uses it to decide which events must share their bucket width.
func CrossingsCount(ev Event, dayEvents []Event) int {
	start := ev.StartsAt
	end := ev.effectiveEnd()

	count := 0
	for _, other := range dayEvents {
		if other.ID == ev.ID {
			continue
		}
		otherStart := other.StartsAt
		otherEnd := other.effectiveEnd()
		if strictlyBetween(otherStart, start, end) ||
			otherStart.Equal(start) ||
			strictlyBetween(otherEnd, start, end) ||
			otherEnd.Equal(end) ||
			(otherStart.Before(start) && otherEnd.After(end)) {
			count++
		}
	}
	return count
}

func strictlyBetween(t, lo, hi time.Time) bool {
	return t.After(lo) && t.Before(hi)
}
