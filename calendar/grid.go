package calendar

import (
	"strconv"
	"time"
)

// =============================================================================
// YEAR VIEW - 12 month cells
// =============================================================================

// YearView builds the 12 month cells of the reference date's year. The
// modifier, when non-nil, receives each cell before it is appended and
// may mutate it in place.
func (c *Calendar) YearView(events []Event, date time.Time, mod CellModifier) ([]ViewCell, error) {
	yearEvents, err := FilterEventsInPeriod(events, startOfYear(date), endOfYear(date))
	if err != nil {
		return nil, err
	}

	thisMonth := startOfMonth(c.cfg.Now())
	cells := make([]ViewCell, 0, 12)
	month := startOfYear(date)
	for i := 0; i < 12; i++ {
		monthEvents, err := FilterEventsInPeriod(yearEvents, month, endOfMonth(month))
		if err != nil {
			return nil, err
		}
		cell := ViewCell{
			Label:      c.FormatDate(month, c.cfg.DateFormats.Month),
			Date:       month,
			IsToday:    month.Equal(thisMonth),
			Events:     monthEvents,
			BadgeTotal: BadgeTotal(monthEvents),
		}
		if mod != nil {
			mod(&cell)
		}
		cells = append(cells, cell)
		month = month.AddDate(0, 1, 0)
	}
	return cells, nil
}

// =============================================================================
// MONTH VIEW - Full displayed grid, whole weeks
// =============================================================================

// MonthView builds the displayed month grid: from the start of the week
// containing the first of the month through the end of the week
// containing the last. The cell count is always a multiple of 7.
//
// Events are pre-filtered once: over the whole grid range when
// DisplayAllMonthEvents is set, otherwise over the calendar month only,
// in which case out-of-month grid cells show no events.
func (c *Calendar) MonthView(events []Event, date time.Time, mod CellModifier) ([]ViewCell, error) {
	monthStart := startOfMonth(date)
	gridStart := startOfWeek(monthStart, c.cfg.WeekStart)
	gridEnd := endOfWeek(endOfMonth(date), c.cfg.WeekStart)

	var inPeriod []Event
	var err error
	if c.cfg.DisplayAllMonthEvents {
		inPeriod, err = FilterEventsInPeriod(events, gridStart, gridEnd)
	} else {
		inPeriod, err = FilterEventsInPeriod(events, monthStart, endOfMonth(date))
	}
	if err != nil {
		return nil, err
	}

	today := startOfDay(c.cfg.Now())
	var cells []ViewCell
	for day := gridStart; day.Before(gridEnd); day = day.AddDate(0, 0, 1) {
		inMonth := day.Month() == date.Month()
		dayEvents := []Event{}
		if inMonth || c.cfg.DisplayAllMonthEvents {
			dayEvents, err = FilterEventsInPeriod(inPeriod, day, endOfDay(day))
			if err != nil {
				return nil, err
			}
		}
		cell := ViewCell{
			Label:      strconv.Itoa(day.Day()),
			Date:       day,
			IsToday:    today.Equal(day),
			Events:     dayEvents,
			BadgeTotal: BadgeTotal(dayEvents),
			InMonth:    inMonth,
			IsPast:     today.After(day),
			IsFuture:   today.Before(day),
			IsWeekend:  isWeekend(day),
		}
		if mod != nil {
			mod(&cell)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// =============================================================================
// WEEK VIEW - 7 day columns with day-spanning events
// =============================================================================

// WeekView builds the 7 weekday descriptors of the reference date's
// week and places the week's events on the day grid. Each placed event
// carries its starting column (DayOffset) and column count (DaySpan),
// clipped to the displayed week.
//
// With filterOneDayEvents set, events starting and ending on the same
// day are excluded; the week-with-times view renders those on its
// per-day time grids instead. Event order follows the input; callers
// needing a sorted result use SortEvents.
func (c *Calendar) WeekView(events []Event, date time.Time, filterOneDayEvents bool) (WeekView, error) {
	weekStart := startOfWeek(date, c.cfg.WeekStart)
	weekEnd := endOfWeek(date, c.cfg.WeekStart)
	today := startOfDay(c.cfg.Now())

	days := make([]WeekDay, 0, 7)
	day := weekStart
	for i := 0; i < 7; i++ {
		days = append(days, WeekDay{
			WeekDayLabel: c.FormatDate(day, c.cfg.DateFormats.WeekDay),
			DayLabel:     c.FormatDate(day, c.cfg.DateFormats.Day),
			Date:         day,
			IsPast:       day.Before(today),
			IsToday:      day.Equal(today),
			IsFuture:     day.After(today),
			IsWeekend:    isWeekend(day),
		})
		day = day.AddDate(0, 0, 1)
	}

	source := events
	if filterOneDayEvents {
		source = make([]Event, 0, len(events))
		for _, ev := range events {
			if !sameDay(ev.StartsAt, ev.effectiveEnd()) {
				source = append(source, ev)
			}
		}
	}

	inWeek, err := FilterEventsInPeriod(source, weekStart, weekEnd)
	if err != nil {
		return WeekView{}, err
	}

	weekViewStart := weekStart
	weekViewEnd := startOfDay(weekEnd)
	placed := make([]WeekEvent, 0, len(inWeek))
	for _, ev := range inWeek {
		evStart := startOfDay(ev.StartsAt)
		evEnd := startOfDay(ev.effectiveEnd())

		offset := 0
		if evStart.After(weekViewStart) {
			offset = daysBetween(weekViewStart, evStart)
		}

		if evEnd.After(weekViewEnd) {
			evEnd = weekViewEnd
		}
		if evStart.Before(weekViewStart) {
			evStart = weekViewStart
		}
		span := daysBetween(evStart, evEnd) + 1

		placed = append(placed, WeekEvent{Event: ev, DaySpan: span, DayOffset: offset})
	}

	return WeekView{Days: days, Events: placed}, nil
}
