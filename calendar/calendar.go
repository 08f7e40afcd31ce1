package calendar

import "time"

// =============================================================================
// FORMATTING CAPABILITY
// =============================================================================

// Formatter renders a date with a caller-supplied format spec. It is an
// injected capability; locale-aware formatting lives outside this
// package. The default formatter applies time.Time.Format.
type Formatter func(t time.Time, layout string) string

// DateFormats holds the format specs passed to the Formatter for the
// different labels the generators produce.
type DateFormats struct {
	WeekDay string
	Day     string
	Month   string
}

// DefaultDateFormats are the stdlib layouts used when none are configured.
func DefaultDateFormats() DateFormats {
	return DateFormats{
		WeekDay: "Monday",
		Day:     "2",
		Month:   "January",
	}
}

// =============================================================================
// CALENDAR - Generator configuration
// =============================================================================

// Config collects the inputs shared by all view generators.
type Config struct {
	// DateFormats are the format specs for weekday/day/month labels.
	DateFormats DateFormats

	// DisplayAllMonthEvents widens the month generator's pre-filter to
	// the whole displayed grid, so days outside the calendar month still
	// show their events.
	DisplayAllMonthEvents bool

	// WeekStart is the first day of the displayed week.
	WeekStart time.Weekday

	// Now supplies the current time for the isToday/isPast/isFuture
	// flags. Injectable for testing; defaults to time.Now.
	Now func() time.Time

	// Format renders labels. Defaults to time.Time.Format.
	Format Formatter
}

// Calendar computes view models from an event collection and a
// reference date. It holds no state between calls; every generator is a
// pure function of its inputs and the configured clock.
type Calendar struct {
	cfg Config
}

// New returns a Calendar, filling zero config values with defaults.
func New(cfg Config) *Calendar {
	if cfg.DateFormats == (DateFormats{}) {
		cfg.DateFormats = DefaultDateFormats()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Format == nil {
		cfg.Format = func(t time.Time, layout string) string { return t.Format(layout) }
	}
	return &Calendar{cfg: cfg}
}

// FormatDate renders a date through the configured formatting capability.
func (c *Calendar) FormatDate(t time.Time, layout string) string {
	return c.cfg.Format(t, layout)
}

// WeekDayNames returns the 7 weekday labels starting from the
// configured first day of week.
func (c *Calendar) WeekDayNames() []string {
	names := make([]string, 0, 7)
	day := startOfWeek(c.cfg.Now(), c.cfg.WeekStart)
	for i := 0; i < 7; i++ {
		names = append(names, c.FormatDate(day, c.cfg.DateFormats.WeekDay))
		day = day.AddDate(0, 0, 1)
	}
	return names
}
