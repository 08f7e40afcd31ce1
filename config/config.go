// Package config provides the YAML-based configuration model for the
// calendar engine server: view defaults (date formats, week start,
// day-view bounds) and the HTTP listen settings.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/warp/calendar-engine/calendar"
)

// DateFormatsConfig holds the format specs handed to the formatting
// capability for the different view labels. Values are Go time layouts.
type DateFormatsConfig struct {
	WeekDay string `yaml:"week_day" json:"week_day"`
	Day     string `yaml:"day" json:"day"`
	Month   string `yaml:"month" json:"month"`
}

// DayViewConfig bounds the time-grid day view.
type DayViewConfig struct {
	// Start and End are "HH:MM" clock strings for the visible hour range.
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`

	// Split is the slot granularity in minutes.
	Split int `yaml:"split" json:"split"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen" json:"listen"`

	// CORSOrigins lists the origins allowed to call the API.
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins"`

	// WeekStart is the first day of the displayed week. Supported
	// values: "sunday" (default), "monday".
	WeekStart string `yaml:"week_start" json:"week_start"`

	// DisplayAllMonthEvents widens the month view's event window to the
	// whole displayed grid instead of the calendar month.
	DisplayAllMonthEvents bool `yaml:"display_all_month_events" json:"display_all_month_events"`

	DateFormats DateFormatsConfig `yaml:"date_formats" json:"date_formats"`
	DayView     DayViewConfig     `yaml:"day_view" json:"day_view"`
}

// Default returns an in-memory default configuration.
func Default() *Config {
	return &Config{
		Listen:      "127.0.0.1:8080",
		CORSOrigins: []string{"*"},
		WeekStart:   "sunday",
		DateFormats: DateFormatsConfig{
			WeekDay: "Monday",
			Day:     "2",
			Month:   "January",
		},
		DayView: DayViewConfig{
			Start: "00:00",
			End:   "23:00",
			Split: calendar.DefaultDayViewSplit,
		},
	}
}

// Normalize fills missing/zero values with defaults so partially
// filled configs still behave correctly.
func (c *Config) Normalize() {
	def := Default()
	if c.Listen == "" {
		c.Listen = def.Listen
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = def.CORSOrigins
	}
	if c.WeekStart == "" {
		c.WeekStart = def.WeekStart
	}
	if c.DateFormats.WeekDay == "" {
		c.DateFormats.WeekDay = def.DateFormats.WeekDay
	}
	if c.DateFormats.Day == "" {
		c.DateFormats.Day = def.DateFormats.Day
	}
	if c.DateFormats.Month == "" {
		c.DateFormats.Month = def.DateFormats.Month
	}
	if c.DayView.Start == "" {
		c.DayView.Start = def.DayView.Start
	}
	if c.DayView.End == "" {
		c.DayView.End = def.DayView.End
	}
	if c.DayView.Split <= 0 {
		c.DayView.Split = def.DayView.Split
	}
}

// Load reads the YAML config at path. A missing file yields the
// defaults rather than an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// WeekStartDay maps the configured week start onto a time.Weekday.
func (c *Config) WeekStartDay() time.Weekday {
	if strings.EqualFold(c.WeekStart, "monday") {
		return time.Monday
	}
	return time.Sunday
}

// CalendarConfig builds the core engine configuration.
func (c *Config) CalendarConfig() calendar.Config {
	return calendar.Config{
		DateFormats: calendar.DateFormats{
			WeekDay: c.DateFormats.WeekDay,
			Day:     c.DateFormats.Day,
			Month:   c.DateFormats.Month,
		},
		DisplayAllMonthEvents: c.DisplayAllMonthEvents,
		WeekStart:             c.WeekStartDay(),
	}
}

// DayViewOptions builds the configured day-view defaults.
func (c *Config) DayViewOptions() calendar.DayViewOptions {
	return calendar.DayViewOptions{
		Start: c.DayView.Start,
		End:   c.DayView.End,
		Split: c.DayView.Split,
	}
}
