package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/config"
)

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, time.Sunday, cfg.WeekStartDay())
	assert.Equal(t, 30, cfg.DayView.Split)
	assert.False(t, cfg.DisplayAllMonthEvents)
}

func TestLoad_PartialFile_NormalizesGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
listen: ":9090"
week_start: monday
display_all_month_events: true
day_view:
  start: "08:00"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, time.Monday, cfg.WeekStartDay())
	assert.True(t, cfg.DisplayAllMonthEvents)
	assert.Equal(t, "08:00", cfg.DayView.Start)
	// Gaps filled from defaults.
	assert.Equal(t, "23:00", cfg.DayView.End)
	assert.Equal(t, 30, cfg.DayView.Split)
	assert.Equal(t, "Monday", cfg.DateFormats.WeekDay)
}

func TestLoad_InvalidYAML_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestCalendarConfig_CarriesViewSettings(t *testing.T) {
	cfg := config.Default()
	cfg.DisplayAllMonthEvents = true
	cfg.WeekStart = "monday"

	cc := cfg.CalendarConfig()
	assert.True(t, cc.DisplayAllMonthEvents)
	assert.Equal(t, time.Monday, cc.WeekStart)
	assert.Equal(t, "January", cc.DateFormats.Month)
}
