package ics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/ics"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:meeting-1
DTSTART:20210601T090000Z
DTEND:20210601T100000Z
SUMMARY:Standup
END:VEVENT
BEGIN:VEVENT
UID:birthday-1
DTSTART:20150110T000000Z
RRULE:FREQ=YEARLY;INTERVAL=1
SUMMARY:Birthday
END:VEVENT
BEGIN:VEVENT
UID:payday-1
DTSTART:20210125T000000Z
RRULE:FREQ=MONTHLY
SUMMARY:Payday
END:VEVENT
BEGIN:VEVENT
UID:daily-1
DTSTART:20210601T080000Z
RRULE:FREQ=DAILY
SUMMARY:Unsupported frequency
END:VEVENT
END:VCALENDAR
`

func TestParse_MapsEventsAndRecurrence(t *testing.T) {
	events, err := ics.Parse([]byte(sampleICS))
	require.NoError(t, err)
	require.Len(t, events, 3, "the daily VEVENT must be skipped")

	byID := map[string]calendar.Event{}
	for _, ev := range events {
		byID[ev.ID] = ev
	}

	meeting := byID["meeting-1"]
	assert.Equal(t, time.Date(2021, time.June, 1, 9, 0, 0, 0, time.UTC), meeting.StartsAt.UTC())
	require.NotNil(t, meeting.EndsAt)
	assert.Equal(t, time.Date(2021, time.June, 1, 10, 0, 0, 0, time.UTC), meeting.EndsAt.UTC())
	assert.Equal(t, calendar.RecursNever, meeting.RecursOn)

	assert.Equal(t, calendar.RecursYear, byID["birthday-1"].RecursOn)
	assert.Equal(t, calendar.RecursMonth, byID["payday-1"].RecursOn)
}

func TestParse_ImportedEventsFeedTheViews(t *testing.T) {
	// GIVEN: The imported events
	// WHEN: Building June 2021's year view
	// THEN: The yearly birthday lands in January and the meeting in June

	events, err := ics.Parse([]byte(sampleICS))
	require.NoError(t, err)

	cal := calendar.New(calendar.Config{
		Now: func() time.Time { return time.Date(2021, time.June, 2, 12, 0, 0, 0, time.UTC) },
	})
	cells, err := cal.YearView(events, time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	require.Len(t, cells, 12)

	assert.Len(t, cells[0].Events, 2, "January: birthday plus the monthly payday")
	assert.Len(t, cells[5].Events, 2, "June: meeting plus the monthly payday")
}

func TestParse_EmptyPayload_Fails(t *testing.T) {
	_, err := ics.Parse(nil)
	assert.ErrorIs(t, err, ics.ErrEmptyPayload)
}
