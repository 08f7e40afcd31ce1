// Package ics imports iCalendar payloads as calendar events, so ICS
// feeds can be fed straight to the view generators.
package ics

import (
	"bytes"
	"errors"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/warp/calendar-engine/calendar"
)

// ErrEmptyPayload is returned for an empty ICS body.
var ErrEmptyPayload = errors.New("empty ICS payload")

// Parse converts an ICS payload into calendar events.
//
// DTSTART/DTEND map onto StartsAt/EndsAt (a missing DTEND leaves the
// end open). RRULE frequencies map onto the engine's recurrence kinds:
// FREQ=YEARLY becomes a yearly event and FREQ=MONTHLY a monthly one;
// VEVENTs with any other frequency are skipped, since the engine's
// recurrence model is the year/month re-anchor, not general RRULE
// expansion. VEVENTs without a UID get a generated identifier.
func Parse(body []byte) ([]calendar.Event, error) {
	if len(body) == 0 {
		return nil, ErrEmptyPayload
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	events := make([]calendar.Event, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		ev, ok := parseVEvent(ve)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (calendar.Event, bool) {
	var ev calendar.Event

	start, err := ve.GetStartAt()
	if err != nil {
		return ev, false
	}
	ev.StartsAt = start

	if end, err := ve.GetEndAt(); err == nil {
		ev.EndsAt = &end
	}

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil && p.Value != "" {
		ev.ID = p.Value
	} else {
		ev.ID = uuid.NewString()
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		switch rruleFreq(p.Value) {
		case "YEARLY":
			ev.RecursOn = calendar.RecursYear
		case "MONTHLY":
			ev.RecursOn = calendar.RecursMonth
		case "":
			// No frequency; treat as non-recurring.
		default:
			return ev, false
		}
	}

	return ev, true
}

// rruleFreq extracts the FREQ part of an RRULE value.
func rruleFreq(rrule string) string {
	for _, part := range strings.Split(rrule, ";") {
		if k, v, ok := strings.Cut(part, "="); ok && strings.EqualFold(strings.TrimSpace(k), "FREQ") {
			return strings.ToUpper(strings.TrimSpace(v))
		}
	}
	return ""
}
