package calendar

import "time"

// =============================================================================
// PERIOD - The filtering window for every view
// =============================================================================

// Period is an inclusive interval [Start, End] of instants, derived
// from a reference date and a unit (year/month/week/day).
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains returns true if t is within the period, boundaries included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

func (p Period) String() string {
	return "[" + p.Start.Format(time.RFC3339) + ", " + p.End.Format(time.RFC3339) + "]"
}

// =============================================================================
// PERIOD MATCHER
// =============================================================================

// EventInPeriod reports whether an event intersects the period
// [periodStart, periodEnd].
//
// A recurring event is first re-anchored: its start keeps all components
// except the year (yearly recurrence) or the year and month (monthly
// recurrence), which are overwritten with the period start's. The end is
// shifted by the same delta as the start, with no calendar-aware
// normalization of month-length differences.
//
// The intersection test is deliberately inclusive at both ends so events
// that touch a period edge exactly are never dropped: the event matches
// if its start or end falls strictly inside the period, if it fully
// spans the period, or if either boundary is an exact match.
func EventInPeriod(ev Event, periodStart, periodEnd time.Time) (bool, error) {
	eventStart := ev.StartsAt
	eventEnd := ev.effectiveEnd()

	if ev.RecursOn != RecursNever {
		s := eventStart
		var anchored time.Time
		switch ev.RecursOn {
		case RecursYear:
			anchored = time.Date(periodStart.Year(), s.Month(), s.Day(),
				s.Hour(), s.Minute(), s.Second(), s.Nanosecond(), s.Location())
		case RecursMonth:
			anchored = time.Date(periodStart.Year(), periodStart.Month(), s.Day(),
				s.Hour(), s.Minute(), s.Second(), s.Nanosecond(), s.Location())
		default:
			return false, &InvalidRecurrenceError{EventID: ev.ID, Kind: ev.RecursOn}
		}
		eventEnd = eventEnd.Add(anchored.Sub(eventStart))
		eventStart = anchored
	}

	return (eventStart.After(periodStart) && eventStart.Before(periodEnd)) ||
		(eventEnd.After(periodStart) && eventEnd.Before(periodEnd)) ||
		(eventStart.Before(periodStart) && eventEnd.After(periodEnd)) ||
		eventStart.Equal(periodStart) ||
		eventEnd.Equal(periodEnd), nil
}

// =============================================================================
// PERIOD FILTER
// =============================================================================

// FilterEventsInPeriod returns the events intersecting the period,
// preserving input order. Events are neither duplicated nor mutated.
// An invalid recurrence aborts the whole call with no partial result.
func FilterEventsInPeriod(events []Event, periodStart, periodEnd time.Time) ([]Event, error) {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		ok, err := EventInPeriod(ev, periodStart, periodEnd)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, ev)
		}
	}
	return out, nil
}

// =============================================================================
// BADGE COUNTER
// =============================================================================

// BadgeTotal counts events that increment the visual badge total, i.e.
// every event whose IncrementsBadgeTotal is not explicitly false.
func BadgeTotal(events []Event) int {
	total := 0
	for _, ev := range events {
		if ev.IncrementsBadgeTotal == nil || *ev.IncrementsBadgeTotal {
			total++
		}
	}
	return total
}

// =============================================================================
// END-DATE ADJUSTMENT
// =============================================================================

// AdjustEndFromStartDiff shifts oldEnd by the delta between newStart and
// oldStart. A nil oldEnd is returned unchanged.
func AdjustEndFromStartDiff(oldStart, newStart time.Time, oldEnd *time.Time) *time.Time {
	if oldEnd == nil {
		return nil
	}
	shifted := oldEnd.Add(newStart.Sub(oldStart))
	return &shifted
}
