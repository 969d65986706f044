// Package schedule turns session times into comparable windows and answers overlap
// questions over small in-memory session lists. Everything here is pure.
package schedule

import (
	"fmt"

	"conferenceagenda/internal/domain"
)

const minutesPerDay = 24 * 60

// Window is a session's half-open interval [Start, End) in minutes since midnight on Date.
type Window struct {
	Date  string
	Start int
	End   int
}

// Empty reports whether the window covers no time at all.
func (w Window) Empty() bool {
	return w.End <= w.Start
}

// Overlaps reports whether two windows on the same date intersect. Touching windows
// (one ends exactly when the other starts) and empty windows never overlap.
func (w Window) Overlaps(o Window) bool {
	if w.Date != o.Date || w.Empty() || o.Empty() {
		return false
	}
	return w.Start < o.End && o.Start < w.End
}

// ParseClock parses an "HH:MM" 24-hour time into minutes since midnight. It accepts
// exactly what session validation accepts.
func ParseClock(s string) (int, bool) {
	return domain.ParseClock(s)
}

// FormatClock renders minutes since midnight as a zero-padded "HH:MM" string.
// Values past midnight wrap onto the next day's clock.
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WindowOf resolves a session's window. The end is EndTime when present, otherwise
// StartTime plus Duration. It returns false when the session has no date, an unparsable
// time, a negative duration, an end before its start, or neither end time nor duration.
func WindowOf(s *domain.Session) (Window, bool) {
	if s == nil || s.Date == "" {
		return Window{}, false
	}
	start, ok := ParseClock(s.StartTime)
	if !ok {
		return Window{}, false
	}
	var end int
	switch {
	case s.EndTime != nil && *s.EndTime != "":
		end, ok = ParseClock(*s.EndTime)
		if !ok || end < start {
			return Window{}, false
		}
	case s.Duration != nil:
		if *s.Duration < 0 {
			return Window{}, false
		}
		end = start + *s.Duration
	default:
		return Window{}, false
	}
	return Window{Date: s.Date, Start: start, End: end}, true
}

// EffectiveEndTime returns the session's resolved end as "HH:MM", for display.
func EffectiveEndTime(s *domain.Session) (string, bool) {
	w, ok := WindowOf(s)
	if !ok {
		return "", false
	}
	return FormatClock(w.End), true
}

// Overlaps reports whether two sessions conflict. Sessions without a window, or on
// different dates, never conflict.
func Overlaps(a, b *domain.Session) bool {
	wa, ok := WindowOf(a)
	if !ok {
		return false
	}
	wb, ok := WindowOf(b)
	if !ok {
		return false
	}
	return wa.Overlaps(wb)
}

// FindConflicts returns the sessions in registered that overlap candidate, in their
// original order. A session with the candidate's id is never reported.
func FindConflicts(candidate *domain.Session, registered []*domain.Session) []*domain.Session {
	conflicts := []*domain.Session{}
	if candidate == nil {
		return conflicts
	}
	for _, s := range registered {
		if s == nil || s.ID == candidate.ID {
			continue
		}
		if Overlaps(candidate, s) {
			conflicts = append(conflicts, s)
		}
	}
	return conflicts
}
