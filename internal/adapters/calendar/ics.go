// Package calendar renders agendas as iCalendar documents.
package calendar

import (
	"fmt"
	"time"

	"conferenceagenda/internal/domain"
	"conferenceagenda/internal/schedule"

	ical "github.com/arran4/golang-ical"
)

const productID = "-//conferenceagenda//agenda//EN"

// UIDSuffix makes event UIDs globally unique per RFC 5545.
const UIDSuffix = "@conferenceagenda"

type icsExporter struct {
	location *time.Location
	now      func() time.Time
}

// NewICSExporter returns a CalendarExporter. Session dates and clock times are read in loc,
// the event's local time zone; a nil loc means UTC.
func NewICSExporter(loc *time.Location) domain.CalendarExporter {
	if loc == nil {
		loc = time.UTC
	}
	return &icsExporter{location: loc, now: time.Now}
}

func (e *icsExporter) Export(name string, sessions []*domain.Session) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(name)
	cal.SetXWRTimezone(e.location.String())

	stamp := e.now().UTC()
	for _, s := range sessions {
		start, err := e.startOf(s)
		if err != nil {
			return nil, fmt.Errorf("session %q: %w", s.ID, err)
		}
		event := cal.AddEvent(s.ID + UIDSuffix)
		event.SetDtStampTime(stamp)
		if !s.UpdatedAt.IsZero() {
			event.SetModifiedAt(s.UpdatedAt)
		}
		event.SetStartAt(start)
		// Sessions without a window are exported as a point in time.
		if w, ok := schedule.WindowOf(s); ok {
			event.SetEndAt(start.Add(time.Duration(w.End-w.Start) * time.Minute))
		}
		event.SetSummary(s.Title)
		if s.Location != "" {
			event.SetLocation(s.Location)
		}
		if s.Description != "" {
			event.SetDescription(s.Description)
		}
	}
	return []byte(cal.Serialize()), nil
}

func (e *icsExporter) startOf(s *domain.Session) (time.Time, error) {
	day, err := time.ParseInLocation(domain.DateLayout, s.Date, e.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrInvalidInput, s.Date)
	}
	minutes, ok := schedule.ParseClock(s.StartTime)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: invalid start time %q", domain.ErrInvalidInput, s.StartTime)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, e.location), nil
}
