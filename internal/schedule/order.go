package schedule

import (
	"sort"
	"strings"

	"conferenceagenda/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders accepted by Sort.
const (
	SortByTime  = "time"
	SortByTrack = "track"
)

// newTrackCollator returns a case-insensitive collator. Collators keep internal buffers,
// so each sort gets its own.
func newTrackCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// lessByTime orders by date, then start time. Unparsable start times sort after valid ones
// and fall back to plain string comparison among themselves.
func lessByTime(a, b *domain.Session) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	ma, okA := ParseClock(a.StartTime)
	mb, okB := ParseClock(b.StartTime)
	switch {
	case okA && okB:
		return ma < mb
	case okA != okB:
		return okA
	default:
		return a.StartTime < b.StartTime
	}
}

// Sort returns a copy of sessions ordered for display. SortByTrack groups by track name
// (case-insensitive, sessions without a track last) and orders by time within a track;
// anything else orders by date and start time.
func Sort(sessions []*domain.Session, by string) []*domain.Session {
	out := make([]*domain.Session, len(sessions))
	copy(out, sessions)
	if by != SortByTrack {
		sort.SliceStable(out, func(i, j int) bool { return lessByTime(out[i], out[j]) })
		return out
	}
	col := newTrackCollator()
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := strings.TrimSpace(out[i].Track), strings.TrimSpace(out[j].Track)
		if ti == "" || tj == "" {
			if ti != tj {
				return tj == ""
			}
			return lessByTime(out[i], out[j])
		}
		if c := col.CompareString(ti, tj); c != 0 {
			return c < 0
		}
		return lessByTime(out[i], out[j])
	})
	return out
}

// Filter keeps the sessions matching date and track. Empty criteria match everything.
// Track matching ignores case and surrounding spaces.
func Filter(sessions []*domain.Session, date, track string) []*domain.Session {
	track = strings.TrimSpace(track)
	out := []*domain.Session{}
	for _, s := range sessions {
		if date != "" && s.Date != date {
			continue
		}
		if track != "" && !strings.EqualFold(strings.TrimSpace(s.Track), track) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// BySpeaker returns the sessions listing a speaker whose name matches, ignoring case and
// surrounding spaces. Speaker names are free text, not references.
func BySpeaker(sessions []*domain.Session, name string) []*domain.Session {
	name = strings.TrimSpace(name)
	out := []*domain.Session{}
	if name == "" {
		return out
	}
	for _, s := range sessions {
		for _, sp := range s.Speakers {
			if strings.EqualFold(strings.TrimSpace(sp), name) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// Days returns the distinct session dates in ascending order.
func Days(sessions []*domain.Session) []string {
	seen := make(map[string]struct{})
	days := []string{}
	for _, s := range sessions {
		if s.Date == "" {
			continue
		}
		if _, ok := seen[s.Date]; ok {
			continue
		}
		seen[s.Date] = struct{}{}
		days = append(days, s.Date)
	}
	sort.Strings(days)
	return days
}

// Tracks returns the distinct non-empty track names in collation order. The first
// spelling seen wins when names differ only by case.
func Tracks(sessions []*domain.Session) []string {
	seen := make(map[string]struct{})
	tracks := []string{}
	for _, s := range sessions {
		t := strings.TrimSpace(s.Track)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tracks = append(tracks, t)
	}
	col := newTrackCollator()
	col.SortStrings(tracks)
	return tracks
}
