package domain

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by sessions (ISO 8601, date only).
const DateLayout = "2006-01-02"

var nonSlugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// Session represents one scheduled conference activity.
// EndTime and Duration are optional; when EndTime is absent the end is derived from Duration.
// swagger:model Session
type Session struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     *string   `json:"end_time,omitempty"`
	Duration    *int      `json:"duration,omitempty"`
	Track       string    `json:"track"`
	Speakers    []string  `json:"speakers"`
	Location    string    `json:"location"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Capacity    *int      `json:"capacity,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SessionIDFor derives a stable identifier from a session's title, date, start time and
// location. The slug is used when it is non-empty; otherwise a short SHA-1 prefix.
func SessionIDFor(title, date, startTime, location string) string {
	return slugID(title + "-" + date + "-" + startTime + "-" + location)
}

func slugID(base string) string {
	slug := strings.Trim(nonSlugRegexp.ReplaceAllString(strings.ToLower(base), "-"), "-")
	if slug != "" {
		return slug
	}
	sum := sha1.Sum([]byte(base))
	return hex.EncodeToString(sum[:])[:16]
}

// Validate checks the fields a stored session must carry. It is applied where records
// enter the store, so the schedule model can assume well-typed input.
// A session with neither end time nor duration is valid; it simply never conflicts.
func (s *Session) Validate() error {
	var errs []string
	if strings.TrimSpace(s.ID) == "" {
		errs = append(errs, "id is required")
	}
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	if _, ok := ParseClock(s.StartTime); !ok {
		errs = append(errs, "start_time must be HH:MM between 00:00 and 23:59")
	}
	if s.EndTime != nil {
		if _, ok := ParseClock(*s.EndTime); !ok {
			errs = append(errs, "end_time must be HH:MM between 00:00 and 23:59")
		}
	}
	if s.Duration != nil && *s.Duration < 0 {
		errs = append(errs, "duration must not be negative")
	}
	if s.Capacity != nil && *s.Capacity < 0 {
		errs = append(errs, "capacity must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(errs, "; "))
	}
	return nil
}

// SessionFilter narrows a schedule listing. Empty fields match everything.
type SessionFilter struct {
	Date  string
	Track string
	// SortBy is "time" (default) or "track".
	SortBy string
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Upsert(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context) ([]*Session, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Session, error)
}

// ScheduleService defines read access to the conference schedule.
type ScheduleService interface {
	ListSessions(ctx context.Context, filter SessionFilter) ([]*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	ListDays(ctx context.Context) ([]string, error)
	ListTracks(ctx context.Context) ([]string, error)
	ListSessionsBySpeaker(ctx context.Context, speaker string) ([]*Session, error)
	ImportSessions(ctx context.Context, sessions []*Session) error
}

// Subscription is a live feed handle. Close releases it; it is safe to call more than once.
type Subscription interface {
	Close()
}

// SessionFeed delivers schedule snapshots as the store changes. Callbacks receive the full
// latest snapshot; their ordering relative to local writes is not guaranteed.
type SessionFeed interface {
	Subscribe(ctx context.Context, fn func([]*Session)) (Subscription, error)
}
