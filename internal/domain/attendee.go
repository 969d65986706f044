package domain

import (
	"context"
	"time"
)

// SessionRegistration records that a user intends to attend a session.
// swagger:model SessionRegistration
type SessionRegistration struct {
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RegistrationRepository stores each user's set of registered session ids.
// Add and Remove are set-membership mutations: adding a member or removing a non-member
// leaves the set unchanged and is not an error.
type RegistrationRepository interface {
	Add(ctx context.Context, userID, sessionID string) error
	Remove(ctx context.Context, userID, sessionID string) error
	ListSessionIDs(ctx context.Context, userID string) ([]string, error)
}

// ConflictCheck is the result of checking a candidate session against a user's agenda.
// swagger:model ConflictCheck
type ConflictCheck struct {
	Candidate  *Session   `json:"candidate"`
	Registered bool       `json:"registered"`
	Conflicts  []*Session `json:"conflicts"`
}

// AttendeeService defines attendee-facing agenda operations.
type AttendeeService interface {
	// Register adds the session to the user's agenda. It never removes conflicting sessions.
	Register(ctx context.Context, userID, sessionID string) error
	// Unregister removes the session from the user's agenda; removing a non-member is a no-op.
	Unregister(ctx context.Context, userID, sessionID string) error
	// CheckConflicts returns the registered sessions that overlap the candidate.
	CheckConflicts(ctx context.Context, userID, sessionID string) (*ConflictCheck, error)
	// ReplaceConflicts unregisters the confirmed conflicting sessions and then registers the
	// candidate. Returns ErrConflict without mutating anything if any current conflict is unconfirmed.
	ReplaceConflicts(ctx context.Context, userID, sessionID string, confirmedIDs []string) ([]*Session, error)
	ListRegisteredIDs(ctx context.Context, userID string) ([]string, error)
	ListMyAgenda(ctx context.Context, userID string) ([]*Session, error)
}

// CalendarExporter renders a list of sessions as an iCalendar document.
type CalendarExporter interface {
	Export(name string, sessions []*Session) ([]byte, error)
}
