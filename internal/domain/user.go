package domain

import (
	"slices"
	"time"
)

// Role codes carried in access tokens. Attendees use the app; organizers and admins also
// maintain the schedule.
const (
	RoleAttendee  = "attendee"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// Principal is the caller identified by a verified token.
type Principal struct {
	UserID string
	Roles  []string
}

// HasAnyRole reports whether the principal holds at least one of roles.
func (p *Principal) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if slices.Contains(p.Roles, r) {
			return true
		}
	}
	return false
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the caller it was issued to.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}
