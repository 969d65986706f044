package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Profile field limits.
const (
	MaxDisplayNameLength = 80
	MaxCompanyLength     = 120
	MaxBioLength         = 500
	MaxProfileTags       = 20
	MinPhoneDigits       = 10
)

var phoneRegexp = regexp.MustCompile(`^[\d\s\-+()]+$`)

// Profile is a participant's public directory entry.
// swagger:model Profile
type Profile struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company"`
	Bio         string    `json:"bio"`
	Interests   []string  `json:"interests"`
	Intents     []string  `json:"intents"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidPhone accepts digits with spaces, dashes, parentheses and a leading plus, as long as
// there are at least MinPhoneDigits digits.
func ValidPhone(s string) bool {
	if !phoneRegexp.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= MinPhoneDigits
}

// Normalize trims free-text fields and drops blank or repeated tags.
func (p *Profile) Normalize() {
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Company = strings.TrimSpace(p.Company)
	p.Bio = strings.TrimSpace(p.Bio)
	p.Interests = normalizeTags(p.Interests)
	p.Intents = normalizeTags(p.Intents)
}

func normalizeTags(tags []string) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Validate checks a normalized profile.
func (p *Profile) Validate() error {
	var errs []string
	if p.DisplayName == "" {
		errs = append(errs, "display_name is required")
	} else if utf8.RuneCountInString(p.DisplayName) > MaxDisplayNameLength {
		errs = append(errs, fmt.Sprintf("display_name exceeds %d characters", MaxDisplayNameLength))
	}
	if p.Phone != "" && !ValidPhone(p.Phone) {
		errs = append(errs, fmt.Sprintf("phone must contain at least %d digits", MinPhoneDigits))
	}
	if utf8.RuneCountInString(p.Company) > MaxCompanyLength {
		errs = append(errs, fmt.Sprintf("company exceeds %d characters", MaxCompanyLength))
	}
	if utf8.RuneCountInString(p.Bio) > MaxBioLength {
		errs = append(errs, fmt.Sprintf("bio exceeds %d characters", MaxBioLength))
	}
	if len(p.Interests) > MaxProfileTags || len(p.Intents) > MaxProfileTags {
		errs = append(errs, fmt.Sprintf("at most %d interests and %d intents", MaxProfileTags, MaxProfileTags))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(errs, "; "))
	}
	return nil
}

// ParticipantFilter narrows the participant directory. Empty fields match everything.
type ParticipantFilter struct {
	// Search matches display name, company or bio, case-insensitively.
	Search        string
	Interest      string
	Intent        string
	AvailableOnly bool
	// ExcludeUserID leaves the caller out of their own directory.
	ExcludeUserID string
}

// ProfileRepository stores participant profiles.
type ProfileRepository interface {
	// Upsert creates or replaces the profile, filling CreatedAt and UpdatedAt from the store.
	Upsert(ctx context.Context, profile *Profile) error
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	List(ctx context.Context, filter ParticipantFilter, params PaginationParams) ([]*Profile, int, error)
}
