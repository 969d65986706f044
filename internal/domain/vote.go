package domain

import (
	"context"
	"strings"
	"time"
)

// Speaker is a person named on at least one session. Speakers have no table of their own;
// they are derived from session speaker lists.
// swagger:model Speaker
type Speaker struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	SessionIDs []string `json:"session_ids"`
	VoteCount  int      `json:"vote_count"`
}

// SpeakerIDFor derives a stable speaker id from a display name. Names differing only in
// case or punctuation share an id.
func SpeakerIDFor(name string) string {
	return slugID(strings.TrimSpace(name))
}

// Vote is one user's vote for a speaker. A user votes for a speaker at most once.
// swagger:model Vote
type Vote struct {
	UserID    string    `json:"user_id"`
	SpeakerID string    `json:"speaker_id"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteRepository stores speaker votes.
type VoteRepository interface {
	// Create stores the vote. ErrConflict if the user already voted for the speaker.
	Create(ctx context.Context, vote *Vote) error
	// Delete removes the user's vote. ErrNotFound if there was none.
	Delete(ctx context.Context, userID, speakerID string) error
	// CountBySpeaker returns vote totals keyed by speaker id; speakers without votes are absent.
	CountBySpeaker(ctx context.Context) (map[string]int, error)
}

// SpeakerService lists speakers and records votes for them.
type SpeakerService interface {
	ListSpeakers(ctx context.Context) ([]*Speaker, error)
	Vote(ctx context.Context, userID, speakerID string) (*Vote, error)
	Unvote(ctx context.Context, userID, speakerID string) error
}
