package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"conferenceagenda/internal/domain"
)

type speakerService struct {
	sessionRepo    domain.SessionRepository
	voteRepo       domain.VoteRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewSpeakerService creates a SpeakerService. Speakers are read from session speaker lists.
func NewSpeakerService(sessionRepo domain.SessionRepository, voteRepo domain.VoteRepository, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		sessionRepo:    sessionRepo,
		voteRepo:       voteRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// speakers groups sessions by speaker id. The first spelling seen names the speaker.
func (s *speakerService) speakers(ctx context.Context) ([]*domain.Speaker, error) {
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	byID := make(map[string]*domain.Speaker)
	for _, sess := range sessions {
		seen := make(map[string]struct{})
		for _, name := range sess.Speakers {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			id := domain.SpeakerIDFor(name)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			sp, ok := byID[id]
			if !ok {
				sp = &domain.Speaker{ID: id, Name: name, SessionIDs: []string{}}
				byID[id] = sp
			}
			sp.SessionIDs = append(sp.SessionIDs, sess.ID)
		}
	}
	out := make([]*domain.Speaker, 0, len(byID))
	for _, sp := range byID {
		sort.Strings(sp.SessionIDs)
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool {
		if a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name); a != b {
			return a < b
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ListSpeakers returns every speaker with their sessions and vote totals, by name.
func (s *speakerService) ListSpeakers(ctx context.Context) ([]*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speakers, err := s.speakers(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.voteRepo.CountBySpeaker(ctx)
	if err != nil {
		return nil, fmt.Errorf("count votes: %w", err)
	}
	for _, sp := range speakers {
		sp.VoteCount = counts[sp.ID]
	}
	return speakers, nil
}

func (s *speakerService) knownSpeaker(ctx context.Context, speakerID string) error {
	speakers, err := s.speakers(ctx)
	if err != nil {
		return err
	}
	for _, sp := range speakers {
		if sp.ID == speakerID {
			return nil
		}
	}
	return fmt.Errorf("%w: speaker %s", domain.ErrNotFound, speakerID)
}

// Vote records the user's vote. A second vote for the same speaker is ErrConflict.
func (s *speakerService) Vote(ctx context.Context, userID, speakerID string) (*domain.Vote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.knownSpeaker(ctx, speakerID); err != nil {
		return nil, err
	}
	vote := &domain.Vote{UserID: userID, SpeakerID: speakerID, CreatedAt: s.now()}
	if err := s.voteRepo.Create(ctx, vote); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create vote: %w", err)
	}
	return vote, nil
}

// Unvote withdraws the user's vote. ErrNotFound if they had not voted.
func (s *speakerService) Unvote(ctx context.Context, userID, speakerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.voteRepo.Delete(ctx, userID, speakerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: no vote for speaker %s", domain.ErrNotFound, speakerID)
		}
		return fmt.Errorf("delete vote: %w", err)
	}
	return nil
}
