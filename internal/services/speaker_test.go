package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"conferenceagenda/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type voteKey struct{ user, speaker string }

type mockVoteRepository struct {
	votes map[voteKey]*domain.Vote
	err   error
}

func newMockVoteRepository() *mockVoteRepository {
	return &mockVoteRepository{votes: make(map[voteKey]*domain.Vote)}
}

func (m *mockVoteRepository) Create(ctx context.Context, v *domain.Vote) error {
	if m.err != nil {
		return m.err
	}
	k := voteKey{v.UserID, v.SpeakerID}
	if _, ok := m.votes[k]; ok {
		return domain.ErrConflict
	}
	m.votes[k] = v
	return nil
}

func (m *mockVoteRepository) Delete(ctx context.Context, userID, speakerID string) error {
	if m.err != nil {
		return m.err
	}
	k := voteKey{userID, speakerID}
	if _, ok := m.votes[k]; !ok {
		return domain.ErrNotFound
	}
	delete(m.votes, k)
	return nil
}

func (m *mockVoteRepository) CountBySpeaker(ctx context.Context) (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	counts := make(map[string]int)
	for k := range m.votes {
		counts[k.speaker]++
	}
	return counts, nil
}

func speakerSessions() *mockSessionRepository {
	return newMockSessionRepository(
		&domain.Session{ID: "keynote", Speakers: []string{"Grace Hopper", "Ada Lovelace"}},
		&domain.Session{ID: "compilers", Speakers: []string{"grace hopper", " ", "Grace Hopper"}},
		&domain.Session{ID: "break", Speakers: nil},
	)
}

func newTestSpeakerService(sessions *mockSessionRepository, votes *mockVoteRepository) *speakerService {
	return &speakerService{
		sessionRepo:    sessions,
		voteRepo:       votes,
		contextTimeout: time.Second,
		now:            func() time.Time { return time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC) },
	}
}

func TestSpeakerService_ListSpeakers(t *testing.T) {
	votes := newMockVoteRepository()
	svc := newTestSpeakerService(speakerSessions(), votes)
	_, err := svc.Vote(context.Background(), "u1", "grace-hopper")
	require.NoError(t, err)
	_, err = svc.Vote(context.Background(), "u2", "grace-hopper")
	require.NoError(t, err)

	got, err := svc.ListSpeakers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "ada-lovelace", got[0].ID)
	assert.Equal(t, []string{"keynote"}, got[0].SessionIDs)
	assert.Zero(t, got[0].VoteCount)

	assert.Equal(t, "grace-hopper", got[1].ID)
	assert.Equal(t, []string{"compilers", "keynote"}, got[1].SessionIDs)
	assert.Equal(t, 2, got[1].VoteCount)
}

func TestSpeakerService_Vote(t *testing.T) {
	votes := newMockVoteRepository()
	svc := newTestSpeakerService(speakerSessions(), votes)

	vote, err := svc.Vote(context.Background(), "u1", "ada-lovelace")
	require.NoError(t, err)
	assert.Equal(t, "u1", vote.UserID)
	assert.Equal(t, "ada-lovelace", vote.SpeakerID)

	_, err = svc.Vote(context.Background(), "u1", "ada-lovelace")
	require.ErrorIs(t, err, domain.ErrConflict, "one vote per user and speaker")
	assert.Len(t, votes.votes, 1)

	_, err = svc.Vote(context.Background(), "u2", "ada-lovelace")
	require.NoError(t, err, "other users can still vote")

	_, err = svc.Vote(context.Background(), "u1", "nobody")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSpeakerService_Vote_StoreError(t *testing.T) {
	votes := newMockVoteRepository()
	votes.err = errors.New("db down")
	svc := newTestSpeakerService(speakerSessions(), votes)

	_, err := svc.Vote(context.Background(), "u1", "ada-lovelace")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

func TestSpeakerService_Unvote(t *testing.T) {
	votes := newMockVoteRepository()
	svc := newTestSpeakerService(speakerSessions(), votes)

	_, err := svc.Vote(context.Background(), "u1", "ada-lovelace")
	require.NoError(t, err)
	require.NoError(t, svc.Unvote(context.Background(), "u1", "ada-lovelace"))
	require.ErrorIs(t, svc.Unvote(context.Background(), "u1", "ada-lovelace"), domain.ErrNotFound)

	_, err = svc.Vote(context.Background(), "u1", "ada-lovelace")
	require.NoError(t, err, "a withdrawn vote can be cast again")
}
