package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"conferenceagenda/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockThreadRepository struct {
	threads  map[string]*domain.Thread
	messages map[string][]*domain.Message
	err      error
}

func newMockThreadRepository() *mockThreadRepository {
	return &mockThreadRepository{
		threads:  make(map[string]*domain.Thread),
		messages: make(map[string][]*domain.Message),
	}
}

func (m *mockThreadRepository) Ensure(ctx context.Context, thread *domain.Thread) (*domain.Thread, error) {
	if m.err != nil {
		return nil, m.err
	}
	if existing, ok := m.threads[thread.Key]; ok {
		return existing, nil
	}
	m.threads[thread.Key] = thread
	return thread, nil
}

func (m *mockThreadRepository) GetByKey(ctx context.Context, key string) (*domain.Thread, error) {
	if m.err != nil {
		return nil, m.err
	}
	t, ok := m.threads[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (m *mockThreadRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Thread, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Thread{}
	for _, t := range m.threads {
		if t.HasParticipant(userID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockThreadRepository) AddMessage(ctx context.Context, msg *domain.Message) error {
	if m.err != nil {
		return m.err
	}
	msg.ID = fmt.Sprintf("m%d", len(m.messages[msg.ThreadKey])+1)
	m.messages[msg.ThreadKey] = append(m.messages[msg.ThreadKey], msg)
	t := m.threads[msg.ThreadKey]
	t.LastMessage = msg.Text
	t.LastMessageAt = msg.CreatedAt
	return nil
}

func (m *mockThreadRepository) ListMessages(ctx context.Context, key string, params domain.PaginationParams) ([]*domain.Message, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	all := m.messages[key]
	return all, len(all), nil
}

func newTestMessagingService(repo *mockThreadRepository, now time.Time) *messagingService {
	return &messagingService{
		threadRepo:     repo,
		contextTimeout: time.Second,
		now:            func() time.Time { return now },
	}
}

func TestMessagingService_OpenThread(t *testing.T) {
	now := time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		userID  string
		otherID string
		wantKey string
		wantErr error
	}{
		{name: "canonical key", userID: "bob", otherID: "alice", wantKey: "alice_bob"},
		{name: "same key from the other side", userID: "alice", otherID: "bob", wantKey: "alice_bob"},
		{name: "thread with yourself", userID: "alice", otherID: "alice", wantErr: domain.ErrInvalidInput},
		{name: "missing participant", userID: "alice", otherID: " ", wantErr: domain.ErrInvalidInput},
		{name: "separator in own id", userID: "alice_bob", otherID: "carol", wantErr: domain.ErrInvalidInput},
		{name: "separator in other id", userID: "alice", otherID: "bob_carol", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestMessagingService(newMockThreadRepository(), now)
			got, err := svc.OpenThread(context.Background(), tt.userID, tt.otherID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, got.Key)
			assert.Equal(t, []string{"alice", "bob"}, got.Participants)
			assert.Equal(t, now, got.CreatedAt)
		})
	}
}

func TestMessagingService_OpenThread_ReturnsExisting(t *testing.T) {
	repo := newMockThreadRepository()
	first := newTestMessagingService(repo, time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC))
	later := newTestMessagingService(repo, time.Date(2026, 1, 25, 9, 0, 0, 0, time.UTC))

	a, err := first.OpenThread(context.Background(), "alice", "bob")
	require.NoError(t, err)
	b, err := later.OpenThread(context.Background(), "bob", "alice")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Len(t, repo.threads, 1)
}

func TestMessagingService_OpenThread_KeyOwnedByOtherPair(t *testing.T) {
	repo := newMockThreadRepository()
	// A row stored under the key "alice_bob" that does not belong to alice and bob.
	repo.threads["alice_bob"] = &domain.Thread{
		Key:          "alice_bob",
		Participants: []string{"alice_bo", "b"},
		LastMessage:  "private",
	}
	svc := newTestMessagingService(repo, time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC))

	got, err := svc.OpenThread(context.Background(), "alice", "bob")
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, got)
}

func TestMessagingService_SendMessage(t *testing.T) {
	now := time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		senderID string
		text     string
		wantErr  error
	}{
		{name: "participant sends", senderID: "alice", text: "  see you at the keynote  "},
		{name: "non-participant", senderID: "mallory", text: "hi", wantErr: domain.ErrForbidden},
		{name: "empty text", senderID: "alice", text: "   ", wantErr: domain.ErrInvalidInput},
		{name: "too long", senderID: "alice", text: strings.Repeat("é", domain.MaxMessageLength+1), wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockThreadRepository()
			svc := newTestMessagingService(repo, now)
			thread, err := svc.OpenThread(context.Background(), "alice", "bob")
			require.NoError(t, err)

			msg, err := svc.SendMessage(context.Background(), thread.Key, tt.senderID, tt.text)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.messages[thread.Key])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "see you at the keynote", msg.Text)
			assert.Equal(t, "see you at the keynote", repo.threads[thread.Key].LastMessage)
			assert.Equal(t, now, repo.threads[thread.Key].LastMessageAt)
		})
	}
}

func TestMessagingService_SendMessage_MaxLengthAllowed(t *testing.T) {
	svc := newTestMessagingService(newMockThreadRepository(), time.Now())
	thread, err := svc.OpenThread(context.Background(), "alice", "bob")
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), thread.Key, "bob", strings.Repeat("é", domain.MaxMessageLength))
	require.NoError(t, err)
}

func TestMessagingService_SendMessage_UnknownThread(t *testing.T) {
	svc := newTestMessagingService(newMockThreadRepository(), time.Now())
	_, err := svc.SendMessage(context.Background(), "alice_bob", "alice", "hi")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMessagingService_ListMessages(t *testing.T) {
	repo := newMockThreadRepository()
	svc := newTestMessagingService(repo, time.Now())
	thread, err := svc.OpenThread(context.Background(), "alice", "bob")
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), thread.Key, "alice", "one")
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), thread.Key, "bob", "two")
	require.NoError(t, err)

	msgs, total, err := svc.ListMessages(context.Background(), thread.Key, "bob", domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "one", msgs[0].Text)
	assert.Equal(t, "two", msgs[1].Text)

	_, _, err = svc.ListMessages(context.Background(), thread.Key, "mallory", domain.PaginationParams{})
	require.ErrorIs(t, err, domain.ErrForbidden)

	repo.err = errors.New("db down")
	_, _, err = svc.ListMessages(context.Background(), thread.Key, "bob", domain.PaginationParams{})
	require.Error(t, err)
}

func TestMessagingService_ListThreads(t *testing.T) {
	repo := newMockThreadRepository()
	svc := newTestMessagingService(repo, time.Now())
	_, err := svc.OpenThread(context.Background(), "alice", "bob")
	require.NoError(t, err)
	_, err = svc.OpenThread(context.Background(), "carol", "alice")
	require.NoError(t, err)
	_, err = svc.OpenThread(context.Background(), "bob", "carol")
	require.NoError(t, err)

	threads, err := svc.ListThreads(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, threads, 2)
}
