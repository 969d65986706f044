package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"conferenceagenda/internal/domain"
)

type messagingService struct {
	threadRepo     domain.ThreadRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewMessagingService creates a MessagingService backed by the given thread repository.
func NewMessagingService(threadRepo domain.ThreadRepository, timeout time.Duration) domain.MessagingService {
	return &messagingService{
		threadRepo:     threadRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// OpenThread returns the conversation between the two users, creating it on first use.
func (s *messagingService) OpenThread(ctx context.Context, userID, otherUserID string) (*domain.Thread, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	userID = strings.TrimSpace(userID)
	otherUserID = strings.TrimSpace(otherUserID)
	if userID == "" || otherUserID == "" {
		return nil, fmt.Errorf("%w: both participants are required", domain.ErrInvalidInput)
	}
	if userID == otherUserID {
		return nil, fmt.Errorf("%w: cannot open a thread with yourself", domain.ErrInvalidInput)
	}
	if strings.Contains(userID, domain.ThreadKeySeparator) || strings.Contains(otherUserID, domain.ThreadKeySeparator) {
		return nil, fmt.Errorf("%w: user ids must not contain %q", domain.ErrInvalidInput, domain.ThreadKeySeparator)
	}

	participants := []string{userID, otherUserID}
	sort.Strings(participants)
	thread, err := s.threadRepo.Ensure(ctx, &domain.Thread{
		Key:          domain.ThreadKey(userID, otherUserID),
		Participants: participants,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("ensure thread: %w", err)
	}
	// A stored thread under this key must belong to exactly this pair.
	if !slices.Equal(thread.Participants, participants) {
		return nil, fmt.Errorf("%w: thread %s belongs to other participants", domain.ErrConflict, thread.Key)
	}
	return thread, nil
}

func (s *messagingService) ListThreads(ctx context.Context, userID string) ([]*domain.Thread, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	threads, err := s.threadRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}
	return threads, nil
}

func (s *messagingService) participantThread(ctx context.Context, threadKey, userID string) (*domain.Thread, error) {
	thread, err := s.threadRepo.GetByKey(ctx, threadKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get thread: %w", err)
	}
	if !thread.HasParticipant(userID) {
		return nil, domain.ErrForbidden
	}
	return thread, nil
}

func (s *messagingService) SendMessage(ctx context.Context, threadKey, senderID, text string) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: message exceeds %d characters", domain.ErrInvalidInput, domain.MaxMessageLength)
	}
	if _, err := s.participantThread(ctx, threadKey, senderID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ThreadKey: threadKey,
		SenderID:  senderID,
		Text:      text,
		CreatedAt: s.now(),
	}
	if err := s.threadRepo.AddMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("add message: %w", err)
	}
	return msg, nil
}

func (s *messagingService) ListMessages(ctx context.Context, threadKey, userID string, params domain.PaginationParams) ([]*domain.Message, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.participantThread(ctx, threadKey, userID); err != nil {
		return nil, 0, err
	}
	msgs, total, err := s.threadRepo.ListMessages(ctx, threadKey, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list messages: %w", err)
	}
	return msgs, total, nil
}
