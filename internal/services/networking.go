package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"conferenceagenda/internal/domain"
)

type networkingService struct {
	profileRepo    domain.ProfileRepository
	connectionRepo domain.ConnectionRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewNetworkingService creates a NetworkingService over the profile and connection stores.
func NewNetworkingService(
	profileRepo domain.ProfileRepository,
	connectionRepo domain.ConnectionRepository,
	timeout time.Duration,
) domain.NetworkingService {
	return &networkingService{
		profileRepo:    profileRepo,
		connectionRepo: connectionRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *networkingService) getProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: no profile for %s", domain.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *networkingService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.getProfile(ctx, userID)
}

func (s *networkingService) UpdateProfile(ctx context.Context, userID string, profile *domain.Profile) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if profile == nil {
		return nil, fmt.Errorf("%w: profile is required", domain.ErrInvalidInput)
	}
	p := *profile
	p.UserID = userID
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Upsert(ctx, &p); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return &p, nil
}

func (s *networkingService) ListParticipants(ctx context.Context, userID string, filter domain.ParticipantFilter, params domain.PaginationParams) ([]*domain.Profile, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	filter.ExcludeUserID = userID
	profiles, total, err := s.profileRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, total, nil
}

func (s *networkingService) RequestConnection(ctx context.Context, senderID, receiverID string) (*domain.Connection, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	receiverID = strings.TrimSpace(receiverID)
	if receiverID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}
	if receiverID == senderID {
		return nil, fmt.Errorf("%w: cannot connect with yourself", domain.ErrInvalidInput)
	}
	if _, err := s.getProfile(ctx, receiverID); err != nil {
		return nil, err
	}

	// Either side may already have asked.
	if existing, err := s.findConnection(ctx, senderID, receiverID); err != nil || existing != nil {
		return existing, err
	}
	reverse, err := s.findConnection(ctx, receiverID, senderID)
	if err != nil {
		return nil, err
	}
	if reverse != nil {
		if reverse.Status == domain.ConnectionAccepted {
			return reverse, nil
		}
		return s.accept(ctx, receiverID, senderID)
	}

	conn := &domain.Connection{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     domain.ConnectionPending,
		CreatedAt:  s.now(),
	}
	if err := s.connectionRepo.Create(ctx, conn); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Lost a race with an identical request.
			return s.connectionRepo.Get(ctx, senderID, receiverID)
		}
		return nil, fmt.Errorf("create connection: %w", err)
	}
	return conn, nil
}

// findConnection returns nil without error when no request exists.
func (s *networkingService) findConnection(ctx context.Context, senderID, receiverID string) (*domain.Connection, error) {
	conn, err := s.connectionRepo.Get(ctx, senderID, receiverID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get connection: %w", err)
	}
	return conn, nil
}

func (s *networkingService) accept(ctx context.Context, senderID, receiverID string) (*domain.Connection, error) {
	conn, err := s.connectionRepo.Accept(ctx, senderID, receiverID, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: no pending request from %s", domain.ErrNotFound, senderID)
		}
		return nil, fmt.Errorf("accept connection: %w", err)
	}
	return conn, nil
}

// AcceptConnection is idempotent: accepting an already accepted request returns it.
func (s *networkingService) AcceptConnection(ctx context.Context, receiverID, senderID string) (*domain.Connection, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conn, err := s.findConnection(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, fmt.Errorf("%w: no pending request from %s", domain.ErrNotFound, senderID)
	}
	if conn.Status == domain.ConnectionAccepted {
		return conn, nil
	}
	return s.accept(ctx, senderID, receiverID)
}

func (s *networkingService) ListConnections(ctx context.Context, userID string) ([]*domain.Connection, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conns, err := s.connectionRepo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}
	return conns, nil
}

func (s *networkingService) ListPendingRequests(ctx context.Context, userID string) ([]*domain.Connection, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conns, err := s.connectionRepo.ListPending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	return conns, nil
}
