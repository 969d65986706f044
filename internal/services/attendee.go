package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"conferenceagenda/internal/agenda"
	"conferenceagenda/internal/domain"
	"conferenceagenda/internal/schedule"
)

type attendeeService struct {
	sessionRepo      domain.SessionRepository
	registrationRepo domain.RegistrationRepository
	contextTimeout   time.Duration
}

// NewAttendeeService creates an AttendeeService with the given repositories.
func NewAttendeeService(
	sessionRepo domain.SessionRepository,
	registrationRepo domain.RegistrationRepository,
	timeout time.Duration,
) domain.AttendeeService {
	return &attendeeService{
		sessionRepo:      sessionRepo,
		registrationRepo: registrationRepo,
		contextTimeout:   timeout,
	}
}

func (s *attendeeService) getSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *attendeeService) Register(ctx context.Context, userID, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.getSession(ctx, sessionID); err != nil {
		return err
	}
	if err := s.registrationRepo.Add(ctx, userID, sessionID); err != nil {
		return fmt.Errorf("add registration: %w", err)
	}
	return nil
}

func (s *attendeeService) Unregister(ctx context.Context, userID, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.registrationRepo.Remove(ctx, userID, sessionID); err != nil {
		return fmt.Errorf("remove registration: %w", err)
	}
	return nil
}

func (s *attendeeService) CheckConflicts(ctx context.Context, userID, sessionID string) (*domain.ConflictCheck, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.checkConflicts(ctx, userID, sessionID)
}

func (s *attendeeService) checkConflicts(ctx context.Context, userID, sessionID string) (*domain.ConflictCheck, error) {
	candidate, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	ids, err := s.registrationRepo.ListSessionIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	registered, err := s.sessionRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list registered sessions: %w", err)
	}
	return &domain.ConflictCheck{
		Candidate:  candidate,
		Registered: agenda.NewSet(ids...).Has(candidate.ID),
		Conflicts:  schedule.FindConflicts(candidate, schedule.Sort(registered, schedule.SortByTime)),
	}, nil
}

// ReplaceConflicts is the confirmed path of the register flow: every session that currently
// conflicts with the candidate must appear in confirmedIDs, otherwise nothing is changed.
// Confirmed ids that no longer conflict are ignored. The removed sessions are returned.
func (s *attendeeService) ReplaceConflicts(ctx context.Context, userID, sessionID string, confirmedIDs []string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	check, err := s.checkConflicts(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	confirmed := agenda.NewSet(confirmedIDs...)
	var unconfirmed []string
	for _, c := range check.Conflicts {
		if !confirmed.Has(c.ID) {
			unconfirmed = append(unconfirmed, c.ID)
		}
	}
	if len(unconfirmed) > 0 {
		return nil, fmt.Errorf("%w: unconfirmed conflicting sessions %s", domain.ErrConflict, strings.Join(unconfirmed, ", "))
	}

	for _, c := range check.Conflicts {
		if err := s.registrationRepo.Remove(ctx, userID, c.ID); err != nil {
			return nil, fmt.Errorf("remove conflicting registration %q: %w", c.ID, err)
		}
	}
	if err := s.registrationRepo.Add(ctx, userID, sessionID); err != nil {
		return nil, fmt.Errorf("add registration: %w", err)
	}
	return check.Conflicts, nil
}

func (s *attendeeService) ListRegisteredIDs(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ids, err := s.registrationRepo.ListSessionIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return agenda.NewSet(ids...).IDs(), nil
}

// ListMyAgenda returns the user's registered sessions in display order. Registrations whose
// session has since been removed from the schedule are skipped.
func (s *attendeeService) ListMyAgenda(ctx context.Context, userID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ids, err := s.registrationRepo.ListSessionIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	sessions, err := s.sessionRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list registered sessions: %w", err)
	}
	return schedule.Sort(sessions, schedule.SortByTime), nil
}
