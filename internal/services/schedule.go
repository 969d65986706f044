package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"conferenceagenda/internal/domain"
	"conferenceagenda/internal/schedule"
)

type scheduleService struct {
	logger         *slog.Logger
	sessionRepo    domain.SessionRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewScheduleService creates a ScheduleService backed by the given session repository.
func NewScheduleService(logger *slog.Logger, sessionRepo domain.SessionRepository, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{
		logger:         logger,
		sessionRepo:    sessionRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *scheduleService) ListSessions(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if filter.Date != "" {
		if _, err := time.Parse(domain.DateLayout, filter.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}
	switch filter.SortBy {
	case "", schedule.SortByTime, schedule.SortByTrack:
	default:
		return nil, fmt.Errorf("%w: sort must be %q or %q", domain.ErrInvalidInput, schedule.SortByTime, schedule.SortByTrack)
	}

	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return schedule.Sort(schedule.Filter(sessions, filter.Date, filter.Track), filter.SortBy), nil
}

func (s *scheduleService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sess, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *scheduleService) ListDays(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return schedule.Days(sessions), nil
}

func (s *scheduleService) ListTracks(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return schedule.Tracks(sessions), nil
}

func (s *scheduleService) ListSessionsBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(speaker) == "" {
		return nil, fmt.Errorf("%w: speaker name is required", domain.ErrInvalidInput)
	}
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return schedule.Sort(schedule.BySpeaker(sessions, speaker), schedule.SortByTime), nil
}

// ImportSessions validates the whole batch before writing any of it. Sessions without an id
// get one derived from title, date, start time and location. Sessions that have neither an
// end time nor a duration are stored but logged, since they can never conflict.
func (s *scheduleService) ImportSessions(ctx context.Context, sessions []*domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	var errs []string
	for i, sess := range sessions {
		if sess == nil {
			errs = append(errs, fmt.Sprintf("session %d is null", i))
			continue
		}
		if sess.ID == "" {
			sess.ID = domain.SessionIDFor(sess.Title, sess.Date, sess.StartTime, sess.Location)
		}
		if sess.EndTime != nil && *sess.EndTime == "" {
			sess.EndTime = nil
		}
		if sess.CreatedAt.IsZero() {
			sess.CreatedAt = now
		}
		sess.UpdatedAt = now
		if err := sess.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("session %q: %v", sess.ID, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}

	for _, sess := range sessions {
		if end, ok := schedule.EffectiveEndTime(sess); ok {
			s.logger.DebugContext(ctx, "importing session", "session_id", sess.ID, "date", sess.Date,
				"start_time", sess.StartTime, "end_time", end)
		} else {
			s.logger.WarnContext(ctx, "session has no time window and will never conflict",
				"session_id", sess.ID, "start_time", sess.StartTime)
		}
		if err := s.sessionRepo.Upsert(ctx, sess); err != nil {
			return fmt.Errorf("upsert session %q: %w", sess.ID, err)
		}
	}
	s.logger.InfoContext(ctx, "sessions imported", "count", len(sessions))
	return nil
}
