// Package feed turns the session store into a live schedule feed by polling it on a cron
// schedule and pushing changed snapshots to subscribers.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"conferenceagenda/internal/domain"
	"conferenceagenda/internal/schedule"

	"github.com/robfig/cron/v3"
)

// DefaultSpec refreshes every 30 seconds.
const DefaultSpec = "@every 30s"

// Poller implements domain.SessionFeed. Each subscription owns its own cron scheduler, so
// closing one never affects another.
type Poller struct {
	logger  *slog.Logger
	repo    domain.SessionRepository
	spec    string
	timeout time.Duration
}

// NewPoller returns a feed that reloads sessions from repo on the cron spec (standard
// five-field syntax or descriptors such as "@every 1m"). An empty spec uses DefaultSpec.
func NewPoller(logger *slog.Logger, repo domain.SessionRepository, spec string, timeout time.Duration) *Poller {
	if spec == "" {
		spec = DefaultSpec
	}
	return &Poller{
		logger:  logger,
		repo:    repo,
		spec:    spec,
		timeout: timeout,
	}
}

var _ domain.SessionFeed = (*Poller)(nil)

type subscription struct {
	// ctx is the subscriber's context; refreshes inherit its values and cancellation.
	ctx    context.Context
	poller *Poller
	fn     func([]*domain.Session)
	cron   *cron.Cron

	mu     sync.Mutex
	last   []*domain.Session
	closed atomic.Bool
	once   sync.Once
	done   chan struct{}
}

// Subscribe loads the current snapshot and passes it to fn before returning. Later
// snapshots are delivered from the scheduler goroutine, only when they differ from the
// previous one. The subscription ends when Close is called or ctx is done.
func (p *Poller) Subscribe(ctx context.Context, fn func([]*domain.Session)) (domain.Subscription, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: callback is required", domain.ErrInvalidInput)
	}
	sched, err := cron.ParseStandard(p.spec)
	if err != nil {
		return nil, fmt.Errorf("%w: refresh schedule %q: %v", domain.ErrInvalidInput, p.spec, err)
	}

	initial, err := p.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	sub := &subscription{
		ctx:    ctx,
		poller: p,
		fn:     fn,
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		last:   initial,
		done:   make(chan struct{}),
	}
	fn(initial)

	sub.cron.Schedule(sched, cron.FuncJob(sub.refresh))
	sub.cron.Start()
	go func() {
		select {
		case <-ctx.Done():
			sub.Close()
		case <-sub.done:
		}
	}()
	return sub, nil
}

func (p *Poller) load(ctx context.Context) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	sessions, err := p.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Sort(sessions, schedule.SortByTime), nil
}

// refresh reloads the snapshot and delivers it if it changed. Load failures are logged and
// the previous snapshot is kept.
func (s *subscription) refresh() {
	if s.closed.Load() {
		return
	}
	sessions, err := s.poller.load(s.ctx)
	if err != nil {
		if s.ctx.Err() == nil {
			s.poller.logger.WarnContext(s.ctx, "session feed refresh failed", "error", err)
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() || reflect.DeepEqual(s.last, sessions) {
		return
	}
	s.last = sessions
	s.fn(sessions)
}

// Close stops the scheduler. No delivery starts after Close returns; one already running
// may finish. Calling Close again is a no-op.
func (s *subscription) Close() {
	s.once.Do(func() {
		s.closed.Store(true)
		s.cron.Stop()
		close(s.done)
	})
}
