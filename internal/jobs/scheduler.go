// Package jobs runs recurring background jobs keyed by (hook, key).
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Job struct {
	ID        uuid.UUID
	Hook      string
	Key       string
	NextRunAt time.Time
	Interval  time.Duration
}

// Handler runs one job. Errors and panics are logged, never propagated.
type Handler func(ctx context.Context, key string) error

type Store interface {
	// Schedule inserts the job unless one with the same hook and key exists.
	Schedule(ctx context.Context, job Job) (bool, error)
	Exists(ctx context.Context, hook, key string) (bool, error)
	Unschedule(ctx context.Context, hook, key string) (int64, error)
	Due(ctx context.Context, now time.Time, limit int) ([]Job, error)
	Reschedule(ctx context.Context, id uuid.UUID, next time.Time) error
}

type Options struct {
	PollInterval time.Duration
	Workers      int
	BatchSize    int
}

type Scheduler struct {
	logger *slog.Logger
	store  Store
	opts   Options
	now    func() time.Time

	mu       sync.Mutex
	handlers map[string]Handler
	inFlight map[string]struct{}
}

func New(logger *slog.Logger, store Store, opts Options) *Scheduler {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Minute
	}

	return &Scheduler{
		logger:   logger.With(slog.String("service", "jobs")),
		store:    store,
		opts:     opts,
		now:      time.Now,
		handlers: make(map[string]Handler),
		inFlight: make(map[string]struct{}),
	}
}

func (s *Scheduler) Register(hook string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[hook] = h
}

// ScheduleRecurring adds a job running first at firstRun and then every interval.
// It returns false when the job was already scheduled.
func (s *Scheduler) ScheduleRecurring(ctx context.Context, hook, key string, firstRun time.Time, interval time.Duration) (bool, error) {
	created, err := s.store.Schedule(ctx, Job{
		ID:        uuid.New(),
		Hook:      hook,
		Key:       key,
		NextRunAt: firstRun,
		Interval:  interval,
	})
	if err != nil {
		return false, fmt.Errorf("failed to schedule job: %w", err)
	}
	return created, nil
}

func (s *Scheduler) IsScheduled(ctx context.Context, hook, key string) (bool, error) {
	return s.store.Exists(ctx, hook, key)
}

// Unschedule removes every job for hook and key. A run in flight completes.
func (s *Scheduler) Unschedule(ctx context.Context, hook, key string) error {
	n, err := s.store.Unschedule(ctx, hook, key)
	if err != nil {
		return fmt.Errorf("failed to unschedule job: %w", err)
	}
	s.logger.DebugContext(ctx, "jobs unscheduled", slog.String("hook", hook), slog.String("key", key), slog.Int64("count", n))
	return nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(s.opts.PollInterval)
		defer ticker.Stop()

		s.logger.Info("scheduler started", slog.Duration("poll_interval", s.opts.PollInterval))
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("scheduler stopped")
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}()
	return nil
}

// Tick runs every due job once and waits for them.
func (s *Scheduler) Tick(ctx context.Context) {
	now := s.now()

	due, err := s.store.Due(ctx, now, s.opts.BatchSize)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load due jobs", slog.Any("error", err))
		return
	}
	if len(due) == 0 {
		return
	}

	g := new(errgroup.Group)
	g.SetLimit(s.opts.Workers)

	for _, job := range due {
		handler, ok := s.handler(job.Hook)
		if !ok {
			s.logger.WarnContext(ctx, "no handler for job", slog.String("hook", job.Hook), slog.String("key", job.Key))
			continue
		}
		if !s.acquire(job) {
			continue
		}

		// Rescheduled before running so an unschedule made by the handler wins.
		if err := s.store.Reschedule(ctx, job.ID, now.Add(job.Interval)); err != nil {
			s.release(job)
			s.logger.ErrorContext(ctx, "failed to reschedule job", slog.String("hook", job.Hook), slog.String("key", job.Key), slog.Any("error", err))
			continue
		}

		g.Go(func() error {
			defer s.release(job)
			s.run(ctx, job, handler)
			return nil
		})
	}

	g.Wait()
}

func (s *Scheduler) run(ctx context.Context, job Job, handler Handler) {
	start := time.Now()
	outcome := "ok"

	defer func() {
		if r := recover(); r != nil {
			outcome = "panic"
			s.logger.ErrorContext(ctx, "job panicked", slog.String("hook", job.Hook), slog.String("key", job.Key), slog.Any("panic", r))
		}
		jobRunsTotal.WithLabelValues(job.Hook, outcome).Inc()
		jobRunDuration.WithLabelValues(job.Hook).Observe(time.Since(start).Seconds())
	}()

	if err := handler(ctx, job.Key); err != nil {
		outcome = "error"
		s.logger.ErrorContext(ctx, "job failed", slog.String("hook", job.Hook), slog.String("key", job.Key), slog.Any("error", err))
	}
}

func (s *Scheduler) handler(hook string) (Handler, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.handlers[hook]
	return h, ok
}

func (s *Scheduler) acquire(job Job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := job.Hook + "/" + job.Key
	if _, busy := s.inFlight[k]; busy {
		return false
	}
	s.inFlight[k] = struct{}{}
	return true
}

func (s *Scheduler) release(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, job.Hook+"/"+job.Key)
}
