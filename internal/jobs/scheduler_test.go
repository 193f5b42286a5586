package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]Job
}

func newMemoryStore() *memoryStore {
	return &memoryStore{jobs: make(map[uuid.UUID]Job)}
}

func (m *memoryStore) Schedule(_ context.Context, job Job) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jobs {
		if j.Hook == job.Hook && j.Key == job.Key {
			return false, nil
		}
	}
	m.jobs[job.ID] = job
	return true, nil
}

func (m *memoryStore) Exists(_ context.Context, hook, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jobs {
		if j.Hook == hook && j.Key == key {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryStore) Unschedule(_ context.Context, hook, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, j := range m.jobs {
		if j.Hook == hook && j.Key == key {
			delete(m.jobs, id)
			n++
		}
	}
	return n, nil
}

func (m *memoryStore) Due(_ context.Context, now time.Time, limit int) ([]Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var due []Job
	for _, j := range m.jobs {
		if !j.NextRunAt.After(now) && len(due) < limit {
			due = append(due, j)
		}
	}
	return due, nil
}

func (m *memoryStore) Reschedule(_ context.Context, id uuid.UUID, next time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil
	}
	j.NextRunAt = next
	m.jobs[id] = j
	return nil
}

func (m *memoryStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}

func newTestScheduler(store Store, now time.Time) *Scheduler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(logger, store, Options{PollInterval: time.Hour, Workers: 2, BatchSize: 10})
	s.now = func() time.Time { return now }
	return s
}

func TestScheduler_ScheduleRecurring_Idempotent(t *testing.T) {
	store := newMemoryStore()
	now := time.Now()
	s := newTestScheduler(store, now)
	ctx := context.Background()

	created, err := s.ScheduleRecurring(ctx, "hook", "1", now.Add(time.Hour), time.Hour)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.ScheduleRecurring(ctx, "hook", "1", now.Add(time.Hour), time.Hour)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, 1, store.count())

	scheduled, err := s.IsScheduled(ctx, "hook", "1")
	require.NoError(t, err)
	assert.True(t, scheduled)
}

func TestScheduler_Tick(t *testing.T) {
	store := newMemoryStore()
	now := time.Now()
	s := newTestScheduler(store, now)
	ctx := context.Background()

	var calls sync.Map
	s.Register("hook", func(_ context.Context, key string) error {
		calls.Store(key, true)
		return nil
	})

	_, err := s.ScheduleRecurring(ctx, "hook", "due", now.Add(-time.Minute), time.Hour)
	require.NoError(t, err)
	_, err = s.ScheduleRecurring(ctx, "hook", "later", now.Add(time.Minute), time.Hour)
	require.NoError(t, err)

	s.Tick(ctx)

	_, ranDue := calls.Load("due")
	_, ranLater := calls.Load("later")
	assert.True(t, ranDue)
	assert.False(t, ranLater)

	due, err := store.Due(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, due, "ran job must be pushed one interval ahead")
}

func TestScheduler_Tick_HandlerUnschedules(t *testing.T) {
	store := newMemoryStore()
	now := time.Now()
	s := newTestScheduler(store, now)
	ctx := context.Background()

	s.Register("hook", func(ctx context.Context, key string) error {
		return s.Unschedule(ctx, "hook", key)
	})

	_, err := s.ScheduleRecurring(ctx, "hook", "1", now.Add(-time.Second), time.Hour)
	require.NoError(t, err)

	s.Tick(ctx)

	assert.Zero(t, store.count())
}

func TestScheduler_Tick_SwallowsErrorsAndPanics(t *testing.T) {
	store := newMemoryStore()
	now := time.Now()
	s := newTestScheduler(store, now)
	ctx := context.Background()

	var runs atomic.Int32
	s.Register("failing", func(context.Context, string) error {
		runs.Add(1)
		return errors.New("provider down")
	})
	s.Register("panicking", func(context.Context, string) error {
		runs.Add(1)
		panic("boom")
	})

	_, err := s.ScheduleRecurring(ctx, "failing", "1", now.Add(-time.Second), time.Hour)
	require.NoError(t, err)
	_, err = s.ScheduleRecurring(ctx, "panicking", "2", now.Add(-time.Second), time.Hour)
	require.NoError(t, err)

	assert.NotPanics(t, func() { s.Tick(ctx) })
	assert.Equal(t, int32(2), runs.Load())
	assert.Equal(t, 2, store.count(), "failed jobs stay scheduled")
}

func TestScheduler_Tick_SkipsKeyInFlight(t *testing.T) {
	store := newMemoryStore()
	now := time.Now()
	s := newTestScheduler(store, now)
	ctx := context.Background()

	var runs atomic.Int32
	s.Register("hook", func(context.Context, string) error {
		runs.Add(1)
		return nil
	})

	_, err := s.ScheduleRecurring(ctx, "hook", "1", now.Add(-time.Second), time.Hour)
	require.NoError(t, err)

	require.True(t, s.acquire(Job{Hook: "hook", Key: "1"}))
	s.Tick(ctx)
	assert.Zero(t, runs.Load())

	s.release(Job{Hook: "hook", Key: "1"})
	s.Tick(ctx)
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_Tick_UnknownHook(t *testing.T) {
	store := newMemoryStore()
	now := time.Now()
	s := newTestScheduler(store, now)
	ctx := context.Background()

	_, err := s.ScheduleRecurring(ctx, "unknown", "1", now.Add(-time.Second), time.Hour)
	require.NoError(t, err)

	s.Tick(ctx)

	due, err := store.Due(ctx, now, 10)
	require.NoError(t, err)
	assert.Len(t, due, 1)
}
