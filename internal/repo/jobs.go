package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/jobs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// jobStore keeps scheduled jobs, unique per (hook, job_key).
type jobStore struct {
	base
}

func NewJobStore(db *sqlx.DB) *jobStore {
	return &jobStore{base: newBase(db)}
}

func (s *jobStore) Schedule(ctx context.Context, job jobs.Job) (bool, error) {
	query, args := s.qb.Insert("scheduled_jobs").
		Columns("id", "hook", "job_key", "next_run_at", "interval_ms").
		Values(job.ID, job.Hook, job.Key, job.NextRunAt, job.Interval.Milliseconds()).
		Suffix("ON CONFLICT (hook, job_key) DO NOTHING").
		MustSql()

	res, err := s.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to insert job: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}

func (s *jobStore) Exists(ctx context.Context, hook, key string) (bool, error) {
	query, args := s.qb.Select("1").
		From("scheduled_jobs").
		Where(sq.Eq{"hook": hook, "job_key": key}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		MustSql()

	var exists bool
	if err := s.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check job: %w", err)
	}
	return exists, nil
}

func (s *jobStore) Unschedule(ctx context.Context, hook, key string) (int64, error) {
	query, args := s.qb.Delete("scheduled_jobs").
		Where(sq.Eq{"hook": hook, "job_key": key}).
		MustSql()

	res, err := s.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete jobs: %w", err)
	}
	return res.RowsAffected()
}

func (s *jobStore) Due(ctx context.Context, now time.Time, limit int) ([]jobs.Job, error) {
	query, args := s.qb.Select("id", "hook", "job_key", "next_run_at", "interval_ms").
		From("scheduled_jobs").
		Where(sq.LtOrEq{"next_run_at": now}).
		OrderBy("next_run_at").
		Limit(uint64(limit)).
		MustSql()

	var rows []Job
	if err := s.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select due jobs: %w", err)
	}

	result := make([]jobs.Job, 0, len(rows))
	for _, row := range rows {
		result = append(result, JobToEntity(row))
	}
	return result, nil
}

func (s *jobStore) Reschedule(ctx context.Context, id uuid.UUID, next time.Time) error {
	query, args := s.qb.Update("scheduled_jobs").
		Set("next_run_at", next).
		Where(sq.Eq{"id": id}).
		MustSql()

	if _, err := s.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to reschedule job: %w", err)
	}
	return nil
}
