package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"breaking_news/internal/domain"
)

type RunStateStore struct {
	db *sqlx.DB
}

func NewRunStateStore(db *sqlx.DB) *RunStateStore {
	return &RunStateStore{db: db}
}

func (s *RunStateStore) Get(ctx context.Context, pipeline string) (*domain.RunState, error) {
	var state domain.RunState
	query := `
		SELECT id, pipeline, last_run_at, total_enqueued, total_delivered
		FROM pipeline_runs
		WHERE pipeline = $1`

	err := s.db.GetContext(ctx, &state, query, pipeline)
	if err == sql.ErrNoRows {
		// First run of this pipeline
		return &domain.RunState{
			Pipeline:  pipeline,
			LastRunAt: time.Time{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RunStateStore) Update(ctx context.Context, state *domain.RunState) error {
	query := `
		INSERT INTO pipeline_runs (pipeline, last_run_at, total_enqueued, total_delivered)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (pipeline) DO UPDATE SET
			last_run_at = EXCLUDED.last_run_at,
			total_enqueued = EXCLUDED.total_enqueued,
			total_delivered = EXCLUDED.total_delivered`

	_, err := s.db.ExecContext(ctx, query,
		state.Pipeline,
		state.LastRunAt,
		state.TotalEnqueued,
		state.TotalDelivered,
	)
	return err
}
