package session

import (
	"context"
	"database/sql"
	"time"
)

// RunRecord is one script run's lifecycle.
type RunRecord struct {
	RunID     string
	StartedAt time.Time
	EndedAt   sql.NullTime
}

// RunRepo persists run history.
type RunRepo struct {
	db *sql.DB
}

func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

func (r *RunRepo) Start(ctx context.Context, runID string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO runs(run_id, started_at) VALUES (?, ?)
	ON CONFLICT(run_id) DO NOTHING;
	`, runID, Now())
	return err
}

func (r *RunRepo) Finish(ctx context.Context, runID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE runs SET ended_at = ? WHERE run_id = ?`, Now(), runID)
	return err
}

// List returns runs newest first.
func (r *RunRepo) List(ctx context.Context) ([]RunRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT run_id, started_at, ended_at FROM runs ORDER BY started_at DESC, run_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.RunID, &rec.StartedAt, &rec.EndedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
