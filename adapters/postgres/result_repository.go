// Package postgres persists pipeline runs and their views
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"olymstats/domain/core"
	"olymstats/domain/views"
	"olymstats/internal/errors"
	"olymstats/ports"
)

// Connect opens a postgres connection pool
func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "connect to postgres")
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// ResultRepository stores cleaning runs and aggregate views in postgres
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a repository over an open connection pool
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

var _ ports.ResultRepository = (*ResultRepository)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS pipeline_runs (
	run_id     TEXT PRIMARY KEY,
	log_lines  JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS run_views (
	run_id     TEXT NOT NULL REFERENCES pipeline_runs(run_id) ON DELETE CASCADE,
	view_name  TEXT NOT NULL,
	view_kind  TEXT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (run_id, view_name)
);
`

// InitSchema creates the result tables if they do not exist
func (r *ResultRepository) InitSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "initialize result schema")
	}
	return nil
}

// SaveRun records a pipeline run and its cleaning log
func (r *ResultRepository) SaveRun(ctx context.Context, runID core.RunID, logLines []string) error {
	payload, err := json.Marshal(logLines)
	if err != nil {
		return errors.Wrap(err, "marshal run log")
	}
	query := `
		INSERT INTO pipeline_runs (run_id, log_lines)
		VALUES ($1, $2)
		ON CONFLICT (run_id) DO UPDATE SET log_lines = EXCLUDED.log_lines`
	if _, err := r.db.ExecContext(ctx, query, runID.String(), payload); err != nil {
		return errors.Wrapf(err, "save run %s", runID)
	}
	return nil
}

// SaveViews stores the aggregate views computed for a run
func (r *ResultRepository) SaveViews(ctx context.Context, runID core.RunID, vs []views.View) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO run_views (run_id, view_name, view_kind, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (run_id, view_name) DO UPDATE SET
			view_kind = EXCLUDED.view_kind,
			payload = EXCLUDED.payload`
	for _, v := range vs {
		payload, err := json.Marshal(v)
		if err != nil {
			return errors.Wrapf(err, "marshal view %s", v.ViewName())
		}
		if _, err := tx.ExecContext(ctx, query, runID.String(), v.ViewName(), string(v.ViewKind()), payload); err != nil {
			return errors.Wrapf(err, "save view %s for run %s", v.ViewName(), runID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit views")
	}
	return nil
}

// GetRunLog returns the cleaning log of a stored run
func (r *ResultRepository) GetRunLog(ctx context.Context, runID core.RunID) ([]string, error) {
	var payload []byte
	query := `SELECT log_lines FROM pipeline_runs WHERE run_id = $1`
	if err := r.db.GetContext(ctx, &payload, query, runID.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrRunNotFound
		}
		return nil, errors.Wrapf(err, "load run %s", runID)
	}
	var lines []string
	if err := json.Unmarshal(payload, &lines); err != nil {
		return nil, errors.Wrapf(err, "decode run log %s", runID)
	}
	return lines, nil
}
