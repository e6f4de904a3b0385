package ports

import (
	"context"

	"olymstats/domain/core"
	"olymstats/domain/views"
)

// ResultRepository persists the outcome of a cleaning/analysis run
type ResultRepository interface {
	// SaveRun records a pipeline run and its cleaning log
	SaveRun(ctx context.Context, runID core.RunID, logLines []string) error

	// SaveViews stores the aggregate views computed for a run
	SaveViews(ctx context.Context, runID core.RunID, vs []views.View) error

	// GetRunLog returns the cleaning log of a stored run
	GetRunLog(ctx context.Context, runID core.RunID) ([]string, error)
}
