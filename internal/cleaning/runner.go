package cleaning

import (
	"fmt"
	"time"

	"olymstats/domain/core"
	"olymstats/domain/table"
	"olymstats/internal"
)

// Report is the append-only cleaning log of one pipeline run. A new Report is
// created when a run starts; nothing from a previous run survives.
type Report struct {
	RunID      core.RunID `json:"run_id"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
	Lines      []string   `json:"lines"`
}

// Append records one log line
func (r *Report) Append(line string) {
	r.Lines = append(r.Lines, line)
}

// Runner executes an ordered stage list sequentially. Stages are strictly
// ordered: each must complete before the next starts, because later stages
// depend on the statistics of earlier ones.
type Runner struct {
	log *internal.Logger
}

// NewRunner creates a stage runner
func NewRunner(log *internal.Logger) *Runner {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &Runner{log: log}
}

// Run applies the stages to a private copy of src and returns the cleaned
// table with the run's cleaning log. Exactly one log line is appended per
// stage invocation.
func (r *Runner) Run(src *table.Table, stages []Stage) (*table.Table, *Report) {
	report := &Report{
		RunID:     core.RunID(core.NewID()),
		StartedAt: time.Now(),
	}

	working := src.Clone()
	for _, stage := range stages {
		outcome := stage.Apply(working)
		line := fmt.Sprintf("%s: %s", stage.Name, outcome.Detail)
		report.Append(line)
		r.log.Debug("stage %s", line)
	}
	report.FinishedAt = time.Now()

	return working, report
}
