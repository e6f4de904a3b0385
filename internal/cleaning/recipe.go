package cleaning

import (
	"fmt"

	"olymstats/domain/table"
	"olymstats/internal"
	"olymstats/ports"
)

// recipeNumericColumns are the physique columns the recipe treats statistically
var recipeNumericColumns = []string{table.ColAge, table.ColHeight, table.ColWeight}

// FullRecipe builds the canonical ordered stage list for the athlete-event
// record set. The order is fixed: outlier correction must run before
// imputation so skewed values cannot bias the fill statistics, and the
// valid-range clamp runs after imputation so it bounds even synthesized
// values.
func FullRecipe(opts Options) ([]Stage, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	stages := []Stage{
		TrimSpace(),
		NormalizeMedals(),
	}

	if opts.RemoveExactDuplicates {
		stages = append(stages, DropDuplicates(nil, KeepFirst))
	}

	switch opts.HandleOutliers {
	case OutlierClip:
		for _, col := range recipeNumericColumns {
			stages = append(stages, ClipOutliersIQR(col, DefaultIQRMultiplier))
		}
	case OutlierRemove:
		for _, col := range recipeNumericColumns {
			stages = append(stages, DropOutliersIQR(col, DefaultIQRMultiplier))
		}
	case OutlierNone:
		// skip
	}

	for _, col := range recipeNumericColumns {
		stages = append(stages, FillNumeric(col, opts.FillNumeric, opts.UseGroupImputation, nil))
	}

	if opts.ClipToValid {
		for _, col := range []string{table.ColAge, table.ColHeight, table.ColWeight, table.ColYear} {
			stages = append(stages, ClipToValidRange(col))
		}
	}

	stages = append(stages,
		NormalizeCategoricals(),
		NormalizeTeamNames(),
		NormalizeEventNames(),
		ToInteger(table.ColAge),
		ToNumeric(table.ColHeight),
		ToNumeric(table.ColWeight),
	)

	return stages, nil
}

// Pipeline runs the full cleaning recipe. Configuration is validated and the
// scaling capability resolved once, at construction.
type Pipeline struct {
	opts      Options
	scaler    ports.Scaler
	scaleCols []string
	runner    *Runner
}

// PipelineOption customizes pipeline construction
type PipelineOption func(*Pipeline)

// WithScaler injects the standardization capability
func WithScaler(s ports.Scaler) PipelineOption {
	return func(p *Pipeline) { p.scaler = s }
}

// WithScaling appends a best-effort standardization stage for the given
// columns to the recipe
func WithScaling(cols ...string) PipelineOption {
	return func(p *Pipeline) {
		p.scaleCols = cols
		if len(cols) == 0 {
			p.scaleCols = recipeNumericColumns
		}
	}
}

// WithLogger sets the pipeline logger
func WithLogger(log *internal.Logger) PipelineOption {
	return func(p *Pipeline) { p.runner = NewRunner(log) }
}

// NewPipeline validates the options and builds a pipeline
func NewPipeline(opts Options, popts ...PipelineOption) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{opts: opts, runner: NewRunner(nil)}
	for _, o := range popts {
		o(p)
	}
	return p, nil
}

// Run cleans a private copy of the raw table and returns it with the run's
// cleaning log
func (p *Pipeline) Run(raw *table.Table) (*table.Table, *Report) {
	stages, err := FullRecipe(p.opts)
	if err != nil {
		// Options were validated at construction; a failure here is a bug.
		panic(err)
	}
	if p.scaleCols != nil {
		stages = append(stages, ScaleStandard(p.scaler, p.scaleCols...))
	}

	cleaned, report := p.runner.Run(raw, stages)
	report.Append(fmt.Sprintf("run_full_olympic_cleaning: pipeline complete, %d stages", len(stages)))
	return cleaned, report
}
