// Package app wires the cleaning pipeline and the aggregation engine into
// application-level workflows
package app

import (
	"context"

	"olymstats/domain/core"
	"olymstats/domain/table"
	"olymstats/domain/views"
	"olymstats/internal"
	"olymstats/internal/analysis"
	"olymstats/internal/cleaning"
	"olymstats/internal/errors"
	"olymstats/ports"
)

// ReportService runs the full read, clean, analyze, export workflow
type ReportService struct {
	reader    ports.TableReader
	pipeline  *cleaning.Pipeline
	exporters []ports.ViewExporter
	repo      ports.ResultRepository
	topNOC    int
	log       *internal.Logger
}

// ReportOption customizes service construction
type ReportOption func(*ReportService)

// WithExporter adds a view export destination. Exporters run in the order
// they were added.
func WithExporter(e ports.ViewExporter) ReportOption {
	return func(s *ReportService) { s.exporters = append(s.exporters, e) }
}

// WithRepository enables run persistence
func WithRepository(r ports.ResultRepository) ReportOption {
	return func(s *ReportService) { s.repo = r }
}

// WithTopCountries sets how many per-country performance series to compute
func WithTopCountries(n int) ReportOption {
	return func(s *ReportService) { s.topNOC = n }
}

// WithServiceLogger sets the service logger
func WithServiceLogger(log *internal.Logger) ReportOption {
	return func(s *ReportService) { s.log = log }
}

// NewReportService creates the workflow service
func NewReportService(reader ports.TableReader, pipeline *cleaning.Pipeline, opts ...ReportOption) *ReportService {
	s := &ReportService{
		reader:   reader,
		pipeline: pipeline,
		topNOC:   20,
		log:      internal.DefaultLogger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Result holds everything one run produced
type Result struct {
	RunID   core.RunID
	Cleaned *table.Table
	Views   []views.View
	Report  *cleaning.Report
}

// Run executes the workflow: load the raw records, clean a copy, compute
// every registered view plus the top-country performance series, then export
// and optionally persist the results.
func (s *ReportService) Run(ctx context.Context) (*Result, error) {
	raw, err := s.reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.reader.Source())
	}
	s.log.Info("loaded %d rows from %s", raw.Len(), s.reader.Source())

	cleaned, report := s.pipeline.Run(raw)
	s.log.Info("run %s cleaned %d rows in %d stages", report.RunID, cleaned.Len(), len(report.Lines))

	engine := analysis.NewEngine(cleaned)
	vs, err := engine.ComputeAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "compute views")
	}
	for _, noc := range engine.TopCountries(s.topNOC) {
		vs = append(vs, engine.CountryPerformance(noc))
	}
	s.log.Info("run %s computed %d views", report.RunID, len(vs))

	for _, exporter := range s.exporters {
		if err := exporter.Export(vs); err != nil {
			return nil, errors.Wrap(err, "export views")
		}
	}

	if s.repo != nil {
		if err := s.repo.SaveRun(ctx, report.RunID, report.Lines); err != nil {
			return nil, errors.Wrap(err, "persist run")
		}
		if err := s.repo.SaveViews(ctx, report.RunID, vs); err != nil {
			return nil, errors.Wrap(err, "persist views")
		}
		s.log.Info("run %s persisted", report.RunID)
	}

	return &Result{
		RunID:   report.RunID,
		Cleaned: cleaned,
		Views:   vs,
		Report:  report,
	}, nil
}
