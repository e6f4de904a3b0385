package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"olymstats/adapters/csvio"
	"olymstats/adapters/excel"
	"olymstats/adapters/postgres"
	appstats "olymstats/adapters/stats"
	"olymstats/app"
	"olymstats/internal"
	"olymstats/internal/cleaning"
	"olymstats/internal/config"
)

func main() {
	// .env is optional; environment variables win
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load configuration: %v", err)
		os.Exit(1)
	}

	service, cleanup, err := buildService(cfg, logger)
	if err != nil {
		logger.Error("wire services: %v", err)
		os.Exit(1)
	}
	defer cleanup()

	result, err := service.Run(context.Background())
	if err != nil {
		logger.Error("run report: %v", err)
		os.Exit(1)
	}

	fmt.Printf("run %s finished: %d rows cleaned, %d views computed\n",
		result.RunID, result.Cleaned.Len(), len(result.Views))
	for _, line := range result.Report.Lines {
		fmt.Println("  " + line)
	}
}

func buildService(cfg *config.Config, logger *internal.Logger) (*app.ReportService, func(), error) {
	pipeline, err := cleaning.NewPipeline(cleaning.DefaultOptions(),
		cleaning.WithScaler(appstats.NewStandardScaler()),
		cleaning.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, err
	}

	opts := []app.ReportOption{
		app.WithServiceLogger(logger),
		app.WithTopCountries(cfg.Output.TopNOC),
		app.WithExporter(csvio.NewWriter(cfg.Output.Dir)),
	}
	if cfg.Output.ExcelFile != "" {
		opts = append(opts, app.WithExporter(excel.NewExporter(cfg.Output.ExcelFile)))
	}

	cleanup := func() {}
	if cfg.Database.URL != "" {
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { db.Close() }
		repo := postgres.NewResultRepository(db)
		if err := repo.InitSchema(context.Background()); err != nil {
			db.Close()
			return nil, nil, err
		}
		opts = append(opts, app.WithRepository(repo))
	}

	reader := csvio.NewReader(cfg.Data.CSVFile)
	return app.NewReportService(reader, pipeline, opts...), cleanup, nil
}
