package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"olymstats/adapters/csvio"
	appstats "olymstats/adapters/stats"
	"olymstats/app"
	"olymstats/internal"
	"olymstats/internal/api"
	"olymstats/internal/cleaning"
	"olymstats/internal/config"
)

func main() {
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load configuration: %v", err)
		os.Exit(1)
	}

	pipeline, err := cleaning.NewPipeline(cleaning.DefaultOptions(),
		cleaning.WithScaler(appstats.NewStandardScaler()),
		cleaning.WithLogger(logger),
	)
	if err != nil {
		logger.Error("build pipeline: %v", err)
		os.Exit(1)
	}

	service := app.NewReportService(
		csvio.NewReader(cfg.Data.CSVFile),
		pipeline,
		app.WithServiceLogger(logger),
		app.WithTopCountries(cfg.Output.TopNOC),
	)

	// The record set is static, so one run at startup serves all requests
	result, err := service.Run(context.Background())
	if err != nil {
		logger.Error("run report: %v", err)
		os.Exit(1)
	}

	server := api.NewServer(result, logger)
	addr := ":" + cfg.Server.Port
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("serving run %s on %s", result.RunID, addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("http server: %v", err)
		os.Exit(1)
	}
}
