// Package main provides the normalization entry point.
// Executes: load records + rates → classify → convert → rescale → report.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"indicator-engine/internal/config"
	"indicator-engine/internal/domain"
	"indicator-engine/internal/observability"
	"indicator-engine/internal/pipeline"
	"indicator-engine/internal/reporting"
)

func main() {
	recordsPath := flag.String("records", "", "Path to indicator records JSON file")
	ratesPath := flag.String("rates", "", "Path to FX rate table JSON file")
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	outPath := flag.String("out", "", "Path for normalized output JSON (default stdout)")
	reportPath := flag.String("report", "", "Path for Markdown audit report (optional)")
	csvPath := flag.String("csv", "", "Path for normalized data CSV (optional)")
	correctionsCSVPath := flag.String("corrections-csv", "", "Path for FX rate corrections CSV (optional)")
	metricsAddr := flag.String("metrics-addr", "", "Address to serve Prometheus /metrics on (optional, e.g. :9090)")
	flag.Parse()

	if *recordsPath == "" || *ratesPath == "" {
		fmt.Fprintln(os.Stderr, "usage: normalize -records records.json -rates rates.json [-config engine.yaml] [-out out.json] [-report report.md] [-csv data.csv] [-corrections-csv corrections.csv] [-metrics-addr :9090]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, cancelling", "signal", sig.String())
		cancel()
	}()

	var records []domain.IndicatorRecord
	if err := readJSON(*recordsPath, &records); err != nil {
		logger.Error("loading records", "error", err)
		os.Exit(1)
	}
	var table domain.FXTable
	if err := readJSON(*ratesPath, &table); err != nil {
		logger.Error("loading rate table", "error", err)
		os.Exit(1)
	}

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", observability.Handler())
		go func() {
			logger.Info("serving metrics", "addr", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	runner := pipeline.NewRunner(cfg, pipeline.WithMetrics(observability.NewMetrics("")))

	start := time.Now()
	res, err := runner.Run(ctx, records, table)
	if err != nil {
		logger.Error("pipeline run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("pipeline run complete",
		"runId", res.RunID,
		"records", len(records),
		"normalized", len(res.Data),
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
		"corrections", len(res.Corrections),
		"duration", time.Since(start).String(),
	)

	if err := writeJSON(*outPath, res); err != nil {
		logger.Error("writing output", "error", err)
		os.Exit(1)
	}

	artifacts := artifactPaths{
		Report:         *reportPath,
		DataCSV:        *csvPath,
		CorrectionsCSV: *correctionsCSVPath,
	}
	written, err := writeArtifacts(res, artifacts, time.Now().UTC())
	if err != nil {
		logger.Error("writing artifacts", "error", err)
		os.Exit(1)
	}
	for _, path := range written {
		logger.Info("artifact written", "path", path)
	}
}

// artifactPaths names the optional report outputs. Empty paths are
// skipped.
type artifactPaths struct {
	Report         string // Markdown audit report
	DataCSV        string // normalized records CSV
	CorrectionsCSV string // FX rate correction audit CSV
}

// writeArtifacts renders and writes the requested report artifacts,
// returning the paths actually written.
func writeArtifacts(res *pipeline.Result, paths artifactPaths, now time.Time) ([]string, error) {
	var written []string

	if paths.Report != "" {
		report := reporting.Build(res, now)
		if err := os.WriteFile(paths.Report, []byte(reporting.RenderMarkdown(report)), 0o644); err != nil {
			return written, err
		}
		written = append(written, paths.Report)
	}
	if paths.DataCSV != "" {
		if err := os.WriteFile(paths.DataCSV, []byte(reporting.RenderDataCSV(res.Data)), 0o644); err != nil {
			return written, err
		}
		written = append(written, paths.DataCSV)
	}
	if paths.CorrectionsCSV != "" {
		if err := os.WriteFile(paths.CorrectionsCSV, []byte(reporting.RenderCorrectionsCSV(res.Corrections)), 0o644); err != nil {
			return written, err
		}
		written = append(written, paths.CorrectionsCSV)
	}
	return written, nil
}

func newLogger(level string) *slog.Logger {
	var lv slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
