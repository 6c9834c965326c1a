package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"indicator-engine/internal/domain"
	"indicator-engine/internal/pipeline"
)

func testResult() *pipeline.Result {
	return &pipeline.Result{
		RunID: "run-cli",
		Data: []domain.NormalizedRecord{
			{
				IndicatorRecord: domain.IndicatorRecord{ID: "a", Name: "Exports of Goods", Unit: "EUR Million", Value: 70},
				Bucket:          domain.BucketMonetaryFlow,
				NormalizedValue: 76.09,
				NormalizedUnit:  "USD Million",
			},
		},
		Corrections: []domain.RateCorrection{
			{Currency: "KRW", Original: 1.325, Corrected: 1325},
		},
	}
}

func TestWriteArtifactsAll(t *testing.T) {
	dir := t.TempDir()
	paths := artifactPaths{
		Report:         filepath.Join(dir, "report.md"),
		DataCSV:        filepath.Join(dir, "data.csv"),
		CorrectionsCSV: filepath.Join(dir, "corrections.csv"),
	}

	written, err := writeArtifacts(testResult(), paths, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("expected 3 artifacts, got %v", written)
	}

	report, err := os.ReadFile(paths.Report)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(report), "Run: run-cli") {
		t.Errorf("report missing run id:\n%s", report)
	}

	data, err := os.ReadFile(paths.DataCSV)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "id,name,bucket,") {
		t.Errorf("unexpected data csv header: %q", data)
	}
	if !strings.Contains(string(data), "Exports of Goods") {
		t.Errorf("data csv missing record: %q", data)
	}

	corr, err := os.ReadFile(paths.CorrectionsCSV)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(corr), "KRW,1.325,1325") {
		t.Errorf("corrections csv missing row: %q", corr)
	}
}

func TestWriteArtifactsSkipsEmptyPaths(t *testing.T) {
	written, err := writeArtifacts(testResult(), artifactPaths{}, time.Now())
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	if len(written) != 0 {
		t.Errorf("expected nothing written, got %v", written)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "unknown"} {
		if logger := newLogger(level); logger == nil {
			t.Errorf("nil logger for level %q", level)
		}
	}
}
