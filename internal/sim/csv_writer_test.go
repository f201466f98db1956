package sim

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rcpower/internal/battery"
)

func sampleRows() []battery.SampleRow {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []battery.SampleRow{
		{RunID: "run-1", TimeS: 0.1, CurrentA: 5.25, ConsumedmAh: 0.1458, RemainingmAh: 1199.86, ETAMin: 2.28, Timestamp: ts},
		{RunID: "run-1", TimeS: 0.2, CurrentA: 0.05, ConsumedmAh: 0.1459, RemainingmAh: 1199.84, ETAMin: battery.ETASentinel, Timestamp: ts.Add(100 * time.Millisecond)},
	}
}

func TestCSVWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	if err := w.WriteBatch(sampleRows()); err != nil {
		t.Fatalf("WriteBatch failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Time (s),Current (A),Consumed (mAh),Remaining (mAh),Est. Flight (min)" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "0.1,5.25,0.1,1199.9,2.3" {
		t.Errorf("unexpected row formatting: %s", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",--") {
		t.Errorf("sentinel ETA should render as --: %s", lines[2])
	}
}

func TestExportCSV_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := ExportCSV(path, sampleRows()); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if !strings.HasPrefix(string(data), "Time (s),") {
		t.Errorf("export missing header: %q", string(data))
	}
}

func TestExportCSV_EmptyLogWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ExportCSV(path, nil); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if strings.TrimSpace(string(data)) != strings.Join(CSVHeader, ",") {
		t.Errorf("expected header only, got %q", string(data))
	}
}
