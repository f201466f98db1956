package sim

import (
	"bytes"
	"strings"
	"testing"

	"rcpower/internal/battery"
)

func TestColorStdoutWriter_OverviewOnce(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &ColorStdoutWriter{cfg: battery.Config{CapacitymAh: 1500, UseReserveRule: true}, out: buf}

	rows := sampleRows()
	if err := w.Write(rows[0]); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := w.Write(rows[1]); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	output := buf.String()
	if got := strings.Count(output, "Monitor Configuration:"); got != 1 {
		t.Errorf("expected overview exactly once, got %d", got)
	}
	if !strings.Contains(output, "Effective capacity (mAh):") {
		t.Errorf("overview missing effective capacity: %q", output)
	}
	if !strings.Contains(output, "\x1b[") {
		t.Errorf("expected color codes in output: %q", output)
	}
	if !strings.Contains(output, "eta=--") {
		t.Errorf("sentinel ETA should render as --: %q", output)
	}
}

func TestColorStdoutWriter_StatusSignal(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &ColorStdoutWriter{cfg: battery.Config{}, out: buf}
	if err := w.WriteStatus(Status{Phase: PhaseStopped, Signal: battery.SignalDurationReached}); err != nil {
		t.Fatalf("status write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "signal=duration_reached") {
		t.Errorf("expected signal in output: %q", buf.String())
	}
}
