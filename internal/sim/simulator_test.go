package sim

import (
	"errors"
	"math"
	"testing"

	"rcpower/internal/battery"
)

// MockWriter collects sample rows and status updates for validation.
type MockWriter struct {
	Rows     []battery.SampleRow
	Statuses []Status
}

func (w *MockWriter) Write(row battery.SampleRow) error {
	w.Rows = append(w.Rows, row)
	return nil
}

func (w *MockWriter) WriteStatus(st Status) error {
	w.Statuses = append(w.Statuses, st)
	return nil
}

func newTestSimulator(t *testing.T, cfg battery.Config, src battery.CurrentSource, w SampleWriter) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg, src, w)
	if err != nil {
		t.Fatalf("NewSimulator failed: %v", err)
	}
	return s
}

func TestNewSimulator_RejectsInvalidConfig(t *testing.T) {
	_, err := NewSimulator(battery.Config{CurrentMinA: 10, CurrentMaxA: 2}, nil, nil)
	if !errors.Is(err, battery.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSimulator_TickProducesSamples(t *testing.T) {
	cfg := battery.Config{CapacitymAh: 1500, UseReserveRule: true, SamplingIntervalS: 1, DurationS: 120, CurrentMinA: 2, CurrentMaxA: 10}
	writer := &MockWriter{}
	s := newTestSimulator(t, cfg, &battery.SequenceSource{Values: []float64{6}}, writer)

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Tick(1)
	s.Tick(1)

	if len(writer.Rows) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(writer.Rows))
	}
	if writer.Rows[0].RunID == "" {
		t.Error("sample missing run ID")
	}
	// 6 A for 1 s is 6/3.6 mAh.
	want := 6.0 / 3.6
	if math.Abs(writer.Rows[0].ConsumedmAh-want) > 1e-9 {
		t.Errorf("expected consumed %f mAh, got %f", want, writer.Rows[0].ConsumedmAh)
	}
	if writer.Rows[1].TimeS <= writer.Rows[0].TimeS {
		t.Error("sample times must be strictly increasing")
	}
}

func TestSimulator_InvariantsOverFullRun(t *testing.T) {
	cfg := battery.Config{CapacitymAh: 100, UseReserveRule: true, SamplingIntervalS: 1, DurationS: 1e9, CurrentMinA: 0, CurrentMaxA: 50}
	writer := &MockWriter{}
	s := newTestSimulator(t, cfg, battery.NewUniformSource(0, 50, 7), writer)

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 10000 && s.Phase() == PhaseRunning; i++ {
		s.Tick(1)
	}

	effective := cfg.EffectiveCapacitymAh()
	prevConsumed := 0.0
	prevTime := 0.0
	for i, r := range writer.Rows {
		if r.RemainingmAh < 0 || r.RemainingmAh > effective {
			t.Fatalf("sample %d: remaining %f outside [0, %f]", i, r.RemainingmAh, effective)
		}
		if r.ConsumedmAh < prevConsumed {
			t.Fatalf("sample %d: consumed decreased from %f to %f", i, prevConsumed, r.ConsumedmAh)
		}
		if r.TimeS <= prevTime {
			t.Fatalf("sample %d: time not strictly increasing", i)
		}
		prevConsumed = r.ConsumedmAh
		prevTime = r.TimeS
	}
	if s.Signal() != battery.SignalDepleted {
		t.Errorf("expected depletion, got signal %q", s.Signal())
	}
}

func TestSimulator_PauseResumeKeepsState(t *testing.T) {
	cfg := battery.Config{CapacitymAh: 1500, SamplingIntervalS: 1, DurationS: 120, CurrentMaxA: 10}
	s := newTestSimulator(t, cfg, battery.FixedSource(5), &MockWriter{})

	s.Start()
	s.Tick(1)
	before := s.Snapshot()
	runID := before.RunID

	s.Pause()
	if s.Phase() != PhasePaused {
		t.Fatalf("expected paused, got %s", s.Phase())
	}
	s.Pause() // no-op when already paused
	s.Tick(1) // dropped while paused
	if got := s.Snapshot(); got.ConsumedmAh != before.ConsumedmAh || got.Samples != before.Samples {
		t.Error("paused tick mutated state")
	}

	if err := s.Start(); err != nil {
		t.Fatalf("resume failed: %v", err)
	}
	if got := s.Snapshot(); got.RunID != runID {
		t.Error("resume must not start a new run")
	}
	s.Tick(1)
	if got := s.Snapshot(); got.Samples != before.Samples+1 {
		t.Errorf("expected one more sample after resume, got %d", got.Samples)
	}
}

func TestSimulator_ResetIdempotent(t *testing.T) {
	cfg := battery.Config{CapacitymAh: 1500, SamplingIntervalS: 1, DurationS: 120, CurrentMaxA: 10}
	s := newTestSimulator(t, cfg, battery.FixedSource(5), &MockWriter{})

	s.Start()
	s.Tick(1)
	s.Reset()
	first := s.Snapshot()
	s.Reset()
	second := s.Snapshot()

	for _, st := range []Status{first, second} {
		if st.Phase != PhaseIdle || st.ElapsedTotalS != 0 || st.ConsumedmAh != 0 || st.Samples != 0 || st.RunID != "" {
			t.Errorf("reset state not pristine: %+v", st)
		}
	}
}

func TestSimulator_DurationBoundaryDropsTick(t *testing.T) {
	cfg := battery.Config{CapacitymAh: 1500, SamplingIntervalS: 1, DurationS: 3, CurrentMaxA: 10}
	writer := &MockWriter{}
	s := newTestSimulator(t, cfg, battery.FixedSource(5), writer)

	s.Start()
	s.Tick(1)
	s.Tick(1)
	s.Tick(1) // reaches duration exactly: no sample, terminal signal

	if len(writer.Rows) != 2 {
		t.Fatalf("expected 2 samples (boundary tick dropped), got %d", len(writer.Rows))
	}
	if s.Phase() != PhaseStopped {
		t.Errorf("expected stopped, got %s", s.Phase())
	}
	if s.Signal() != battery.SignalDurationReached {
		t.Errorf("expected duration signal, got %q", s.Signal())
	}
	if err := s.Start(); !errors.Is(err, ErrRunComplete) {
		t.Errorf("expected ErrRunComplete after terminal signal, got %v", err)
	}
}

func TestSimulator_DepletionProducesFinalSample(t *testing.T) {
	// 3600 A for 1 s consumes exactly 1000 mAh.
	cfg := battery.Config{CapacitymAh: 1000, SamplingIntervalS: 1, DurationS: 1e9, CurrentMinA: 3600, CurrentMaxA: 3600}
	writer := &MockWriter{}
	s := newTestSimulator(t, cfg, battery.FixedSource(3600), writer)

	s.Start()
	s.Tick(1)

	if len(writer.Rows) != 1 {
		t.Fatalf("expected final sample at depletion, got %d rows", len(writer.Rows))
	}
	if writer.Rows[0].RemainingmAh != 0 {
		t.Errorf("expected remaining exactly 0, got %f", writer.Rows[0].RemainingmAh)
	}
	if s.Signal() != battery.SignalDepleted {
		t.Errorf("expected depleted signal, got %q", s.Signal())
	}
}

func TestSimulator_SentinelETA(t *testing.T) {
	cfg := battery.Config{CapacitymAh: 1500, SamplingIntervalS: 1, DurationS: 120, CurrentMaxA: 1}
	writer := &MockWriter{}
	s := newTestSimulator(t, cfg, battery.FixedSource(0.05), writer)

	s.Start()
	s.Tick(1)

	if writer.Rows[0].ETAMin != battery.ETASentinel {
		t.Errorf("expected sentinel ETA at 0.05 A, got %f", writer.Rows[0].ETAMin)
	}
}

func TestSimulator_StatusTransitions(t *testing.T) {
	cfg := battery.Config{CapacitymAh: 1500, SamplingIntervalS: 1, DurationS: 120, CurrentMaxA: 10}
	writer := &MockWriter{}
	s := newTestSimulator(t, cfg, battery.FixedSource(5), writer)

	s.Start()
	s.Pause()
	s.Start()
	s.Reset()

	want := []Phase{PhaseRunning, PhasePaused, PhaseRunning, PhaseIdle}
	if len(writer.Statuses) != len(want) {
		t.Fatalf("expected %d status updates, got %d", len(want), len(writer.Statuses))
	}
	for i, ph := range want {
		if writer.Statuses[i].Phase != ph {
			t.Errorf("status %d: expected %s, got %s", i, ph, writer.Statuses[i].Phase)
		}
	}
}
