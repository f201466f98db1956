// Simulator orchestrating coulomb-counting ticks over one battery run
package sim

import (
	"errors"
	"sync"
	"time"

	"rcpower/internal/battery"

	"github.com/google/uuid"
)

// ErrRunComplete is returned when Start is called after a run reached a
// terminal signal. Reset returns the simulator to the pre-start condition.
var ErrRunComplete = errors.New("run complete, reset required")

// Phase is the simulator lifecycle state.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
	PhaseStopped Phase = "stopped"
)

// Status is a snapshot of the simulator for status displays.
type Status struct {
	RunID                string         `json:"run_id"`
	Phase                Phase          `json:"phase"`
	Signal               battery.Signal `json:"signal"`
	EffectiveCapacitymAh float64        `json:"effective_capacity_mah"`
	ElapsedTotalS        float64        `json:"elapsed_total_s"`
	ConsumedmAh          float64        `json:"consumed_mah"`
	RemainingmAh         float64        `json:"remaining_mah"`
	Samples              int            `json:"samples"`
	Timestamp            time.Time      `json:"ts"`
}

// Simulator owns the mutable state of one discharge run. State is
// mutated only by Tick while running; pause freezes it, reset discards
// it. Access is mutex-serialized so the ticker goroutine and a UI
// goroutine can share one instance.
type Simulator struct {
	cfg    battery.Config
	source battery.CurrentSource
	writer SampleWriter
	now    func() time.Time

	mu                   sync.Mutex
	runID                string
	phase                Phase
	signal               battery.Signal
	effectiveCapacitymAh float64
	elapsedTotalS        float64
	consumedmAh          float64
	samples              []battery.SampleRow
}

// NewSimulator validates the config and prepares an idle simulator.
// A nil source defaults to a uniform random draw over the configured
// current range.
func NewSimulator(cfg battery.Config, source battery.CurrentSource, writer SampleWriter) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		source = battery.NewUniformSource(cfg.CurrentMinA, cfg.CurrentMaxA, time.Now().UnixNano())
	}
	return &Simulator{
		cfg:    cfg,
		source: source,
		writer: writer,
		now:    time.Now,
		phase:  PhaseIdle,
	}, nil
}

// Start begins a fresh run from idle or resumes a paused one. Resuming
// keeps accumulated state; only Reset discards it. Starting a run that
// already hit a terminal signal returns ErrRunComplete.
func (s *Simulator) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case PhaseRunning:
		return nil
	case PhaseStopped:
		return ErrRunComplete
	case PhaseIdle:
		s.runID = uuid.New().String()
		s.effectiveCapacitymAh = s.cfg.EffectiveCapacitymAh()
		s.elapsedTotalS = 0
		s.consumedmAh = 0
		s.samples = nil
		s.signal = battery.SignalNone
	}
	s.phase = PhaseRunning
	s.writeStatus()
	return nil
}

// Pause freezes accumulated state. No-op if not running.
func (s *Simulator) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseRunning {
		return
	}
	s.phase = PhasePaused
	s.writeStatus()
}

// Reset discards all accumulated state and returns to the pre-start
// condition. Calling it twice leaves the same state as calling it once.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runID = ""
	s.phase = PhaseIdle
	s.signal = battery.SignalNone
	s.effectiveCapacitymAh = 0
	s.elapsedTotalS = 0
	s.consumedmAh = 0
	s.samples = nil
	s.writeStatus()
}

// Tick advances the run by dtS seconds: one current reading, one
// coulomb-counting step, one sample. Ticks while not running are
// dropped. A tick that reaches the configured duration produces no
// sample; the run stops with SignalDurationReached first.
func (s *Simulator) Tick(dtS float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseRunning {
		return
	}

	s.elapsedTotalS += dtS
	if s.elapsedTotalS >= s.cfg.DurationS {
		s.stop(battery.SignalDurationReached)
		return
	}

	currentA := s.source.Next()
	s.consumedmAh += battery.UsedmAh(currentA, dtS)
	remaining := battery.RemainingmAh(s.effectiveCapacitymAh, s.consumedmAh)

	row := battery.SampleRow{
		RunID:        s.runID,
		TimeS:        s.elapsedTotalS,
		CurrentA:     currentA,
		ConsumedmAh:  s.consumedmAh,
		RemainingmAh: remaining,
		ETAMin:       battery.ETAMinutes(remaining, currentA),
		Timestamp:    s.now().UTC(),
	}
	s.samples = append(s.samples, row)
	if s.writer != nil {
		// The sample log keeps the row even if the writer fails;
		// Run reports write errors through its logger.
		_ = s.writer.Write(row)
	}

	if remaining <= 0 {
		s.stop(battery.SignalDepleted)
	}
}

// stop transitions to the terminal phase. Callers hold the lock.
func (s *Simulator) stop(sig battery.Signal) {
	s.phase = PhaseStopped
	s.signal = sig
	s.writeStatus()
}

// writeStatus pushes the current snapshot to a status-aware writer.
// Callers hold the lock.
func (s *Simulator) writeStatus() {
	if sw, ok := s.writer.(StatusWriter); ok {
		_ = sw.WriteStatus(s.snapshotLocked())
	}
}

func (s *Simulator) snapshotLocked() Status {
	return Status{
		RunID:                s.runID,
		Phase:                s.phase,
		Signal:               s.signal,
		EffectiveCapacitymAh: s.effectiveCapacitymAh,
		ElapsedTotalS:        s.elapsedTotalS,
		ConsumedmAh:          s.consumedmAh,
		RemainingmAh:         battery.RemainingmAh(s.effectiveCapacitymAh, s.consumedmAh),
		Samples:              len(s.samples),
		Timestamp:            s.now().UTC(),
	}
}

// Snapshot returns the current run status.
func (s *Simulator) Snapshot() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Phase returns the current lifecycle phase.
func (s *Simulator) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Signal returns the terminal signal, if any.
func (s *Simulator) Signal() battery.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signal
}

// Samples returns a copy of the accumulated sample log.
func (s *Simulator) Samples() []battery.SampleRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]battery.SampleRow, len(s.samples))
	copy(out, s.samples)
	return out
}

// Config returns the run configuration.
func (s *Simulator) Config() battery.Config {
	return s.cfg
}
