// Battery monitor types with greptime tags
package battery

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalidConfig is returned when a simulation config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// ETASentinel marks an unbounded flight-time estimate (current near zero).
// Rows carrying it render as "--".
const ETASentinel = 9999.0

// Config holds the immutable parameters of one discharge simulation run.
type Config struct {
	CapacitymAh       float64 `yaml:"capacity_mah"`
	UseReserveRule    bool    `yaml:"use_reserve_rule"`
	SamplingIntervalS float64 `yaml:"sampling_interval_s"`
	DurationS         float64 `yaml:"duration_s"`
	CurrentMinA       float64 `yaml:"current_min_a"`
	CurrentMaxA       float64 `yaml:"current_max_a"`
}

// Validate checks ranges before a run is started.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"capacity_mah", c.CapacitymAh},
		{"sampling_interval_s", c.SamplingIntervalS},
		{"duration_s", c.DurationS},
		{"current_min_a", c.CurrentMinA},
		{"current_max_a", c.CurrentMaxA},
	} {
		if f.val < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidConfig, f.name, f.val)
		}
	}
	if c.CurrentMaxA < c.CurrentMinA {
		return fmt.Errorf("%w: current_max_a (%v) must be >= current_min_a (%v)",
			ErrInvalidConfig, c.CurrentMaxA, c.CurrentMinA)
	}
	return nil
}

// EffectiveCapacitymAh applies the 80% reserve rule when enabled.
func (c Config) EffectiveCapacitymAh() float64 {
	if c.UseReserveRule {
		return c.CapacitymAh * 0.8
	}
	return c.CapacitymAh
}

// SampleRow represents one coulomb-counting sample for writers.
type SampleRow struct {
	RunID        string    `json:"run_id"` // TAG
	TimeS        float64   `json:"time_s"`
	CurrentA     float64   `json:"current_a"`
	ConsumedmAh  float64   `json:"consumed_mah"`
	RemainingmAh float64   `json:"remaining_mah"`
	ETAMin       float64   `json:"eta_min"`
	Timestamp    time.Time `json:"ts"` // TIME INDEX
}

// SampleTableName holds the table name used when writing to GreptimeDB.
// It defaults to "battery_samples" but can be overridden via the
// RCPOWER_TABLE environment variable.
var SampleTableName = func() string {
	if env := os.Getenv("RCPOWER_TABLE"); env != "" {
		return env
	}
	return "battery_samples"
}()

func (SampleRow) TableName() string {
	return SampleTableName
}

// Signal is a terminal run condition. Signals are informational, not errors.
type Signal string

const (
	SignalNone            Signal = ""
	SignalDepleted        Signal = "depleted"
	SignalDurationReached Signal = "duration_reached"
)
