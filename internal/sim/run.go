package sim

import (
	"context"
	"fmt"
	"time"

	"rcpower/internal/battery"
	"rcpower/internal/logging"
)

// Run starts the run and drives Tick at the configured sampling
// interval until the context is done or the run reaches a terminal
// signal. Ticks are delivered one at a time; a tick completes before
// the next fires.
func (s *Simulator) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	interval := s.cfg.SamplingIntervalS
	if interval <= 0 {
		return fmt.Errorf("%w: sampling_interval_s must be > 0 to schedule ticks", battery.ErrInvalidConfig)
	}
	if err := s.Start(); err != nil {
		return err
	}
	log.Info("starting battery monitor",
		"run_id", s.Snapshot().RunID,
		"sampling_interval_s", interval,
		"duration_s", s.cfg.DurationS,
		"effective_capacity_mah", s.cfg.EffectiveCapacitymAh())

	ticker := time.NewTicker(time.Duration(interval * float64(time.Second)))
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Tick(interval)
			if sig := s.Signal(); sig != battery.SignalNone {
				log.Info("run finished", "signal", string(sig), "samples", s.Snapshot().Samples)
				return nil
			}
		case <-ctx.Done():
			s.Pause()
			log.Info("stopping battery monitor")
			return nil
		}
	}
}
