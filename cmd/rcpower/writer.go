package main

import (
	"fmt"
	"os"

	"rcpower/internal/config"
	"rcpower/internal/sim"
)

// newWriters sets up sample writers based on the output config.
// It returns the combined writer, the TUI writer when the tui format is
// selected (for key bindings and shutdown), and a cleanup function to
// close any resources.
func newWriters(cfg *config.MonitorConfig) (sim.SampleWriter, *sim.TUIWriter, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var writers []sim.SampleWriter
	var tui *sim.TUIWriter
	switch cfg.Output.Format {
	case "tui":
		tui = sim.NewTUIWriter(cfg.Monitor)
		writers = append(writers, tui)
	case "color":
		writers = append(writers, sim.NewColorStdoutWriter(cfg.Monitor))
	case "json":
		writers = append(writers, &sim.StdoutWriter{})
	default:
		return nil, nil, nil, fmt.Errorf("unknown output format %q (want tui, color, or json)", cfg.Output.Format)
	}

	endpoint := cfg.Output.GreptimeEndpoint
	if endpoint == "" {
		endpoint = os.Getenv("GREPTIMEDB_ENDPOINT")
	}
	if endpoint != "" {
		gw, err := sim.NewGreptimeDBWriter(endpoint, "public")
		if err != nil {
			cleanup()
			return nil, nil, nil, err
		}
		writers = append(writers, gw)
	}

	if cfg.Output.LogFile != "" {
		fw, err := sim.NewFileWriter(cfg.Output.LogFile, cfg.Output.LogFile+".status")
		if err != nil {
			cleanup()
			return nil, nil, nil, err
		}
		closers = append(closers, func() { fw.Close() })
		writers = append(writers, fw)
	}

	if len(writers) == 1 {
		return writers[0], tui, cleanup, nil
	}
	return sim.NewMultiWriter(writers...), tui, cleanup, nil
}
