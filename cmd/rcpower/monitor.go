package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rcpower/internal/battery"
	"rcpower/internal/config"
	"rcpower/internal/logging"
	"rcpower/internal/sim"
)

var (
	monConfigPath   string
	monSchemaPath   string
	monFormat       string
	monCapacity     float64
	monReserve      bool
	monInterval     float64
	monDuration     float64
	monCurrentMin   float64
	monCurrentMax   float64
	monFixedCurrent float64
	monLogFile      string
	monCSVFile      string
	monGreptime     string
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run the coulomb-counting battery discharge monitor",
	Long:  "monitor simulates a battery discharge run: a random (or fixed) current draw is integrated over each sampling interval until the configured duration is reached or the effective capacity is depleted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadMonitorConfig(cmd)
		if err != nil {
			return err
		}

		writer, tui, cleanup, err := newWriters(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		var source battery.CurrentSource
		if cmd.Flags().Changed("fixed-current") {
			source = battery.FixedSource(monFixedCurrent)
		}

		simulator, err := sim.NewSimulator(cfg.Monitor, source, writer)
		if err != nil {
			if tui != nil {
				tui.Close()
			}
			return err
		}

		logger := logging.New(verbose)
		if tui != nil {
			// Log lines on STDERR would tear the alt screen; the TUI
			// already renders samples and status transitions.
			logger = logging.NewWithWriter(io.Discard, verbose)
		}
		ctx, cancel := context.WithCancel(logging.NewContext(context.Background(), logger))
		defer cancel()

		restart := make(chan struct{}, 1)
		if tui != nil {
			tui.SetControls(
				func() {
					if simulator.Phase() == sim.PhaseRunning {
						simulator.Pause()
						return
					}
					_ = simulator.Start()
				},
				func() {
					simulator.Reset()
					select {
					case restart <- struct{}{}:
					default:
					}
				},
			)
		}

		var runErr error
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if runErr = simulator.Run(ctx); runErr != nil {
					return
				}
				// The TUI stays up after a terminal signal so the run
				// can be inspected and reset; other formats exit.
				if ctx.Err() != nil || tui == nil {
					return
				}
				select {
				case <-restart:
				case <-ctx.Done():
					return
				}
			}
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		if tui != nil {
			<-sigs
			cancel()
			<-done
			tui.Close()
		} else {
			select {
			case <-done:
			case <-sigs:
				cancel()
				<-done
			}
		}

		if cfg.Output.CSVFile != "" {
			samples := simulator.Samples()
			if err := sim.ExportCSV(cfg.Output.CSVFile, samples); err != nil {
				return err
			}
			logging.New(verbose).Info("exported sample table", "path", cfg.Output.CSVFile, "rows", len(samples))
		}
		return runErr
	},
}

// loadMonitorConfig merges defaults, the optional YAML config, and any
// explicitly set flags, in that order.
func loadMonitorConfig(cmd *cobra.Command) (*config.MonitorConfig, error) {
	cfg := config.Default()
	if monConfigPath != "" {
		c, err := config.Load(monConfigPath, monSchemaPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	f := cmd.Flags()
	if f.Changed("capacity") {
		cfg.Monitor.CapacitymAh = monCapacity
	}
	if f.Changed("reserve") {
		cfg.Monitor.UseReserveRule = monReserve
	}
	if f.Changed("interval") {
		cfg.Monitor.SamplingIntervalS = monInterval
	}
	if f.Changed("duration") {
		cfg.Monitor.DurationS = monDuration
	}
	if f.Changed("current-min") {
		cfg.Monitor.CurrentMinA = monCurrentMin
	}
	if f.Changed("current-max") {
		cfg.Monitor.CurrentMaxA = monCurrentMax
	}
	if f.Changed("format") {
		cfg.Output.Format = monFormat
	}
	if f.Changed("log-file") {
		cfg.Output.LogFile = monLogFile
	}
	if f.Changed("csv-file") {
		cfg.Output.CSVFile = monCSVFile
	}
	if f.Changed("greptime-endpoint") {
		cfg.Output.GreptimeEndpoint = monGreptime
	}
	if err := cfg.Monitor.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	monitorCmd.Flags().StringVar(&monConfigPath, "config", "", "Path to monitor configuration YAML (defaults used when empty)")
	monitorCmd.Flags().StringVar(&monSchemaPath, "schema", "schemas/monitor.cue", "Path to CUE schema file")
	monitorCmd.Flags().StringVar(&monFormat, "format", "tui", "Output format: tui, color, or json")
	monitorCmd.Flags().Float64Var(&monCapacity, "capacity", 1500, "Battery capacity (mAh)")
	monitorCmd.Flags().BoolVar(&monReserve, "reserve", true, "Apply the 80% reserve rule")
	monitorCmd.Flags().Float64Var(&monInterval, "interval", 0.1, "Sampling interval (s)")
	monitorCmd.Flags().Float64Var(&monDuration, "duration", 120, "Run duration (s)")
	monitorCmd.Flags().Float64Var(&monCurrentMin, "current-min", 2.0, "Lower bound of the random current draw (A)")
	monitorCmd.Flags().Float64Var(&monCurrentMax, "current-max", 10.0, "Upper bound of the random current draw (A)")
	monitorCmd.Flags().Float64Var(&monFixedCurrent, "fixed-current", 0, "Fixed current draw (A), overrides the random range")
	monitorCmd.Flags().StringVar(&monLogFile, "log-file", "", "Path to export sample logs (JSONL)")
	monitorCmd.Flags().StringVar(&monCSVFile, "csv-file", "", "Path to export the sample table (CSV) on exit")
	monitorCmd.Flags().StringVar(&monGreptime, "greptime-endpoint", "", "GreptimeDB endpoint for sample ingestion")
}
