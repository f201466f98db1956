package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rcpower/internal/config"
	"rcpower/internal/sim"
)

var (
	replayInput  string
	replaySpeed  float64
	replayFormat string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a recorded sample log",
	Long:  "replay feeds sample rows from a JSONL log back through an output writer, pacing them by their recorded timestamps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayFormat == "tui" {
			return fmt.Errorf("tui format is not supported for replay; use color or json")
		}
		cfg := config.Default()
		cfg.Output.Format = replayFormat
		writer, _, cleanup, err := newWriters(cfg)
		if err != nil {
			return err
		}
		defer cleanup()
		return sim.ReplayLogFile(replayInput, writer, replaySpeed)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to sample log file (JSONL)")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0, "Playback speed multiplier (0 disables pacing)")
	replayCmd.Flags().StringVar(&replayFormat, "format", "json", "Output format: color or json")
	replayCmd.MarkFlagRequired("input")
}
