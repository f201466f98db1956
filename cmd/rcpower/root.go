package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rcpower",
	Short: "RC power-system sizing toolkit",
	Long:  "rcpower sizes electric RC aircraft power systems: motor/ESC tables, plane power estimates, flight-time sweeps, and a coulomb-counting battery discharge monitor.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(motorCmd)
	rootCmd.AddCommand(planeCmd)
	rootCmd.AddCommand(flighttimeCmd)
	rootCmd.AddCommand(glossaryCmd)
}
