package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"rcpower/internal/calc"
	"rcpower/internal/chart"
)

var (
	ftCapacity float64
	ftCurrent  float64
	ftReserve  bool
	ftSweep    string
	ftFrom     float64
	ftTo       float64
	ftStep     float64
	ftWidth    int
	ftJSON     bool
)

var flighttimeCmd = &cobra.Command{
	Use:   "flighttime",
	Short: "Estimate flight time from capacity and average current",
	Long:  "flighttime computes estimated flight time in minutes, optionally sweeping capacity or current over a range and charting the series.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if ftSweep == "" {
			minutes, err := calc.FlightTimeMinutes(ftCapacity, ftCurrent, ftReserve)
			if err != nil {
				return err
			}
			if ftJSON {
				data, _ := json.Marshal(map[string]float64{"minutes": minutes})
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintf(out, "Estimated flight time: %.1f min (%.0f mAh at %.1f A, reserve %t)\n",
				minutes, ftCapacity, ftCurrent, ftReserve)
			return nil
		}

		xs, err := sweepRange(cmd, ftFrom, ftTo, ftStep)
		if err != nil {
			return err
		}

		var points []calc.Point
		var title, xLabel string
		switch ftSweep {
		case "capacity":
			title = fmt.Sprintf("Flight time vs capacity at %.1f A", ftCurrent)
			xLabel = "mAh"
			points, err = calc.FlightTimeVsCapacity(xs, ftCurrent, ftReserve)
		case "current":
			title = fmt.Sprintf("Flight time vs current at %.0f mAh", ftCapacity)
			xLabel = "A"
			points, err = calc.FlightTimeVsCurrent(xs, ftCapacity, ftReserve)
		default:
			return fmt.Errorf("unknown sweep %q (want capacity or current)", ftSweep)
		}
		if err != nil {
			return err
		}

		if ftJSON {
			data, err := json.MarshalIndent(points, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		width := ftWidth
		if !cmd.Flags().Changed("width") {
			width = chart.TerminalWidth(ftWidth)
		}
		fmt.Fprint(out, chart.Render(title, xLabel, points, width))
		return nil
	},
}

// sweepRange expands from/to/step into the sweep's x values. Defaults
// depend on the sweep axis when the flags are left unset.
func sweepRange(cmd *cobra.Command, from, to, step float64) ([]float64, error) {
	f := cmd.Flags()
	if !f.Changed("from") && !f.Changed("to") && !f.Changed("step") {
		switch ftSweep {
		case "capacity":
			from, to, step = 500, 5000, 500
		case "current":
			from, to, step = 5, 60, 5
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("step must be > 0, got %v", step)
	}
	if to < from {
		return nil, fmt.Errorf("sweep range is empty: from %v to %v", from, to)
	}
	var xs []float64
	for x := from; x <= to+step/1e6; x += step {
		xs = append(xs, x)
	}
	return xs, nil
}

func init() {
	flighttimeCmd.Flags().Float64Var(&ftCapacity, "capacity", 1500, "Battery capacity (mAh)")
	flighttimeCmd.Flags().Float64Var(&ftCurrent, "current", 18, "Average current draw (A)")
	flighttimeCmd.Flags().BoolVar(&ftReserve, "reserve", true, "Apply the 80% reserve rule")
	flighttimeCmd.Flags().StringVar(&ftSweep, "sweep", "", "Sweep axis: capacity or current")
	flighttimeCmd.Flags().Float64Var(&ftFrom, "from", 0, "Sweep range start")
	flighttimeCmd.Flags().Float64Var(&ftTo, "to", 0, "Sweep range end")
	flighttimeCmd.Flags().Float64Var(&ftStep, "step", 0, "Sweep step size")
	flighttimeCmd.Flags().IntVar(&ftWidth, "width", 80, "Chart width (defaults to the terminal width)")
	flighttimeCmd.Flags().BoolVar(&ftJSON, "json", false, "Print results as JSON")
}
