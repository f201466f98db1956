package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"rcpower/internal/calc"
)

var (
	planeWeight     float64
	planeWingspan   float64
	planeType       string
	planeEfficiency float64
	planePitch      float64
	planeRPM        float64
	planeThrust     float64
	planeMaxCurrent float64
	planeCapacity   float64
	planeCRate      float64
	planeJSON       bool
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var planeCmd = &cobra.Command{
	Use:   "plane",
	Short: "Estimate a plane's power-system requirements",
	Long:  "plane derives required power, motor weight, pack voltage, pitch speed, thrust checks and battery headroom from airframe parameters.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ft := calc.FlightType(planeType)
		switch ft {
		case calc.FlightGlider, calc.FlightTrainer, calc.FlightAerobatic:
		default:
			return fmt.Errorf("unknown flight type %q (want glider, trainer, or aerobatic)", planeType)
		}

		est := calc.PlanePowerEstimate(calc.PlaneInput{
			WeightKg:      planeWeight,
			WingspanCm:    planeWingspan,
			FlightType:    ft,
			EfficiencyPct: planeEfficiency,
			PitchCm:       planePitch,
			RPM:           planeRPM,
			StaticThrustG: planeThrust,
			MaxCurrentA:   planeMaxCurrent,
			CapacitymAh:   planeCapacity,
			CRate:         planeCRate,
		})

		if planeJSON {
			data, err := json.MarshalIndent(est, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Required input power (W):\t%.0f\n", est.InputPowerW)
		fmt.Fprintf(tw, "Output power at %.0f%% (W):\t%.0f\n", planeEfficiency, est.OutputPowerW)
		fmt.Fprintf(tw, "Motor weight (g):\t%.0f\n", est.MotorWeightG)
		fmt.Fprintf(tw, "Recommended voltage (V):\t%.1f\n", est.RecVoltageV)
		fmt.Fprintf(tw, "Pitch speed (m/s):\t%.1f\n", est.PitchSpeedMPS)
		fmt.Fprintf(tw, "Hover (thrust >= weight):\t%s\n", checkMark(est.Thrust.Hover))
		fmt.Fprintf(tw, "Takeoff (thrust >= 50%%):\t%s\n", checkMark(est.Thrust.Takeoff))
		fmt.Fprintf(tw, "Climb (thrust >= 33%%):\t%s\n", checkMark(est.Thrust.Climb))
		fmt.Fprintf(tw, "ESC recommendation (A):\t%.0f\n", est.ESCRecA)
		fmt.Fprintf(tw, "Battery headroom ok:\t%s\n", checkMark(est.BatterySafe))
		return tw.Flush()
	},
}

func checkMark(ok bool) string {
	if ok {
		return passStyle.Render("yes")
	}
	return failStyle.Render("no")
}

func init() {
	planeCmd.Flags().Float64Var(&planeWeight, "weight", 0, "All-up weight (kg)")
	planeCmd.Flags().Float64Var(&planeWingspan, "wingspan", 0, "Wingspan (cm)")
	planeCmd.Flags().StringVar(&planeType, "type", "trainer", "Flight type: glider, trainer, or aerobatic")
	planeCmd.Flags().Float64Var(&planeEfficiency, "efficiency", 80, "Drive efficiency (%)")
	planeCmd.Flags().Float64Var(&planePitch, "pitch", 0, "Propeller pitch (cm)")
	planeCmd.Flags().Float64Var(&planeRPM, "rpm", 0, "Propeller RPM")
	planeCmd.Flags().Float64Var(&planeThrust, "thrust", 0, "Measured static thrust (g)")
	planeCmd.Flags().Float64Var(&planeMaxCurrent, "max-current", 0, "Expected maximum current (A)")
	planeCmd.Flags().Float64Var(&planeCapacity, "capacity", 0, "Battery capacity (mAh)")
	planeCmd.Flags().Float64Var(&planeCRate, "c-rate", 0, "Battery C rating")
	planeCmd.Flags().BoolVar(&planeJSON, "json", false, "Print the estimate as JSON")
	planeCmd.MarkFlagRequired("weight")
	planeCmd.MarkFlagRequired("wingspan")
}
