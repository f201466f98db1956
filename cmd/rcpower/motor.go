package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rcpower/internal/calc"
)

var (
	motorKVs      []int
	motorVoltages []float64
	motorCurrents []string
	motorCSVFile  string
	motorJSON     bool
)

var motorCmd = &cobra.Command{
	Use:   "motor",
	Short: "Compute a motor/ESC parameter table",
	Long:  "motor derives RPM, torque class, power draw and ESC recommendation for every KV/voltage combination. Current draw per KV is supplied as kv:amps pairs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		currents, err := parseKVCurrents(motorCurrents)
		if err != nil {
			return err
		}
		rows := calc.MotorESCTable(motorKVs, motorVoltages, currents)

		if motorJSON {
			data, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "KV\tVoltage (V)\tRPM\tTorque\tPower (W)\tCurrent (A)\tESC (A)")
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%.1f\t%.0f\t%s\t%.0f\t%.1f\t%d\n",
				r.KV, r.VoltageV, r.RPM, r.Torque, r.PowerW, r.CurrentA, r.ESCRecommendedA)
		}
		tw.Flush()

		if motorCSVFile != "" {
			return writeMotorCSV(motorCSVFile, rows)
		}
		return nil
	},
}

// parseKVCurrents parses kv:amps pairs, e.g. "1200:40".
func parseKVCurrents(pairs []string) (map[int]float64, error) {
	out := make(map[int]float64, len(pairs))
	for _, p := range pairs {
		kvStr, ampStr, ok := strings.Cut(p, ":")
		if !ok {
			return nil, fmt.Errorf("invalid current pair %q, want kv:amps", p)
		}
		kv, err := strconv.Atoi(strings.TrimSpace(kvStr))
		if err != nil {
			return nil, fmt.Errorf("invalid KV in %q: %w", p, err)
		}
		amps, err := strconv.ParseFloat(strings.TrimSpace(ampStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amps in %q: %w", p, err)
		}
		out[kv] = amps
	}
	return out, nil
}

func writeMotorCSV(path string, rows []calc.MotorRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"KV", "Voltage (V)", "RPM", "Torque", "Power (W)", "Current (A)", "ESC (A)"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.KV),
			fmt.Sprintf("%.1f", r.VoltageV),
			fmt.Sprintf("%.0f", r.RPM),
			string(r.Torque),
			fmt.Sprintf("%.0f", r.PowerW),
			fmt.Sprintf("%.1f", r.CurrentA),
			strconv.Itoa(r.ESCRecommendedA),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func init() {
	motorCmd.Flags().IntSliceVar(&motorKVs, "kv", []int{1000, 1200, 1500, 2200}, "Motor KV ratings")
	motorCmd.Flags().Float64SliceVar(&motorVoltages, "voltages", []float64{7.4, 11.1, 14.8, 22.2}, "Battery voltages (V)")
	motorCmd.Flags().StringSliceVar(&motorCurrents, "currents", nil, "Current draw per KV as kv:amps pairs (e.g. 1200:40)")
	motorCmd.Flags().StringVar(&motorCSVFile, "csv-file", "", "Path to export the table (CSV)")
	motorCmd.Flags().BoolVar(&motorJSON, "json", false, "Print the table as JSON")
}
