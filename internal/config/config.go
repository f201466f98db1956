// YAML config loader with CUE validation integration
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"rcpower/internal/battery"
)

// Output selects where monitor samples go.
type Output struct {
	// Format is one of "tui", "color", or "json".
	Format string `yaml:"format"`
	// LogFile, when set, records samples as JSONL for later replay.
	LogFile string `yaml:"log_file"`
	// CSVFile, when set, exports the sample table on exit.
	CSVFile string `yaml:"csv_file"`
	// GreptimeEndpoint, when set, streams samples to GreptimeDB.
	GreptimeEndpoint string `yaml:"greptime_endpoint"`
}

// MonitorConfig is the root configuration for a battery monitor run.
type MonitorConfig struct {
	Monitor battery.Config `yaml:"monitor"`
	Output  Output         `yaml:"output"`
}

// Load loads YAML config and validates it against a CUE schema.
// An empty schema path skips schema validation.
func Load(configPath, cueSchemaPath string) (*MonitorConfig, error) {
	if cueSchemaPath != "" {
		if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Monitor.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the monitor defaults used when no config file is given.
// They mirror a common 4s pack bench scenario.
func Default() *MonitorConfig {
	return &MonitorConfig{
		Monitor: battery.Config{
			CapacitymAh:       1500,
			UseReserveRule:    true,
			SamplingIntervalS: 0.1,
			DurationS:         120,
			CurrentMinA:       2.0,
			CurrentMaxA:       10.0,
		},
		Output: Output{Format: "tui"},
	}
}
