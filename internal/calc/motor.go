// Motor and ESC parameter estimation
package calc

import "math"

// TorqueCategory is a coarse KV-derived torque class. Lower KV motors
// tend to deliver more torque per amp.
type TorqueCategory string

const (
	TorqueHigh   TorqueCategory = "High"
	TorqueMedium TorqueCategory = "Medium"
	TorqueLow    TorqueCategory = "Low"
)

// MotorRow holds one KV/voltage combination with derived parameters.
type MotorRow struct {
	KV               int            `json:"kv"`
	VoltageV         float64        `json:"voltage_v"`
	RPM              float64        `json:"rpm"`
	Torque           TorqueCategory `json:"torque"`
	PowerW           float64        `json:"power_w"`
	ESCRecommendedA  int            `json:"esc_recommended_a"`
	CurrentA         float64        `json:"current_a"`
}

// torqueFromKV categorizes expected torque from the speed constant.
func torqueFromKV(kv int) TorqueCategory {
	switch {
	case kv >= 2000:
		return TorqueLow
	case kv >= 1000:
		return TorqueMedium
	default:
		return TorqueHigh
	}
}

// MotorESCTable computes the cartesian product of KV ratings and battery
// voltages. RPM uses the no-load model rpm = kv * voltage; power uses the
// per-KV current draw (0 when the KV has no entry); the ESC recommendation
// adds a 20% margin over the draw.
func MotorESCTable(kvRatings []int, voltages []float64, currentByKV map[int]float64) []MotorRow {
	rows := make([]MotorRow, 0, len(kvRatings)*len(voltages))
	for _, kv := range kvRatings {
		for _, v := range voltages {
			current := currentByKV[kv]
			rows = append(rows, MotorRow{
				KV:              kv,
				VoltageV:        v,
				RPM:             float64(kv) * v,
				Torque:          torqueFromKV(kv),
				PowerW:          v * current,
				ESCRecommendedA: int(math.Round(current * 1.2)),
				CurrentA:        current,
			})
		}
	}
	return rows
}
