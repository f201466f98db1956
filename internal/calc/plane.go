package calc

// FlightType selects the power-per-kg guideline for a plane estimate.
type FlightType string

const (
	FlightGlider    FlightType = "glider"
	FlightTrainer   FlightType = "trainer"
	FlightAerobatic FlightType = "aerobatic"
)

// PlaneInput collects the airframe and power-system parameters.
type PlaneInput struct {
	WeightKg      float64
	WingspanCm    float64
	FlightType    FlightType
	EfficiencyPct float64
	PitchCm       float64
	RPM           float64
	StaticThrustG float64
	MaxCurrentA   float64
	CapacitymAh   float64
	CRate         float64
}

// ThrustChecks compares static thrust against airframe weight thresholds.
type ThrustChecks struct {
	Hover   bool `json:"hover"`
	Takeoff bool `json:"takeoff"`
	Climb   bool `json:"climb"`
}

// PlaneEstimate is the derived power-system recommendation.
type PlaneEstimate struct {
	InputPowerW   float64      `json:"input_power_w"`
	OutputPowerW  float64      `json:"output_power_w"`
	MotorWeightG  float64      `json:"motor_weight_g"`
	RecVoltageV   float64      `json:"rec_voltage_v"`
	PitchSpeedMPS float64      `json:"pitch_speed_mps"`
	Thrust        ThrustChecks `json:"thrust"`
	ESCRecA       float64      `json:"esc_rec_a"`
	BatterySafe   bool         `json:"battery_safe"`
}

// recommendPowerW returns required input power from weight and flight style.
// Guidelines: glider ~65 W/kg, trainer ~120 W/kg, aerobatic ~200 W/kg.
func recommendPowerW(weightKg float64, ft FlightType) float64 {
	switch ft {
	case FlightGlider:
		return weightKg * 65
	case FlightAerobatic:
		return weightKg * 200
	default:
		return weightKg * 120
	}
}

// voltageFromWingspan suggests a nominal pack voltage by size class.
func voltageFromWingspan(cm float64) float64 {
	switch {
	case cm < 100:
		return 11.1 // 3s
	case cm < 140:
		return 14.8 // 4s
	case cm < 175:
		return 22.2 // 6s
	case cm < 215:
		return 29.6 // 8s
	case cm < 245:
		return 37.0 // 10s
	default:
		return 44.4 // 12s
	}
}

// PlanePowerEstimate derives a full power-system recommendation from the
// airframe inputs. All formulas are first-order sizing heuristics.
func PlanePowerEstimate(in PlaneInput) PlaneEstimate {
	inputPower := recommendPowerW(in.WeightKg, in.FlightType)
	outputPower := inputPower * (in.EfficiencyPct / 100.0)

	factor := 5.0
	if in.EfficiencyPct <= 70 {
		factor = 3.0
	}

	weightG := in.WeightKg * 1000
	maxSafeContinuousA := (in.CapacitymAh * in.CRate * 0.6) / 1000.0

	return PlaneEstimate{
		InputPowerW:   inputPower,
		OutputPowerW:  outputPower,
		MotorWeightG:  inputPower / factor,
		RecVoltageV:   voltageFromWingspan(in.WingspanCm),
		PitchSpeedMPS: (in.PitchCm * in.RPM) / 60000.0,
		Thrust: ThrustChecks{
			Hover:   in.StaticThrustG >= weightG,
			Takeoff: in.StaticThrustG >= 0.5*weightG,
			Climb:   in.StaticThrustG >= 0.33*weightG,
		},
		ESCRecA:     in.MaxCurrentA * 1.2,
		BatterySafe: in.MaxCurrentA <= maxSafeContinuousA,
	}
}
