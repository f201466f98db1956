package calc

import (
	"errors"
	"math"
	"testing"
)

func TestMotorESCTable_SingleCombination(t *testing.T) {
	rows := MotorESCTable([]int{1200}, []float64{14.8}, map[int]float64{1200: 40})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.RPM != 17760.0 {
		t.Errorf("expected rpm 17760.0, got %f", r.RPM)
	}
	if r.Torque != TorqueMedium {
		t.Errorf("expected Medium torque, got %s", r.Torque)
	}
	if r.PowerW != 592.0 {
		t.Errorf("expected power 592.0, got %f", r.PowerW)
	}
	if r.ESCRecommendedA != 48 {
		t.Errorf("expected ESC recommendation 48, got %d", r.ESCRecommendedA)
	}
}

func TestMotorESCTable_CartesianProduct(t *testing.T) {
	rows := MotorESCTable([]int{900, 1500, 2300}, []float64{11.1, 14.8}, map[int]float64{900: 20})
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	// KV missing from the current map contributes zero power.
	for _, r := range rows {
		if r.KV != 900 && r.PowerW != 0 {
			t.Errorf("KV %d without current draw: expected 0 W, got %f", r.KV, r.PowerW)
		}
	}
}

func TestTorqueCategories(t *testing.T) {
	cases := []struct {
		kv   int
		want TorqueCategory
	}{
		{500, TorqueHigh},
		{999, TorqueHigh},
		{1000, TorqueMedium},
		{1999, TorqueMedium},
		{2000, TorqueLow},
		{2600, TorqueLow},
	}
	for _, tc := range cases {
		if got := torqueFromKV(tc.kv); got != tc.want {
			t.Errorf("kv=%d: expected %s, got %s", tc.kv, tc.want, got)
		}
	}
}

func TestPlanePowerEstimate(t *testing.T) {
	in := PlaneInput{
		WeightKg:      1.5,
		WingspanCm:    120,
		FlightType:    FlightTrainer,
		EfficiencyPct: 70,
		PitchCm:       15,
		RPM:           12000,
		StaticThrustG: 1600,
		MaxCurrentA:   30,
		CapacitymAh:   2200,
		CRate:         30,
	}
	est := PlanePowerEstimate(in)

	if est.InputPowerW != 180.0 {
		t.Errorf("expected input power 180 W, got %f", est.InputPowerW)
	}
	if math.Abs(est.OutputPowerW-126.0) > 1e-9 {
		t.Errorf("expected output power 126 W, got %f", est.OutputPowerW)
	}
	if est.MotorWeightG != 60.0 { // efficiency <= 70 divides by 3
		t.Errorf("expected motor weight 60 g, got %f", est.MotorWeightG)
	}
	if est.RecVoltageV != 14.8 {
		t.Errorf("wingspan 120 cm: expected 14.8 V, got %f", est.RecVoltageV)
	}
	if est.PitchSpeedMPS != 3.0 {
		t.Errorf("expected pitch speed 3 m/s, got %f", est.PitchSpeedMPS)
	}
	if !est.Thrust.Hover || !est.Thrust.Takeoff || !est.Thrust.Climb {
		t.Errorf("1600 g thrust on a 1500 g plane should pass all checks, got %+v", est.Thrust)
	}
	if est.ESCRecA != 36.0 {
		t.Errorf("expected ESC rec 36 A, got %f", est.ESCRecA)
	}
	// 2200 mAh * 30C * 0.6 / 1000 = 39.6 A safe continuous.
	if !est.BatterySafe {
		t.Error("expected battery-safe at 30 A draw")
	}
}

func TestVoltageBands(t *testing.T) {
	cases := []struct {
		cm   float64
		want float64
	}{
		{80, 11.1},
		{120, 14.8},
		{160, 22.2},
		{200, 29.6},
		{230, 37.0},
		{260, 44.4},
	}
	for _, tc := range cases {
		if got := voltageFromWingspan(tc.cm); got != tc.want {
			t.Errorf("wingspan %.0f: expected %v V, got %v", tc.cm, tc.want, got)
		}
	}
}

func TestFlightTimeMinutes(t *testing.T) {
	got, err := FlightTimeMinutes(1500, 18, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-4.0) > 1e-9 {
		t.Errorf("expected 4.0 minutes, got %f", got)
	}

	got, err = FlightTimeMinutes(1500, 18, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-5.0) > 1e-9 {
		t.Errorf("expected 5.0 minutes without reserve rule, got %f", got)
	}
}

func TestFlightTimeMinutes_DivisionUndefined(t *testing.T) {
	for _, i := range []float64{0, -2} {
		_, err := FlightTimeMinutes(1500, i, true)
		if !errors.Is(err, ErrDivisionUndefined) {
			t.Errorf("current %v: expected ErrDivisionUndefined, got %v", i, err)
		}
	}
}

func TestFlightTimeSweeps(t *testing.T) {
	caps := []float64{1000, 2000, 3000}
	points, err := FlightTimeVsCapacity(caps, 10, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for i, p := range points {
		if p.X != caps[i] {
			t.Errorf("point %d: expected x=%v, got %v", i, caps[i], p.X)
		}
		want := (caps[i] / 1000.0 / 10.0) * 60.0
		if math.Abs(p.Minutes-want) > 1e-9 {
			t.Errorf("point %d: expected %f minutes, got %f", i, want, p.Minutes)
		}
	}

	_, err = FlightTimeVsCurrent([]float64{5, 0}, 1500, true)
	if !errors.Is(err, ErrDivisionUndefined) {
		t.Errorf("expected ErrDivisionUndefined for zero current in sweep, got %v", err)
	}
}
