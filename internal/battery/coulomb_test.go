package battery

import (
	"math"
	"testing"
)

func TestUsedmAh(t *testing.T) {
	// 3.6 A for one second is exactly 1 mAh.
	if got := UsedmAh(3.6, 1.0); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("expected 1.0 mAh, got %f", got)
	}
	if got := UsedmAh(0, 10); got != 0 {
		t.Errorf("expected 0 mAh at zero current, got %f", got)
	}
}

func TestRemainingmAh_ClampsAtZero(t *testing.T) {
	if got := RemainingmAh(1000, 1500); got != 0 {
		t.Errorf("expected clamp to 0, got %f", got)
	}
	if got := RemainingmAh(1000, 400); got != 600 {
		t.Errorf("expected 600, got %f", got)
	}
}

func TestETAMinutes(t *testing.T) {
	// 1200 mAh at 18 A: (1.2/18)*60 = 4 minutes.
	if got := ETAMinutes(1200, 18); math.Abs(got-4.0) > 1e-9 {
		t.Errorf("expected 4.0 min, got %f", got)
	}
	// At or below 0.1 A the sentinel is returned regardless of capacity.
	for _, i := range []float64{0, 0.05, 0.1} {
		if got := ETAMinutes(5000, i); got != ETASentinel {
			t.Errorf("current %v: expected sentinel, got %f", i, got)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{CapacitymAh: 1500, SamplingIntervalS: 0.1, DurationS: 120, CurrentMinA: 2, CurrentMaxA: 10}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name string
		cfg  Config
	}{
		{"negative capacity", Config{CapacitymAh: -1}},
		{"negative interval", Config{SamplingIntervalS: -0.1}},
		{"max below min", Config{CurrentMinA: 10, CurrentMaxA: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestEffectiveCapacity(t *testing.T) {
	cfg := Config{CapacitymAh: 1500, UseReserveRule: true}
	if got := cfg.EffectiveCapacitymAh(); got != 1200.0 {
		t.Errorf("expected 1200.0 with reserve rule, got %f", got)
	}
	cfg.UseReserveRule = false
	if got := cfg.EffectiveCapacitymAh(); got != 1500.0 {
		t.Errorf("expected 1500.0 without reserve rule, got %f", got)
	}
}

func TestUniformSource_Range(t *testing.T) {
	src := NewUniformSource(2.0, 10.0, 42)
	for i := 0; i < 100; i++ {
		v := src.Next()
		if v < 2.0 || v > 10.0 {
			t.Fatalf("sample %d out of range: %f", i, v)
		}
	}
}

func TestSequenceSource_RepeatsLastValue(t *testing.T) {
	src := &SequenceSource{Values: []float64{1, 2, 3}}
	got := []float64{src.Next(), src.Next(), src.Next(), src.Next(), src.Next()}
	want := []float64{1, 2, 3, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}
