package battery

// Coulomb-counting step math. The simulator integrates instantaneous
// current over fixed sampling intervals to estimate consumed charge.

// UsedmAh returns the charge drawn by currentA over dtS seconds.
func UsedmAh(currentA, dtS float64) float64 {
	elapsedH := dtS / 3600.0
	return currentA * elapsedH * 1000.0
}

// RemainingmAh clamps remaining capacity at zero.
func RemainingmAh(effectiveCapacitymAh, consumedmAh float64) float64 {
	rem := effectiveCapacitymAh - consumedmAh
	if rem < 0 {
		return 0
	}
	return rem
}

// ETAMinutes estimates flight time left at the given draw. Currents at or
// below 0.1 A would blow up the division, so the sentinel is returned instead.
func ETAMinutes(remainingmAh, currentA float64) float64 {
	if currentA <= 0.1 {
		return ETASentinel
	}
	return (remainingmAh / 1000.0 / currentA) * 60.0
}
