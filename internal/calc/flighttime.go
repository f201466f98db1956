package calc

import (
	"errors"
	"fmt"
)

// ErrDivisionUndefined is returned when the average current makes the
// flight-time formula undefined.
var ErrDivisionUndefined = errors.New("division undefined")

// FlightTimeMinutes estimates flight time from pack capacity and average
// draw. With the reserve rule enabled only 80% of capacity counts.
func FlightTimeMinutes(capacitymAh, avgCurrentA float64, useReserveRule bool) (float64, error) {
	if avgCurrentA <= 0 {
		return 0, fmt.Errorf("%w: average current must be > 0 A, got %v", ErrDivisionUndefined, avgCurrentA)
	}
	capacityAh := capacitymAh / 1000.0
	if useReserveRule {
		capacityAh *= 0.8
	}
	return (capacityAh / avgCurrentA) * 60.0, nil
}

// Point is one (x, minutes) pair of a sweep series.
type Point struct {
	X       float64 `json:"x"`
	Minutes float64 `json:"minutes"`
}

// FlightTimeVsCapacity sweeps pack capacity at a fixed current.
func FlightTimeVsCapacity(capacitiesmAh []float64, currentA float64, useReserveRule bool) ([]Point, error) {
	points := make([]Point, 0, len(capacitiesmAh))
	for _, c := range capacitiesmAh {
		m, err := FlightTimeMinutes(c, currentA, useReserveRule)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: c, Minutes: m})
	}
	return points, nil
}

// FlightTimeVsCurrent sweeps average current at a fixed capacity.
func FlightTimeVsCurrent(currentsA []float64, capacitymAh float64, useReserveRule bool) ([]Point, error) {
	points := make([]Point, 0, len(currentsA))
	for _, i := range currentsA {
		m, err := FlightTimeMinutes(capacitymAh, i, useReserveRule)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: i, Minutes: m})
	}
	return points, nil
}
