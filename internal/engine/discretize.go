package engine

import (
	"math"

	"github.com/piwi3910/tentlayout/internal/model"
)

// toCm converts a meter measurement to a rounded centimeter integer.
func toCm(meters float64) int {
	return int(math.Round(meters / model.Precision))
}

// toMeters converts a centimeter integer back to meters.
func toMeters(cm int) float64 {
	return float64(cm) * model.Precision
}

// roundMM rounds a meter value to millimeter precision for emission.
func roundMM(meters float64) float64 {
	return math.Round(meters*1000) / 1000
}

// mmTolerance is the 1 mm floating-point comparison tolerance used
// throughout the pipeline for gap/setback bound checks.
const mmTolerance = 0.001

// sweepEpsilon is the 0.1 mm epsilon used when comparing sweep totals.
const sweepEpsilon = 0.0001

// leq reports whether a <= b within mmTolerance.
func leq(a, b float64) bool {
	return a <= b+mmTolerance
}

// geq reports whether a >= b within mmTolerance.
func geq(a, b float64) bool {
	return a >= b-mmTolerance
}
