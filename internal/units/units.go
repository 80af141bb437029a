// Package units fixes mmol/L as the canonical blood glucose unit for the
// whole core. Screens that collect mg/dL convert at the boundary.
package units

// Conversion factor between mg/dL and mmol/L for glucose.
const mgdlPerMmolL = 18.0182

// Safe-range thresholds in mmol/L.
const (
	LowThreshold          = 3.9
	FastingHighThreshold  = 7.0
	PostMealHighThreshold = 11.0
)

// MmolLFromMgDL converts a mg/dL glucose value to mmol/L.
func MmolLFromMgDL(v float64) float64 {
	return v / mgdlPerMmolL
}

// MgDLFromMmolL converts a mmol/L glucose value to mg/dL.
func MgDLFromMmolL(v float64) float64 {
	return v * mgdlPerMmolL
}
