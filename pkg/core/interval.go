package core

import "math"

// Interval represents a closed range of real values [Min, Max]
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(minVal, maxVal float64) Interval {
	return Interval{Min: minVal, Max: maxVal}
}

// Size returns the width of the interval
func (in Interval) Size() float64 {
	return in.Max - in.Min
}

// Contains reports whether v lies in [Min, Max]
func (in Interval) Contains(v float64) bool {
	return in.Min <= v && v <= in.Max
}

// Surrounds reports whether v lies strictly inside (Min, Max)
func (in Interval) Surrounds(v float64) bool {
	return in.Min < v && v < in.Max
}

// Clamp returns v limited to [Min, Max]
func (in Interval) Clamp(v float64) float64 {
	if v < in.Min {
		return in.Min
	}
	if v > in.Max {
		return in.Max
	}
	return v
}

// Common intervals used throughout the renderer
var (
	EmptyInterval    = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
	UnitInterval     = Interval{Min: 0.0, Max: 1.0}
)
