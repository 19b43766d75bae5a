package core

import (
	"math"
	"testing"
)

func TestInterval_ContainsSurrounds(t *testing.T) {
	in := NewInterval(0, 1)

	tests := []struct {
		name      string
		value     float64
		contains  bool
		surrounds bool
	}{
		{"inside", 0.5, true, true},
		{"at min", 0, true, false},
		{"at max", 1, true, false},
		{"below min", -0.1, false, false},
		{"above max", 1.1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := in.Contains(tt.value); got != tt.contains {
				t.Errorf("Contains(%v) = %v, want %v", tt.value, got, tt.contains)
			}
			if got := in.Surrounds(tt.value); got != tt.surrounds {
				t.Errorf("Surrounds(%v) = %v, want %v", tt.value, got, tt.surrounds)
			}
		})
	}
}

func TestInterval_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"inside passes through", 0.5, 0.5},
		{"below clamps to min", -2, 0},
		{"above clamps to max", 3, 1},
		{"min boundary", 0, 0},
		{"max boundary", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnitInterval.Clamp(tt.value); got != tt.expected {
				t.Errorf("Clamp(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestInterval_NamedIntervals(t *testing.T) {
	if EmptyInterval.Contains(0) {
		t.Error("EmptyInterval should contain nothing")
	}
	if EmptyInterval.Size() >= 0 {
		t.Errorf("EmptyInterval size should be negative, got %v", EmptyInterval.Size())
	}
	if !UniverseInterval.Contains(math.MaxFloat64) || !UniverseInterval.Contains(-math.MaxFloat64) {
		t.Error("UniverseInterval should contain all finite values")
	}
	if UnitInterval.Size() != 1 {
		t.Errorf("UnitInterval size = %v, want 1", UnitInterval.Size())
	}
}
