package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Monthly compounding result", 1104.7130674412967, 1104.71},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.004, 100.0, 0.01) {
		t.Errorf("expected values within tolerance")
	}
	if WithinTolerance(100.02, 100.0, 0.01) {
		t.Errorf("expected values outside tolerance")
	}
}

func TestPercentConversions(t *testing.T) {
	tests := []struct {
		percent  float64
		fraction float64
	}{
		{7, 0.07},
		{0, 0},
		{100, 1},
		{2.5, 0.025},
	}

	for _, tt := range tests {
		if got := PercentToFraction(tt.percent); math.Abs(got-tt.fraction) > 1e-12 {
			t.Errorf("PercentToFraction(%v) = %v, want %v", tt.percent, got, tt.fraction)
		}
		if got := FractionToPercent(tt.fraction); math.Abs(got-tt.percent) > 1e-12 {
			t.Errorf("FractionToPercent(%v) = %v, want %v", tt.fraction, got, tt.percent)
		}
	}
}
