package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestToSample(t *testing.T) {
	tests := []struct {
		value    float64
		expected uint32
	}{
		{value: 1.4, expected: 1},
		{value: 1.5, expected: 2},
		{value: -20, expected: 0},
		{value: 1e12, expected: math.MaxUint32},
	}

	for _, tt := range tests {
		if got := ToSample(tt.value); got != tt.expected {
			t.Fatalf("ToSample(%v) = %d, want %d", tt.value, got, tt.expected)
		}
	}
}
