package utils

import "testing"

func TestPointerSampleMoved(t *testing.T) {
	prev := PointerSample{X: 10, Y: 20}

	tests := []struct {
		name     string
		current  PointerSample
		expected bool
	}{
		{"same position", PointerSample{X: 10, Y: 20, Pressed: true}, false},
		{"x changed", PointerSample{X: 11, Y: 20}, true},
		{"y changed", PointerSample{X: 10, Y: 19}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.current.Moved(prev); got != tt.expected {
				t.Errorf("Moved() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
