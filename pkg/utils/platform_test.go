//go:build !mobile

package utils

import "testing"

func TestIsMobile(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"", false},
		{"0", false},
		{"1", true},
	}

	for _, tt := range tests {
		t.Setenv(MobileEmulateEnv, tt.env)
		if got := IsMobile(); got != tt.expected {
			t.Errorf("IsMobile() with %s=%q = %v, expected %v", MobileEmulateEnv, tt.env, got, tt.expected)
		}
	}
}
