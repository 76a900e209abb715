package components

import "testing"

func TestStateFor(t *testing.T) {
	tests := []struct {
		name                      string
		enabled, hovered, pressed bool
		expected                  UIState
	}{
		{"默认状态", true, false, false, UINormal},
		{"悬停", true, true, false, UIHovered},
		{"按下优先于悬停", true, true, true, UIPressed},
		{"按下但指针已移出", true, false, true, UIPressed},
		{"禁用", false, true, true, UIDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateFor(tt.enabled, tt.hovered, tt.pressed); got != tt.expected {
				t.Errorf("StateFor(%v, %v, %v) = %v, expected %v",
					tt.enabled, tt.hovered, tt.pressed, got, tt.expected)
			}
		})
	}
}

func TestFixedPlacementMoving(t *testing.T) {
	p := &FixedPlacement{Detached: true, X: 10, Y: 10, ToX: 100, ToY: 50, Transition: true, Duration: 0.3}
	if !p.Moving() {
		t.Error("expected placement to be moving")
	}

	p.Elapsed = 0.3
	if p.Moving() {
		t.Error("placement should stop moving once elapsed reaches duration")
	}

	p = &FixedPlacement{Detached: true, X: 100, Y: 50, ToX: 100, ToY: 50, Transition: true, Duration: 0.3}
	if p.Moving() {
		t.Error("placement already at target should not be moving")
	}
}
