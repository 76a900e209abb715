package config

import (
	"image/color"
	"testing"
	"time"

	"github.com/decker502/valentine/pkg/particle"
)

func TestLoadEffectsConfig_Default(t *testing.T) {
	cfg, err := LoadEffectsConfig("../../data/effects.yaml")
	if err != nil {
		t.Fatalf("Failed to load effects.yaml: %v", err)
	}

	expected := map[particle.Kind]int{
		particle.KindHeart:    20,
		particle.KindSparkle:  30,
		particle.KindConfetti: 50,
		particle.KindBow:      15,
	}
	if len(cfg.Particles) != len(expected) {
		t.Fatalf("len(Particles) = %d, expected %d", len(cfg.Particles), len(expected))
	}
	for _, spec := range cfg.Particles {
		if expected[spec.Kind] != spec.Count {
			t.Errorf("%v count = %d, expected %d", spec.Kind, spec.Count, expected[spec.Kind])
		}
	}

	colors, err := cfg.PaletteColors()
	if err != nil {
		t.Fatalf("PaletteColors() error: %v", err)
	}
	if len(colors) != 6 {
		t.Errorf("len(palette) = %d, expected 6", len(colors))
	}
	if cfg.ClearAfter() != 10*time.Second {
		t.Errorf("ClearAfter() = %v, expected 10s", cfg.ClearAfter())
	}
	if cfg.Evasion.Margin != 20 || cfg.Evasion.MaxAttempts != 50 || !cfg.Evasion.AvoidAffirmative {
		t.Errorf("Evasion = %+v", cfg.Evasion)
	}
}

func TestParseEffectsConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseEffectsConfig([]byte("particles:\n  - kind: sparkle\n    count: 30\n  - kind: confetti\n    count: 50\nevasion:\n  avoidAffirmative: false\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Particles) != 2 {
		t.Errorf("len(Particles) = %d, expected 2", len(cfg.Particles))
	}
	if cfg.HasKind(particle.KindHeart) || cfg.HasKind(particle.KindBow) {
		t.Errorf("hearts/bows should be disabled")
	}
	if !cfg.HasKind(particle.KindSparkle) {
		t.Errorf("sparkles should be enabled")
	}
	if cfg.Evasion.AvoidAffirmative {
		t.Errorf("AvoidAffirmative should be overridden to false")
	}
	if cfg.Evasion.PointerThreshold != 100 || cfg.Evasion.TouchThreshold != 80 {
		t.Errorf("thresholds lost defaults: %+v", cfg.Evasion)
	}
	if cfg.ClearAfterSeconds != 10 {
		t.Errorf("ClearAfterSeconds = %v, expected default 10", cfg.ClearAfterSeconds)
	}
}

func TestParseEffectsConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown kind", "particles:\n  - kind: balloon\n    count: 3\n"},
		{"negative count", "particles:\n  - kind: sparkle\n    count: -1\n"},
		{"bad palette", "palette: [\"#zzzzzz\"]\n"},
		{"empty palette", "palette: []\n"},
		{"zero clear", "clearAfterSeconds: 0\n"},
		{"zero attempts", "evasion:\n  maxAttempts: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEffectsConfig([]byte(tt.yaml)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.RGBA
		wantErr  bool
	}{
		{"#ff6b9d", color.RGBA{R: 0xff, G: 0x6b, B: 0x9d, A: 0xff}, false},
		{"ff69b4", color.RGBA{R: 0xff, G: 0x69, B: 0xb4, A: 0xff}, false},
		{"#fab", color.RGBA{R: 0xff, G: 0xaa, B: 0xbb, A: 0xff}, false},
		{"#ff6b9d80", color.RGBA{R: 0xff, G: 0x6b, B: 0x9d, A: 0x80}, false},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("ParseHexColor(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
