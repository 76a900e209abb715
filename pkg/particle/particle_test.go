package particle

import (
	"image/color"
	"math/rand"
	"testing"

	"gopkg.in/yaml.v3"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), nil)
}

// TestGenerateSparkle 30 个闪光：ID 连续、坐标在 [0,100)
func TestGenerateSparkle(t *testing.T) {
	g := newTestGenerator(1)
	batch := g.Generate(KindSparkle, 30)

	if len(batch) != 30 {
		t.Fatalf("len(batch) = %d, expected 30", len(batch))
	}
	for i, p := range batch {
		if p.ID != i {
			t.Errorf("batch[%d].ID = %d, expected %d", i, p.ID, i)
		}
		if p.Left < 0 || p.Left >= 100 {
			t.Errorf("batch[%d].Left = %f, out of [0,100)", i, p.Left)
		}
		if p.Top < 0 || p.Top >= 100 {
			t.Errorf("batch[%d].Top = %f, out of [0,100)", i, p.Top)
		}
	}
}

// TestGenerateConfetti 50 个彩纸：颜色必须来自调色板
func TestGenerateConfetti(t *testing.T) {
	g := newTestGenerator(2)
	batch := g.Generate(KindConfetti, 50)

	if len(batch) != 50 {
		t.Fatalf("len(batch) = %d, expected 50", len(batch))
	}

	inPalette := make(map[color.RGBA]bool, len(DefaultPalette))
	for _, c := range DefaultPalette {
		inPalette[c] = true
	}

	for i, p := range batch {
		if p.ID != i {
			t.Errorf("batch[%d].ID = %d, expected %d", i, p.ID, i)
		}
		if !inPalette[p.Color] {
			t.Errorf("batch[%d].Color = %v, not in palette", i, p.Color)
		}
		if p.Delay < 0 || p.Delay >= MaxDelay {
			t.Errorf("batch[%d].Delay = %f, out of [0,%v)", i, p.Delay, MaxDelay)
		}
		if p.Left < 0 || p.Left >= 100 {
			t.Errorf("batch[%d].Left = %f, out of [0,100)", i, p.Left)
		}
	}
}

func TestGenerateFloatingKinds(t *testing.T) {
	g := newTestGenerator(3)

	for _, kind := range []Kind{KindHeart, KindBow} {
		t.Run(kind.String(), func(t *testing.T) {
			batch := g.Generate(kind, 20)
			if len(batch) != 20 {
				t.Fatalf("len(batch) = %d, expected 20", len(batch))
			}
			for i, p := range batch {
				if p.Color != (color.RGBA{}) {
					t.Errorf("batch[%d].Color = %v, expected zero value", i, p.Color)
				}
				if p.Top != 0 {
					t.Errorf("batch[%d].Top = %f, expected 0", i, p.Top)
				}
				if p.Delay < 0 || p.Delay >= MaxDelay {
					t.Errorf("batch[%d].Delay = %f, out of range", i, p.Delay)
				}
			}
		})
	}
}

func TestGenerateNonPositiveCount(t *testing.T) {
	g := newTestGenerator(4)
	for _, n := range []int{0, -5} {
		batch := g.Generate(KindSparkle, n)
		if batch == nil || len(batch) != 0 {
			t.Errorf("Generate(sparkle, %d) = %v, expected empty non-nil batch", n, batch)
		}
	}
}

func TestGenerateCustomPalette(t *testing.T) {
	only := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	g := NewGenerator(rand.New(rand.NewSource(5)), []color.RGBA{only})

	for _, p := range g.Generate(KindConfetti, 10) {
		if p.Color != only {
			t.Errorf("Color = %v, expected %v", p.Color, only)
		}
	}
}

func TestGenerateAll(t *testing.T) {
	g := newTestGenerator(6)
	batches := g.GenerateAll([]Spec{
		{Kind: KindSparkle, Count: 30},
		{Kind: KindConfetti, Count: 50},
	})

	if len(batches) != 2 {
		t.Fatalf("len(batches) = %d, expected 2", len(batches))
	}
	if got := len(batches[KindSparkle]); got != 30 {
		t.Errorf("sparkle count = %d, expected 30", got)
	}
	if got := len(batches[KindConfetti]); got != 50 {
		t.Errorf("confetti count = %d, expected 50", got)
	}
	if _, ok := batches[KindHeart]; ok {
		t.Errorf("heart batch should not be generated")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Kind
		wantErr  bool
	}{
		{"sparkle", "sparkle", KindSparkle, false},
		{"uppercase confetti", "CONFETTI", KindConfetti, false},
		{"padded heart", "  heart ", KindHeart, false},
		{"bow", "bow", KindBow, false},
		{"unknown", "balloon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("ParseKind(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSpecYAML(t *testing.T) {
	var specs []Spec
	data := []byte("- kind: sparkle\n  count: 30\n- kind: bow\n  count: 15\n")
	if err := yaml.Unmarshal(data, &specs); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if len(specs) != 2 || specs[0].Kind != KindSparkle || specs[1].Kind != KindBow || specs[1].Count != 15 {
		t.Errorf("specs = %+v, unexpected", specs)
	}

	if err := yaml.Unmarshal([]byte("- kind: rocket\n  count: 1\n"), &specs); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}

func TestRenderTimeSampling(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	round, square := 0, 0
	for i := 0; i < 200; i++ {
		if s := Stagger(rng); s < 0 || s >= MaxStagger {
			t.Fatalf("Stagger = %f, out of [0,%v)", s, MaxStagger)
		}
		if RoundShape(rng) {
			round++
		} else {
			square++
		}
	}
	if round == 0 || square == 0 {
		t.Errorf("RoundShape never produced both shapes (round=%d square=%d)", round, square)
	}
}
