// Package main 以无界面方式批量运行逃跑按钮的重定位，并打印统计结果
//
// Usage:
//
//	go run ./cmd/evasion_report [flags]
//
// 默认场景是 390x844 的手机视口、160x52 的按钮，"是"按钮位于视口中部。
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/evasion"
)

type runStats struct {
	runIndex int
	seed     int64
	draws    int

	outOfBounds int
	overlaps    int
	unsatisfied int

	minX, maxX float64
	minY, maxY float64
}

// discardSink 无界面运行时不需要动画
type discardSink struct{}

func (discardSink) SetPosition(x, y float64) {}
func (discardSink) SetTransition(bool)       {}

func main() {
	var runs int
	var draws int
	var seedBase int64
	var seedStep int64
	var viewport string
	var button string
	var affirmative string
	var effectsPath string
	var noAvoid bool

	flag.IntVar(&runs, "runs", 5, "number of independent runs")
	flag.IntVar(&draws, "draws", 1000, "relocations per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&viewport, "viewport", "390x844", "viewport size WxH")
	flag.StringVar(&button, "button", "160x52", "evasive button size WxH")
	flag.StringVar(&affirmative, "yes", "115,396,160,52", "affirmative button rect X,Y,W,H (empty = none)")
	flag.StringVar(&effectsPath, "effects", "", "effects YAML to read evasion parameters from (default: built-in)")
	flag.BoolVar(&noAvoid, "no-avoid", false, "disable affirmative-button avoidance")
	flag.Parse()

	if runs <= 0 || draws <= 0 {
		fmt.Println("error: -runs and -draws must be > 0")
		return
	}

	vw, vh, err := parseSize(viewport)
	if err != nil {
		fmt.Printf("error: -viewport: %v\n", err)
		return
	}
	bw, bh, err := parseSize(button)
	if err != nil {
		fmt.Printf("error: -button: %v\n", err)
		return
	}
	yes, err := parseRect(affirmative)
	if err != nil {
		fmt.Printf("error: -yes: %v\n", err)
		return
	}

	params := evasion.DefaultParams()
	if effectsPath != "" {
		effects, err := config.LoadEffectsConfig(effectsPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		params = effects.Evasion
	}
	if noAvoid {
		params.AvoidAffirmative = false
	}

	fmt.Printf("=== Evasion Relocation Report ===\n")
	fmt.Printf("viewport=%.0fx%.0f button=%.0fx%.0f yes=%s avoid=%v margin=%.0f padding=%.0f max_attempts=%d\n",
		vw, vh, bw, bh, formatRect(yes), params.AvoidAffirmative, params.Margin, params.Padding, params.MaxAttempts)
	fmt.Printf("runs=%d draws=%d seed_base=%d seed_step=%d\n\n", runs, draws, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runRelocations(i+1, seed, draws, params, evasion.Size{W: vw, H: vh}, evasion.Size{W: bw, H: bh}, yes)
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

// runRelocations 通过 Controller 连续触发 draws 次点击，检查每个结果
func runRelocations(runIndex int, seed int64, draws int, params evasion.Params, viewport, button evasion.Size, yes *evasion.Rect) runStats {
	controller := evasion.NewController(params, rand.New(rand.NewSource(seed)), discardSink{})

	rs := runStats{
		runIndex: runIndex,
		seed:     seed,
		minX:     math.Inf(1),
		maxX:     math.Inf(-1),
		minY:     math.Inf(1),
		maxY:     math.Inf(-1),
	}

	container := evasion.Rect{W: viewport.W, H: viewport.H}
	current := evasion.Rect{X: (viewport.W - button.W) / 2, Y: viewport.H/2 + button.H, W: button.W, H: button.H}
	for i := 0; i < draws; i++ {
		before := controller.Unsatisfied()
		btn := current
		out := controller.Handle(evasion.Event{Trigger: evasion.TriggerClick}, evasion.Geometry{
			Container:   &container,
			Button:      &btn,
			Viewport:    viewport,
			Affirmative: yes,
		})
		if !out.Relocated {
			continue
		}
		pos, _ := controller.Position()
		rs.draws++
		if controller.Unsatisfied() > before {
			rs.unsatisfied++
		}

		r := pos.Rect()
		if !withinMargins(r, params.Margin, viewport) {
			rs.outOfBounds++
		}
		if yes != nil && r.Expand(params.Padding).Intersects(*yes) {
			rs.overlaps++
		}
		rs.minX = math.Min(rs.minX, r.X)
		rs.maxX = math.Max(rs.maxX, r.X)
		rs.minY = math.Min(rs.minY, r.Y)
		rs.maxY = math.Max(rs.maxY, r.Y)
		current = r
	}
	return rs
}

// withinMargins 视口放不下按钮加边距时，唯一合法位置就是 margin
func withinMargins(r evasion.Rect, margin float64, viewport evasion.Size) bool {
	maxX := math.Max(margin, viewport.W-r.W-margin)
	maxY := math.Max(margin, viewport.H-r.H-margin)
	return r.X >= margin && r.X <= maxX && r.Y >= margin && r.Y <= maxY
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("draws=%d out_of_bounds=%d padded_overlaps=%d unsatisfied=%d\n",
		rs.draws, rs.outOfBounds, rs.overlaps, rs.unsatisfied)
	if rs.draws > 0 {
		fmt.Printf("x_range=%.1f..%.1f y_range=%.1f..%.1f\n", rs.minX, rs.maxX, rs.minY, rs.maxY)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	total := aggregate(all)
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("draws=%d out_of_bounds=%d padded_overlaps=%d unsatisfied=%d unsatisfied_rate=%.4f\n",
		total.draws, total.outOfBounds, total.overlaps, total.unsatisfied, rate(total.unsatisfied, total.draws))
	if total.draws > 0 {
		fmt.Printf("x_range=%.1f..%.1f y_range=%.1f..%.1f\n", total.minX, total.maxX, total.minY, total.maxY)
	}
}

// aggregate 合并所有运行的计数与坐标范围
func aggregate(all []runStats) runStats {
	total := runStats{
		minX: math.Inf(1),
		maxX: math.Inf(-1),
		minY: math.Inf(1),
		maxY: math.Inf(-1),
	}
	for _, rs := range all {
		total.draws += rs.draws
		total.outOfBounds += rs.outOfBounds
		total.overlaps += rs.overlaps
		total.unsatisfied += rs.unsatisfied
		if rs.draws == 0 {
			continue
		}
		total.minX = math.Min(total.minX, rs.minX)
		total.maxX = math.Max(total.maxX, rs.maxX)
		total.minY = math.Min(total.minY, rs.minY)
		total.maxY = math.Max(total.maxY, rs.maxY)
	}
	return total
}

func rate(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// parseSize 解析 "WxH"
func parseSize(s string) (float64, float64, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WxH, got %q", s)
	}
	w, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q: %w", parts[0], err)
	}
	h, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q: %w", parts[1], err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size must be positive, got %q", s)
	}
	return w, h, nil
}

// parseRect 解析 "X,Y,W,H"；空字符串返回 nil
func parseRect(s string) (*evasion.Rect, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("expected X,Y,W,H, got %q", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}
		v[i] = f
	}
	return &evasion.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
}

func formatRect(r *evasion.Rect) string {
	if r == nil {
		return "none"
	}
	return fmt.Sprintf("%.0f,%.0f,%.0fx%.0f", r.X, r.Y, r.W, r.H)
}
