package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// AnimationState 动图加载状态
type AnimationState int

const (
	// AnimationLoading 后台加载中
	AnimationLoading AnimationState = iota
	// AnimationReady 已解码，可以绘制
	AnimationReady
	// AnimationFailed 下载或解码失败，调用方继续绘制占位图
	AnimationFailed
)

// String returns the state name for logging.
func (s AnimationState) String() string {
	switch s {
	case AnimationLoading:
		return "loading"
	case AnimationReady:
		return "ready"
	case AnimationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 过短的 GIF 帧间隔按 0.1 秒处理（与浏览器一致）
const (
	minFrameDelay     = 0.02
	defaultFrameDelay = 0.1
)

// frameSet 解码后的帧（合成后的完整画面）
type frameSet struct {
	images []image.Image
	delays []float64 // 每帧显示时长（秒）
	total  float64
	width  int
	height int
}

// Animation 一张可能是动图的图片，由 ResourceManager 在后台加载
type Animation struct {
	ref  string
	done chan struct{}

	mu       sync.Mutex
	state    AnimationState
	err      error
	frames   *frameSet
	textures []*ebiten.Image
}

func newAnimation(ref string) *Animation {
	return &Animation{ref: ref, done: make(chan struct{})}
}

func (a *Animation) ready(frames *frameSet) {
	a.mu.Lock()
	a.frames = frames
	a.textures = make([]*ebiten.Image, len(frames.images))
	a.state = AnimationReady
	a.mu.Unlock()
	close(a.done)
}

func (a *Animation) fail(err error) {
	a.mu.Lock()
	a.err = err
	a.state = AnimationFailed
	a.mu.Unlock()
	close(a.done)
}

// Ref 图片引用（URL 或路径）
func (a *Animation) Ref() string {
	return a.ref
}

// State 当前加载状态
func (a *Animation) State() AnimationState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Err 失败原因；未失败时为 nil
func (a *Animation) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Done 加载结束（成功或失败）时关闭
func (a *Animation) Done() <-chan struct{} {
	return a.done
}

// Size 图片尺寸；未就绪时 ok 为 false
func (a *Animation) Size() (width, height int, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frames == nil {
		return 0, 0, false
	}
	return a.frames.width, a.frames.height, true
}

// FrameCount 帧数；未就绪时为 0
func (a *Animation) FrameCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frames == nil {
		return 0
	}
	return len(a.frames.images)
}

// Frame 返回 elapsed 秒时应显示的帧，未就绪时返回 nil
// 纹理在第一次用到时创建，只能在游戏循环中调用
func (a *Animation) Frame(elapsed float64) *ebiten.Image {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != AnimationReady || len(a.frames.images) == 0 {
		return nil
	}

	i := frameIndex(a.frames.delays, a.frames.total, elapsed)
	if a.textures[i] == nil {
		a.textures[i] = ebiten.NewImageFromImage(a.frames.images[i])
	}
	return a.textures[i]
}

// frameIndex 按帧时长循环播放，返回 elapsed 对应的帧下标
func frameIndex(delays []float64, total, elapsed float64) int {
	if len(delays) <= 1 || total <= 0 {
		return 0
	}
	t := math.Mod(elapsed, total)
	if t < 0 {
		t += total
	}
	for i, d := range delays {
		if t < d {
			return i
		}
		t -= d
	}
	return len(delays) - 1
}

// decodeFrames 解码 GIF（多帧）或其他已注册格式（单帧）
// maxSide > 0 时把超过该尺寸的画面等比缩小
func decodeFrames(data []byte, maxSide int) (*frameSet, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}

	var frames *frameSet
	if g, err := gif.DecodeAll(bytes.NewReader(data)); err == nil {
		frames, err = composeGIF(g)
		if err != nil {
			return nil, err
		}
	} else {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		b := img.Bounds()
		frames = &frameSet{
			images: []image.Image{img},
			delays: []float64{0},
			width:  b.Dx(),
			height: b.Dy(),
		}
	}

	if maxSide > 0 {
		downscale(frames, maxSide)
	}
	return frames, nil
}

// composeGIF 按 GIF 的处置方式把每帧合成为完整画面
func composeGIF(g *gif.GIF) (*frameSet, error) {
	if len(g.Image) == 0 {
		return nil, errors.New("gif has no frames")
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		for _, frame := range g.Image {
			bounds = bounds.Union(frame.Bounds())
		}
	}

	canvas := image.NewRGBA(bounds)
	out := &frameSet{width: bounds.Dx(), height: bounds.Dy()}

	for i, frame := range g.Image {
		disposal := byte(gif.DisposalNone)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = image.NewRGBA(bounds)
			draw.Draw(previous, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

		snapshot := image.NewRGBA(bounds)
		draw.Draw(snapshot, bounds, canvas, bounds.Min, draw.Src)
		out.images = append(out.images, snapshot)

		delay := defaultFrameDelay
		if i < len(g.Delay) && float64(g.Delay[i])/100 >= minFrameDelay {
			delay = float64(g.Delay[i]) / 100
		}
		out.delays = append(out.delays, delay)
		out.total += delay

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return out, nil
}

// downscale 等比缩小所有帧，使最长边不超过 maxSide
func downscale(frames *frameSet, maxSide int) {
	longest := frames.width
	if frames.height > longest {
		longest = frames.height
	}
	if longest <= maxSide || longest == 0 {
		return
	}

	ratio := float64(maxSide) / float64(longest)
	w := int(math.Max(1, math.Round(float64(frames.width)*ratio)))
	h := int(math.Max(1, math.Round(float64(frames.height)*ratio)))

	for i, src := range frames.images {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		frames.images[i] = dst
	}
	frames.width, frames.height = w, h
}
