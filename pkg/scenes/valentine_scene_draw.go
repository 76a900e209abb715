package scenes

import (
	"math"

	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/evasion"
	"github.com/decker502/valentine/pkg/game"
	"github.com/decker502/valentine/pkg/systems"
	"github.com/decker502/valentine/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Draw 绘制场景
// 顺序：渐变背景 → 装饰闪光 → 庆祝粒子 → 当前画面（离屏图层，整体淡入淡出/缩放）
func (s *ValentineScene) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w <= 0 || h <= 0 {
		return
	}

	systems.DrawVerticalGradient(screen, w, h, config.BackgroundTopColor, config.BackgroundBottomColor)

	if s.phase != PhaseCelebration {
		s.ambientSystem.Draw(screen, w, h)
	}
	s.celebrationSystem.Draw(screen, w, h)

	layer := s.ensureLayer(bounds.Dx(), bounds.Dy())
	layer.Clear()

	var alpha, scale float64
	if s.phase == PhaseCelebration {
		s.drawCelebration(layer)
		alpha, scale = s.celebrationTransform()
	} else {
		s.drawQuestion(layer)
		alpha, scale = s.questionTransform()
	}
	if alpha <= 0 || scale <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(w/2, h/2)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(layer, op)
}

func (s *ValentineScene) ensureLayer(w, h int) *ebiten.Image {
	if s.layer != nil {
		b := s.layer.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return s.layer
		}
		s.layer.Deallocate()
	}
	s.layer = ebiten.NewImage(w, h)
	return s.layer
}

// questionTransform 问题画面：0.5 秒淡入放大到 1，接受后 0.5 秒淡出缩小到 0.8
func (s *ValentineScene) questionTransform() (alpha, scale float64) {
	in := utils.EaseOutCubic(utils.Progress(s.elapsed, 0, config.QuestionExitDuration))
	alpha = in
	scale = utils.Lerp(0.8, 1, in)

	if s.phase == PhaseLeaving {
		out := utils.EaseInCubic(utils.Progress(s.phaseElapsed, 0, config.QuestionExitDuration))
		alpha *= 1 - out
		scale *= utils.Lerp(1, 0.8, out)
	}
	return alpha, scale
}

// celebrationTransform 祝福画面：从 0 弹性放大到 1
func (s *ValentineScene) celebrationTransform() (alpha, scale float64) {
	p := utils.Progress(s.phaseElapsed, 0, config.AnswerSpringDuration)
	return utils.Clamp01(p * 2), utils.EaseOutBack(p)
}

func (s *ValentineScene) drawQuestion(dst *ebiten.Image) {
	cx := s.viewportWidth / 2

	// 图片上下浮动：0 → -15 → 0，3 秒一个周期
	bob := -config.ImageBobAmplitude * (1 - math.Cos(2*math.Pi*s.elapsed/config.ImageBobPeriod)) / 2
	rect := s.imageRect
	rect.Y += bob
	s.drawImage(dst, s.questionImage, rect, s.content.Images.HelloKitty, 1, 0)

	lineH := config.QuestionFontSize * config.QuestionLineSpacing
	if s.questionFont != nil {
		for i, line := range s.questionLines {
			var icons []rune
			if i == len(s.questionLines)-1 {
				icons = s.questionIcons
			}
			y := s.questionTop + float64(i)*lineH + lineH/2
			systems.DrawLabel(dst, line, icons, s.questionFont, cx, y, 1, config.TextColor, 1)
		}
	}

	s.buttonSystem.Draw(dst, s.yesButton, 1)
	s.buttonSystem.Draw(dst, s.noButton, 1)
}

func (s *ValentineScene) drawCelebration(dst *ebiten.Image) {
	cx := s.viewportWidth / 2

	// 图片摇摆：放大到 1.1 再回到 1，同时 0 → 5° → -5° → 0，2 秒一个周期
	phase := s.elapsed / config.ImageWobblePeriod
	wobbleScale := 1 + (config.ImageWobbleScale-1)*math.Pow(math.Sin(math.Pi*phase), 2)
	wobbleAngle := config.ImageWobbleDegrees * math.Pi / 180 * math.Sin(2*math.Pi*phase)
	s.drawImage(dst, s.happyImage, s.happyRect, s.content.Images.HelloKittyHappy, wobbleScale, wobbleAngle)

	if s.messageFont != nil {
		spring := utils.EaseOutBack(utils.Progress(s.phaseElapsed, config.MessageSpringDelay, config.AnswerSpringDuration))
		pulse := 1 + 0.05*math.Sin(2*math.Pi*s.elapsed/config.MessagePulsePeriod)
		lineH := config.MessageFontSize * config.QuestionLineSpacing
		for i, line := range s.messageLines {
			var icons []rune
			if i == len(s.messageLines)-1 {
				icons = s.messageIcons
			}
			y := s.messageTop + float64(i)*lineH + lineH/2
			systems.DrawLabel(dst, line, icons, s.messageFont, cx, y, spring*pulse, config.TextColor, 1)
		}
	}

	if s.subtitleFont != nil && (s.subtitleText != "" || len(s.subtitleIcons) > 0) {
		fade := utils.EaseOutQuad(utils.Progress(s.phaseElapsed, config.SubtitleFadeDelay, config.SubtitleFadeDuration))
		if fade > 0 {
			y := s.subtitleY + config.SubtitleRiseDistance*(1-fade)
			systems.DrawLabel(dst, s.subtitleText, s.subtitleIcons, s.subtitleFont, cx, y, 1, config.SubtitleColor, fade)
		}
	}
}

// drawImage 绘制动图的当前帧（等比缩放放入 rect）；未就绪或加载失败时绘制带替代文字的占位
func (s *ValentineScene) drawImage(dst *ebiten.Image, anim *game.Animation, rect evasion.Rect, alt string, scale, angle float64) {
	cx, cy := rect.Center()

	if anim != nil {
		if frame := anim.Frame(s.elapsed); frame != nil {
			fb := frame.Bounds()
			fw, fh := float64(fb.Dx()), float64(fb.Dy())
			fit := math.Min(rect.W/fw, rect.H/fh)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-fw/2, -fh/2)
			op.GeoM.Scale(fit*scale, fit*scale)
			op.GeoM.Rotate(angle)
			op.GeoM.Translate(cx, cy)
			op.Filter = ebiten.FilterLinear
			dst.DrawImage(frame, op)
			return
		}
	}

	w, h := rect.W*scale, rect.H*scale
	systems.DrawPlaceholder(dst, cx-w/2, cy-h/2, w, h, alt, s.altFont, 1)
}
