package scenes

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/evasion"
	"github.com/decker502/valentine/pkg/game"
	"github.com/decker502/valentine/pkg/particle"
	"github.com/decker502/valentine/pkg/session"
	"github.com/decker502/valentine/pkg/systems"
	"github.com/decker502/valentine/pkg/timer"
	"github.com/decker502/valentine/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Phase 贺卡当前显示的阶段
type Phase int

const (
	// PhaseQuestion 显示问题和两个按钮
	PhaseQuestion Phase = iota
	// PhaseLeaving 已接受，问题画面正在淡出
	PhaseLeaving
	// PhaseCelebration 显示祝福语
	PhaseCelebration
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseQuestion:
		return "question"
	case PhaseLeaving:
		return "leaving"
	case PhaseCelebration:
		return "celebration"
	default:
		return "unknown"
	}
}

// Options 创建 ValentineScene 的参数
type Options struct {
	// Content 文案配置（必需）
	Content *config.ContentConfig
	// Effects 特效配置；nil 使用默认值
	Effects *config.EffectsConfig
	// Resources 资源管理器；nil 时不加载字体和图片（只用于测试）
	Resources *game.ResourceManager
	// Rand 随机数源；nil 时按当前时间播种
	Rand *rand.Rand
	// Pointer 指针采样；nil 时读取真实输入
	Pointer systems.PointerSource
}

// ValentineScene 贺卡场景
//
// 问题画面：浮动的图片、问题、"是"按钮和会逃跑的"不"按钮，背景有常驻闪光。
// 点击"是"之后会话进入 Accepted，问题画面淡出，祝福画面弹入，庆祝粒子
// 在 10 秒后被清空（状态保持 Accepted）。
type ValentineScene struct {
	content         *config.ContentConfig
	effects         *config.EffectsConfig
	resourceManager *game.ResourceManager
	rng             *rand.Rand

	clock      *timer.Scheduler
	session    *session.Session
	controller *evasion.Controller

	pointerSystem     *systems.PointerSystem
	buttonSystem      *systems.ButtonSystem
	placementSystem   *systems.PlacementSystem
	ambientSystem     *systems.ParticleRenderSystem
	celebrationSystem *systems.ParticleRenderSystem

	yesButton   *components.ButtonComponent
	noButton    *components.ButtonComponent
	noPlacement *components.FixedPlacement
	yesTarget   *systems.PointerTarget

	// 字体（Resources 为 nil 时全部为 nil）
	questionFont *text.GoTextFace
	buttonFont   *text.GoTextFace
	messageFont  *text.GoTextFace
	subtitleFont *text.GoTextFace
	altFont      *text.GoTextFace

	// 文案（表情符号已转换为矢量图标）
	questionLines []string
	questionIcons []rune
	messageLines  []string
	messageIcons  []rune
	subtitleText  string
	subtitleIcons []rune

	questionImage *game.Animation
	happyImage    *game.Animation

	// 布局
	viewportWidth  float64
	viewportHeight float64
	imageRect      evasion.Rect
	questionTop    float64
	buttonRowY     float64
	buttonRowH     float64
	happyRect      evasion.Rect
	messageTop     float64
	subtitleY      float64
	layer          *ebiten.Image

	elapsed      float64
	phase        Phase
	phaseElapsed float64
	closed       bool
}

// NewValentineScene 创建贺卡场景
func NewValentineScene(opts Options) (*ValentineScene, error) {
	if opts.Content == nil {
		return nil, errors.New("content config is required")
	}
	if err := opts.Content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content config: %w", err)
	}

	effects := opts.Effects
	if effects == nil {
		effects = config.DefaultEffectsConfig()
	}
	if err := effects.Validate(); err != nil {
		return nil, fmt.Errorf("invalid effects config: %w", err)
	}
	palette, err := effects.PaletteColors()
	if err != nil {
		return nil, fmt.Errorf("invalid confetti palette: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &ValentineScene{
		content:         opts.Content,
		effects:         effects,
		resourceManager: opts.Resources,
		rng:             rng,
		clock:           timer.NewScheduler(),
		noPlacement:     &components.FixedPlacement{},
	}

	generator := particle.NewGenerator(rng, palette)
	s.session = session.New(session.Config{
		Particles:  effects.Particles,
		ClearAfter: effects.ClearAfter(),
	}, generator, s.clock)
	s.session.OnAccepted(s.onAccepted)

	s.placementSystem = systems.NewPlacementSystem(s.noPlacement, effects.Evasion.TransitionSeconds)
	s.controller = evasion.NewController(effects.Evasion, rng, s.placementSystem)
	s.buttonSystem = systems.NewButtonSystem(config.ButtonPaddingX, config.ButtonPaddingY,
		config.ButtonCornerRadius, config.ButtonScaleSpeed)

	// 问题画面的装饰闪光与庆祝无关，只生成一次
	ambient := systems.FixedBatches(generator.GenerateAll(effects.Ambient))
	s.ambientSystem = systems.NewParticleRenderSystem(ambient, rng)
	s.celebrationSystem = systems.NewParticleRenderSystem(s.session, rng)

	s.loadResources()
	s.initText()
	s.initButtons()

	s.pointerSystem = systems.NewPointerSystem(opts.Pointer)
	s.yesTarget = s.pointerSystem.Register("yes", s.yesBounds, s.onYesPointer)
	s.pointerSystem.Register("no", s.noBounds, s.onNoPointer)

	log.Printf("[ValentineScene] 场景已创建: %d 种庆祝粒子, 避让\"是\"按钮=%v",
		len(effects.Particles), effects.Evasion.AvoidAffirmative)
	return s, nil
}

// loadResources 加载字体并开始后台加载图片
func (s *ValentineScene) loadResources() {
	rm := s.resourceManager
	if rm == nil {
		return
	}

	load := func(size float64) *text.GoTextFace {
		face, err := rm.LoadDefaultFont(size)
		if err != nil {
			log.Printf("[ValentineScene] 字体加载失败 (%.0f): %v", size, err)
			return nil
		}
		return face
	}
	s.questionFont = load(config.QuestionFontSize)
	s.buttonFont = load(config.ButtonFontSize)
	s.messageFont = load(config.MessageFontSize)
	s.subtitleFont = load(config.SubtitleFontSize)
	s.altFont = load(config.AltTextFontSize)

	s.questionImage = rm.LoadAnimation(s.content.ImageURLs.HelloKitty)
	s.happyImage = rm.LoadAnimation(s.content.ImageURLs.HelloKittyHappy)
}

func (s *ValentineScene) initText() {
	question, icons := utils.ExtractEmoji(s.content.Question)
	s.questionLines = []string{question}
	s.questionIcons = icons

	message, icons := utils.ExtractEmoji(s.content.Success.MainMessage)
	s.messageLines = []string{message}
	s.messageIcons = icons

	s.subtitleText, s.subtitleIcons = utils.ExtractEmoji(s.content.Success.Subtitle)
}

func (s *ValentineScene) initButtons() {
	yesText, yesIcons := utils.ExtractEmoji(s.content.Buttons.Yes)
	s.yesButton = &components.ButtonComponent{
		Text:       yesText,
		Icons:      yesIcons,
		Font:       s.buttonFont,
		TextColor:  config.YesTextColor,
		FillColor:  config.YesButtonColor,
		Scale:      1,
		HoverScale: config.ButtonHoverScale,
		PressScale: config.ButtonPressScale,
		Enabled:    true,
		Visible:    true,
		OnClick:    s.Accept,
	}

	noText, noIcons := utils.ExtractEmoji(s.content.Buttons.No)
	s.noButton = &components.ButtonComponent{
		Text:        noText,
		Icons:       noIcons,
		Font:        s.buttonFont,
		TextColor:   config.NoTextColor,
		FillColor:   config.NoButtonColor,
		BorderColor: config.ButtonBorderColor,
		BorderWidth: 2,
		Scale:       1,
		Enabled:     true,
		Visible:     true,
	}

	s.buttonSystem.Measure(s.yesButton)
	s.buttonSystem.Measure(s.noButton)
}

// SetViewport 视口尺寸变化时重新布局
func (s *ValentineScene) SetViewport(width, height float64) {
	if width == s.viewportWidth && height == s.viewportHeight {
		return
	}
	s.viewportWidth = width
	s.viewportHeight = height

	if s.layer != nil {
		s.layer.Deallocate()
		s.layer = nil
	}
	s.layoutQuestion()
	s.layoutCelebration()
}

func (s *ValentineScene) mounted() bool {
	return s.viewportWidth > 0 && s.viewportHeight > 0
}

func (s *ValentineScene) contentWidth() float64 {
	return math.Max(0, math.Min(config.ContentMaxWidth, s.viewportWidth-2*config.ContentSidePadding))
}

// layoutQuestion 问题画面自上而下：图片、问题（自动换行）、按钮行，整体垂直居中
func (s *ValentineScene) layoutQuestion() {
	question, _ := utils.ExtractEmoji(s.content.Question)
	s.questionLines = utils.WrapText(question, s.questionFont, s.contentWidth())

	lineH := config.QuestionFontSize * config.QuestionLineSpacing
	_, yesH := s.buttonSize(s.yesButton)
	_, noH := s.buttonSize(s.noButton)
	s.buttonRowH = math.Max(yesH, noH)

	total := config.ImageSize + config.ImageBottomGap +
		float64(len(s.questionLines))*lineH + config.ButtonsTopGap + s.buttonRowH
	top := math.Max((s.viewportHeight-total)/2, config.ContentSidePadding)

	s.imageRect = evasion.Rect{
		X: (s.viewportWidth - config.ImageSize) / 2,
		Y: top,
		W: config.ImageSize,
		H: config.ImageSize,
	}
	s.questionTop = top + config.ImageSize + config.ImageBottomGap
	s.buttonRowY = s.questionTop + float64(len(s.questionLines))*lineH + config.ButtonsTopGap
	s.placeButtons()
}

// layoutCelebration 祝福画面：图片、祝福语、副标题，整体垂直居中
func (s *ValentineScene) layoutCelebration() {
	message, _ := utils.ExtractEmoji(s.content.Success.MainMessage)
	s.messageLines = utils.WrapText(message, s.messageFont, s.contentWidth())

	lineH := config.MessageFontSize * config.QuestionLineSpacing
	total := config.ImageSize + config.ImageBottomGap + float64(len(s.messageLines))*lineH
	if s.subtitleText != "" {
		total += config.ImageBottomGap + config.SubtitleFontSize*config.QuestionLineSpacing
	}
	top := math.Max((s.viewportHeight-total)/2, config.ContentSidePadding)

	s.happyRect = evasion.Rect{
		X: (s.viewportWidth - config.ImageSize) / 2,
		Y: top,
		W: config.ImageSize,
		H: config.ImageSize,
	}
	s.messageTop = top + config.ImageSize + config.ImageBottomGap
	s.subtitleY = s.messageTop + float64(len(s.messageLines))*lineH +
		config.ImageBottomGap + config.SubtitleFontSize*config.QuestionLineSpacing/2
}

// buttonSize 按钮尺寸；测量结果为 0（没有字体）时使用默认尺寸
func (s *ValentineScene) buttonSize(b *components.ButtonComponent) (float64, float64) {
	w, h := b.Width, b.Height
	if w <= 0 {
		w = s.effects.Evasion.DefaultWidth
	}
	if h <= 0 {
		h = s.effects.Evasion.DefaultHeight
	}
	return w, h
}

func (s *ValentineScene) buttonRect(b *components.ButtonComponent) evasion.Rect {
	w, h := s.buttonSize(b)
	return evasion.Rect{X: b.X, Y: b.Y, W: w, H: h}
}

// placeButtons 按钮行水平居中
// "不"按钮脱离流式布局后，"是"按钮独自居中，"不"按钮使用固定位置
func (s *ValentineScene) placeButtons() {
	yesW, yesH := s.buttonSize(s.yesButton)
	noW, noH := s.buttonSize(s.noButton)

	if x, y, detached := s.placementSystem.Position(); detached {
		s.yesButton.X = (s.viewportWidth - yesW) / 2
		s.noButton.X, s.noButton.Y = x, y
	} else {
		rowW := yesW + config.ButtonsGap + noW
		s.yesButton.X = (s.viewportWidth - rowW) / 2
		s.noButton.X = s.yesButton.X + yesW + config.ButtonsGap
		s.noButton.Y = s.buttonRowY + (s.buttonRowH-noH)/2
	}
	s.yesButton.Y = s.buttonRowY + (s.buttonRowH-yesH)/2
}

// yesBounds "是"按钮的命中区域（包含悬停缩放）
func (s *ValentineScene) yesBounds() (evasion.Rect, bool) {
	if s.phase != PhaseQuestion || !s.mounted() {
		return evasion.Rect{}, false
	}
	r := s.buttonRect(s.yesButton)
	scale := s.yesButton.Scale
	if scale <= 0 {
		scale = 1
	}
	cx, cy := r.Center()
	w, h := r.W*scale, r.H*scale
	return evasion.Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}, true
}

// noBounds "不"按钮的命中区域
func (s *ValentineScene) noBounds() (evasion.Rect, bool) {
	if s.phase != PhaseQuestion || !s.mounted() {
		return evasion.Rect{}, false
	}
	return s.buttonRect(s.noButton), true
}

// geometry 事件发生时的同步几何信息；视口未知时返回空（控制器忽略事件）
func (s *ValentineScene) geometry() evasion.Geometry {
	if !s.mounted() {
		return evasion.Geometry{}
	}
	container := evasion.Rect{W: s.viewportWidth, H: s.viewportHeight}
	button := s.buttonRect(s.noButton)
	affirmative := s.buttonRect(s.yesButton)
	return evasion.Geometry{
		Container:   &container,
		Button:      &button,
		Viewport:    evasion.Size{W: s.viewportWidth, H: s.viewportHeight},
		Affirmative: &affirmative,
	}
}

// evasionTrigger 把目标事件映射为逃跑触发器
// 鼠标：进入、移动；触摸：按下、跟随移动；两者都有点击
func evasionTrigger(ev systems.PointerEvent) (evasion.Trigger, bool) {
	touch := ev.Kind == utils.PointerTouch
	switch {
	case ev.Type == systems.PointerClick:
		return evasion.TriggerClick, true
	case ev.Type == systems.PointerEnter && !touch:
		return evasion.TriggerPointerEnter, true
	case ev.Type == systems.PointerMove && !touch:
		return evasion.TriggerPointerMove, true
	case ev.Type == systems.PointerDown && touch:
		return evasion.TriggerTouchStart, true
	case ev.Type == systems.PointerMove && touch:
		return evasion.TriggerTouchMove, true
	default:
		return 0, false
	}
}

func (s *ValentineScene) onNoPointer(ev systems.PointerEvent) {
	trigger, ok := evasionTrigger(ev)
	if !ok {
		return
	}
	s.handleNoEvent(evasion.Event{Trigger: trigger, X: ev.X, Y: ev.Y})
}

// handleNoEvent 把事件交给逃跑控制器；点击永远不会生效
func (s *ValentineScene) handleNoEvent(ev evasion.Event) evasion.Outcome {
	out := s.controller.Handle(ev, s.geometry())
	if out.Relocated {
		if pos, ok := s.controller.Position(); ok {
			s.session.SetButtonPosition(pos)
		}
		s.placeButtons()
	}
	return out
}

func (s *ValentineScene) onYesPointer(ev systems.PointerEvent) {
	if ev.Type == systems.PointerClick && s.yesButton.Enabled && s.yesButton.OnClick != nil {
		s.yesButton.OnClick()
	}
}

// Accept 接受邀请（"是"按钮的点击回调）；重复调用无效
func (s *ValentineScene) Accept() {
	s.session.Accept()
}

// onAccepted 会话进入 Accepted：开始问题画面的退场
func (s *ValentineScene) onAccepted() {
	s.phase = PhaseLeaving
	s.phaseElapsed = 0
	s.yesButton.Enabled = false
	log.Printf("[ValentineScene] 已接受，\"不\"按钮共逃跑 %d 次", s.controller.Moves())
}

// Update 更新场景
func (s *ValentineScene) Update(deltaTime float64) {
	if s.closed {
		return
	}
	s.elapsed += deltaTime
	s.phaseElapsed += deltaTime
	s.clock.AdvanceSeconds(deltaTime)

	if s.phase == PhaseQuestion {
		s.pointerSystem.Update()
	}

	s.yesButton.State = components.StateFor(s.yesButton.Enabled, s.yesTarget.Hovered(), s.yesTarget.Pressed())
	s.buttonSystem.Update(s.yesButton, deltaTime)
	s.buttonSystem.Update(s.noButton, deltaTime)

	s.placementSystem.Update(deltaTime)
	s.placeButtons()

	s.ambientSystem.Update(deltaTime)
	s.celebrationSystem.Update(deltaTime)

	if s.phase == PhaseLeaving && s.phaseElapsed >= config.QuestionExitDuration {
		s.phase = PhaseCelebration
		s.phaseElapsed = 0
		log.Printf("[ValentineScene] 切换到祝福画面")
	}
}

// Close 结束场景：取消清理定时器，释放离屏图层
// 可重复调用
func (s *ValentineScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.session.Close()
	s.clock.StopAll()
	if s.layer != nil {
		s.layer.Deallocate()
		s.layer = nil
	}
	log.Printf("[ValentineScene] 场景已关闭")
}

// Session 当前会话
func (s *ValentineScene) Session() *session.Session {
	return s.session
}

// Controller 逃跑按钮控制器
func (s *ValentineScene) Controller() *evasion.Controller {
	return s.controller
}

// Phase 当前阶段
func (s *ValentineScene) Phase() Phase {
	return s.phase
}

// YesButtonRect "是"按钮的未缩放矩形
func (s *ValentineScene) YesButtonRect() evasion.Rect {
	return s.buttonRect(s.yesButton)
}

// NoButtonRect "不"按钮的当前矩形（过渡中为动画位置）
func (s *ValentineScene) NoButtonRect() evasion.Rect {
	return s.buttonRect(s.noButton)
}
