package config

import "image/color"

// 布局配置常量
// 本文件定义贺卡画面的尺寸、字号、颜色与动画参数

// 窗口与逻辑画面
const (
	// GameWindowWidth 桌面端默认窗口宽度（接近竖屏手机比例）
	GameWindowWidth = 480
	// GameWindowHeight 桌面端默认窗口高度
	GameWindowHeight = 800

	// MobileEmulateWidth/MobileEmulateHeight 模拟手机时的窗口尺寸（390x844）
	MobileEmulateWidth  = 390
	MobileEmulateHeight = 844
)

// 字号（像素）
const (
	QuestionFontSize = 30.0
	ButtonFontSize   = 24.0
	MessageFontSize  = 36.0
	SubtitleFontSize = 20.0
	AltTextFontSize  = 16.0
	EmojiFontSize    = 26.0
)

// 问题场景布局
const (
	// ContentMaxWidth 文本区域最大宽度
	ContentMaxWidth = 420.0
	// ContentSidePadding 窄屏时文本两侧留白
	ContentSidePadding = 24.0
	// ImageSize 图片显示边长
	ImageSize = 200.0
	// ImageBottomGap 图片与问题之间的间距
	ImageBottomGap = 24.0
	// QuestionLineSpacing 问题多行时的行距
	QuestionLineSpacing = 1.25
	// ButtonsTopGap 问题与按钮行之间的间距
	ButtonsTopGap = 32.0
	// ButtonsGap 两个按钮之间的间距
	ButtonsGap = 20.0
	// ButtonPaddingX/ButtonPaddingY 按钮文字内边距
	ButtonPaddingX = 36.0
	ButtonPaddingY = 14.0
	// ButtonCornerRadius 按钮圆角
	ButtonCornerRadius = 26.0
)

// 按钮交互反馈
const (
	// ButtonHoverScale 悬停放大（对应原版 whileHover scale 1.1）
	ButtonHoverScale = 1.1
	// ButtonPressScale 按下缩小
	ButtonPressScale = 0.95
	// ButtonScaleSpeed 缩放插值速度（每秒）
	ButtonScaleSpeed = 12.0
)

// 场景过渡与循环动画（秒）
const (
	// QuestionExitDuration 问题场景淡出缩小时长
	QuestionExitDuration = 0.5
	// AnswerSpringDuration 祝福语弹入时长
	AnswerSpringDuration = 0.7
	// MessageSpringDelay 祝福语相对庆祝场景的延迟
	MessageSpringDelay = 0.2
	// SubtitleFadeDelay 副标题淡入延迟
	SubtitleFadeDelay = 0.5
	// SubtitleFadeDuration 副标题淡入时长
	SubtitleFadeDuration = 0.4
	// SubtitleRiseDistance 副标题淡入时上移距离
	SubtitleRiseDistance = 20.0
	// ImageBobPeriod 问题图片上下浮动周期
	ImageBobPeriod = 3.0
	// ImageBobAmplitude 浮动幅度（像素）
	ImageBobAmplitude = 15.0
	// ImageWobblePeriod 庆祝图片摇摆周期
	ImageWobblePeriod = 2.0
	// ImageWobbleScale 摇摆最大放大
	ImageWobbleScale = 1.1
	// ImageWobbleDegrees 摇摆最大角度
	ImageWobbleDegrees = 5.0
	// MessagePulsePeriod 祝福语呼吸周期
	MessagePulsePeriod = 1.5
)

// 粒子动画（秒）
const (
	// SparkleTwinklePeriod 闪光一次闪烁的周期
	SparkleTwinklePeriod = 1.5
	// SparkleSize 闪光最大半径
	SparkleSize = 9.0
	// ConfettiFallDuration 彩纸从顶部落到底部的时长
	ConfettiFallDuration = 3.0
	// ConfettiSize 彩纸边长
	ConfettiSize = 10.0
	// FloatRiseDuration 爱心/蝴蝶结从底部升到顶部的时长
	FloatRiseDuration = 4.0
	// HeartSize 爱心尺寸
	HeartSize = 22.0
	// BowSize 蝴蝶结尺寸
	BowSize = 26.0
)

// 颜色
var (
	BackgroundTopColor    = color.RGBA{R: 0xff, G: 0xe4, B: 0xf0, A: 0xff}
	BackgroundBottomColor = color.RGBA{R: 0xff, G: 0xc1, B: 0xdc, A: 0xff}
	TextColor             = color.RGBA{R: 0xc2, G: 0x18, B: 0x5b, A: 0xff}
	SubtitleColor         = color.RGBA{R: 0xad, G: 0x14, B: 0x57, A: 0xff}
	YesButtonColor        = color.RGBA{R: 0xff, G: 0x69, B: 0xb4, A: 0xff}
	NoButtonColor         = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	YesTextColor          = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	NoTextColor           = color.RGBA{R: 0xff, G: 0x6b, B: 0x9d, A: 0xff}
	ButtonBorderColor     = color.RGBA{R: 0xff, G: 0x6b, B: 0x9d, A: 0xff}
	SparkleColor          = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	HeartColor            = color.RGBA{R: 0xff, G: 0x2e, B: 0x7e, A: 0xff}
	BowColor              = color.RGBA{R: 0xff, G: 0x4f, B: 0x9a, A: 0xff}
	PlaceholderColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc}
)
