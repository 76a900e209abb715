package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 按钮组件
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，绘制与缩放动画由 systems.ButtonSystem 负责
//   - 圆角矩形 + 居中文字，不依赖图片资源
//   - X/Y 为未缩放时的左上角，缩放以按钮中心为原点
type ButtonComponent struct {
	// ===== 按钮文字 =====
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色
	TextColor color.RGBA
	// Icons 文字后面绘制的矢量图标（由表情符号转换而来）
	Icons []rune

	// ===== 外观 =====
	// FillColor 背景填充色
	FillColor color.RGBA
	// BorderColor 边框颜色（A 为 0 时不绘制边框）
	BorderColor color.RGBA
	// BorderWidth 边框宽度
	BorderWidth float32

	// ===== 按钮位置与尺寸 =====
	X, Y float64
	// Width 按钮总宽度（像素，由文字尺寸 + 内边距计算）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// ===== 交互反馈 =====
	// Scale 当前缩放（动画中的值）
	Scale float64
	// HoverScale 悬停时的目标缩放；为 0 表示悬停不缩放
	HoverScale float64
	// PressScale 按下时的目标缩放；为 0 表示按下不缩放
	PressScale float64

	// ===== 按钮状态 =====
	// State 当前交互状态（Normal/Hovered/Pressed/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Visible 是否绘制
	Visible bool

	// ===== 点击回调 =====
	// OnClick 点击回调函数
	OnClick func()
}
