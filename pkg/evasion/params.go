package evasion

import "fmt"

// Params 逃跑按钮的可调参数（对应 data/effects.yaml 的 evasion 段）
type Params struct {
	// Margin 与视口边缘的最小距离
	Margin float64 `yaml:"margin"`
	// Padding 避让确认按钮时候选矩形向外扩展的距离
	Padding float64 `yaml:"padding"`
	// MaxAttempts 避让采样的最大次数
	MaxAttempts int `yaml:"maxAttempts"`
	// PointerThreshold 鼠标移动触发逃跑的距离（到按钮中心）
	PointerThreshold float64 `yaml:"pointerThreshold"`
	// TouchThreshold 触摸移动触发逃跑的距离
	TouchThreshold float64 `yaml:"touchThreshold"`
	// DefaultWidth/DefaultHeight 首帧尚未测量到尺寸时的兜底值
	DefaultWidth  float64 `yaml:"defaultWidth"`
	DefaultHeight float64 `yaml:"defaultHeight"`
	// TransitionSeconds 第二次起移动的缓动时长
	TransitionSeconds float64 `yaml:"transitionSeconds"`
	// AvoidAffirmative 是否避开确认按钮
	AvoidAffirmative bool `yaml:"avoidAffirmative"`
}

// DefaultParams 返回默认参数
func DefaultParams() Params {
	return Params{
		Margin:            20,
		Padding:           30,
		MaxAttempts:       50,
		PointerThreshold:  100,
		TouchThreshold:    80,
		DefaultWidth:      200,
		DefaultHeight:     60,
		TransitionSeconds: 0.3,
		AvoidAffirmative:  true,
	}
}

// Validate 检查参数是否合理
func (p Params) Validate() error {
	if p.Margin < 0 {
		return fmt.Errorf("margin must be >= 0, got %.1f", p.Margin)
	}
	if p.Padding < 0 {
		return fmt.Errorf("padding must be >= 0, got %.1f", p.Padding)
	}
	if p.MaxAttempts < 1 {
		return fmt.Errorf("maxAttempts must be >= 1, got %d", p.MaxAttempts)
	}
	if p.PointerThreshold <= 0 || p.TouchThreshold <= 0 {
		return fmt.Errorf("thresholds must be > 0, got pointer=%.1f touch=%.1f",
			p.PointerThreshold, p.TouchThreshold)
	}
	if p.DefaultWidth <= 0 || p.DefaultHeight <= 0 {
		return fmt.Errorf("default size must be > 0, got %.1fx%.1f", p.DefaultWidth, p.DefaultHeight)
	}
	if p.TransitionSeconds < 0 {
		return fmt.Errorf("transitionSeconds must be >= 0, got %.2f", p.TransitionSeconds)
	}
	return nil
}
