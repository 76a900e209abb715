package config

import (
	"fmt"
	"image/color"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/valentine/pkg/evasion"
	"github.com/decker502/valentine/pkg/particle"
)

// DefaultEffectsPath 默认特效配置路径（嵌入资源）
const DefaultEffectsPath = "data/effects.yaml"

// EffectsConfig 粒子与逃跑按钮的全部可调参数
//
// 配置文件位置: data/effects.yaml
type EffectsConfig struct {
	// Particles 接受时生成的粒子（列表即启用的种类集合）
	Particles []particle.Spec `yaml:"particles"`
	// Ambient 问题场景背景的常驻装饰，不随庆祝清理
	Ambient []particle.Spec `yaml:"ambient"`
	// Palette 彩纸颜色（#rrggbb）
	Palette []string `yaml:"palette"`
	// ClearAfterSeconds 庆祝粒子展示时长
	ClearAfterSeconds float64 `yaml:"clearAfterSeconds"`
	// Evasion 逃跑按钮参数
	Evasion evasion.Params `yaml:"evasion"`
}

// DefaultEffectsConfig 默认配置：爱心、闪光、彩纸、蝴蝶结全部启用，避让确认按钮
func DefaultEffectsConfig() *EffectsConfig {
	return &EffectsConfig{
		Particles: []particle.Spec{
			{Kind: particle.KindHeart, Count: 20},
			{Kind: particle.KindSparkle, Count: 30},
			{Kind: particle.KindConfetti, Count: 50},
			{Kind: particle.KindBow, Count: 15},
		},
		Ambient: []particle.Spec{
			{Kind: particle.KindSparkle, Count: 12},
		},
		Palette:           []string{"#ff6b9d", "#ffb3d9", "#ffc0e5", "#ffd6e8", "#ffe5f1", "#ff69b4"},
		ClearAfterSeconds: 10,
		Evasion:           evasion.DefaultParams(),
	}
}

// LoadEffectsConfig 加载特效配置，文件中未出现的字段保留默认值
func LoadEffectsConfig(path string) (*EffectsConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effects config: %w", err)
	}

	cfg, err := ParseEffectsConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load effects config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseEffectsConfig 在默认配置之上解析 YAML 并校验
func ParseEffectsConfig(data []byte) (*EffectsConfig, error) {
	cfg := DefaultEffectsConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effects config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid effects config: %w", err)
	}
	return cfg, nil
}

// Validate 校验配置
func (c *EffectsConfig) Validate() error {
	for _, specs := range [][]particle.Spec{c.Particles, c.Ambient} {
		for _, spec := range specs {
			if spec.Count < 0 {
				return fmt.Errorf("particle %s count must be >= 0, got %d", spec.Kind, spec.Count)
			}
		}
	}

	if len(c.Palette) == 0 {
		return fmt.Errorf("palette must not be empty")
	}
	if _, err := c.PaletteColors(); err != nil {
		return err
	}

	if c.ClearAfterSeconds <= 0 {
		return fmt.Errorf("clearAfterSeconds must be > 0, got %.2f", c.ClearAfterSeconds)
	}

	if err := c.Evasion.Validate(); err != nil {
		return fmt.Errorf("evasion: %w", err)
	}
	return nil
}

// PaletteColors 解析调色板
func (c *EffectsConfig) PaletteColors() ([]color.RGBA, error) {
	colors := make([]color.RGBA, 0, len(c.Palette))
	for _, hex := range c.Palette {
		col, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// ClearAfter 展示时长
func (c *EffectsConfig) ClearAfter() time.Duration {
	return time.Duration(c.ClearAfterSeconds * float64(time.Second))
}

// HasKind 庆祝粒子中是否启用了指定种类
func (c *EffectsConfig) HasKind(kind particle.Kind) bool {
	for _, spec := range c.Particles {
		if spec.Kind == kind && spec.Count > 0 {
			return true
		}
	}
	return false
}
