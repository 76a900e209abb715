package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultContentPath 默认文案配置路径（嵌入资源）
const DefaultContentPath = "data/content.yaml"

// ContentConfig 贺卡的全部展示文案与图片引用
//
// 启动时加载一次，之后只读。字段与 data/content.yaml 的键一一对应：
//
//	metadata.title / metadata.description
//	question
//	buttons.yes / buttons.no
//	success.mainMessage / success.subtitle
//	images.helloKitty / images.helloKittyHappy       （图片替代文字）
//	imageUrls.helloKitty / imageUrls.helloKittyHappy （图片地址）
type ContentConfig struct {
	Metadata  MetadataConfig `yaml:"metadata"`
	Question  string         `yaml:"question"`
	Buttons   ButtonsConfig  `yaml:"buttons"`
	Success   SuccessConfig  `yaml:"success"`
	Images    ImagesConfig   `yaml:"images"`
	ImageURLs ImagesConfig   `yaml:"imageUrls"`
}

// MetadataConfig 窗口标题与描述
type MetadataConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ButtonsConfig 两个按钮的文字
type ButtonsConfig struct {
	Yes string `yaml:"yes"`
	No  string `yaml:"no"`
}

// SuccessConfig 接受后显示的文案
type SuccessConfig struct {
	MainMessage string `yaml:"mainMessage"`
	Subtitle    string `yaml:"subtitle"`
}

// ImagesConfig 问题场景与庆祝场景各一张图片
// 同一结构既用于替代文字（images）也用于地址（imageUrls）
type ImagesConfig struct {
	HelloKitty      string `yaml:"helloKitty"`
	HelloKittyHappy string `yaml:"helloKittyHappy"`
}

// LoadContentConfig 加载文案配置
//
// 路径优先从嵌入资源读取，不存在时回退到文件系统（用于 -content 覆盖）。
func LoadContentConfig(path string) (*ContentConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content config: %w", err)
	}

	cfg, err := ParseContentConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load content config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseContentConfig 解析并校验 YAML 文案
func ParseContentConfig(data []byte) (*ContentConfig, error) {
	var cfg ContentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse content config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content config: %w", err)
	}

	return &cfg, nil
}

// Validate 检查必需的键
//
// 问题、两个按钮和主祝福语缺一不可；描述、副标题和图片都允许为空。
func (c *ContentConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Question) == "" {
		missing = append(missing, "question")
	}
	if strings.TrimSpace(c.Buttons.Yes) == "" {
		missing = append(missing, "buttons.yes")
	}
	if strings.TrimSpace(c.Buttons.No) == "" {
		missing = append(missing, "buttons.no")
	}
	if strings.TrimSpace(c.Success.MainMessage) == "" {
		missing = append(missing, "success.mainMessage")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required keys: %s", strings.Join(missing, ", "))
	}
	return nil
}

// WindowTitle 窗口标题，metadata.title 为空时退回问题文本
func (c *ContentConfig) WindowTitle() string {
	if c.Metadata.Title != "" {
		return c.Metadata.Title
	}
	return c.Question
}
