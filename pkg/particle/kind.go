package particle

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind 粒子种类
type Kind int

const (
	// KindSparkle 闪光：随机分布在整个画面，带 left/top
	KindSparkle Kind = iota
	// KindConfetti 彩纸：从顶部飘落，带颜色
	KindConfetti
	// KindHeart 爱心：从底部漂浮上升
	KindHeart
	// KindBow 蝴蝶结：从底部漂浮上升
	KindBow
)

// Kinds 所有粒子种类（同时也是渲染顺序）
var Kinds = []Kind{KindHeart, KindSparkle, KindConfetti, KindBow}

var kindNames = map[Kind]string{
	KindSparkle:  "sparkle",
	KindConfetti: "confetti",
	KindHeart:    "heart",
	KindBow:      "bow",
}

// String 返回配置文件中使用的名称
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind 将配置名称解析为 Kind（大小写不敏感）
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown particle kind %q", name)
}

// UnmarshalYAML 支持在 YAML 中直接写 "sparkle" / "confetti" 等名称
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML 输出种类名称
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Spec 描述一次生成：种类与数量
type Spec struct {
	Kind  Kind `yaml:"kind"`
	Count int  `yaml:"count"`
}
