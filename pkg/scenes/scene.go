// Package scenes 贺卡的具体场景
package scenes

import (
	"github.com/decker502/valentine/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// ValentineScene 需要在切换/退出时释放定时器，并跟随视口重新布局
var (
	_ Scene          = (*ValentineScene)(nil)
	_ game.Closer    = (*ValentineScene)(nil)
	_ game.Resizable = (*ValentineScene)(nil)
)
