// Package scenes 提供 Ebitengine 外壳的场景层
//
// 场景只负责输入映射和绘制，模拟逻辑全部在 game.Arena 中。
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the shell (arena, game over).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic.
	// deltaTime is the time elapsed since the last update in milliseconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
