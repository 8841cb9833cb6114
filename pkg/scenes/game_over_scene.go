package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/broadside/pkg/game"
	"github.com/decker502/broadside/pkg/utils"
)

// GameOverScene 结算画面
// 背景保留最后一帧的竞技场，Enter 或 Space 重新开局
type GameOverScene struct {
	manager *SceneManager
	last    *ArenaScene
	summary game.GameOverEvent
}

// NewGameOverScene 创建结算画面
func NewGameOverScene(manager *SceneManager, last *ArenaScene, summary game.GameOverEvent) *GameOverScene {
	log.Printf("[GameOverScene] Survived %s, kills %d, level %d",
		utils.FormatGameTime(summary.ElapsedGameTime), summary.Kills, summary.Level)
	return &GameOverScene{
		manager: manager,
		last:    last,
		summary: summary,
	}
}

// Summary 本局结果
func (s *GameOverScene) Summary() game.GameOverEvent {
	return s.summary
}

// Update 等待重开
func (s *GameOverScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.manager.Restart()
	}
}

// Draw 绘制结算信息
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	if s.last == nil {
		return
	}
	s.last.Draw(screen)
	drawCenteredPanel(screen, s.last.arena.Bounds(), []string{
		"YOUR SHIP HAS SUNK",
		"",
		fmt.Sprintf("Survived: %s", utils.FormatGameTime(s.summary.ElapsedGameTime)),
		fmt.Sprintf("Kills: %d", s.summary.Kills),
		fmt.Sprintf("Level: %d", s.summary.Level),
		"",
		"Press Enter to sail again",
	})
}
