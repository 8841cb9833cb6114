package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/game"
	"github.com/decker502/broadside/pkg/systems"
	"github.com/decker502/broadside/pkg/upgrades"
	"github.com/decker502/broadside/pkg/utils"
)

// noPick 本帧没有选择升级项
const noPick = -1

// ArenaScene 竞技场场景
// 把键盘输入转换为 game.Input，并在等待升级阶段显示升级选择浮层
type ArenaScene struct {
	manager *SceneManager
	arena   *game.Arena
	rng     systems.RandomSource

	choices  []upgrades.Upgrade
	snapshot game.Snapshot
}

// NewArenaScene 创建新的一局
//
// 参数:
//   - manager: 场景管理器（游戏结束时切换场景）
//   - cfg: 竞技场配置
//   - rng: 随机数来源（竞技场与升级抽取共用）
func NewArenaScene(manager *SceneManager, cfg *config.ArenaConfig, rng systems.RandomSource) *ArenaScene {
	arena := game.NewArena(cfg, rng)
	log.Printf("[ArenaScene] New run started")
	return &ArenaScene{
		manager:  manager,
		arena:    arena,
		rng:      rng,
		snapshot: arena.Snapshot(),
	}
}

// Arena 返回底层竞技场
func (s *ArenaScene) Arena() *game.Arena {
	return s.arena
}

// Choices 当前显示的升级候选
func (s *ArenaScene) Choices() []upgrades.Upgrade {
	return s.choices
}

// Update 读取键盘并推进一帧
func (s *ArenaScene) Update(deltaTime float64) {
	s.advance(deltaTime, readInput(), readUpgradePick())
}

// advance 推进一帧
//
// 参数:
//   - deltaTime: 帧间隔（毫秒）
//   - input: 移动与暂停输入
//   - pick: 升级候选下标，noPick 表示未选择
func (s *ArenaScene) advance(deltaTime float64, input game.Input, pick int) {
	if s.arena.Phase() == game.PhaseAwaitingUpgrade && pick >= 0 && pick < len(s.choices) {
		chosen := s.choices[pick]
		if s.arena.ApplyUpgrade(chosen.Func()) {
			log.Printf("[ArenaScene] Upgrade chosen: %s", chosen.Name)
		}
		s.choices = nil
	}

	result := s.arena.Tick(deltaTime, input)
	s.snapshot = result.Snapshot

	if result.LevelUp != nil {
		s.choices = upgrades.RandomChoices(s.rng, upgrades.DefaultChoiceCount)
	}
	if result.GameOver != nil && s.manager != nil {
		s.manager.SwitchTo(NewGameOverScene(s.manager, s, *result.GameOver))
	}
}

// readInput 方向键 / WASD 移动，Esc 或 P 暂停
func readInput() game.Input {
	var move utils.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		move.Y++
	}

	return game.Input{
		Move:        move,
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
}

// readUpgradePick 数字键 1-3 选择升级
func readUpgradePick() int {
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	for i, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return i
		}
	}
	return noPick
}
