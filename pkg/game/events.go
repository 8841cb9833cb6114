package game

import "github.com/decker502/broadside/pkg/utils"

// Phase 竞技场运行阶段
type Phase int

const (
	// PhaseRunning 正常模拟
	PhaseRunning Phase = iota
	// PhasePausedByUser 玩家手动暂停
	PhasePausedByUser
	// PhaseAwaitingUpgrade 升级后等待外部选择升级项
	PhaseAwaitingUpgrade
	// PhaseGameOver 玩家阵亡，终止状态
	PhaseGameOver
)

// String 返回阶段名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePausedByUser:
		return "paused"
	case PhaseAwaitingUpgrade:
		return "awaiting_upgrade"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input 每帧输入
type Input struct {
	Move        utils.Vec2 // 移动意图，由调用方归一化
	TogglePause bool       // 本帧是否按下了暂停键
}

// Snapshot HUD 所需的状态快照
type Snapshot struct {
	Health          float64
	MaxHealth       float64
	XP              int
	XPToNextLevel   int
	Level           int
	ElapsedGameTime float64 // 毫秒，不含暂停时间
	Kills           int

	Phase        Phase
	Difficulty   int
	ScrollOffset utils.Vec2 // 海面纹理偏移
}

// LevelUpEvent 升级事件，外部据此弹出升级选择
type LevelUpEvent struct {
	Level int // 升级后的等级
}

// GameOverEvent 游戏结束事件（只发出一次）
type GameOverEvent struct {
	ElapsedGameTime float64
	Kills           int
	Level           int
}

// TickResult 一次 Tick 的输出
type TickResult struct {
	Snapshot Snapshot
	LevelUp  *LevelUpEvent
	GameOver *GameOverEvent
}
