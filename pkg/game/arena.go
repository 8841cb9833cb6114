// Package game 实现竞技场模拟的编排层
//
// Arena 持有所有实体池与调度器，按固定顺序推进每一帧，并处理
// 敌人死亡掉落、宝石收集升级、玩家阵亡等跨实体的交接。
// 渲染和输入映射由外部外壳负责，Arena 只通过 Tick 的返回值向外发出事件。
package game

import (
	"log"

	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/ecs"
	"github.com/decker502/broadside/pkg/entities"
	"github.com/decker502/broadside/pkg/systems"
	"github.com/decker502/broadside/pkg/utils"
)

// 海面纹理偏移系数（速度 × 帧间隔毫秒 × 系数）
const scrollFactor = 0.001

// UpgradeFunc 升级效果：由外部升级流程提供的属性变换
type UpgradeFunc func(entities.Attributes) entities.Attributes

// Arena 竞技场控制器
//
// 单线程使用：所有方法都只能在同一个帧循环 goroutine 中调用。
type Arena struct {
	cfg          *config.ArenaConfig
	bounds       utils.Rect
	flightLimits utils.Rect

	player      *entities.Player
	hostiles    *ecs.Pool[*entities.Hostile]
	projectiles *ecs.Pool[*entities.Projectile]
	pickups     *ecs.Pool[*entities.Pickup]
	pickupQueue *ecs.HandleQueue // 活跃宝石的生成顺序

	engine  *systems.DifficultyEngine
	spawner *systems.SpawnDirector
	combat  *systems.CombatDirector
	physics *systems.PhysicsSystem

	phase           Phase
	frameTime       float64 // 帧时间，暂停期间同样推进
	elapsedGameTime float64 // 游戏时间，暂停期间停止
	kills           int
	scrollOffset    utils.Vec2
	recycledPickups int

	// 本帧产生的事件
	levelUp  *LevelUpEvent
	gameOver *GameOverEvent
}

// NewArena 按配置创建竞技场并预热实体池
//
// 参数:
//   - cfg: 竞技场配置
//   - rng: 随机数来源（生成角度与类型）
func NewArena(cfg *config.ArenaConfig, rng systems.RandomSource) *Arena {
	a := &Arena{
		cfg:          cfg,
		bounds:       cfg.Arena.Bounds(),
		flightLimits: cfg.Arena.Bounds().Expand(cfg.Arena.ProjectileMargin),
		player:       entities.NewPlayer(cfg),
		pickupQueue:  ecs.NewHandleQueue(cfg.Pools.PickupMax),
		phase:        PhaseRunning,
	}

	a.hostiles = ecs.NewPool("hostiles", cfg.Pools.HostileMax, func(id ecs.EntityID) *entities.Hostile {
		return entities.NewHostile(id, cfg.Enemies)
	})
	a.projectiles = ecs.NewPool("projectiles", cfg.Pools.ProjectileMax, func(id ecs.EntityID) *entities.Projectile {
		return entities.NewProjectile(id, cfg.Pools.ProjectileSize)
	})
	a.pickups = ecs.NewPool("pickups", cfg.Pools.PickupMax, func(id ecs.EntityID) *entities.Pickup {
		return entities.NewPickup(id, cfg.Pickups)
	})
	a.projectiles.Warm(cfg.Pools.ProjectileWarm)
	a.pickups.Warm(cfg.Pools.PickupWarm)

	a.engine = systems.NewDifficultyEngine(cfg)
	a.spawner = systems.NewSpawnDirector(a.engine, a.hostiles, rng)
	a.combat = systems.NewCombatDirector(a.hostiles, a.projectiles, a.onHostileDeath)
	a.physics = systems.NewPhysicsSystem(a.hostiles, a.projectiles, a.pickups)

	log.Printf("[Arena] Created %vx%v arena (projectiles %d/%d, pickups %d/%d, hostiles cap %d)",
		cfg.Arena.Width, cfg.Arena.Height,
		a.projectiles.Len(), a.projectiles.Cap(), a.pickups.Len(), a.pickups.Cap(), a.hostiles.Cap())
	return a
}

// Tick 推进一帧
//
// 更新顺序：玩家 -> 海面滚动 -> 生成 -> 开火 -> 实体移动 -> 重叠结算。
// 非运行阶段只推进帧时间，不做任何实体更新。
//
// 参数:
//   - deltaTime: 帧间隔（毫秒）
//   - input: 本帧输入
//
// 返回:
//   - TickResult: 快照与本帧事件
func (a *Arena) Tick(deltaTime float64, input Input) TickResult {
	a.levelUp = nil
	a.gameOver = nil

	if deltaTime < 0 {
		deltaTime = 0
	}
	a.frameTime += deltaTime

	if input.TogglePause {
		a.TogglePause()
	}
	if a.phase != PhaseRunning {
		return a.result()
	}

	a.elapsedGameTime += deltaTime

	a.player.Move(input.Move, deltaTime, a.bounds)
	a.player.Tick(deltaTime)

	a.scrollOffset = a.scrollOffset.Add(a.player.Velocity.Scale(deltaTime * scrollFactor))

	target := a.player.Position
	a.spawner.Update(deltaTime, a.elapsedGameTime, &target)
	a.combat.Update(a.frameTime, a.player)

	a.moveEntities(deltaTime)
	a.resolveOverlaps()

	return a.result()
}

// moveEntities 推进敌人、炮弹与宝石
func (a *Arena) moveEntities(deltaTime float64) {
	target := a.player.Position
	a.hostiles.EachActive(func(h *entities.Hostile) {
		h.Tick(&target, deltaTime)
	})
	a.projectiles.EachActive(func(p *entities.Projectile) {
		p.Tick(deltaTime, a.flightLimits)
	})
	magnet := a.player.XPMagnetRange
	a.pickups.EachActive(func(g *entities.Pickup) {
		g.Tick(&target, magnet, deltaTime)
	})
}

// resolveOverlaps 依次结算三类重叠
// 玩家阵亡后不再结算后续重叠；升级触发后本帧不再收集宝石
func (a *Arena) resolveOverlaps() {
	a.physics.ProjectileHostileOverlaps(func(p *entities.Projectile, h *entities.Hostile) bool {
		a.combat.OnProjectileHitHostile(p, h)
		return true
	})

	a.physics.PlayerHostileOverlaps(a.player, a.onPlayerHitHostile)
	if a.phase == PhaseGameOver {
		return
	}

	a.physics.PlayerPickupOverlaps(a.player, a.onPickupCollected)
}

// onHostileDeath 敌人死亡交接
// 必须先把掉落的宝石完整生成，再隐藏敌人
func (a *Arena) onHostileDeath(h *entities.Hostile) {
	gem := a.acquirePickup()
	gem.Spawn(h.Position, h.XPReward)
	a.pickupQueue.Push(gem.Handle())

	h.Deactivate()
	a.kills++
}

// acquirePickup 获取一个可用的宝石
// 优先复用失活宝石；池已满时强制回收最早生成的活跃宝石；否则扩容
func (a *Arena) acquirePickup() *entities.Pickup {
	if gem, ok := a.pickups.Acquire(); ok {
		return gem
	}

	if a.pickups.IsFull() {
		for a.pickupQueue.Len() > 0 {
			handle, _ := a.pickupQueue.Shift()
			gem, ok := a.pickups.Resolve(handle)
			if !ok {
				continue
			}
			gem.Deactivate()
			a.recycledPickups++
			return gem
		}
	}

	return a.pickups.Grow()
}

// onPickupCollected 玩家拾取宝石
// 返回 false 表示本帧停止继续拾取（已触发升级）
func (a *Arena) onPickupCollected(gem *entities.Pickup) bool {
	if !gem.IsActive() {
		return true
	}

	a.pickupQueue.Remove(gem.Handle())
	gem.Deactivate()

	if a.player.AddXP(gem.XPValue) {
		a.triggerLevelUp()
		return false
	}
	return true
}

// onPlayerHitHostile 玩家与敌人接触
// 返回 false 表示玩家阵亡，停止结算
func (a *Arena) onPlayerHitHostile(h *entities.Hostile) bool {
	if !h.IsActive() {
		return true
	}
	if a.player.TakeDamage(h.ContactDamage) {
		a.enterGameOver()
		return false
	}
	return true
}

// triggerLevelUp 升级并暂停，等待外部选择升级项
func (a *Arena) triggerLevelUp() {
	a.player.LevelUp()
	a.phase = PhaseAwaitingUpgrade
	a.levelUp = &LevelUpEvent{Level: a.player.Level}
	log.Printf("[Arena] Level up -> %d (next %d xp), awaiting upgrade", a.player.Level, a.player.XPToNextLevel)
}

// enterGameOver 进入终止状态
func (a *Arena) enterGameOver() {
	a.phase = PhaseGameOver
	a.gameOver = &GameOverEvent{
		ElapsedGameTime: a.elapsedGameTime,
		Kills:           a.kills,
		Level:           a.player.Level,
	}
	log.Printf("[Arena] Game over: time %.1fs, kills %d, level %d",
		a.elapsedGameTime/1000, a.kills, a.player.Level)
}

// ApplyUpgrade 对玩家属性应用一次升级并恢复运行
// 只在等待升级阶段有效；upgrade 为 nil 时直接恢复
func (a *Arena) ApplyUpgrade(upgrade UpgradeFunc) bool {
	if a.phase != PhaseAwaitingUpgrade {
		log.Printf("[Arena] Warning: ApplyUpgrade ignored in phase %s", a.phase)
		return false
	}
	if upgrade != nil {
		a.player.ApplyAttributes(upgrade(a.player.Attributes))
	}
	return a.Resume()
}

// Resume 从暂停或等待升级阶段恢复运行
// 游戏时间不补偿暂停期间
func (a *Arena) Resume() bool {
	if a.phase != PhasePausedByUser && a.phase != PhaseAwaitingUpgrade {
		return false
	}
	log.Printf("[Arena] Resume from %s", a.phase)
	a.phase = PhaseRunning
	return true
}

// TogglePause 在运行与手动暂停之间切换
// 等待升级与游戏结束阶段忽略该操作
func (a *Arena) TogglePause() bool {
	switch a.phase {
	case PhaseRunning:
		a.phase = PhasePausedByUser
		log.Printf("[Arena] Paused by user")
		return true
	case PhasePausedByUser:
		a.phase = PhaseRunning
		log.Printf("[Arena] Unpaused by user")
		return true
	default:
		return false
	}
}

func (a *Arena) result() TickResult {
	return TickResult{
		Snapshot: a.Snapshot(),
		LevelUp:  a.levelUp,
		GameOver: a.gameOver,
	}
}

// Snapshot 返回当前 HUD 快照
func (a *Arena) Snapshot() Snapshot {
	return Snapshot{
		Health:          a.player.CurrentHealth,
		MaxHealth:       a.player.MaxHealth,
		XP:              a.player.XP,
		XPToNextLevel:   a.player.XPToNextLevel,
		Level:           a.player.Level,
		ElapsedGameTime: a.elapsedGameTime,
		Kills:           a.kills,
		Phase:           a.phase,
		Difficulty:      a.spawner.Difficulty(),
		ScrollOffset:    a.scrollOffset,
	}
}

// Phase 当前阶段
func (a *Arena) Phase() Phase {
	return a.phase
}

// Player 返回玩家（只读使用）
func (a *Arena) Player() *entities.Player {
	return a.player
}

// Config 返回竞技场配置
func (a *Arena) Config() *config.ArenaConfig {
	return a.cfg
}

// Bounds 竞技场矩形
func (a *Arena) Bounds() utils.Rect {
	return a.bounds
}

// FrameTime 累计帧时间（毫秒）
func (a *Arena) FrameTime() float64 {
	return a.frameTime
}

// EachHostile 遍历活跃敌人（渲染用）
func (a *Arena) EachHostile(fn func(*entities.Hostile)) {
	a.hostiles.EachActive(fn)
}

// EachProjectile 遍历活跃炮弹（渲染用）
func (a *Arena) EachProjectile(fn func(*entities.Projectile)) {
	a.projectiles.EachActive(fn)
}

// EachPickup 遍历活跃宝石（渲染用）
func (a *Arena) EachPickup(fn func(*entities.Pickup)) {
	a.pickups.EachActive(fn)
}

// PoolStats 实体池统计
type PoolStats struct {
	Name   string
	Active int
	Len    int
	Cap    int
}

// PoolStats 返回三个实体池的统计（调试面板与模拟器报告使用）
func (a *Arena) PoolStats() []PoolStats {
	return []PoolStats{
		{Name: a.hostiles.Name(), Active: a.hostiles.ActiveCount(), Len: a.hostiles.Len(), Cap: a.hostiles.Cap()},
		{Name: a.projectiles.Name(), Active: a.projectiles.ActiveCount(), Len: a.projectiles.Len(), Cap: a.projectiles.Cap()},
		{Name: a.pickups.Name(), Active: a.pickups.ActiveCount(), Len: a.pickups.Len(), Cap: a.pickups.Cap()},
	}
}

// RecycledPickups 被强制回收的宝石数量
func (a *Arena) RecycledPickups() int {
	return a.recycledPickups
}

// QueuedPickups 生成顺序队列中的宝石数量
func (a *Arena) QueuedPickups() int {
	return a.pickupQueue.Len()
}

// ShotsFired 已发射的炮弹总数
func (a *Arena) ShotsFired() int {
	return a.combat.ShotsFired()
}

// WavesSpawned 已生成的波数
func (a *Arena) WavesSpawned() int {
	return a.spawner.WavesSpawned()
}
