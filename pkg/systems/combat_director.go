package systems

import (
	"slices"

	"github.com/decker502/broadside/pkg/ecs"
	"github.com/decker502/broadside/pkg/entities"
)

// DeathHandler 敌人被击杀时的回调（由 Arena 负责掉落与回收）
type DeathHandler func(hostile *entities.Hostile)

// CombatDirector 自动开火与命中结算
//
// 开火是一个闸门而不是累积器：now > lastFireTime + fireRate 时开火一轮，
// 并把 lastFireTime 设为 now。长时间卡顿后只会补一轮齐射。
type CombatDirector struct {
	hostiles    *ecs.Pool[*entities.Hostile]
	projectiles *ecs.Pool[*entities.Projectile]
	onDeath     DeathHandler

	lastFireTime float64
	volleys      int
	shotsFired   int

	// 复用的排序缓冲
	candidates []targetCandidate
}

type targetCandidate struct {
	hostile  *entities.Hostile
	distance float64
}

// NewCombatDirector 创建战斗调度器
//
// 参数:
//   - hostiles: 敌人池（瞄准目标来源）
//   - projectiles: 炮弹池
//   - onDeath: 敌人死亡回调，可为 nil
func NewCombatDirector(hostiles *ecs.Pool[*entities.Hostile], projectiles *ecs.Pool[*entities.Projectile], onDeath DeathHandler) *CombatDirector {
	return &CombatDirector{
		hostiles:    hostiles,
		projectiles: projectiles,
		onDeath:     onDeath,
	}
}

// Update 检查开火闸门，满足条件时向最近的敌人齐射
//
// 参数:
//   - now: 帧时间（毫秒，暂停期间同样推进）
//   - player: 玩家，nil 时不开火
//
// 返回:
//   - int: 本帧发射的炮弹数
func (c *CombatDirector) Update(now float64, player *entities.Player) int {
	if player == nil {
		return 0
	}
	if now <= c.lastFireTime+player.CannonFireRate {
		return 0
	}
	fired := c.FireVolley(player)
	c.lastFireTime = now
	return fired
}

// FireVolley 对最近的 cannonCount 个敌人各发射一发炮弹
// 候选目标超出射程时直接跳过，该炮位本轮不会改打其他目标
func (c *CombatDirector) FireVolley(player *entities.Player) int {
	c.candidates = c.candidates[:0]
	c.hostiles.EachActive(func(h *entities.Hostile) {
		c.candidates = append(c.candidates, targetCandidate{
			hostile:  h,
			distance: player.Position.DistanceTo(h.Position),
		})
	})
	if len(c.candidates) == 0 {
		return 0
	}

	slices.SortFunc(c.candidates, func(a, b targetCandidate) int {
		switch {
		case a.distance < b.distance:
			return -1
		case a.distance > b.distance:
			return 1
		}
		return 0
	})

	count := min(player.CannonCount, len(c.candidates))
	fired := 0
	for _, candidate := range c.candidates[:count] {
		if candidate.distance > player.CannonRange {
			continue
		}
		c.dispatch(player, candidate.hostile)
		fired++
	}

	c.volleys++
	c.shotsFired += fired
	return fired
}

// dispatch 取出一发炮弹射向目标，池中没有空闲炮弹时扩容
func (c *CombatDirector) dispatch(player *entities.Player, target *entities.Hostile) *entities.Projectile {
	projectile, ok := c.projectiles.Acquire()
	if !ok {
		projectile = c.projectiles.Grow()
	}
	projectile.Fire(player.Position, target.Position,
		player.CannonDamage, player.ProjectilePierce, player.ProjectileSpeed)
	return projectile
}

// OnProjectileHitHostile 结算一次炮弹与敌人的重叠
// 任一方未激活、或该炮弹本次飞行已命中过此敌人时忽略；
// 否则扣血一次、登记命中一次，敌人死亡时交给 DeathHandler
//
// 返回:
//   - bool: 是否造成了伤害
func (c *CombatDirector) OnProjectileHitHostile(projectile *entities.Projectile, hostile *entities.Hostile) bool {
	if !projectile.IsActive() || !hostile.IsActive() {
		return false
	}
	handle := hostile.Handle()
	if projectile.HasHit(handle) {
		return false
	}

	dead := hostile.ApplyDamage(projectile.Damage)
	projectile.RegisterHit(handle)

	if dead && c.onDeath != nil {
		c.onDeath(hostile)
	}
	return true
}

// LastFireTime 最近一次开火的帧时间
func (c *CombatDirector) LastFireTime() float64 {
	return c.lastFireTime
}

// Volleys 场上有敌人时触发的齐射轮数（含全部目标都在射程外的轮次）
func (c *CombatDirector) Volleys() int {
	return c.volleys
}

// ShotsFired 已发射的炮弹总数
func (c *CombatDirector) ShotsFired() int {
	return c.shotsFired
}
