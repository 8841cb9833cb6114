package entities

import (
	"github.com/decker502/broadside/pkg/components"
	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/ecs"
	"github.com/decker502/broadside/pkg/types"
	"github.com/decker502/broadside/pkg/utils"
)

// 敌人属性缺省值（类型配置中出现非正数时使用）
const (
	DefaultHostileHealth = 20.0
	DefaultHostileSpeed  = 80.0
	DefaultHostileDamage = 10.0
	DefaultHostileXP     = 1
)

// Hostile 追击玩家的敌人
// 由敌人池持有，死亡后失活并等待下一次 Spawn 复用
type Hostile struct {
	ecs.Slot
	components.HealthComponent

	Type          string            // 类型键，如 "small_ship"
	Tier          types.HostileTier // 类型档位
	Position      utils.Vec2
	Velocity      utils.Vec2
	Rotation      float64 // 朝向（弧度）
	MoveSpeed     float64
	ContactDamage float64
	XPReward      int
	Scale         float64

	Collision components.CollisionComponent
	HitFlash  components.TimerComponent // 受击闪烁，渲染层读取

	bodySize float64
}

// NewHostile 构造一个未激活的敌人（由池的 Factory 调用）
func NewHostile(id ecs.EntityID, cfg config.EnemyConfig) *Hostile {
	return &Hostile{
		Slot:      ecs.NewSlot(id),
		Scale:     1,
		Collision: components.NewSquareCollision(cfg.BodySize),
		HitFlash:  components.NewTimer("hit_flash", cfg.HitFlashTime),
		bodySize:  cfg.BodySize,
	}
}

// Spawn 以指定类型在 pos 处重新激活敌人
//
// 参数:
//   - pos: 生成位置
//   - typeKey: 类型键
//   - stats: 类型属性，非正数字段回退到缺省值
func (h *Hostile) Spawn(pos utils.Vec2, typeKey string, stats config.HostileStats) {
	health := stats.Health
	if health <= 0 {
		health = DefaultHostileHealth
	}
	h.MoveSpeed = stats.Speed
	if h.MoveSpeed <= 0 {
		h.MoveSpeed = DefaultHostileSpeed
	}
	h.ContactDamage = stats.Damage
	if h.ContactDamage <= 0 {
		h.ContactDamage = DefaultHostileDamage
	}
	h.XPReward = stats.XP
	if h.XPReward <= 0 {
		h.XPReward = DefaultHostileXP
	}
	h.Scale = stats.Scale
	if h.Scale <= 0 {
		h.Scale = 1
	}

	h.Type = typeKey
	h.Tier = stats.Tier
	h.Position = pos
	h.Velocity = utils.Vec2{}
	h.Rotation = 0
	h.Reset(health)
	h.HitFlash.Reset()

	h.Collision.Width = h.bodySize * h.Scale
	h.Collision.Height = h.bodySize * h.Scale
	h.Collision.Enabled = true

	h.Activate()
}

// Tick 朝 target 追击
// target 为 nil（尚未绑定玩家）时只推进受击闪烁
func (h *Hostile) Tick(target *utils.Vec2, deltaTime float64) {
	if !h.IsActive() {
		return
	}
	h.HitFlash.Update(deltaTime)
	if target == nil {
		return
	}

	heading := h.Position.AngleTo(*target)
	h.Velocity = utils.FromAngle(heading).Scale(h.MoveSpeed)
	h.Position = h.Position.Add(h.Velocity.Scale(deltaTime / 1000))
	h.Rotation = heading
}

// ApplyDamage 扣除生命值并触发受击闪烁，返回是否死亡
// 生命值允许降为负数，死亡以 CurrentHealth <= 0 判定
func (h *Hostile) ApplyDamage(amount float64) bool {
	h.CurrentHealth -= amount
	h.HitFlash.Start()
	return h.IsDepleted()
}

// IsFlashing 是否处于受击闪烁中
func (h *Hostile) IsFlashing() bool {
	return h.HitFlash.Running
}

// Deactivate 失活并关闭碰撞
func (h *Hostile) Deactivate() {
	h.Slot.Deactivate()
	h.Collision.Enabled = false
	h.Velocity = utils.Vec2{}
}
