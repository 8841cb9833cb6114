package entities

import (
	"github.com/decker502/broadside/pkg/components"
	"github.com/decker502/broadside/pkg/ecs"
	"github.com/decker502/broadside/pkg/utils"
)

// Projectile 炮弹
// 匀速直线飞行，穿透次数耗尽或飞出边界后失活
type Projectile struct {
	ecs.Slot

	Position        utils.Vec2
	Velocity        utils.Vec2
	Rotation        float64
	Damage          float64
	Speed           float64
	PierceRemaining int

	Collision components.CollisionComponent

	// 本次飞行中已结算过命中的敌人
	hits map[ecs.Handle]struct{}
}

// NewProjectile 构造一个未激活的炮弹
func NewProjectile(id ecs.EntityID, size float64) *Projectile {
	return &Projectile{
		Slot:      ecs.NewSlot(id),
		Collision: components.NewSquareCollision(size),
		hits:      make(map[ecs.Handle]struct{}),
	}
}

// Fire 从 origin 射向 target
//
// 参数:
//   - origin: 发射位置
//   - target: 瞄准位置（与 origin 重合时朝 +X 方向飞行）
//   - damage: 每次命中的伤害
//   - pierce: 穿透次数，负数按 0 处理
//   - speed: 飞行速度（单位/秒）
func (p *Projectile) Fire(origin, target utils.Vec2, damage float64, pierce int, speed float64) {
	if pierce < 0 {
		pierce = 0
	}
	p.Position = origin
	p.Damage = damage
	p.PierceRemaining = pierce
	p.Speed = speed
	clear(p.hits)

	heading := origin.AngleTo(target)
	p.Velocity = utils.FromAngle(heading).Scale(speed)
	p.Rotation = heading
	p.Collision.Enabled = true

	p.Activate()
}

// Tick 推进飞行，离开 limits 后失活
// limits 是已经向外扩展过边距的竞技场矩形
func (p *Projectile) Tick(deltaTime float64, limits utils.Rect) {
	if !p.IsActive() {
		return
	}
	p.Position = p.Position.Add(p.Velocity.Scale(deltaTime / 1000))
	if !limits.Contains(p.Position) {
		p.Deactivate()
	}
}

// HasHit 本次飞行是否已命中过该敌人
func (p *Projectile) HasHit(h ecs.Handle) bool {
	_, ok := p.hits[h]
	return ok
}

// HitCount 本次飞行已命中的敌人数
func (p *Projectile) HitCount() int {
	return len(p.hits)
}

// RegisterHit 记录一次命中，返回炮弹是否继续飞行
// 重复命中同一敌人直接返回 false 且不消耗穿透次数
func (p *Projectile) RegisterHit(h ecs.Handle) bool {
	if p.HasHit(h) {
		return false
	}
	p.hits[h] = struct{}{}
	if p.PierceRemaining > 0 {
		p.PierceRemaining--
		return true
	}
	p.Deactivate()
	return false
}

// Deactivate 失活并关闭碰撞
func (p *Projectile) Deactivate() {
	p.Slot.Deactivate()
	p.Collision.Enabled = false
}
