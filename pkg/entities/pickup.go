package entities

import (
	"github.com/decker502/broadside/pkg/components"
	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/ecs"
	"github.com/decker502/broadside/pkg/utils"
)

// 弹出动画的起始缩放
const pickupPopInStartScale = 0.5

// Pickup 经验宝石
// 生成后静止，玩家进入磁吸范围后被吸引（吸引状态在失活前不会撤销）
type Pickup struct {
	ecs.Slot

	Position  utils.Vec2
	Velocity  utils.Vec2
	XPValue   int
	Attracted bool
	Scale     float64 // 渲染缩放，由弹出动画驱动

	Collision components.CollisionComponent
	PopIn     components.TimerComponent

	baseSpeed float64
	accel     float64
}

// NewPickup 构造一个未激活的宝石
func NewPickup(id ecs.EntityID, cfg config.PickupConfig) *Pickup {
	return &Pickup{
		Slot:      ecs.NewSlot(id),
		Scale:     1,
		Collision: components.NewSquareCollision(cfg.BodySize),
		PopIn:     components.NewTimer("pop_in", cfg.PopInTime),
		baseSpeed: cfg.BaseSpeed,
		accel:     cfg.AccelCoefficient,
	}
}

// Spawn 在 pos 处激活并携带 value 点经验
func (g *Pickup) Spawn(pos utils.Vec2, value int) {
	g.Position = pos
	g.Velocity = utils.Vec2{}
	g.Attracted = false
	g.XPValue = value
	g.Collision.Enabled = true

	g.Scale = pickupPopInStartScale
	g.PopIn.Start()

	g.Activate()
}

// Tick 推进弹出动画与磁吸移动
//
// 参数:
//   - target: 玩家位置，nil 时不移动
//   - magnetRange: 玩家磁吸半径
//   - deltaTime: 帧间隔（毫秒）
func (g *Pickup) Tick(target *utils.Vec2, magnetRange, deltaTime float64) {
	if !g.IsActive() {
		return
	}

	if g.PopIn.Running {
		g.PopIn.Update(deltaTime)
		g.Scale = utils.Lerp(pickupPopInStartScale, 1, utils.EaseOutBack(g.PopIn.Progress()))
	}

	if target == nil {
		return
	}

	distance := g.Position.DistanceTo(*target)
	if distance <= magnetRange {
		g.Attracted = true
	}
	if !g.Attracted {
		return
	}

	// 越靠近玩家飞得越快
	speed := g.baseSpeed + (magnetRange-distance)*g.accel
	g.Velocity = utils.FromAngle(g.Position.AngleTo(*target)).Scale(speed)
	g.Position = g.Position.Add(g.Velocity.Scale(deltaTime / 1000))
}

// CancelTransition 中止弹出动画并恢复原始缩放
func (g *Pickup) CancelTransition() {
	g.PopIn.Reset()
	g.Scale = 1
}

// Deactivate 完全失活：停止移动、中止动画、关闭碰撞
func (g *Pickup) Deactivate() {
	g.CancelTransition()
	g.Slot.Deactivate()
	g.Velocity = utils.Vec2{}
	g.Collision.Enabled = false
}
