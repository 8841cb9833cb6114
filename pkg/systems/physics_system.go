package systems

import (
	"github.com/decker502/broadside/pkg/components"
	"github.com/decker502/broadside/pkg/ecs"
	"github.com/decker502/broadside/pkg/entities"
	"github.com/decker502/broadside/pkg/utils"
)

// PhysicsSystem 重叠检测
// 负责枚举三类碰撞对：炮弹与敌人、玩家与敌人、玩家与宝石。
// 本系统只判定重叠，具体效果由回调决定；回调返回 false 时停止本类检测。
type PhysicsSystem struct {
	hostiles    *ecs.Pool[*entities.Hostile]
	projectiles *ecs.Pool[*entities.Projectile]
	pickups     *ecs.Pool[*entities.Pickup]
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - hostiles: 敌人池
//   - projectiles: 炮弹池
//   - pickups: 宝石池
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(hostiles *ecs.Pool[*entities.Hostile], projectiles *ecs.Pool[*entities.Projectile], pickups *ecs.Pool[*entities.Pickup]) *PhysicsSystem {
	return &PhysicsSystem{
		hostiles:    hostiles,
		projectiles: projectiles,
		pickups:     pickups,
	}
}

// checkAABBCollision 检查两个实体的AABB（轴对齐边界框）是否发生碰撞
// 任一碰撞盒被关闭时视为不重叠
//
// 参数:
//   - pos1: 第一个实体的位置
//   - col1: 第一个实体的碰撞组件
//   - pos2: 第二个实体的位置
//   - col2: 第二个实体的碰撞组件
//
// 返回:
//   - bool: 如果两个碰撞盒重叠返回 true，否则返回 false
func checkAABBCollision(pos1 utils.Vec2, col1 *components.CollisionComponent,
	pos2 utils.Vec2, col2 *components.CollisionComponent) bool {
	if !col1.Enabled || !col2.Enabled {
		return false
	}

	left1, top1, right1, bottom1 := col1.Bounds(pos1.X, pos1.Y)
	left2, top2, right2, bottom2 := col2.Bounds(pos2.X, pos2.Y)

	// AABB碰撞检测：检查两个矩形是否重叠
	// 如果任一轴上没有重叠，则没有碰撞（允许边界接触）
	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}

// ProjectileHostileOverlaps 枚举炮弹与敌人的重叠
// 每一对在回调前重新检查激活状态，回调中的失活会立刻生效
func (ps *PhysicsSystem) ProjectileHostileOverlaps(onOverlap func(*entities.Projectile, *entities.Hostile) bool) {
	stopped := false
	ps.projectiles.EachActive(func(p *entities.Projectile) {
		if stopped {
			return
		}
		ps.hostiles.EachActive(func(h *entities.Hostile) {
			if stopped || !p.IsActive() || !h.IsActive() {
				return
			}
			if checkAABBCollision(p.Position, &p.Collision, h.Position, &h.Collision) {
				stopped = !onOverlap(p, h)
			}
		})
	})
}

// PlayerHostileOverlaps 枚举与玩家重叠的敌人
func (ps *PhysicsSystem) PlayerHostileOverlaps(player *entities.Player, onOverlap func(*entities.Hostile) bool) {
	if player == nil {
		return
	}
	stopped := false
	ps.hostiles.EachActive(func(h *entities.Hostile) {
		if stopped || !h.IsActive() {
			return
		}
		if checkAABBCollision(player.Position, &player.Collision, h.Position, &h.Collision) {
			stopped = !onOverlap(h)
		}
	})
}

// PlayerPickupOverlaps 枚举与玩家重叠的宝石
func (ps *PhysicsSystem) PlayerPickupOverlaps(player *entities.Player, onOverlap func(*entities.Pickup) bool) {
	if player == nil {
		return
	}
	stopped := false
	ps.pickups.EachActive(func(g *entities.Pickup) {
		if stopped || !g.IsActive() {
			return
		}
		if checkAABBCollision(player.Position, &player.Collision, g.Position, &g.Collision) {
			stopped = !onOverlap(g)
		}
	})
}
