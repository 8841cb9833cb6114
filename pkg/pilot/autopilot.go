// Package pilot 提供脚本化的自动驾驶
//
// 无头模拟器用它驱动整局游戏，终端前端用它实现自动驾驶开关。
// 策略很简单：危险半径内有敌人时背离敌人，否则去拾取最近的宝石，
// 都没有时回到竞技场中央。
package pilot

import (
	"math"

	"github.com/decker502/broadside/pkg/entities"
	"github.com/decker502/broadside/pkg/game"
	"github.com/decker502/broadside/pkg/utils"
)

const (
	// DefaultDangerRadius 默认危险半径
	DefaultDangerRadius = 180.0
	// centerDeadZone 离中心多近时不再移动
	centerDeadZone = 40.0
	// wallPull 贴墙时拉回中心的权重
	wallPull = 0.8
)

// Autopilot 自动驾驶
type Autopilot struct {
	DangerRadius float64

	hostiles []utils.Vec2
	pickups  []utils.Vec2
}

// New 创建自动驾驶，dangerRadius <= 0 时使用默认值
func New(dangerRadius float64) *Autopilot {
	if dangerRadius <= 0 {
		dangerRadius = DefaultDangerRadius
	}
	return &Autopilot{DangerRadius: dangerRadius}
}

// Input 读取竞技场当前状态并生成本帧输入
func (a *Autopilot) Input(arena *game.Arena) game.Input {
	a.hostiles = a.hostiles[:0]
	a.pickups = a.pickups[:0]
	arena.EachHostile(func(h *entities.Hostile) {
		a.hostiles = append(a.hostiles, h.Position)
	})
	arena.EachPickup(func(g *entities.Pickup) {
		a.pickups = append(a.pickups, g.Position)
	})

	return game.Input{
		Move: a.Steer(arena.Player().Position, a.hostiles, a.pickups, arena.Bounds()),
	}
}

// Steer 计算移动意图（长度不超过 1）
//
// 参数:
//   - self: 玩家位置
//   - hostiles: 活跃敌人位置
//   - pickups: 活跃宝石位置
//   - bounds: 竞技场矩形
func (a *Autopilot) Steer(self utils.Vec2, hostiles, pickups []utils.Vec2, bounds utils.Rect) utils.Vec2 {
	center := utils.Vec2{
		X: (bounds.MinX + bounds.MaxX) / 2,
		Y: (bounds.MinY + bounds.MaxY) / 2,
	}

	var threat utils.Vec2
	for _, h := range hostiles {
		away := self.Sub(h)
		d := away.Len()
		if d > a.DangerRadius {
			continue
		}
		if d < 1 {
			// 重叠时朝中心方向逃离，按最近距离计权
			away = normalize(center.Sub(self))
			if away.IsZero() {
				away = utils.Vec2{X: 1}
			}
			d = 1
		}
		// 越近权重越大
		threat = threat.Add(away.Scale((a.DangerRadius - d + 1) / (d * a.DangerRadius)))
	}

	if !threat.IsZero() {
		dir := normalize(threat)
		// 离墙越近越往中心拉，避免被堵在角落
		toCenter := center.Sub(self)
		halfW, halfH := bounds.Width()/2, bounds.Height()/2
		if halfW > 0 && halfH > 0 {
			edge := utils.Clamp(max(math.Abs(toCenter.X)/halfW, math.Abs(toCenter.Y)/halfH), 0, 1)
			dir = dir.Add(normalize(toCenter).Scale(edge * edge * wallPull))
		}
		return normalize(dir)
	}

	if len(pickups) > 0 {
		nearest := pickups[0]
		best := self.DistanceTo(nearest)
		for _, p := range pickups[1:] {
			if d := self.DistanceTo(p); d < best {
				nearest, best = p, d
			}
		}
		return normalize(nearest.Sub(self))
	}

	if self.DistanceTo(center) > centerDeadZone {
		return normalize(center.Sub(self))
	}
	return utils.Vec2{}
}

func normalize(v utils.Vec2) utils.Vec2 {
	l := v.Len()
	if l == 0 {
		return utils.Vec2{}
	}
	return v.Scale(1 / l)
}
