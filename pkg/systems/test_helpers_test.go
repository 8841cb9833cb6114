package systems

import (
	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/ecs"
	"github.com/decker502/broadside/pkg/entities"
	"github.com/decker502/broadside/pkg/utils"
)

// scriptedRandom 按顺序返回预设值，用完后一直返回最后一个值
type scriptedRandom struct {
	values []float64
	calls  int
}

func newScriptedRandom(values ...float64) *scriptedRandom {
	return &scriptedRandom{values: values}
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	i := min(r.calls, len(r.values)-1)
	r.calls++
	return r.values[i]
}

// testPools 测试用的三个实体池
type testPools struct {
	cfg         *config.ArenaConfig
	hostiles    *ecs.Pool[*entities.Hostile]
	projectiles *ecs.Pool[*entities.Projectile]
	pickups     *ecs.Pool[*entities.Pickup]
}

func newTestPools() *testPools {
	cfg := config.DefaultArenaConfig()
	return &testPools{
		cfg: cfg,
		hostiles: ecs.NewPool("hostiles", cfg.Pools.HostileMax, func(id ecs.EntityID) *entities.Hostile {
			return entities.NewHostile(id, cfg.Enemies)
		}),
		projectiles: ecs.NewPool("projectiles", cfg.Pools.ProjectileMax, func(id ecs.EntityID) *entities.Projectile {
			return entities.NewProjectile(id, cfg.Pools.ProjectileSize)
		}),
		pickups: ecs.NewPool("pickups", cfg.Pools.PickupMax, func(id ecs.EntityID) *entities.Pickup {
			return entities.NewPickup(id, cfg.Pickups)
		}),
	}
}

// spawnHostile 在 pos 处生成一个 small_ship
func (tp *testPools) spawnHostile(pos utils.Vec2) *entities.Hostile {
	h, ok := tp.hostiles.Acquire()
	if !ok {
		h = tp.hostiles.Grow()
	}
	stats, _ := tp.cfg.GetHostileStats("small_ship")
	h.Spawn(pos, "small_ship", stats)
	return h
}

func (tp *testPools) newPlayer() *entities.Player {
	return entities.NewPlayer(tp.cfg)
}
