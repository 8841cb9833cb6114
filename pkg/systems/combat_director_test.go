package systems

import (
	"testing"

	"github.com/decker502/broadside/pkg/entities"
	"github.com/decker502/broadside/pkg/utils"
)

// TestCombatDirectorFireGate 开火是闸门而不是累积器
func TestCombatDirectorFireGate(t *testing.T) {
	tp := newTestPools()
	cd := NewCombatDirector(tp.hostiles, tp.projectiles, nil)
	player := tp.newPlayer()
	tp.spawnHostile(player.Position.Add(utils.Vec2{X: 100}))

	tests := []struct {
		name      string
		now       float64
		wantFired int
	}{
		{"等于间隔不开火", 1000, 0},
		{"超过间隔开火", 1001, 1},
		{"间隔内不开火", 2001, 0},
		{"下一轮", 2002, 1},
		{"长时间卡顿只补一轮", 60000, 1},
		{"卡顿后立即再检查", 60500, 0},
	}

	for _, tt := range tests {
		if got := cd.Update(tt.now, player); got != tt.wantFired {
			t.Errorf("%s: Update(%v) fired %d, want %d", tt.name, tt.now, got, tt.wantFired)
		}
	}
	if cd.LastFireTime() != 60000 {
		t.Errorf("LastFireTime = %v, want 60000", cd.LastFireTime())
	}
}

// TestCombatDirectorNoTargetsStillArmsGate 没有敌人时同样更新开火时间
func TestCombatDirectorNoTargetsStillArmsGate(t *testing.T) {
	tp := newTestPools()
	cd := NewCombatDirector(tp.hostiles, tp.projectiles, nil)
	player := tp.newPlayer()

	if n := cd.Update(1500, player); n != 0 {
		t.Fatalf("Fired %d with no hostiles", n)
	}
	if cd.LastFireTime() != 1500 {
		t.Errorf("LastFireTime = %v, want 1500", cd.LastFireTime())
	}
}

// TestCombatDirectorTargeting 最近的 N 个敌人，射程外的候选浪费掉炮位
func TestCombatDirectorTargeting(t *testing.T) {
	tests := []struct {
		name      string
		cannons   int
		offsets   []float64 // 敌人相对玩家的 X 偏移
		wantFired int
	}{
		{
			name:      "单炮打最近的",
			cannons:   1,
			offsets:   []float64{250, -100, 200},
			wantFired: 1,
		},
		{
			name:      "双炮打最近的两个",
			cannons:   2,
			offsets:   []float64{250, -100, 200},
			wantFired: 2,
		},
		{
			name:      "炮位多于敌人",
			cannons:   5,
			offsets:   []float64{100, -100},
			wantFired: 2,
		},
		{
			name:      "最近的敌人也在射程外",
			cannons:   1,
			offsets:   []float64{400},
			wantFired: 0,
		},
		{
			name:      "射程外候选不改打其他目标",
			cannons:   2,
			offsets:   []float64{100, 350, 360},
			wantFired: 1,
		},
		{
			name:      "恰好在射程边缘",
			cannons:   1,
			offsets:   []float64{300},
			wantFired: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := newTestPools()
			cd := NewCombatDirector(tp.hostiles, tp.projectiles, nil)
			player := tp.newPlayer()
			player.CannonCount = tt.cannons
			for _, dx := range tt.offsets {
				tp.spawnHostile(player.Position.Add(utils.Vec2{X: dx}))
			}

			fired := cd.FireVolley(player)

			if fired != tt.wantFired {
				t.Errorf("Fired = %d, want %d", fired, tt.wantFired)
			}
			if tp.projectiles.ActiveCount() != tt.wantFired {
				t.Errorf("Active projectiles = %d, want %d", tp.projectiles.ActiveCount(), tt.wantFired)
			}
		})
	}
}

// TestCombatDirectorAimsAtNearest 单炮时炮弹飞向最近的敌人
func TestCombatDirectorAimsAtNearest(t *testing.T) {
	tp := newTestPools()
	cd := NewCombatDirector(tp.hostiles, tp.projectiles, nil)
	player := tp.newPlayer()
	tp.spawnHostile(player.Position.Add(utils.Vec2{X: 250}))
	tp.spawnHostile(player.Position.Add(utils.Vec2{X: -120}))

	cd.FireVolley(player)

	var shot *entities.Projectile
	tp.projectiles.EachActive(func(p *entities.Projectile) { shot = p })
	if shot == nil {
		t.Fatal("No projectile fired")
	}
	if shot.Velocity.X >= 0 {
		t.Errorf("Projectile velocity %+v should point at the nearer hostile on the left", shot.Velocity)
	}
	if shot.Damage != player.CannonDamage || shot.Speed != player.ProjectileSpeed {
		t.Errorf("Projectile stats = damage %v speed %v", shot.Damage, shot.Speed)
	}
}

// TestCombatDirectorProjectilePoolGrows 炮弹池没有空闲时扩容
func TestCombatDirectorProjectilePoolGrows(t *testing.T) {
	tp := newTestPools()
	cd := NewCombatDirector(tp.hostiles, tp.projectiles, nil)
	player := tp.newPlayer()
	player.CannonCount = 1
	tp.spawnHostile(player.Position.Add(utils.Vec2{X: 50}))

	for i := 0; i < tp.cfg.Pools.ProjectileMax+10; i++ {
		cd.FireVolley(player)
	}

	if tp.projectiles.ActiveCount() != tp.cfg.Pools.ProjectileMax+10 {
		t.Errorf("Active projectiles = %d, want %d", tp.projectiles.ActiveCount(), tp.cfg.Pools.ProjectileMax+10)
	}
	if tp.projectiles.ActiveCount() > tp.projectiles.Cap() {
		t.Errorf("Active %d exceeds capacity %d", tp.projectiles.ActiveCount(), tp.projectiles.Cap())
	}
}

// TestOnProjectileHitHostile 命中结算的幂等性
func TestOnProjectileHitHostile(t *testing.T) {
	t.Run("重复回调只结算一次", func(t *testing.T) {
		tp := newTestPools()
		cd := NewCombatDirector(tp.hostiles, tp.projectiles, nil)
		h := tp.spawnHostile(utils.Vec2{X: 100})
		p := tp.projectiles.Grow()
		p.Fire(utils.Vec2{}, h.Position, 4, 3, 400)

		for i := 0; i < 5; i++ {
			cd.OnProjectileHitHostile(p, h)
		}

		if h.CurrentHealth != 11 {
			t.Errorf("CurrentHealth = %v, want 11", h.CurrentHealth)
		}
		if p.PierceRemaining != 2 {
			t.Errorf("PierceRemaining = %d, want 2", p.PierceRemaining)
		}
	})

	t.Run("未激活的一方被忽略", func(t *testing.T) {
		tp := newTestPools()
		cd := NewCombatDirector(tp.hostiles, tp.projectiles, nil)
		h := tp.spawnHostile(utils.Vec2{X: 100})
		p := tp.projectiles.Grow()

		if cd.OnProjectileHitHostile(p, h) {
			t.Error("Inactive projectile should be ignored")
		}
		p.Fire(utils.Vec2{}, h.Position, 10, 0, 400)
		h.Deactivate()
		if cd.OnProjectileHitHostile(p, h) {
			t.Error("Inactive hostile should be ignored")
		}
		if !p.IsActive() {
			t.Error("Projectile should not be consumed by an inactive hostile")
		}
	})

	t.Run("两发10点伤害击杀15血敌人", func(t *testing.T) {
		tp := newTestPools()
		var deaths []*entities.Hostile
		cd := NewCombatDirector(tp.hostiles, tp.projectiles, func(h *entities.Hostile) {
			deaths = append(deaths, h)
		})
		h := tp.spawnHostile(utils.Vec2{X: 100})

		first := tp.projectiles.Grow()
		first.Fire(utils.Vec2{}, h.Position, 10, 0, 400)
		cd.OnProjectileHitHostile(first, h)
		if len(deaths) != 0 {
			t.Fatal("Hostile should survive the first hit")
		}
		if first.IsActive() {
			t.Error("Projectile without pierce should deactivate on hit")
		}

		second := tp.projectiles.Grow()
		second.Fire(utils.Vec2{}, h.Position, 10, 0, 400)
		cd.OnProjectileHitHostile(second, h)
		if len(deaths) != 1 || deaths[0] != h {
			t.Fatalf("Deaths = %d, want the hostile once", len(deaths))
		}
	})

	t.Run("穿透炮弹依次命中多个敌人", func(t *testing.T) {
		tp := newTestPools()
		cd := NewCombatDirector(tp.hostiles, tp.projectiles, nil)
		a := tp.spawnHostile(utils.Vec2{X: 100})
		b := tp.spawnHostile(utils.Vec2{X: 200})
		c := tp.spawnHostile(utils.Vec2{X: 300})
		p := tp.projectiles.Grow()
		p.Fire(utils.Vec2{}, utils.Vec2{X: 1}, 5, 1, 400)

		cd.OnProjectileHitHostile(p, a)
		cd.OnProjectileHitHostile(p, b)
		applied := cd.OnProjectileHitHostile(p, c)

		if a.CurrentHealth != 10 || b.CurrentHealth != 10 {
			t.Errorf("Health a=%v b=%v, want 10 each", a.CurrentHealth, b.CurrentHealth)
		}
		if applied || c.CurrentHealth != 15 {
			t.Errorf("Third hostile should not be hit after pierce exhausted, health %v", c.CurrentHealth)
		}
		if p.IsActive() {
			t.Error("Projectile should deactivate when pierce is exhausted")
		}
	})
}
