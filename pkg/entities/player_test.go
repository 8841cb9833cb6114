package entities

import (
	"math"
	"testing"

	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/utils"
)

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultArenaConfig())
}

// TestNewPlayer 初始属性来自配置
func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()

	if p.Position != (utils.Vec2{X: 640, Y: 360}) {
		t.Errorf("Position = %+v, want arena center", p.Position)
	}
	if p.CurrentHealth != 100 || p.MaxHealth != 100 {
		t.Errorf("Health = %v/%v, want 100/100", p.CurrentHealth, p.MaxHealth)
	}
	if p.Level != 1 || p.XPToNextLevel != 5 || p.XP != 0 {
		t.Errorf("Progression = level %d xp %d/%d", p.Level, p.XP, p.XPToNextLevel)
	}
	if p.CannonCount != 1 || p.CannonFireRate != 1000 || p.CannonRange != 300 {
		t.Errorf("Cannon attributes = %+v", p.Attributes)
	}
	if p.XPMultiplier != 1 {
		t.Errorf("XPMultiplier = %v, want 1", p.XPMultiplier)
	}
}

// TestPlayerTakeDamage 测试无敌状态机
func TestPlayerTakeDamage(t *testing.T) {
	p := newTestPlayer()

	if p.TakeDamage(10) {
		t.Fatal("10 damage should not kill")
	}
	if p.CurrentHealth != 90 || !p.Invincible {
		t.Fatalf("After hit: health %v invincible %v", p.CurrentHealth, p.Invincible)
	}

	// 500ms 内的第二次伤害无效
	p.Tick(499)
	if p.TakeDamage(1000) {
		t.Error("Damage while invincible should report not dead")
	}
	if p.CurrentHealth != 90 {
		t.Errorf("CurrentHealth = %v, want 90", p.CurrentHealth)
	}

	p.Tick(1)
	if p.Invincible {
		t.Fatal("Invincibility should end after 500ms")
	}
	if !p.TakeDamage(1000) {
		t.Error("Lethal damage should kill")
	}
	if p.CurrentHealth != 0 {
		t.Errorf("CurrentHealth = %v, want floored at 0", p.CurrentHealth)
	}
}

// TestPlayerRegen 测试回血周期
func TestPlayerRegen(t *testing.T) {
	tests := []struct {
		name       string
		regen      float64
		startHP    float64
		ticks      []float64
		wantHealth float64
	}{
		{name: "无回血属性", regen: 0, startHP: 50, ticks: []float64{3000}, wantHealth: 50},
		{name: "满血不回复", regen: 1, startHP: 100, ticks: []float64{3000}, wantHealth: 100},
		{name: "不足周期不回复", regen: 1, startHP: 50, ticks: []float64{1000, 999}, wantHealth: 50},
		{name: "满一个周期回复一次", regen: 2, startHP: 50, ticks: []float64{1000, 1000}, wantHealth: 52},
		{name: "长帧只回复一次", regen: 2, startHP: 50, ticks: []float64{5000}, wantHealth: 52},
		{name: "回复不超过上限", regen: 5, startHP: 98, ticks: []float64{2000}, wantHealth: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			p.HealthRegen = tt.regen
			p.CurrentHealth = tt.startHP

			for _, dt := range tt.ticks {
				p.Tick(dt)
			}
			if p.CurrentHealth != tt.wantHealth {
				t.Errorf("CurrentHealth = %v, want %v", p.CurrentHealth, tt.wantHealth)
			}
		})
	}
}

// TestPlayerRegenWhileInvincible 无敌期间照常回血
func TestPlayerRegenWhileInvincible(t *testing.T) {
	p := newTestPlayer()
	p.HealthRegen = 1
	p.TakeDamage(10)
	p.Invincibility.TargetTime = 10000

	p.Tick(2000)

	if !p.Invincible {
		t.Fatal("Player should still be invincible")
	}
	if p.CurrentHealth != 91 {
		t.Errorf("CurrentHealth = %v, want 91", p.CurrentHealth)
	}
}

// TestPlayerLevelUp 测试升级曲线 5 -> 6 -> 7
func TestPlayerLevelUp(t *testing.T) {
	p := newTestPlayer()

	if !p.AddXP(5) {
		t.Fatal("5 xp should reach level threshold")
	}
	p.LevelUp()
	if p.Level != 2 || p.XPToNextLevel != 6 || p.XP != 0 {
		t.Fatalf("After first level up: level %d xp %d/%d", p.Level, p.XP, p.XPToNextLevel)
	}

	p.AddXP(7)
	p.LevelUp()
	if p.Level != 3 || p.XPToNextLevel != 7 || p.XP != 1 {
		t.Errorf("After second level up: level %d xp %d/%d", p.Level, p.XP, p.XPToNextLevel)
	}
}

// TestPlayerAddXPMultiplier 经验倍率结果向下取整
func TestPlayerAddXPMultiplier(t *testing.T) {
	p := newTestPlayer()
	p.XPMultiplier = 1.44

	p.AddXP(3)

	if p.XP != 4 {
		t.Errorf("XP = %d, want floor(3*1.44) = 4", p.XP)
	}
}

// TestPlayerMove 测试移动、边界限制与转向
func TestPlayerMove(t *testing.T) {
	bounds := utils.NewRect(1280, 720)

	t.Run("按速度移动", func(t *testing.T) {
		p := newTestPlayer()
		p.Move(utils.Vec2{X: 1}, 500, bounds)
		if p.Position.X != 740 || p.Position.Y != 360 {
			t.Errorf("Position = %+v, want (740, 360)", p.Position)
		}
		if p.Rotation != 0 {
			t.Errorf("Rotation = %v, want 0", p.Rotation)
		}
	})

	t.Run("限制在竞技场内", func(t *testing.T) {
		p := newTestPlayer()
		p.Move(utils.Vec2{X: -1}, 10000, bounds)
		if p.Position.X != 24 {
			t.Errorf("Position.X = %v, want half body width 24", p.Position.X)
		}
	})

	t.Run("逐帧转向", func(t *testing.T) {
		p := newTestPlayer()
		p.Move(utils.Vec2{Y: 1}, 16, bounds)
		if math.Abs(p.Rotation-0.15) > 1e-9 {
			t.Errorf("Rotation = %v, want one turn step 0.15", p.Rotation)
		}
	})

	t.Run("超长意图向量被归一化", func(t *testing.T) {
		p := newTestPlayer()
		p.Move(utils.Vec2{X: 3, Y: 4}, 1000, bounds)
		if math.Abs(p.Velocity.Len()-200) > 1e-9 {
			t.Errorf("Speed = %v, want 200", p.Velocity.Len())
		}
	})
}

// TestPlayerApplyAttributes 升级后的属性被限制在合法范围
func TestPlayerApplyAttributes(t *testing.T) {
	p := newTestPlayer()
	next := p.Attributes
	next.MaxHealth += 25
	next.CurrentHealth += 40
	next.ProjectilePierce = -1

	p.ApplyAttributes(next)

	if p.MaxHealth != 125 || p.CurrentHealth != 125 {
		t.Errorf("Health = %v/%v, want 125/125", p.CurrentHealth, p.MaxHealth)
	}
	if p.ProjectilePierce != 0 {
		t.Errorf("ProjectilePierce = %d, want 0", p.ProjectilePierce)
	}
}
