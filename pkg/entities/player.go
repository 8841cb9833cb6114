package entities

import (
	"math"

	"github.com/decker502/broadside/pkg/components"
	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/utils"
)

// Attributes 玩家可被升级修改的属性集合
// 升级效果是 Attributes -> Attributes 的纯函数
type Attributes struct {
	components.HealthComponent

	MoveSpeed        float64
	CannonDamage     float64
	CannonFireRate   float64 // 开火间隔（毫秒），越小越快
	CannonRange      float64
	CannonCount      int // 每轮齐射的目标数
	ProjectileSpeed  float64
	ProjectilePierce int
	XPMultiplier     float64
	XPMagnetRange    float64
	HealthRegen      float64 // 每个回血周期回复的生命值
}

// sanitize 把升级后的属性限制在合法范围内
func (a Attributes) sanitize() Attributes {
	if a.MaxHealth < 1 {
		a.MaxHealth = 1
	}
	a.CurrentHealth = utils.Clamp(a.CurrentHealth, 0, a.MaxHealth)
	if a.CannonCount < 0 {
		a.CannonCount = 0
	}
	if a.ProjectilePierce < 0 {
		a.ProjectilePierce = 0
	}
	if a.CannonFireRate < 0 {
		a.CannonFireRate = 0
	}
	if a.XPMultiplier < 0 {
		a.XPMultiplier = 0
	}
	return a
}

// Player 玩家战舰
// 竞技场唯一实例，由 Arena 持有
type Player struct {
	Attributes

	Position utils.Vec2
	Velocity utils.Vec2
	Rotation float64

	XP            int
	Level         int
	XPToNextLevel int

	// 受伤后进入无敌状态，计时结束回到可受伤状态
	Invincible    bool
	Invincibility components.TimerComponent
	Regen         components.TimerComponent

	Collision components.CollisionComponent

	progression config.ProgressionConfig
	turnStep    float64
}

// NewPlayer 按配置的初始属性在竞技场中央创建玩家
func NewPlayer(cfg *config.ArenaConfig) *Player {
	pc := cfg.Player
	p := &Player{
		Attributes: Attributes{
			MoveSpeed:        pc.StartSpeed,
			CannonDamage:     pc.StartDamage,
			CannonFireRate:   pc.StartFireRate,
			CannonRange:      pc.StartRange,
			CannonCount:      pc.StartCannons,
			ProjectileSpeed:  pc.ProjectileSpeed,
			ProjectilePierce: pc.ProjectilePierce,
			XPMultiplier:     1,
			XPMagnetRange:    pc.XPMagnetRange,
		},
		Position:      utils.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2},
		Level:         1,
		XPToNextLevel: cfg.Progression.BaseXPToLevel,
		Invincibility: components.NewTimer("invincibility", pc.InvincibilityTime),
		Regen:         components.NewTimer("health_regen", pc.RegenInterval),
		Collision: components.CollisionComponent{
			Width:   pc.BodyWidth,
			Height:  pc.BodyHeight,
			Enabled: true,
		},
		progression: cfg.Progression,
		turnStep:    pc.TurnStep,
	}
	p.Reset(pc.StartHealth)
	return p
}

// Move 按输入意图移动，位置限制在 bounds 内（按船体半宽高收缩）
// 有移动时船头逐帧转向移动方向
func (p *Player) Move(intent utils.Vec2, deltaTime float64, bounds utils.Rect) {
	if l := intent.Len(); l > 1 {
		intent = intent.Scale(1 / l)
	}
	p.Velocity = intent.Scale(p.MoveSpeed)
	p.Position = p.Position.Add(p.Velocity.Scale(deltaTime / 1000))

	inner := utils.Rect{
		MinX: bounds.MinX + p.Collision.Width/2,
		MinY: bounds.MinY + p.Collision.Height/2,
		MaxX: bounds.MaxX - p.Collision.Width/2,
		MaxY: bounds.MaxY - p.Collision.Height/2,
	}
	p.Position = inner.ClampPoint(p.Position)

	if !intent.IsZero() {
		heading := math.Atan2(intent.Y, intent.X)
		p.Rotation = utils.RotateTo(p.Rotation, heading, p.turnStep)
	}
}

// Tick 推进无敌计时与回血计时
// 回血与无敌状态相互独立
func (p *Player) Tick(deltaTime float64) {
	if p.Invincible && p.Invincibility.Update(deltaTime) {
		p.Invincible = false
	}

	if p.HealthRegen > 0 && p.IsHurt() {
		if !p.Regen.Running {
			p.Regen.Start()
		}
		if p.Regen.Update(deltaTime) {
			p.Heal(p.HealthRegen)
			p.Regen.Start()
		}
	}
}

// TakeDamage 受到伤害，返回是否死亡
// 无敌期间直接返回 false，生命值不低于 0
func (p *Player) TakeDamage(amount float64) bool {
	if p.Invincible {
		return false
	}
	p.CurrentHealth = math.Max(0, p.CurrentHealth-amount)
	p.Invincible = true
	p.Invincibility.Start()
	return p.IsDead()
}

// IsDead 生命值是否耗尽
func (p *Player) IsDead() bool {
	return p.CurrentHealth <= 0
}

// AddXP 获得经验（乘以经验倍率后向下取整），返回是否达到升级条件
func (p *Player) AddXP(value int) bool {
	p.XP += int(math.Floor(float64(value) * p.XPMultiplier))
	return p.XP >= p.XPToNextLevel
}

// LevelUp 消耗当前等级所需经验升一级
// 所需经验 = floor(base × factor^(level-1))
func (p *Player) LevelUp() {
	p.XP -= p.XPToNextLevel
	p.Level++
	p.XPToNextLevel = XPToLevel(p.progression, p.Level)
}

// XPToLevel 返回从 level 升到下一级所需的经验
func XPToLevel(cfg config.ProgressionConfig, level int) int {
	return int(math.Floor(float64(cfg.BaseXPToLevel) * math.Pow(cfg.XPScaleFactor, float64(level-1))))
}

// ApplyAttributes 用升级后的属性替换当前属性
func (p *Player) ApplyAttributes(next Attributes) {
	p.Attributes = next.sanitize()
}
