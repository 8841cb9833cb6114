// Package upgrades 升级项目录
//
// 每个升级项是一个枚举值加一个纯函数（Attributes -> Attributes）。
// 升级选择流程在竞技场之外运行：外壳从目录中抽取候选，玩家选中后
// 通过 game.Arena.ApplyUpgrade 把对应函数交给竞技场执行。
package upgrades

import (
	"github.com/decker502/broadside/pkg/entities"
	"github.com/decker502/broadside/pkg/systems"
)

// DefaultChoiceCount 每次升级提供的候选数量
const DefaultChoiceCount = 3

// Kind 升级项类型
type Kind int

const (
	KindCannonDamage Kind = iota
	KindRapidFire
	KindExtraCannon
	KindChainShot
	KindLongRange
	KindHullUpgrade
	KindRepairCrew
	KindFullSails
	KindTreasureMagnet
	KindPlunder

	kindCount
)

// Upgrade 升级项描述
type Upgrade struct {
	Kind        Kind
	Key         string
	Name        string
	Description string
}

var catalog = [kindCount]Upgrade{
	{KindCannonDamage, "cannon_damage", "Heavy Shot", "+20% cannon damage"},
	{KindRapidFire, "cannon_speed", "Rapid Fire", "-15% fire rate cooldown"},
	{KindExtraCannon, "extra_cannon", "Extra Cannon", "+1 cannon (target extra enemy)"},
	{KindChainShot, "pierce", "Chain Shot", "Cannonballs pierce +1 enemy"},
	{KindLongRange, "range", "Long Range", "+25% cannon range"},
	{KindHullUpgrade, "max_health", "Hull Upgrade", "+25 max health"},
	{KindRepairCrew, "regen", "Repair Crew", "+1 HP every 2 seconds"},
	{KindFullSails, "move_speed", "Full Sails", "+10% movement speed"},
	{KindTreasureMagnet, "xp_magnet", "Treasure Magnet", "+50% XP pickup range"},
	{KindPlunder, "xp_bonus", "Plunder", "+20% XP gain"},
}

// All 返回完整目录（按 Kind 顺序）
func All() []Upgrade {
	result := make([]Upgrade, kindCount)
	copy(result, catalog[:])
	return result
}

// Get 返回指定类型的升级项
func Get(kind Kind) (Upgrade, bool) {
	if kind < 0 || kind >= kindCount {
		return Upgrade{}, false
	}
	return catalog[kind], true
}

// String 返回升级项键名
func (k Kind) String() string {
	if u, ok := Get(k); ok {
		return u.Key
	}
	return "unknown"
}

// Apply 返回应用该升级后的属性，不修改入参
func Apply(kind Kind, a entities.Attributes) entities.Attributes {
	switch kind {
	case KindCannonDamage:
		a.CannonDamage *= 1.2
	case KindRapidFire:
		a.CannonFireRate *= 0.85
	case KindExtraCannon:
		a.CannonCount++
	case KindChainShot:
		a.ProjectilePierce++
	case KindLongRange:
		a.CannonRange *= 1.25
	case KindHullUpgrade:
		a.MaxHealth += 25
		a.CurrentHealth += 25
	case KindRepairCrew:
		a.HealthRegen++
	case KindFullSails:
		a.MoveSpeed *= 1.1
	case KindTreasureMagnet:
		a.XPMagnetRange *= 1.5
	case KindPlunder:
		a.XPMultiplier *= 1.2
	}
	return a
}

// Func 返回可直接交给 Arena.ApplyUpgrade 的升级函数
func (u Upgrade) Func() func(entities.Attributes) entities.Attributes {
	kind := u.Kind
	return func(a entities.Attributes) entities.Attributes {
		return Apply(kind, a)
	}
}

// RandomChoices 不重复地随机抽取 n 个升级项
// n 超过目录大小时返回整个目录（顺序被打乱）
func RandomChoices(rng systems.RandomSource, n int) []Upgrade {
	pool := All()
	if n > len(pool) {
		n = len(pool)
	}
	if n < 0 {
		n = 0
	}
	// 部分 Fisher-Yates 洗牌
	for i := 0; i < n; i++ {
		j := i + int(rng.Float64()*float64(len(pool)-i))
		if j >= len(pool) {
			j = len(pool) - 1
		}
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
