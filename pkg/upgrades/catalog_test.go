package upgrades

import (
	"math"
	"testing"

	"github.com/decker502/broadside/pkg/components"
	"github.com/decker502/broadside/pkg/entities"
)

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func baseAttributes() entities.Attributes {
	return entities.Attributes{
		HealthComponent:  components.HealthComponent{CurrentHealth: 80, MaxHealth: 100},
		MoveSpeed:        200,
		CannonDamage:     10,
		CannonFireRate:   1000,
		CannonRange:      300,
		CannonCount:      1,
		ProjectileSpeed:  400,
		ProjectilePierce: 0,
		XPMultiplier:     1,
		XPMagnetRange:    100,
		HealthRegen:      0,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestApply 每个升级只修改对应的属性
func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		check func(a entities.Attributes) bool
	}{
		{"炮弹伤害+20%", KindCannonDamage, func(a entities.Attributes) bool { return almostEqual(a.CannonDamage, 12) }},
		{"开火间隔-15%", KindRapidFire, func(a entities.Attributes) bool { return almostEqual(a.CannonFireRate, 850) }},
		{"多一门炮", KindExtraCannon, func(a entities.Attributes) bool { return a.CannonCount == 2 }},
		{"穿透+1", KindChainShot, func(a entities.Attributes) bool { return a.ProjectilePierce == 1 }},
		{"射程+25%", KindLongRange, func(a entities.Attributes) bool { return almostEqual(a.CannonRange, 375) }},
		{"生命上限+25并同步回复", KindHullUpgrade, func(a entities.Attributes) bool {
			return a.MaxHealth == 125 && a.CurrentHealth == 105
		}},
		{"回血+1", KindRepairCrew, func(a entities.Attributes) bool { return a.HealthRegen == 1 }},
		{"航速+10%", KindFullSails, func(a entities.Attributes) bool { return almostEqual(a.MoveSpeed, 220) }},
		{"拾取范围+50%", KindTreasureMagnet, func(a entities.Attributes) bool { return almostEqual(a.XPMagnetRange, 150) }},
		{"经验倍率+20%", KindPlunder, func(a entities.Attributes) bool { return almostEqual(a.XPMultiplier, 1.2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := baseAttributes()
			after := Apply(tt.kind, before)

			if !tt.check(after) {
				t.Errorf("Apply(%v) = %+v", tt.kind, after)
			}
			if before != baseAttributes() {
				t.Errorf("Apply(%v) modified its input", tt.kind)
			}
		})
	}
}

// TestApplyUnknownKind 未知类型原样返回
func TestApplyUnknownKind(t *testing.T) {
	before := baseAttributes()
	if got := Apply(Kind(99), before); got != before {
		t.Errorf("Apply(unknown) = %+v, want unchanged", got)
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("String() = %q, want unknown", Kind(99).String())
	}
}

// TestUpgradeFunc Func 与 Apply 结果一致
func TestUpgradeFunc(t *testing.T) {
	for _, u := range All() {
		got := u.Func()(baseAttributes())
		want := Apply(u.Kind, baseAttributes())
		if got != want {
			t.Errorf("%s: Func() = %+v, want %+v", u.Key, got, want)
		}
	}
}

// TestCatalog 目录完整且键名唯一
func TestCatalog(t *testing.T) {
	all := All()
	if len(all) != int(kindCount) {
		t.Fatalf("len(All()) = %d, want %d", len(all), kindCount)
	}
	seen := make(map[string]bool)
	for i, u := range all {
		if u.Kind != Kind(i) {
			t.Errorf("All()[%d].Kind = %v, want %v", i, u.Kind, Kind(i))
		}
		if u.Name == "" || u.Description == "" {
			t.Errorf("%s has empty name or description", u.Key)
		}
		if seen[u.Key] {
			t.Errorf("Duplicate key %q", u.Key)
		}
		seen[u.Key] = true
	}

	// 修改副本不影响目录
	all[0].Name = "changed"
	if u, _ := Get(KindCannonDamage); u.Name != "Heavy Shot" {
		t.Errorf("Catalog was modified through All(): %q", u.Name)
	}
}

// TestRandomChoices 抽取结果不重复
func TestRandomChoices(t *testing.T) {
	tests := []struct {
		name     string
		roll     float64
		n        int
		wantKeys []Kind
	}{
		{"最小随机数按顺序取前三个", 0, 3, []Kind{KindCannonDamage, KindRapidFire, KindExtraCannon}},
		{"最大随机数从末尾交换", 0.999, 3, []Kind{KindPlunder, KindCannonDamage, KindRapidFire}},
		{"请求为零", 0.5, 0, nil},
		{"负数视为零", 0.5, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RandomChoices(fixedRandom(tt.roll), tt.n)
			if len(got) != len(tt.wantKeys) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantKeys))
			}
			for i, want := range tt.wantKeys {
				if got[i].Kind != want {
					t.Errorf("choice[%d] = %v, want %v", i, got[i].Kind, want)
				}
			}
		})
	}

	t.Run("超过目录大小返回全部且不重复", func(t *testing.T) {
		got := RandomChoices(fixedRandom(0.5), 50)
		if len(got) != int(kindCount) {
			t.Fatalf("len = %d, want %d", len(got), kindCount)
		}
		seen := make(map[Kind]bool)
		for _, u := range got {
			if seen[u.Kind] {
				t.Errorf("Duplicate choice %v", u.Kind)
			}
			seen[u.Kind] = true
		}
	})
}
