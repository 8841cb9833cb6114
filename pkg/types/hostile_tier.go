// Package types 定义共享的基础类型
package types

import "fmt"

// HostileTier 敌人强度档位
// 档位只影响生成权重表和渲染配色，具体数值由 hostileTypes 配置决定
type HostileTier int

const (
	// TierUnknown 未知档位
	TierUnknown HostileTier = iota
	// TierCheap 最弱、最常见的敌人（开局唯一出现的档位）
	TierCheap
	// TierMid 中档敌人（难度 2 起出现）
	TierMid
	// TierHeavy 重型敌人（难度 4 起出现）
	TierHeavy
)

var tierNames = map[HostileTier]string{
	TierCheap: "cheap",
	TierMid:   "mid",
	TierHeavy: "heavy",
}

// String 返回档位的配置名称
func (t HostileTier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseHostileTier 将配置名称解析为档位
func ParseHostileTier(name string) (HostileTier, error) {
	for tier, tierName := range tierNames {
		if tierName == name {
			return tier, nil
		}
	}
	return TierUnknown, fmt.Errorf("unknown hostile tier %q (want cheap, mid or heavy)", name)
}

// UnmarshalText 支持在 YAML 中直接书写档位名称
func (t *HostileTier) UnmarshalText(text []byte) error {
	tier, err := ParseHostileTier(string(text))
	if err != nil {
		return err
	}
	*t = tier
	return nil
}

// MarshalText 序列化为档位名称
func (t HostileTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
