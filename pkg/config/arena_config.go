package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/decker502/broadside/pkg/embedded"
	"github.com/decker502/broadside/pkg/types"
	"github.com/decker502/broadside/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultArenaConfigPath 内置调参文件路径（由根目录 embed.go 嵌入）
const DefaultArenaConfigPath = "data/arena.yaml"

// ArenaConfig 竞技场调参配置
// 所有时间单位为毫秒，速度单位为 世界坐标/秒
type ArenaConfig struct {
	Arena        ArenaBounds             `yaml:"arena"`
	Player       PlayerConfig            `yaml:"player"`
	Enemies      EnemyConfig             `yaml:"enemies"`
	Progression  ProgressionConfig       `yaml:"progression"`
	Pickups      PickupConfig            `yaml:"pickups"`
	Pools        PoolConfig              `yaml:"pools"`
	HostileTypes map[string]HostileStats `yaml:"hostileTypes"` // 敌人类型键 -> 属性
	TypeWeights  []WeightBracket         `yaml:"typeWeights"`  // 按难度分段的类型权重表
}

// ArenaBounds 竞技场尺寸
type ArenaBounds struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	ProjectileMargin float64 `yaml:"projectileMargin"` // 子弹越过边界多远后失活
	SpawnMargin      float64 `yaml:"spawnMargin"`      // 敌人生成坐标允许超出边界的距离
}

// Bounds 返回竞技场矩形
func (a ArenaBounds) Bounds() utils.Rect {
	return utils.NewRect(a.Width, a.Height)
}

// PlayerConfig 玩家初始属性
type PlayerConfig struct {
	StartHealth       float64 `yaml:"startHealth"`
	StartSpeed        float64 `yaml:"startSpeed"`
	StartDamage       float64 `yaml:"startDamage"`
	StartFireRate     float64 `yaml:"startFireRate"` // 开火间隔
	StartRange        float64 `yaml:"startRange"`
	StartCannons      int     `yaml:"startCannons"` // 同时瞄准的目标数
	ProjectileSpeed   float64 `yaml:"projectileSpeed"`
	ProjectilePierce  int     `yaml:"projectilePierce"`
	InvincibilityTime float64 `yaml:"invincibilityTime"`
	XPMagnetRange     float64 `yaml:"xpMagnetRange"`
	RegenInterval     float64 `yaml:"regenInterval"`
	TurnStep          float64 `yaml:"turnStep"` // 每帧朝移动方向转动的弧度
	BodyWidth         float64 `yaml:"bodyWidth"`
	BodyHeight        float64 `yaml:"bodyHeight"`
}

// EnemyConfig 敌人生成节奏
type EnemyConfig struct {
	SpawnDistance      float64 `yaml:"spawnDistance"`
	BaseSpawnRate      float64 `yaml:"baseSpawnRate"`
	MinSpawnRate       float64 `yaml:"minSpawnRate"`
	SpawnRateStep      float64 `yaml:"spawnRateStep"`      // 每级难度缩短的生成间隔
	DifficultyInterval float64 `yaml:"difficultyInterval"` // 难度提升一级所需的游戏时间
	MaxWaveSize        int     `yaml:"maxWaveSize"`
	HitFlashTime       float64 `yaml:"hitFlashTime"`
	BodySize           float64 `yaml:"bodySize"` // scale=1 时的碰撞盒边长
}

// ProgressionConfig 升级曲线
type ProgressionConfig struct {
	BaseXPToLevel int     `yaml:"baseXPToLevel"`
	XPScaleFactor float64 `yaml:"xpScaleFactor"`
}

// PickupConfig 经验宝石
type PickupConfig struct {
	BaseSpeed        float64 `yaml:"baseSpeed"`
	AccelCoefficient float64 `yaml:"accelCoefficient"`
	PopInTime        float64 `yaml:"popInTime"`
	BodySize         float64 `yaml:"bodySize"`
}

// PoolConfig 对象池预热数量和容量
type PoolConfig struct {
	ProjectileWarm int     `yaml:"projectileWarm"`
	ProjectileMax  int     `yaml:"projectileMax"`
	PickupWarm     int     `yaml:"pickupWarm"`
	PickupMax      int     `yaml:"pickupMax"`
	HostileMax     int     `yaml:"hostileMax"`
	ProjectileSize float64 `yaml:"projectileSize"`
}

// HostileStats 单个敌人类型的属性
// 非正数值在生成时回退到默认值（见 entities.Hostile.Spawn）
type HostileStats struct {
	Tier   types.HostileTier `yaml:"tier"`
	Health float64           `yaml:"health"`
	Speed  float64           `yaml:"speed"`
	Damage float64           `yaml:"damage"`
	XP     int               `yaml:"xp"`
	Scale  float64           `yaml:"scale"`
}

// WeightBracket 从 MinDifficulty 起生效的类型权重
type WeightBracket struct {
	MinDifficulty int            `yaml:"minDifficulty"`
	Weights       []WeightedType `yaml:"weights"` // 顺序即累积阈值的顺序
}

// WeightedType 带权重的敌人类型
type WeightedType struct {
	Type   string  `yaml:"type"`
	Weight float64 `yaml:"weight"`
}

// DefaultArenaConfig 返回与 data/arena.yaml 一致的内置配置
func DefaultArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		Arena: ArenaBounds{
			Width:            1280,
			Height:           720,
			ProjectileMargin: 100,
			SpawnMargin:      100,
		},
		Player: PlayerConfig{
			StartHealth:       100,
			StartSpeed:        200,
			StartDamage:       10,
			StartFireRate:     1000,
			StartRange:        300,
			StartCannons:      1,
			ProjectileSpeed:   400,
			ProjectilePierce:  0,
			InvincibilityTime: 500,
			XPMagnetRange:     100,
			RegenInterval:     2000,
			TurnStep:          0.15,
			BodyWidth:         48,
			BodyHeight:        32,
		},
		Enemies: EnemyConfig{
			SpawnDistance:      600,
			BaseSpawnRate:      2000,
			MinSpawnRate:       400,
			SpawnRateStep:      150,
			DifficultyInterval: 30000,
			MaxWaveSize:        8,
			HitFlashTime:       50,
			BodySize:           38,
		},
		Progression: ProgressionConfig{
			BaseXPToLevel: 5,
			XPScaleFactor: 1.2,
		},
		Pickups: PickupConfig{
			BaseSpeed:        300,
			AccelCoefficient: 2,
			PopInTime:        200,
			BodySize:         16,
		},
		Pools: PoolConfig{
			ProjectileWarm: 20,
			ProjectileMax:  100,
			PickupWarm:     30,
			PickupMax:      200,
			HostileMax:     100,
			ProjectileSize: 12,
		},
		HostileTypes: map[string]HostileStats{
			"small_ship":  {Tier: types.TierCheap, Health: 15, Speed: 100, Damage: 5, XP: 1, Scale: 1},
			"sea_monster": {Tier: types.TierMid, Health: 30, Speed: 120, Damage: 10, XP: 2, Scale: 1},
			"large_ship":  {Tier: types.TierHeavy, Health: 50, Speed: 60, Damage: 15, XP: 3, Scale: 1.5},
		},
		TypeWeights: []WeightBracket{
			{MinDifficulty: 1, Weights: []WeightedType{{Type: "small_ship", Weight: 1}}},
			{MinDifficulty: 2, Weights: []WeightedType{{Type: "small_ship", Weight: 0.7}, {Type: "sea_monster", Weight: 0.3}}},
			{MinDifficulty: 4, Weights: []WeightedType{{Type: "small_ship", Weight: 0.5}, {Type: "sea_monster", Weight: 0.3}, {Type: "large_ship", Weight: 0.2}}},
		},
	}
}

// LoadArenaConfig 从 YAML 文件加载竞技场配置
// 路径以 "data/" 开头时读取嵌入文件，否则读取磁盘文件
//
// 参数：
//
//	path - 配置文件路径
//
// 返回：
//
//	*ArenaConfig - 解析并校验后的配置
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadArenaConfig(path string) (*ArenaConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config %s: %w", path, err)
	}

	cfg, err := ParseArenaConfig(data)
	if err != nil {
		return nil, fmt.Errorf("arena config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseArenaConfig 解析 YAML 内容
// 文件中未出现的字段保留默认值；hostileTypes 按键合并到默认类型表，typeWeights 整体替换
func ParseArenaConfig(data []byte) (*ArenaConfig, error) {
	cfg := DefaultArenaConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return finishArenaConfig(cfg)
}

// ParseArenaConfigStrict 严格解析，出现未知字段（通常是拼写错误）时返回错误
// 供配置检查工具使用；游戏启动使用宽松的 ParseArenaConfig
func ParseArenaConfigStrict(data []byte) (*ArenaConfig, error) {
	cfg := DefaultArenaConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return finishArenaConfig(cfg)
}

// finishArenaConfig 校验并整理解析结果
func finishArenaConfig(cfg *ArenaConfig) (*ArenaConfig, error) {
	if err := validateArenaConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// 权重表按起始难度升序，便于查找
	sort.SliceStable(cfg.TypeWeights, func(i, j int) bool {
		return cfg.TypeWeights[i].MinDifficulty < cfg.TypeWeights[j].MinDifficulty
	})
	return cfg, nil
}

// validateArenaConfig 验证配置的完整性和合法性
func validateArenaConfig(cfg *ArenaConfig) error {
	if cfg.Arena.Width <= 0 || cfg.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %vx%v", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Arena.ProjectileMargin < 0 || cfg.Arena.SpawnMargin < 0 {
		return fmt.Errorf("arena margins cannot be negative")
	}

	p := cfg.Player
	if p.StartHealth <= 0 {
		return fmt.Errorf("player startHealth must be positive, got %v", p.StartHealth)
	}
	if p.StartFireRate <= 0 {
		return fmt.Errorf("player startFireRate must be positive, got %v", p.StartFireRate)
	}
	if p.StartCannons < 1 {
		return fmt.Errorf("player startCannons must be at least 1, got %d", p.StartCannons)
	}
	if p.ProjectilePierce < 0 {
		return fmt.Errorf("player projectilePierce cannot be negative, got %d", p.ProjectilePierce)
	}
	if p.StartSpeed < 0 || p.StartRange < 0 || p.ProjectileSpeed < 0 || p.XPMagnetRange < 0 {
		return fmt.Errorf("player speeds and ranges cannot be negative")
	}
	if p.InvincibilityTime < 0 || p.RegenInterval <= 0 {
		return fmt.Errorf("player invincibilityTime cannot be negative and regenInterval must be positive")
	}

	e := cfg.Enemies
	if e.MinSpawnRate <= 0 || e.BaseSpawnRate < e.MinSpawnRate {
		return fmt.Errorf("enemy spawn rates must satisfy 0 < minSpawnRate <= baseSpawnRate, got %v/%v", e.MinSpawnRate, e.BaseSpawnRate)
	}
	if e.SpawnRateStep < 0 {
		return fmt.Errorf("enemy spawnRateStep cannot be negative, got %v", e.SpawnRateStep)
	}
	if e.DifficultyInterval <= 0 {
		return fmt.Errorf("enemy difficultyInterval must be positive, got %v", e.DifficultyInterval)
	}
	if e.MaxWaveSize < 1 {
		return fmt.Errorf("enemy maxWaveSize must be at least 1, got %d", e.MaxWaveSize)
	}

	if cfg.Progression.BaseXPToLevel < 1 {
		return fmt.Errorf("progression baseXPToLevel must be at least 1, got %d", cfg.Progression.BaseXPToLevel)
	}
	if cfg.Progression.XPScaleFactor < 1 {
		return fmt.Errorf("progression xpScaleFactor must be at least 1, got %v", cfg.Progression.XPScaleFactor)
	}

	pools := cfg.Pools
	if pools.ProjectileWarm < 0 || pools.PickupWarm < 0 {
		return fmt.Errorf("pool warm counts cannot be negative")
	}
	if pools.ProjectileMax < 1 || pools.PickupMax < 1 || pools.HostileMax < 1 {
		return fmt.Errorf("pool capacities must be at least 1")
	}

	if len(cfg.HostileTypes) == 0 {
		return fmt.Errorf("at least one hostile type is required")
	}
	for key, stats := range cfg.HostileTypes {
		if stats.Health < 0 || stats.Speed < 0 || stats.Damage < 0 || stats.XP < 0 || stats.Scale < 0 {
			return fmt.Errorf("hostile %s: stats cannot be negative", key)
		}
	}

	if len(cfg.TypeWeights) == 0 {
		return fmt.Errorf("at least one typeWeights bracket is required")
	}
	lowest := cfg.TypeWeights[0].MinDifficulty
	for i, bracket := range cfg.TypeWeights {
		if bracket.MinDifficulty < lowest {
			lowest = bracket.MinDifficulty
		}
		if len(bracket.Weights) == 0 {
			return fmt.Errorf("typeWeights[%d]: weights cannot be empty", i)
		}
		total := 0.0
		for _, w := range bracket.Weights {
			if _, ok := cfg.HostileTypes[w.Type]; !ok {
				return fmt.Errorf("typeWeights[%d]: unknown hostile type %q", i, w.Type)
			}
			if w.Weight < 0 {
				return fmt.Errorf("typeWeights[%d]: weight of %s cannot be negative", i, w.Type)
			}
			total += w.Weight
		}
		if total <= 0 {
			return fmt.Errorf("typeWeights[%d]: total weight must be positive", i)
		}
	}
	if lowest > 1 {
		return fmt.Errorf("typeWeights must cover difficulty 1, lowest bracket starts at %d", lowest)
	}

	return nil
}

// GetHostileStats 获取指定敌人类型的属性
// 如果类型不存在，返回 false
func (c *ArenaConfig) GetHostileStats(key string) (HostileStats, bool) {
	stats, ok := c.HostileTypes[key]
	return stats, ok
}

// BracketFor 返回指定难度生效的权重分段（起始难度不超过 difficulty 的最后一段）
func (c *ArenaConfig) BracketFor(difficulty int) WeightBracket {
	result := c.TypeWeights[0]
	for _, bracket := range c.TypeWeights {
		if bracket.MinDifficulty <= difficulty {
			result = bracket
		}
	}
	return result
}
