package systems

import (
	"math"

	"github.com/decker502/broadside/pkg/config"
)

// RandomSource 随机数来源
// 生产环境传入 *rand.Rand，测试中传入预设序列以获得确定结果
type RandomSource interface {
	// Float64 返回 [0, 1) 内的均匀随机数
	Float64() float64
}

// DifficultyEngine 难度引擎
// 根据已进行的游戏时间计算难度级别，并由难度推导生成间隔、每波数量和敌人类型
type DifficultyEngine struct {
	cfg *config.ArenaConfig
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(cfg *config.ArenaConfig) *DifficultyEngine {
	return &DifficultyEngine{cfg: cfg}
}

// Difficulty 计算难度级别
// 公式: difficulty = 1 + floor(gameTime / difficultyInterval)
// 参数:
//
//	gameTime - 已进行的游戏时间（毫秒，暂停期间不计）
//
// 返回:
//
//	难度级别（从 1 开始，随时间单调不减）
func (d *DifficultyEngine) Difficulty(gameTime float64) int {
	if gameTime < 0 {
		gameTime = 0
	}
	return 1 + int(math.Floor(gameTime/d.cfg.Enemies.DifficultyInterval))
}

// SpawnInterval 计算生成间隔
// 公式: max(minSpawnRate, baseSpawnRate - difficulty × spawnRateStep)
// 默认配置下难度 11 起固定为 400ms
func (d *DifficultyEngine) SpawnInterval(difficulty int) float64 {
	e := d.cfg.Enemies
	return math.Max(e.MinSpawnRate, e.BaseSpawnRate-float64(difficulty)*e.SpawnRateStep)
}

// WaveSize 计算每波生成数量
// 公式: min(1 + floor(difficulty / 2), maxWaveSize)
func (d *DifficultyEngine) WaveSize(difficulty int) int {
	return min(1+difficulty/2, d.cfg.Enemies.MaxWaveSize)
}

// SelectHostileType 按难度对应的权重表选择敌人类型
// 每次选择只消耗一次均匀随机数，与累积阈值逐个比较；
// 权重表只有一项时不消耗随机数
//
// 参数:
//
//	difficulty - 当前难度
//	rng - 随机数来源
//
// 返回:
//
//	敌人类型键
func (d *DifficultyEngine) SelectHostileType(difficulty int, rng RandomSource) string {
	weights := d.cfg.BracketFor(difficulty).Weights
	if len(weights) == 1 {
		return weights[0].Type
	}

	total := 0.0
	for _, w := range weights {
		total += w.Weight
	}

	roll := rng.Float64() * total
	cumulative := 0.0
	for _, w := range weights {
		cumulative += w.Weight
		if roll < cumulative {
			return w.Type
		}
	}
	// 浮点误差兜底
	return weights[len(weights)-1].Type
}

// Config 返回难度引擎使用的配置
func (d *DifficultyEngine) Config() *config.ArenaConfig {
	return d.cfg
}
