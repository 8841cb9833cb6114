package systems

import (
	"log"
	"math"

	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/ecs"
	"github.com/decker502/broadside/pkg/entities"
	"github.com/decker502/broadside/pkg/utils"
)

// SpawnDirector 敌人生成调度
//
// 职责：
//   - 按游戏时间更新难度级别
//   - 累积帧时间，达到生成间隔时生成一波敌人
//   - 在玩家周围的圆上随机放置敌人，并按权重选择类型
//   - 优先复用敌人池中失活的敌人，池满时扩容
//
// 累积器达到间隔后清零，不保留余量
type SpawnDirector struct {
	cfg      *config.ArenaConfig
	engine   *DifficultyEngine
	hostiles *ecs.Pool[*entities.Hostile]
	rng      RandomSource

	accumulator  float64
	difficulty   int
	wavesSpawned int
	totalSpawned int
}

// NewSpawnDirector 创建生成调度器
//
// 参数：
//
//	engine - 难度引擎
//	hostiles - 敌人池
//	rng - 随机数来源（角度与类型）
func NewSpawnDirector(engine *DifficultyEngine, hostiles *ecs.Pool[*entities.Hostile], rng RandomSource) *SpawnDirector {
	return &SpawnDirector{
		cfg:        engine.Config(),
		engine:     engine,
		hostiles:   hostiles,
		rng:        rng,
		difficulty: 1,
	}
}

// Update 推进生成计时
//
// 参数：
//
//	deltaTime - 帧间隔（毫秒）
//	gameTime - 已进行的游戏时间（毫秒）
//	player - 玩家位置，nil 时不做任何事
//
// 返回：
//
//	本帧生成的敌人数量
func (s *SpawnDirector) Update(deltaTime, gameTime float64, player *utils.Vec2) int {
	if player == nil {
		return 0
	}

	difficulty := s.engine.Difficulty(gameTime)
	if difficulty != s.difficulty {
		log.Printf("[SpawnDirector] Difficulty %d -> %d (interval %.0fms, wave size %d)",
			s.difficulty, difficulty, s.engine.SpawnInterval(difficulty), s.engine.WaveSize(difficulty))
		s.difficulty = difficulty
	}

	s.accumulator += deltaTime
	if s.accumulator < s.engine.SpawnInterval(difficulty) {
		return 0
	}
	s.accumulator = 0
	return s.SpawnWave(*player)
}

// SpawnWave 立即在 center 周围生成一波敌人，返回生成数量
func (s *SpawnDirector) SpawnWave(center utils.Vec2) int {
	count := s.engine.WaveSize(s.difficulty)
	for i := 0; i < count; i++ {
		s.spawnOne(center)
	}
	s.wavesSpawned++
	s.totalSpawned += count
	return count
}

// spawnOne 放置并激活单个敌人
// 先抽取角度再抽取类型
func (s *SpawnDirector) spawnOne(center utils.Vec2) *entities.Hostile {
	angle := s.rng.Float64() * 2 * math.Pi
	pos := center.Add(utils.FromAngle(angle).Scale(s.cfg.Enemies.SpawnDistance))
	pos = s.cfg.Arena.Bounds().Expand(s.cfg.Arena.SpawnMargin).ClampPoint(pos)

	typeKey := s.engine.SelectHostileType(s.difficulty, s.rng)
	stats, ok := s.cfg.GetHostileStats(typeKey)
	if !ok {
		log.Printf("[SpawnDirector] Warning: unknown hostile type %s, using defaults", typeKey)
	}

	hostile, ok := s.hostiles.Acquire()
	if !ok {
		hostile = s.hostiles.Grow()
	}
	hostile.Spawn(pos, typeKey, stats)
	return hostile
}

// Difficulty 返回最近一次更新时的难度级别
func (s *SpawnDirector) Difficulty() int {
	return s.difficulty
}

// Accumulator 返回当前累积的生成计时
func (s *SpawnDirector) Accumulator() float64 {
	return s.accumulator
}

// WavesSpawned 已生成的波数
func (s *SpawnDirector) WavesSpawned() int {
	return s.wavesSpawned
}

// TotalSpawned 已生成的敌人总数
func (s *SpawnDirector) TotalSpawned() int {
	return s.totalSpawned
}
