package main

import (
	"log"
	"time"

	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/game"
	"github.com/decker502/broadside/pkg/pilot"
	"github.com/decker502/broadside/pkg/systems"
	"github.com/decker502/broadside/pkg/upgrades"
	"github.com/decker502/broadside/pkg/utils"
)

// 终端没有按键松开事件，方向键按下后保持这么久
const holdDuration = 180 * time.Millisecond

// Sounder 事件音效
type Sounder interface {
	Kill()
	LevelUp()
	GameOver()
}

// session 一局终端游戏的状态
// 输入事件与帧推进都在主循环 goroutine 中处理
type session struct {
	cfg   *config.ArenaConfig
	rng   systems.RandomSource
	sound Sounder

	arena     *game.Arena
	autopilot *pilot.Autopilot
	auto      bool

	heldMove  utils.Vec2
	heldUntil time.Time
	toggle    bool

	choices  []upgrades.Upgrade
	snapshot game.Snapshot
	summary  *game.GameOverEvent
	runs     int
}

func newSession(cfg *config.ArenaConfig, rng systems.RandomSource, sound Sounder) *session {
	s := &session{
		cfg:       cfg,
		rng:       rng,
		sound:     sound,
		autopilot: pilot.New(0),
	}
	s.restart()
	return s
}

// restart 开始新的一局
func (s *session) restart() {
	s.arena = game.NewArena(s.cfg, s.rng)
	s.choices = nil
	s.summary = nil
	s.heldMove = utils.Vec2{}
	s.toggle = false
	s.snapshot = s.arena.Snapshot()
	s.runs++
	log.Printf("[arena-tui] Run %d started", s.runs)
}

// hold 记录方向输入
func (s *session) hold(dir utils.Vec2, now time.Time) {
	s.heldMove = dir
	s.heldUntil = now.Add(holdDuration)
}

// stop 立即停船
func (s *session) stop() {
	s.heldMove = utils.Vec2{}
}

// requestPause 下一帧切换暂停
func (s *session) requestPause() {
	s.toggle = true
}

// toggleAutopilot 切换自动驾驶
func (s *session) toggleAutopilot() {
	s.auto = !s.auto
	log.Printf("[arena-tui] Autopilot %v", s.auto)
}

// pick 选择升级候选，返回是否生效
func (s *session) pick(index int) bool {
	if s.arena.Phase() != game.PhaseAwaitingUpgrade || index < 0 || index >= len(s.choices) {
		return false
	}
	chosen := s.choices[index]
	if !s.arena.ApplyUpgrade(chosen.Func()) {
		return false
	}
	log.Printf("[arena-tui] Upgrade chosen: %s", chosen.Name)
	s.choices = nil
	s.snapshot = s.arena.Snapshot()
	return true
}

// step 推进一帧
func (s *session) step(deltaTime float64, now time.Time) {
	input := game.Input{TogglePause: s.toggle}
	s.toggle = false

	if s.auto {
		input.Move = s.autopilot.Input(s.arena).Move
		// 自动驾驶也自动选第一个升级
		if s.arena.Phase() == game.PhaseAwaitingUpgrade && len(s.choices) > 0 {
			s.pick(0)
		}
	} else if now.Before(s.heldUntil) {
		input.Move = s.heldMove
	}

	kills := s.snapshot.Kills
	result := s.arena.Tick(deltaTime, input)
	s.snapshot = result.Snapshot

	if s.snapshot.Kills > kills && s.sound != nil {
		s.sound.Kill()
	}
	if result.LevelUp != nil {
		s.choices = upgrades.RandomChoices(s.rng, upgrades.DefaultChoiceCount)
		if s.sound != nil {
			s.sound.LevelUp()
		}
	}
	if result.GameOver != nil {
		summary := *result.GameOver
		s.summary = &summary
		if s.sound != nil {
			s.sound.GameOver()
		}
	}
}
