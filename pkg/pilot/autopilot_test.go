package pilot

import (
	"math"
	"testing"

	"github.com/decker502/broadside/pkg/config"
	"github.com/decker502/broadside/pkg/game"
	"github.com/decker502/broadside/pkg/utils"
)

// TestSteer 自动驾驶的方向选择
func TestSteer(t *testing.T) {
	bounds := utils.NewRect(1280, 720)
	center := utils.Vec2{X: 640, Y: 360}

	tests := []struct {
		name     string
		self     utils.Vec2
		hostiles []utils.Vec2
		pickups  []utils.Vec2
		check    func(v utils.Vec2) bool
	}{
		{
			name:  "中央且无目标时静止",
			self:  center,
			check: func(v utils.Vec2) bool { return v.IsZero() },
		},
		{
			name:  "远离中央时回到中央",
			self:  utils.Vec2{X: 200, Y: 360},
			check: func(v utils.Vec2) bool { return v.X > 0.99 },
		},
		{
			name:     "背离右侧的敌人",
			self:     center,
			hostiles: []utils.Vec2{{X: 740, Y: 360}},
			check:    func(v utils.Vec2) bool { return v.X < -0.99 },
		},
		{
			name:     "危险半径外的敌人被忽略",
			self:     center,
			hostiles: []utils.Vec2{{X: 1000, Y: 360}},
			pickups:  []utils.Vec2{{X: 640, Y: 500}},
			check:    func(v utils.Vec2) bool { return v.Y > 0.99 },
		},
		{
			name:    "去拾取最近的宝石",
			self:    center,
			pickups: []utils.Vec2{{X: 640, Y: 100}, {X: 700, Y: 360}},
			check:   func(v utils.Vec2) bool { return v.X > 0.99 },
		},
		{
			name:     "重叠时朝中心逃离",
			self:     utils.Vec2{X: 300, Y: 360},
			hostiles: []utils.Vec2{{X: 300, Y: 360}},
			check:    func(v utils.Vec2) bool { return v.X > 0.99 },
		},
		{
			name:     "贴墙时方向长度不超过1",
			self:     utils.Vec2{X: 30, Y: 360},
			hostiles: []utils.Vec2{{X: 130, Y: 360}},
			check:    func(v utils.Vec2) bool { return v.Len() <= 1+1e-9 },
		},
	}

	ap := New(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ap.Steer(tt.self, tt.hostiles, tt.pickups, bounds)
			if !tt.check(got) {
				t.Errorf("Steer() = %+v", got)
			}
			if got.Len() > 1+1e-9 {
				t.Errorf("Steer() length %v exceeds 1", got.Len())
			}
		})
	}
}

// TestNewDefaultRadius 非正半径使用默认值
func TestNewDefaultRadius(t *testing.T) {
	if got := New(-1).DangerRadius; got != DefaultDangerRadius {
		t.Errorf("DangerRadius = %v, want %v", got, DefaultDangerRadius)
	}
	if got := New(50).DangerRadius; got != 50 {
		t.Errorf("DangerRadius = %v, want 50", got)
	}
}

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

// TestAutopilotDrivesArena 自动驾驶能驱动竞技场持续运行
func TestAutopilotDrivesArena(t *testing.T) {
	arena := game.NewArena(config.DefaultArenaConfig(), fixedRandom(0.3))
	ap := New(0)

	for i := 0; i < 600 && arena.Phase() == game.PhaseRunning; i++ {
		input := ap.Input(arena)
		if l := input.Move.Len(); l > 1+1e-9 || math.IsNaN(l) {
			t.Fatalf("frame %d: invalid move %+v", i, input.Move)
		}
		arena.Tick(16, input)
	}

	if arena.FrameTime() <= 0 {
		t.Error("Arena did not advance")
	}
}
