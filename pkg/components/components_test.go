package components

import "testing"

func TestTimerComponent(t *testing.T) {
	t.Run("未启动时不计时", func(t *testing.T) {
		timer := NewTimer("idle", 100)
		if timer.Update(500) {
			t.Error("a stopped timer must not fire")
		}
		if timer.CurrentTime != 0 {
			t.Errorf("Expected CurrentTime=0, got %v", timer.CurrentTime)
		}
	})

	t.Run("到达目标时触发一次", func(t *testing.T) {
		timer := NewTimer("invincibility", 500)
		timer.Start()

		if timer.Update(300) {
			t.Error("should not fire at 300/500")
		}
		if timer.Remaining() != 200 {
			t.Errorf("Expected 200 remaining, got %v", timer.Remaining())
		}
		if !timer.Update(200) {
			t.Error("should fire at 500/500")
		}
		if timer.Running || !timer.IsReady {
			t.Error("timer should stop and be ready after firing")
		}
		if timer.Update(1000) {
			t.Error("timer must not fire twice without Start")
		}
	})

	t.Run("进度", func(t *testing.T) {
		timer := NewTimer("pop_in", 200)
		timer.Start()
		timer.Update(50)
		if p := timer.Progress(); p != 0.25 {
			t.Errorf("Expected progress 0.25, got %v", p)
		}
		timer.Reset()
		if timer.Running || timer.CurrentTime != 0 {
			t.Error("Reset should clear the timer")
		}
	})
}

func TestHealthComponent(t *testing.T) {
	h := HealthComponent{}
	h.Reset(100)

	if h.IsHurt() || h.IsDepleted() {
		t.Fatal("full health should be neither hurt nor depleted")
	}

	h.CurrentHealth -= 130
	if !h.IsDepleted() {
		t.Error("negative health should count as depleted")
	}

	h.CurrentHealth = 90
	h.Heal(25)
	if h.CurrentHealth != 100 {
		t.Errorf("Heal should clamp at max, got %v", h.CurrentHealth)
	}
}

func TestCollisionComponentBounds(t *testing.T) {
	c := CollisionComponent{Width: 48, Height: 32, OffsetX: 2, Enabled: true}
	left, top, right, bottom := c.Bounds(100, 100)

	if left != 78 || right != 126 || top != 84 || bottom != 116 {
		t.Errorf("unexpected bounds: %v %v %v %v", left, top, right, bottom)
	}

	sq := NewSquareCollision(16)
	if sq.Width != 16 || sq.Height != 16 || !sq.Enabled {
		t.Errorf("unexpected square collision: %+v", sq)
	}
}
