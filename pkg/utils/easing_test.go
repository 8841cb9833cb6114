package utils

import (
	"math"
	"testing"
)

// TestEaseOutBack 测试回弹缓出函数
func TestEaseOutBack(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"超出上界按终点处理", 1.5, 1.0},
		{"低于下界按起点处理", -0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutBack(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutBack(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	t.Run("中段冲过终点", func(t *testing.T) {
		overshoot := false
		for p := 0.5; p < 1.0; p += 0.05 {
			if EaseOutBack(p) > 1.0 {
				overshoot = true
				break
			}
		}
		if !overshoot {
			t.Error("EaseOutBack 应该在后半段超过 1.0")
		}
	})
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 0.5, 1.0, 0.0, 0.5},
		{"终点", 0.5, 1.0, 1.0, 1.0},
		{"中点", 0.5, 1.0, 0.5, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.expected)
			}
		})
	}
}
