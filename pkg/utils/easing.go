package utils

import "math"

// 缓动函数
//
// 所有函数接受一个进度值 t ∈ [0, 1]。
// 仅保留外观过渡用到的曲线（掉落物弹出、受击闪烁等），不参与任何玩法判定。

// backOvershoot EaseOutBack 的回弹系数（与常见实现的默认值一致）
const backOvershoot = 1.70158

// EaseOutBack 回弹缓出
// 特点：快速冲过终点再回落到 1（用于经验宝石的弹出效果）
// 公式：f(t) = 1 + (c+1)(t-1)³ + c(t-1)²
func EaseOutBack(t float64) float64 {
	t = Clamp01(t)
	c3 := backOvershoot + 1
	return 1 + c3*math.Pow(t-1, 3) + backOvershoot*math.Pow(t-1, 2)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return Clamp(t, 0, 1)
}
