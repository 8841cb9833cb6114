package utils

import "math"

// Vec2 二维向量
// 用于位置、速度和方向，单位为竞技场世界坐标
type Vec2 struct {
	X float64
	Y float64
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len 向量长度
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// DistanceTo 两点间欧氏距离
func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// AngleTo 从 v 指向 o 的朝向（弧度）
// 两点重合时返回 0（朝向 +X）
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Atan2(o.Y-v.Y, o.X-v.X)
}

// FromAngle 根据弧度构造单位向量
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Clamp 将 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RotateTo 沿最短方向把 current 转向 target，每次最多转动 step 弧度
func RotateTo(current, target, step float64) float64 {
	diff := math.Remainder(target-current, 2*math.Pi)
	if math.Abs(diff) <= step {
		return target
	}
	if diff > 0 {
		return current + step
	}
	return current - step
}

// Rect 轴对齐矩形（世界坐标）
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewRect 以左上角原点和宽高构造矩形
func NewRect(width, height float64) Rect {
	return Rect{MinX: 0, MinY: 0, MaxX: width, MaxY: height}
}

// Expand 向四周各扩展 margin
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		MinX: r.MinX - margin,
		MinY: r.MinY - margin,
		MaxX: r.MaxX + margin,
		MaxY: r.MaxY + margin,
	}
}

// Contains 点是否位于矩形内（含边界）
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// ClampPoint 将点的两个坐标分别限制在矩形内
func (r Rect) ClampPoint(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, r.MinX, r.MaxX),
		Y: Clamp(p.Y, r.MinY, r.MaxY),
	}
}

// Width 矩形宽度
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height 矩形高度
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}
