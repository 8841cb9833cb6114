package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒中心对齐实体位置，用于物理系统检测重叠（子弹与敌人、玩家与敌人、玩家与宝石）
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度
	Height  float64 // 碰撞盒高度
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量，正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量，正值向下偏移
	Enabled bool    // 是否参与重叠检测（宝石被收集后立即关闭）
}

// NewSquareCollision 创建边长为 size 的居中碰撞盒
func NewSquareCollision(size float64) CollisionComponent {
	return CollisionComponent{Width: size, Height: size, Enabled: true}
}

// Bounds 返回以 (x, y) 为实体位置时碰撞盒的左、上、右、下边界
func (c CollisionComponent) Bounds(x, y float64) (left, top, right, bottom float64) {
	cx := x + c.OffsetX
	cy := y + c.OffsetY
	return cx - c.Width/2, cy - c.Height/2, cx + c.Width/2, cy + c.Height/2
}
