package components

// TimerComponent 通用计时器组件
// 用于处理需要时间累积的行为（如回血周期、无敌时间、受击闪烁、弹出动画）
// 时间单位与调用方传入的 deltaTime 一致（核心模拟统一使用毫秒）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "health_regen"
	TargetTime  float64 // 目标时间
	CurrentTime float64 // 当前已过时间
	IsReady     bool    // 计时器是否已完成
	Running     bool    // 是否正在计时
}

// NewTimer 创建一个未启动的计时器
func NewTimer(name string, target float64) TimerComponent {
	return TimerComponent{Name: name, TargetTime: target}
}

// Start 从零开始计时
func (t *TimerComponent) Start() {
	t.CurrentTime = 0
	t.IsReady = false
	t.Running = true
}

// Stop 停止计时（不改变已累积的时间）
func (t *TimerComponent) Stop() {
	t.Running = false
}

// Reset 清零且不再计时
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
	t.Running = false
}

// Update 累加时间，到达目标时返回 true 并停止计时
// 不携带余量：到达目标后 CurrentTime 保持为累积值，由调用方决定是否 Start 重新计时
func (t *TimerComponent) Update(deltaTime float64) bool {
	if !t.Running {
		return false
	}
	t.CurrentTime += deltaTime
	if t.CurrentTime >= t.TargetTime {
		t.IsReady = true
		t.Running = false
		return true
	}
	return false
}

// Remaining 距离完成的剩余时间
func (t *TimerComponent) Remaining() float64 {
	if !t.Running {
		return 0
	}
	remaining := t.TargetTime - t.CurrentTime
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress 完成进度 [0, 1]
func (t *TimerComponent) Progress() float64 {
	if t.TargetTime <= 0 || t.IsReady {
		return 1
	}
	progress := t.CurrentTime / t.TargetTime
	if progress > 1 {
		return 1
	}
	return progress
}
