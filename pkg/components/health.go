package components

// HealthComponent 存储实体的生命值信息
// 用于敌人和玩家等可被攻击的实体
type HealthComponent struct {
	CurrentHealth float64 // 当前生命值（敌人允许被打成负数）
	MaxHealth     float64 // 最大生命值
}

// Reset 回满生命值
func (h *HealthComponent) Reset(max float64) {
	h.MaxHealth = max
	h.CurrentHealth = max
}

// IsDepleted 生命值是否耗尽
func (h *HealthComponent) IsDepleted() bool {
	return h.CurrentHealth <= 0
}

// Heal 回复生命值，不超过上限
func (h *HealthComponent) Heal(amount float64) {
	h.CurrentHealth += amount
	if h.CurrentHealth > h.MaxHealth {
		h.CurrentHealth = h.MaxHealth
	}
}

// IsHurt 是否低于最大生命值
func (h *HealthComponent) IsHurt() bool {
	return h.CurrentHealth < h.MaxHealth
}
