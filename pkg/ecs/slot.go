// Package ecs 提供实体池化的基础设施
//
// 实体在池预热或首次溢出时构造一次，之后只在激活/失活之间切换，永不销毁。
// 其他模块只通过 Handle 引用池内实体：槽位被回收后旧 Handle 自动失效，
// 持有者在使用前必须通过 Pool.Resolve 重新校验。
package ecs

// EntityID 是池内槽位的唯一标识符
// ID 从 1 开始，0 保留为无效 ID
type EntityID uint32

// Handle 引用某一次激活中的实体
// 同一槽位每次激活 Generation 都会递增，因此回收后旧 Handle 不再匹配
type Handle struct {
	ID         EntityID
	Generation uint32
}

// IsValid 是否为有效 Handle（零值无效）
func (h Handle) IsValid() bool {
	return h.ID != 0
}

// Slot 池槽位状态，嵌入到各实体结构体中使用
type Slot struct {
	id         EntityID
	generation uint32
	active     bool
}

// NewSlot 创建指定 ID 的槽位（初始为未激活）
func NewSlot(id EntityID) Slot {
	return Slot{id: id}
}

// ID 返回槽位 ID
func (s *Slot) ID() EntityID {
	return s.id
}

// Handle 返回当前激活对应的 Handle
func (s *Slot) Handle() Handle {
	return Handle{ID: s.id, Generation: s.generation}
}

// IsActive 槽位是否处于激活状态
func (s *Slot) IsActive() bool {
	return s.active
}

// Activate 激活槽位并开始新的一代
func (s *Slot) Activate() {
	s.generation++
	s.active = true
}

// Deactivate 使槽位失活，槽位可被再次获取
func (s *Slot) Deactivate() {
	s.active = false
}
