package ecs

import "log"

// Poolable 可被 Pool 管理的实体
type Poolable interface {
	Handle() Handle
	IsActive() bool
	Deactivate()
}

// Factory 构造一个处于未激活状态的新实体
type Factory[T Poolable] func(id EntityID) T

// Pool 固定容量的可复用实体集合
//
// 槽位顺序即构造顺序。Pool 不做隐式淘汰：没有空闲槽位时由调用方决定
// 扩容（Grow）还是回收某个活跃实体。容量只增不减。
type Pool[T Poolable] struct {
	name     string
	items    []T
	capacity int
	factory  Factory[T]
}

// NewPool 创建一个空池
//
// 参数:
//   - name: 池名称，仅用于日志
//   - capacity: 容量上限提示（活跃数达到该值视为已满）
//   - factory: 实体构造函数
func NewPool[T Poolable](name string, capacity int, factory Factory[T]) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		name:     name,
		items:    make([]T, 0, capacity),
		capacity: capacity,
		factory:  factory,
	}
}

// Name 返回池名称
func (p *Pool[T]) Name() string {
	return p.name
}

// Warm 预先构造实体，直到槽位数达到 n
func (p *Pool[T]) Warm(n int) {
	for len(p.items) < n {
		p.Grow()
	}
}

// Acquire 返回第一个未激活的槽位
// 所有槽位都处于激活状态时返回 false
func (p *Pool[T]) Acquire() (T, bool) {
	for _, item := range p.items {
		if !item.IsActive() {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Grow 追加一个新构造的槽位并返回它
// 槽位数超过容量提示时容量随之增长
func (p *Pool[T]) Grow() T {
	id := EntityID(len(p.items) + 1)
	item := p.factory(id)
	p.items = append(p.items, item)
	if len(p.items) > p.capacity {
		p.capacity = len(p.items)
		log.Printf("[Pool:%s] grew beyond capacity hint, now %d slots", p.name, p.capacity)
	}
	return item
}

// Get 按槽位 ID 返回实体（不检查激活状态）
func (p *Pool[T]) Get(id EntityID) (T, bool) {
	if id == 0 || int(id) > len(p.items) {
		var zero T
		return zero, false
	}
	return p.items[id-1], true
}

// Resolve 校验 Handle 并返回实体
// 槽位未激活或已进入新的一代时返回 false
func (p *Pool[T]) Resolve(h Handle) (T, bool) {
	item, ok := p.Get(h.ID)
	if !ok || !item.IsActive() || item.Handle() != h {
		var zero T
		return zero, false
	}
	return item, true
}

// EachActive 按槽位顺序遍历激活的实体，未激活槽位直接跳过
func (p *Pool[T]) EachActive(fn func(T)) {
	for _, item := range p.items {
		if item.IsActive() {
			fn(item)
		}
	}
}

// Active 返回当前激活实体的切片（新分配，调用方可自由排序）
func (p *Pool[T]) Active() []T {
	result := make([]T, 0, len(p.items))
	for _, item := range p.items {
		if item.IsActive() {
			result = append(result, item)
		}
	}
	return result
}

// ReleaseWhere 使满足条件的激活实体失活，返回失活数量
func (p *Pool[T]) ReleaseWhere(pred func(T) bool) int {
	released := 0
	for _, item := range p.items {
		if item.IsActive() && pred(item) {
			item.Deactivate()
			released++
		}
	}
	return released
}

// ReleaseAll 使所有激活实体失活
func (p *Pool[T]) ReleaseAll() int {
	return p.ReleaseWhere(func(T) bool { return true })
}

// Len 返回已构造的槽位数
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Cap 返回当前容量
func (p *Pool[T]) Cap() int {
	return p.capacity
}

// ActiveCount 返回激活实体数量
func (p *Pool[T]) ActiveCount() int {
	count := 0
	for _, item := range p.items {
		if item.IsActive() {
			count++
		}
	}
	return count
}

// IsFull 槽位数是否已达到容量
func (p *Pool[T]) IsFull() bool {
	return len(p.items) >= p.capacity
}
