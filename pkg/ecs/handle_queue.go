package ecs

import "slices"

// HandleQueue 按入队顺序记录 Handle 的 FIFO 队列
// 与池内槽位顺序无关，用于"最早生成者优先回收"的策略
type HandleQueue struct {
	items []Handle
}

// NewHandleQueue 创建空队列
func NewHandleQueue(capacity int) *HandleQueue {
	return &HandleQueue{items: make([]Handle, 0, capacity)}
}

// Push 追加到队尾
func (q *HandleQueue) Push(h Handle) {
	q.items = append(q.items, h)
}

// Shift 取出队首（最早入队者）
func (q *HandleQueue) Shift() (Handle, bool) {
	if len(q.items) == 0 {
		return Handle{}, false
	}
	h := q.items[0]
	q.items = slices.Delete(q.items, 0, 1)
	return h, true
}

// Remove 删除指定 Handle，不存在时返回 false
func (q *HandleQueue) Remove(h Handle) bool {
	index := slices.Index(q.items, h)
	if index < 0 {
		return false
	}
	q.items = slices.Delete(q.items, index, index+1)
	return true
}

// Contains 队列中是否存在指定 Handle
func (q *HandleQueue) Contains(h Handle) bool {
	return slices.Contains(q.items, h)
}

// Len 队列长度
func (q *HandleQueue) Len() int {
	return len(q.items)
}

// Clear 清空队列
func (q *HandleQueue) Clear() {
	q.items = q.items[:0]
}
