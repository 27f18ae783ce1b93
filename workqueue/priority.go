package workqueue

import "container/heap"

// Priority is a container/heap-backed Collection ordered by a caller
// Less function, modeled line-for-line on lvlath's nodePQ
// (graph/dijkstra.go) and edgePQ (graph/prim_kruskal.go) heap.Interface
// implementations.
//
// A smaller element per Less surfaces first. Ties break in FIFO order of
// insertion (sequence is a monotonically increasing counter, matching
// the common container/heap idiom for stable priority queues).
type Priority[W any] struct {
	h *priorityHeap[W]
}

// NewPriority returns an empty Priority queue ordered by less.
func NewPriority[W any](less func(a, b W) bool) *Priority[W] {
	h := &priorityHeap[W]{less: less}
	heap.Init(h)
	return &Priority[W]{h: h}
}

// Empty reports whether the queue holds no items.
func (p *Priority[W]) Empty() bool { return p.h.Len() == 0 }

// Offer inserts item into the queue.
func (p *Priority[W]) Offer(item W) {
	heap.Push(p.h, item)
}

// Take removes and returns the least item per the queue's Less function.
func (p *Priority[W]) Take() (W, bool) {
	var zero W
	if p.h.Len() == 0 {
		return zero, false
	}
	return heap.Pop(p.h).(W), true
}

// priorityHeap implements heap.Interface for a generic priority queue.
type priorityHeap[W any] struct {
	less  func(a, b W) bool
	items []W
	seq   []uint64
	next  uint64
}

func (h *priorityHeap[W]) Len() int { return len(h.items) }

func (h *priorityHeap[W]) Less(i, j int) bool {
	if h.less(h.items[i], h.items[j]) {
		return true
	}
	if h.less(h.items[j], h.items[i]) {
		return false
	}
	return h.seq[i] < h.seq[j]
}

func (h *priorityHeap[W]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.seq[i], h.seq[j] = h.seq[j], h.seq[i]
}

func (h *priorityHeap[W]) Push(x interface{}) {
	h.items = append(h.items, x.(W))
	h.seq = append(h.seq, h.next)
	h.next++
}

func (h *priorityHeap[W]) Pop() interface{} {
	n := len(h.items)
	item := h.items[n-1]
	h.items = h.items[:n-1]
	h.seq = h.seq[:n-1]
	return item
}
