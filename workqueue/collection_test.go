package workqueue

import "testing"

func drain[W any](c Collection[W]) []W {
	var out []W
	for {
		item, ok := c.Take()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}

func TestFIFOOrder(t *testing.T) {
	q := NewFIFO[int]()
	if !q.Empty() {
		t.Fatalf("expected new FIFO to be empty")
	}
	for _, v := range []int{1, 2, 3} {
		q.Offer(v)
	}
	got := drain[int](q)
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FIFO order: got %v want %v", got, want)
		}
	}
}

func TestLIFOOrder(t *testing.T) {
	s := NewLIFO[int]()
	for _, v := range []int{1, 2, 3} {
		s.Offer(v)
	}
	got := drain[int](s)
	want := []int{3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LIFO order: got %v want %v", got, want)
		}
	}
}

func TestPriorityOrder(t *testing.T) {
	pq := NewPriority[int](func(a, b int) bool { return a < b })
	for _, v := range []int{5, 1, 3, 2, 4} {
		pq.Offer(v)
	}
	got := drain[int](pq)
	want := []int{1, 2, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Priority order: got %v want %v", got, want)
		}
	}
}

func TestPriorityStableOnTies(t *testing.T) {
	type item struct{ group, id int }
	pq := NewPriority[item](func(a, b item) bool { return a.group < b.group })
	pq.Offer(item{group: 1, id: 1})
	pq.Offer(item{group: 1, id: 2})
	pq.Offer(item{group: 1, id: 3})
	got := drain[item](pq)
	for i, it := range got {
		if it.id != i+1 {
			t.Fatalf("expected FIFO tie-break, got %+v", got)
		}
	}
}
