package pathfind

import (
	"container/heap"
	"testing"
)

func TestOpenSet(t *testing.T) {
	pq := make(openSet, 0)
	heap.Init(&pq)

	n1 := &node{Index: 1, Priority: 10, Order: 0}
	n2 := &node{Index: 2, Priority: 5, Order: 1}
	n3 := &node{Index: 3, Priority: 20, Order: 2}

	heap.Push(&pq, n1)
	heap.Push(&pq, n2)
	heap.Push(&pq, n3)

	if pq.Len() != 3 {
		t.Errorf("Expected length 3, got %d", pq.Len())
	}

	// Первым выходит узел с наименьшим f
	first := heap.Pop(&pq).(*node)
	if first.Index != 2 {
		t.Errorf("Expected node 2, got %d", first.Index)
	}

	// Сейчас в очереди 1(10), 3(20). Поднимаем 1 до 30 - вершиной станет 3.
	pq.update(n1, 30)

	second := heap.Pop(&pq).(*node)
	if second.Index != 3 {
		t.Errorf("Expected node 3 (f=20), got %d", second.Index)
	}

	third := heap.Pop(&pq).(*node)
	if third.Index != 1 {
		t.Errorf("Expected node 1 (f=30), got %d", third.Index)
	}
}

func TestOpenSet_TieBreakByOrder(t *testing.T) {
	pq := make(openSet, 0)
	heap.Init(&pq)

	heap.Push(&pq, &node{Index: 7, Priority: 4, Order: 2})
	heap.Push(&pq, &node{Index: 8, Priority: 4, Order: 1})

	if got := heap.Pop(&pq).(*node).Index; got != 8 {
		t.Errorf("Expected earlier inserted node 8, got %d", got)
	}
}
