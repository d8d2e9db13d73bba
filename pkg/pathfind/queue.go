package pathfind

import "container/heap"

// node - элемент открытого списка A*
type node struct {
	Index    int // Индекс клетки на карте
	Priority int // f = g + h. Чем меньше, тем раньше раскрываем.
	Order    int // Порядок вставки, разрешает ничьи детерминированно
	heapIdx  int // Индекс в куче (нужен для update)
}

// openSet реализует heap.Interface (MinHeap по Priority)
type openSet []*node

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Order < pq[j].Order
}

func (pq openSet) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].heapIdx = i
	pq[j].heapIdx = j
}

func (pq *openSet) Push(x interface{}) {
	n := len(*pq)
	item := x.(*node)
	item.heapIdx = n
	*pq = append(*pq, item)
}

func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil    // избегаем утечки памяти
	item.heapIdx = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// update изменяет приоритет элемента, который уже лежит в очереди
func (pq *openSet) update(item *node, priority int) {
	item.Priority = priority
	heap.Fix(pq, item.heapIdx)
}
