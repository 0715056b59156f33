package algo

// Item is an entry of PriorityQueue.
type Item[T comparable] struct {
	Value    T
	Priority float64
	Index    int // heap index, maintained by the heap.Interface methods
}

// PriorityQueue is a min-heap over Item priorities for container/heap.
// Decrease-key is done by mutating Item.Priority and calling heap.Fix with
// Item.Index.
type PriorityQueue[T comparable] []*Item[T]

func (pq PriorityQueue[T]) Len() int { return len(pq) }

func (pq PriorityQueue[T]) Less(i, j int) bool {
	return pq[i].Priority < pq[j].Priority
}

func (pq PriorityQueue[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue[T]) Push(x any) {
	item := x.(*Item[T])
	item.Index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *PriorityQueue[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.Index = -1
	*pq = old[:n-1]
	return item
}
