package algo_test

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/transitlab/sitp-routing/router/algo"
)

func TestPriorityQueue(t *testing.T) {
	pq := make(algo.PriorityQueue[int], 0)
	pq.Push(&algo.Item[int]{Value: 4, Priority: 4})
	pq.Push(&algo.Item[int]{Value: 2, Priority: 2})
	pq.Push(&algo.Item[int]{Value: 1, Priority: 1})
	pq.Push(&algo.Item[int]{Value: 3, Priority: 3})

	heap.Init(&pq)

	item := heap.Pop(&pq).(*algo.Item[int])
	assert.Equal(t, 1, item.Value)
	assert.Equal(t, 1.0, item.Priority)
	item = heap.Pop(&pq).(*algo.Item[int])
	assert.Equal(t, 2, item.Value)
	assert.Equal(t, 2.0, item.Priority)
}

func TestPriorityQueueChangePriority(t *testing.T) {
	pq := make(algo.PriorityQueue[int], 0)
	pq.Push(&algo.Item[int]{Value: 4, Priority: 4})
	pq.Push(&algo.Item[int]{Value: 2, Priority: 2})
	pq.Push(&algo.Item[int]{Value: 1, Priority: 1})
	pq.Push(&algo.Item[int]{Value: 3, Priority: 3})

	heap.Init(&pq)

	// lower the priority of Value==3 to 0
	for _, item := range pq {
		if item.Value == 3 {
			item.Priority = 0
			heap.Fix(&pq, item.Index)
		}
	}

	item := heap.Pop(&pq).(*algo.Item[int])
	assert.Equal(t, 3, item.Value)
	assert.Equal(t, 0.0, item.Priority)

	item = heap.Pop(&pq).(*algo.Item[int])
	assert.Equal(t, 1, item.Value)
	assert.Equal(t, 1.0, item.Priority)

	item = heap.Pop(&pq).(*algo.Item[int])
	assert.Equal(t, 2, item.Value)
	assert.Equal(t, 2.0, item.Priority)

	item = heap.Pop(&pq).(*algo.Item[int])
	assert.Equal(t, 4, item.Value)
	assert.Equal(t, 4.0, item.Priority)

	assert.Equal(t, 0, pq.Len())
}
