package routing

import "container/heap"

// Priority-queue entry for the cost searches. seq records insertion
// order so that equal priorities pop deterministically for identical
// inputs.
type queueItem struct {
	node     int
	priority float64
	seq      int
}

type minQueue struct {
	items []queueItem
	next  int
}

func newMinQueue() *minQueue { return &minQueue{} }

func (q *minQueue) Len() int { return len(q.items) }

func (q *minQueue) Less(i, j int) bool {
	if q.items[i].priority != q.items[j].priority {
		return q.items[i].priority < q.items[j].priority
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *minQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *minQueue) Push(x any) { q.items = append(q.items, x.(queueItem)) }

func (q *minQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

func (q *minQueue) push(node int, priority float64) {
	heap.Push(q, queueItem{node: node, priority: priority, seq: q.next})
	q.next++
}

func (q *minQueue) pop() queueItem { return heap.Pop(q).(queueItem) }
