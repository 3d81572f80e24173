package search

import (
	"container/heap"

	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"
)

// node is one frontier entry: a cell plus the depth and accumulated cost of
// the route that discovered it.
type node struct {
	cell  Cell
	depth int
	cost  int
}

// frontier is the discovered-but-not-expanded set; the pop discipline is
// what distinguishes BFS, DFS/DLS and UCS.
type frontier interface {
	push(n node)
	pop() node
	empty() bool
}

// fifo pops the oldest entry.
type fifo struct{ q *queue.Queue[node] }

func newFIFO() frontier { return &fifo{q: queue.New[node]()} }

func (f *fifo) push(n node) { f.q.Enqueue(n) }
func (f *fifo) pop() node { return f.q.Dequeue() }
func (f *fifo) empty() bool { return f.q.Empty() }

// lifo pops the newest entry.
type lifo struct{ s *stack.Stack[node] }

func newLIFO() frontier { return &lifo{s: stack.New[node]()} }

func (l *lifo) push(n node) { l.s.Push(n) }
func (l *lifo) pop() node { return l.s.Pop() }
func (l *lifo) empty() bool { return l.s.Size() == 0 }

// cheapest pops the entry with the lowest cost. Improved routes are pushed
// as new entries and outdated ones stay in the heap (lazy decrease-key).
type cheapest struct{ pq costPQ }

func newCheapest() frontier {
	c := &cheapest{pq: make(costPQ, 0, 16)}
	heap.Init(&c.pq)
	return c
}

func (c *cheapest) push(n node) { heap.Push(&c.pq, n) }
func (c *cheapest) pop() node { return heap.Pop(&c.pq).(node) }
func (c *cheapest) empty() bool { return c.pq.Len() == 0 }

// costPQ is a min-heap of nodes ordered by (cost, row, col).
type costPQ []node

// Len returns the number of entries in the heap.
func (pq costPQ) Len() int { return len(pq) }

// Less orders by cost, then row, then column, so equal-cost entries pop in
// row-major order.
func (pq costPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.cell.Row != b.cell.Row {
		return a.cell.Row < b.cell.Row
	}
	return a.cell.Col < b.cell.Col
}

// Swap swaps two entries in the heap.
func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a node. Called by heap.Push.
func (pq *costPQ) Push(x any) { *pq = append(*pq, x.(node)) }

// Pop removes the last entry. Called by heap.Pop.
func (pq *costPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
