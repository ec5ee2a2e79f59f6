package huffman

import (
	"bytes"
)

// mergeNode is an entry in the priority queue used to build a code. `group`
// holds every symbol merged into this node so far, in merge order.
type mergeNode struct {
	count int
	group []byte
}

// mergeQueue implements heap.Interface as a min-heap on (count, group).
type mergeQueue []*mergeNode

func (q mergeQueue) Len() int {
	return len(q)
}

func (q mergeQueue) Less(i, j int) bool {
	if q[i].count != q[j].count {
		return q[i].count < q[j].count
	}
	// Groups are disjoint so this never returns 0.
	return bytes.Compare(q[i].group, q[j].group) < 0
}

func (q mergeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *mergeQueue) Push(x any) {
	*q = append(*q, x.(*mergeNode))
}

func (q *mergeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
