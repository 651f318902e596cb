package huffman

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman code tree.  A leaf carries a Symbol and has no
// children; an internal node carries InvalidSymbol and exactly two children,
// and its Weight is the (saturating) sum of theirs.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// IsLeaf returns true iff the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree builds a Huffman code tree for the given frequencies and returns
// its root.
//
// Leaves enter the priority queue in ascending Symbol order.  The queue
// yields the lowest weight first, and among equal weights the node that was
// queued first.  Each pair of extracted nodes is merged with the first as
// the left child and the second as the right child.
//
// A table with a single entry yields a tree consisting of a single leaf.  An
// empty table is rejected with ErrInvalidInput.
func BuildTree(freqs FrequencyTable) (*Node, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: cannot build a code tree from zero symbols", ErrInvalidInput)
	}

	// Step 1: build a minheap.

	h := nodeHeap{list: make([]queuedNode, 0, len(freqs))}
	for _, symbol := range freqs.Symbols() {
		if symbol < 0 {
			return nil, fmt.Errorf("%w: invalid symbol %d", ErrInvalidInput, symbol)
		}
		freq := freqs[symbol]
		if freq == 0 {
			return nil, fmt.Errorf("%w: symbol %d has a frequency of 0", ErrInvalidInput, symbol)
		}
		h.list = append(h.list, queuedNode{&Node{Symbol: symbol, Weight: freq}, h.nextSeq})
		h.nextSeq++
	}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.

	for h.Len() > 1 {
		a := heap.Pop(&h).(queuedNode)
		b := heap.Pop(&h).(queuedNode)

		// Compute weight using saturating addition
		weight := a.node.Weight + b.node.Weight
		if weight < a.node.Weight {
			weight = math.MaxUint64
		}

		heap.Push(&h, &Node{
			Symbol: InvalidSymbol,
			Weight: weight,
			Left:   a.node,
			Right:  b.node,
		})
	}

	root := heap.Pop(&h).(queuedNode).node
	assert.Assertf(h.Len() == 0, "heap not drained: %d nodes left", h.Len())
	return root, nil
}

// type queuedNode + type nodeHeap {{{

type queuedNode struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list    []queuedNode
	nextSeq uint64
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

// Push accepts a *Node and assigns it the next sequence number.
func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, queuedNode{x.(*Node), h.nextSeq})
	h.nextSeq++
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queuedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
