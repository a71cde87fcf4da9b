package huffcodec

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Node is one node of a Huffman tree.  A Node with no children is a leaf and
// represents Symbol; any other Node must have both children.
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a Huffman tree.  The tree returned by Encode must be handed to the
// matching Decode; nothing else shares its nodes.
type Tree struct {
	Root *Node
}

// NewTree wraps an externally constructed root.  Its shape is checked lazily,
// by BuildCodes and Unpack.
func NewTree(root *Node) *Tree {
	return &Tree{Root: root}
}

// BuildTree constructs a Huffman tree from the given frequencies.  Symbols
// with a frequency of 0 are omitted.
//
// Ties are broken by insertion order: leaves in the order their symbols were
// first added to freq, then merged nodes in the order they were created.  The
// first node popped becomes the left child.
//
// A single distinct symbol yields a tree whose root is that symbol's leaf.
//
func BuildTree(freq FrequencyMap) (*Tree, error) {
	nodes := make([]heapItem, 0, freq.Len())
	for _, sym := range freq.order {
		if f := freq.counts[sym]; f != 0 {
			seq := uint64(len(nodes))
			nodes = append(nodes, heapItem{node: &Node{Symbol: sym, Freq: f}, seq: seq})
		}
	}

	if len(nodes) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "cannot build a Huffman tree")
	}

	h := nodeHeap{nodes}
	h.Init()

	nextSeq := uint64(len(nodes))
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		parent := &Node{
			Symbol: InvalidSymbol,
			Freq:   saturatingAdd(a.node.Freq, b.node.Freq),
			Left:   a.node,
			Right:  b.node,
		}
		heap.Push(&h, heapItem{node: parent, seq: nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(heapItem)
	assert.Assertf(h.Len() == 0, "heap still holds %d nodes after popping the root", h.Len())
	return &Tree{Root: root.node}, nil
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []heapItem
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
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
