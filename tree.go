package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// TreeOptions configures NewTree.
type TreeOptions struct {
	// SkipUnused leaves symbols with a count of zero out of the tree.
	SkipUnused bool
}

// Tree is a Huffman tree over the byte alphabet.  It is immutable once built.
type Tree struct {
	nodes []node
	root  nodeIndex
}

type node struct {
	// count is the symbol frequency for a leaf, or the sum of both
	// children for an internal node.
	count uint64

	// parent is noNode for the root and for leaves left out of the tree.
	parent nodeIndex

	// heavier is the child with the larger count, or noNode for a leaf.
	heavier nodeIndex

	// bit is the bit this node contributes to the codes below it.
	bit bool
}

// NewTree builds a Huffman tree from freqs.
//
// Nodes are merged lightest first.  Within each merge, the second node popped
// from the queue is never lighter than the first and becomes the heavier
// child.  Once the tree is complete, every heavier child is given bit 1 and
// every other node keeps bit 0.
//
// By default all NumSymbols symbols are leaves, including those with a count
// of zero, and the tree has exactly maxNodes nodes.  With SkipUnused only the
// symbols present in freqs are merged; if fewer than two are present, the
// lowest absent symbols are added so the tree has at least two leaves.
func NewTree(freqs *Frequencies, opts TreeOptions) *Tree {
	t := &Tree{
		nodes: make([]node, NumSymbols, maxNodes),
		root:  noNode,
	}
	for symbol, count := range freqs {
		t.nodes[symbol] = node{count: count, parent: noNode, heavier: noNode}
	}

	q := nodeQueue{
		list: leavesFor(freqs, opts.SkipUnused),
		less: func(a, b nodeIndex) bool {
			return t.nodes[a].count < t.nodes[b].count
		},
	}
	q.Init()

	for {
		left := q.PopIndex()
		if q.Len() == 0 {
			t.root = left
			break
		}
		right := q.PopIndex()

		heavier := right
		if t.nodes[left].count > t.nodes[right].count {
			heavier = left
		}

		parent := nodeIndex(len(t.nodes))
		t.nodes = append(t.nodes, node{
			count:   t.nodes[left].count + t.nodes[right].count,
			parent:  noNode,
			heavier: heavier,
		})
		t.nodes[left].parent = parent
		t.nodes[right].parent = parent

		q.PushIndex(parent)
	}

	assert.Assertf(int(t.root) == len(t.nodes)-1, "tree root is node %d, expected last node %d", t.root, len(t.nodes)-1)
	if !opts.SkipUnused {
		assert.Assertf(len(t.nodes) == maxNodes, "tree has %d nodes, expected %d", len(t.nodes), maxNodes)
	}

	t.assignBits()
	return t
}

// leavesFor lists the leaves that take part in the tree.
func leavesFor(freqs *Frequencies, skipUnused bool) []nodeIndex {
	leaves := make([]nodeIndex, 0, NumSymbols)
	if !skipUnused {
		for symbol := range freqs {
			leaves = append(leaves, nodeIndex(symbol))
		}
		return leaves
	}

	padding := 2 - freqs.Present()
	for symbol, count := range freqs {
		if count != 0 {
			leaves = append(leaves, nodeIndex(symbol))
		} else if padding > 0 {
			leaves = append(leaves, nodeIndex(symbol))
			padding--
		}
	}
	return leaves
}

// assignBits marks the heavier child of every internal node with bit 1.
func (t *Tree) assignBits() {
	for index := NumSymbols; index < len(t.nodes); index++ {
		child := t.nodes[index].heavier
		assert.Assertf(!t.nodes[child].bit, "node %d received its bit twice", child)
		t.nodes[child].bit = true
	}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Weight returns the count of the root node, which equals the number of
// symbols the tree was built from.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].count
}

// Cost returns the total number of bits needed to encode every counted
// symbol, i.e. the sum of counts over all internal nodes.
func (t *Tree) Cost() uint64 {
	var sum uint64
	for index := NumSymbols; index < len(t.nodes); index++ {
		sum += t.nodes[index].count
	}
	return sum
}

// Encodings extracts the code of every symbol.  Each leaf is walked up to the
// root, collecting bits leaf first, and the result is reversed.  Symbols left
// out of the tree get the empty Encoding.
func (t *Tree) Encodings() *Table {
	var table Table
	for symbol := 0; symbol < NumSymbols; symbol++ {
		index := nodeIndex(symbol)
		if t.nodes[index].parent == noNode {
			continue
		}

		var e Encoding
		for index != t.root {
			e.Push(t.nodes[index].bit)
			index = t.nodes[index].parent
		}
		table[symbol] = e.Reversed()
	}
	return &table
}

// Dump writes a programmer-readable debugging dump of the tree's internal
// nodes to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(t.nodes))
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.nodes[t.root].count)
	for index := NumSymbols; index < len(t.nodes); index++ {
		n := t.nodes[index]
		fmt.Fprintf(&buf, "\tNode(%d) = {count: %d, heavier: %d}\n", index, n.count, n.heavier)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeQueue {{{

// nodeQueue is a min-heap of node indices.  It does not own the nodes; less
// reads them from the tree under construction.
type nodeQueue struct {
	list []nodeIndex
	less func(a, b nodeIndex) bool
}

func (q *nodeQueue) Init() {
	heap.Init(q)
}

func (q *nodeQueue) PushIndex(index nodeIndex) {
	heap.Push(q, index)
}

func (q *nodeQueue) PopIndex() nodeIndex {
	return heap.Pop(q).(nodeIndex)
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	return q.less(q.list[i], q.list[j])
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(nodeIndex))
}

func (q *nodeQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
