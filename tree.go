package huffcodec

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// NodeID is a handle for one node of a Tree.
type NodeID int32

// NoNode is the NodeID of a missing child.  Leaves have NoNode for both
// children.
const NoNode = NodeID(-1)

type treeNode struct {
	freq   uint64
	left   NodeID
	right  NodeID
	symbol Symbol
}

func (n treeNode) isLeaf() bool {
	return n.left == NoNode
}

// Tree is a binary prefix-code tree.  The nodes are stored in an arena and
// refer to each other by NodeID; every internal node owns exactly two
// children and no node is shared.  A Tree is never modified once built.
//
// Trees built by BuildTree carry the frequency of every node.  Trees parsed
// by UnmarshalTree carry frequency 0 everywhere.
type Tree struct {
	nodes  []treeNode
	root   NodeID
	leaves int
}

func (t *Tree) addLeaf(symbol Symbol, freq uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{freq: freq, left: NoNode, right: NoNode, symbol: symbol})
	t.leaves++
	return id
}

func (t *Tree) addInternal(left, right NodeID) NodeID {
	id := NodeID(len(t.nodes))
	// saturating addition; only reachable through NewFrequencyTable
	lf, rf := t.nodes[left].freq, t.nodes[right].freq
	freq := lf + rf
	if freq < lf {
		freq = math.MaxUint64
	}
	t.nodes = append(t.nodes, treeNode{freq: freq, left: left, right: right, symbol: InvalidSymbol})
	return id
}

// BuildTree builds the Huffman tree for a non-empty FrequencyTable.
//
// The two least frequent nodes are repeatedly merged under a new internal
// node, the first popped becoming the left child.  Ties are broken by
// creation order: leaves are created in ascending symbol order and each
// internal node is newer than every node before it.  The result is
// therefore identical for identical input.
//
// If the table holds a single symbol, the tree is a lone leaf.
//
func BuildTree(ft *FrequencyTable) *Tree {
	assert.Assertf(ft != nil && ft.Len() > 0, "BuildTree called with an empty FrequencyTable")

	numLeaves := ft.Len()
	t := &Tree{nodes: make([]treeNode, 0, 2*numLeaves-1)}

	// Step 1: build a minheap of leaves.

	h := freqHeap{tree: t, list: make([]NodeID, 0, numLeaves)}
	for _, symbol := range ft.Symbols() {
		h.list = append(h.list, t.addLeaf(symbol, ft.Count(symbol)))
	}
	h.Init()

	// Step 2: pop two nodes, join them under a new internal node, and
	// push the new node back until only the root remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeID)
		b := heap.Pop(&h).(NodeID)
		heap.Push(&h, t.addInternal(a, b))
	}

	t.root = heap.Pop(&h).(NodeID)
	return t
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// NumLeaves returns the number of leaves, i.e. the number of distinct
// symbols the tree can code.
func (t *Tree) NumLeaves() int {
	return t.leaves
}

// NumNodes returns the total number of nodes.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// IsLeaf returns true iff id is a leaf.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.nodes[id].isLeaf()
}

// Symbol returns the symbol of a leaf, or InvalidSymbol for an internal
// node.
func (t *Tree) Symbol(id NodeID) Symbol {
	return t.nodes[id].symbol
}

// Freq returns the frequency recorded for a node.
func (t *Tree) Freq(id NodeID) uint64 {
	return t.nodes[id].freq
}

// Children returns the left and right children of an internal node, or
// (NoNode, NoNode) for a leaf.
func (t *Tree) Children(id NodeID) (left NodeID, right NodeID) {
	n := t.nodes[id]
	return n.left, n.right
}

// Walk calls fn for every leaf in left-to-right order, with the code
// assigned to that leaf: a left edge appends 0 and a right edge appends 1.
// A tree consisting of a lone leaf assigns that leaf the code "0".
func (t *Tree) Walk(fn func(symbol Symbol, hc Code)) {
	if t.IsLeaf(t.root) {
		fn(t.Symbol(t.root), MakeCode(1, 0))
		return
	}
	t.walk(t.root, Code{}, fn)
}

func (t *Tree) walk(id NodeID, hc Code, fn func(Symbol, Code)) {
	n := t.nodes[id]
	if n.isLeaf() {
		fn(n.symbol, hc)
		return
	}
	t.walk(n.left, hc.Append(0), fn)
	t.walk(n.right, hc.Append(1), fn)
}

// TreeStats describes the shape of a Tree.
type TreeStats struct {
	// LeavesAtDepth[d] is the number of leaves at depth d.  The root is at
	// depth 0.
	LeavesAtDepth []int

	// MaxDepth is the depth of the deepest node.
	MaxDepth int

	// NumLeaves is the total number of leaves.
	NumLeaves int
}

// Percentages returns the share of leaves at each depth, in percent.
func (stats TreeStats) Percentages() []float64 {
	out := make([]float64, len(stats.LeavesAtDepth))
	if stats.NumLeaves == 0 {
		return out
	}
	for depth, count := range stats.LeavesAtDepth {
		out[depth] = float64(count) / float64(stats.NumLeaves) * 100
	}
	return out
}

// WriteTo writes the per-depth report to w.
func (stats TreeStats) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for depth, pct := range stats.Percentages() {
		fmt.Fprintf(&buf, "depth %d: %.2f%%\n", depth, pct)
	}
	fmt.Fprintf(&buf, "max depth: %d\n", stats.MaxDepth)
	return buf.WriteTo(w)
}

// Stats computes the TreeStats for this tree.
func (t *Tree) Stats() TreeStats {
	var stats TreeStats
	var visit func(id NodeID, depth int)
	visit = func(id NodeID, depth int) {
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		n := t.nodes[id]
		if !n.isLeaf() {
			visit(n.left, depth+1)
			visit(n.right, depth+1)
			return
		}
		for len(stats.LeavesAtDepth) <= depth {
			stats.LeavesAtDepth = append(stats.LeavesAtDepth, 0)
		}
		stats.LeavesAtDepth[depth]++
		stats.NumLeaves++
	}
	visit(t.root, 0)
	return stats
}

// Dump writes a programmer-readable picture of the tree to the given
// writer.  The tree is drawn sideways: the root is in the first column,
// right subtrees above and left subtrees below.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	var visit func(id NodeID, depth int)
	visit = func(id NodeID, depth int) {
		n := t.nodes[id]
		if !n.isLeaf() {
			visit(n.right, depth+1)
		}
		buf.WriteString("\t")
		buf.WriteString(strings.Repeat("    ", depth))
		if n.isLeaf() {
			fmt.Fprintf(&buf, "-> %d (%d)\n", n.symbol, n.freq)
		} else {
			fmt.Fprintf(&buf, "-> * (%d)\n", n.freq)
		}
		if !n.isLeaf() {
			visit(n.left, depth+1)
		}
	}
	visit(t.root, 0)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type freqHeap {{{

type freqHeap struct {
	tree *Tree
	list []NodeID
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

// Less orders by frequency, then by creation order.  NodeIDs are handed out
// sequentially, so the smaller NodeID is the older node.
func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := h.tree.nodes[a].freq, h.tree.nodes[b].freq
	if af != bf {
		return af < bf
	}
	return a < b
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeID))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
