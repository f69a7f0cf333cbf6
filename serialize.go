package huffcodec

import (
	"bytes"
	"errors"
	"io"
)

// MaxTreeBits is the size of the largest serialized tree: NumSymbols leaves
// of 9 bits each plus NumSymbols-1 internal nodes of 1 bit each.
const MaxTreeBits = NumSymbols*9 + NumSymbols - 1

// MaxTreeBytes is MaxTreeBits rounded up to whole bytes.
const MaxTreeBytes = (MaxTreeBits + 7) / 8

const (
	tagInternal = 0
	tagLeaf     = 1
)

// SerializedBits returns the length in bits of the tree's preorder
// serialization.
func (t *Tree) SerializedBits() uint64 {
	return uint64(t.leaves)*9 + uint64(len(t.nodes)-t.leaves)
}

// WriteTree writes the preorder serialization of t to bw: an internal node
// is the bit 0 followed by its left and right subtrees, and a leaf is the
// bit 1 followed by the 8 bits of its symbol, MSB first.
func WriteTree(bw *BitWriter, t *Tree) {
	var visit func(id NodeID)
	visit = func(id NodeID) {
		n := t.nodes[id]
		if n.isLeaf() {
			bw.WriteBit(tagLeaf)
			bw.WriteBits(uint64(n.symbol), 8)
			return
		}
		bw.WriteBit(tagInternal)
		visit(n.left)
		visit(n.right)
	}
	visit(t.root)
}

// MarshalBinary returns the serialized tree, zero-padded on the right to a
// whole number of bytes.
func (t *Tree) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(int(bytesForBits(t.SerializedBits())))
	bw := NewBitWriter(&buf)
	WriteTree(bw, t)
	if _, err := bw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadTree parses one serialized tree from br.  Parsing stops as soon as
// the tree is complete; any bits after it are left unread.
func ReadTree(br *BitReader) (*Tree, error) {
	t := &Tree{nodes: make([]treeNode, 0, 2*NumSymbols-1)}
	var seen [NumSymbols]bool

	var parse func() (NodeID, error)
	parse = func() (NodeID, error) {
		tag, err := br.ReadBit()
		if err != nil {
			return NoNode, err
		}
		if tag == tagLeaf {
			value, err := br.ReadBits(8)
			if err != nil {
				return NoNode, err
			}
			symbol := Symbol(value)
			if seen[symbol] {
				return NoNode, formatErrorf("tree", "symbol %d appears on more than one leaf", symbol)
			}
			seen[symbol] = true
			return t.addLeaf(symbol, 0), nil
		}
		left, err := parse()
		if err != nil {
			return NoNode, err
		}
		right, err := parse()
		if err != nil {
			return NoNode, err
		}
		return t.addInternal(left, right), nil
	}

	root, err := parse()
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, formatErrorf("tree", "bits exhausted after %d bits, before the tree was complete", br.Bits())
	}
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

// UnmarshalTree parses a serialized tree from data, which must hold exactly
// the bytes written by MarshalBinary: the tree, then fewer than 8 bits of
// padding.
func UnmarshalTree(data []byte) (*Tree, error) {
	if len(data) > MaxTreeBytes {
		return nil, formatErrorf("tree", "section is %d bytes long, max %d", len(data), MaxTreeBytes)
	}
	br := NewBitReader(bytes.NewReader(data), 0)
	t, err := ReadTree(br)
	if err != nil {
		return nil, err
	}
	if used := bytesForBits(br.Bits()); used != uint64(len(data)) {
		return nil, formatErrorf("tree", "tree occupies %d bytes but section is %d bytes long", used, len(data))
	}
	return t, nil
}
