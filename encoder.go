package huffcodec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder maps each Symbol to its Code.  It is the compressor's half of the
// code table.
type Encoder struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	count   int
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from the given tree.  Every leaf of the tree
// receives the code spelled by the path from the root to that leaf; a tree
// with a single leaf assigns it the one-bit code "0".
func (e *Encoder) Init(t *Tree) {
	assert.Assertf(t != nil, "Encoder.Init called with a nil Tree")

	*e = Encoder{}
	t.Walk(func(symbol Symbol, hc Code) {
		assert.Assertf(!e.present[symbol], "symbol %d appears twice in tree", symbol)
		e.codes[symbol] = hc
		e.present[symbol] = true
		if e.count == 0 || e.minSize > hc.Size {
			e.minSize = hc.Size
		}
		if e.count == 0 || e.maxSize < hc.Size {
			e.maxSize = hc.Size
		}
		e.count++
	})
}

// NewEncoder returns an initialized Encoder for the given tree.
func NewEncoder(t *Tree) *Encoder {
	e := new(Encoder)
	e.Init(t)
	return e
}

// Has returns true iff symbol has been assigned a code.
func (e *Encoder) Has(symbol Symbol) bool {
	return symbol.IsValid() && e.present[symbol]
}

// Encode returns the Code for a Symbol.
//
// Encoding a Symbol that is absent from the tree means the tree was built
// from different data than is being encoded.  That is a programming error,
// so Encode panics.
//
func (e *Encoder) Encode(symbol Symbol) Code {
	if !e.Has(symbol) {
		assert.Assertf(false, "no code for symbol %d: frequency table does not match input", symbol)
	}
	return e.codes[symbol]
}

// Len returns the number of symbols with codes.
func (e *Encoder) Len() int {
	return e.count
}

// MinSize is the bit length of the shortest code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// EncodedBits returns the number of payload bits needed to encode input
// with the given frequencies, i.e. the sum of count × code size over all
// symbols.
func (e *Encoder) EncodedBits(ft *FrequencyTable) uint64 {
	var total uint64
	for _, symbol := range ft.Symbols() {
		total += ft.Count(symbol) * uint64(e.Encode(symbol).Size)
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if e.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
