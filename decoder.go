package huffcodec

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Decoder maps each Code to its Symbol.  It is the decompressor's half of
// the code table.
//
// Besides the codewords themselves, the table holds every proper prefix of a
// codeword, so that a caller accumulating bits one at a time can tell "not
// yet a codeword" apart from "can never become a codeword".
//
type Decoder struct {
	table   map[Code]decoderData
	count   int
	minSize byte
	maxSize byte
}

// Init initializes this Decoder from the given tree, using the same code
// assignment as Encoder.Init.
func (d *Decoder) Init(t *Tree) {
	assert.Assertf(t != nil, "Decoder.Init called with a nil Tree")

	*d = Decoder{
		table: make(map[Code]decoderData, 2*t.NumLeaves()),
	}
	t.Walk(func(symbol Symbol, hc Code) {
		if d.count == 0 || d.minSize > hc.Size {
			d.minSize = hc.Size
		}
		if d.count == 0 || d.maxSize < hc.Size {
			d.maxSize = hc.Size
		}
		d.count++
		fillTable(d.table, symbol, hc)
	})
}

// NewDecoder returns an initialized Decoder for the given tree.
func NewDecoder(t *Tree) *Decoder {
	d := new(Decoder)
	d.Init(t)
	return d
}

// Decode attempts to decode a Huffman code into a Symbol.  Only an exact
// match with a codeword succeeds.
//
// If the Decode is completely successful, symbol >= 0 and minSize == maxSize.
//
// If the Decode fails due to insufficient bits, symbol == InvalidSymbol and at
// least (minSize - hc.Size) additional bits are required to decode this
// symbol.  No more than (maxSize - hc.Size) additional bits will be required.
//
// If hc is not a prefix of any codeword, symbol == InvalidSymbol and
// minSize == maxSize == 0.
//
func (d *Decoder) Decode(hc Code) (symbol Symbol, minSize byte, maxSize byte) {
	dd, found := d.table[hc]
	if !found {
		return InvalidSymbol, 0, 0
	}
	return dd.symbol, dd.minSize, dd.maxSize
}

// Len returns the number of codewords.
func (d *Decoder) Len() int {
	return d.count
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		fmt.Fprintf(&buf, "\tDecode(%s) = {%d, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData struct {
	symbol  Symbol
	minSize byte
	maxSize byte
}

func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) {
	dd := decoderData{symbol, hc.Size, hc.Size}
	table[hc] = dd

	for hc.Size != 0 {
		// For each hc "xxx...a", compute "xxx...A" where A = NOT a.
		// Merge the dd's from "xxx...a" (dd) and "xxx...A" (ddSibling)
		// into ddNew (the new parent for dd and ddSibling).

		ddNew := decoderData{InvalidSymbol, dd.minSize, dd.maxSize}
		if ddSibling, found := table[hc.Sibling()]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		// Mutate hc from "xxx...a" to "xxx...".

		hc = hc.Parent()

		// If table[hc] already equals ddNew, we can stop recursing.

		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		// Update table[hc] with ddNew and continue recursing.

		table[hc] = ddNew
		dd = ddNew
	}
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	return list[i].Less(list[j])
}

var _ sort.Interface = byCode(nil)

// }}}
