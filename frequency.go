package huffcodec

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable maps each Symbol to the number of times it occurs in some
// input.  Symbols that never occur have a count of 0 and are not part of
// the table.
type FrequencyTable struct {
	counts   [NumSymbols]uint64
	distinct int
	total    uint64
}

// CountFrequencies builds the FrequencyTable for data.  It returns
// ErrEmptyInput if data is empty.
func CountFrequencies(data []byte) (*FrequencyTable, error) {
	ft := new(FrequencyTable)
	ft.add(data)
	if ft.total == 0 {
		return nil, ErrEmptyInput
	}
	return ft, nil
}

// CountReader builds the FrequencyTable for everything read from r until
// io.EOF.  It returns ErrEmptyInput if r produced no bytes.
func CountReader(r io.Reader) (*FrequencyTable, error) {
	ft := new(FrequencyTable)
	var buf [4096]byte
	for {
		n, err := r.Read(buf[:])
		ft.add(buf[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("counting frequencies: %w", err)
		}
	}
	if ft.total == 0 {
		return nil, ErrEmptyInput
	}
	return ft, nil
}

// NewFrequencyTable constructs a FrequencyTable from explicit counts, one
// per Symbol.  Symbols beyond len(counts) have a count of 0.
func NewFrequencyTable(counts []uint64) *FrequencyTable {
	ft := new(FrequencyTable)
	for symbol, count := range counts {
		if symbol >= NumSymbols || count == 0 {
			continue
		}
		ft.counts[symbol] = count
		ft.distinct++
		ft.total += count
	}
	return ft
}

func (ft *FrequencyTable) add(data []byte) {
	for _, b := range data {
		if ft.counts[b] == 0 {
			ft.distinct++
		}
		ft.counts[b]++
	}
	ft.total += uint64(len(data))
}

// Len returns the number of distinct symbols in the table.
func (ft *FrequencyTable) Len() int {
	return ft.distinct
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns the number of occurrences of symbol.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	if !symbol.IsValid() {
		return 0
	}
	return ft.counts[symbol]
}

// Symbols returns the symbols present in the table in ascending order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.distinct)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if ft.counts[symbol] != 0 {
			out = append(out, symbol)
		}
	}
	return out
}

// String returns a programmer-readable summary of the table.
func (ft *FrequencyTable) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, symbol := range ft.Symbols() {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%d:%d", symbol, ft.counts[symbol])
	}
	buf.WriteString("}")
	return buf.String()
}

var _ fmt.Stringer = (*FrequencyTable)(nil)
