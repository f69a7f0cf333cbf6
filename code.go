package huffcodec

import (
	"fmt"
	"strings"
)

// MaxCodeSize is the longest possible code: a tree with NumSymbols leaves
// is at most NumSymbols-1 levels deep.
const MaxCodeSize = NumSymbols - 1

const codeWords = (MaxCodeSize + 63) / 64

// Code represents a sequence of up to MaxCodeSize bits.  Codes are
// comparable and may be used as map keys.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// bits holds the values of the bits, first bit in the most
	// significant position of bits[0].  Bits past Size are always zero.
	bits [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64
// bits.  The first bit of the code is the most significant of the low size
// bits of value, so MakeCode(3, 0x6) is "110".
func MakeCode(size byte, value uint64) Code {
	if size > 64 {
		panic(fmt.Errorf("MakeCode: size %d > 64", size))
	}
	var hc Code
	hc.Size = size
	if size != 0 {
		hc.bits[0] = value << (64 - uint(size))
	}
	return hc
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is longer than %d bits", str, MaxCodeSize)
	}
	var hc Code
	for _, ch := range str {
		switch ch {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("code %q contains invalid character %q", str, ch)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of the code, counting from 0.
func (hc Code) Bit(i int) uint {
	return uint(hc.bits[i/64]>>(63-uint(i%64))) & 1
}

// Append returns the Code with one more bit on the end.
func (hc Code) Append(bit uint) Code {
	if hc.Size == MaxCodeSize {
		panic(fmt.Errorf("Append: code already holds %d bits", MaxCodeSize))
	}
	i := uint(hc.Size)
	hc.bits[i/64] |= uint64(bit&1) << (63 - i%64)
	hc.Size++
	return hc
}

// Parent returns the Code with its last bit removed.  The empty Code is its
// own parent.
func (hc Code) Parent() Code {
	if hc.Size == 0 {
		return hc
	}
	hc.Size--
	i := uint(hc.Size)
	hc.bits[i/64] &^= uint64(1) << (63 - i%64)
	return hc
}

// Sibling returns the Code with its last bit inverted.
func (hc Code) Sibling() Code {
	if hc.Size == 0 {
		return hc
	}
	i := uint(hc.Size) - 1
	hc.bits[i/64] ^= uint64(1) << (63 - i%64)
	return hc
}

// HasPrefix returns true iff prefix is a prefix of hc (or equal to it).
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for hc.Size > prefix.Size {
		hc = hc.Parent()
	}
	return hc == prefix
}

// Less orders codes by size, then bit-wise.
func (hc Code) Less(other Code) bool {
	if hc.Size != other.Size {
		return hc.Size < other.Size
	}
	for i := 0; i < codeWords; i++ {
		if hc.bits[i] != other.bits[i] {
			return hc.bits[i] < other.bits[i]
		}
	}
	return false
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	buf.Grow(int(hc.Size) + 2)
	buf.WriteByte('"')
	for i := 0; i < int(hc.Size); i++ {
		buf.WriteByte(byte('0' + hc.Bit(i)))
	}
	buf.WriteByte('"')
	return buf.String()
}

var _ fmt.Stringer = Code{}
