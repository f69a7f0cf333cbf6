package huffcodec

import (
	"bufio"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitWriter packs a stream of bits into bytes, most significant bit first.
// Write errors are sticky and are reported by Err and Flush.
type BitWriter struct {
	bits  *bitio.Writer
	err   error
	total uint64
}

// NewBitWriter returns a BitWriter that writes to w.  If w is not also an
// io.ByteWriter, output is buffered until Flush.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{bits: bitio.NewWriter(w)}
}

// WriteBit appends a single bit.
func (bw *BitWriter) WriteBit(bit uint) {
	bw.WriteBits(uint64(bit), 1)
}

// WriteBits appends the low n bits of value, most significant first.  n must
// not exceed 64.
func (bw *BitWriter) WriteBits(value uint64, n uint) {
	assert.Assertf(n <= 64, "WriteBits: n %d > 64", n)
	if n == 0 || bw.err != nil {
		return
	}
	bw.err = bw.bits.WriteBits(value, uint8(n))
	bw.total += uint64(n)
}

// WriteCode appends every bit of hc.
func (bw *BitWriter) WriteCode(hc Code) {
	remaining := uint(hc.Size)
	for i := 0; remaining > 0; i++ {
		n := remaining
		if n > 64 {
			n = 64
		}
		bw.WriteBits(hc.bits[i]>>(64-n), n)
		remaining -= n
	}
}

// Flush writes out a trailing partial byte, padded on the right with zero
// bits.  It returns the number of padding bits used (0 .. 7).
func (bw *BitWriter) Flush() (padding byte, err error) {
	if bw.err != nil {
		return 0, bw.err
	}
	skipped, err := bw.bits.Align()
	if err == nil {
		err = bw.bits.Close()
	}
	bw.err = err
	return skipped, err
}

// Bits returns the number of bits written so far, excluding padding.
func (bw *BitWriter) Bits() uint64 {
	return bw.total
}

// Err returns the first write error encountered, if any.
func (bw *BitWriter) Err() error {
	return bw.err
}

// BitReader unpacks bytes into a stream of bits, most significant bit first.
// The final byte of the stream contributes only 8 - padding bits; the
// padding is dropped from the end of the whole stream, not from every byte.
type BitReader struct {
	r       *bufio.Reader
	bits    *bitio.Reader
	padding uint
	pos     uint
	limit   uint
	total   uint64
}

// NewBitReader returns a BitReader that reads from r and ignores the last
// padding bits of the stream.  padding must be 0 .. 7.
func NewBitReader(r io.Reader, padding byte) *BitReader {
	assert.Assertf(padding < 8, "NewBitReader: padding %d > 7", padding)
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &BitReader{r: br, bits: bitio.NewReader(br), padding: uint(padding)}
}

// next is called on a byte boundary, before the bit reader pulls the next
// byte out of r.  Looking two bytes ahead tells whether that byte is the
// last one, whose padding bits must not be returned.
func (br *BitReader) next() error {
	ahead, err := br.r.Peek(2)
	switch {
	case len(ahead) == 0:
		if err == nil {
			err = io.ErrNoProgress
		}
		return err
	case len(ahead) == 1 && err == io.EOF:
		br.limit = 8 - br.padding
	case len(ahead) == 1:
		return err
	default:
		br.limit = 8
	}
	br.pos = 0
	return nil
}

// ReadBit returns the next bit.  At the end of the stream it returns io.EOF.
func (br *BitReader) ReadBit() (uint, error) {
	if br.pos == br.limit {
		if err := br.next(); err != nil {
			return 0, err
		}
	}
	set, err := br.bits.ReadBool()
	if err != nil {
		return 0, err
	}
	br.pos++
	br.total++
	if set {
		return 1, nil
	}
	return 0, nil
}

// ReadBits returns the next n bits as the low bits of an integer, most
// significant first.  n must not exceed 64.  If the stream ends part way,
// ReadBits returns io.ErrUnexpectedEOF.
func (br *BitReader) ReadBits(n uint) (uint64, error) {
	assert.Assertf(n <= 64, "ReadBits: n %d > 64", n)
	var value uint64
	for i := uint(0); i < n; i++ {
		bit, err := br.ReadBit()
		if err == io.EOF && i > 0 {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return 0, err
		}
		value = value<<1 | uint64(bit)
	}
	return value, nil
}

// Bits returns the number of bits read so far.
func (br *BitReader) Bits() uint64 {
	return br.total
}
