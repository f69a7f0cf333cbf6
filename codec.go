package huffcodec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// decodeBatchSize is the size of the output buffer used by Decompress.
// Decoded bytes are flushed to the destination whenever it fills up.
const decodeBatchSize = 8192

// Compress reads src to the end, then rewinds it and writes the compressed
// representation to dst.  The first pass counts symbol frequencies and the
// second pass emits the code bits, so src is read twice but never held in
// memory.
//
// An empty src produces no output at all; in that case the returned Header
// is nil.
//
func Compress(dst io.Writer, src io.ReadSeeker) (*Header, error) {
	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("huffcodec: seek: %w", err)
	}

	digest := debugDigest()
	var counted io.Reader = src
	if digest != nil {
		counted = io.TeeReader(src, digest)
	}

	ft, err := CountReader(counted)
	if errors.Is(err, ErrEmptyInput) {
		log.Debugf("compress: empty input, writing empty output")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	logDigest("compress: input", digest)

	t := BuildTree(ft)
	enc := NewEncoder(t)
	payloadBits := enc.EncodedBits(ft)
	padding := paddingForBits(payloadBits)

	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("huffcodec: seek: %w", err)
	}

	out := bufio.NewWriter(dst)
	hdr, err := WriteHeader(out, t, padding)
	if err != nil {
		return nil, err
	}

	bw := NewBitWriter(out)
	in := bufio.NewReader(src)
	var consumed uint64
	for {
		b, err := in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !enc.Has(Symbol(b)) {
			return nil, fmt.Errorf("huffcodec: input changed between passes: byte %d was not counted", b)
		}
		bw.WriteCode(enc.Encode(Symbol(b)))
		if err := bw.Err(); err != nil {
			return nil, err
		}
		consumed++
	}
	if consumed != ft.Total() {
		return nil, fmt.Errorf("huffcodec: input changed between passes: counted %d bytes, encoded %d", ft.Total(), consumed)
	}

	actualPadding, err := bw.Flush()
	if err != nil {
		return nil, err
	}
	assert.Assertf(actualPadding == padding, "padding mismatch: header says %d, payload used %d", padding, actualPadding)

	if err := out.Flush(); err != nil {
		return nil, err
	}

	log.Debugf("compress: %d bytes, %d symbols, tree %d bytes, payload %d bits + %d padding",
		ft.Total(), ft.Len(), hdr.TreeLength, bw.Bits(), padding)
	return hdr, nil
}

// Decompress reads a compressed representation from src and writes the
// original data to dst.  Output is buffered and flushed in batches, so
// memory use does not grow with the size of the data.
//
// An empty src decompresses to no output; in that case the returned Header
// is nil.  A malformed src yields a *FormatError; by then some output may
// already have been written to dst, and it must be discarded.
//
func Decompress(dst io.Writer, src io.Reader) (*Header, error) {
	in := bufio.NewReader(src)
	hdr, err := ReadHeader(in)
	if err == io.EOF {
		log.Debugf("decompress: empty input, writing empty output")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := in.Peek(1); err == io.EOF {
		return nil, formatErrorf("payload", "missing payload")
	} else if err != nil {
		return nil, err
	}

	dec := NewDecoder(hdr.Tree)
	digest := debugDigest()
	out := bufio.NewWriterSize(teeDigest(dst, digest), decodeBatchSize)
	br := NewBitReader(in, hdr.Padding)

	var hc Code
	var produced uint64
	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		hc = hc.Append(bit)
		symbol, minSize, _ := dec.Decode(hc)
		switch {
		case symbol != InvalidSymbol:
			if err := out.WriteByte(byte(symbol)); err != nil {
				return nil, err
			}
			produced++
			hc = Code{}
		case minSize == 0:
			return nil, formatErrorf("payload", "bits %s ending at bit %d match no code", hc, br.Bits())
		}
	}
	if hc.Size != 0 {
		return nil, formatErrorf("payload", "stream ends inside a code: %s", hc)
	}

	if err := out.Flush(); err != nil {
		return nil, err
	}
	logDigest("decompress: output", digest)

	log.Debugf("decompress: tree %d bytes, payload %d bits, %d bytes out",
		hdr.TreeLength, br.Bits(), produced)
	return hdr, nil
}

// CompressBytes compresses data in memory.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes decompresses data in memory.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decompress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
