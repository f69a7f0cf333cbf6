package huffcodec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	treeLengthSize = 4
	paddingSize    = 1
)

// Header is the part of a compressed file that precedes the payload.
type Header struct {
	// Tree is the code tree used to pack the payload.
	Tree *Tree

	// TreeLength is the length in bytes of the serialized tree section.
	TreeLength uint32

	// Padding is the number of zero bits appended to the final payload
	// byte, 0 .. 7.
	Padding byte
}

// Size returns the number of bytes the header occupies on disk.
func (h *Header) Size() int64 {
	return treeLengthSize + int64(h.TreeLength) + paddingSize
}

// WriteHeader writes the header for tree t and the given payload padding:
// the 4-byte big-endian tree length, the serialized tree, and the padding
// byte.  It returns the header with TreeLength filled in.
func WriteHeader(w io.Writer, t *Tree, padding byte) (*Header, error) {
	if padding > 7 {
		return nil, fmt.Errorf("huffcodec: padding %d > 7", padding)
	}

	treeBytes, err := t.MarshalBinary()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, treeLengthSize, treeLengthSize+len(treeBytes)+paddingSize)
	binary.BigEndian.PutUint32(buf, uint32(len(treeBytes)))
	buf = append(buf, treeBytes...)
	buf = append(buf, padding)
	if _, err := w.Write(buf); err != nil {
		return nil, err
	}

	return &Header{Tree: t, TreeLength: uint32(len(treeBytes)), Padding: padding}, nil
}

// ReadHeader reads and validates a header from r, leaving r positioned at
// the first payload byte.
//
// If r is empty, ReadHeader returns io.EOF: an empty compressed file is the
// encoding of an empty input.  Any other short or inconsistent header
// yields a *FormatError.
//
func ReadHeader(r io.Reader) (*Header, error) {
	var lenBuf [treeLengthSize]byte
	_, err := io.ReadFull(r, lenBuf[:])
	switch {
	case err == io.EOF:
		return nil, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return nil, formatErrorf("header", "truncated tree length field")
	case err != nil:
		return nil, err
	}

	treeLength := binary.BigEndian.Uint32(lenBuf[:])
	if treeLength == 0 || treeLength > MaxTreeBytes {
		return nil, formatErrorf("header", "tree length %d out of range 1 .. %d", treeLength, MaxTreeBytes)
	}

	treeBytes := make([]byte, treeLength)
	n, err := io.ReadFull(r, treeBytes)
	switch {
	case err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF):
		return nil, formatErrorf("tree", "declared %d bytes but only %d present", treeLength, n)
	case err != nil:
		return nil, err
	}

	t, err := UnmarshalTree(treeBytes)
	if err != nil {
		return nil, err
	}

	var padBuf [paddingSize]byte
	_, err = io.ReadFull(r, padBuf[:])
	switch {
	case err == io.EOF:
		return nil, formatErrorf("padding", "missing padding byte")
	case err != nil:
		return nil, err
	}
	if padBuf[0] > 7 {
		return nil, formatErrorf("padding", "padding %d > 7", padBuf[0])
	}

	return &Header{Tree: t, TreeLength: treeLength, Padding: padBuf[0]}, nil
}
