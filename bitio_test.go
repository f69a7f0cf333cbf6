package huffcodec

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestBitWriter(t *testing.T) {
	type testRow struct {
		name    string
		codes   []string
		expect  []byte
		padding byte
	}

	testData := [...]testRow{
		{name: "empty", codes: nil, expect: nil, padding: 0},
		{name: "one-bit", codes: []string{"1"}, expect: []byte{0x80}, padding: 7},
		{name: "whole-byte", codes: []string{"101", "11111"}, expect: []byte{0xbf}, padding: 0},
		{name: "spill", codes: []string{"1111111", "01"}, expect: []byte{0xfe, 0x80}, padding: 7},
		{name: "abracadabra", codes: []string{"0", "110", "111", "0", "100", "0", "101", "0", "110", "111", "0"}, expect: []byte{0x6e, 0x8a, 0xdc}, padding: 1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf bytes.Buffer
			bw := NewBitWriter(&buf)
			var totalBits uint64
			for _, str := range row.codes {
				hc, err := ParseCode(str)
				if err != nil {
					t.Fatalf("ParseCode failed: %v", err)
				}
				bw.WriteCode(hc)
				totalBits += uint64(hc.Size)
			}
			padding, err := bw.Flush()
			if err != nil {
				t.Fatalf("Flush failed: %v", err)
			}
			if padding != row.padding {
				t.Errorf("expected padding %d, got %d", row.padding, padding)
			}
			if padding != paddingForBits(totalBits) {
				t.Errorf("padding %d disagrees with paddingForBits %d", padding, paddingForBits(totalBits))
			}
			if uint64(buf.Len()) != bytesForBits(totalBits) {
				t.Errorf("expected %d bytes, got %d", bytesForBits(totalBits), buf.Len())
			}
			if !bytes.Equal(row.expect, buf.Bytes()) {
				t.Errorf("wrong output:\n\texpect: %x\n\tactual: %x", row.expect, buf.Bytes())
			}
		})
	}
}

func TestBitReader_Padding(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0xff, 0xa0}), 5)
	var actual strings.Builder
	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadBit failed: %v", err)
		}
		actual.WriteByte(byte('0' + bit))
	}
	expect := "11111111" + "101"
	if expect != actual.String() {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual.String())
	}
	if br.Bits() != 11 {
		t.Errorf("expected 11 bits read, got %d", br.Bits())
	}
}

func TestBitReader_ReadBits(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0xb0, 0x80}), 0)
	tag, _ := br.ReadBit()
	value, err := br.ReadBits(8)
	if err != nil {
		t.Fatalf("ReadBits failed: %v", err)
	}
	if tag != 1 || value != 'a' {
		t.Errorf("expected tag 1 and value %d, got %d and %d", 'a', tag, value)
	}

	if _, err := br.ReadBits(8); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestBitWriter_LongCodes(t *testing.T) {
	var codes []Code
	for _, str := range []string{
		strings.Repeat("1", 33),
		strings.Repeat("01", 40),
		"0",
		strings.Repeat("110", 85),
	} {
		hc, err := ParseCode(str)
		if err != nil {
			t.Fatalf("ParseCode failed: %v", err)
		}
		codes = append(codes, hc)
	}

	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	for _, hc := range codes {
		bw.WriteCode(hc)
	}
	padding, err := bw.Flush()
	if err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	br := NewBitReader(&buf, padding)
	for _, expect := range codes {
		var actual Code
		for actual.Size < expect.Size {
			bit, err := br.ReadBit()
			if err != nil {
				t.Fatalf("ReadBit failed: %v", err)
			}
			actual = actual.Append(bit)
		}
		if expect != actual {
			t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, actual)
		}
	}
	if _, err := br.ReadBit(); err != io.EOF {
		t.Errorf("expected io.EOF after the last code, got %v", err)
	}
}

type plainWriter struct {
	buf bytes.Buffer
}

func (w *plainWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func TestBitWriter_PlainWriter(t *testing.T) {
	var w plainWriter
	bw := NewBitWriter(&w)
	bw.WriteBits(0x6e8a, 16)
	bw.WriteBits(0x6e, 7)
	padding, err := bw.Flush()
	if err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if padding != 1 || bw.Bits() != 23 {
		t.Errorf("expected padding 1 and 23 bits, got %d and %d", padding, bw.Bits())
	}
	if expect := []byte{0x6e, 0x8a, 0xdc}; !bytes.Equal(expect, w.buf.Bytes()) {
		t.Errorf("wrong output:\n\texpect: %x\n\tactual: %x", expect, w.buf.Bytes())
	}
}
