package huffcodec

import (
	"strings"
	"testing"
)

func TestEncoder(t *testing.T) {
	e := NewEncoder(BuildTree(NewFrequencyTable([]uint64{5, 9, 12, 13, 16, 45})))

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
	if e.Len() != 6 {
		t.Errorf("expected 6 codes, got %d", e.Len())
	}
}

func TestEncoder_Abracadabra(t *testing.T) {
	ft, _ := CountFrequencies([]byte("abracadabra"))
	e := NewEncoder(BuildTree(ft))

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 3\n",
		"\tEncode(97) = \"0\"\n",
		"\tEncode(98) = \"110\"\n",
		"\tEncode(99) = \"100\"\n",
		"\tEncode(100) = \"101\"\n",
		"\tEncode(114) = \"111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	// 5×1 + 2×3 + 2×3 + 1×3 + 1×3
	if bits := e.EncodedBits(ft); bits != 23 {
		t.Errorf("expected 23 payload bits, got %d", bits)
	}
}

func TestEncoder_MissingSymbol(t *testing.T) {
	ft, _ := CountFrequencies([]byte("abc"))
	e := NewEncoder(BuildTree(ft))
	if e.Has('z') {
		t.Fatalf("expected no code for 'z'")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected Encode of an absent symbol to panic")
		}
	}()
	e.Encode('z')
}
