package main

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chronos-tachyon/huffcodec"
)

func TestParseArgs(t *testing.T) {
	type testRow struct {
		args   []string
		ok     bool
		expect options
	}

	testData := [...]testRow{
		{args: []string{"-c", "in.txt"}, ok: true, expect: options{compress: true, path: "in.txt"}},
		{args: []string{"-d", "in.txt.huf"}, ok: true, expect: options{decompress: true, path: "in.txt.huf"}},
		{args: []string{"-d", "-stats", "-debug", "in.huf"}, ok: true, expect: options{decompress: true, stats: true, debug: true, path: "in.huf"}},
		{args: []string{}, ok: false},
		{args: []string{"in.txt"}, ok: false},
		{args: []string{"-c"}, ok: false},
		{args: []string{"-c", "-d", "in.txt"}, ok: false},
		{args: []string{"-x", "in.txt"}, ok: false},
		{args: []string{"-c", "a", "b"}, ok: false},
		{args: []string{"-d", "noext"}, ok: false},
	}
	for _, row := range testData {
		t.Run(strings.Join(row.args, " "), func(t *testing.T) {
			actual, err := parseArgs(row.args)
			if row.ok != (err == nil) {
				t.Fatalf("expected ok=%v, got error %v", row.ok, err)
			}
			if row.ok && actual != row.expect {
				t.Errorf("wrong options:\n\texpect: %+v\n\tactual: %+v", row.expect, actual)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := ioutil.WriteFile(path, []byte("abracadabra"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var stdout strings.Builder
	if err := run(options{compress: true, stats: true, path: path}, &stdout); err != nil {
		t.Fatalf("run -c failed: %v", err)
	}
	expectStats := strings.Join([]string{
		"skein256: " + huffcodec.Digest([]byte("abracadabra")) + "\n",
		"leaves: 5\n",
		"depth 0: 0.00%\n",
		"depth 1: 20.00%\n",
		"depth 2: 0.00%\n",
		"depth 3: 80.00%\n",
		"max depth: 3\n",
	}, "")
	if actualStats := stdout.String(); expectStats != actualStats {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectStats, actualStats)
	}

	if err := ioutil.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	stdout.Reset()
	if err := run(options{decompress: true, stats: true, path: path + ".huf"}, &stdout); err != nil {
		t.Fatalf("run -d failed: %v", err)
	}
	if actualStats := stdout.String(); expectStats != actualStats {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectStats, actualStats)
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "abracadabra" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "abracadabra", data)
	}
}
