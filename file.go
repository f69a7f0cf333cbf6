package huffcodec

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// DefaultSuffix is appended to the name of a compressed file.
const DefaultSuffix = ".huf"

// CompressedName returns the name CompressFile writes for path.
func CompressedName(path string) string {
	return path + DefaultSuffix
}

// DecompressedName returns the name DecompressFile writes for path: path
// with DefaultSuffix removed, or failing that with its last extension
// removed.  A path with no extension is rejected with ErrNoExtension, since
// the output would overwrite the input.
func DecompressedName(path string) (string, error) {
	base := filepath.Base(path)
	if base == DefaultSuffix {
		return "", ErrNoExtension
	}
	if strings.HasSuffix(base, DefaultSuffix) {
		return strings.TrimSuffix(path, DefaultSuffix), nil
	}
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return "", ErrNoExtension
	}
	return strings.TrimSuffix(path, ext), nil
}

// CompressFile compresses the file at path into CompressedName(path).  It
// returns the output name and the header written, which is nil for an empty
// input file.
func CompressFile(path string) (string, *Header, error) {
	outPath := CompressedName(path)
	var hdr *Header
	err := transform("compress", path, outPath, func(w io.Writer, r *os.File) error {
		var err error
		hdr, err = Compress(w, r)
		return err
	})
	if err != nil {
		return "", nil, err
	}
	return outPath, hdr, nil
}

// DecompressFile decompresses the file at path into DecompressedName(path).
// It returns the output name and the header read, which is nil for an empty
// input file.  On any error, including a *FormatError, no output file is
// left behind.
func DecompressFile(path string) (string, *Header, error) {
	outPath, err := DecompressedName(path)
	if err != nil {
		return "", nil, err
	}
	var hdr *Header
	err = transform("decompress", path, outPath, func(w io.Writer, r *os.File) error {
		var err error
		hdr, err = Decompress(w, r)
		return err
	})
	if err != nil {
		return "", nil, err
	}
	return outPath, hdr, nil
}

// transform opens inPath, runs fn into a pending file next to outPath, and
// atomically replaces outPath once fn succeeds.  The input is closed and the
// pending file removed on every failure.
func transform(op, inPath, outPath string, fn func(io.Writer, *os.File) error) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return &IOError{Op: "open", Path: inPath, Err: err}
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return &IOError{Op: "stat", Path: inPath, Err: err}
	}

	pf, err := renameio.NewPendingFile(
		outPath,
		renameio.WithTempDir(filepath.Dir(outPath)),
		renameio.WithPermissions(fi.Mode().Perm()),
	)
	if err != nil {
		return &IOError{Op: "create", Path: outPath, Err: err}
	}
	defer func() {
		if err != nil {
			_ = pf.Cleanup()
		}
	}()

	if err = fn(pf, in); err != nil {
		var fe *FormatError
		if !errors.As(err, &fe) {
			err = &IOError{Op: op, Path: inPath, Err: err}
		}
		return err
	}

	if err = pf.CloseAtomicallyReplace(); err != nil {
		return &IOError{Op: "rename", Path: outPath, Err: err}
	}
	log.Debugf("wrote %s", outPath)
	return nil
}
