package huffcodec

import (
	"encoding/hex"
	"hash"
	"io"

	"github.com/dchest/skein"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffcodec")

// Debug output is opt-in.  A program that installs its own backend with
// logging.SetBackend chooses the level itself.
func init() {
	logging.SetLevel(logging.WARNING, "huffcodec")
}

// DigestSize is the size in bytes of a content digest.
const DigestSize = 32

// NewDigest returns a Skein-512-256 hash for fingerprinting plain data.
// The compressor and decompressor both log this fingerprint at DEBUG level,
// so a matching pair of log lines confirms a round trip.
func NewDigest() hash.Hash {
	return skein.New(DigestSize, nil)
}

// Digest returns the hex encoded content digest of data.
func Digest(data []byte) string {
	h := NewDigest()
	_, _ = h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// debugDigest returns a fresh digest when debug logging is on, and nil
// otherwise.
func debugDigest() hash.Hash {
	if log.IsEnabledFor(logging.DEBUG) {
		return NewDigest()
	}
	return nil
}

func teeDigest(w io.Writer, h hash.Hash) io.Writer {
	if h == nil {
		return w
	}
	return io.MultiWriter(w, h)
}

func logDigest(what string, h hash.Hash) {
	if h == nil {
		return
	}
	log.Debugf("%s digest skein256:%s", what, hex.EncodeToString(h.Sum(nil)))
}
