package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffcodec"
)

const progName = "huf"
const usageMessageRaw = `
Usage: huf {-c|-d} [-debug] [-stats] PATH

  -c      Compress PATH into PATH.huf.
  -d      Decompress PATH (normally ending in .huf) into PATH with the
          suffix removed.
  -debug  Log pipeline details, including content digests, to stderr.
  -stats  Print the Skein digest of the plain data and the shape of the
          code tree after the operation.
`

var log = logging.MustGetLogger(progName)

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:-7s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

type options struct {
	compress   bool
	decompress bool
	debug      bool
	stats      bool
	path       string
}

// parseArgs parses the command line.  Any error it returns is a usage error.
func parseArgs(args []string) (options, error) {
	var opts options
	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.Usage = func() {}
	flags.SetOutput(&nullWriter{})
	flags.BoolVar(&opts.compress, "c", false, "")
	flags.BoolVar(&opts.decompress, "d", false, "")
	flags.BoolVar(&opts.debug, "debug", false, "")
	flags.BoolVar(&opts.stats, "stats", false, "")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if opts.compress == opts.decompress {
		return opts, errors.New("exactly one of -c or -d is required")
	}
	switch flags.NArg() {
	case 0:
		return opts, errors.New("not enough arguments; expected PATH")
	case 1:
		opts.path = flags.Arg(0)
	default:
		return opts, fmt.Errorf("too many arguments at %d (%q)", 1, flags.Arg(1))
	}
	if opts.decompress {
		if _, err := huffcodec.DecompressedName(opts.path); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// fileDigest returns the content digest of the file at path.
func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := huffcodec.NewDigest()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func run(opts options, stdout io.Writer) error {
	var outPath string
	var hdr *huffcodec.Header
	var err error
	if opts.compress {
		outPath, hdr, err = huffcodec.CompressFile(opts.path)
	} else {
		outPath, hdr, err = huffcodec.DecompressFile(opts.path)
	}
	if err != nil {
		return err
	}
	log.Infof("%s -> %s", opts.path, outPath)

	if opts.stats {
		plainPath := outPath
		if opts.compress {
			plainPath = opts.path
		}
		digest, err := fileDigest(plainPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "skein256: %s\n", digest)
		if hdr == nil {
			fmt.Fprintln(stdout, "empty file: no tree")
			return nil
		}
		fmt.Fprintf(stdout, "leaves: %d\n", hdr.Tree.NumLeaves())
		if _, err := hdr.Tree.Stats().WriteTo(stdout); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	startLogging()

	opts, err := parseArgs(os.Args[1:])
	if err == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if err != nil {
		usageErrorf("%s", err.Error())
	}

	if opts.debug {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if err := run(opts, os.Stdout); err != nil {
		exitError(err)
	}
}
