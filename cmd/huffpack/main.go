// Command huffpack compresses text files with a Huffman code.
//
// Usage:
//
//	huffpack [flags] compress FILE      writes FILE's base name + ".bin"
//	huffpack [flags] decompress FILE    writes FILE's base name + "decompressed.txt"
//	huffpack [flags] roundtrip FILE     both of the above, in one run
//
// compress writes a sealed container, which decompress can read back in a
// later run.  roundtrip writes a plain container and decodes it with the
// same in-memory code table.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	huffman "github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "huffpack: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	verbose           bool
	keepTrailingSpace bool
}

func run(args []string, stderr io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.verbose, "v", false, "log progress")
	fs.BoolVar(&opts.keepTrailingSpace, "keep-trailing-space", false, "do not trim trailing whitespace before compressing")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: huffpack [flags] compress|decompress|roundtrip FILE")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return flag.ErrHelp
	}

	log := logger.New(stderr, opts.verbose)
	codec := huffman.New(huffman.WithLogger(log))
	cmd, path := fs.Arg(0), fs.Arg(1)

	var outputs []string
	var err error
	switch cmd {
	case "compress":
		outputs, err = compressFile(codec, path, opts)
	case "decompress":
		outputs, err = decompressFile(path)
	case "roundtrip":
		outputs, err = roundtripFile(codec, path, opts)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		return err
	}
	for _, out := range outputs {
		log.Infof("wrote %s", out)
	}
	return nil
}

func compressFile(codec *huffman.Codec, path string, opts options) ([]string, error) {
	text, err := readText(path, opts)
	if err != nil {
		return nil, err
	}
	data, err := codec.CompressSealed(text)
	if err != nil {
		return nil, fmt.Errorf("compress %s: %w", path, err)
	}
	out := compressedPath(path)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return nil, err
	}
	return []string{out}, nil
}

func decompressFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := huffman.OpenSealed(data)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	out := decompressedPath(path)
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return nil, err
	}
	return []string{out}, nil
}

func roundtripFile(codec *huffman.Codec, path string, opts options) ([]string, error) {
	text, err := readText(path, opts)
	if err != nil {
		return nil, err
	}
	data, err := codec.Compress(text)
	if err != nil {
		return nil, fmt.Errorf("compress %s: %w", path, err)
	}
	binPath := compressedPath(path)
	if err := os.WriteFile(binPath, data, 0o644); err != nil {
		return nil, err
	}

	decoded, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", binPath, err)
	}
	txtPath := decompressedPath(path)
	if err := os.WriteFile(txtPath, []byte(decoded), 0o644); err != nil {
		return nil, err
	}
	return []string{binPath, txtPath}, nil
}

func readText(path string, opts options) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := string(raw)
	if !opts.keepTrailingSpace {
		text = strings.TrimRightFunc(text, unicode.IsSpace)
	}
	return text, nil
}

func compressedPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".bin"
}

func decompressedPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "decompressed.txt"
}
