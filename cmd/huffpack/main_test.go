package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	require.Equal(t, "dir/text.bin", compressedPath("dir/text.txt"))
	require.Equal(t, "dir/textdecompressed.txt", decompressedPath("dir/text.bin"))
	require.Equal(t, "noext.bin", compressedPath("noext"))
}

func TestRun_CompressThenDecompress(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(input, []byte("aabbbcc  \n\n"), 0o644))

	var stderr bytes.Buffer
	require.NoError(t, run([]string{"-v", "compress", input}, &stderr))
	require.Contains(t, stderr.String(), "[INFO] wrote "+filepath.Join(dir, "text.bin"))

	require.NoError(t, run([]string{"decompress", filepath.Join(dir, "text.bin")}, &stderr))
	out, err := os.ReadFile(filepath.Join(dir, "textdecompressed.txt"))
	require.NoError(t, err)
	require.Equal(t, "aabbbcc", string(out))
}

func TestReadText_TrimsUnicodeSpace(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(input, []byte("naïve text\u00a0\u2028\u0085 \n"), 0o644))

	text, err := readText(input, options{})
	require.NoError(t, err)
	require.Equal(t, "naïve text", text)

	text, err = readText(input, options{keepTrailingSpace: true})
	require.NoError(t, err)
	require.Equal(t, "naïve text\u00a0\u2028\u0085 \n", text)
}

func TestRun_KeepTrailingSpace(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(input, []byte("line\n"), 0o644))

	var stderr bytes.Buffer
	require.NoError(t, run([]string{"-keep-trailing-space", "roundtrip", input}, &stderr))

	packed, err := os.ReadFile(filepath.Join(dir, "text.bin"))
	require.NoError(t, err)
	require.NotEmpty(t, packed)

	out, err := os.ReadFile(filepath.Join(dir, "textdecompressed.txt"))
	require.NoError(t, err)
	require.Equal(t, "line\n", string(out))
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer

	require.Error(t, run([]string{"compress"}, &stderr))
	require.Error(t, run([]string{"explode", filepath.Join(dir, "x")}, &stderr))
	require.Error(t, run([]string{"compress", filepath.Join(dir, "missing.txt")}, &stderr))

	blank := filepath.Join(dir, "blank.txt")
	require.NoError(t, os.WriteFile(blank, []byte(" \n"), 0o644))
	stderr.Reset()
	require.Error(t, run([]string{"compress", blank}, &stderr))
	require.Contains(t, stderr.String(), "[ERROR]")

	garbage := filepath.Join(dir, "garbage.bin")
	require.NoError(t, os.WriteFile(garbage, []byte("not a container"), 0o644))
	require.Error(t, run([]string{"decompress", garbage}, &stderr))
}
