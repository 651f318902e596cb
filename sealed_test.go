package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealed_RoundTrip(t *testing.T) {
	texts := []string{
		"a",
		"aabbbcc",
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("日本語のテキスト", 40),
	}
	for _, text := range texts {
		var c Codec
		sealed, err := c.CompressSealed(text)
		require.NoError(t, err)

		// No shared state: a fresh process only has the bytes.
		actual, err := OpenSealed(sealed)
		require.NoError(t, err)
		require.Equal(t, text, actual)

		// The Codec keeps the canonical table it encoded with.
		actual, err = c.Decompress(mustContainer(t, sealed))
		require.NoError(t, err)
		require.Equal(t, text, actual)
	}
}

func mustContainer(t *testing.T, sealed []byte) []byte {
	t.Helper()
	_, container, err := ParseSealed(sealed)
	require.NoError(t, err)
	return container
}

func TestSealed_Layout(t *testing.T) {
	var c Codec
	sealed, err := c.CompressSealed("aabbbcc")
	require.NoError(t, err)

	expectBody := []byte{
		'H', 'U', 'F', 0x01,
		0x03,       // entries
		0x61, 0x02, // 'a', 2 bits
		0x01, 0x01, // 'b', 1 bit
		0x01, 0x02, // 'c', 2 bits
		0x03,             // container length
		0x05, 0xa1, 0xe0, // container
	}
	require.Len(t, sealed, len(expectBody)+8)
	require.Equal(t, expectBody, sealed[:len(expectBody)])

	table, container, err := ParseSealed(sealed)
	require.NoError(t, err)
	require.Equal(t, []byte{0x05, 0xa1, 0xe0}, container)
	require.Equal(t, map[Symbol]byte{'a': 2, 'b': 1, 'c': 2}, table.SizeBySymbol())
}

func TestSealed_Malformed(t *testing.T) {
	var c Codec
	sealed, err := c.CompressSealed("mississippi")
	require.NoError(t, err)

	corrupt := func(mutate func([]byte) []byte) []byte {
		data := append([]byte(nil), sealed...)
		return mutate(data)
	}

	testData := map[string][]byte{
		"empty":                nil,
		"too short":            sealed[:6],
		"truncated":            sealed[:len(sealed)-1],
		"bad magic":            corrupt(func(b []byte) []byte { b[0] = 'X'; return b }),
		"bad version":          corrupt(func(b []byte) []byte { b[3] = 2; return b }),
		"flipped payload bit":  corrupt(func(b []byte) []byte { b[len(b)-9] ^= 0x01; return b }),
		"flipped checksum bit": corrupt(func(b []byte) []byte { b[len(b)-1] ^= 0x80; return b }),
		"plain container":      Pack(mustParseBits(t, "0101010101010101")),
	}
	for name, data := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := OpenSealed(data)
			require.ErrorIs(t, err, ErrMalformedContainer)
		})
	}
}

func TestSealed_InvalidTableBehindValidChecksum(t *testing.T) {
	// Three one-bit codes cannot form a prefix code.
	table := &Table{
		codes:   map[Symbol]Code{'a': MakeCode(1, 0), 'b': MakeCode(1, 1), 'c': MakeCode(1, 1)},
		symbols: map[Code]Symbol{},
	}
	sealed := Seal(table, []byte{0x08, 0x00})
	_, _, err := ParseSealed(sealed)
	require.ErrorIs(t, err, ErrMalformedContainer)
}

func TestSealed_EmptyText(t *testing.T) {
	var c Codec
	_, err := c.CompressSealed("")
	require.ErrorIs(t, err, ErrInvalidInput)
}
