package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Sealed container layout:
//
//	"HUF" version            4 bytes
//	uvarint n                number of table entries
//	n × (uvarint Δsymbol, size byte)
//	uvarint m                length of the plain container
//	m bytes                  plain container, as produced by Pack
//	xxhash64                 8 bytes, little-endian, of everything above
//
// Symbols are listed in ascending order; each is stored as the difference
// from the previous one (the first from zero).
const (
	sealedMagic    = "HUF"
	sealedVersion  = 1
	sealedHashSize = 8
)

// CompressSealed is like Compress, but returns a sealed container, which
// carries its own code table and can be decoded by OpenSealed without
// access to this Codec.
//
// The payload is encoded with the canonical form of the derived table, so
// that code lengths alone describe it.  The canonical table is the one
// stored on the Codec.
func (c *Codec) CompressSealed(text string) ([]byte, error) {
	symbols, err := SymbolsOf(text)
	if err != nil {
		return nil, c.fail("compress", err)
	}

	t, err := buildTable(symbols)
	if err != nil {
		return nil, c.fail("compress", err)
	}
	t = t.Canonical()

	bits, err := EncodeSymbols(t, symbols)
	if err != nil {
		return nil, c.fail("compress", err)
	}

	out := Seal(t, Pack(bits))
	c.table = t
	c.logger().Infof("compressed %d symbols (%d distinct) into %d sealed bytes", len(symbols), t.Len(), len(out))
	return out, nil
}

// Seal wraps a plain container produced with the canonical table t.
func Seal(t *Table, container []byte) []byte {
	var buf bytes.Buffer
	var scratch [binary.MaxVarintLen64]byte

	writeUvarint := func(x uint64) {
		n := binary.PutUvarint(scratch[:], x)
		buf.Write(scratch[:n])
	}

	buf.WriteString(sealedMagic)
	buf.WriteByte(sealedVersion)

	symbols := t.Symbols()
	writeUvarint(uint64(len(symbols)))
	var last Symbol
	for _, symbol := range symbols {
		hc, _ := t.Encode(symbol)
		writeUvarint(uint64(symbol - last))
		buf.WriteByte(hc.Size)
		last = symbol
	}

	writeUvarint(uint64(len(container)))
	buf.Write(container)

	var sum [sealedHashSize]byte
	binary.LittleEndian.PutUint64(sum[:], xxhash.Sum64(buf.Bytes()))
	buf.Write(sum[:])
	return buf.Bytes()
}

// ParseSealed verifies a sealed container and returns its canonical code
// table and the plain container it wraps.
func ParseSealed(data []byte) (*Table, []byte, error) {
	headerSize := len(sealedMagic) + 1
	if len(data) < headerSize+sealedHashSize {
		return nil, nil, fmt.Errorf("%w: sealed container too short (%d bytes)", ErrMalformedContainer, len(data))
	}
	if string(data[:len(sealedMagic)]) != sealedMagic {
		return nil, nil, fmt.Errorf("%w: bad magic %q", ErrMalformedContainer, data[:len(sealedMagic)])
	}
	if version := data[len(sealedMagic)]; version != sealedVersion {
		return nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedContainer, version)
	}

	body := data[:len(data)-sealedHashSize]
	expectSum := binary.LittleEndian.Uint64(data[len(body):])
	if actualSum := xxhash.Sum64(body); actualSum != expectSum {
		return nil, nil, fmt.Errorf("%w: checksum mismatch: expected %016x, got %016x", ErrMalformedContainer, expectSum, actualSum)
	}

	rest := body[headerSize:]
	readUvarint := func(what string) (uint64, error) {
		x, n := binary.Uvarint(rest)
		if n <= 0 {
			return 0, fmt.Errorf("%w: bad %s", ErrMalformedContainer, what)
		}
		rest = rest[n:]
		return x, nil
	}

	count, err := readUvarint("table size")
	if err != nil {
		return nil, nil, err
	}
	// Each entry occupies at least two bytes.
	if count > uint64(len(rest)/2) {
		return nil, nil, fmt.Errorf("%w: table of %d entries does not fit in %d bytes", ErrMalformedContainer, count, len(rest))
	}

	sizes := make(map[Symbol]byte, count)
	var symbol uint64
	for i := uint64(0); i < count; i++ {
		delta, err := readUvarint("symbol")
		if err != nil {
			return nil, nil, err
		}
		if i != 0 && delta == 0 {
			return nil, nil, fmt.Errorf("%w: duplicate symbol %d", ErrMalformedContainer, symbol)
		}
		if delta > uint64(MaxSymbol) || symbol+delta > uint64(MaxSymbol) {
			return nil, nil, fmt.Errorf("%w: symbol out of range", ErrMalformedContainer)
		}
		symbol += delta
		if len(rest) == 0 {
			return nil, nil, fmt.Errorf("%w: truncated table", ErrMalformedContainer)
		}
		sizes[Symbol(symbol)] = rest[0]
		rest = rest[1:]
	}

	t, err := NewCanonicalTable(sizes)
	if err != nil {
		return nil, nil, err
	}

	length, err := readUvarint("container length")
	if err != nil {
		return nil, nil, err
	}
	if length != uint64(len(rest)) {
		return nil, nil, fmt.Errorf("%w: container length %d, but %d bytes remain", ErrMalformedContainer, length, len(rest))
	}
	return t, rest, nil
}

// OpenSealed decodes a sealed container produced by Codec.CompressSealed.
func OpenSealed(data []byte) (string, error) {
	t, container, err := ParseSealed(data)
	if err != nil {
		return "", err
	}
	return Decompress(t, container)
}
