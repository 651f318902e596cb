package huffman

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// PaddingFor returns the number of zero bits appended to a payload of n bits
// to make it byte-aligned.  The result is always in the range 1 .. 8: an
// already-aligned payload still receives a full byte of padding, which keeps
// containers bit-compatible with the reference format.
func PaddingFor(n int) byte {
	return byte(8 - n%8)
}

// Pack converts an encoded bit string into a container: one header byte
// holding the padding count, followed by the bits packed MSB-first and then
// the padding bits, which are all zero.
func Pack(bits BitString) []byte {
	padding := PaddingFor(len(bits))

	var buf bytes.Buffer
	buf.Grow(1 + (len(bits)+int(padding))/8)

	w := bitio.NewWriter(&buf)
	err := w.WriteByte(padding)
	for i := 0; i < len(bits) && err == nil; i++ {
		err = w.WriteBool(bits[i])
	}
	if err == nil {
		err = w.WriteBits(0, padding)
	}
	if err == nil {
		err = w.Close()
	}
	assert.Assertf(err == nil, "write to bytes.Buffer failed: %v", err)
	assert.Assertf(buf.Len()*8 == 8+len(bits)+int(padding), "packed %d bytes for %d bits", buf.Len(), len(bits))
	return buf.Bytes()
}

// Unpack reverses Pack, returning the original bit string without its
// header and padding.
func Unpack(data []byte) (BitString, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: missing padding header", ErrMalformedContainer)
	}

	r := bitio.NewReader(bytes.NewReader(data))
	padding, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}

	available := 8 * (len(data) - 1)
	if int(padding) > available {
		return nil, fmt.Errorf("%w: padding of %d bits exceeds the %d bits available", ErrMalformedContainer, padding, available)
	}

	n := available - int(padding)
	out := make(BitString, n)
	for i := 0; i < n; i++ {
		if out[i], err = r.ReadBool(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
		}
	}
	return out, nil
}
