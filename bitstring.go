package huffman

import (
	"fmt"
	"strings"
)

// BitString is a sequence of bits, first bit first.
type BitString []bool

// ParseBitString parses a string of '0' and '1' characters.
func ParseBitString(str string) (BitString, error) {
	out := make(BitString, len(str))
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			out[i] = false
		case '1':
			out[i] = true
		default:
			return nil, fmt.Errorf("invalid character %q at offset %d in bit string", str[i], i)
		}
	}
	return out, nil
}

// AppendCode returns bs with the bits of hc appended.
func (bs BitString) AppendCode(hc Code) BitString {
	for i := byte(0); i < hc.Size; i++ {
		bs = append(bs, hc.Bit(i))
	}
	return bs
}

// String returns the bits as a string of '0' and '1' characters.
func (bs BitString) String() string {
	var sb strings.Builder
	sb.Grow(len(bs))
	for _, bit := range bs {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

var _ fmt.Stringer = BitString(nil)
