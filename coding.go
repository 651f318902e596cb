package huffman

import (
	"fmt"
)

// EncodeSymbols concatenates the Codes of symbols.  A Symbol with no Code in
// t is rejected with ErrUnknownSymbol.
func EncodeSymbols(t *Table, symbols []Symbol) (BitString, error) {
	var size int
	for _, symbol := range symbols {
		hc, found := t.Encode(symbol)
		if !found {
			return nil, fmt.Errorf("%w: %q (%d)", ErrUnknownSymbol, rune(symbol), symbol)
		}
		size += int(hc.Size)
	}

	out := make(BitString, 0, size)
	for _, symbol := range symbols {
		hc, _ := t.Encode(symbol)
		out = out.AppendCode(hc)
	}
	return out, nil
}

// DecodeBits scans bits from first to last, emitting a Symbol each time the
// bits read since the previous Symbol spell a Code in t.
//
// Bits left over at the end, or a run of bits longer than any Code in t, are
// reported as ErrMalformedContainer.
func DecodeBits(t *Table, bits BitString) ([]Symbol, error) {
	var out []Symbol
	var hc Code
	for i, bit := range bits {
		hc = hc.Append(bit)
		if symbol := t.Decode(hc); symbol != InvalidSymbol {
			out = append(out, symbol)
			hc = Code{}
			continue
		}
		if hc.Size >= t.MaxSize() {
			return nil, fmt.Errorf("%w: bits %s at offset %d match no code", ErrMalformedContainer, hc, i+1-int(hc.Size))
		}
	}
	if hc.Size != 0 {
		return nil, fmt.Errorf("%w: %d trailing bits %s match no code", ErrMalformedContainer, hc.Size, hc)
	}
	return out, nil
}
