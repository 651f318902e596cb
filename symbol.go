package huffman

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Symbol represents a symbol in an arbitrary alphabet.  Text is handled as
// a sequence of Unicode code points.  Negative symbols are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// SymbolsOf splits text into Symbols, one per code point.  Text that is not
// valid UTF-8 is rejected, since it would not survive a round trip.
func SymbolsOf(text string) ([]Symbol, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidInput)
	}
	out := make([]Symbol, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		out = append(out, Symbol(r))
	}
	return out, nil
}

// StringOf joins Symbols back into text.
func StringOf(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for i, symbol := range symbols {
		runes[i] = rune(symbol)
	}
	return string(runes)
}
