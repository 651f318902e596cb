package huffman

import "errors"

var (
	// ErrInvalidInput is returned when no code can be built from the input,
	// e.g. for empty text.
	ErrInvalidInput = errors.New("huffman: invalid input")

	// ErrUnknownSymbol is returned when a symbol being encoded has no code
	// in the table.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrMalformedContainer is returned when packed bytes cannot be decoded.
	ErrMalformedContainer = errors.New("huffman: malformed container")

	// ErrNoCodeTable is returned by Codec.Decompress before any successful
	// call to Compress.
	ErrNoCodeTable = errors.New("huffman: no code table")
)
