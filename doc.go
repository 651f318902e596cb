// Package huffman implements a lossless text compressor built on Huffman
// codes.  A Codec counts symbol frequencies, builds a prefix-code tree,
// derives a code table from it, and packs the encoded bits into a
// byte-aligned container whose first byte records the number of padding
// bits.
//
// The plain container does not carry its code table, so it can only be
// decoded with the Table that produced it.  Sealed containers (see
// Codec.CompressSealed and OpenSealed) embed the code lengths and can be
// decoded by an independent process.
//
// References:
//
//   - <https://en.wikipedia.org/wiki/Huffman_coding>
//   - <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
package huffman
