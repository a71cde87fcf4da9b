// Package huffcodec implements a Huffman entropy codec over single-byte or
// single-rune alphabets.
//
// Encode counts symbol frequencies, builds a Huffman tree, derives a
// prefix-free code from it, and packs the input into a byte buffer whose
// first byte records how many zero bits pad the final payload byte.  Decode
// needs the exact Tree returned by Encode.
//
// Seal and Open wrap the same packed buffer in a self-describing container
// that carries canonical code lengths and a checksum, so the decoder can
// rebuild the tree on its own.
//
// References:
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcodec
