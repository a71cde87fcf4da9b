package huffcodec

import (
	"github.com/pkg/errors"
)

// Unpack decodes a PackedBuffer produced by Pack, walking tree from the root
// one bit at a time and emitting a symbol at every leaf.
//
// Errors:
//   ErrTruncatedBuffer → buf has no header, or less payload than padding
//   ErrInvalidPadding  → the header is greater than 7
//   ErrCorruptStream   → non-zero padding bits, a bit with no matching
//                        child, or bits that end in the middle of a code
//   ErrMalformedTree   → payload bits but no tree to decode them with
//
// The packed format records no symbol count.  Dropping whole bytes whose
// boundary falls between two codes leaves a well-formed shorter stream, and
// Unpack returns the shorter result without error.  Seal and Open detect
// such truncation.
//
func Unpack(buf []byte, tree *Tree) ([]Symbol, error) {
	if len(buf) < 1 {
		return nil, errors.Wrap(ErrTruncatedBuffer, "missing padding header")
	}

	padding := uint(buf[0])
	payload := buf[1:]
	if padding > 7 {
		return nil, errors.Wrapf(ErrInvalidPadding, "padding %d out of range 0 .. 7", padding)
	}
	if uint64(len(payload))*8 < uint64(padding) {
		return nil, errors.Wrapf(ErrTruncatedBuffer, "%d bits of padding declared but payload is empty", padding)
	}
	if padding != 0 && payload[len(payload)-1]&byte((1<<padding)-1) != 0 {
		return nil, errors.Wrap(ErrCorruptStream, "padding bits are not zero")
	}

	numBits := uint64(len(payload))*8 - uint64(padding)
	if numBits == 0 {
		return []Symbol{}, nil
	}
	if tree == nil || tree.Root == nil {
		return nil, errors.Wrapf(ErrMalformedTree, "no tree to decode %d bits with", numBits)
	}

	root := tree.Root
	out := make([]Symbol, 0, len(payload))

	if root.IsLeaf() {
		for i := uint64(0); i < numBits; i++ {
			if bitAt(payload, i) != 0 {
				return nil, errors.Wrapf(ErrCorruptStream, "bit %d: single-symbol code has no branch 1", i)
			}
			out = append(out, root.Symbol)
		}
		return out, nil
	}

	cursor := root
	for i := uint64(0); i < numBits; i++ {
		next := cursor.Left
		if bitAt(payload, i) != 0 {
			next = cursor.Right
		}
		if next == nil {
			return nil, errors.Wrapf(ErrCorruptStream, "bit %d: no matching child", i)
		}
		if next.IsLeaf() {
			out = append(out, next.Symbol)
			cursor = root
		} else {
			cursor = next
		}
	}
	if cursor != root {
		return nil, errors.Wrapf(ErrCorruptStream, "stream ends in the middle of a code after %d symbols", len(out))
	}
	return out, nil
}

// bitAt returns the i'th bit of buf, most significant bit first.
func bitAt(buf []byte, i uint64) byte {
	return (buf[i>>3] >> (7 - i&7)) & 1
}
