package huffcodec

import (
	"sort"

	"github.com/pkg/errors"
)

// SymbolLength pairs a Symbol with the bit length of its code.
type SymbolLength struct {
	Symbol Symbol
	Size   byte
}

// CodeLengths is the transmissible form of a Huffman code: the bit length of
// each symbol's code, without the bits themselves.
type CodeLengths []SymbolLength

// Sort orders the list by (Size, Symbol) ascending, which is the order in
// which CanonicalTree assigns codes.
func (list CodeLengths) Sort() {
	sort.Sort(list)
}

func (list CodeLengths) Len() int {
	return len(list)
}

func (list CodeLengths) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list CodeLengths) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.Symbol < b.Symbol
}

var _ sort.Interface = CodeLengths(nil)

// CanonicalTree constructs the canonical Huffman tree for the given code
// lengths, per the algorithm in RFC 1951 Section 3.2.2 generalized to sparse
// alphabets: codes are handed out consecutively in (Size, Symbol) order.
//
// Not all inputs are valid.  In particular, this function rejects lengths
// that over-subscribe the code space, lengths that leave part of it unused,
// and duplicate symbols.  The degenerate code consisting of 1 symbol with a
// length of 1 is permitted, and yields a single-leaf tree.
//
func CanonicalTree(lengths CodeLengths) (*Tree, error) {
	if len(lengths) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "no code lengths")
	}

	sorted := make(CodeLengths, len(lengths))
	copy(sorted, lengths)
	sorted.Sort()

	seen := make(map[Symbol]struct{}, len(sorted))
	for _, item := range sorted {
		if item.Size == 0 || item.Size > maxBitsPerCode {
			return nil, errors.Wrapf(ErrMalformedTree, "invalid bit length for symbol %d: got %d, want 1 .. %d", item.Symbol, item.Size, maxBitsPerCode)
		}
		if _, found := seen[item.Symbol]; found {
			return nil, errors.Wrapf(ErrMalformedTree, "symbol %d listed more than once", item.Symbol)
		}
		seen[item.Symbol] = struct{}{}
	}

	// permit degenerate code with 1 symbol
	if len(sorted) == 1 {
		item := sorted[0]
		if item.Size != 1 {
			return nil, errors.Wrapf(ErrMalformedTree, "single symbol %d must have length 1, got %d", item.Symbol, item.Size)
		}
		return &Tree{Root: &Node{Symbol: item.Symbol}}, nil
	}

	root := &Node{Symbol: InvalidSymbol}
	lastSize := sorted[0].Size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.Size > lastSize {
			nextCode <<= (item.Size - lastSize)
			lastSize = item.Size
		}
		if nextCode>>item.Size != 0 {
			return nil, errors.Wrapf(ErrMalformedTree, "code lengths over-subscribe the code space at symbol %d", item.Symbol)
		}
		insertLeaf(root, item.Symbol, MakeCode(item.Size, nextCode))
		nextCode++
	}

	// forbid all other degenerate codes
	if nextCode != uint64(1)<<lastSize {
		return nil, errors.Wrapf(ErrMalformedTree, "incomplete code: expected %d codes of length %d, got %d", uint64(1)<<lastSize, lastSize, nextCode)
	}
	return &Tree{Root: root}, nil
}

// insertLeaf adds a leaf for sym at the path hc, creating internal nodes as
// needed.  Codes assigned in canonical order never collide with an existing
// leaf, so no collision checks are made here.
func insertLeaf(root *Node, sym Symbol, hc Code) {
	n := root
	for i := byte(0); i < hc.Size-1; i++ {
		next := &n.Left
		if hc.Bit(i) == 1 {
			next = &n.Right
		}
		if *next == nil {
			*next = &Node{Symbol: InvalidSymbol}
		}
		n = *next
	}
	leaf := &Node{Symbol: sym}
	if hc.Bit(hc.Size-1) == 1 {
		n.Right = leaf
	} else {
		n.Left = leaf
	}
}
