package huffcodec

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// CodeTable maps each Symbol of a Huffman tree to its Code.  A nil
// *CodeTable is an empty table.
type CodeTable struct {
	codes   map[Symbol]Code
	minSize byte
	maxSize byte
}

// BuildCodes walks tree and records the root-to-leaf path of every leaf, with
// 0 for each left branch and 1 for each right branch.
//
// A tree that consists of a single leaf has no paths at all; its symbol is
// assigned the 1-bit code "0".
//
func BuildCodes(tree *Tree) (*CodeTable, error) {
	if tree == nil || tree.Root == nil {
		return nil, errors.Wrap(ErrMalformedTree, "tree has no root")
	}

	t := &CodeTable{codes: make(map[Symbol]Code)}
	root := tree.Root
	if root.IsLeaf() {
		t.add(root.Symbol, MakeCode(1, 0))
		return t, nil
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, maxBitsPerCode)

	push := func(n *Node, hc Code) error {
		if n.Left == nil || n.Right == nil {
			return errors.Wrapf(ErrMalformedTree, "internal node at %s has only one child", hc)
		}
		if hc.Size >= maxBitsPerCode {
			return errors.Wrapf(ErrCodeTooLong, "tree is deeper than %d bits", maxBitsPerCode)
		}
		stack = append(stack, stackItem{node: n, code: hc})
		return nil
	}

	processChild := func(child *Node, hc Code) error {
		if !child.IsLeaf() {
			return push(child, hc)
		}
		if _, found := t.codes[child.Symbol]; found {
			return errors.Wrapf(ErrMalformedTree, "symbol %d appears in more than one leaf", child.Symbol)
		}
		t.add(child.Symbol, hc)
		return nil
	}

	if err := push(root, Code{}); err != nil {
		return nil, err
	}
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		node, hc, x := top.node, top.code, top.x
		top.x++

		var err error
		switch x {
		case 0:
			err = processChild(node.Left, hc.Append(0))
		case 1:
			err = processChild(node.Right, hc.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *CodeTable) add(sym Symbol, hc Code) {
	if len(t.codes) == 0 {
		t.minSize = hc.Size
		t.maxSize = hc.Size
	} else if t.minSize > hc.Size {
		t.minSize = hc.Size
	} else if t.maxSize < hc.Size {
		t.maxSize = hc.Size
	}
	t.codes[sym] = hc
}

// Encode returns the Code for sym.  The second result is false if sym has no
// code in this table.
func (t *CodeTable) Encode(sym Symbol) (Code, bool) {
	hc, found := t.codeMap()[sym]
	return hc, found
}

// codeMap returns the table's map, or nil for a nil table.
func (t *CodeTable) codeMap() map[Symbol]Code {
	if t == nil {
		return nil
	}
	return t.codes
}

// Len returns the number of symbols in this table.
func (t *CodeTable) Len() int {
	return len(t.codeMap())
}

// MinSize is the bit length of the shortest code.
func (t *CodeTable) MinSize() byte {
	if t == nil {
		return 0
	}
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *CodeTable) MaxSize() byte {
	if t == nil {
		return 0
	}
	return t.maxSize
}

// Symbols returns every symbol in this table, in ascending order.
func (t *CodeTable) Symbols() []Symbol {
	codes := t.codeMap()
	out := make([]Symbol, 0, len(codes))
	for sym := range codes {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CodeLengths returns the bit length of every symbol's code.  The list can be
// transmitted to another party and handed to CanonicalTree.
func (t *CodeTable) CodeLengths() CodeLengths {
	codes := t.codeMap()
	out := make(CodeLengths, 0, len(codes))
	for sym, hc := range codes {
		out = append(out, SymbolLength{Symbol: sym, Size: hc.Size})
	}
	out.Sort()
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.MaxSize())
	codes := t.codeMap()
	for _, sym := range t.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", sym, codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
