package huffcodec

// Encode compresses input.  It returns the PackedBuffer together with the
// Tree that Decode will need to reverse it.
//
// Empty input encodes to a lone zero header byte and a nil Tree.
//
func Encode(input []Symbol) ([]byte, *Tree, error) {
	if len(input) == 0 {
		return []byte{0}, nil, nil
	}

	tree, err := BuildTree(Count(input))
	if err != nil {
		return nil, nil, err
	}

	codes, err := BuildCodes(tree)
	if err != nil {
		return nil, nil, err
	}

	buf, err := Pack(input, codes)
	if err != nil {
		return nil, nil, err
	}
	return buf, tree, nil
}

// Decode reverses Encode.  tree must be the Tree that Encode returned along
// with buf.
//
// Decode cannot always tell that buf was truncated: see Unpack.  Use Seal
// and Open when the buffer crosses an unreliable boundary.
//
func Decode(buf []byte, tree *Tree) ([]Symbol, error) {
	return Unpack(buf, tree)
}

// EncodeString compresses the runes of s.
func EncodeString(s string) ([]byte, *Tree, error) {
	return Encode(SymbolsFromString(s))
}

// DecodeString reverses EncodeString.
func DecodeString(buf []byte, tree *Tree) (string, error) {
	symbols, err := Decode(buf, tree)
	if err != nil {
		return "", err
	}
	return StringFromSymbols(symbols), nil
}

// EncodeBytes compresses the bytes of data.
func EncodeBytes(data []byte) ([]byte, *Tree, error) {
	return Encode(SymbolsFromBytes(data))
}

// DecodeBytes reverses EncodeBytes.
func DecodeBytes(buf []byte, tree *Tree) ([]byte, error) {
	symbols, err := Decode(buf, tree)
	if err != nil {
		return nil, err
	}
	return BytesFromSymbols(symbols)
}
