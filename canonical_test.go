package huffcodec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalTree(t *testing.T) {
	lengths := CodeLengths{{0, 4}, {1, 4}, {2, 3}, {3, 3}, {4, 3}, {5, 1}}

	tree, err := CanonicalTree(lengths)
	require.NoError(t, err)

	codes, err := BuildCodes(tree)
	require.NoError(t, err)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1110\"\n",
		"\tEncode(1) = \"1111\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"110\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = codes.Dump(&buf)
	require.Equal(t, expectDump, buf.String())

	// input order does not matter, and the caller's slice is left alone
	require.Equal(t, Symbol(0), lengths[0].Symbol)
	reversed := CodeLengths{{5, 1}, {4, 3}, {3, 3}, {2, 3}, {1, 4}, {0, 4}}
	tree2, err := CanonicalTree(reversed)
	require.NoError(t, err)
	codes2, err := BuildCodes(tree2)
	require.NoError(t, err)
	require.Equal(t, codes, codes2)
}

func TestCanonicalTree_MatchesBuildTreeLengths(t *testing.T) {
	input := SymbolsFromString("canonical huffman codes keep only the lengths")

	tree, err := BuildTree(Count(input))
	require.NoError(t, err)
	codes, err := BuildCodes(tree)
	require.NoError(t, err)

	canon, err := CanonicalTree(codes.CodeLengths())
	require.NoError(t, err)
	canonCodes, err := BuildCodes(canon)
	require.NoError(t, err)

	require.Equal(t, codes.CodeLengths(), canonCodes.CodeLengths())
}

func TestCanonicalTree_SingleSymbol(t *testing.T) {
	tree, err := CanonicalTree(CodeLengths{{'a', 1}})
	require.NoError(t, err)
	require.True(t, tree.Root.IsLeaf())
	require.Equal(t, Symbol('a'), tree.Root.Symbol)

	_, err = CanonicalTree(CodeLengths{{'a', 2}})
	require.ErrorIs(t, err, ErrMalformedTree)
}

func TestCanonicalTree_Invalid(t *testing.T) {
	type testRow struct {
		name    string
		lengths CodeLengths
		err     error
	}

	testData := [...]testRow{
		{name: "empty", lengths: nil, err: ErrEmptyInput},
		{name: "zero-size", lengths: CodeLengths{{'a', 0}, {'b', 1}}, err: ErrMalformedTree},
		{name: "too-long", lengths: CodeLengths{{'a', 1}, {'b', maxBitsPerCode + 1}}, err: ErrMalformedTree},
		{name: "duplicate", lengths: CodeLengths{{'a', 1}, {'a', 1}}, err: ErrMalformedTree},
		{name: "over-subscribed", lengths: CodeLengths{{'a', 1}, {'b', 1}, {'c', 1}}, err: ErrMalformedTree},
		{name: "over-subscribed-deep", lengths: CodeLengths{{'a', 1}, {'b', 2}, {'c', 2}, {'d', 2}}, err: ErrMalformedTree},
		{name: "incomplete", lengths: CodeLengths{{'a', 1}, {'b', 2}}, err: ErrMalformedTree},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := CanonicalTree(row.lengths)
			require.ErrorIs(t, err, row.err)
		})
	}
}

func TestCode(t *testing.T) {
	hc := MakeCode(4, 0xb)
	require.Equal(t, "\"1011\"", hc.String())
	require.Equal(t, "\"\"", Code{}.String())
	require.Equal(t, []uint64{1, 0, 1, 1}, []uint64{hc.Bit(0), hc.Bit(1), hc.Bit(2), hc.Bit(3)})
	require.Equal(t, MakeCode(5, 0x16), hc.Append(0))
	require.Equal(t, MakeCode(5, 0x17), hc.Append(1))

	require.True(t, hc.HasPrefix(MakeCode(2, 0x2)))
	require.True(t, hc.HasPrefix(hc))
	require.True(t, hc.HasPrefix(Code{}))
	require.False(t, hc.HasPrefix(MakeCode(2, 0x3)))
	require.False(t, hc.HasPrefix(MakeCode(5, 0x16)))
}
