package huffcodec

import (
	"github.com/pkg/errors"
)

// Errors reported by this package.  Returned errors wrap one of these with
// call-specific context; test for them with errors.Is.
var (
	// ErrEmptyInput means there are no symbols to build a tree from.
	ErrEmptyInput = errors.New("huffcodec: empty input")

	// ErrMalformedTree means a tree or code length list violates the
	// full-binary-tree invariant.
	ErrMalformedTree = errors.New("huffcodec: malformed tree")

	// ErrCodeTooLong means a leaf lies deeper than maxBitsPerCode.
	ErrCodeTooLong = errors.New("huffcodec: code too long")

	// ErrUnknownSymbol means a symbol being encoded has no code.
	ErrUnknownSymbol = errors.New("huffcodec: unknown symbol")

	// ErrTruncatedBuffer means a buffer ends before its header does.
	ErrTruncatedBuffer = errors.New("huffcodec: truncated buffer")

	// ErrInvalidPadding means the padding header is out of range.
	ErrInvalidPadding = errors.New("huffcodec: invalid padding")

	// ErrCorruptStream means the bit payload does not decode cleanly.
	ErrCorruptStream = errors.New("huffcodec: corrupt stream")

	// ErrInvalidText means text-mode data is not valid UTF-8, or a text-mode
	// symbol is not a valid rune.
	ErrInvalidText = errors.New("huffcodec: invalid UTF-8 text")

	// ErrBadMagic means a container does not start with the expected magic.
	ErrBadMagic = errors.New("huffcodec: bad magic")

	// ErrUnsupportedVersion means a container was written by an unknown
	// format version.
	ErrUnsupportedVersion = errors.New("huffcodec: unsupported container version")
)
