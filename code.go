package huffcodec

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest code this package will assign or accept.
// Reaching it from a frequency count needs an input far larger than memory.
const maxBitsPerCode = 63

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low bits is the first bit, i.e. the branch taken at the
	// root.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= maxBitsPerCode, "size %d > maxBitsPerCode %d", size, maxBitsPerCode)
	return Code{Size: size, Bits: bits & sizeMask(size)}
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | bit&1}
}

// Bit returns the i'th bit of this Code, counting from the first.
func (hc Code) Bit(i byte) uint64 {
	assert.Assertf(i < hc.Size, "bit index %d out of range for size %d", i, hc.Size)
	return (hc.Bits >> (hc.Size - 1 - i)) & 1
}

// HasPrefix returns true iff prefix is a (possibly equal) prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

func sizeMask(size byte) uint64 {
	return (uint64(1) << size) - 1
}
