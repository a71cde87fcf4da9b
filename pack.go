package huffcodec

import (
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Pack encodes input with codes into a PackedBuffer: one header byte holding
// the number of zero bits (0 .. 7) that pad the final payload byte, followed
// by the concatenated codes packed most significant bit first.
//
// Pack fails with ErrUnknownSymbol if any symbol of input has no code.
//
func Pack(input []Symbol, codes *CodeTable) ([]byte, error) {
	var numBits uint64
	for index, sym := range input {
		hc, found := codes.Encode(sym)
		if !found {
			return nil, errors.Wrapf(ErrUnknownSymbol, "symbol %d at index %d", sym, index)
		}
		numBits += uint64(hc.Size)
	}

	w := bitWriter{buf: make([]byte, 1, 1+(numBits+7)/8)}
	for _, sym := range input {
		hc := codes.codes[sym]
		w.WriteCode(hc)
	}
	padding := w.Flush()

	assert.Assertf(uint64(len(w.buf)-1)*8 == numBits+uint64(padding), "packed %d bytes for %d bits plus %d padding", len(w.buf)-1, numBits, padding)
	w.buf[0] = padding
	return w.buf, nil
}

// bitWriter appends bits to buf, most significant bit first.  accum holds the
// nbits (always < 8 between calls) bits that do not yet fill a byte.
type bitWriter struct {
	buf   []byte
	accum uint64
	nbits uint
}

// WriteCode appends the bits of hc.
func (w *bitWriter) WriteCode(hc Code) {
	if hc.Size > 32 {
		w.writeBits(hc.Bits>>32, uint(hc.Size)-32)
		w.writeBits(hc.Bits, 32)
		return
	}
	w.writeBits(hc.Bits, uint(hc.Size))
}

func (w *bitWriter) writeBits(bits uint64, size uint) {
	w.accum = w.accum<<size | bits&((uint64(1)<<size)-1)
	w.nbits += size
	for w.nbits >= 8 {
		w.nbits -= 8
		w.buf = append(w.buf, byte(w.accum>>w.nbits))
	}
	w.accum &= (uint64(1) << w.nbits) - 1
}

// Flush pads any partial byte with zero bits and returns the number of bits
// of padding written, which is 0 when the bit count was already a multiple of
// 8.
func (w *bitWriter) Flush() byte {
	if w.nbits == 0 {
		return 0
	}
	padding := 8 - w.nbits
	w.buf = append(w.buf, byte(w.accum<<padding))
	w.accum = 0
	w.nbits = 0
	return byte(padding)
}
