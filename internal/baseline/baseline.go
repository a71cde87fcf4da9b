// Package baseline measures general-purpose compressors on the same input as
// the Huffman codec, so that the command line tool can report how the two
// compare.
package baseline

import (
	"sync"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// Compressor compresses a whole buffer in one call.
type Compressor interface {
	Name() string
	Compress(data []byte) ([]byte, error)
}

// Result is the outcome of running one Compressor.
type Result struct {
	Name string
	Size int
}

// All returns every baseline compressor, in reporting order.
func All() []Compressor {
	return []Compressor{Zstd{}, S2{}, LZ4{}}
}

// Measure runs each of compressors over data.
func Measure(data []byte, compressors ...Compressor) ([]Result, error) {
	out := make([]Result, 0, len(compressors))
	for _, c := range compressors {
		compressed, err := c.Compress(data)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", c.Name())
		}
		out = append(out, Result{Name: c.Name(), Size: len(compressed)})
	}
	return out, nil
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(errors.Wrap(err, "failed to create zstd encoder for pool"))
		}
		return encoder
	},
}

// Zstd is Zstandard at the default level, without a frame checksum.
type Zstd struct{}

func (Zstd) Name() string { return "zstd" }

func (Zstd) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)
	return encoder.EncodeAll(data, nil), nil
}

// S2 is the Snappy-compatible S2 block format.
type S2 struct{}

func (S2) Name() string { return "s2" }

func (S2) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4 is the LZ4 block format.
type LZ4 struct{}

func (LZ4) Name() string { return "lz4" }

func (LZ4) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// incompressible; a container would store it raw
		return append([]byte(nil), data...), nil
	}
	return dst[:n], nil
}

var (
	_ Compressor = Zstd{}
	_ Compressor = S2{}
	_ Compressor = LZ4{}
)
