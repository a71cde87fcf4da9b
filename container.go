package huffcodec

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Container layout:
//
//   "HUF" version kind
//   uvarint  number of symbols
//   uvarint  number of code lengths
//   repeated (varint symbol, byte size), in canonical order
//   uint64   xxhash64 of the packed buffer, little-endian
//   []byte   packed buffer, as produced by Pack
//
const (
	containerMagic   = "HUF"
	containerVersion = 1
	checksumSize     = 8
)

// Seal compresses input into a self-describing container.  Unlike Encode,
// the result carries everything Open needs to reconstruct the input: the
// payload is packed with the canonical code for input's code lengths, and
// those lengths are stored in the header.
func Seal(kind Kind, input []Symbol) ([]byte, error) {
	var lengths CodeLengths
	packed := []byte{0}

	if len(input) != 0 {
		tree, err := BuildTree(Count(input))
		if err != nil {
			return nil, err
		}

		codes, err := BuildCodes(tree)
		if err != nil {
			return nil, err
		}

		lengths = codes.CodeLengths()
		canon, err := CanonicalTree(lengths)
		if err != nil {
			return nil, err
		}

		codes, err = BuildCodes(canon)
		if err != nil {
			return nil, err
		}

		packed, err = Pack(input, codes)
		if err != nil {
			return nil, err
		}
	}

	out := make([]byte, 0, 16+6*len(lengths)+checksumSize+len(packed))
	out = append(out, containerMagic...)
	out = append(out, containerVersion, byte(kind))
	out = binary.AppendUvarint(out, uint64(len(input)))
	out = binary.AppendUvarint(out, uint64(len(lengths)))
	for _, item := range lengths {
		out = binary.AppendVarint(out, int64(item.Symbol))
		out = append(out, item.Size)
	}
	out = binary.LittleEndian.AppendUint64(out, xxhash.Sum64(packed))
	out = append(out, packed...)
	return out, nil
}

// Open reverses Seal, returning the Kind and symbols that were sealed.
func Open(data []byte) (Kind, []Symbol, error) {
	r := containerReader{buf: data}

	magic, ok := r.next(len(containerMagic) + 2)
	if !ok {
		return 0, nil, errors.Wrap(ErrTruncatedBuffer, "container header")
	}
	if string(magic[:len(containerMagic)]) != containerMagic {
		return 0, nil, errors.Wrapf(ErrBadMagic, "got %q", magic[:len(containerMagic)])
	}
	if v := magic[len(containerMagic)]; v != containerVersion {
		return 0, nil, errors.Wrapf(ErrUnsupportedVersion, "version %d", v)
	}
	kind := Kind(magic[len(containerMagic)+1])
	if kind != KindBytes && kind != KindText {
		return 0, nil, errors.Wrapf(ErrCorruptStream, "unknown symbol kind %d", byte(kind))
	}

	numSymbols, ok := r.uvarint()
	if !ok {
		return 0, nil, errors.Wrap(ErrTruncatedBuffer, "symbol count")
	}
	numLengths, ok := r.uvarint()
	if !ok {
		return 0, nil, errors.Wrap(ErrTruncatedBuffer, "code length count")
	}
	if numLengths > uint64(r.remaining()/2) {
		return 0, nil, errors.Wrapf(ErrTruncatedBuffer, "%d code lengths declared in %d bytes", numLengths, r.remaining())
	}

	lengths := make(CodeLengths, 0, numLengths)
	for i := uint64(0); i < numLengths; i++ {
		sym, ok := r.varint()
		if !ok {
			return 0, nil, errors.Wrapf(ErrTruncatedBuffer, "code length %d", i)
		}
		if int64(Symbol(sym)) != sym {
			return 0, nil, errors.Wrapf(ErrCorruptStream, "symbol %d out of range", sym)
		}
		size, ok := r.next(1)
		if !ok {
			return 0, nil, errors.Wrapf(ErrTruncatedBuffer, "code length %d", i)
		}
		lengths = append(lengths, SymbolLength{Symbol: Symbol(sym), Size: size[0]})
	}

	sum, ok := r.next(checksumSize)
	if !ok {
		return 0, nil, errors.Wrap(ErrTruncatedBuffer, "checksum")
	}
	packed := r.rest()
	if xxhash.Sum64(packed) != binary.LittleEndian.Uint64(sum) {
		return 0, nil, errors.Wrap(ErrCorruptStream, "checksum mismatch")
	}

	if numSymbols == 0 {
		if len(lengths) != 0 || len(packed) != 1 || packed[0] != 0 {
			return 0, nil, errors.Wrap(ErrCorruptStream, "empty container carries a payload")
		}
		return kind, []Symbol{}, nil
	}

	tree, err := CanonicalTree(lengths)
	if err != nil {
		return 0, nil, err
	}

	out, err := Unpack(packed, tree)
	if err != nil {
		return 0, nil, err
	}
	if uint64(len(out)) != numSymbols {
		return 0, nil, errors.Wrapf(ErrCorruptStream, "decoded %d symbols, header declares %d", len(out), numSymbols)
	}
	return kind, out, nil
}

// SealBytes seals raw data according to kind.
func SealBytes(kind Kind, data []byte) ([]byte, error) {
	symbols, err := kind.Symbols(data)
	if err != nil {
		return nil, err
	}
	return Seal(kind, symbols)
}

// OpenBytes reverses SealBytes.
func OpenBytes(data []byte) ([]byte, error) {
	kind, symbols, err := Open(data)
	if err != nil {
		return nil, err
	}
	return kind.Bytes(symbols)
}

type containerReader struct {
	buf []byte
	pos int
}

func (r *containerReader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *containerReader) next(n int) ([]byte, bool) {
	if r.remaining() < n {
		return nil, false
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, true
}

func (r *containerReader) uvarint() (uint64, bool) {
	x, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		return 0, false
	}
	r.pos += n
	return x, true
}

func (r *containerReader) varint() (int64, bool) {
	x, n := binary.Varint(r.buf[r.pos:])
	if n <= 0 {
		return 0, false
	}
	r.pos += n
	return x, true
}

func (r *containerReader) rest() []byte {
	out := r.buf[r.pos:]
	r.pos = len(r.buf)
	return out
}
