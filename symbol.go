package huffcodec

import (
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Symbol represents a symbol in the input alphabet: either a byte value or a
// Unicode code point.
type Symbol int32

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// SymbolsFromBytes converts each byte of data into one Symbol.
func SymbolsFromBytes(data []byte) []Symbol {
	out := make([]Symbol, len(data))
	for i, b := range data {
		out[i] = Symbol(b)
	}
	return out
}

// SymbolsFromString converts each rune of s into one Symbol.  Invalid UTF-8
// sequences become utf8.RuneError, as with a range loop.
func SymbolsFromString(s string) []Symbol {
	out := make([]Symbol, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}

// BytesFromSymbols is the inverse of SymbolsFromBytes.  It fails if any
// Symbol lies outside the byte range.
func BytesFromSymbols(symbols []Symbol) ([]byte, error) {
	out := make([]byte, len(symbols))
	for i, sym := range symbols {
		if sym < 0 || sym > 0xff {
			return nil, errors.Errorf("symbol %d at index %d is not a byte", sym, i)
		}
		out[i] = byte(sym)
	}
	return out, nil
}

// StringFromSymbols is the inverse of SymbolsFromString.
func StringFromSymbols(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for i, sym := range symbols {
		runes[i] = rune(sym)
	}
	return string(runes)
}

// Kind identifies how a symbol sequence maps to raw data.
type Kind byte

const (
	// KindBytes maps each byte to one Symbol.
	KindBytes Kind = iota

	// KindText maps each UTF-8 encoded rune to one Symbol.
	KindText
)

// String returns the name of this Kind.
func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Symbols converts raw data into symbols according to this Kind.  KindText
// fails with ErrInvalidText unless data is valid UTF-8.
func (k Kind) Symbols(data []byte) ([]Symbol, error) {
	switch k {
	case KindBytes:
		return SymbolsFromBytes(data), nil
	case KindText:
		if !utf8.Valid(data) {
			return nil, errors.Wrap(ErrInvalidText, "input")
		}
		return SymbolsFromString(string(data)), nil
	default:
		return nil, errors.Errorf("unknown symbol kind %d", byte(k))
	}
}

// Bytes converts symbols back into raw data according to this Kind.  KindText
// fails with ErrInvalidText if any symbol is not a valid rune.
func (k Kind) Bytes(symbols []Symbol) ([]byte, error) {
	switch k {
	case KindBytes:
		return BytesFromSymbols(symbols)
	case KindText:
		for i, sym := range symbols {
			if !utf8.ValidRune(rune(sym)) {
				return nil, errors.Wrapf(ErrInvalidText, "symbol %d at index %d is not a rune", sym, i)
			}
		}
		return []byte(StringFromSymbols(symbols)), nil
	default:
		return nil, errors.Errorf("unknown symbol kind %d", byte(k))
	}
}
