// Package core defines the input-shape constraints, the Decoder contract and
// the sentinel errors shared by the Luhn engines.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the verbose Verify and Compute operations.
var (
	// ErrEmptyInput indicates the sequence holds no symbols.
	ErrEmptyInput = errors.New("core: input is empty")

	// ErrInvalidSymbol indicates a symbol outside the decoder's alphabet.
	ErrInvalidSymbol = errors.New("core: invalid symbol")

	// ErrChecksumMismatch indicates a well-formed sequence whose weighted sum is not 0 mod 10.
	ErrChecksumMismatch = errors.New("core: checksum mismatch")
)

// SymbolError reports the first symbol, scanning right to left, that the
// decoder rejected. Pos is the index from the left of the input.
type SymbolError struct {
	Pos    int
	Symbol byte
}

// Error implements error.
func (e *SymbolError) Error() string {
	return fmt.Sprintf("core: invalid symbol %q at position %d", e.Symbol, e.Pos)
}

// Unwrap lets errors.Is match ErrInvalidSymbol.
func (e *SymbolError) Unwrap() error {
	return ErrInvalidSymbol
}

// Decoder maps one input byte to its contribution to the Luhn sum.
//
// Decode must return a value in [0, 9] and ok=true for symbols of the
// alphabet, and ok=false for everything else. Implementations are expected
// to be stateless; the engines use zero-size struct types.
type Decoder interface {
	Decode(b byte) (v uint8, ok bool)
}

// Array is the set of fixed-length byte arrays accepted by the *Array
// operations of the engines.
//
// Go cannot abstract over an array's length, so the set lists every width
// from 1 to 32 bytes. That covers PANs (up to 19), IMEI (15), ISIN (12)
// and NSIN/SIN (9) with room to spare. Every width has its own GC shape,
// so each instantiation is compiled with a constant length.
type Array interface {
	~[1]byte | ~[2]byte | ~[3]byte | ~[4]byte |
		~[5]byte | ~[6]byte | ~[7]byte | ~[8]byte |
		~[9]byte | ~[10]byte | ~[11]byte | ~[12]byte |
		~[13]byte | ~[14]byte | ~[15]byte | ~[16]byte |
		~[17]byte | ~[18]byte | ~[19]byte | ~[20]byte |
		~[21]byte | ~[22]byte | ~[23]byte | ~[24]byte |
		~[25]byte | ~[26]byte | ~[27]byte | ~[28]byte |
		~[29]byte | ~[30]byte | ~[31]byte | ~[32]byte
}

// Sequence is any read-only run of bytes the transform can walk:
// a slice, a string or a fixed-length array.
type Sequence interface {
	~[]byte | ~string | Array
}
