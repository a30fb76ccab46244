// Package alphanum validates and computes Luhn check digits over ASCII
// digits and uppercase Latin letters, one position per symbol.
//
// Digits decode to their value. Letters take their base-36 value
// ('A'=10 .. 'Z'=35) folded mod 10, so 'A' and 'K' and 'U' all count as 0,
// 'B' as 1, and so on up to 'Z' as 5. Lowercase letters and every other
// byte are rejected. The check digit produced is always a decimal digit.
//
// This is not the ISO 6166 ISIN rule, which expands each letter into two
// digits before running Luhn; see package base36 for that.
package alphanum

import "github.com/katalvlaran/luhn/core"

// Decoder decodes '0'..'9' to 0..9 and 'A'..'Z' to (10..35) mod 10.
type Decoder struct{}

// Decode implements core.Decoder.
func (Decoder) Decode(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'A' && b <= 'Z':
		return (b - 'A' + 10) % 10, true
	default:
		return 0, false
	}
}

// Valid reports whether seq ends with a correct Luhn check digit.
func Valid(seq []byte) bool {
	return core.Valid(seq, Decoder{})
}

// ValidArray is Valid for a fixed-length array, e.g. a [12]byte ISIN.
func ValidArray[A core.Array](seq A) bool {
	return core.Valid(seq, Decoder{})
}

// ValidString is Valid for a string.
func ValidString(seq string) bool {
	return core.Valid(seq, Decoder{})
}

// Checksum returns the ASCII check digit for body.
// ok is false when body is empty or holds a symbol outside 0-9A-Z.
func Checksum(body []byte) (byte, bool) {
	return core.Checksum(body, Decoder{})
}

// ChecksumArray is Checksum for a fixed-length array.
func ChecksumArray[A core.Array](body A) (byte, bool) {
	return core.Checksum(body, Decoder{})
}

// ChecksumString is Checksum for a string.
func ChecksumString(body string) (byte, bool) {
	return core.Checksum(body, Decoder{})
}

// Verify returns nil when seq is valid, otherwise the reason it is not.
func Verify(seq []byte) error {
	return core.Verify(seq, Decoder{})
}

// Compute returns the check digit for body or the reason none exists.
func Compute(body []byte) (byte, error) {
	return core.Compute(body, Decoder{})
}
