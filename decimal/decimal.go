package decimal

import "github.com/katalvlaran/luhn/core"

// Decoder decodes ASCII '0'..'9' to 0..9 and rejects every other byte.
type Decoder struct{}

// Decode implements core.Decoder.
func (Decoder) Decode(b byte) (uint8, bool) {
	if b < '0' || b > '9' {
		return 0, false
	}

	return b - '0', true
}

// Valid reports whether seq ends with a correct Luhn check digit.
//
//	Valid([]byte("4111111111111111")) // true
//	Valid([]byte("US5949181045"))     // false, not decimal
func Valid(seq []byte) bool {
	return core.Valid(seq, Decoder{})
}

// ValidArray is Valid for a fixed-length array.
func ValidArray[A core.Array](seq A) bool {
	return core.Valid(seq, Decoder{})
}

// ValidString is Valid for a string.
func ValidString(seq string) bool {
	return core.Valid(seq, Decoder{})
}

// Checksum returns the ASCII check digit for body.
// ok is false when body is empty or contains a non-digit.
//
//	Checksum([]byte("401288888888188")) // '1', true
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
