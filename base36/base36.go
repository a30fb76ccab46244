// Package base36 validates and computes Luhn check digits the way ISO 6166
// does for ISINs: every letter is first replaced by the two decimal digits
// of its base-36 value ('A'=10 .. 'Z'=35) and Luhn runs over the result.
//
// 🚀 Example:
//
//	US5949181045 expands to 30 28 5949181045 = 30285949181045,
//	which passes the Luhn check.
//
// The expansion shifts the parity of everything left of a letter, so this
// engine and package alphanum disagree on most ISINs that contain a
// letter after the country code (US38259P5089 is valid here, not there).
//
// Accepted symbols are '0'..'9' and 'A'..'Z'. Empty input, or any other
// byte anywhere, makes Valid return false and Checksum return ok=false.
// Nothing is allocated: the expansion is streamed through a mixer.Mixer.
package base36

import (
	"github.com/katalvlaran/luhn/core"
	"github.com/katalvlaran/luhn/mixer"
)

// feed expands seq into a fresh Mixer. ok is false on the first bad symbol.
func feed[S core.Sequence](seq S) (m mixer.Mixer, ok bool) {
	for i := 0; i < len(seq); i++ {
		if err := m.PushBase36(seq[i]); err != nil {
			return m, false
		}
	}

	return m, true
}

func valid[S core.Sequence](seq S) bool {
	m, ok := feed(seq)

	return ok && m.Valid()
}

func checksum[S core.Sequence](body S) (byte, bool) {
	m, ok := feed(body)
	if !ok {
		return 0, false
	}

	return m.Checksum()
}

// Valid reports whether seq, check digit included, passes the ISIN-style check.
//
//	Valid([]byte("US38259P5089")) // true
func Valid(seq []byte) bool {
	return valid(seq)
}

// ValidArray is Valid for a fixed-length array, e.g. a [12]byte ISIN.
func ValidArray[A core.Array](seq A) bool {
	return valid(seq)
}

// ValidString is Valid for a string.
func ValidString(seq string) bool {
	return valid(seq)
}

// Checksum returns the ASCII check digit for body.
//
//	Checksum([]byte("US594918104")) // '5', true
func Checksum(body []byte) (byte, bool) {
	return checksum(body)
}

// ChecksumArray is Checksum for a fixed-length array.
func ChecksumArray[A core.Array](body A) (byte, bool) {
	return checksum(body)
}

// ChecksumString is Checksum for a string.
func ChecksumString(body string) (byte, bool) {
	return checksum(body)
}
