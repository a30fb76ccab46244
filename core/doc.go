// Package core provides the shared Luhn transform used by every engine in
// this module: right-to-left digit weighting, the doubled-digit fold and the
// mod-10 reduction, parameterized over a symbol Decoder and an input shape.
//
// 🚀 What is the Luhn transform?
//
//	Walk the symbols from the right. Position 0 is the rightmost symbol.
//	Every symbol at an odd position is doubled, and a doubled value above 9
//	has 9 subtracted (the digit sum of the doubled value). The weighted
//	values are summed; a sequence is valid when the sum is 0 mod 10.
//
//	When computing a check digit the body is walked as if the check digit
//	were already appended, so the body's last symbol sits at an odd
//	position and IS doubled. The check digit is (10 - sum%10) % 10.
//
// ✨ Key features:
//   - one generic algorithm for slices, strings and fixed-size arrays
//     (Sequence / Array constraints); arrays are stenciled per length
//   - pluggable alphabets through the single-method Decoder interface
//   - no heap allocation and no panics on Valid and Checksum
//   - Verify / Compute variants that report why an input was rejected
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/luhn/core"
//
//	ok := core.Valid("4111111111111111", digits{})
//	d, ok := core.Checksum([]byte("37828224631000"), digits{})
//
// Most callers want the engines built on top of core instead:
// decimal (ASCII digits), alphanum (digits and A-Z folded mod 10) and
// base36 (ISIN-style letter expansion).
//
// Complexity:
//
//   - Time:   O(n)
//   - Memory: O(1), nothing escapes to the heap
//
// Errors (Verify / Compute only):
//
//   - ErrEmptyInput       : the sequence has no symbols.
//   - ErrInvalidSymbol    : a symbol is outside the decoder's alphabet;
//     returned as *SymbolError carrying the offending byte and position.
//   - ErrChecksumMismatch : every symbol decoded but the sum is not 0 mod 10.
package core
