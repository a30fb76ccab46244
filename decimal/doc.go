// Package decimal validates and computes Luhn check digits over pure ASCII
// decimal input: credit-card numbers, IMEI, SIN and the like.
//
// What:
//
//   - Valid / ValidArray / ValidString: does the number, check digit
//     included, pass the Luhn check?
//   - Checksum / ChecksumArray / ChecksumString: which digit completes
//     the body?
//   - Verify / Compute: the same, with the reason for rejection.
//
// Only '0'..'9' is accepted. Anything else, an ISIN with letters, a space or
// a dash, makes Valid return false and Checksum return ok=false. To check
// formatted input such as "4111 1111 1111 1111" feed the digits through a
// mixer.Mixer instead of building a stripped copy.
//
// The slice, array and string forms are behaviorally identical. The array
// form lets the compiler see the length; the string form avoids a
// []byte conversion. None of them allocate.
//
// Errors (Verify / Compute):
//
//   - core.ErrEmptyInput
//   - core.ErrInvalidSymbol (as *core.SymbolError)
//   - core.ErrChecksumMismatch
package decimal
