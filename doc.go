// Package luhn computes and validates Luhn check digits over ASCII input:
// card numbers, IMEI and SIN on the decimal side, ISIN and NSIN on the
// alphanumeric side.
//
// 🚀 What is luhn?
//
//	A small, zero-allocation, panic-free library that brings together:
//		• decimal : '0'..'9' only
//		• alphanum: '0'..'9' and 'A'..'Z', letters folded mod 10
//		• base36  : '0'..'9' and 'A'..'Z', letters expanded to two digits (ISIN rule)
//		• mixer   : streaming digit accumulator for formatted input
//		• core    : the shared transform, pluggable through a one-method Decoder
//
// ✨ Why choose luhn?
//
//   - Same four operations everywhere: Valid, ValidArray, Checksum, ChecksumArray
//   - Slice, string and fixed-size array inputs, all without allocating
//   - Fails closed: any byte outside the alphabet means invalid, never a guess
//   - Pure Go – no cgo, no dependencies in the library packages
//
// Layout:
//
//	core/    : generic transform, Decoder, Array/Sequence constraints, errors
//	decimal/ : decimal engine
//	alphanum/: alphanumeric engine (fold mod 10)
//	base36/  : ISIN digit-expansion engine
//	mixer/   : one-digit-at-a-time accumulator
//	cmd/luhn : command-line front end
//	examples/: runnable scenarios
//
// Quick example:
//
//	decimal.Valid([]byte("4111111111111111"))  // true
//	decimal.Checksum([]byte("37828224631000")) // '5', true
//	base36.ValidString("US38259P5089")         // true
//
//	go get github.com/katalvlaran/luhn
package luhn
