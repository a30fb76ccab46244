package decimal_test

import (
	"testing"

	"github.com/katalvlaran/luhn/decimal"
)

// BenchmarkValid validates a Visa test number held in a slice.
func BenchmarkValid(b *testing.B) {
	visa := []byte("4111111111111111")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = decimal.Valid(visa)
	}
}

// BenchmarkValidArray validates the same number as a [16]byte.
func BenchmarkValidArray(b *testing.B) {
	visa := [16]byte([]byte("4111111111111111"))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = decimal.ValidArray(visa)
	}
}

// BenchmarkChecksum derives the check digit of a 15-digit body.
func BenchmarkChecksum(b *testing.B) {
	body := []byte("401288888888188")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = decimal.Checksum(body)
	}
}
