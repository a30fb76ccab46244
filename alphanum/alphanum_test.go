package alphanum_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/luhn/alphanum"
	"github.com/katalvlaran/luhn/core"
)

// valid are ISINs whose check digit also satisfies the fold-mod-10 rule.
var valid = []string{
	"US5949181045", // Microsoft
	"US0378331005", // Apple
	"IE00B4BNMY34", // Accenture
	"US0231351067", // Amazon
}

// bodies are ISIN bodies (check digit dropped) with the digit this engine derives.
var bodies = map[string]byte{
	"US594918104": '5',
	"US38259P508": '7',
	"BMG491BT108": '9',
	"IE00B4BNMY3": '4',
	"US64110L106": '6',
	"CH003124012": '9',
	"KR4101R6000": '2',
	"KR4205QB290": '1',
}

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// bump moves a symbol one step along its decoded value, wrapping 9 to 0
// for digits and moving letters to the next letter.
func bump(c byte) byte {
	switch {
	case c == '9':
		return '0'
	case c == 'Z':
		return 'A' // Z folds to 5, A to 0; still a change
	default:
		return c + 1
	}
}

// TestDecoder checks the folding of every letter.
func TestDecoder(t *testing.T) {
	var d alphanum.Decoder
	for i := 0; i < len(alphabet); i++ {
		v, ok := d.Decode(alphabet[i])
		require.True(t, ok, "%q", alphabet[i])
		assert.Equal(t, uint8(i%10), v, "%q", alphabet[i])
	}
	for _, b := range []byte{'a', 'z', ' ', '-', '/', ':', '@', '[', 0, 0xff} {
		_, ok := d.Decode(b)
		assert.False(t, ok, "%q", b)
	}
}

// TestValid_KnownISINs accepts the ISINs that fold cleanly in every shape.
func TestValid_KnownISINs(t *testing.T) {
	for _, s := range valid {
		assert.True(t, alphanum.Valid([]byte(s)), s)
		assert.True(t, alphanum.ValidString(s), s)
		assert.True(t, alphanum.ValidArray([12]byte([]byte(s))), s)
		assert.NoError(t, alphanum.Verify([]byte(s)), s)
	}
}

// TestValid_MutatedCheckDigit rejects each known ISIN with any other check digit.
func TestValid_MutatedCheckDigit(t *testing.T) {
	for _, s := range valid {
		b := []byte(s)
		last := b[len(b)-1]
		for c := byte('0'); c <= '9'; c++ {
			if c == last {
				continue
			}
			b[len(b)-1] = c
			assert.False(t, alphanum.Valid(b), "%s", b)
		}
	}
}

// TestValid_SingleSymbolChange bumps every position of every known ISIN.
func TestValid_SingleSymbolChange(t *testing.T) {
	for _, s := range valid {
		for i := range s {
			b := []byte(s)
			b[i] = bump(b[i])
			assert.False(t, alphanum.Valid(b), "%s with position %d bumped", s, i)
		}
	}
}

// TestChecksum_Bodies derives the expected digit in every shape.
func TestChecksum_Bodies(t *testing.T) {
	for body, want := range bodies {
		got, ok := alphanum.Checksum([]byte(body))
		require.True(t, ok, body)
		assert.Equal(t, want, got, body)

		got, ok = alphanum.ChecksumString(body)
		require.True(t, ok, body)
		assert.Equal(t, want, got, body)

		got, ok = alphanum.ChecksumArray([11]byte([]byte(body)))
		require.True(t, ok, body)
		assert.Equal(t, want, got, body)

		got, err := alphanum.Compute([]byte(body))
		require.NoError(t, err, body)
		assert.Equal(t, want, got, body)

		assert.True(t, alphanum.ValidString(body+string(want)), body)
	}
}

// TestSingleSymbol confirms 'A' folds to 0 and stands alone as a valid sequence.
func TestSingleSymbol(t *testing.T) {
	assert.True(t, alphanum.ValidString("A"))
	assert.True(t, alphanum.ValidString("K"))
	assert.True(t, alphanum.ValidString("0"))
	assert.False(t, alphanum.ValidString("B"))
	assert.False(t, alphanum.ValidArray([1]byte{'Z'}))
}

// TestRejectsForeignSymbols covers lowercase, punctuation and empty input.
func TestRejectsForeignSymbols(t *testing.T) {
	for _, s := range []string{"us5949181045", "banana", "?????????", "US 5949181045", "US5949181045\n"} {
		assert.False(t, alphanum.ValidString(s), "%q", s)
		_, ok := alphanum.ChecksumString(s)
		assert.False(t, ok, "%q", s)
		assert.ErrorIs(t, alphanum.Verify([]byte(s)), core.ErrInvalidSymbol, "%q", s)
	}

	assert.False(t, alphanum.Valid(nil))
	_, ok := alphanum.Checksum(nil)
	assert.False(t, ok)
	assert.ErrorIs(t, alphanum.Verify(nil), core.ErrEmptyInput)
	_, err := alphanum.Compute([]byte{})
	assert.ErrorIs(t, err, core.ErrEmptyInput)
}

// TestAgreesWithDecimalOnDigits ensures digit-only input behaves like the decimal engine.
func TestAgreesWithDecimalOnDigits(t *testing.T) {
	for _, s := range []string{"4111111111111111", "4111111111111121", "378282246310005", "0", "1"} {
		assert.Equal(t, core.Valid(s, digitsOnly{}), alphanum.ValidString(s), s)
	}
}

type digitsOnly struct{}

func (digitsOnly) Decode(b byte) (uint8, bool) {
	if b < '0' || b > '9' {
		return 0, false
	}

	return b - '0', true
}

// TestRoundTrip appends the computed digit to random alphanumeric bodies.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 500; n++ {
		body := make([]byte, 1+rng.Intn(20))
		for i := range body {
			body[i] = alphabet[rng.Intn(len(alphabet))]
		}
		d, ok := alphanum.Checksum(body)
		require.True(t, ok)
		assert.True(t, alphanum.Valid(append(body, d)), "%s + %c", body, d)
	}
}

// TestZeroAllocs pins the no-heap contract.
func TestZeroAllocs(t *testing.T) {
	s := []byte("US5949181045")
	a := [12]byte(s)
	allocs := testing.AllocsPerRun(100, func() {
		_ = alphanum.Valid(s)
		_ = alphanum.ValidArray(a)
		_ = alphanum.ValidString("US5949181045")
		_, _ = alphanum.Checksum(s[:11])
	})
	assert.Zero(t, allocs)
}
