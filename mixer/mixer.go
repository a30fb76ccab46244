// Package mixer accumulates Luhn state one digit at a time.
//
// A Mixer lets callers check input that carries formatting, such as
// "4111 1111 1111 1111" or "4111-1111-1111-1111", without building a
// separator-free copy: skip the separators and Push the digits.
//
//	var m mixer.Mixer
//	for _, c := range []byte("4111 1111 1111 1111") {
//		if c >= '0' && c <= '9' {
//			_ = m.Push(c - '0')
//		}
//	}
//	m.Valid() // true
//
// Parity in Luhn is defined from the rightmost digit, which a stream does
// not know in advance. The Mixer keeps two buckets, one per parity, and
// swaps them on every push; the doubling is applied once at the end.
// Doubling a bucket is 2*sum minus 9 for every digit of 5 or more in it.
//
// The zero value is an empty Mixer ready for use. A Mixer never allocates.
package mixer

import (
	"errors"

	"github.com/katalvlaran/luhn/core"
)

// ErrDigitRange indicates a value above 9 was pushed.
var ErrDigitRange = errors.New("mixer: digit out of range 0..9")

type bucket struct {
	sum  int // plain sum of the digits
	high int // digits >= 5; each one loses 9 when doubled
}

func (b bucket) doubled() int {
	return 2*b.sum - 9*b.high
}

// Mixer holds running Luhn state for a stream of decimal digits.
type Mixer struct {
	next bucket // digits sharing parity with the one that would come next
	last bucket // digits sharing parity with the most recent one
	n    int
}

// Push adds one decimal digit (0..9, not ASCII) to the stream.
// The Mixer is unchanged when ErrDigitRange is returned.
func (m *Mixer) Push(digit uint8) error {
	if digit > 9 {
		return ErrDigitRange
	}
	if digit >= 5 {
		m.next.high++
	}
	m.next.sum += int(digit)
	m.next, m.last = m.last, m.next
	m.n++

	return nil
}

// PushSymbol decodes sym with d and pushes the result.
// It returns core.ErrInvalidSymbol when d rejects sym.
func (m *Mixer) PushSymbol(sym byte, d core.Decoder) error {
	v, ok := d.Decode(sym)
	if !ok {
		return core.ErrInvalidSymbol
	}

	return m.Push(v)
}

// PushBase36 pushes sym in its decimal expansion: a digit pushes itself,
// a letter 'A'..'Z' pushes the two digits of 10..35 ('A' pushes 1 then 0).
// Anything else returns core.ErrInvalidSymbol and leaves the Mixer unchanged.
func (m *Mixer) PushBase36(sym byte) error {
	switch {
	case sym >= '0' && sym <= '9':
		return m.Push(sym - '0')
	case sym >= 'A' && sym <= 'Z':
		v := sym - 'A' + 10
		_ = m.Push(v / 10)

		return m.Push(v % 10)
	default:
		return core.ErrInvalidSymbol
	}
}

// Len returns the number of digits pushed so far.
func (m *Mixer) Len() int {
	return m.n
}

// Reset empties the Mixer.
func (m *Mixer) Reset() {
	*m = Mixer{}
}

// Valid reports whether the pushed digits, the last one being the check
// digit, pass the Luhn check. An empty Mixer is not valid.
func (m *Mixer) Valid() bool {
	if m.n == 0 {
		return false
	}

	return (m.next.doubled()+m.last.sum)%10 == 0
}

// Checksum returns the ASCII check digit that would make the pushed digits
// valid. ok is false when nothing has been pushed.
func (m *Mixer) Checksum() (byte, bool) {
	if m.n == 0 {
		return 0, false
	}

	return core.CheckDigit(m.last.doubled() + m.next.sum), true
}
