package core

// Luhn transform
//
// Algorithm Outline:
//  1. Let n = len(seq). Walk i = n-1 .. 0 (right to left).
//  2. Decode seq[i] with the Decoder; on failure abort the whole walk.
//  3. If the current position has doubled parity, replace v with Double(v).
//  4. sum += v; flip the parity.
//  5. Validation starts with undoubled parity (the rightmost symbol is the
//     check digit) and accepts iff sum%10 == 0.
//     Check digit computation starts with doubled parity (the check digit
//     is not there yet) and returns CheckDigit(sum).
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)

// Double returns the Luhn fold of a doubled digit: 2v, minus 9 when 2v > 9.
// The result is the digit sum of 2v for v in [0, 9].
func Double(v uint8) uint8 {
	v <<= 1
	if v > 9 {
		v -= 9
	}

	return v
}

// CheckDigit turns a Luhn sum of a body into its ASCII check digit.
func CheckDigit(sum int) byte {
	return '0' + byte((10-sum%10)%10)
}

// walk folds seq right to left. It returns the weighted sum and bad=-1, or
// the index of the rightmost undecodable symbol.
func walk[S Sequence, D Decoder](seq S, d D, double bool) (sum, bad int) {
	for i := len(seq) - 1; i >= 0; i-- {
		v, ok := d.Decode(seq[i])
		if !ok {
			return 0, i
		}
		if double {
			v = Double(v)
		}
		sum += int(v)
		double = !double
	}

	return sum, -1
}

// Valid reports whether seq, including its trailing check digit, passes the
// Luhn check under decoder d.
//
// An empty sequence is never valid. A single symbol is treated as a bare
// check digit, so it is valid only when it decodes to 0.
func Valid[S Sequence, D Decoder](seq S, d D) bool {
	if len(seq) == 0 {
		return false
	}
	sum, bad := walk(seq, d, false)

	return bad < 0 && sum%10 == 0
}

// Checksum computes the ASCII check digit that makes body+digit valid.
// ok is false for an empty body or when any symbol fails to decode.
func Checksum[S Sequence, D Decoder](body S, d D) (digit byte, ok bool) {
	if len(body) == 0 {
		return 0, false
	}
	sum, bad := walk(body, d, true)
	if bad >= 0 {
		return 0, false
	}

	return CheckDigit(sum), true
}

// Verify is Valid with the reason for rejection.
// It returns nil, ErrEmptyInput, a *SymbolError or ErrChecksumMismatch.
func Verify[S Sequence, D Decoder](seq S, d D) error {
	if len(seq) == 0 {
		return ErrEmptyInput
	}
	sum, bad := walk(seq, d, false)
	if bad >= 0 {
		return &SymbolError{Pos: bad, Symbol: seq[bad]}
	}
	if sum%10 != 0 {
		return ErrChecksumMismatch
	}

	return nil
}

// Compute is Checksum with the reason for failure.
// It returns ErrEmptyInput or a *SymbolError when no digit can be derived.
func Compute[S Sequence, D Decoder](body S, d D) (byte, error) {
	if len(body) == 0 {
		return 0, ErrEmptyInput
	}
	sum, bad := walk(body, d, true)
	if bad >= 0 {
		return 0, &SymbolError{Pos: bad, Symbol: body[bad]}
	}

	return CheckDigit(sum), nil
}
