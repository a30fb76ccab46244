package checker

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme selects which engine checks the input.
type Scheme int

const (
	// Decimal accepts '0'..'9' only.
	Decimal Scheme = iota
	// Alphanum accepts '0'..'9' and 'A'..'Z', letters folded mod 10.
	Alphanum
	// Base36 accepts '0'..'9' and 'A'..'Z', letters expanded to two digits (ISIN rule).
	Base36
)

// ErrUnknownScheme indicates a scheme name that is not one of Schemes.
var ErrUnknownScheme = errors.New("checker: unknown scheme")

// Schemes lists the accepted scheme names in declaration order.
var Schemes = []string{"decimal", "alphanum", "base36"}

// String returns the scheme's configuration name.
func (s Scheme) String() string {
	if s < 0 || int(s) >= len(Schemes) {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}

	return Schemes[s]
}

// ParseScheme maps a case-insensitive name to its Scheme.
func ParseScheme(name string) (Scheme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range Schemes {
		if s == n {
			return Scheme(i), nil
		}
	}

	return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnknownScheme, name, strings.Join(Schemes, ", "))
}
