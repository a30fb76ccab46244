// Package checker runs the Luhn engines over batches of user input for the
// luhn command. It owns the concerns the library leaves to callers:
// choosing an engine, skipping separator bytes and reporting why an input
// was rejected.
package checker

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/luhn/alphanum"
	"github.com/katalvlaran/luhn/core"
	"github.com/katalvlaran/luhn/decimal"
	"github.com/katalvlaran/luhn/mixer"
)

// ErrSkipOverlap indicates a skip byte that belongs to the scheme's alphabet.
var ErrSkipOverlap = errors.New("checker: skip set overlaps the alphabet")

// Result is the outcome of one Validate or Checksum call.
type Result struct {
	Input string
	// Valid is true when the input passed (Validate) or a digit was derived (Checksum).
	Valid bool
	// Digit is the derived ASCII check digit; zero for Validate.
	Digit byte
	// Err explains a false Valid.
	Err error
}

// Checker validates inputs and derives check digits under one Scheme.
// It holds no per-call state and is safe for concurrent use.
type Checker struct {
	scheme Scheme
	skip   [256]bool
	skips  bool
	log    zerolog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithSkip makes every byte of chars invisible to the check, so formatted
// input such as "4111 1111 1111 1111" can be checked as is.
func WithSkip(chars string) Option {
	return func(c *Checker) {
		for i := 0; i < len(chars); i++ {
			c.skip[chars[i]] = true
			c.skips = true
		}
	}
}

// WithLogger installs a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Checker) {
		c.log = l
	}
}

// New builds a Checker for scheme. It fails when a skip byte is itself a
// symbol of the scheme, since skipping it would silently change the number.
func New(scheme Scheme, opts ...Option) (*Checker, error) {
	if scheme < Decimal || scheme > Base36 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownScheme, scheme)
	}
	c := &Checker{scheme: scheme, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	for b := 0; b < len(c.skip); b++ {
		if c.skip[b] && c.accepts(byte(b)) {
			return nil, fmt.Errorf("%w: %q is a %s symbol", ErrSkipOverlap, byte(b), scheme)
		}
	}

	return c, nil
}

// Scheme returns the scheme the Checker was built for.
func (c *Checker) Scheme() Scheme {
	return c.scheme
}

func (c *Checker) accepts(b byte) bool {
	switch c.scheme {
	case Decimal:
		_, ok := decimal.Decoder{}.Decode(b)
		return ok
	default:
		_, ok := alphanum.Decoder{}.Decode(b)
		return ok
	}
}

// Validate checks input, check digit included.
func (c *Checker) Validate(input string) Result {
	var err error
	if c.streamed() {
		var m mixer.Mixer
		if m, err = c.feed(input); err == nil {
			switch {
			case m.Len() == 0:
				err = core.ErrEmptyInput
			case !m.Valid():
				err = core.ErrChecksumMismatch
			}
		}
	} else {
		err = c.verify(input)
	}

	res := Result{Input: input, Valid: err == nil, Err: err}
	c.log.Debug().
		Str("scheme", c.scheme.String()).
		Str("input", input).
		Bool("valid", res.Valid).
		AnErr("reason", err).
		Msg("validate")

	return res
}

// Checksum derives the check digit for body.
func (c *Checker) Checksum(body string) Result {
	var (
		digit byte
		err   error
	)
	if c.streamed() {
		var m mixer.Mixer
		if m, err = c.feed(body); err == nil {
			var ok bool
			if digit, ok = m.Checksum(); !ok {
				err = core.ErrEmptyInput
			}
		}
	} else {
		digit, err = c.compute(body)
	}

	res := Result{Input: body, Valid: err == nil, Digit: digit, Err: err}
	c.log.Debug().
		Str("scheme", c.scheme.String()).
		Str("input", body).
		Bool("ok", res.Valid).
		AnErr("reason", err).
		Msg("checksum")

	return res
}

// streamed reports whether input must go through a Mixer: base36 always
// does, the other schemes only when separators have to be skipped.
func (c *Checker) streamed() bool {
	return c.scheme == Base36 || c.skips
}

// feed pushes every non-skipped byte of s into a fresh Mixer.
func (c *Checker) feed(s string) (mixer.Mixer, error) {
	var m mixer.Mixer
	for i := 0; i < len(s); i++ {
		b := s[i]
		if c.skip[b] {
			continue
		}
		var err error
		switch c.scheme {
		case Decimal:
			err = m.PushSymbol(b, decimal.Decoder{})
		case Alphanum:
			err = m.PushSymbol(b, alphanum.Decoder{})
		default:
			err = m.PushBase36(b)
		}
		if err != nil {
			return m, &core.SymbolError{Pos: i, Symbol: b}
		}
	}

	return m, nil
}

func (c *Checker) verify(s string) error {
	if c.scheme == Alphanum {
		return core.Verify(s, alphanum.Decoder{})
	}

	return core.Verify(s, decimal.Decoder{})
}

func (c *Checker) compute(s string) (byte, error) {
	if c.scheme == Alphanum {
		return core.Compute(s, alphanum.Decoder{})
	}

	return core.Compute(s, decimal.Decoder{})
}
