package instance

import (
	"fmt"
	"math/big"
)

// ErrMalformedToken wraps a single input token that big.Rat could not
// parse as a rational number (p/q, a decimal, or a bare integer).
type ErrMalformedToken struct {
	Literal string
}

func (e *ErrMalformedToken) Error() string {
	return fmt.Sprintf("instance: malformed numeric token %q", e.Literal)
}

// ParseRat parses a single whitespace-delimited token as a rational:
// "p/q", a decimal like "1.25", or a bare integer.
func ParseRat(token string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(token)
	if !ok {
		return nil, &ErrMalformedToken{Literal: token}
	}
	return r, nil
}

// ParseWeights parses a sequence of whitespace-delimited tokens into
// rational weights, in order. Returns ErrEmptyWeights if tokens is empty.
func ParseWeights(tokens []string) ([]*big.Rat, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyWeights
	}

	out := make([]*big.Rat, len(tokens))
	for i, tok := range tokens {
		r, err := ParseRat(tok)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
