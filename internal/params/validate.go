package params

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("poseidon254: invalid parameters")

// Validate checks basic shape and sizes of the parameter set.
func Validate[T any](p *Parameters[T]) error {
	if p == nil {
		return fmt.Errorf("%w: nil parameter set", ErrInvalid)
	}
	if p.Width < 2 {
		return fmt.Errorf("%w: width must be at least 2, got %d", ErrInvalid, p.Width)
	}
	if p.FullRounds <= 0 || p.FullRounds%2 != 0 {
		return fmt.Errorf("%w: full rounds must be even and positive, got %d", ErrInvalid, p.FullRounds)
	}
	if p.PartialRounds < 0 {
		return fmt.Errorf("%w: negative partial rounds %d", ErrInvalid, p.PartialRounds)
	}
	if p.Alpha < 3 || p.Alpha%2 == 0 {
		return fmt.Errorf("%w: alpha must be odd and at least 3, got %d", ErrInvalid, p.Alpha)
	}
	if p.Modulus == nil || p.Modulus.BitLen() < 2 {
		return fmt.Errorf("%w: missing modulus", ErrInvalid)
	}
	if expected := p.Rounds() * p.Width; len(p.ARK) != expected {
		return fmt.Errorf("%w: ark length mismatch (%d != %d)", ErrInvalid, len(p.ARK), expected)
	}
	if len(p.MDS) != p.Width {
		return fmt.Errorf("%w: mds has %d rows, want %d", ErrInvalid, len(p.MDS), p.Width)
	}
	for i, row := range p.MDS {
		if len(row) != p.Width {
			return fmt.Errorf("%w: mds row %d has %d columns, want %d", ErrInvalid, i, len(row), p.Width)
		}
	}
	return nil
}
