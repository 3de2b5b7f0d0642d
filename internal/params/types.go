package params

import "math/big"

// Parameters bundles all constants needed by the permutation over the prime
// field whose elements have type T.
type Parameters[T any] struct {
	Width         int
	FullRounds    int
	PartialRounds int
	// Alpha is the S-box exponent.
	Alpha uint64

	// ARK holds (FullRounds+PartialRounds)*Width round constants, row by row.
	ARK []T
	// MDS is the Width x Width mixing matrix.
	MDS [][]T

	// Modulus is the prime the constants were generated for.
	Modulus *big.Int

	exactArity bool
}

// ExactArityOnly reports whether the set may only be used with exactly
// Width-1 inputs. Catalog sets are locked this way; NewParameters sets are not.
func (p *Parameters[T]) ExactArityOnly() bool {
	return p.exactArity
}

// Rounds returns the total number of rounds.
func (p *Parameters[T]) Rounds() int {
	return p.FullRounds + p.PartialRounds
}
