package poseidon254

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/poseidon254/internal/params"
)

const (
	// HashLen is the byte length of a BN254 digest.
	HashLen = fr.Bytes
	// MinWidth and MaxWidth bound the widths of the bundled catalog.
	MinWidth = params.MinWidth
	MaxWidth = params.MaxWidth
	// MaxInputs is the largest arity the bundled catalog supports.
	MaxInputs = MaxWidth - 1
)

// CircomHasher is a Poseidon hasher over the BN254 scalar field.
type CircomHasher = Hasher[fr.Element, *fr.Element]

// CircomParameters returns the circomlib-compatible x^5 parameter set for
// nrInputs inputs (width nrInputs+1) over the BN254 scalar field. Every call
// returns a fresh copy of the constants. The set is locked to ExactArity:
// New rejects any other policy on it with ErrPolicyMismatch.
func CircomParameters(nrInputs int) (*Parameters[fr.Element], error) {
	width := nrInputs + 1
	p, ok := params.BN254X5(width)
	if !ok {
		return nil, &InvalidWidthError{Width: width, MaxLimit: MaxWidth}
	}
	return p, nil
}

// NewCircom returns a hasher producing the same digests as circomlib's
// Poseidon for exactly nrInputs inputs. The catalog only supports the exact
// arity policy.
func NewCircom(nrInputs int, opts ...Option) (*CircomHasher, error) {
	p, err := CircomParameters(nrInputs)
	if err != nil {
		return nil, err
	}
	return New[fr.Element, *fr.Element](p, opts...)
}
