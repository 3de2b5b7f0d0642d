package poseidon254

import (
	"fmt"
	"math/big"

	"github.com/vocdoni/poseidon254/internal/params"
)

// Element is the prime field capability the permutation and the byte codec
// are written against. Every gnark-crypto generated field element (for
// instance bn254/fr.Element or bls12-377/fr.Element) satisfies it through
// its pointer type.
type Element[T any] interface {
	*T
	Add(a, b *T) *T
	Mul(a, b *T) *T
	Square(a *T) *T
	Exp(x T, k *big.Int) *T
	SetZero() *T
	Equal(a *T) bool
	SetBigInt(v *big.Int) *T
	BigInt(res *big.Int) *big.Int
}

// Parameters describes one permutation instance: round constants, MDS
// matrix, round counts, width, S-box exponent and the field modulus.
type Parameters[T any] = params.Parameters[T]

// NewParameters bundles and validates a caller supplied parameter set.
func NewParameters[T any](ark []T, mds [][]T, fullRounds, partialRounds, width int, alpha uint64, modulus *big.Int) (*Parameters[T], error) {
	p := &Parameters[T]{
		Width:         width,
		FullRounds:    fullRounds,
		PartialRounds: partialRounds,
		Alpha:         alpha,
		ARK:           ark,
		MDS:           mds,
		Modulus:       modulus,
	}
	if err := params.Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Endianness selects the byte order used by the codec.
type Endianness uint8

const (
	BigEndian Endianness = iota
	LittleEndian
)

func (e Endianness) String() string {
	switch e {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return fmt.Sprintf("Endianness(%d)", uint8(e))
	}
}

// ModulusByteLen returns ceil(bits(modulus)/8), the canonical byte width of
// any element of the field.
func ModulusByteLen(modulus *big.Int) int {
	return (modulus.BitLen() + 7) / 8
}
