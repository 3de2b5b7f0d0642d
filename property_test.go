package poseidon254

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Slices of 31 bytes always encode values below the BN254 modulus.
func genInput() gopter.Gen {
	return gen.SliceOfN(31, gen.UInt8())
}

func TestHashProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	h := mustCircom(t, 2)

	properties.Property("hashing is deterministic", prop.ForAll(
		func(a, b []byte) bool {
			first, err := h.HashBytesBE(a, b)
			if err != nil {
				return false
			}
			second, err := h.HashBytesBE(a, b)
			return err == nil && bytes.Equal(first, second)
		},
		genInput(), genInput(),
	))

	properties.Property("little endian is the mirror of big endian", prop.ForAll(
		func(a, b []byte) bool {
			be, err := h.HashBytesBE(a, b)
			if err != nil {
				return false
			}
			le, err := h.HashBytesLE(reversed(a), reversed(b))
			return err == nil && bytes.Equal(le, reversed(be))
		},
		genInput(), genInput(),
	))

	properties.Property("zero padding does not change the digest", prop.ForAll(
		func(a, b []byte, cut, pad int) bool {
			a = a[:cut]
			pad %= 32 - cut + 1
			ref, err := h.HashBytesBE(a, b)
			if err != nil {
				return false
			}
			be, err := h.HashBytesBE(append(make([]byte, pad), a...), b)
			if err != nil || !bytes.Equal(be, ref) {
				return false
			}
			le, err := h.HashBytesLE(append(reversed(a), make([]byte, pad)...), reversed(b))
			return err == nil && bytes.Equal(le, reversed(ref))
		},
		genInput(), genInput(), gen.IntRange(1, 31), gen.IntRange(0, 32),
	))

	properties.Property("inputs are not commutative", prop.ForAll(
		func(a, b []byte) bool {
			if bytes.Equal(a, b) {
				return true
			}
			ab, err := h.HashBytesBE(a, b)
			if err != nil {
				return false
			}
			ba, err := h.HashBytesBE(b, a)
			return err == nil && !bytes.Equal(ab, ba)
		},
		genInput(), genInput(),
	))

	properties.TestingRun(t)
}
