package poseidon254

import (
	"fmt"
	"slices"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// MaxMultiHashInputs bounds the number of elements MultiHash accepts.
const MaxMultiHashInputs = 256

// MultiHash hashes up to MaxMultiHashInputs elements by chunking them with
// the highest available arity (MaxInputs) and hashing the chunk digests
// again until a single chunk remains. The options, including the domain
// tag, apply to every chunk. For at most MaxInputs elements the result is
// the plain circomlib hash.
func MultiHash(inputs []fr.Element, opts ...Option) (fr.Element, error) {
	if len(inputs) == 0 {
		return fr.Element{}, fmt.Errorf("%w: need at least 1 input", ErrInvalidNumberOfInputs)
	}
	if len(inputs) > MaxMultiHashInputs {
		return fr.Element{}, fmt.Errorf("%w: too many inputs (%d > %d)", ErrInvalidNumberOfInputs, len(inputs), MaxMultiHashInputs)
	}

	hashers := make(map[int]*CircomHasher)
	hashChunk := func(chunk []fr.Element) (fr.Element, error) {
		h, ok := hashers[len(chunk)]
		if !ok {
			var err error
			if h, err = NewCircom(len(chunk), opts...); err != nil {
				return fr.Element{}, err
			}
			hashers[len(chunk)] = h
		}
		return h.Hash(chunk)
	}

	current := slices.Clone(inputs)
	for len(current) > MaxInputs {
		next := make([]fr.Element, 0, (len(current)+MaxInputs-1)/MaxInputs)
		for i := 0; i < len(current); i += MaxInputs {
			end := min(i+MaxInputs, len(current))
			h, err := hashChunk(current[i:end])
			if err != nil {
				return fr.Element{}, err
			}
			next = append(next, h)
		}
		current = next
	}

	return hashChunk(current)
}
