package poseidon254

import (
	"fmt"
	"math/big"

	"github.com/vocdoni/poseidon254/internal/params"
)

// permutation runs the Poseidon round schedule for one parameter set. It
// owns the scratch row used by the mixing layer, so it is not safe for
// concurrent use.
type permutation[T any, PT Element[T]] struct {
	params  *Parameters[T]
	alpha   *big.Int
	scratch []T
}

func newPermutation[T any, PT Element[T]](p *Parameters[T]) *permutation[T, PT] {
	return &permutation[T, PT]{
		params:  p,
		alpha:   new(big.Int).SetUint64(p.Alpha),
		scratch: make([]T, p.Width),
	}
}

// Permute applies the Poseidon permutation described by p to state in place.
// The state must hold exactly p.Width elements.
func Permute[T any, PT Element[T]](p *Parameters[T], state []T) error {
	if err := params.Validate(p); err != nil {
		return err
	}
	if len(state) != p.Width {
		return fmt.Errorf("%w: state has %d elements, parameters expect %d", ErrInvalidWidth, len(state), p.Width)
	}
	newPermutation[T, PT](p).permute(state)
	return nil
}

// permute mutates the state in place. Every round adds the round constants,
// applies the S-box and multiplies by the MDS matrix, in that order.
func (p *permutation[T, PT]) permute(state []T) {
	rF := p.params.FullRounds / 2
	partialEnd := rF + p.params.PartialRounds
	all := p.params.Rounds()

	// First half of full rounds.
	for r := 0; r < rF; r++ {
		p.addArkRow(state, r)
		p.fullSBox(state)
		p.mixLayer(state)
	}

	// Partial rounds.
	for r := rF; r < partialEnd; r++ {
		p.addArkRow(state, r)
		p.sbox(&state[0])
		p.mixLayer(state)
	}

	// Second half of full rounds.
	for r := partialEnd; r < all; r++ {
		p.addArkRow(state, r)
		p.fullSBox(state)
		p.mixLayer(state)
	}
}

func (p *permutation[T, PT]) addArkRow(state []T, row int) {
	offset := row * p.params.Width
	for i := range state {
		PT(&state[i]).Add(&state[i], &p.params.ARK[offset+i])
	}
}

func (p *permutation[T, PT]) fullSBox(state []T) {
	for i := range state {
		p.sbox(&state[i])
	}
}

func (p *permutation[T, PT]) sbox(x *T) {
	if p.params.Alpha == 5 {
		exp5[T, PT](x)
		return
	}
	PT(x).Exp(*x, p.alpha)
}

func (p *permutation[T, PT]) mixLayer(state []T) {
	var prod T
	for i, row := range p.params.MDS {
		sum := &p.scratch[i]
		PT(sum).SetZero()
		for j := range row {
			PT(&prod).Mul(&row[j], &state[j])
			PT(sum).Add(sum, &prod)
		}
	}
	copy(state, p.scratch)
}

func exp5[T any, PT Element[T]](x *T) {
	var x2, x4 T
	PT(&x2).Square(x)
	PT(&x4).Square(&x2)
	PT(x).Mul(&x4, x)
}
