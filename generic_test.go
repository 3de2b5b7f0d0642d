package poseidon254

import (
	"errors"
	"math/big"
	"testing"

	bls "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// syntheticParams builds a deterministic parameter set over the BLS12-377
// scalar field. The MDS matrix is the Cauchy matrix 1/(x_i + y_j) with
// x_i = i and y_j = width + j + 1.
func syntheticParams(t *testing.T, width, fullRounds, partialRounds int, alpha uint64) *Parameters[bls.Element] {
	t.Helper()
	ark := make([]bls.Element, (fullRounds+partialRounds)*width)
	for i := range ark {
		ark[i].SetUint64(uint64(i)*7919 + 3)
	}
	mds := make([][]bls.Element, width)
	for i := range mds {
		mds[i] = make([]bls.Element, width)
		for j := range mds[i] {
			var x bls.Element
			x.SetUint64(uint64(i + width + j + 1))
			mds[i][j].Inverse(&x)
		}
	}
	p, err := NewParameters(ark, mds, fullRounds, partialRounds, width, alpha, bls.Modulus())
	if err != nil {
		t.Fatalf("synthetic parameters: %v", err)
	}
	return p
}

// referencePermute runs the round schedule on big integers.
func referencePermute(p *Parameters[bls.Element], state []*big.Int) []*big.Int {
	mod := p.Modulus
	ark := make([]*big.Int, len(p.ARK))
	for i := range p.ARK {
		ark[i] = p.ARK[i].BigInt(new(big.Int))
	}
	mds := make([][]*big.Int, p.Width)
	for i, row := range p.MDS {
		mds[i] = make([]*big.Int, p.Width)
		for j := range row {
			mds[i][j] = row[j].BigInt(new(big.Int))
		}
	}
	alpha := new(big.Int).SetUint64(p.Alpha)
	rF := p.FullRounds / 2

	for r := 0; r < p.Rounds(); r++ {
		for i := range state {
			state[i].Add(state[i], ark[r*p.Width+i])
			state[i].Mod(state[i], mod)
		}
		full := r < rF || r >= rF+p.PartialRounds
		for i := range state {
			if full || i == 0 {
				state[i].Exp(state[i], alpha, mod)
			}
		}
		next := make([]*big.Int, p.Width)
		for i := range mds {
			acc := new(big.Int)
			for j := range mds[i] {
				acc.Add(acc, new(big.Int).Mul(mds[i][j], state[j]))
			}
			next[i] = acc.Mod(acc, mod)
		}
		state = next
	}
	return state
}

func TestGenericPermutationMatchesReference(t *testing.T) {
	cases := []struct {
		name          string
		width         int
		fullRounds    int
		partialRounds int
		alpha         uint64
	}{
		{"x5-width3", 3, 8, 22, 5},
		{"x5-width5", 5, 8, 31, 5},
		{"x17-width3", 3, 8, 31, 17},
		{"x3-width2", 2, 4, 0, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := syntheticParams(t, tc.width, tc.fullRounds, tc.partialRounds, tc.alpha)

			state := make([]bls.Element, tc.width)
			ref := make([]*big.Int, tc.width)
			for i := range state {
				state[i].SetUint64(uint64(i*i + 1))
				ref[i] = big.NewInt(int64(i*i + 1))
			}

			if err := Permute(p, state); err != nil {
				t.Fatal(err)
			}
			ref = referencePermute(p, ref)
			for i := range state {
				if got := state[i].BigInt(new(big.Int)); got.Cmp(ref[i]) != 0 {
					t.Fatalf("state[%d] mismatch\nexpected %s\ngot      %s", i, ref[i], got)
				}
			}
		})
	}
}

func TestGenericHasher(t *testing.T) {
	p := syntheticParams(t, 4, 8, 31, 17)
	h, err := New(p, WithDomainTag(big.NewInt(3)))
	if err != nil {
		t.Fatal(err)
	}

	inputs := make([]bls.Element, 3)
	ref := []*big.Int{big.NewInt(3)}
	for i := range inputs {
		inputs[i].SetUint64(uint64(100 + i))
		ref = append(ref, big.NewInt(int64(100+i)))
	}

	digest, err := h.Hash(inputs)
	if err != nil {
		t.Fatal(err)
	}
	want := referencePermute(p, ref)[0]
	if got := digest.BigInt(new(big.Int)); got.Cmp(want) != 0 {
		t.Fatalf("expected %s\ngot      %s", want, got)
	}

	// BLS12-377 elements serialize on 32 bytes as well.
	raw := make([][]byte, len(inputs))
	for i := range inputs {
		b := inputs[i].Bytes()
		raw[i] = b[:]
	}
	out, err := h.HashBytesBE(raw...)
	if err != nil {
		t.Fatal(err)
	}
	if got := new(big.Int).SetBytes(out); got.Cmp(want) != 0 {
		t.Fatalf("byte digest mismatch: %s", got)
	}

	if _, err := h.Hash(inputs[:2]); !errors.Is(err, ErrInvalidNumberOfInputs) {
		t.Fatalf("expected ErrInvalidNumberOfInputs, got %v", err)
	}
}

func TestPermuteErrors(t *testing.T) {
	p := syntheticParams(t, 3, 8, 10, 5)
	if err := Permute(p, make([]bls.Element, 2)); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
	if err := Permute[bls.Element](nil, make([]bls.Element, 3)); !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("expected ErrInvalidParameters, got %v", err)
	}
}

func TestCircomPermuteMatchesHasher(t *testing.T) {
	p, err := CircomParameters(2)
	if err != nil {
		t.Fatal(err)
	}
	var one, two fr.Element
	one.SetUint64(1)
	two.SetUint64(2)
	state := []fr.Element{{}, one, two}
	if err := Permute(p, state); err != nil {
		t.Fatal(err)
	}
	want := mustElement(t, "0x115cc0f5e7d690413df64c6b9662e9cf2a3617f2743245519e19607a4417189a")
	if !state[0].Equal(&want) {
		t.Fatalf("expected %s\ngot      %s", want.String(), state[0].String())
	}
}

func TestNewParametersRejectsMalformed(t *testing.T) {
	good := syntheticParams(t, 3, 8, 10, 5)
	cases := []struct {
		name string
		fn   func() error
	}{
		{"short ark", func() error {
			_, err := NewParameters(good.ARK[1:], good.MDS, 8, 10, 3, 5, bls.Modulus())
			return err
		}},
		{"odd full rounds", func() error {
			_, err := NewParameters(good.ARK, good.MDS, 7, 11, 3, 5, bls.Modulus())
			return err
		}},
		{"even alpha", func() error {
			_, err := NewParameters(good.ARK, good.MDS, 8, 10, 3, 4, bls.Modulus())
			return err
		}},
		{"width mismatch", func() error {
			_, err := NewParameters(good.ARK, good.MDS[:2], 8, 10, 3, 5, bls.Modulus())
			return err
		}},
		{"nil modulus", func() error {
			_, err := NewParameters(good.ARK, good.MDS, 8, 10, 3, 5, nil)
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.fn(); !errors.Is(err, ErrInvalidParameters) {
				t.Fatalf("expected ErrInvalidParameters, got %v", err)
			}
		})
	}
}
