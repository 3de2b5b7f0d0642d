package poseidon254

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	iden3 "github.com/iden3/go-iden3-crypto/poseidon"
	"github.com/stretchr/testify/require"
)

func TestMatchesIden3(t *testing.T) {
	for n := 1; n <= MaxInputs; n++ {
		h := mustCircom(t, n)
		for round := 0; round < 4; round++ {
			inputs := make([]fr.Element, n)
			data := make([]*big.Int, n)
			for i := range inputs {
				_, err := inputs[i].SetRandom()
				require.NoError(t, err)
				data[i] = inputs[i].BigInt(new(big.Int))
			}

			want, err := iden3.Hash(data)
			require.NoError(t, err)

			got, err := h.Hash(inputs)
			require.NoError(t, err)
			require.Zero(t, want.Cmp(got.BigInt(new(big.Int))), "%d inputs", n)
		}
	}
}

func TestMatchesIden3Extremes(t *testing.T) {
	modulus := fr.Modulus()
	var d big.Int
	d.Sub(modulus, big.NewInt(1))

	data := make([]*big.Int, 0, 10)
	inputs := make([]fr.Element, 0, 10)
	for i := 0; i < 10; i++ {
		var e fr.Element
		e.SetBigInt(&d)
		data = append(data, new(big.Int).Set(&d))
		inputs = append(inputs, e)
		d.Add(&d, &d).Mod(&d, modulus)
	}

	want, err := iden3.Hash(data)
	require.NoError(t, err)
	got, err := Hash(inputs...)
	require.NoError(t, err)
	require.Zero(t, want.Cmp(got.BigInt(new(big.Int))))
}
