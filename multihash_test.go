package poseidon254

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func sequence(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		out[i].SetUint64(uint64(i + 1))
	}
	return out
}

func TestMultiHashVectors(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{5, "0x0dab9449e4a1398a15224c0b15a49d598b2174d305a316c918125f8feeb123c0"},
		{13, "0x220262198a88ff64a6d905e67a6ad199c008b6963aafe473385967affde8eac9"},
		{16, "0x22ce127540d8ba4c5dbff1e76c4dacd35d6afa406cc849bcf5e98ddee2eafb37"},
		{32, "0x277fbdeb4e3245271def595e2e3a6531fad65cb71a18814e3b1608c2a3282ce8"},
		{256, "0x19895eb62a55921bf13da8c871add5a12246c8635290efa6288703f77f1a4e04"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("inputs-%d", tc.n), func(t *testing.T) {
			got, err := MultiHash(sequence(tc.n))
			if err != nil {
				t.Fatal(err)
			}
			want := mustElement(t, tc.want)
			if !got.Equal(&want) {
				t.Fatalf("expected %s\ngot      %s", want.String(), got.String())
			}
		})
	}
}

func TestMultiHashSmallEqualsHash(t *testing.T) {
	for n := 1; n <= MaxInputs; n++ {
		inputs := sequence(n)
		multi, err := MultiHash(inputs)
		if err != nil {
			t.Fatal(err)
		}
		plain, err := Hash(inputs...)
		if err != nil {
			t.Fatal(err)
		}
		if !multi.Equal(&plain) {
			t.Fatalf("%d inputs: MultiHash %s != Hash %s", n, multi.String(), plain.String())
		}
	}
}

func TestMultiHashChunking(t *testing.T) {
	inputs := sequence(13)
	first, err := Hash(inputs[:MaxInputs]...)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Hash(inputs[MaxInputs:]...)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Hash(first, second)
	if err != nil {
		t.Fatal(err)
	}
	got, err := MultiHash(inputs)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(&want) {
		t.Fatalf("expected %s\ngot      %s", want.String(), got.String())
	}

	tagged, err := MultiHash(inputs, WithDomainTag(big.NewInt(1)))
	if err != nil {
		t.Fatal(err)
	}
	if tagged.Equal(&got) {
		t.Fatal("domain tag did not change the multi hash")
	}
}

func TestMultiHashLimits(t *testing.T) {
	if _, err := MultiHash(nil); !errors.Is(err, ErrInvalidNumberOfInputs) {
		t.Fatalf("expected ErrInvalidNumberOfInputs, got %v", err)
	}
	if _, err := MultiHash(sequence(MaxMultiHashInputs + 1)); !errors.Is(err, ErrInvalidNumberOfInputs) {
		t.Fatalf("expected ErrInvalidNumberOfInputs, got %v", err)
	}
	if _, err := MultiHash(sequence(3), WithArityPolicy(ZeroPadded)); !errors.Is(err, ErrPolicyMismatch) {
		t.Fatalf("expected ErrPolicyMismatch, got %v", err)
	}
}

func BenchmarkMultiHash(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("inputs-%d", n), func(b *testing.B) {
			inputs := sequence(n)
			for i := 0; i < b.N; i++ {
				if _, err := MultiHash(inputs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
