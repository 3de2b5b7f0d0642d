package poseidon254

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func mustElement(t *testing.T, s string) fr.Element {
	t.Helper()
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		t.Fatalf("parse element: %v", err)
	}
	return e
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decode hex: %v", err)
	}
	return b
}

func mustCircom(t testing.TB, nrInputs int, opts ...Option) *CircomHasher {
	t.Helper()
	h, err := NewCircom(nrInputs, opts...)
	if err != nil {
		t.Fatalf("new circom hasher for %d inputs: %v", nrInputs, err)
	}
	return h
}

func reversed(b []byte) []byte {
	out := slices.Clone(b)
	slices.Reverse(out)
	return out
}

// circomlibjs poseidon([1, ...]) for 1 to 12 inputs.
var circomOnes = []string{
	"29176100eaa962bdc1fe6c654d6a3c130e96a4d1168b33848b897dc502820133",
	"007af346e2d304279e79e0a9f3023f771294a78acb70e73f90afe27cad401e81",
	"02c0066e10a72abd2b33c3b214cb3e81bcb1b6e30961cd23c202b18673bf2543",
	"082c9c370a0d24f4416fbc414a37681f78442d27d86385991c17d6fc0c4b7d71",
	"10389605ae688d4f14db853122c47d66a803c72b41589cb1bf868741b206b9bb",
	"2a73f679328c3eab724aa3e5bdbf50b39035d7729f135b9709890f85c5dc5e76",
	"2276310aa7f3343a284214139d9da959be2a31b2c708a5f81954b265e53a30b8",
	"177e1453c446e1b07d2b4233425147095c4fcabb233d230b6d46a214d95b2884",
	"0e8fee2fe49da30fdeeb48c42ebb44cc6ee7055f61fbca5e313b8a5fca834c47",
	"2ec4c65e6378ab8c7330854f4a7077c1ff9260e44885c4b81dd131ad3a86cd96",
	"00713d41eca635f117d4ecbceb5f3a66dc4142eb70b56765bc358f1bec40bb9b",
	"14390be0baef249bd47c65ddac65c2e52e8513c081c1cd72c98006098e9a8fbe",
}

func TestCircomVectors(t *testing.T) {
	one := append(make([]byte, 31), 1)
	two := append(make([]byte, 31), 2)

	var ones, twos [][]byte
	for i := 1; i <= MaxInputs; i++ {
		ones = append(ones, one)
		twos = append(twos, two)

		h := mustCircom(t, i)
		got, err := h.HashBytesBE(ones...)
		if err != nil {
			t.Fatal(err)
		}
		want := mustHex(t, circomOnes[i-1])
		if !bytes.Equal(got, want) {
			t.Fatalf("%d inputs mismatch\nexpected %x\ngot      %x", i, want, got)
		}

		other, err := h.HashBytesBE(twos...)
		if err != nil {
			t.Fatal(err)
		}
		if bytes.Equal(other, want) {
			t.Fatalf("%d inputs: twos hashed to the ones vector", i)
		}
	}
}

func TestKnownVectors(t *testing.T) {
	h := mustCircom(t, 2)

	onesTwosBE := mustHex(t, "0d54e1938f8a8c1c7deb5e0355f26319207b84fe9ca2ce1b26e735c829821990")

	got, err := h.HashBytesBE(bytes.Repeat([]byte{1}, 32), bytes.Repeat([]byte{2}, 32))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, onesTwosBE) {
		t.Fatalf("ones/twos big-endian mismatch\nexpected %x\ngot      %x", onesTwosBE, got)
	}

	got, err = h.HashBytesLE(bytes.Repeat([]byte{1}, 32), bytes.Repeat([]byte{2}, 32))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, reversed(onesTwosBE)) {
		t.Fatalf("ones/twos little-endian mismatch\nexpected %x\ngot      %x", reversed(onesTwosBE), got)
	}

	// Field-element entry point must agree with the byte entry point.
	var a, b fr.Element
	a.SetBytes(bytes.Repeat([]byte{1}, 32))
	b.SetBytes(bytes.Repeat([]byte{2}, 32))
	digest, err := h.Hash([]fr.Element{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if be := digest.Bytes(); !bytes.Equal(be[:], onesTwosBE) {
		t.Fatalf("field hash mismatch\nexpected %x\ngot      %x", onesTwosBE, be)
	}
}

func TestOneOneLeadingZeros(t *testing.T) {
	want := mustHex(t, "007af346e2d304279e79e0a9f3023f771294a78acb70e73f90afe27cad401e81")
	h := mustCircom(t, 2)
	for _, enc := range [][]byte{{1}, {0, 1}, {0, 0, 1}} {
		got, err := h.HashBytesBE(enc, enc)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("encoding %v mismatch\nexpected %x\ngot      %x", enc, want, got)
		}
	}
}

func TestOneTwoLittleEndian(t *testing.T) {
	var one, two fr.Element
	one.SetUint64(1)
	two.SetUint64(2)

	out, err := Hash2(one, two)
	if err != nil {
		t.Fatal(err)
	}
	le := out.Bytes()
	slices.Reverse(le[:])
	want := mustHex(t, "9a1817447a60199e51453274f217362acfe962966b4cf63d4190d6e7f5c05c11")
	if !bytes.Equal(le[:], want) {
		t.Fatalf("mismatch\nexpected %x\ngot      %x", want, le)
	}
}

func TestReducedInputVector(t *testing.T) {
	var a, b fr.Element
	a.SetBytes(mustHex(t, "069c6381ac0b968e881c913c17d836067fd15f2cc79f902c8070b36d286617dd"))
	// Larger than the modulus; SetBytes reduces it, the strict codec would not.
	b.SetBytes(mustHex(t, "c33b60042f76c7fbd05db77623cb17b81d49414b82e56a2ec018f7a55c3f300b"))

	out, err := Hash(a, b)
	if err != nil {
		t.Fatal(err)
	}
	le, err := ElementToBytes(&out, LittleEndian, fr.Modulus())
	if err != nil {
		t.Fatal(err)
	}
	want := mustHex(t, "4b55f92a42eee6979e5afa3383d4831297eb606787f3ba3dad87344d84ad130a")
	if !bytes.Equal(le, want) {
		t.Fatalf("mismatch\nexpected %x\ngot      %x", want, le)
	}
}

func TestHashHelpers(t *testing.T) {
	inputs := make([]fr.Element, 4)
	for i := range inputs {
		inputs[i].SetUint64(1)
	}
	cases := []struct {
		name string
		fn   func() (fr.Element, error)
	}{
		{"hash1", func() (fr.Element, error) { return Hash1(inputs[0]) }},
		{"hash2", func() (fr.Element, error) { return Hash2(inputs[0], inputs[1]) }},
		{"hash3", func() (fr.Element, error) { return Hash3(inputs[0], inputs[1], inputs[2]) }},
		{"hash4", func() (fr.Element, error) { return Hash4(inputs[0], inputs[1], inputs[2], inputs[3]) }},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.fn()
			if err != nil {
				t.Fatal(err)
			}
			want := mustElement(t, "0x"+circomOnes[i])
			if !out.Equal(&want) {
				t.Fatalf("expected %s\ngot      %s", want.String(), out.String())
			}
		})
	}

	one := []byte{1}
	be, err := HashBytesBE(one, one, one)
	if err != nil {
		t.Fatal(err)
	}
	if got := hex.EncodeToString(be[:]); got != circomOnes[2] {
		t.Fatalf("HashBytesBE mismatch: %s", got)
	}
	le, err := HashBytesLE(one, one, one)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(le[:], reversed(be[:])) {
		t.Fatalf("HashBytesLE is not the reversal of HashBytesBE")
	}
	digest, err := fr.LittleEndian.Element(&le)
	if err != nil {
		t.Fatal(err)
	}
	if want := mustElement(t, "0x"+circomOnes[2]); !digest.Equal(&want) {
		t.Fatalf("little-endian digest decodes to %s, want %s", digest.String(), want.String())
	}
	if _, err := HashBytesLE(one, bytes.Repeat([]byte{0xff}, 32), one); !errors.Is(err, ErrInputLargerThanModulus) {
		t.Fatalf("expected ErrInputLargerThanModulus, got %v", err)
	}
	if _, err := HashBytesBE(); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth for zero inputs, got %v", err)
	}
}

func TestDomainTag(t *testing.T) {
	a := bytes.Repeat([]byte{1}, 32)
	b := bytes.Repeat([]byte{2}, 32)

	zeroTag := mustCircom(t, 2, WithDomainTag(big.NewInt(0)))
	got, err := zeroTag.HashBytesBE(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if want := mustHex(t, "0d54e1938f8a8c1c7deb5e0355f26319207b84fe9ca2ce1b26e735c829821990"); !bytes.Equal(got, want) {
		t.Fatalf("explicit zero tag changed the digest: %x", got)
	}

	tagOne := mustCircom(t, 2, WithDomainTag(big.NewInt(1)))
	one, err := tagOne.HashBytesBE(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if want := mustHex(t, "09d63344d8b7bf756ba226f390b24496c8dfe5c96f22646322e37caca99a044b"); !bytes.Equal(one, want) {
		t.Fatalf("tag 1 mismatch\nexpected %x\ngot      %x", want, one)
	}

	tagTwo := mustCircom(t, 2, WithDomainTag(big.NewInt(2)))
	two, err := tagTwo.HashBytesBE(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(one, two) {
		t.Fatal("different domain tags produced the same digest")
	}

	if tag := tagTwo.DomainTag(); tag.Uint64() != 2 {
		t.Fatalf("domain tag accessor returned %s", tag.String())
	}

	_, err = NewCircom(2, WithDomainTag(fr.Modulus()))
	if !errors.Is(err, ErrInvalidDomainTag) || !errors.Is(err, ErrInputLargerThanModulus) {
		t.Fatalf("expected ErrInvalidDomainTag and ErrInputLargerThanModulus for tag == modulus, got %v", err)
	}
	if _, err := NewCircom(2, WithDomainTag(big.NewInt(-1))); !errors.Is(err, ErrInvalidDomainTag) {
		t.Fatalf("expected ErrInvalidDomainTag for a negative tag, got %v", err)
	}
}

func TestDomainTagFromBytes(t *testing.T) {
	tag, err := DomainTagFromBytes([]byte("poseidon254"), LittleEndian, fr.Modulus())
	if err != nil {
		t.Fatal(err)
	}
	h := mustCircom(t, 2, WithDomainTag(tag))
	var one, two fr.Element
	one.SetUint64(1)
	two.SetUint64(2)
	out, err := h.Hash([]fr.Element{one, two})
	if err != nil {
		t.Fatal(err)
	}
	want := mustElement(t, "0x130f157c48afe145d55a94f511f36fce59b7839ec1722e8cfb804ab9177fd100")
	if !out.Equal(&want) {
		t.Fatalf("expected %s\ngot      %s", want.String(), out.String())
	}

	// Oversized tags are reduced, not rejected.
	big64 := bytes.Repeat([]byte{0xff}, 64)
	tag, err = DomainTagFromBytes(big64, BigEndian, fr.Modulus())
	if err != nil {
		t.Fatal(err)
	}
	if tag.Cmp(fr.Modulus()) >= 0 {
		t.Fatalf("tag not reduced: %s", tag)
	}
}

func TestInvalidNumberOfInputs(t *testing.T) {
	for i := 1; i <= MaxInputs; i++ {
		h := mustCircom(t, i)
		for j := 0; j <= MaxInputs+1; j++ {
			if i == j {
				continue
			}
			inputs := make([]fr.Element, j)
			for k := range inputs {
				inputs[k].SetRandom()
			}
			_, err := h.Hash(inputs)
			var target *InvalidNumberOfInputsError
			if !errors.As(err, &target) {
				t.Fatalf("hasher %d, %d inputs: expected InvalidNumberOfInputsError, got %v", i, j, err)
			}
			if target.Inputs != j || target.MaxLimit != i || target.Width != i+1 {
				t.Fatalf("hasher %d, %d inputs: unexpected error fields %+v", i, j, *target)
			}
			if !errors.Is(err, ErrInvalidNumberOfInputs) {
				t.Fatalf("error does not match ErrInvalidNumberOfInputs")
			}

			raw := make([][]byte, j)
			for k := range inputs {
				be := inputs[k].Bytes()
				raw[k] = be[:]
			}
			if _, err := h.HashBytesBE(raw...); !errors.Is(err, ErrInvalidNumberOfInputs) {
				t.Fatalf("hasher %d, %d byte inputs: got %v", i, j, err)
			}
		}
	}
}

func TestCircomWidthBounds(t *testing.T) {
	for _, n := range []int{0, 13, 14, 15, -1} {
		_, err := NewCircom(n)
		var target *InvalidWidthError
		if !errors.As(err, &target) {
			t.Fatalf("%d inputs: expected InvalidWidthError, got %v", n, err)
		}
		if target.Width != n+1 || target.MaxLimit != MaxWidth {
			t.Fatalf("%d inputs: unexpected error fields %+v", n, *target)
		}
		if !errors.Is(err, ErrInvalidWidth) {
			t.Fatalf("%d inputs: error does not match ErrInvalidWidth", n)
		}
	}
	for n := 1; n <= MaxInputs; n++ {
		h := mustCircom(t, n)
		if h.Width() != n+1 || h.Arity() != n {
			t.Fatalf("%d inputs: width %d arity %d", n, h.Width(), h.Arity())
		}
	}
}

func TestZeroPaddedPolicy(t *testing.T) {
	circom, err := CircomParameters(3)
	if err != nil {
		t.Fatal(err)
	}
	// Same constants, but built by the caller and therefore not locked.
	p, err := NewParameters(circom.ARK, circom.MDS, circom.FullRounds, circom.PartialRounds, circom.Width, circom.Alpha, circom.Modulus)
	if err != nil {
		t.Fatal(err)
	}
	padded, err := New(p, WithArityPolicy(ZeroPadded))
	if err != nil {
		t.Fatal(err)
	}
	exact := mustCircom(t, 3)

	var a, b, zero fr.Element
	a.SetUint64(7)
	b.SetUint64(11)

	for _, tc := range []struct {
		short []fr.Element
		full  []fr.Element
	}{
		{nil, []fr.Element{zero, zero, zero}},
		{[]fr.Element{a}, []fr.Element{a, zero, zero}},
		{[]fr.Element{a, b}, []fr.Element{a, b, zero}},
		{[]fr.Element{a, b, a}, []fr.Element{a, b, a}},
	} {
		got, err := padded.Hash(tc.short)
		if err != nil {
			t.Fatalf("%d inputs: %v", len(tc.short), err)
		}
		want, err := exact.Hash(tc.full)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(&want) {
			t.Fatalf("%d inputs: padded %s != explicit zeros %s", len(tc.short), got.String(), want.String())
		}
	}

	if _, err := padded.Hash([]fr.Element{a, b, a, b}); !errors.Is(err, ErrInvalidNumberOfInputs) {
		t.Fatalf("expected ErrInvalidNumberOfInputs, got %v", err)
	}
	if _, err := NewCircom(3, WithArityPolicy(ZeroPadded)); !errors.Is(err, ErrPolicyMismatch) {
		t.Fatalf("expected ErrPolicyMismatch, got %v", err)
	}
	if _, err := New(p, WithArityPolicy(ArityPolicy(9))); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestCatalogParametersRejectZeroPadding(t *testing.T) {
	for n := 1; n <= MaxInputs; n++ {
		p, err := CircomParameters(n)
		if err != nil {
			t.Fatal(err)
		}
		h, err := New(p, WithArityPolicy(ZeroPadded))
		if !errors.Is(err, ErrPolicyMismatch) {
			t.Fatalf("%d inputs: expected ErrPolicyMismatch, got %v", n, err)
		}
		if h != nil {
			t.Fatalf("%d inputs: a hasher was returned with the error", n)
		}

		exact, err := New(p)
		if err != nil {
			t.Fatalf("%d inputs: %v", n, err)
		}
		if n > 1 {
			var one fr.Element
			one.SetUint64(1)
			if _, err := exact.Hash([]fr.Element{one}); !errors.Is(err, ErrInvalidNumberOfInputs) {
				t.Fatalf("%d inputs: a single input was accepted, got %v", n, err)
			}
		}
	}
}

func TestCatalogParametersAreCopies(t *testing.T) {
	h := mustCircom(t, 2)
	h.Parameters().ARK[0].SetUint64(42)

	got, err := mustCircom(t, 2).HashBytesBE(bytes.Repeat([]byte{1}, 32), bytes.Repeat([]byte{2}, 32))
	if err != nil {
		t.Fatal(err)
	}
	if want := mustHex(t, "0d54e1938f8a8c1c7deb5e0355f26319207b84fe9ca2ce1b26e735c829821990"); !bytes.Equal(got, want) {
		t.Fatalf("a write through one hasher changed another\nexpected %x\ngot      %x", want, got)
	}
}

func TestStateIsClearedAfterErrors(t *testing.T) {
	h := mustCircom(t, 2)
	var a, b fr.Element
	a.SetUint64(1)
	b.SetUint64(2)

	first, err := h.Hash([]fr.Element{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Hash([]fr.Element{a}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := h.HashBytesBE([]byte{}, []byte{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	second, err := h.Hash([]fr.Element{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if !first.Equal(&second) {
		t.Fatalf("digest changed after failed calls: %s != %s", first.String(), second.String())
	}
}

func TestEndianness(t *testing.T) {
	h := mustCircom(t, 2)
	cases := []struct {
		le, be []byte
	}{
		{[]byte{0, 0, 0, 1}, []byte{1, 0, 0, 0}},
		{append(make([]byte, 23), 1), append([]byte{1}, make([]byte, 23)...)},
	}
	for i, tc := range cases {
		le, err := h.HashBytesLE(tc.le, tc.le)
		if err != nil {
			t.Fatal(err)
		}
		be, err := h.HashBytesBE(tc.be, tc.be)
		if err != nil {
			t.Fatal(err)
		}
		if bytes.Equal(le, be) {
			t.Fatalf("case %d: little and big endian digests should differ", i)
		}
		if !bytes.Equal(le, reversed(be)) {
			t.Fatalf("case %d: little-endian digest is not the reversed big-endian digest", i)
		}
	}
	if _, err := h.HashBytes(Endianness(7), []byte{1}, []byte{2}); !errors.Is(err, ErrUnknownEndianness) {
		t.Fatalf("expected ErrUnknownEndianness, got %v", err)
	}
}

func TestEmptyInput(t *testing.T) {
	nonEmpty := bytes.Repeat([]byte{1}, 32)
	for n := 1; n <= MaxInputs; n++ {
		h := mustCircom(t, n)

		allEmpty := make([][]byte, n)
		for i := range allEmpty {
			allEmpty[i] = []byte{}
		}
		lastEmpty := make([][]byte, n)
		for i := range lastEmpty {
			lastEmpty[i] = nonEmpty
		}
		lastEmpty[n-1] = nil

		for _, inputs := range [][][]byte{allEmpty, lastEmpty} {
			if _, err := h.HashBytesBE(inputs...); !errors.Is(err, ErrEmptyInput) {
				t.Fatalf("%d inputs big-endian: got %v", n, err)
			}
			if _, err := h.HashBytesLE(inputs...); !errors.Is(err, ErrEmptyInput) {
				t.Fatalf("%d inputs little-endian: got %v", n, err)
			}
		}
	}
}

func TestInputLargerThanModulus(t *testing.T) {
	// Values above the modulus, in both byte orders.
	aboveBE := []byte{
		216, 137, 85, 159, 239, 194, 107, 138, 254, 68, 21, 16, 165, 41, 64, 148, 208, 198, 201,
		59, 220, 102, 142, 81, 49, 251, 174, 183, 183, 182, 4, 32,
	}
	modulusPlusOne := new(big.Int).Add(fr.Modulus(), big.NewInt(1)).FillBytes(make([]byte, 32))

	for n := 1; n < MaxInputs; n++ {
		h := mustCircom(t, n)
		for _, v := range [][]byte{aboveBE, modulusPlusOne} {
			inputs := make([][]byte, n)
			for i := range inputs {
				inputs[i] = v
			}
			if _, err := h.HashBytesBE(inputs...); !errors.Is(err, ErrInputLargerThanModulus) {
				t.Fatalf("%d inputs big-endian: got %v", n, err)
			}
			for i := range inputs {
				inputs[i] = reversed(v)
			}
			if _, err := h.HashBytesLE(inputs...); !errors.Is(err, ErrInputLargerThanModulus) {
				t.Fatalf("%d inputs little-endian: got %v", n, err)
			}
		}
	}

	h := mustCircom(t, 1)
	modulus := fr.Modulus().FillBytes(make([]byte, 32))
	if _, err := h.HashBytesBE(modulus); !errors.Is(err, ErrInputLargerThanModulus) {
		t.Fatalf("modulus big-endian: got %v", err)
	}
	if _, err := h.HashBytesLE(reversed(modulus)); !errors.Is(err, ErrInputLargerThanModulus) {
		t.Fatalf("modulus little-endian: got %v", err)
	}
}

func TestInvalidInputLength(t *testing.T) {
	for _, l := range []int{33, 64, 1 << 16} {
		input := bytes.Repeat([]byte{1}, l)
		for n := 1; n <= MaxInputs; n++ {
			h := mustCircom(t, n)
			inputs := make([][]byte, n)
			for i := range inputs {
				inputs[i] = input
			}
			for _, order := range []Endianness{BigEndian, LittleEndian} {
				_, err := h.HashBytes(order, inputs...)
				var target *InvalidInputLengthError
				if !errors.As(err, &target) {
					t.Fatalf("len %d, %d inputs, %s: got %v", l, n, order, err)
				}
				if target.Len != l || target.ModulusByteLen != 32 {
					t.Fatalf("unexpected error fields %+v", *target)
				}
			}
		}
	}
}

func TestFieldAndBytesAgree(t *testing.T) {
	modulus := fr.Modulus()
	for n := 1; n <= MaxInputs; n++ {
		h := mustCircom(t, n)
		inputs := make([]fr.Element, n)
		be := make([][]byte, n)
		le := make([][]byte, n)
		for i := range inputs {
			inputs[i].SetRandom()
			b := inputs[i].Bytes()
			be[i] = slices.Clone(b[:])
			le[i] = reversed(b[:])
		}
		digest, err := h.Hash(inputs)
		if err != nil {
			t.Fatal(err)
		}
		wantBE, _ := ElementToBytes(&digest, BigEndian, modulus)
		wantLE, _ := ElementToBytes(&digest, LittleEndian, modulus)

		gotBE, err := h.HashBytesBE(be...)
		if err != nil {
			t.Fatal(err)
		}
		gotLE, err := h.HashBytesLE(le...)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(gotBE, wantBE) || !bytes.Equal(gotLE, wantLE) {
			t.Fatalf("%d inputs: byte and field digests differ", n)
		}
	}
}

func BenchmarkCircomHash(b *testing.B) {
	for n := 1; n <= MaxInputs; n++ {
		b.Run(fmt.Sprintf("inputs-%d", n), func(b *testing.B) {
			h := mustCircom(b, n)
			inputs := make([]fr.Element, n)
			for i := range inputs {
				inputs[i].SetRandom()
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := h.Hash(inputs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
