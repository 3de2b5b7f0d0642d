package params

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func TestBN254X5Table(t *testing.T) {
	partial := []int{56, 57, 56, 60, 60, 63, 64, 63, 60, 66, 60, 65}
	if MaxWidth != 13 {
		t.Fatalf("max width %d, want 13", MaxWidth)
	}
	for width := MinWidth; width <= MaxWidth; width++ {
		p, ok := BN254X5(width)
		if !ok {
			t.Fatalf("width %d missing", width)
		}
		if p.Width != width {
			t.Fatalf("width %d: table entry has width %d", width, p.Width)
		}
		if p.PartialRounds != partial[width-MinWidth] {
			t.Fatalf("width %d: partial rounds %d, want %d", width, p.PartialRounds, partial[width-MinWidth])
		}
		if err := Validate(p); err != nil {
			t.Fatalf("width %d: %v", width, err)
		}
	}
}

func TestBN254X5OutOfRange(t *testing.T) {
	for _, width := range []int{-1, 0, 1, 14, 17} {
		if _, ok := BN254X5(width); ok {
			t.Fatalf("width %d unexpectedly present", width)
		}
	}
}

func TestBN254X5FirstConstants(t *testing.T) {
	// First round constant of each width as published with circomlib.
	cases := map[int]string{
		2: "0x09c46e9ec68e9bd4fe1faaba294cba38a71aa177534cdd1b6c7dc0dbd0abd7a7",
		3: "0x0ee9a592ba9a9518d05986d656f40c2114c4993c11bb29938d21d47304cd8e6e",
	}
	for width, hex := range cases {
		var want fr.Element
		if _, err := want.SetString(hex); err != nil {
			t.Fatal(err)
		}
		p, _ := BN254X5(width)
		if !p.ARK[0].Equal(&want) {
			t.Fatalf("width %d: ark[0] = %s, want %s", width, p.ARK[0].String(), want.String())
		}
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	base := func() *Parameters[fr.Element] {
		p, _ := BN254X5(3)
		cp := *p
		return &cp
	}
	cases := []struct {
		name   string
		mutate func(p *Parameters[fr.Element])
	}{
		{"width", func(p *Parameters[fr.Element]) { p.Width = 1 }},
		{"odd full rounds", func(p *Parameters[fr.Element]) { p.FullRounds = 7 }},
		{"negative partial rounds", func(p *Parameters[fr.Element]) { p.PartialRounds = -1 }},
		{"even alpha", func(p *Parameters[fr.Element]) { p.Alpha = 4 }},
		{"nil modulus", func(p *Parameters[fr.Element]) { p.Modulus = nil }},
		{"short ark", func(p *Parameters[fr.Element]) { p.ARK = p.ARK[:len(p.ARK)-1] }},
		{"missing mds row", func(p *Parameters[fr.Element]) { p.MDS = p.MDS[:2] }},
		{"ragged mds", func(p *Parameters[fr.Element]) {
			p.MDS = [][]fr.Element{p.MDS[0], p.MDS[1], p.MDS[2][:2]}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base()
			tc.mutate(p)
			if err := Validate(p); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestBN254X5ReturnsIndependentCopies(t *testing.T) {
	first, _ := BN254X5(3)
	if !first.ExactArityOnly() {
		t.Fatal("catalog set is not locked to exact arity")
	}
	want := first.ARK[0]
	wantMDS := first.MDS[1][2]

	first.ARK[0].SetUint64(42)
	first.MDS[1][2].SetUint64(42)

	second, _ := BN254X5(3)
	if !second.ARK[0].Equal(&want) || !second.MDS[1][2].Equal(&wantMDS) {
		t.Fatal("writes to a returned set reached the table")
	}

	var unlocked Parameters[fr.Element]
	if unlocked.ExactArityOnly() {
		t.Fatal("zero value set is locked")
	}
}
