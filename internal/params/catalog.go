package params

import (
	"slices"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const (
	// MinWidth and MaxWidth bound the widths present in the BN254 table.
	MinWidth = 2
	MaxWidth = MinWidth + len(bn254X5) - 1
)

// BN254X5 returns a copy of the circomlib-compatible parameter set for the
// given state width, locked to exact arity. Writes to the returned constants
// never reach the table.
func BN254X5(width int) (*Parameters[fr.Element], bool) {
	if width < MinWidth || width > MaxWidth {
		return nil, false
	}
	entry := &bn254X5[width-MinWidth]
	p := &Parameters[fr.Element]{
		Width:         entry.Width,
		FullRounds:    entry.FullRounds,
		PartialRounds: entry.PartialRounds,
		Alpha:         entry.Alpha,
		ARK:           slices.Clone(entry.ARK),
		MDS:           make([][]fr.Element, len(entry.MDS)),
		Modulus:       fr.Modulus(),
		exactArity:    true,
	}
	for i, row := range entry.MDS {
		p.MDS[i] = slices.Clone(row)
	}
	return p, true
}
