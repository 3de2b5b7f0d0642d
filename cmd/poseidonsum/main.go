package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"slices"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vocdoni/poseidon254"
)

type flags struct {
	decimal   bool
	le        bool
	domainTag string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "poseidonsum [flags] INPUT...",
		Short: "Print the circomlib Poseidon digest of 1 to 12 BN254 inputs",
		Long: "Inputs are hex byte strings (0x prefix optional) decoded in the selected byte order " +
			"and rejected when empty, longer than 32 bytes or not lower than the BN254 scalar field modulus.",
		Args:          cobra.RangeArgs(1, poseidon254.MaxInputs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}
	cmd.Flags().BoolVar(&f.decimal, "decimal", false, "Parse inputs as base-10 integers.")
	cmd.Flags().BoolVar(&f.le, "le", false, "Use little-endian for inputs and digest.")
	cmd.Flags().StringVar(&f.domainTag, "domain-tag", "", "Decimal domain tag placed in the first state element.")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log debug events to stderr.")
	return cmd
}

func run(cmd *cobra.Command, f flags, args []string) error {
	level := zerolog.InfoLevel
	if f.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()

	order := poseidon254.BigEndian
	if f.le {
		order = poseidon254.LittleEndian
	}

	opts := []poseidon254.Option{poseidon254.WithLogger(log)}
	if f.domainTag != "" {
		tag, ok := new(big.Int).SetString(f.domainTag, 10)
		if !ok {
			return fmt.Errorf("invalid domain tag %q", f.domainTag)
		}
		opts = append(opts, poseidon254.WithDomainTag(tag))
	}

	h, err := poseidon254.NewCircom(len(args), opts...)
	if err != nil {
		return err
	}

	inputs := make([][]byte, len(args))
	for i, arg := range args {
		if inputs[i], err = parseInput(arg, f.decimal, order); err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
	}
	log.Debug().Int("inputs", len(inputs)).Stringer("order", order).Msg("hashing")

	digest, err := h.HashBytes(order, inputs...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(digest))
	return err
}

// parseInput turns a command line argument into codec bytes. Decimal values
// are encoded on HashLen bytes so the codec still sees the logical integer.
func parseInput(arg string, decimal bool, order poseidon254.Endianness) ([]byte, error) {
	if !decimal {
		return hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	}
	v, ok := new(big.Int).SetString(arg, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid decimal %q", arg)
	}
	if v.BitLen() > fr.Bits+2 {
		return nil, poseidon254.ErrInputLargerThanModulus
	}
	out := v.FillBytes(make([]byte, poseidon254.HashLen))
	if order == poseidon254.LittleEndian {
		slices.Reverse(out)
	}
	return out, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
