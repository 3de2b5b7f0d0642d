package poseidon254

import (
	"errors"
	"fmt"

	"github.com/vocdoni/poseidon254/internal/params"
)

var (
	ErrEmptyInput             = errors.New("poseidon254: input is an empty slice")
	ErrInputLargerThanModulus = errors.New("poseidon254: input is larger than the modulus of the prime field")
	ErrArrayConversion        = errors.New("poseidon254: failed to convert the digest into a fixed-length array")
	ErrInvalidNumberOfInputs  = errors.New("poseidon254: invalid number of inputs")
	ErrInvalidInputLength     = errors.New("poseidon254: invalid input length")
	ErrInvalidWidth           = errors.New("poseidon254: invalid width")
	ErrPolicyMismatch         = errors.New("poseidon254: arity policy does not match the parameter catalog")
	ErrUnknownEndianness      = errors.New("poseidon254: unknown endianness")
	ErrInvalidDomainTag       = errors.New("poseidon254: invalid domain tag")
	ErrInvalidParameters      = params.ErrInvalid
)

// InvalidNumberOfInputsError is returned when the number of inputs is not
// accepted by the hasher's width and arity policy.
type InvalidNumberOfInputsError struct {
	Inputs   int
	MaxLimit int
	Width    int
}

func (e *InvalidNumberOfInputsError) Error() string {
	return fmt.Sprintf("poseidon254: invalid number of inputs: %d, maximum allowed is %d (%d - 1)",
		e.Inputs, e.MaxLimit, e.Width)
}

func (e *InvalidNumberOfInputsError) Is(target error) bool { return target == ErrInvalidNumberOfInputs }

// InvalidInputLengthError is returned when a byte input is longer than the
// modulus byte length.
type InvalidInputLengthError struct {
	Len            int
	ModulusByteLen int
}

func (e *InvalidInputLengthError) Error() string {
	return fmt.Sprintf("poseidon254: invalid length of the input: %d, the length matching the modulus of the prime field is %d",
		e.Len, e.ModulusByteLen)
}

func (e *InvalidInputLengthError) Is(target error) bool { return target == ErrInvalidInputLength }

// InvalidWidthError is returned when the catalog has no parameter set for
// the requested width.
type InvalidWidthError struct {
	Width    int
	MaxLimit int
}

func (e *InvalidWidthError) Error() string {
	return fmt.Sprintf("poseidon254: invalid width %d, choose a width between %d and %d for 1 to %d inputs",
		e.Width, MinWidth, e.MaxLimit, e.MaxLimit-1)
}

func (e *InvalidWidthError) Is(target error) bool { return target == ErrInvalidWidth }
