package poseidon254

import (
	"math/big"
	"slices"
)

// ValidateLength rejects empty inputs and inputs longer than the modulus byte
// length. It must run before any conversion: reducing an over-long slice
// modulo the field order lets distinct inputs collide on one element.
func ValidateLength(input []byte, modulus *big.Int) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	if n := ModulusByteLen(modulus); len(input) > n {
		return nil, &InvalidInputLengthError{Len: len(input), ModulusByteLen: n}
	}
	return input, nil
}

// BytesToElement interprets input as an unsigned integer in the given byte
// order and returns the matching field element. Values greater than or
// equal to the modulus are rejected, never reduced.
func BytesToElement[T any, PT Element[T]](input []byte, order Endianness, modulus *big.Int) (T, error) {
	var e T
	v, err := bytesToBigInt(input, order)
	if err != nil {
		return e, err
	}
	if v.Cmp(modulus) >= 0 {
		return e, ErrInputLargerThanModulus
	}
	PT(&e).SetBigInt(v)
	return e, nil
}

// ElementToBytes encodes e on exactly ModulusByteLen(modulus) bytes in the
// given byte order.
func ElementToBytes[T any, PT Element[T]](e *T, order Endianness, modulus *big.Int) ([]byte, error) {
	if order != BigEndian && order != LittleEndian {
		return nil, ErrUnknownEndianness
	}
	n := ModulusByteLen(modulus)
	v := PT(e).BigInt(new(big.Int))
	if (v.BitLen()+7)/8 > n {
		return nil, ErrArrayConversion
	}
	out := v.FillBytes(make([]byte, n))
	if order == LittleEndian {
		slices.Reverse(out)
	}
	return out, nil
}

// DomainTagFromBytes reduces arbitrary bytes modulo the field order. It is
// meant for human readable domain tags only: unlike BytesToElement it
// accepts any length and never fails on large values.
func DomainTagFromBytes(data []byte, order Endianness, modulus *big.Int) (*big.Int, error) {
	v, err := bytesToBigInt(data, order)
	if err != nil {
		return nil, err
	}
	return v.Mod(v, modulus), nil
}

func bytesToBigInt(input []byte, order Endianness) (*big.Int, error) {
	switch order {
	case BigEndian:
		return new(big.Int).SetBytes(input), nil
	case LittleEndian:
		reversed := slices.Clone(input)
		slices.Reverse(reversed)
		return new(big.Int).SetBytes(reversed), nil
	default:
		return nil, ErrUnknownEndianness
	}
}
