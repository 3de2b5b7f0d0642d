package poseidon254

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestValidateLength(t *testing.T) {
	modulus := fr.Modulus()
	require.Equal(t, 32, ModulusByteLen(modulus))

	for l := 1; l <= 32; l++ {
		in := bytes.Repeat([]byte{1}, l)
		out, err := ValidateLength(in, modulus)
		require.NoError(t, err)
		require.Equal(t, in, out)
	}

	_, err := ValidateLength(nil, modulus)
	require.ErrorIs(t, err, ErrEmptyInput)
	_, err = ValidateLength([]byte{}, modulus)
	require.ErrorIs(t, err, ErrEmptyInput)

	for l := 33; l <= 64; l++ {
		_, err := ValidateLength(make([]byte, l), modulus)
		require.ErrorIs(t, err, ErrInvalidInputLength)
		var target *InvalidInputLengthError
		require.ErrorAs(t, err, &target)
		require.Equal(t, InvalidInputLengthError{Len: l, ModulusByteLen: 32}, *target)
	}
}

func TestBytesToElementBounds(t *testing.T) {
	modulus := fr.Modulus()
	pMinusOne := new(big.Int).Sub(modulus, big.NewInt(1))

	e, err := BytesToElement[fr.Element](pMinusOne.Bytes(), BigEndian, modulus)
	require.NoError(t, err)
	var want fr.Element
	want.SetBigInt(pMinusOne)
	require.True(t, e.Equal(&want))

	e, err = BytesToElement[fr.Element](reversed(pMinusOne.Bytes()), LittleEndian, modulus)
	require.NoError(t, err)
	require.True(t, e.Equal(&want))

	for k := int64(0); k < 4; k++ {
		v := new(big.Int).Add(modulus, big.NewInt(k)).FillBytes(make([]byte, 32))
		_, err := BytesToElement[fr.Element](v, BigEndian, modulus)
		require.ErrorIs(t, err, ErrInputLargerThanModulus, "p+%d big-endian", k)
		_, err = BytesToElement[fr.Element](reversed(v), LittleEndian, modulus)
		require.ErrorIs(t, err, ErrInputLargerThanModulus, "p+%d little-endian", k)
	}

	_, err = BytesToElement[fr.Element]([]byte{1}, Endianness(3), modulus)
	require.ErrorIs(t, err, ErrUnknownEndianness)
}

func TestBytesToElementPadding(t *testing.T) {
	modulus := fr.Modulus()
	value := []byte{0x12, 0x34, 0x56}

	ref, err := BytesToElement[fr.Element](value, BigEndian, modulus)
	require.NoError(t, err)
	require.Equal(t, uint64(0x123456), ref.Uint64())

	for pad := 1; pad <= 32-len(value); pad++ {
		be := append(make([]byte, pad), value...)
		e, err := BytesToElement[fr.Element](be, BigEndian, modulus)
		require.NoError(t, err)
		require.True(t, e.Equal(&ref), "leading zeros %d", pad)

		le := append(reversed(value), make([]byte, pad)...)
		e, err = BytesToElement[fr.Element](le, LittleEndian, modulus)
		require.NoError(t, err)
		require.True(t, e.Equal(&ref), "trailing zeros %d", pad)
	}
}

func TestElementToBytes(t *testing.T) {
	modulus := fr.Modulus()

	var e fr.Element
	e.SetUint64(0x0102)
	be, err := ElementToBytes(&e, BigEndian, modulus)
	require.NoError(t, err)
	require.Len(t, be, 32)
	require.Equal(t, []byte{0x01, 0x02}, be[30:])
	require.Equal(t, make([]byte, 30), be[:30])

	le, err := ElementToBytes(&e, LittleEndian, modulus)
	require.NoError(t, err)
	require.Equal(t, reversed(be), le)

	back, err := BytesToElement[fr.Element](le, LittleEndian, modulus)
	require.NoError(t, err)
	require.True(t, back.Equal(&e))

	_, err = ElementToBytes(&e, Endianness(2), modulus)
	require.ErrorIs(t, err, ErrUnknownEndianness)

	// A modulus too small for the element's value cannot hold the encoding.
	e.SetBigInt(new(big.Int).Lsh(big.NewInt(1), 200))
	_, err = ElementToBytes(&e, BigEndian, big.NewInt(251))
	require.ErrorIs(t, err, ErrArrayConversion)
}

func TestDomainTagFromBytesReduces(t *testing.T) {
	modulus := fr.Modulus()

	tag, err := DomainTagFromBytes([]byte{0x01, 0x02}, LittleEndian, modulus)
	require.NoError(t, err)
	require.Equal(t, int64(0x0201), tag.Int64())

	tag, err = DomainTagFromBytes(modulus.Bytes(), BigEndian, modulus)
	require.NoError(t, err)
	require.Zero(t, tag.Sign())

	_, err = DomainTagFromBytes([]byte{1}, Endianness(5), modulus)
	require.ErrorIs(t, err, ErrUnknownEndianness)
}

func TestEndiannessString(t *testing.T) {
	require.Equal(t, "big-endian", BigEndian.String())
	require.Equal(t, "little-endian", LittleEndian.String())
	require.Equal(t, "exact", ExactArity.String())
	require.Equal(t, "zero-padded", ZeroPadded.String())
}
