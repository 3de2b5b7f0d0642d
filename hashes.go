package poseidon254

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Hash computes the circomlib Poseidon hash of 1 to MaxInputs elements with
// a zero domain tag.
func Hash(inputs ...fr.Element) (fr.Element, error) {
	h, err := NewCircom(len(inputs))
	if err != nil {
		return fr.Element{}, err
	}
	return h.Hash(inputs)
}

func Hash1(a fr.Element) (fr.Element, error) {
	return Hash(a)
}

func Hash2(a, b fr.Element) (fr.Element, error) {
	return Hash(a, b)
}

func Hash3(a, b, c fr.Element) (fr.Element, error) {
	return Hash(a, b, c)
}

func Hash4(a, b, c, d fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d)
}

// HashBytesBE hashes big-endian byte inputs with the catalog hasher for
// len(inputs) inputs and returns the big-endian digest.
func HashBytesBE(inputs ...[]byte) ([HashLen]byte, error) {
	return hashBytes(BigEndian, fr.BigEndian, inputs)
}

// HashBytesLE hashes little-endian byte inputs with the catalog hasher for
// len(inputs) inputs and returns the little-endian digest.
func HashBytesLE(inputs ...[]byte) ([HashLen]byte, error) {
	return hashBytes(LittleEndian, fr.LittleEndian, inputs)
}

func hashBytes(order Endianness, enc fr.ByteOrder, inputs [][]byte) ([HashLen]byte, error) {
	var out [HashLen]byte
	h, err := NewCircom(len(inputs))
	if err != nil {
		return out, err
	}
	elems, err := h.decode(order, inputs)
	if err != nil {
		return out, err
	}
	digest, err := h.Hash(elems)
	if err != nil {
		return out, err
	}
	enc.PutElement(&out, digest)
	return out, nil
}
