package poseidon254

import (
	"fmt"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/vocdoni/poseidon254/internal/params"
)

// ArityPolicy decides which input counts a hasher accepts. Digests computed
// under different policies are not interchangeable.
type ArityPolicy uint8

const (
	// ExactArity accepts exactly Width-1 inputs. This is what circomlib
	// does and the only policy the bundled catalog is used with.
	ExactArity ArityPolicy = iota
	// ZeroPadded accepts 0 to Width-1 inputs and fills the rest of the
	// state with zeros.
	ZeroPadded
)

func (p ArityPolicy) String() string {
	switch p {
	case ExactArity:
		return "exact"
	case ZeroPadded:
		return "zero-padded"
	default:
		return fmt.Sprintf("ArityPolicy(%d)", uint8(p))
	}
}

type options struct {
	domainTag *big.Int
	policy    ArityPolicy
	logger    zerolog.Logger
}

// Option configures a Hasher.
type Option func(*options)

// WithDomainTag sets the constant placed in the first state element. It
// defaults to zero and must be lower than the field modulus.
func WithDomainTag(tag *big.Int) Option {
	return func(o *options) { o.domainTag = tag }
}

// WithArityPolicy selects how the hasher treats the number of inputs.
func WithArityPolicy(p ArityPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger attaches a logger for debug events. Hashers are silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Hasher is a Poseidon sponge over one parameter set. It reuses its state
// buffer between calls and therefore must not be used from several
// goroutines at once; the parameter set itself can be shared freely.
type Hasher[T any, PT Element[T]] struct {
	params    *Parameters[T]
	perm      *permutation[T, PT]
	domainTag T
	policy    ArityPolicy
	state     []T
	log       zerolog.Logger
}

// New returns a hasher for the given parameter set.
func New[T any, PT Element[T]](p *Parameters[T], opts ...Option) (*Hasher[T, PT], error) {
	if err := params.Validate(p); err != nil {
		return nil, err
	}
	o := options{policy: ExactArity, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.policy != ExactArity && o.policy != ZeroPadded {
		return nil, fmt.Errorf("poseidon254: unknown arity policy %d", o.policy)
	}
	if p.ExactArityOnly() && o.policy != ExactArity {
		return nil, fmt.Errorf("%w: %s requested on an exact-arity parameter set", ErrPolicyMismatch, o.policy)
	}

	h := &Hasher[T, PT]{
		params: p,
		perm:   newPermutation[T, PT](p),
		policy: o.policy,
		state:  make([]T, 0, p.Width),
		log:    o.logger,
	}
	PT(&h.domainTag).SetZero()
	if o.domainTag != nil {
		if o.domainTag.Sign() < 0 {
			return nil, fmt.Errorf("%w: negative value %s", ErrInvalidDomainTag, o.domainTag)
		}
		if o.domainTag.Cmp(p.Modulus) >= 0 {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDomainTag, ErrInputLargerThanModulus)
		}
		PT(&h.domainTag).SetBigInt(o.domainTag)
	}

	h.log.Debug().
		Int("width", p.Width).
		Int("fullRounds", p.FullRounds).
		Int("partialRounds", p.PartialRounds).
		Uint64("alpha", p.Alpha).
		Stringer("policy", h.policy).
		Msg("poseidon hasher ready")
	return h, nil
}

// Width returns the state width.
func (h *Hasher[T, PT]) Width() int { return h.params.Width }

// Arity returns the maximum number of inputs, Width-1.
func (h *Hasher[T, PT]) Arity() int { return h.params.Width - 1 }

// Policy returns the arity policy the hasher was built with.
func (h *Hasher[T, PT]) Policy() ArityPolicy { return h.policy }

// DomainTag returns the first state element used on every call.
func (h *Hasher[T, PT]) DomainTag() T { return h.domainTag }

// Parameters returns the parameter set the hasher permutes with. Its
// constants are shared with the hasher, so writes to them change every
// later digest of this hasher. Catalog sets are copied per hasher and never
// affect other hashers.
func (h *Hasher[T, PT]) Parameters() *Parameters[T] { return h.params }

// Hash absorbs [domainTag, inputs...] into the state, runs the permutation
// and returns the first state element.
func (h *Hasher[T, PT]) Hash(inputs []T) (T, error) {
	var out T
	if err := h.checkArity(len(inputs)); err != nil {
		h.log.Debug().Err(err).Msg("rejected hash inputs")
		return out, err
	}

	h.state = append(h.state[:0], h.domainTag)
	h.state = append(h.state, inputs...)
	for len(h.state) < h.params.Width {
		var zero T
		PT(&zero).SetZero()
		h.state = append(h.state, zero)
	}

	h.perm.permute(h.state)
	out = h.state[0]

	clear(h.state)
	h.state = h.state[:0]
	return out, nil
}

// HashBytes validates and decodes every input in the given byte order,
// hashes the resulting elements and encodes the digest in the same order on
// ModulusByteLen bytes.
func (h *Hasher[T, PT]) HashBytes(order Endianness, inputs ...[]byte) ([]byte, error) {
	if order != BigEndian && order != LittleEndian {
		return nil, ErrUnknownEndianness
	}
	elems, err := h.decode(order, inputs)
	if err != nil {
		return nil, err
	}
	digest, err := h.Hash(elems)
	if err != nil {
		return nil, err
	}
	return ElementToBytes[T, PT](&digest, order, h.params.Modulus)
}

// decode validates every length before converting any input.
func (h *Hasher[T, PT]) decode(order Endianness, inputs [][]byte) ([]T, error) {
	modulus := h.params.Modulus
	for _, input := range inputs {
		if _, err := ValidateLength(input, modulus); err != nil {
			return nil, err
		}
	}
	elems := make([]T, len(inputs))
	for i, input := range inputs {
		e, err := BytesToElement[T, PT](input, order, modulus)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	return elems, nil
}

// HashBytesBE is HashBytes with big-endian inputs and output.
func (h *Hasher[T, PT]) HashBytesBE(inputs ...[]byte) ([]byte, error) {
	return h.HashBytes(BigEndian, inputs...)
}

// HashBytesLE is HashBytes with little-endian inputs and output.
func (h *Hasher[T, PT]) HashBytesLE(inputs ...[]byte) ([]byte, error) {
	return h.HashBytes(LittleEndian, inputs...)
}

func (h *Hasher[T, PT]) checkArity(n int) error {
	limit := h.params.Width - 1
	if n > limit || (h.policy == ExactArity && n != limit) {
		return &InvalidNumberOfInputsError{Inputs: n, MaxLimit: limit, Width: h.params.Width}
	}
	return nil
}
