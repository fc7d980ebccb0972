// Package ecc implements affine group arithmetic for four elliptic-curve
// models over small prime fields: short Weierstrass, Edwards, twisted
// Edwards and Montgomery.
//
// The model set is closed: each model is a concrete type implementing the
// Curve interface and reporting its ID. Curves are immutable after
// construction and safe for concurrent readers.
package ecc

import (
	"errors"

	"github.com/curvekit/curvekit/ff"
)

// ID of the curve model
type ID uint8

const (
	UNKNOWN ID = iota
	WEIERSTRASS
	EDWARDS
	TWISTED_EDWARDS
	MONTGOMERY
)

func (id ID) String() string {
	switch id {
	case WEIERSTRASS:
		return "weierstrass"
	case EDWARDS:
		return "edwards"
	case TWISTED_EDWARDS:
		return "twisted_edwards"
	case MONTGOMERY:
		return "montgomery"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidPoint signals an operand that is neither the identity nor a
	// point satisfying the curve equation.
	ErrInvalidPoint = errors.New("point is not on the curve")

	// ErrOrderNotFound signals that the brute-force order search exceeded
	// its iteration bound.
	ErrOrderNotFound = errors.New("point order not found within group bounds")

	// ErrRecoveryNotSupported signals a model (Montgomery) that cannot
	// recover a point from a single coordinate.
	ErrRecoveryNotSupported = errors.New("point recovery from a single coordinate is not supported")

	// ErrRecoveryUndefined signals an x-recovery attempt on a curve whose
	// modulus is not congruent to 5 mod 8; the recovery exponent (q+3)/8 is
	// only a square root there.
	ErrRecoveryUndefined = errors.New("x recovery requires a modulus congruent to 5 mod 8")
)

// Curve is the capability shared by all four models. Scalars and orders
// are plain machine words: the toolkit targets toy-sized moduli.
type Curve interface {
	// ID reports the curve model.
	ID() ID

	// Identity returns the group identity point of the model.
	Identity() Point

	// IsValid returns true iff p is the identity or satisfies the curve
	// equation mod q.
	IsValid(p Point) bool

	// At recovers the two points sharing one coordinate: the point and its
	// negation. Weierstrass recovers y from x; Edwards models recover x
	// from y; Montgomery always fails.
	At(coord ff.Element) (Point, Point, error)

	// Add applies the group law. Both operands must satisfy IsValid.
	Add(p, q Point) (Point, error)

	// Double doubles a point.
	Double(p Point) (Point, error)

	// Mul computes k*p by double-and-add.
	Mul(k uint64, p Point) (Point, error)

	// Order returns the smallest n > 0 with n*g = identity, by brute-force
	// repeated addition.
	Order(g Point) (uint64, error)

	// String renders the curve equation.
	String() string
}

type curveConfig struct {
	orderBound uint64
}

// Option configures a curve constructor.
type Option func(*curveConfig)

// WithOrderBound caps the brute-force order search at n additions instead
// of the default bound q.
func WithOrderBound(n uint64) Option {
	return func(cfg *curveConfig) {
		cfg.orderBound = n
	}
}

func newConfig(defaultBound uint64, opts ...Option) curveConfig {
	cfg := curveConfig{orderBound: defaultBound}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// scalarMul is the shared double-and-add loop: accumulate into r from the
// least significant bit of k, doubling m through the model's own Add.
func scalarMul(c Curve, k uint64, p Point) (Point, error) {
	r := c.Identity()
	m := p
	var err error
	for k > 0 {
		if k&1 == 1 {
			if r, err = c.Add(r, m); err != nil {
				return Point{}, err
			}
		}
		k >>= 1
		if k > 0 {
			if m, err = c.Add(m, m); err != nil {
				return Point{}, err
			}
		}
	}
	return r, nil
}

// orderOf is the shared brute-force order search. The bound is a
// correctness guard, not a time bound: no failure here is transient.
func orderOf(c Curve, g Point, bound uint64) (uint64, error) {
	identity := c.Identity()
	if !c.IsValid(g) || g.Equal(identity) {
		return 0, ErrInvalidPoint
	}
	n := uint64(1)
	current := g
	var err error
	for !current.Equal(identity) {
		n++
		if n > bound {
			return 0, ErrOrderNotFound
		}
		if current, err = c.Add(current, g); err != nil {
			return 0, err
		}
	}
	return n, nil
}
