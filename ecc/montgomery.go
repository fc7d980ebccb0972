package ecc

import (
	"errors"
	"fmt"

	"github.com/curvekit/curvekit/ff"
	"github.com/curvekit/curvekit/logger"
)

// Montgomery is the Montgomery model
//
//	B*y² = x³ + A*x² + x (mod q)
//
// with identity (0, 1, 0). Finite results carry z = 1 as the normalized
// marker; recovery of a point from a single coordinate is not supported.
type Montgomery struct {
	a, b, q  ff.Element // a is the A coefficient, b the B coefficient
	identity Point
	bound    uint64
}

// NewMontgomery constructs the curve B*y² = x³ + A*x² + x mod q. Both
// coefficients must be nonzero and q must exceed 2.
func NewMontgomery(bigA, bigB, q uint64, opts ...Option) (*Montgomery, error) {
	if q <= 2 {
		return nil, errors.New("montgomery: modulus must be greater than 2")
	}
	if bigA == 0 || bigB == 0 {
		return nil, errors.New("montgomery: coefficients must be nonzero")
	}
	cfg := newConfig(q, opts...)
	c := &Montgomery{
		a:        ff.NewElement(bigA),
		b:        ff.NewElement(bigB),
		q:        ff.NewElement(q),
		identity: NewPoint(0, 1, 0),
		bound:    cfg.orderBound,
	}
	log := logger.Logger()
	log.Debug().Str("curve", c.String()).Msg("constructed montgomery curve")
	return c, nil
}

// ID returns the curve model identifier
func (c *Montgomery) ID() ID {
	return MONTGOMERY
}

// Identity returns the group identity (0, 1, 0).
func (c *Montgomery) Identity() Point {
	return c.identity
}

// IsValid returns true iff p is the identity or satisfies the curve
// equation.
func (c *Montgomery) IsValid(p Point) bool {
	if p.Equal(c.identity) {
		return true
	}
	var lhs, rhs, t ff.Element
	lhs.Mul(&p.Y, &p.Y).Mul(&lhs, &c.b).Mod(&c.q)
	rhs.Mul(&p.X, &p.X).Mul(&rhs, &p.X)
	t.Mul(&p.X, &p.X).Mul(&t, &c.a)
	rhs.Add(&rhs, &t).Add(&rhs, &p.X).Mod(&c.q)
	return lhs.Equal(&rhs)
}

// At always fails: a Montgomery y-coordinate does not determine x without
// additional information.
func (c *Montgomery) At(coord ff.Element) (Point, Point, error) {
	return Point{}, Point{}, ErrRecoveryNotSupported
}

// Add applies the chord-and-tangent law:
//
//	p != q: l = (y2 - y1)/(x2 - x1), x3 = B*l² - A - x1 - x2
//	p == q: l = (3*x1² + 2*A*x1 + 1)/(2*B*y1), x3 = B*l² - A - 2*x1
//
// and y3 = l*(x1 - x3) - y1 in both branches.
func (c *Montgomery) Add(p, q Point) (Point, error) {
	if !c.IsValid(p) || !c.IsValid(q) {
		return Point{}, ErrInvalidPoint
	}
	if p.Equal(c.identity) {
		return q, nil
	}
	if q.Equal(c.identity) {
		return p, nil
	}
	// p + (-p) = identity
	if p.X.Equal(&q.X) && !p.Y.Equal(&q.Y) {
		return c.identity, nil
	}

	var l ff.Element
	var err error
	if p.Equal(q) {
		if l, err = c.tangentSlope(&p); err != nil {
			return Point{}, err
		}
	} else {
		if l, err = c.chordSlope(&p, &q); err != nil {
			return Point{}, err
		}
	}

	// x3 = B*l² - A - x1 - x2
	var x3, y3 ff.Element
	x3.Mul(&l, &l).Mul(&x3, &c.b).Sub(&x3, &c.a).Sub(&x3, &p.X).Sub(&x3, &q.X).Mod(&c.q)
	// y3 = l*(x1 - x3) - y1
	y3.Sub(&p.X, &x3)
	y3.Mul(&l, &y3).Sub(&y3, &p.Y).Mod(&c.q)

	return Point{X: x3, Y: y3, Z: ff.NewElement(1)}, nil
}

// chordSlope computes l = (y2 - y1)/(x2 - x1).
func (c *Montgomery) chordSlope(p, q *Point) (ff.Element, error) {
	var num, den ff.Element
	num.Sub(&q.Y, &p.Y).Mod(&c.q)
	den.Sub(&q.X, &p.X).Mod(&c.q)
	inv, err := ff.Inverse(&den, &c.q)
	if err != nil {
		return ff.Element{}, fmt.Errorf("montgomery add: %w", err)
	}
	var l ff.Element
	l.Mul(&num, &inv).Mod(&c.q)
	return l, nil
}

// tangentSlope computes l = (3*x1² + 2*A*x1 + 1)/(2*B*y1).
func (c *Montgomery) tangentSlope(p *Point) (ff.Element, error) {
	one := ff.NewElement(1)
	two := ff.NewElement(2)
	three := ff.NewElement(3)

	var num, den, t ff.Element
	num.Mul(&p.X, &p.X).Mul(&num, &three)
	t.Mul(&two, &c.a).Mul(&t, &p.X)
	num.Add(&num, &t).Add(&num, &one).Mod(&c.q)
	den.Mul(&two, &c.b).Mul(&den, &p.Y).Mod(&c.q)
	inv, err := ff.Inverse(&den, &c.q)
	if err != nil {
		return ff.Element{}, fmt.Errorf("montgomery double: %w", err)
	}
	var l ff.Element
	l.Mul(&num, &inv).Mod(&c.q)
	return l, nil
}

// Double doubles p with the tangent formula.
func (c *Montgomery) Double(p Point) (Point, error) {
	return c.Add(p, p)
}

// Mul computes k*p by double-and-add.
func (c *Montgomery) Mul(k uint64, p Point) (Point, error) {
	return scalarMul(c, k, p)
}

// Order computes the order of g by repeated addition, bounded by the
// configured cap (default q).
func (c *Montgomery) Order(g Point) (uint64, error) {
	return orderOf(c, g, c.bound)
}

func (c *Montgomery) String() string {
	return fmt.Sprintf("(%s*y² = x³ + %s*x² + x) mod %s", c.b.String(), c.a.String(), c.q.String())
}
