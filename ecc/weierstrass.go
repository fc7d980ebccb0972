package ecc

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/curvekit/curvekit/ff"
	"github.com/curvekit/curvekit/logger"
)

// Weierstrass is the short Weierstrass model
//
//	y**2 = x**3 + a*x + b (mod q)
//
// with the triple (0, 0, 0) reserved as the group identity.
type Weierstrass struct {
	a, b, q  ff.Element
	qu       uint64
	identity Point
	bound    uint64
}

// NewWeierstrass constructs the curve y**2 = x**3 + a*x + b mod q.
// Degenerate parameterizations are rejected: q must exceed 2 and the
// coefficients must be nonzero and distinct.
func NewWeierstrass(a, b, q uint64, opts ...Option) (*Weierstrass, error) {
	if q <= 2 {
		return nil, errors.New("weierstrass: modulus must be greater than 2")
	}
	if a == 0 || b == 0 {
		return nil, errors.New("weierstrass: coefficients must be nonzero")
	}
	if a == b {
		return nil, errors.New("weierstrass: coefficients must be distinct")
	}
	cfg := newConfig(q, opts...)
	c := &Weierstrass{
		a:        ff.NewElement(a),
		b:        ff.NewElement(b),
		q:        ff.NewElement(q),
		qu:       q,
		identity: NewPoint(0, 0, 0),
		bound:    cfg.orderBound,
	}
	log := logger.Logger()
	log.Debug().Str("curve", c.String()).Msg("constructed weierstrass curve")
	return c, nil
}

// ID returns the curve model identifier
func (c *Weierstrass) ID() ID {
	return WEIERSTRASS
}

// Identity returns the group identity (0, 0, 0).
func (c *Weierstrass) Identity() Point {
	return c.identity
}

// rhs computes x**3 + a*x + b mod q.
func (c *Weierstrass) rhs(x *ff.Element) ff.Element {
	var r, t ff.Element
	r.Mul(x, x).Mul(&r, x)
	t.Mul(&c.a, x)
	r.Add(&r, &t).Add(&r, &c.b).Mod(&c.q)
	return r
}

// IsValid returns true iff p is the identity or satisfies the curve
// equation.
func (c *Weierstrass) IsValid(p Point) bool {
	if p.X.IsZero() && p.Y.IsZero() {
		return true
	}
	var lhs ff.Element
	lhs.Mul(&p.Y, &p.Y).Mod(&c.q)
	rhs := c.rhs(&p.X)
	return lhs.Equal(&rhs)
}

// At recovers the two points with the given x-coordinate, (x, y) and
// (x, q-y), via a Tonelli-Shanks square root of the right-hand side.
func (c *Weierstrass) At(x ff.Element) (Point, Point, error) {
	if x.Cmp(&c.q) >= 0 {
		return Point{}, Point{}, fmt.Errorf("weierstrass: coordinate %s exceeds modulus %s", x.String(), c.q.String())
	}
	rhs := c.rhs(&x)
	y, err := ff.Sqrt(&rhs, &c.q)
	if err != nil {
		return Point{}, Point{}, fmt.Errorf("weierstrass: no point at x = %s: %w", x.String(), err)
	}
	var negY ff.Element
	negY.Sub(&c.q, &y).Mod(&c.q)
	p1 := Point{X: x, Y: y}
	p2 := Point{X: x, Y: negY}
	return p1, p2, nil
}

// Add applies the chord-and-tangent law. Both operands must satisfy
// IsValid.
func (c *Weierstrass) Add(p, q Point) (Point, error) {
	if !c.IsValid(p) || !c.IsValid(q) {
		return Point{}, ErrInvalidPoint
	}
	if p.Equal(c.identity) {
		return q, nil
	}
	if q.Equal(c.identity) {
		return p, nil
	}
	// p + (-p) = identity: same x with opposite (or zero) y.
	if p.X.Equal(&q.X) && (!p.Y.Equal(&q.Y) || p.Y.IsZero()) {
		return c.identity, nil
	}
	if p.X.Equal(&q.X) {
		return c.Double(p)
	}

	// chord slope l = (y2 - y1) / (x2 - x1)
	var num, den ff.Element
	num.Sub(&q.Y, &p.Y).Mod(&c.q)
	den.Sub(&q.X, &p.X).Mod(&c.q)
	inv, err := ff.Inverse(&den, &c.q)
	if err != nil {
		return Point{}, fmt.Errorf("weierstrass add: %w", err)
	}
	var l ff.Element
	l.Mul(&num, &inv).Mod(&c.q)

	return c.chord(&l, &p, &q), nil
}

// chord finishes the group law given the slope l:
// x3 = l**2 - x1 - x2, y3 = l*(x1 - x3) - y1.
func (c *Weierstrass) chord(l *ff.Element, p, q *Point) Point {
	var x3, y3 ff.Element
	x3.Mul(l, l).Sub(&x3, &p.X).Sub(&x3, &q.X).Mod(&c.q)
	y3.Sub(&p.X, &x3)
	y3.Mul(l, &y3).Sub(&y3, &p.Y).Mod(&c.q)
	return Point{X: x3, Y: y3}
}

// Double doubles p with the tangent-line slope l = (3*x**2 + a) / (2*y).
func (c *Weierstrass) Double(p Point) (Point, error) {
	if !c.IsValid(p) {
		return Point{}, ErrInvalidPoint
	}
	if p.Equal(c.identity) || p.Y.IsZero() {
		return c.identity, nil
	}

	var num, den, three, two ff.Element
	three.SetUint64(3)
	two.SetUint64(2)
	num.Mul(&p.X, &p.X).Mul(&num, &three).Add(&num, &c.a).Mod(&c.q)
	den.Mul(&p.Y, &two).Mod(&c.q)
	inv, err := ff.Inverse(&den, &c.q)
	if err != nil {
		return Point{}, fmt.Errorf("weierstrass double: %w", err)
	}
	var l ff.Element
	l.Mul(&num, &inv).Mod(&c.q)

	return c.chord(&l, &p, &p), nil
}

// Mul computes k*p by double-and-add.
func (c *Weierstrass) Mul(k uint64, p Point) (Point, error) {
	return scalarMul(c, k, p)
}

// Order computes the order of g by repeated addition, bounded by the
// configured cap (default q).
func (c *Weierstrass) Order(g Point) (uint64, error) {
	return orderOf(c, g, c.bound)
}

// CountPoints counts #E(F_q) including the identity, by classifying the
// right-hand side of the curve equation for every x against a
// square-residue table.
func (c *Weierstrass) CountPoints() uint64 {
	// Mark every value y**2 mod q, y in [0, q).
	squares := bitset.New(uint(c.qu))
	var y, sq ff.Element
	for i := uint64(0); i < c.qu; i++ {
		y.SetUint64(i)
		sq.Mul(&y, &y).Mod(&c.q)
		squares.Set(uint(sq.Uint64()))
	}

	count := uint64(1) // identity
	var x ff.Element
	for i := uint64(0); i < c.qu; i++ {
		x.SetUint64(i)
		rhs := c.rhs(&x)
		switch {
		case rhs.IsZero():
			count++ // single point with y = 0
		case squares.Test(uint(rhs.Uint64())):
			count += 2
		}
	}
	return count
}

func (c *Weierstrass) String() string {
	return fmt.Sprintf("(y**2 = x**3 + %s * x + %s) mod %s", c.a.String(), c.b.String(), c.q.String())
}
