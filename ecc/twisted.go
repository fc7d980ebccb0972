package ecc

import (
	"errors"
	"fmt"

	"github.com/curvekit/curvekit/ff"
	"github.com/curvekit/curvekit/logger"
)

// TwistedEdwards is the twisted Edwards model
//
//	a*x² + y² = 1 + b*x²*y² (mod q)
//
// with identity (0, 1, 0). The addition law is the Edwards law with the
// y-numerator twisted by a.
type TwistedEdwards struct {
	a, b, q    ff.Element
	qu         uint64
	i          ff.Element // 2^((q-1)/4) mod q, used by x recovery
	identity   Point
	bound      uint64
	canRecover bool
}

// NewTwistedEdwards constructs the curve a*x² + y² = 1 + b*x²*y² mod q.
// The coefficients must be nonzero and distinct; the same q = 5 (mod 8)
// restriction as the Edwards model applies to x recovery.
func NewTwistedEdwards(a, b, q uint64, opts ...Option) (*TwistedEdwards, error) {
	if q <= 2 {
		return nil, errors.New("twisted_edwards: modulus must be greater than 2")
	}
	if a == 0 || b == 0 {
		return nil, errors.New("twisted_edwards: coefficients must be nonzero")
	}
	if a == b {
		return nil, errors.New("twisted_edwards: coefficients must be distinct")
	}
	cfg := newConfig(q, opts...)
	qe := ff.NewElement(q)
	two := ff.NewElement(2)
	c := &TwistedEdwards{
		a:          ff.NewElement(a),
		b:          ff.NewElement(b),
		q:          qe,
		qu:         q,
		i:          ff.Exp(&two, (q-1)/4, &qe),
		identity:   NewPoint(0, 1, 0),
		bound:      cfg.orderBound,
		canRecover: q%8 == 5,
	}
	log := logger.Logger()
	if !c.canRecover {
		log.Warn().Uint64("q", q).Msg("twisted_edwards: modulus not congruent to 5 mod 8, x recovery disabled")
	}
	log.Debug().Str("curve", c.String()).Msg("constructed twisted edwards curve")
	return c, nil
}

// ID returns the curve model identifier
func (c *TwistedEdwards) ID() ID {
	return TWISTED_EDWARDS
}

// Identity returns the group identity (0, 1, 0).
func (c *TwistedEdwards) Identity() Point {
	return c.identity
}

// IsValid returns true iff p satisfies the twisted curve equation; the
// identity (0, 1) satisfies it trivially.
func (c *TwistedEdwards) IsValid(p Point) bool {
	var xx, yy, lhs, rhs ff.Element
	xx.Mul(&p.X, &p.X)
	yy.Mul(&p.Y, &p.Y)
	lhs.Mul(&c.a, &xx).Add(&lhs, &yy).Mod(&c.q)
	one := ff.NewElement(1)
	rhs.Mul(&c.b, &xx).Mul(&rhs, &yy).Add(&rhs, &one).Mod(&c.q)
	return lhs.Equal(&rhs)
}

// xrecover computes the x-coordinate matching y, with b in place of the
// Edwards d: xx = (y² - 1)/(b*y² + 1), x = xx^((q+3)/8), corrected by i
// and forced even.
func (c *TwistedEdwards) xrecover(y *ff.Element) (ff.Element, error) {
	if !c.canRecover {
		return ff.Element{}, ErrRecoveryUndefined
	}

	one := ff.NewElement(1)
	var yy, num, den ff.Element
	yy.Mul(y, y).Mod(&c.q)
	num.Sub(&yy, &one).Mod(&c.q)
	den.Mul(&c.b, &yy).Add(&den, &one).Mod(&c.q)
	inv, err := ff.Inverse(&den, &c.q)
	if err != nil {
		return ff.Element{}, fmt.Errorf("twisted_edwards xrecover: %w", err)
	}
	var xx ff.Element
	xx.Mul(&num, &inv).Mod(&c.q)

	x := ff.Exp(&xx, (c.qu+3)/8, &c.q)
	var check ff.Element
	check.Mul(&x, &x).Mod(&c.q)
	if !check.Equal(&xx) {
		x.Mul(&x, &c.i).Mod(&c.q)
	}
	if !x.IsEven() {
		x.Sub(&c.q, &x)
	}
	return x, nil
}

// At recovers the two points with the given y-coordinate, (x, y) and
// (q-x, y).
func (c *TwistedEdwards) At(y ff.Element) (Point, Point, error) {
	x, err := c.xrecover(&y)
	if err != nil {
		return Point{}, Point{}, err
	}
	var negX ff.Element
	if !x.IsZero() {
		negX.Sub(&c.q, &x)
	}
	return Point{X: x, Y: y}, Point{X: negX, Y: y}, nil
}

// Add applies the twisted Edwards law:
// x3 = (x1*y2 + x2*y1) / (1 + b*x1*x2*y1*y2)
// y3 = (y1*y2 - a*x1*x2) / (1 - b*x1*x2*y1*y2)
// Either operand being the identity short-circuits to the other.
func (c *TwistedEdwards) Add(p, q Point) (Point, error) {
	if !c.IsValid(p) || !c.IsValid(q) {
		return Point{}, ErrInvalidPoint
	}
	if p.Equal(c.identity) {
		return q, nil
	}
	if q.Equal(c.identity) {
		return p, nil
	}

	one := ff.NewElement(1)
	var factor, denom1, denom2 ff.Element
	factor.Mul(&c.b, &p.X).Mul(&factor, &q.X).Mul(&factor, &p.Y).Mul(&factor, &q.Y).Mod(&c.q)
	denom1.Add(&one, &factor).Mod(&c.q)
	denom2.Sub(&one, &factor).Mod(&c.q)

	inv1, err := ff.Inverse(&denom1, &c.q)
	if err != nil {
		return Point{}, fmt.Errorf("twisted_edwards add: %w", err)
	}
	inv2, err := ff.Inverse(&denom2, &c.q)
	if err != nil {
		return Point{}, fmt.Errorf("twisted_edwards add: %w", err)
	}

	var x3, y3, t ff.Element
	x3.Mul(&p.X, &q.Y)
	t.Mul(&q.X, &p.Y)
	x3.Add(&x3, &t).Mul(&x3, &inv1).Mod(&c.q)

	y3.Mul(&p.Y, &q.Y)
	t.Mul(&c.a, &p.X).Mul(&t, &q.X)
	y3.Sub(&y3, &t).Mul(&y3, &inv2).Mod(&c.q)

	return Point{X: x3, Y: y3}, nil
}

// Double adds p to itself; the unified law needs no tangent derivation.
func (c *TwistedEdwards) Double(p Point) (Point, error) {
	return c.Add(p, p)
}

// Mul computes k*p by double-and-add.
func (c *TwistedEdwards) Mul(k uint64, p Point) (Point, error) {
	return scalarMul(c, k, p)
}

// Order computes the order of g by repeated addition, bounded by the
// configured cap (default q).
func (c *TwistedEdwards) Order(g Point) (uint64, error) {
	return orderOf(c, g, c.bound)
}

func (c *TwistedEdwards) String() string {
	return fmt.Sprintf("(%s*x² + y² = 1 + %s*x²*y²) mod %s", c.a.String(), c.b.String(), c.q.String())
}
