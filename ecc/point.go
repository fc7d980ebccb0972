package ecc

import (
	"fmt"

	"github.com/curvekit/curvekit/ff"
)

// Point is an (x, y, z) coordinate triple. For finite points x and y are
// the affine coordinates; z is an informal normalization marker (0 = not
// yet confirmed reduced, 1 = normalized). z is never a homogeneous
// projective coordinate and is never divided by in curve formulas.
//
// Each model reserves one triple as its group identity: (0, 0, 0) for
// Weierstrass, (0, 1, 0) for the other three.
type Point struct {
	X, Y, Z ff.Element
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z uint64) Point {
	return Point{
		X: ff.NewElement(x),
		Y: ff.NewElement(y),
		Z: ff.NewElement(z),
	}
}

// Equal reports structural equality: all three coordinates identical.
// This is the identity-sentinel comparison.
func (p Point) Equal(q Point) bool {
	return p.X.Equal(&q.X) && p.Y.Equal(&q.Y) && p.Z.Equal(&q.Z)
}

// AffineEqual reports whether p and q denote the same affine point mod m,
// scaling each by the inverse of its z. A zero z means the point is
// already in its canonical representation, so the comparison falls back to
// the structural one. Fails with ff.ErrNoInverse if a nonzero z shares a
// factor with m, which a correctly constructed point never does.
func (p Point) AffineEqual(q Point, m *ff.Element) (bool, error) {
	if p.Z.IsZero() || q.Z.IsZero() {
		return p.Equal(q), nil
	}

	invP, err := ff.Inverse(&p.Z, m)
	if err != nil {
		return false, err
	}
	invQ, err := ff.Inverse(&q.Z, m)
	if err != nil {
		return false, err
	}

	var x1, y1, x2, y2 ff.Element
	x1.Mul(&p.X, &invP).Mod(m)
	y1.Mul(&p.Y, &invP).Mod(m)
	x2.Mul(&q.X, &invQ).Mod(m)
	y2.Mul(&q.Y, &invQ).Mod(m)

	return x1.Equal(&x2) && y1.Equal(&y2), nil
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.X.String(), p.Y.String(), p.Z.String())
}
