// Package dsa derives elliptic-curve key pairs from a generator point.
// It consumes the ecc.Curve capability only: validate the generator,
// compute its order, then multiply by a random private scalar.
package dsa

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/curvekit/curvekit/ecc"
	"github.com/curvekit/curvekit/logger"
)

// Scheme holds a generator point, its group order and the curve it lives
// on. Immutable after New.
type Scheme struct {
	curve ecc.Curve
	g     ecc.Point
	n     uint64
}

// New validates the generator g on the curve and computes its group order.
func New(g ecc.Point, curve ecc.Curve) (*Scheme, error) {
	if !curve.IsValid(g) {
		return nil, fmt.Errorf("dsa: generator %s: %w", g.String(), ecc.ErrInvalidPoint)
	}
	n, err := curve.Order(g)
	if err != nil {
		return nil, fmt.Errorf("dsa: generator order: %w", err)
	}
	log := logger.Logger()
	log.Debug().Str("curve", curve.ID().String()).Uint64("order", n).Msg("dsa scheme ready")
	return &Scheme{curve: curve, g: g, n: n}, nil
}

// Generator returns the generator point.
func (s *Scheme) Generator() ecc.Point {
	return s.g
}

// Order returns the order of the generator.
func (s *Scheme) Order() uint64 {
	return s.n
}

// GenerateKey draws a private scalar uniformly from [1, n) and derives
// the public point priv*g.
func (s *Scheme) GenerateKey() (uint64, ecc.Point, error) {
	if s.n < 2 {
		return 0, ecc.Point{}, fmt.Errorf("dsa: group order %d leaves no private scalars", s.n)
	}
	max := new(big.Int).SetUint64(s.n - 1)
	k, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0, ecc.Point{}, fmt.Errorf("dsa: drawing private scalar: %w", err)
	}
	priv := k.Uint64() + 1 // [1, n)

	pub, err := s.curve.Mul(priv, s.g)
	if err != nil {
		return 0, ecc.Point{}, fmt.Errorf("dsa: deriving public point: %w", err)
	}
	return priv, pub, nil
}
