// Package curvekit provides affine elliptic-curve group arithmetic over
// small prime fields for four curve models:
//   - short Weierstrass: y**2 = x**3 + a*x + b
//   - Edwards: a*x**2 + y**2 = 1 + d*x**2*y**2
//   - twisted Edwards: a*x**2 + y**2 = 1 + b*x**2*y**2
//   - Montgomery: B*y**2 = x**3 + A*x**2 + x
//
// All four models implement the ecc.Curve interface, so a caller can pick a
// model and perform group operations (addition, doubling, scalar
// multiplication, order computation) without knowing the model-specific
// formulas.
//
// curvekit is a teaching and experimentation toolkit. The arithmetic is
// plain affine arithmetic on toy-sized moduli; it is neither constant-time
// nor suited for production key material.
package curvekit

import (
	"github.com/blang/semver/v4"
)

// Version of the curvekit library
var Version = semver.MustParse("0.1.0")
