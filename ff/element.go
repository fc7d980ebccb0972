// Package ff implements the field-element type and the modular-arithmetic
// toolkit the curve models are built on.
//
// An Element wraps an arbitrary-precision integer; it never carries the
// field modulus. Every modular operation takes the modulus as an explicit
// parameter, so the same element type serves any prime field.
package ff

import (
	"math/big"
)

// Element is an integer value, conceptually reduced into [0, q) for some
// prime q chosen by the caller. The zero value is ready to use.
type Element struct {
	v big.Int
}

// NewElement returns an element set to u.
func NewElement(u uint64) Element {
	var e Element
	e.v.SetUint64(u)
	return e
}

// SetUint64 sets z to u and returns z.
func (z *Element) SetUint64(u uint64) *Element {
	z.v.SetUint64(u)
	return z
}

// SetInt64 sets z to i and returns z.
func (z *Element) SetInt64(i int64) *Element {
	z.v.SetInt64(i)
	return z
}

// Set sets z to x and returns z.
func (z *Element) Set(x *Element) *Element {
	z.v.Set(&x.v)
	return z
}

// Add sets z = x + y and returns z. The result is not reduced.
func (z *Element) Add(x, y *Element) *Element {
	z.v.Add(&x.v, &y.v)
	return z
}

// Sub sets z = x - y and returns z. The result is not reduced and may be
// negative.
func (z *Element) Sub(x, y *Element) *Element {
	z.v.Sub(&x.v, &y.v)
	return z
}

// Mul sets z = x * y and returns z. The result is not reduced.
func (z *Element) Mul(x, y *Element) *Element {
	z.v.Mul(&x.v, &y.v)
	return z
}

// Div sets z = x / y (integer quotient, truncated toward zero) and
// returns z.
func (z *Element) Div(x, y *Element) *Element {
	z.v.Quo(&x.v, &y.v)
	return z
}

// Mod reduces z into [0, m) and returns z. m must be positive.
func (z *Element) Mod(m *Element) *Element {
	z.v.Mod(&z.v, &m.v)
	return z
}

// Cmp compares z and x and returns -1, 0 or 1.
func (z *Element) Cmp(x *Element) int {
	return z.v.Cmp(&x.v)
}

// Equal returns true if z == x.
func (z *Element) Equal(x *Element) bool {
	return z.v.Cmp(&x.v) == 0
}

// Sign returns -1, 0 or 1 depending on the sign of z.
func (z *Element) Sign() int {
	return z.v.Sign()
}

// IsZero returns true if z == 0.
func (z *Element) IsZero() bool {
	return z.v.Sign() == 0
}

// IsOne returns true if z == 1.
func (z *Element) IsOne() bool {
	return z.v.IsInt64() && z.v.Int64() == 1
}

// IsUint64 reports whether z is non-negative and fits in a uint64.
func (z *Element) IsUint64() bool {
	return z.v.IsUint64()
}

// Uint64 returns the uint64 representation of z. Valid only if IsUint64.
func (z *Element) Uint64() uint64 {
	return z.v.Uint64()
}

// IsEven returns true if z is even.
func (z *Element) IsEven() bool {
	return z.v.Bit(0) == 0
}

func (z *Element) String() string {
	return z.v.String()
}
