package ff

import (
	"errors"

	"github.com/curvekit/curvekit/internal/debug"
)

var (
	// ErrNoInverse signals that gcd(a, m) != 1, so a has no inverse mod m.
	ErrNoInverse = errors.New("no modular inverse: operand and modulus are not coprime")

	// ErrNoSquareRoot signals that the input is not a quadratic residue.
	ErrNoSquareRoot = errors.New("no modular square root: value is not a quadratic residue")

	// ErrModulusTooLarge signals a modulus outside the toy-sized domain the
	// square-root search supports.
	ErrModulusTooLarge = errors.New("modulus does not fit in 64 bits")
)

// Exp returns base^exp mod m, computed by square-and-multiply in
// O(log exp) multiplications.
func Exp(base *Element, exp uint64, m *Element) Element {
	var result, b Element
	result.SetUint64(1)
	b.Set(base).Mod(m)
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result.Mul(&result, &b).Mod(m)
		}
		b.Mul(&b, &b).Mod(m)
	}
	return result
}

// Inverse returns a^-1 mod m, computed with the extended Euclidean
// algorithm and normalized into [0, m). It fails with ErrNoInverse when
// gcd(a, m) != 1.
func Inverse(a, m *Element) (Element, error) {
	var t, newT, r, newR, quo, tmp, one Element
	one.SetUint64(1)
	newT.SetUint64(1)
	r.Set(m)
	newR.Set(a).Mod(m)

	for !newR.IsZero() {
		quo.Div(&r, &newR)

		tmp.Mul(&quo, &newT)
		tmp.Sub(&t, &tmp)
		t.Set(&newT)
		newT.Set(&tmp)

		tmp.Mul(&quo, &newR)
		tmp.Sub(&r, &tmp)
		r.Set(&newR)
		newR.Set(&tmp)
	}

	if r.Cmp(&one) > 0 {
		return Element{}, ErrNoInverse
	}
	if t.Sign() < 0 {
		t.Add(&t, m)
	}
	debug.Assert(t.Sign() >= 0 && t.Cmp(m) < 0, "inverse not normalized into [0, m)")
	return t, nil
}

// Legendre returns the Legendre symbol of a with respect to the odd prime
// p: 1 for a nonzero quadratic residue, -1 for a non-residue, 0 for a = 0.
// Sqrt uses it as the residue check before running Tonelli-Shanks.
func Legendre(a, p *Element) int {
	var red Element
	red.Set(a).Mod(p)
	if red.IsZero() {
		return 0
	}
	e := Exp(&red, (p.Uint64()-1)/2, p)
	if e.IsOne() {
		return 1
	}
	return -1
}

// Sqrt returns a square root of a modulo the odd prime p, using the
// Tonelli-Shanks algorithm. Only one of the two roots is returned; the
// caller derives the other as p - x. Fails with ErrNoSquareRoot when a is
// not a quadratic residue mod p.
//
// The exponent bookkeeping runs on machine words, so p must fit in a
// uint64; larger moduli fail with ErrModulusTooLarge.
func Sqrt(a, p *Element) (Element, error) {
	var red Element
	red.Set(a).Mod(p)
	if red.IsZero() {
		return Element{}, nil
	}

	if !p.IsUint64() {
		return Element{}, ErrModulusTooLarge
	}
	pu := p.Uint64()

	if Legendre(&red, p) != 1 {
		return Element{}, ErrNoSquareRoot
	}
	exp := (pu - 1) / 2

	// Write p - 1 = q * 2^s with q odd.
	q := pu - 1
	s := uint64(0)
	for q%2 == 0 {
		q /= 2
		s++
	}

	// Find a quadratic non-residue z.
	var z, one Element
	one.SetUint64(1)
	z.SetUint64(2)
	for e := Exp(&z, exp, p); e.IsOne(); e = Exp(&z, exp, p) {
		z.Add(&z, &one)
	}

	c := Exp(&z, q, p)
	x := Exp(&red, (q+1)/2, p)
	t := Exp(&red, q, p)
	m := s

	for !t.IsOne() {
		// Smallest i with 0 < i < m such that t^(2^i) = 1.
		i := uint64(1)
		for e := Exp(&t, 1<<i, p); i < m && !e.IsOne(); e = Exp(&t, 1<<i, p) {
			i++
		}
		if i == m {
			// Cannot happen for a true residue; treated as a contract
			// violation rather than a panic.
			return Element{}, ErrNoSquareRoot
		}
		b := Exp(&c, 1<<(m-i-1), p)
		x.Mul(&x, &b).Mod(p)
		t.Mul(&t, &b).Mul(&t, &b).Mod(p)
		c.Mul(&b, &b).Mod(p)
		m = i
	}

	var check Element
	check.Mul(&x, &x).Mod(p)
	debug.Assert(check.Equal(&red), "square root does not square back")
	return x, nil
}
