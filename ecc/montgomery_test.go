package ecc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curvekit/curvekit/ff"
)

// 3y² = x³ + 2x² + x mod 17, generator (3, 4) of order 6.
func testMontgomery(t *testing.T, opts ...Option) *Montgomery {
	t.Helper()
	c, err := NewMontgomery(2, 3, 17, opts...)
	require.NoError(t, err)
	return c
}

func TestNewMontgomeryRejectsDegenerate(t *testing.T) {
	_, err := NewMontgomery(2, 3, 2)
	assert.Error(t, err)

	_, err = NewMontgomery(0, 3, 17)
	assert.Error(t, err)

	_, err = NewMontgomery(2, 0, 17)
	assert.Error(t, err)
}

func TestMontgomeryIsValid(t *testing.T) {
	c := testMontgomery(t)

	assert.True(t, c.IsValid(NewPoint(3, 4, 0)))
	assert.True(t, c.IsValid(NewPoint(0, 0, 0)))
	assert.True(t, c.IsValid(c.Identity()))
	assert.False(t, c.IsValid(NewPoint(5, 8, 0)))
}

func TestMontgomeryAt(t *testing.T) {
	c := testMontgomery(t)
	_, _, err := c.At(ff.NewElement(4))
	assert.ErrorIs(t, err, ErrRecoveryNotSupported)
}

func TestMontgomeryAdd(t *testing.T) {
	c := testMontgomery(t)
	p := NewPoint(3, 4, 0)

	r, err := c.Add(c.Identity(), p)
	require.NoError(t, err)
	assert.True(t, r.Equal(p))
	r, err = c.Add(p, c.Identity())
	require.NoError(t, err)
	assert.True(t, r.Equal(p))

	// p + (-p) = identity
	r, err = c.Add(p, NewPoint(3, 13, 0))
	require.NoError(t, err)
	assert.True(t, r.Equal(c.Identity()))

	// tangent branch; finite results carry z = 1
	r, err = c.Add(p, p)
	require.NoError(t, err)
	assert.True(t, r.Equal(NewPoint(6, 8, 1)))

	// chord branch
	r, err = c.Add(r, p)
	require.NoError(t, err)
	assert.True(t, r.Equal(NewPoint(0, 0, 1)))

	_, err = c.Add(NewPoint(5, 8, 0), p)
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestMontgomeryDouble(t *testing.T) {
	c := testMontgomery(t)

	r, err := c.Double(NewPoint(3, 4, 0))
	require.NoError(t, err)
	assert.True(t, r.Equal(NewPoint(6, 8, 1)))

	r, err = c.Double(c.Identity())
	require.NoError(t, err)
	assert.True(t, r.Equal(c.Identity()))

	// (0, 0) is 2-torsion: the tangent denominator 2*B*y vanishes
	_, err = c.Double(NewPoint(0, 0, 0))
	assert.ErrorIs(t, err, ff.ErrNoInverse)
}

func TestMontgomeryMul(t *testing.T) {
	c := testMontgomery(t)
	p := NewPoint(3, 4, 0)

	r, err := c.Mul(0, p)
	require.NoError(t, err)
	assert.True(t, r.Equal(c.Identity()))

	r, err = c.Mul(1, p)
	require.NoError(t, err)
	assert.True(t, r.Equal(p))

	r, err = c.Mul(2, p)
	require.NoError(t, err)
	assert.True(t, r.Equal(NewPoint(6, 8, 1)))

	q := ff.NewElement(17)
	r, err = c.Mul(5, p)
	require.NoError(t, err)
	ok, err := r.AffineEqual(NewPoint(3, 13, 1), &q)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMontgomeryOrder(t *testing.T) {
	c := testMontgomery(t)

	n, err := c.Order(NewPoint(3, 4, 0))
	require.NoError(t, err)
	assert.Equal(t, uint64(6), n)

	_, err = c.Order(c.Identity())
	assert.ErrorIs(t, err, ErrInvalidPoint)

	_, err = c.Order(NewPoint(5, 8, 0))
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestMontgomeryString(t *testing.T) {
	c := testMontgomery(t)
	assert.Equal(t, "(3*y² = x³ + 2*x² + x) mod 17", c.String())
	assert.Equal(t, MONTGOMERY, c.ID())
}
