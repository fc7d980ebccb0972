package ecc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curvekit/curvekit/ff"
)

func TestNewEdwardsRejectsDegenerate(t *testing.T) {
	_, err := NewEdwards(2, 3, 2)
	assert.Error(t, err)

	_, err = NewEdwards(0, 3, 17)
	assert.Error(t, err)

	_, err = NewEdwards(2, 0, 17)
	assert.Error(t, err)
}

func TestEdwardsIsValid(t *testing.T) {
	// 2x² + y² = 1 + 3x²y² mod 17
	c, err := NewEdwards(2, 3, 17)
	require.NoError(t, err)

	assert.True(t, c.IsValid(NewPoint(1, 3, 0)))
	assert.False(t, c.IsValid(NewPoint(5, 1, 0)))
	assert.True(t, c.IsValid(c.Identity()))
}

func TestEdwardsAddFormula(t *testing.T) {
	c, err := NewEdwards(2, 3, 17)
	require.NoError(t, err)

	r, err := c.Add(NewPoint(1, 3, 0), NewPoint(1, 3, 0))
	require.NoError(t, err)
	assert.True(t, r.Equal(NewPoint(16, 14, 0)))

	_, err = c.Add(NewPoint(5, 1, 0), NewPoint(1, 3, 0))
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

// 16x² + y² = 1 + 3x²y² mod 17: the addition law is exact for a = q-1,
// so the group structure can be exercised end to end. (1, 4) generates a
// subgroup of order 8.
func TestEdwardsGroupLaw(t *testing.T) {
	c, err := NewEdwards(16, 3, 17)
	require.NoError(t, err)
	p := NewPoint(1, 4, 0)
	require.True(t, c.IsValid(p))

	// the unified law absorbs the identity without a branch, on either side
	r, err := c.Add(c.Identity(), p)
	require.NoError(t, err)
	assert.True(t, r.Equal(p))
	r, err = c.Add(p, c.Identity())
	require.NoError(t, err)
	assert.True(t, r.Equal(p))

	two, err := c.Double(p)
	require.NoError(t, err)
	assert.True(t, two.Equal(NewPoint(13, 0, 0)))
	assert.True(t, c.IsValid(two))

	four, err := c.Mul(4, p)
	require.NoError(t, err)
	assert.True(t, four.Equal(NewPoint(0, 16, 0)))

	eight, err := c.Mul(8, p)
	require.NoError(t, err)
	assert.True(t, eight.Equal(c.Identity()))

	n, err := c.Order(p)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), n)

	r, err = c.Mul(0, p)
	require.NoError(t, err)
	assert.True(t, r.Equal(c.Identity()))

	r, err = c.Mul(1, p)
	require.NoError(t, err)
	assert.True(t, r.Equal(p))
}

func TestEdwardsAt(t *testing.T) {
	// 12x² + y² = 1 + 2x²y² mod 13; 13 = 5 (mod 8) so x recovery is sound
	c, err := NewEdwards(12, 2, 13)
	require.NoError(t, err)

	p1, p2, err := c.At(ff.NewElement(2))
	require.NoError(t, err)
	assert.True(t, p1.Equal(NewPoint(10, 2, 0)))
	assert.True(t, p2.Equal(NewPoint(3, 2, 0)))
	assert.True(t, c.IsValid(p1))
	assert.True(t, c.IsValid(p2))
}

func TestEdwardsAtUndefinedModulus(t *testing.T) {
	// 17 = 1 (mod 8): the recovery exponent (q+3)/8 is not a square root
	c, err := NewEdwards(2, 3, 17)
	require.NoError(t, err)

	_, _, err = c.At(ff.NewElement(3))
	assert.ErrorIs(t, err, ErrRecoveryUndefined)
}

func TestEdwardsTwoTorsion(t *testing.T) {
	// x² + y² = 1 + 3x²y² mod 17; (1, 0) is 2-torsion
	c, err := NewEdwards(1, 3, 17)
	require.NoError(t, err)
	p := NewPoint(1, 0, 0)
	require.True(t, c.IsValid(p))

	r, err := c.Double(p)
	require.NoError(t, err)
	assert.True(t, r.Equal(c.Identity()))

	n, err := c.Order(p)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
}

func TestEdwardsString(t *testing.T) {
	c, err := NewEdwards(2, 3, 17)
	require.NoError(t, err)
	assert.Equal(t, "(2*x² + y² = 1 + 3*x²*y²) mod 17", c.String())
	assert.Equal(t, EDWARDS, c.ID())
}
