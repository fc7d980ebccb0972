package ecc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/curvekit/curvekit/ff"
)

var elementComparer = cmp.Comparer(func(a, b ff.Element) bool {
	return a.Equal(&b)
})

func TestPointEqual(t *testing.T) {
	p := NewPoint(5, 6, 0)
	q := NewPoint(5, 6, 0)
	assert.True(t, p.Equal(q))

	// z participates in structural equality
	r := NewPoint(5, 6, 1)
	assert.False(t, p.Equal(r))

	assert.False(t, p.Equal(NewPoint(5, 7, 0)))
}

func TestPointAffineEqual(t *testing.T) {
	m := ff.NewElement(17)

	// (13, 7, 2) and (15, 12, 1) both normalize to (15, 12) mod 17
	p := NewPoint(13, 7, 2)
	q := NewPoint(15, 12, 1)
	ok, err := p.AffineEqual(q, &m)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.AffineEqual(NewPoint(15, 11, 1), &m)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPointAffineEqualZeroZ(t *testing.T) {
	m := ff.NewElement(17)

	// a zero z on either side falls back to the structural comparison
	p := NewPoint(15, 12, 0)
	ok, err := p.AffineEqual(NewPoint(15, 12, 0), &m)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.AffineEqual(NewPoint(15, 12, 1), &m)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPointAffineEqualNoInverse(t *testing.T) {
	m := ff.NewElement(15)
	p := NewPoint(1, 2, 3) // gcd(3, 15) != 1
	_, err := p.AffineEqual(NewPoint(1, 2, 1), &m)
	assert.ErrorIs(t, err, ff.ErrNoInverse)
}

func TestPointString(t *testing.T) {
	p := NewPoint(5, 6, 1)
	assert.Equal(t, "(5, 6, 1)", p.String())
}

func TestPointDiff(t *testing.T) {
	p := NewPoint(5, 6, 0)
	q := NewPoint(5, 6, 0)
	if diff := cmp.Diff(p, q, elementComparer); diff != "" {
		t.Errorf("points differ (-want +got):\n%s", diff)
	}
}
