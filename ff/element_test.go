package ff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementBasics(t *testing.T) {
	var a, b, c Element
	a.SetUint64(7)
	b.SetUint64(5)

	c.Add(&a, &b)
	assert.Equal(t, "12", c.String())

	c.Sub(&b, &a)
	assert.Equal(t, -1, c.Sign())

	c.Mul(&a, &b)
	assert.Equal(t, "35", c.String())

	m := NewElement(17)
	c.Mod(&m)
	assert.Equal(t, "1", c.String())
}

func TestModNormalizesNegatives(t *testing.T) {
	var c Element
	c.SetInt64(-20)
	m := NewElement(17)
	c.Mod(&m)
	assert.Equal(t, "14", c.String())
	assert.True(t, c.Sign() > 0)
}

func TestOperandConstancy(t *testing.T) {
	a := NewElement(3)
	b := NewElement(4)

	var c Element
	c.Add(&a, &b)
	c.Mul(&c, &c)

	assert.Equal(t, "3", a.String())
	assert.Equal(t, "4", b.String())
}

func TestDiv(t *testing.T) {
	a := NewElement(17)
	b := NewElement(5)
	var q Element
	q.Div(&a, &b)
	assert.Equal(t, "3", q.String())
}

func TestPredicates(t *testing.T) {
	var z Element
	assert.True(t, z.IsZero())
	assert.False(t, z.IsOne())
	assert.True(t, z.IsEven())

	z.SetUint64(1)
	assert.True(t, z.IsOne())
	assert.False(t, z.IsEven())

	z.SetUint64(42)
	assert.True(t, z.IsUint64())
	assert.Equal(t, uint64(42), z.Uint64())
}
