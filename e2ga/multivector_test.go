package e2ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, Multivector[int]{0, 0, 0, 0}, Zero[int]())
	assert.True(t, Zero[float32]().IsZero())
	assert.Equal(t, Multivector[int]{7, 0, 0, 0}, FromScalar(7))
	assert.Equal(t, Multivector[int]{1, 2, 3, 4}, New(1, 2, 3, 4))

	assert.Equal(t, Multivector[int]{1, 0, 0, 0}, UnitScalar[int]())
	assert.Equal(t, Multivector[int]{0, 1, 0, 0}, UnitE1[int]())
	assert.Equal(t, Multivector[int]{0, 0, 1, 0}, UnitE2[int]())
	assert.Equal(t, Multivector[int]{0, 0, 0, 1}, UnitE12[int]())
	assert.Equal(t, UnitE12[int](), Pseudoscalar[int]())
	assert.Equal(t, UnitScalar[int](), Pseudoscalar[int]().Mul(InvPseudoscalar[int]()))

	assert.Equal(t, 4, Zero[float64]().Len())
	assert.False(t, UnitE2[int]().IsZero())
}

func TestBasisIndex(t *testing.T) {
	m := New(1, 2, 3, 4)
	assert.Equal(t, 1, m[C])
	assert.Equal(t, 2, m[E1])
	assert.Equal(t, 3, m[E2])
	assert.Equal(t, 4, m[E12])

	m[E2] = 9
	assert.Equal(t, Multivector[int]{1, 2, 9, 4}, m)

	assert.Equal(t, "e12", E12.String())
	assert.Equal(t, "Basis(7)", Basis(7).String())
}

func TestIndexOutOfRange(t *testing.T) {
	m := New(1, 2, 3, 4)
	i := m.Len()
	assert.Panics(t, func() { _ = m[i] })
}

func TestView(t *testing.T) {
	m := New(1.0, 2.0, 3.0, 4.0)
	v := m.View()
	assert.Equal(t, View[float64]{Scalar: 1, E1: 2, E2: 3, E12: 4}, *v)

	v.E12 = -5
	assert.Equal(t, -5.0, m[3])

	m[0] = 8
	assert.Equal(t, 8.0, v.Scalar)
}

func TestGrade(t *testing.T) {
	m := New(1, 2, 3, 4)
	assert.Equal(t, Multivector[int]{1, 0, 0, 0}, m.Grade(0))
	assert.Equal(t, Multivector[int]{0, 2, 3, 0}, m.Grade(1))
	assert.Equal(t, Multivector[int]{0, 0, 0, 4}, m.Grade(2))
	assert.True(t, m.Grade(3).IsZero())
	assert.True(t, m.Grade(-1).IsZero())

	assert.Equal(t, m, m.Grade(0).Add(m.Grade(1)).Add(m.Grade(2)))
	for k := range 3 {
		assert.Equal(t, m.Grade(k), m.Grade(k).Grade(k))
	}
}

func TestComponents(t *testing.T) {
	s, e1, e2, e12 := New[int8](1, -2, 3, -4).Components()
	assert.Equal(t, []int8{1, -2, 3, -4}, []int8{s, e1, e2, e12})
	assert.Equal(t, [4]uint{1, 2, 3, 4}, New[uint](1, 2, 3, 4).Array())
}

func TestString(t *testing.T) {
	assert.Equal(t, "1 + 2^e1 + 3^e2 + -4^e12", New(1, 2, 3, -4).String())
}
