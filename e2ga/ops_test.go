package e2ga

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomInts(r *rand.Rand) Multivector[int] {
	var m Multivector[int]
	for i := range m {
		m[i] = r.IntN(19) - 9
	}
	return m
}

func TestAdd(t *testing.T) {
	assert.Equal(t, New(6, 8, 10, 12), New(1, 2, 3, 4).Add(New(5, 6, 7, 8)))
	assert.Equal(t, New(-4, -4, -4, -4), New(1, 2, 3, 4).Sub(New(5, 6, 7, 8)))
	assert.Equal(t, New(-1, -2, -3, -4), New(1, 2, 3, 4).Neg())
	assert.Equal(t, New(3, 6, 9, 12), New(1, 2, 3, 4).Scale(3))
}

func TestScalarArithmetic(t *testing.T) {
	m := New(1, 2, 3, 4)
	assert.Equal(t, New(6, 2, 3, 4), m.AddScalar(5))
	assert.Equal(t, New(-4, 2, 3, 4), m.SubScalar(5))
	assert.Equal(t, New(4, -2, -3, -4), ScalarSub(5, m))
	assert.Equal(t, New(1, 2, 3, 4), m)
}

func TestMul(t *testing.T) {
	assert.Equal(t, New(0, 0, 0, 1), New(1, 0, 0, 0).Mul(New(0, 0, 0, 1)))
	assert.Equal(t, New(-1, 0, 0, 0), New(0, 0, 0, 1).Mul(New(0, 0, 0, 1)))

	e1, e2, e12 := UnitE1[int](), UnitE2[int](), UnitE12[int]()
	assert.Equal(t, UnitScalar[int](), e1.Mul(e1))
	assert.Equal(t, UnitScalar[int](), e2.Mul(e2))
	assert.Equal(t, e12, e1.Mul(e2))
	assert.Equal(t, e12.Neg(), e2.Mul(e1))
	assert.Equal(t, e2, e1.Mul(e12))
	assert.Equal(t, e1.Neg(), e2.Mul(e12))
}

func TestWedge(t *testing.T) {
	e1, e2 := UnitE1[int](), UnitE2[int]()
	assert.Equal(t, UnitE12[int](), e1.Wedge(e2))
	assert.Equal(t, UnitE12[int]().Neg(), e2.Wedge(e1))
	assert.True(t, e1.Wedge(e1).IsZero())
	assert.True(t, e1.Wedge(UnitE12[int]()).IsZero())
	assert.Equal(t, New(3, 6, 9, 12), New(1, 2, 3, 4).WedgeScalar(3))
}

func TestDot(t *testing.T) {
	a, b := New(1, 2, 3, 4), New(5, 6, 7, 8)
	assert.Equal(t, New(70, 0, 0, 0), a.Dot(b))
	assert.Equal(t, a.Dot(b), b.Dot(a))
	assert.Equal(t, New(2, 0, 0, 0), a.DotScalar(2))
}

func TestContract(t *testing.T) {
	e1, e2, e12 := UnitE1[int](), UnitE2[int](), UnitE12[int]()

	assert.Equal(t, e2, e1.LeftContract(e12))
	assert.Equal(t, e1.Neg(), e2.LeftContract(e12))
	assert.True(t, e12.LeftContract(e1).IsZero())
	assert.Equal(t, UnitScalar[int]().Neg(), e12.LeftContract(e12))

	assert.Equal(t, e2.Neg(), e12.RightContract(e1))
	assert.Equal(t, e1, e12.RightContract(e2))
	assert.True(t, e1.RightContract(e12).IsZero())
	assert.Equal(t, UnitScalar[int]().Neg(), e12.RightContract(e12))

	a := New(1, 2, 3, 4)
	assert.Equal(t, New(2, 0, 0, 0), a.LeftContractScalar(2))
	assert.Equal(t, a.Scale(2), a.RightContractScalar(2))
}

func TestLeftContractBivectorTerm(t *testing.T) {
	a := New(0, 0, 0, 3)
	b := New(0, 0, 0, 5)
	assert.Equal(t, New(-15, 0, 0, 0), a.LeftContract(b))
}

func TestInvolutions(t *testing.T) {
	assert.Equal(t, New(1, 1, 1, -2), New(1, 1, 1, 2).Reverse())
	assert.Equal(t, New(1, -2, -3, -4), New(1, 2, 3, 4).Conjugate())
	assert.Equal(t, New(1, -2, -3, 4), New(1, 2, 3, 4).Involute())
}

func TestDual(t *testing.T) {
	a, b, c, d := 1, 2, 3, 4
	m := New(a, b, c, d)
	assert.Equal(t, New(-d, -c, b, a), m.Dual())
	assert.Equal(t, m.Neg(), m.Dual().Dual())
	assert.Equal(t, m, m.Dual().Dual().Dual().Dual())
	assert.Equal(t, m.Mul(Pseudoscalar[int]()), m.Dual())
}

func TestRingAxioms(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	one, zero := UnitScalar[int](), Zero[int]()

	for range 200 {
		a, b, c := randomInts(r), randomInts(r), randomInts(r)

		assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
		assert.Equal(t, a, a.Add(zero))
		assert.True(t, a.Add(a.Neg()).IsZero())
		assert.Equal(t, a.Add(b), b.Add(a))
		assert.True(t, a.Sub(a).IsZero())

		assert.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
		assert.Equal(t, a.Mul(b).Add(a.Mul(c)), a.Mul(b.Add(c)))
		assert.Equal(t, a.Mul(c).Add(b.Mul(c)), a.Add(b).Mul(c))
		assert.Equal(t, a, one.Mul(a))
		assert.Equal(t, a, a.Mul(one))
		assert.True(t, zero.Mul(a).IsZero())

		assert.Equal(t, a.Wedge(b).Wedge(c), a.Wedge(b.Wedge(c)))
		assert.Equal(t, a.Dot(b), b.Dot(a))
	}
}

func TestInvolutionLaws(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for range 200 {
		a, b := randomInts(r), randomInts(r)

		assert.Equal(t, a, a.Reverse().Reverse())
		assert.Equal(t, a, a.Involute().Involute())
		assert.Equal(t, a, a.Conjugate().Conjugate())
		assert.Equal(t, b.Reverse().Mul(a.Reverse()), a.Mul(b).Reverse())
		assert.Equal(t, a.Involute().Mul(b.Involute()), a.Mul(b).Involute())
		assert.Equal(t, b.Conjugate().Mul(a.Conjugate()), a.Mul(b).Conjugate())
	}
}

func TestVectorWedge(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))

	for range 100 {
		v, w := randomInts(r).Grade(1), randomInts(r).Grade(1)
		assert.Equal(t, w.Wedge(v).Neg(), v.Wedge(w))
		assert.True(t, v.Wedge(v).IsZero())
	}
}

func TestUnsigned(t *testing.T) {
	a, b := New[uint8](1, 2, 3, 4), New[uint8](5, 6, 7, 8)
	assert.Equal(t, New[uint8](6, 8, 10, 12), a.Add(b))
	assert.Equal(t, a.Mul(b).Mul(a), a.Mul(b.Mul(a)))
}
