/*
Plain coordinate vectors, and their round trip through the grade 1 part
of the algebras. New functions added as needed.
*/

package vec

import (
	"github.com/xernobyl/cggeomalg/e2ga"
	"github.com/xernobyl/cggeomalg/e3ga"
	"github.com/xernobyl/cggeomalg/scalar"
	"golang.org/x/exp/constraints"
)

type Vec2[S scalar.Scalar] [2]S

type Vec3[S scalar.Scalar] [3]S

// Multivector returns v as the vector v0 e1 + v1 e2.
func (v Vec2[S]) Multivector() e2ga.Multivector[S] {
	return e2ga.New(0, v[0], v[1], 0)
}

// Multivector returns v as the vector v0 e1 + v1 e2 + v2 e3.
func (v Vec3[S]) Multivector() e3ga.Multivector[S] {
	return e3ga.New(0, v[0], v[1], v[2], 0, 0, 0, 0)
}

// FromE2 returns the grade 1 part of m. Other grades are dropped.
func FromE2[S scalar.Scalar](m e2ga.Multivector[S]) Vec2[S] {
	return Vec2[S]{m[e2ga.E1], m[e2ga.E2]}
}

// FromE3 returns the grade 1 part of m. Other grades are dropped.
func FromE3[S scalar.Scalar](m e3ga.Multivector[S]) Vec3[S] {
	return Vec3[S]{m[e3ga.E1], m[e3ga.E2], m[e3ga.E3]}
}

func Add[S scalar.Scalar](a, b Vec3[S]) Vec3[S] {
	return Vec3[S]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Sub[S scalar.Scalar](a, b Vec3[S]) Vec3[S] {
	return Vec3[S]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func Mul[S scalar.Scalar](a, b Vec3[S]) Vec3[S] {
	return Vec3[S]{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func Scale[S scalar.Scalar](a Vec3[S], b S) Vec3[S] {
	return Vec3[S]{a[0] * b, a[1] * b, a[2] * b}
}

// Dot is the scalar product of the two vectors.
func Dot[S scalar.Scalar](a, b Vec3[S]) S {
	return a.Multivector().Dot(b.Multivector())[e3ga.C]
}

func Dot2[S scalar.Scalar](a Vec3[S]) S {
	return Dot(a, a)
}

func Length[S scalar.Float](a Vec3[S]) S {
	return e3ga.Magnitude(a.Multivector())
}

// Cross returns a × b, the dual of the bivector a ∧ b.
func Cross[S scalar.Scalar](a, b Vec3[S]) Vec3[S] {
	return FromE3(a.Multivector().Wedge(b.Multivector()).Dual())
}

func Normalize[S scalar.Float](a Vec3[S]) Vec3[S] {
	return FromE3(e3ga.Normalize(a.Multivector()))
}

// Reflect mirrors v in the plane through the origin with normal n, as
// -n v n⁻¹. n need not be unit length, but it panics with
// e3ga.ErrNotInvertible if n is zero.
func Reflect[S scalar.Float](v, n Vec3[S]) Vec3[S] {
	nm := n.Multivector()
	return FromE3(e3ga.Div(nm.Mul(v.Multivector()), nm).Neg())
}

// Rotate applies the rotor r, see e3ga.Rotor.
func Rotate[S scalar.Float](v Vec3[S], r e3ga.Multivector[S]) Vec3[S] {
	return FromE3(e3ga.Rotate(r, v.Multivector()))
}

// Rotate2 turns v by angle radians, counterclockwise.
func Rotate2[S scalar.Float](v Vec2[S], angle S) Vec2[S] {
	return FromE2(e2ga.Rotate(e2ga.Rotor(angle), v.Multivector()))
}

// Wedge2 returns the signed area spanned by a and b, the e12 part of
// a ∧ b.
func Wedge2[S scalar.Scalar](a, b Vec2[S]) S {
	return a.Multivector().Wedge(b.Multivector())[e2ga.E12]
}

func Clamp[T constraints.Ordered](v, min, max T) T {
	if v > max {
		return max
	}

	if v < min {
		return min
	}

	return v
}

func Saturate[T constraints.Float](v T) T {
	return Clamp(v, T(0.0), T(1.0))
}
