package e2ga

import (
	"errors"
	"fmt"

	"github.com/xernobyl/cggeomalg/scalar"
)

// ErrNotInvertible is the panic value of a division by a multivector
// that has no inverse.
var ErrNotInvertible = errors.New("e2ga: multivector is not invertible")

// MagnitudeSquared returns |(m ~m)₀|.
func MagnitudeSquared[S scalar.Float](m Multivector[S]) S {
	return scalar.Abs(m.Mul(m.Reverse())[0])
}

func Magnitude[S scalar.Float](m Multivector[S]) S {
	return scalar.Sqrt(MagnitudeSquared(m))
}

// IMagnitudeSquared is the squared magnitude of the dual of m.
func IMagnitudeSquared[S scalar.Float](m Multivector[S]) S {
	return MagnitudeSquared(m.Dual())
}

func IMagnitude[S scalar.Float](m Multivector[S]) S {
	return Magnitude(m.Dual())
}

// Normalize scales m to unit magnitude. The zero multivector has no
// direction and normalizes to NaN components.
func Normalize[S scalar.Float](m Multivector[S]) Multivector[S] {
	return m.Scale(scalar.Recip(Magnitude(m)))
}

func NormalizeTo[S scalar.Float](m Multivector[S], magnitude S) Multivector[S] {
	return m.Scale(magnitude / Magnitude(m))
}

func DistanceSquared[S scalar.Float](a, b Multivector[S]) S {
	return MagnitudeSquared(a.Sub(b))
}

func Distance[S scalar.Float](a, b Multivector[S]) S {
	return Magnitude(a.Sub(b))
}

// norm is (m m̄)₀. In two dimensions m m̄ has no other parts.
func norm[S scalar.Float](m Multivector[S]) S {
	return m.Mul(m.Conjugate())[0]
}

// IsInvertible reports whether m has a multiplicative inverse. |m|² must
// not be approximately zero, and neither may (m m̄)₀ relative to it; null
// multivectors such as 1+e1 have a nonzero magnitude but no inverse.
func IsInvertible[S scalar.Float](m Multivector[S]) bool {
	mag := MagnitudeSquared(m)
	return !scalar.ApproxZero(mag) && !scalar.ApproxZero(norm(m)/mag)
}

// Inverse returns the two-sided inverse m̄ / (m m̄)₀ of m. The boolean is
// false when m is not invertible, which is stricter than a plain magnitude
// check: null elements are rejected too.
func Inverse[S scalar.Float](m Multivector[S]) (Multivector[S], bool) {
	if !IsInvertible(m) {
		return Multivector[S]{}, false
	}
	return inverseUnchecked(m), true
}

func inverseUnchecked[S scalar.Float](m Multivector[S]) Multivector[S] {
	return m.Conjugate().Scale(scalar.Recip(norm(m)))
}

func mustInverse[S scalar.Float](m Multivector[S]) Multivector[S] {
	if !IsInvertible(m) {
		panic(fmt.Errorf("%w: %v", ErrNotInvertible, m))
	}
	return inverseUnchecked(m)
}

// Commutator returns (ab - ba) / 2.
func Commutator[S scalar.Float](a, b Multivector[S]) Multivector[S] {
	return a.Mul(b).Sub(b.Mul(a)).Scale(0.5)
}

// X is shorthand for Commutator.
func X[S scalar.Float](a, b Multivector[S]) Multivector[S] {
	return Commutator(a, b)
}

// Anticommutator returns (ab + ba) / 2.
func Anticommutator[S scalar.Float](a, b Multivector[S]) Multivector[S] {
	return a.Mul(b).Add(b.Mul(a)).Scale(0.5)
}

// DivScalar returns m / s.
func DivScalar[S scalar.Float](m Multivector[S], s S) Multivector[S] {
	return m.Scale(scalar.Recip(s))
}

// Div returns a b⁻¹. It panics with ErrNotInvertible if b has no inverse.
func Div[S scalar.Float](a, b Multivector[S]) Multivector[S] {
	return a.Mul(mustInverse(b))
}

// ScalarDiv returns s m⁻¹. It panics with ErrNotInvertible if m has no
// inverse.
func ScalarDiv[S scalar.Float](s S, m Multivector[S]) Multivector[S] {
	return mustInverse(m).Scale(s)
}

func AbsDiffEq[S scalar.Float](a, b Multivector[S], epsilon S) bool {
	for i := range a {
		if !scalar.AbsDiffEq(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func RelativeEq[S scalar.Float](a, b Multivector[S], epsilon, maxRelative S) bool {
	for i := range a {
		if !scalar.RelativeEq(a[i], b[i], epsilon, maxRelative) {
			return false
		}
	}
	return true
}

func UlpsEq[S scalar.Float](a, b Multivector[S], epsilon S, maxUlps uint) bool {
	for i := range a {
		if !scalar.UlpsEq(a[i], b[i], epsilon, maxUlps) {
			return false
		}
	}
	return true
}
