package e2ga

import "github.com/xernobyl/cggeomalg/scalar"

// Rotor returns the rotor cos(θ/2) - sin(θ/2) e12, which turns e1 towards
// e2 by angle radians.
func Rotor[S scalar.Float](angle S) Multivector[S] {
	sin, cos := scalar.Sincos(angle / 2)
	return Multivector[S]{cos, 0, 0, -sin}
}

// Rotate applies the rotor r to m as r m ~r.
func Rotate[S scalar.Float](r, m Multivector[S]) Multivector[S] {
	return r.Mul(m).Mul(r.Reverse())
}
