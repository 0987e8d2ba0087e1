package e3ga

import "github.com/xernobyl/cggeomalg/scalar"

// Rotor returns the rotor cos(θ/2) - sin(θ/2) B̂ for a rotation by angle
// radians in the plane of the bivector part B of plane. The rotation
// turns e1 towards e2 for B = e12.
func Rotor[S scalar.Float](plane Multivector[S], angle S) Multivector[S] {
	b := Normalize(plane.Grade(2))
	sin, cos := scalar.Sincos(angle / 2)
	return b.Scale(-sin).AddScalar(cos)
}

// Rotate applies the rotor r to m as r m ~r.
func Rotate[S scalar.Float](r, m Multivector[S]) Multivector[S] {
	return r.Mul(m).Mul(r.Reverse())
}
