// Package e3ga implements the three-dimensional Euclidean geometric
// algebra Cl(3,0,0).
//
// A Multivector is an array of eight scalars laid out as
//
//	scalar, e1, e2, e3, e12, e23, e31, e123
//
// The bivector order e12, e23, e31 fixes the signs of every product
// table in this package. Unit blades square as
//
//	e1² = e2² = e3² = 1
//	e12² = e23² = e31² = e123² = -1
//
// Products are methods (Mul, Wedge, Dot, LeftContract, RightContract);
// everything that needs division or a square root is a package level
// function over floating point scalars:
//
//	r := e3ga.Rotor(e3ga.UnitE12[float64](), math.Pi/2)
//	v := e3ga.Rotate(r, e3ga.UnitE1[float64]()) // ≈ e2
package e3ga
