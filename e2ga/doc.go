// Package e2ga implements the two-dimensional Euclidean geometric algebra
// Cl(2,0,0).
//
// A Multivector is a plain array of four scalars in the basis
// {1, e1, e2, e12}, so every operation works on values and nothing is
// allocated:
//
//	a := e2ga.New(1.0, 2.0, 3.0, 4.0)
//	b := e2ga.UnitE12[float64]()
//	c := a.Mul(b).Add(a.Wedge(b))
//
// Go has no operator overloading, so the products are methods:
//
//	a.Mul(b)           geometric product
//	a.Wedge(b)         outer product
//	a.Dot(b)           scalar product
//	a.LeftContract(b)  left contraction
//	a.RightContract(b) right contraction
//
// Operations that divide or take roots (magnitude, inverse, normalization,
// commutators, division) are package level functions constrained to
// floating point scalars.
package e2ga
