package e2ga

import "github.com/xernobyl/cggeomalg/scalar"

func (a Multivector[S]) Add(b Multivector[S]) Multivector[S] {
	return Multivector[S]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Multivector[S]) Sub(b Multivector[S]) Multivector[S] {
	return Multivector[S]{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a Multivector[S]) Neg() Multivector[S] {
	return Multivector[S]{-a[0], -a[1], -a[2], -a[3]}
}

// Scale multiplies every component by s.
func (a Multivector[S]) Scale(s S) Multivector[S] {
	return Multivector[S]{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// AddScalar returns a + s. Only the scalar part changes.
func (a Multivector[S]) AddScalar(s S) Multivector[S] {
	return Multivector[S]{a[0] + s, a[1], a[2], a[3]}
}

// SubScalar returns a - s.
func (a Multivector[S]) SubScalar(s S) Multivector[S] {
	return Multivector[S]{a[0] - s, a[1], a[2], a[3]}
}

// ScalarSub returns s - a.
func ScalarSub[S scalar.Scalar](s S, a Multivector[S]) Multivector[S] {
	return Multivector[S]{s - a[0], -a[1], -a[2], -a[3]}
}

// Mul returns the geometric product ab.
func (a Multivector[S]) Mul(b Multivector[S]) Multivector[S] {
	return Multivector[S]{
		a[0]*b[0] + a[1]*b[1] + a[2]*b[2] - a[3]*b[3],
		a[0]*b[1] + a[1]*b[0] - a[2]*b[3] + a[3]*b[2],
		a[0]*b[2] + a[1]*b[3] + a[2]*b[0] - a[3]*b[1],
		a[0]*b[3] + a[1]*b[2] - a[2]*b[1] + a[3]*b[0],
	}
}

// Wedge returns the outer product a ∧ b.
func (a Multivector[S]) Wedge(b Multivector[S]) Multivector[S] {
	return Multivector[S]{
		a[0] * b[0],
		a[0]*b[1] + a[1]*b[0],
		a[0]*b[2] + a[2]*b[0],
		a[0]*b[3] + a[1]*b[2] - a[2]*b[1] + a[3]*b[0],
	}
}

// Dot returns the scalar product of a and b. The result only has a
// scalar part.
func (a Multivector[S]) Dot(b Multivector[S]) Multivector[S] {
	return Multivector[S]{a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3], 0, 0, 0}
}

// LeftContract returns a ⌋ b.
func (a Multivector[S]) LeftContract(b Multivector[S]) Multivector[S] {
	return Multivector[S]{
		a[0]*b[0] + a[1]*b[1] + a[2]*b[2] - a[3]*b[3],
		a[0]*b[1] - a[2]*b[3],
		a[0]*b[2] + a[1]*b[3],
		a[0] * b[3],
	}
}

// RightContract returns a ⌊ b.
func (a Multivector[S]) RightContract(b Multivector[S]) Multivector[S] {
	return Multivector[S]{
		a[0]*b[0] + a[1]*b[1] + a[2]*b[2] - a[3]*b[3],
		a[1]*b[0] + a[3]*b[2],
		a[2]*b[0] - a[3]*b[1],
		a[3] * b[0],
	}
}

func (a Multivector[S]) WedgeScalar(s S) Multivector[S] {
	return a.Wedge(FromScalar(s))
}

func (a Multivector[S]) DotScalar(s S) Multivector[S] {
	return a.Dot(FromScalar(s))
}

func (a Multivector[S]) LeftContractScalar(s S) Multivector[S] {
	return a.LeftContract(FromScalar(s))
}

func (a Multivector[S]) RightContractScalar(s S) Multivector[S] {
	return a.RightContract(FromScalar(s))
}

// Reverse reverses the order of the vectors in every blade.
func (a Multivector[S]) Reverse() Multivector[S] {
	return Multivector[S]{a[0], a[1], a[2], -a[3]}
}

// Conjugate returns the Clifford conjugate, the reverse of the grade
// involution.
func (a Multivector[S]) Conjugate() Multivector[S] {
	return Multivector[S]{a[0], -a[1], -a[2], -a[3]}
}

// Involute returns the grade involution, which negates every vector.
func (a Multivector[S]) Involute() Multivector[S] {
	return Multivector[S]{a[0], -a[1], -a[2], a[3]}
}

// Dual returns a e12. Applying it twice negates a.
func (a Multivector[S]) Dual() Multivector[S] {
	return Multivector[S]{-a[3], -a[2], a[1], a[0]}
}
