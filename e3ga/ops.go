package e3ga

import "github.com/xernobyl/cggeomalg/scalar"

func (a Multivector[S]) Add(b Multivector[S]) Multivector[S] {
	var r Multivector[S]
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func (a Multivector[S]) Sub(b Multivector[S]) Multivector[S] {
	var r Multivector[S]
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func (a Multivector[S]) Neg() Multivector[S] {
	var r Multivector[S]
	for i := range r {
		r[i] = -a[i]
	}
	return r
}

// Scale multiplies every component by s.
func (a Multivector[S]) Scale(s S) Multivector[S] {
	var r Multivector[S]
	for i := range r {
		r[i] = a[i] * s
	}
	return r
}

// AddScalar returns a + s. Only the scalar part changes.
func (a Multivector[S]) AddScalar(s S) Multivector[S] {
	a[0] += s
	return a
}

// SubScalar returns a - s.
func (a Multivector[S]) SubScalar(s S) Multivector[S] {
	a[0] -= s
	return a
}

// ScalarSub returns s - a.
func ScalarSub[S scalar.Scalar](s S, a Multivector[S]) Multivector[S] {
	return a.Neg().AddScalar(s)
}

// Mul returns the geometric product ab.
func (a Multivector[S]) Mul(b Multivector[S]) Multivector[S] {
	return Multivector[S]{
		a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3] - a[4]*b[4] - a[5]*b[5] - a[6]*b[6] - a[7]*b[7],
		a[0]*b[1] + a[1]*b[0] - a[2]*b[4] + a[3]*b[6] + a[4]*b[2] - a[5]*b[7] - a[6]*b[3] - a[7]*b[5],
		a[0]*b[2] + a[1]*b[4] + a[2]*b[0] - a[3]*b[5] - a[4]*b[1] + a[5]*b[3] - a[6]*b[7] - a[7]*b[6],
		a[0]*b[3] - a[1]*b[6] + a[2]*b[5] + a[3]*b[0] - a[4]*b[7] - a[5]*b[2] + a[6]*b[1] - a[7]*b[4],
		a[0]*b[4] + a[1]*b[2] - a[2]*b[1] + a[3]*b[7] + a[4]*b[0] - a[5]*b[6] + a[6]*b[5] + a[7]*b[3],
		a[0]*b[5] + a[1]*b[7] + a[2]*b[3] - a[3]*b[2] + a[4]*b[6] + a[5]*b[0] - a[6]*b[4] + a[7]*b[1],
		a[0]*b[6] - a[1]*b[3] + a[2]*b[7] + a[3]*b[1] - a[4]*b[5] + a[5]*b[4] + a[6]*b[0] + a[7]*b[2],
		a[0]*b[7] + a[1]*b[5] + a[2]*b[6] + a[3]*b[4] + a[4]*b[3] + a[5]*b[1] + a[6]*b[2] + a[7]*b[0],
	}
}

// Wedge returns the outer product a ∧ b.
func (a Multivector[S]) Wedge(b Multivector[S]) Multivector[S] {
	return Multivector[S]{
		a[0] * b[0],
		a[0]*b[1] + a[1]*b[0],
		a[0]*b[2] + a[2]*b[0],
		a[0]*b[3] + a[3]*b[0],
		a[0]*b[4] + a[1]*b[2] - a[2]*b[1] + a[4]*b[0],
		a[0]*b[5] + a[2]*b[3] - a[3]*b[2] + a[5]*b[0],
		a[0]*b[6] - a[1]*b[3] + a[3]*b[1] + a[6]*b[0],
		a[0]*b[7] + a[1]*b[5] + a[2]*b[6] + a[3]*b[4] + a[4]*b[3] + a[5]*b[1] + a[6]*b[2] + a[7]*b[0],
	}
}

// Dot returns the scalar product of a and b, the scalar part of ab.
func (a Multivector[S]) Dot(b Multivector[S]) Multivector[S] {
	return Multivector[S]{
		a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3] - a[4]*b[4] - a[5]*b[5] - a[6]*b[6] - a[7]*b[7],
	}
}

// LeftContract returns a ⌋ b: of each product of an r-blade of a with an
// s-blade of b only the grade s-r part is kept.
func (a Multivector[S]) LeftContract(b Multivector[S]) Multivector[S] {
	return Multivector[S]{
		a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3] - a[4]*b[4] - a[5]*b[5] - a[6]*b[6] - a[7]*b[7],
		a[0]*b[1] - a[2]*b[4] + a[3]*b[6] - a[5]*b[7],
		a[0]*b[2] + a[1]*b[4] - a[3]*b[5] - a[6]*b[7],
		a[0]*b[3] - a[1]*b[6] + a[2]*b[5] - a[4]*b[7],
		a[0]*b[4] + a[3]*b[7],
		a[0]*b[5] + a[1]*b[7],
		a[0]*b[6] + a[2]*b[7],
		a[0] * b[7],
	}
}

// RightContract returns a ⌊ b, keeping the grade r-s parts.
func (a Multivector[S]) RightContract(b Multivector[S]) Multivector[S] {
	return Multivector[S]{
		a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3] - a[4]*b[4] - a[5]*b[5] - a[6]*b[6] - a[7]*b[7],
		a[1]*b[0] + a[4]*b[2] - a[6]*b[3] - a[7]*b[5],
		a[2]*b[0] - a[4]*b[1] + a[5]*b[3] - a[7]*b[6],
		a[3]*b[0] - a[5]*b[2] + a[6]*b[1] - a[7]*b[4],
		a[4]*b[0] + a[7]*b[3],
		a[5]*b[0] + a[7]*b[1],
		a[6]*b[0] + a[7]*b[2],
		a[7] * b[0],
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

// Reverse negates the grades k with k(k-1)/2 odd: bivectors and the
// trivector.
func (a Multivector[S]) Reverse() Multivector[S] {
	return Multivector[S]{a[0], a[1], a[2], a[3], -a[4], -a[5], -a[6], -a[7]}
}

// Conjugate negates vectors and bivectors.
func (a Multivector[S]) Conjugate() Multivector[S] {
	return Multivector[S]{a[0], -a[1], -a[2], -a[3], -a[4], -a[5], -a[6], a[7]}
}

// Involute negates the odd grades.
func (a Multivector[S]) Involute() Multivector[S] {
	return Multivector[S]{a[0], -a[1], -a[2], -a[3], a[4], a[5], a[6], -a[7]}
}

// Dual returns a e123⁻¹. Applying it twice negates a.
func (a Multivector[S]) Dual() Multivector[S] {
	return Multivector[S]{a[7], a[5], a[6], a[4], -a[3], -a[1], -a[2], -a[0]}
}
