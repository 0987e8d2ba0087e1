package e3ga

import (
	"fmt"
	"unsafe"

	"github.com/xernobyl/cggeomalg/scalar"
)

// Basis names a slot of a Multivector. It can be used as an index.
type Basis int

const (
	C Basis = iota
	E1
	E2
	E3
	E12
	E23
	E31
	E123
)

var basisNames = [...]string{"1", "e1", "e2", "e3", "e12", "e23", "e31", "e123"}

func (b Basis) String() string {
	if b < 0 || int(b) >= len(basisNames) {
		return fmt.Sprintf("Basis(%d)", int(b))
	}
	return basisNames[b]
}

// Grade returns the grade of the blade b names.
func (b Basis) Grade() int {
	switch b {
	case C:
		return 0
	case E1, E2, E3:
		return 1
	case E12, E23, E31:
		return 2
	case E123:
		return 3
	default:
		return -1
	}
}

// Multivector is a general multivector in the orthonormal basis
// {1, e1, e2, e3, e12, e23, e31, e123}.
type Multivector[S scalar.Scalar] [8]S

// View names the components of a Multivector. It has the same
// memory layout as Multivector.
type View[S scalar.Scalar] struct {
	Scalar S
	E1     S
	E2     S
	E3     S
	E12    S
	E23    S
	E31    S
	E123   S
}

func New[S scalar.Scalar](scalar, e1, e2, e3, e12, e23, e31, e123 S) Multivector[S] {
	return Multivector[S]{scalar, e1, e2, e3, e12, e23, e31, e123}
}

func Zero[S scalar.Scalar]() Multivector[S] {
	return Multivector[S]{}
}

func FromScalar[S scalar.Scalar](s S) Multivector[S] {
	return Multivector[S]{C: s}
}

// Unit returns the unit blade b.
func Unit[S scalar.Scalar](b Basis) Multivector[S] {
	var m Multivector[S]
	m[b] = 1
	return m
}

func UnitScalar[S scalar.Scalar]() Multivector[S] { return Unit[S](C) }
func UnitE1[S scalar.Scalar]() Multivector[S]     { return Unit[S](E1) }
func UnitE2[S scalar.Scalar]() Multivector[S]     { return Unit[S](E2) }
func UnitE3[S scalar.Scalar]() Multivector[S]     { return Unit[S](E3) }
func UnitE12[S scalar.Scalar]() Multivector[S]    { return Unit[S](E12) }
func UnitE23[S scalar.Scalar]() Multivector[S]    { return Unit[S](E23) }
func UnitE31[S scalar.Scalar]() Multivector[S]    { return Unit[S](E31) }
func UnitE123[S scalar.Scalar]() Multivector[S]   { return Unit[S](E123) }

// Pseudoscalar returns the unit pseudoscalar e123.
func Pseudoscalar[S scalar.Scalar]() Multivector[S] {
	return UnitE123[S]()
}

// InvPseudoscalar returns -e123. e123 squares to -1, so this is its
// inverse.
func InvPseudoscalar[S scalar.Scalar]() Multivector[S] {
	return UnitE123[S]().Neg()
}

func (m Multivector[S]) Len() int {
	return len(m)
}

func (m Multivector[S]) IsZero() bool {
	return m == Multivector[S]{}
}

// Grade projects m onto grade k. Grades outside [0, 3] project to zero.
func (m Multivector[S]) Grade(k int) Multivector[S] {
	var r Multivector[S]
	for i := range m {
		if Basis(i).Grade() == k {
			r[i] = m[i]
		}
	}
	return r
}

// View returns the components of m by name. The view aliases m.
func (m *Multivector[S]) View() *View[S] {
	return (*View[S])(unsafe.Pointer(m))
}

func (m Multivector[S]) Array() [8]S {
	return m
}

func (m Multivector[S]) Components() (scalar, e1, e2, e3, e12, e23, e31, e123 S) {
	return m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7]
}

func (m Multivector[S]) String() string {
	return fmt.Sprintf("%v + %v^e1 + %v^e2 + %v^e3 + %v^e12 + %v^e23 + %v^e31 + %v^e123",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7])
}
