package e2ga

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
	E12
)

func (b Basis) String() string {
	switch b {
	case C:
		return "1"
	case E1:
		return "e1"
	case E2:
		return "e2"
	case E12:
		return "e12"
	default:
		return fmt.Sprintf("Basis(%d)", int(b))
	}
}

// Multivector is a general multivector in the orthonormal basis
// {1, e1, e2, e12}.
type Multivector[S scalar.Scalar] [4]S

// View names the components of a Multivector. It has the same
// memory layout as Multivector.
type View[S scalar.Scalar] struct {
	Scalar S
	E1     S
	E2     S
	E12    S
}

func New[S scalar.Scalar](scalar, e1, e2, e12 S) Multivector[S] {
	return Multivector[S]{scalar, e1, e2, e12}
}

func Zero[S scalar.Scalar]() Multivector[S] {
	return Multivector[S]{}
}

// FromScalar returns the multivector whose only nonzero part is s.
func FromScalar[S scalar.Scalar](s S) Multivector[S] {
	return Multivector[S]{s, 0, 0, 0}
}

func UnitScalar[S scalar.Scalar]() Multivector[S] {
	return Multivector[S]{1, 0, 0, 0}
}

func UnitE1[S scalar.Scalar]() Multivector[S] {
	return Multivector[S]{0, 1, 0, 0}
}

func UnitE2[S scalar.Scalar]() Multivector[S] {
	return Multivector[S]{0, 0, 1, 0}
}

func UnitE12[S scalar.Scalar]() Multivector[S] {
	return Multivector[S]{0, 0, 0, 1}
}

// Pseudoscalar returns the unit pseudoscalar e12.
func Pseudoscalar[S scalar.Scalar]() Multivector[S] {
	return UnitE12[S]()
}

// InvPseudoscalar returns -e12, the inverse of e12.
func InvPseudoscalar[S scalar.Scalar]() Multivector[S] {
	return UnitE12[S]().Neg()
}

func (m Multivector[S]) Len() int {
	return len(m)
}

func (m Multivector[S]) IsZero() bool {
	return m[0] == 0 && m[1] == 0 && m[2] == 0 && m[3] == 0
}

// Grade projects m onto grade k. Grades outside [0, 2] project to zero.
func (m Multivector[S]) Grade(k int) Multivector[S] {
	switch k {
	case 0:
		return Multivector[S]{m[0], 0, 0, 0}
	case 1:
		return Multivector[S]{0, m[1], m[2], 0}
	case 2:
		return Multivector[S]{0, 0, 0, m[3]}
	default:
		return Multivector[S]{}
	}
}

// View returns the components of m by name. The view aliases m.
func (m *Multivector[S]) View() *View[S] {
	return (*View[S])(unsafe.Pointer(m))
}

func (m Multivector[S]) Array() [4]S {
	return m
}

func (m Multivector[S]) Components() (scalar, e1, e2, e12 S) {
	return m[0], m[1], m[2], m[3]
}

func (m Multivector[S]) String() string {
	return fmt.Sprintf("%v + %v^e1 + %v^e2 + %v^e12", m[0], m[1], m[2], m[3])
}
