/*
Scalar types a multivector can be built from, and the handful of
floating point helpers the algebra needs.
*/

package scalar

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is a commutative ring with unit: anything that supports
// +, - and * with the identities 0 and 1.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Signed scalars are ordered around zero.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Float scalars additionally support division, roots and approximate
// comparison.
type Float interface {
	constraints.Float
}

const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52
)

// DefaultMaxUlps is the default tolerance of UlpsEq.
const DefaultMaxUlps = 4

func is32[S Float]() bool {
	var x S
	return unsafe.Sizeof(x) == 4
}

// Epsilon returns the machine epsilon for the width of S.
func Epsilon[S Float]() S {
	if is32[S]() {
		return S(epsilon32)
	}
	return S(epsilon64)
}

func Abs[S Signed](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

func Sign[S Signed](x S) S {
	if x > 0 {
		return 1
	}

	if x < 0 {
		return -1
	}

	return 0
}

func Sqrt[S Float](x S) S {
	if is32[S]() {
		return S(math32.Sqrt(float32(x)))
	}
	return S(math.Sqrt(float64(x)))
}

// Recip returns 1/x.
func Recip[S Float](x S) S {
	return 1 / x
}

func Sincos[S Float](x S) (sin, cos S) {
	if is32[S]() {
		s, c := math32.Sincos(float32(x))
		return S(s), S(c)
	}
	s, c := math.Sincos(float64(x))
	return S(s), S(c)
}

func Sin[S Float](x S) S {
	s, _ := Sincos(x)
	return s
}

func Cos[S Float](x S) S {
	_, c := Sincos(x)
	return c
}

func IsNaN[S Float](x S) bool {
	if is32[S]() {
		return math32.IsNaN(float32(x))
	}
	return math.IsNaN(float64(x))
}

// Bits returns the IEEE 754 bit pattern of x. Values of a 32-bit type
// occupy the low 32 bits.
func Bits[S Float](x S) uint64 {
	if is32[S]() {
		return uint64(math32.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}
