package scalar

import (
	"github.com/chewxy/math32"
	fscalar "gonum.org/v1/gonum/floats/scalar"
)

// AbsDiffEq reports whether |a-b| <= epsilon.
func AbsDiffEq[S Float](a, b, epsilon S) bool {
	if is32[S]() {
		return a == b || math32.Abs(float32(a)-float32(b)) <= float32(epsilon)
	}
	return fscalar.EqualWithinAbs(float64(a), float64(b), float64(epsilon))
}

// RelativeEq reports whether a and b are within epsilon of each other, or
// failing that, whether |a-b| <= max(|a|, |b|) * maxRelative.
func RelativeEq[S Float](a, b, epsilon, maxRelative S) bool {
	if is32[S]() {
		return relativeEq32(float32(a), float32(b), float32(epsilon), float32(maxRelative))
	}
	return fscalar.EqualWithinAbsOrRel(float64(a), float64(b), float64(epsilon), float64(maxRelative))
}

func relativeEq32(a, b, epsilon, maxRelative float32) bool {
	if a == b {
		return true
	}
	if math32.IsInf(a, 0) || math32.IsInf(b, 0) {
		return false
	}

	diff := math32.Abs(a - b)
	if diff <= epsilon {
		return true
	}

	largest := max(math32.Abs(a), math32.Abs(b))
	return diff <= largest*maxRelative
}

// UlpsEq reports whether a and b are within epsilon of each other, or
// failing that, whether they are at most maxUlps representable values
// apart. Values of opposite sign are only equal through epsilon.
func UlpsEq[S Float](a, b, epsilon S, maxUlps uint) bool {
	if AbsDiffEq(a, b, epsilon) {
		return true
	}
	if is32[S]() {
		return ulpsEq32(float32(a), float32(b), maxUlps)
	}
	x, y := float64(a), float64(b)
	if (x < 0) != (y < 0) {
		return false
	}
	return fscalar.EqualWithinULP(x, y, maxUlps)
}

func ulpsEq32(a, b float32, maxUlps uint) bool {
	if math32.IsNaN(a) || math32.IsNaN(b) {
		return false
	}
	if math32.Signbit(a) != math32.Signbit(b) {
		return false
	}

	x, y := math32.Float32bits(a), math32.Float32bits(b)
	if x < y {
		x, y = y, x
	}
	return uint64(x-y) <= uint64(maxUlps)
}

// ApproxZero reports whether x is zero to within the default tolerances.
func ApproxZero[S Float](x S) bool {
	return UlpsEq(x, 0, Epsilon[S](), DefaultMaxUlps)
}
