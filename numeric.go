package qbit

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

/*
Float is the numeric capability set amplitudes are built on. Every
trigonometric and root operation goes through float64, so float32 amplitudes
trade precision for size but follow exactly the same rules.
*/
type Float interface {
	~float32 | ~float64
}

// Tau is a full turn, the modulus every stored angle is reduced by.
const Tau = 2 * math.Pi

// DefaultTolerance is the absolute error accepted by the invariant checks.
const DefaultTolerance = 1e-9

/*
reduceAngle maps any finite angle into [0, 2π). math.Mod keeps the sign of
its dividend, so negative angles are shifted up by one turn. Shifting a tiny
negative value can round to exactly 2π, which is folded back to 0.
*/
func reduceAngle(angle float64) float64 {
	r := math.Mod(angle, Tau)

	if r < 0 {
		r += Tau
	}

	if r >= Tau {
		r = 0
	}

	return r
}

// clamp keeps acos/asin arguments inside their domain after rounding drift.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// unsign maps -0 to +0 and leaves every other value alone.
func unsign[T Float](v T) T {
	if v == 0 {
		return 0
	}

	return v
}

func within[T Float](a, b T, tol float64) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), tol)
}
